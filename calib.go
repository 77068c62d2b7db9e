package gvf

import (
	"math"
	"math/rand"

	"github.com/maseology/glbopt"
	"github.com/maseology/gvf/section"
	"github.com/maseology/mmaths"
	"github.com/maseology/montecarlo/smpln"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// CalibrateRoughness fits Manning roughness to an observed profile by 1-D
// Fibonacci search over a log-linear transform of n on [nmin, nmax],
// minimizing the RMSE between the observed depths and the computed profile
// interpolated to the observed stations. Returns the fitted n and its RMSE.
// cfg must carry an explicit starting depth shared by all trials (critical
// depth does not depend on n, so a near-critical start is a natural
// choice). Trials that terminate before covering the observations simply
// score poorly; the single search pass is the contract.
func CalibrateRoughness(xs section.XSection, q, s0 float64, obs []DepthSample, cfg Config, nmin, nmax float64) (float64, float64, error) {
	if len(obs) == 0 {
		return 0, 0, &InvalidParameterError{"observations", 0}
	}
	if nmin <= 0. || nmax <= nmin {
		return 0, 0, &InvalidParameterError{"roughness range", nmax - nmin}
	}
	fp := NewFlowParameters(q, nmin, s0)
	if err := fp.check(); err != nil {
		return 0, 0, err
	}
	if err := cfg.check(); err != nil {
		return 0, 0, err
	}

	fo := make([]float64, len(obs))
	for i, o := range obs {
		fo[i] = o.Y
	}
	solv := func(u []float64) float64 {
		fp.N = mmaths.LogLinearTransform(nmin, nmax, u[0])
		smpls, _, err := Integrate(xs, fp, cfg)
		if err != nil {
			return math.MaxFloat64
		}
		fs := make([]float64, len(obs))
		for i, o := range obs {
			fs[i] = interpDepth(smpls, o.X)
		}
		return objfunc.RMSE(fo, fs)
	}
	u, of := glbopt.Fibonacci(func(u1 float64) float64 { return solv([]float64{u1}) })
	return mmaths.LogLinearTransform(nmin, nmax, u), of, nil
}

// interpDepth linearly interpolates a profile (x increasing from the
// control) at station x, holding the end depths beyond the covered reach.
func interpDepth(smpls []DepthSample, x float64) float64 {
	if x <= smpls[0].X {
		return smpls[0].Y
	}
	for i := 1; i < len(smpls); i++ {
		if x <= smpls[i].X {
			f := (x - smpls[i-1].X) / (smpls[i].X - smpls[i-1].X)
			return smpls[i-1].Y + f*(smpls[i].Y-smpls[i-1].Y)
		}
	}
	return smpls[len(smpls)-1].Y
}

// SweepResult one Latin-hypercube sample of the roughness/slope space
type SweepResult struct {
	N, S0, Yc, Yn float64
	Reason        TerminationReason
}

// SweepRoughness Latin-hypercube screening of joint (n, S0) uncertainty:
// nsmpl samples drawn log-linearly over the given ranges, each run through
// the depth solvers and the integrator. onSample, when non-nil, is called
// after each completed sample (progress reporting is the caller's).
func SweepRoughness(xs section.XSection, q float64, nrng, s0rng [2]float64, cfg Config, nsmpl int, seed int64, onSample func(int)) ([]SweepResult, error) {
	if nsmpl < 1 {
		return nil, &InvalidParameterError{"nsmpl", float64(nsmpl)}
	}
	if nrng[0] <= 0. || nrng[1] <= nrng[0] {
		return nil, &InvalidParameterError{"roughness range", nrng[1] - nrng[0]}
	}
	if s0rng[0] <= 0. || s0rng[1] <= s0rng[0] {
		return nil, &InvalidParameterError{"slope range", s0rng[1] - s0rng[0]}
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	sp := smpln.NewLHC(rng, nsmpl, 2, false)

	res := make([]SweepResult, nsmpl)
	for k := 0; k < nsmpl; k++ {
		n := mmaths.LogLinearTransform(nrng[0], nrng[1], sp.U[0][k])
		s0 := mmaths.LogLinearTransform(s0rng[0], s0rng[1], sp.U[1][k])
		p, err := Compute(xs, NewFlowParameters(q, n, s0), cfg)
		if err != nil {
			return nil, err
		}
		res[k] = SweepResult{N: n, S0: s0, Yc: p.Yc, Yn: p.Yn, Reason: p.Reason}
		if onSample != nil {
			onSample(k)
		}
	}
	return res, nil
}
