package gvf

import (
	"fmt"
	"math"

	"github.com/maseology/gvf/section"
)

// DepthSolveError the root-finder exceeded its iteration cap or diverged.
// Not retried internally with a different seed; the single analytic seed is
// the contract.
type DepthSolveError struct {
	What       string
	Seed, Last float64
}

func (e *DepthSolveError) Error() string {
	return fmt.Sprintf("gvf: %s solve failed to converge (seed %g, last %g)", e.What, e.Seed, e.Last)
}

// CriticalDepth depth minimizing specific energy for the given discharge,
// the positive root of Q²T(y) - gA(y)³ = 0. Rectangular sections use the
// closed form yc = (Q²/(gb²))^(1/3) directly; trapezoids with sloping
// sides iterate from that closed form as the seed.
func CriticalDepth(xs section.XSection, fp FlowParameters) (float64, error) {
	if err := fp.check(); err != nil {
		return 0, err
	}
	if xs.Width() <= 0. {
		return 0, &InvalidParameterError{"b", xs.Width()}
	}
	yr := math.Cbrt(fp.Q * fp.Q / (fp.G * xs.Width() * xs.Width()))
	switch s := xs.(type) {
	case section.WideRectangular:
		return yr, nil
	case section.Trapezoid:
		if s.Z == 0. {
			return yr, nil
		}
	}
	resid := func(y float64) float64 {
		a := xs.Area(y)
		return fp.Q*fp.Q*xs.TopWidth(y) - fp.G*a*a*a
	}
	return solveDepth(resid, yr, "critical depth")
}

// NormalDepth uniform flow depth, the positive root of the Manning
// equation residual Q - (1/n)A(y)R(y)^(2/3)sqrt(S0) = 0, seeded at
// 1.5× the critical depth.
func NormalDepth(xs section.XSection, fp FlowParameters) (float64, error) {
	if fp.S0 <= 0. {
		return 0, &InvalidParameterError{"S0", fp.S0}
	}
	yc, err := CriticalDepth(xs, fp)
	if err != nil {
		return 0, err
	}
	rs := math.Sqrt(fp.S0)
	resid := func(y float64) float64 {
		return fp.Q - xs.Area(y)*math.Pow(xs.HydraulicRadius(y), 2./3.)*rs/fp.N
	}
	return solveDepth(resid, 1.5*yc, "normal depth")
}

// solveDepth damped Newton iteration with a centred finite-difference
// derivative. Trial depths are kept strictly positive by halving the step;
// the residual is never evaluated at y <= 0.
func solveDepth(resid func(float64) float64, y0 float64, what string) (float64, error) {
	y := y0
	for i := 0; i < maxiter; i++ {
		f := resid(y)
		h := 1e-6 * y
		df := (resid(y+h) - resid(y-h)) / (2. * h)
		if df == 0. || math.IsNaN(df) {
			break
		}
		d := f / df
		yn := y - d
		for yn <= 0. {
			d /= 2.
			yn = y - d
		}
		if math.IsNaN(yn) {
			break
		}
		if math.Abs(yn-y) < dtol {
			return yn, nil
		}
		y = yn
	}
	return 0, &DepthSolveError{what, y0, y}
}
