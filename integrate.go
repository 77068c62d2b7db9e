package gvf

import (
	"math"

	"github.com/maseology/gvf/section"
)

// Direction marching mode of the fixed-step integrator. Distance x is
// chainage measured upstream from the weir control; both modes return
// samples with x increasing from 0 at the control.
type Direction int

const (
	// Forward marches away from the control (x increasing), conventionally
	// from a near-critical starting depth, stopping at the reach length.
	Forward Direction = iota
	// Backward marches toward the control (x decreasing) from a
	// near-normal starting depth, stopping once the depth falls to
	// StopDepth; the sample sequence is reversed and re-based before
	// return so it reads the same way as Forward output.
	Backward
)

// SingularityPolicy what to do when |1-Fr²| falls within the guard
// threshold, i.e. at the near-critical transition where the GVF slope
// blows up. The zero value is the safe abort.
type SingularityPolicy int

const (
	// SingularAbort stops the march at the transition, preventing the
	// derivative blow-up from producing physically meaningless depths.
	SingularAbort SingularityPolicy = iota
	// SingularClamp pins the denominator to ±eps and marches through,
	// trading local accuracy for the ability to cross the transition.
	SingularClamp
)

// TerminationReason why the integrator stopped. Early termination is an
// expected, recoverable outcome reported beside the samples, not an error.
type TerminationReason int

const (
	ReachedTarget TerminationReason = iota
	HitSingularity
	DepthNonPositive
	DepthNonFinite
	IterationCap
)

func (r TerminationReason) String() string {
	switch r {
	case ReachedTarget:
		return "reached target"
	case HitSingularity:
		return "hit singularity"
	case DepthNonPositive:
		return "depth non-positive"
	case DepthNonFinite:
		return "depth non-finite"
	case IterationCap:
		return "iteration cap"
	default:
		return "unknown"
	}
}

// Config fixed-step integration controls
type Config struct {
	Dx          float64 // step length [m]
	Length      float64 // reach extent for Forward marching [m]
	MaxExtent   float64 // safety bound for Backward marching [m]; 0 defaults to 10×Length
	Y0          float64 // starting depth [m]
	StopDepth   float64 // Backward stopping depth [m], typically just above critical
	Eps         float64 // |1-Fr²| singularity guard; 0 defaults to 1e-6
	Direction   Direction
	Singularity SingularityPolicy
}

func (cfg *Config) check() error {
	switch {
	case cfg.Dx <= 0.:
		return &InvalidParameterError{"dx", cfg.Dx}
	case cfg.Y0 <= 0.:
		return &InvalidParameterError{"y0", cfg.Y0}
	case cfg.Direction == Forward && cfg.Length <= 0.:
		return &InvalidParameterError{"length", cfg.Length}
	case cfg.Direction == Backward && cfg.StopDepth <= 0.:
		return &InvalidParameterError{"stop depth", cfg.StopDepth}
	case cfg.Direction == Backward && cfg.Length <= 0. && cfg.MaxExtent <= 0.:
		return &InvalidParameterError{"extent", cfg.MaxExtent}
	}
	return nil
}

// Integrate marches the gradually-varied-flow equation
//
//	dy/dx = (Sf(y) - S0) / (1 - Fr(y)²)
//
// (x positive upstream of the control) in fixed steps Dx, appending one
// DepthSample per accepted step. Once the static parameters check out it
// never fails: the march terminates the sequence early instead, and the
// returned reason reports whether the configured target was reached or
// the step hit the near-critical singularity, a non-positive depth, a
// non-finite depth, or the iteration cap.
func Integrate(xs section.XSection, fp FlowParameters, cfg Config) ([]DepthSample, TerminationReason, error) {
	if err := fp.check(); err != nil {
		return nil, IterationCap, err
	}
	if xs.Width() <= 0. {
		return nil, IterationCap, &InvalidParameterError{"b", xs.Width()}
	}
	if err := cfg.check(); err != nil {
		return nil, IterationCap, err
	}

	eps := cfg.Eps
	if eps == 0. {
		eps = epsdenom
	}
	ext := cfg.MaxExtent
	if ext == 0. {
		ext = 10. * cfg.Length
	}

	// hard cap bounds the sequence even if no stopping condition is met
	var ncap int
	if cfg.Direction == Forward {
		ncap = int(math.Ceil(cfg.Length/cfg.Dx)) + 8
	} else {
		ncap = int(math.Ceil(ext/cfg.Dx)) + 8
	}

	x, y := 0., cfg.Y0
	out := make([]DepthSample, 1, ncap+1)
	out[0] = DepthSample{x, y}
	reason := IterationCap

	for i := 0; i < ncap; i++ {
		fr := Froude(xs, fp, y)
		denom := 1. - fr*fr
		if math.Abs(denom) < eps {
			if cfg.Singularity == SingularAbort {
				reason = HitSingularity
				break
			}
			if denom == 0. {
				denom = eps
			} else {
				denom = math.Copysign(eps, denom)
			}
		}
		dydx := (FrictionSlope(xs, fp, y) - fp.S0) / denom

		if cfg.Direction == Forward {
			x += cfg.Dx
			y += dydx * cfg.Dx
		} else {
			x -= cfg.Dx
			y -= dydx * cfg.Dx // marching with the flow, toward the control
		}

		if math.IsNaN(y) || math.IsInf(y, 0) {
			reason = DepthNonFinite
			break
		}
		if y <= 0. {
			reason = DepthNonPositive
			break
		}
		out = append(out, DepthSample{x, y})

		if cfg.Direction == Forward {
			if x >= cfg.Length {
				reason = ReachedTarget
				break
			}
		} else {
			if y <= cfg.StopDepth || -x >= ext {
				reason = ReachedTarget
				break
			}
		}
	}

	if cfg.Direction == Backward {
		rebase(out)
	}
	return out, reason, nil
}

// rebase reverses a backward-marched sequence in place and shifts x so the
// control (the most-negative station) sits at 0, matching the Forward
// output convention.
func rebase(s []DepthSample) {
	x0 := s[len(s)-1].X
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	for i := range s {
		s[i].X -= x0
	}
}
