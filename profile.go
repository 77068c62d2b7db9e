package gvf

import "github.com/maseology/gvf/section"

// DepthSample one station of a water surface profile
type DepthSample struct {
	X float64 // distance upstream of the weir control [m]
	Y float64 // flow depth [m]
}

// Profile a computed water surface profile with its summary values
type Profile struct {
	Samples []DepthSample
	Yc, Yn  float64           // critical and normal depths [m]
	Regime  FlowRegime        // regime at the starting depth
	Reason  TerminationReason // why the march stopped
}

// Compute assembles a full profile: critical and normal depths, the
// integrated depth series and the regime at the starting depth. When
// cfg.Y0 is zero a conventional start is chosen per direction: 1.01×yc
// marching away from the control, 0.99×yn marching toward it (exact
// normal depth is a fixed point of the GVF equation, so the toward-control
// march is seeded just off normal). A zero Backward StopDepth defaults to
// 1.01×yc. Parameter and solver errors return with no partial profile.
func Compute(xs section.XSection, fp FlowParameters, cfg Config) (*Profile, error) {
	yc, err := CriticalDepth(xs, fp)
	if err != nil {
		return nil, err
	}
	yn, err := NormalDepth(xs, fp)
	if err != nil {
		return nil, err
	}
	if cfg.Y0 == 0. {
		if cfg.Direction == Forward {
			cfg.Y0 = 1.01 * yc
		} else {
			cfg.Y0 = .99 * yn
		}
	}
	if cfg.Direction == Backward && cfg.StopDepth == 0. {
		cfg.StopDepth = 1.01 * yc
	}
	smpls, reason, err := Integrate(xs, fp, cfg)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Samples: smpls,
		Yc:      yc,
		Yn:      yn,
		Regime:  Classify(cfg.Y0, yc),
		Reason:  reason,
	}, nil
}
