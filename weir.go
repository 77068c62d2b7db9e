package gvf

import (
	"math"

	"github.com/maseology/gvf/section"
)

// WeirType the crest form establishing the downstream control
type WeirType int

const (
	BroadCrested WeirType = iota
	SharpCrested
)

// WeirDischarge estimates the discharge over the weir from the critical
// depth established at its crest:
//
//	broad-crested: Q = Cb·b·yc^1.5
//	sharp-crested: Q = (2/3)·Cd·b·sqrt(2g)·yc^1.5
//
// ref: Henderson (1966) ch.6
func WeirDischarge(wt WeirType, xs section.XSection, yc, coeff, g float64) (float64, error) {
	switch {
	case yc <= 0.:
		return 0, &InvalidParameterError{"yc", yc}
	case coeff <= 0.:
		return 0, &InvalidParameterError{"weir coefficient", coeff}
	case g <= 0.:
		return 0, &InvalidParameterError{"g", g}
	case xs.Width() <= 0.:
		return 0, &InvalidParameterError{"b", xs.Width()}
	}
	switch wt {
	case BroadCrested:
		return coeff * xs.Width() * math.Pow(yc, 1.5), nil
	case SharpCrested:
		return 2. / 3. * coeff * xs.Width() * math.Sqrt(2.*g) * math.Pow(yc, 1.5), nil
	}
	return 0, &InvalidParameterError{"weir type", float64(wt)}
}
