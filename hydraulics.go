package gvf

import (
	"math"

	"github.com/maseology/gvf/section"
)

// FrictionSlope energy gradient from Manning's equation
//
//	Sf = n²Q² / (A²R^(4/3))
func FrictionSlope(xs section.XSection, fp FlowParameters, y float64) float64 {
	a := xs.Area(y)
	return fp.N * fp.N * fp.Q * fp.Q / (a * a * math.Pow(xs.HydraulicRadius(y), 4./3.))
}

// Froude number Fr = Q / (A·sqrt(gA/T)), the general form; reduces to
// Q/(b·y·sqrt(g·y)) for the wide rectangle.
func Froude(xs section.XSection, fp FlowParameters, y float64) float64 {
	a := xs.Area(y)
	return fp.Q / (a * math.Sqrt(fp.G*a/xs.TopWidth(y)))
}

// FlowRegime classification of a depth relative to critical
type FlowRegime int

const (
	Subcritical FlowRegime = iota
	Critical
	Supercritical
)

func (r FlowRegime) String() string {
	switch r {
	case Subcritical:
		return "subcritical"
	case Critical:
		return "critical"
	case Supercritical:
		return "supercritical"
	default:
		return "unknown"
	}
}

// Classify compares a depth to the critical depth for the same section and
// flow. A small relative tolerance is used in place of exact float equality
// so that depths produced by the solvers themselves classify as critical.
func Classify(y, yc float64) FlowRegime {
	if math.Abs(y-yc) <= critol*yc {
		return Critical
	}
	if y < yc {
		return Supercritical
	}
	return Subcritical
}
