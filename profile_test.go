package gvf

import (
	"math"
	"testing"

	"github.com/maseology/gvf/section"
	"github.com/stretchr/testify/require"
)

func TestComputeForwardDefaults(t *testing.T) {
	xs, fp := mildScenario()
	p, err := Compute(xs, fp, Config{Dx: 1., Length: 100., Direction: Forward})
	require.NoError(t, err)

	require.InDelta(t, math.Cbrt(fp.Q*fp.Q/(fp.G*9.)), p.Yc, 1e-12)
	require.Greater(t, p.Yn, p.Yc) // mild slope
	require.Equal(t, Subcritical, p.Regime)
	require.Equal(t, ReachedTarget, p.Reason)
	require.Len(t, p.Samples, 101)
	require.InDelta(t, 1.01*p.Yc, p.Samples[0].Y, 1e-12) // default start
}

func TestComputeBackwardDefaults(t *testing.T) {
	xs, fp := mildScenario()
	p, err := Compute(xs, fp, Config{Dx: 1., MaxExtent: 50000., Direction: Backward})
	require.NoError(t, err)

	require.Equal(t, ReachedTarget, p.Reason)
	require.Equal(t, 0., p.Samples[0].X)
	require.LessOrEqual(t, p.Samples[0].Y, 1.01*p.Yc) // marched down to the default stop
	require.InDelta(t, .99*p.Yn, p.Samples[len(p.Samples)-1].Y, 1e-9)
}

func TestComputePropagatesSolverErrors(t *testing.T) {
	xs := section.WideRectangular{B: 3.}
	var ipe *InvalidParameterError

	_, err := Compute(xs, NewFlowParameters(10., .03, -.001), Config{Dx: 1., Length: 100.})
	require.ErrorAs(t, err, &ipe) // normal depth needs S0 > 0; no partial profile

	_, err = Compute(xs, NewFlowParameters(-10., .03, .001), Config{Dx: 1., Length: 100.})
	require.ErrorAs(t, err, &ipe)
}

func TestWeirDischarge(t *testing.T) {
	xs := section.WideRectangular{B: 3.}
	yc := 1.0424

	qb, err := WeirDischarge(BroadCrested, xs, yc, 1.7, Gdefault)
	require.NoError(t, err)
	require.InDelta(t, 1.7*3.*math.Pow(yc, 1.5), qb, 1e-12)

	qs, err := WeirDischarge(SharpCrested, xs, yc, .62, Gdefault)
	require.NoError(t, err)
	require.InDelta(t, 2./3.*.62*3.*math.Sqrt(2.*Gdefault)*math.Pow(yc, 1.5), qs, 1e-12)

	var ipe *InvalidParameterError
	_, err = WeirDischarge(BroadCrested, xs, 0., 1.7, Gdefault)
	require.ErrorAs(t, err, &ipe)
	_, err = WeirDischarge(SharpCrested, xs, yc, 0., Gdefault)
	require.ErrorAs(t, err, &ipe)
}
