package gvf

import (
	"math"
	"testing"

	"github.com/maseology/gvf/section"
	"github.com/stretchr/testify/require"
)

func TestFroudeFastPathReduction(t *testing.T) {
	// the general form reduces to Q/(b·y·sqrt(g·y)) for the wide rectangle
	fp := NewFlowParameters(10., .03, .001)
	for _, y := range []float64{.25, 1., 1.0424, 3.} {
		got := Froude(section.WideRectangular{B: 3.}, fp, y)
		require.InDelta(t, fp.Q/(3.*y*math.Sqrt(fp.G*y)), got, 1e-12)
	}
}

func TestFroudeUnityAtCritical(t *testing.T) {
	fp := NewFlowParameters(10., .03, .001)
	xs := section.WideRectangular{B: 3.}
	yc, err := CriticalDepth(xs, fp)
	require.NoError(t, err)
	require.InDelta(t, 1., Froude(xs, fp, yc), 1e-9)
}

func TestFrictionSlope(t *testing.T) {
	fp := NewFlowParameters(10., .03, .001)
	xs := section.WideRectangular{B: 3.}
	y := 2.
	// n²Q²/(A²R^(4/3)) with A = by, R = y
	want := .03 * .03 * 100. / (36. * math.Pow(2., 4./3.))
	require.InDelta(t, want, FrictionSlope(xs, fp, y), 1e-12)

	// friction slope equals bed slope at normal depth
	yn, err := NormalDepth(xs, fp)
	require.NoError(t, err)
	require.InDelta(t, fp.S0, FrictionSlope(xs, fp, yn), 1e-8)
}

func TestClassify(t *testing.T) {
	require.Equal(t, Subcritical, Classify(2., 1.))
	require.Equal(t, Supercritical, Classify(.5, 1.))
	require.Equal(t, Critical, Classify(1., 1.))
	require.Equal(t, Critical, Classify(1.+1e-12, 1.)) // within the relative tolerance
}

func TestClassifyConsistentAlongProfile(t *testing.T) {
	xs := section.WideRectangular{B: 3.}
	fp := NewFlowParameters(10., .03, .001)
	p, err := Compute(xs, fp, Config{Dx: 1., Length: 100., Direction: Forward})
	require.NoError(t, err)
	for _, s := range p.Samples {
		switch {
		case s.Y > p.Yc*(1.+critol):
			require.Equal(t, Subcritical, Classify(s.Y, p.Yc))
		case s.Y < p.Yc*(1.-critol):
			require.Equal(t, Supercritical, Classify(s.Y, p.Yc))
		}
	}
}
