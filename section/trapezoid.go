package section

import "math"

// Trapezoid exact trapezoidal section with bottom width B and side slope
// Z (Z horizontal to 1 vertical). Z = 0 gives the exact rectangle.
type Trapezoid struct {
	B float64 // bottom width [m]
	Z float64 // side slope [-]
}

func (t Trapezoid) Area(y float64) float64 { return (t.B + t.Z*y) * y }

func (t Trapezoid) WettedPerimeter(y float64) float64 {
	return t.B + 2.*y*math.Sqrt(1.+t.Z*t.Z)
}

func (t Trapezoid) TopWidth(y float64) float64 { return t.B + 2.*t.Z*y }

func (t Trapezoid) HydraulicRadius(y float64) float64 {
	return t.Area(y) / t.WettedPerimeter(y)
}

func (t Trapezoid) Width() float64 { return t.B }
