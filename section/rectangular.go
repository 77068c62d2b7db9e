package section

// WideRectangular rectangular section carrying the wide-channel
// simplification R = y (equivalently P = b), appropriate where b >> y.
// ref: Henderson (1966) p.91
// Kept as its own named variant so the approximation is never silently
// mixed with the exact hydraulics; for the exact rectangle use Trapezoid
// with Z = 0.
type WideRectangular struct {
	B float64 // bottom width [m]
}

func (r WideRectangular) Area(y float64) float64 { return r.B * y }

// WettedPerimeter returns b, keeping R = A/P consistent with the
// wide-channel R = y.
func (r WideRectangular) WettedPerimeter(y float64) float64 { return r.B }

func (r WideRectangular) TopWidth(y float64) float64 { return r.B }

func (r WideRectangular) HydraulicRadius(y float64) float64 { return y }

func (r WideRectangular) Width() float64 { return r.B }
