// Package section defines open-channel cross-section geometries as pure
// functions of flow depth.
package section

// XSection the geometric capability set required by the flow engine. All
// methods are pure functions of depth and assume y > 0, b > 0, z >= 0;
// callers never pass a non-positive depth (a documented precondition, not
// a runtime check, keeping the per-step hot path branch-free).
type XSection interface {
	Area(y float64) float64            // flow area A [m²]
	WettedPerimeter(y float64) float64 // wetted perimeter P [m]
	TopWidth(y float64) float64        // free-surface width T [m]
	HydraulicRadius(y float64) float64 // R = A/P [m]
	Width() float64                    // bottom width b [m]
}
