// Package gvf computes steady one-dimensional gradually-varied-flow (GVF)
// water surface profiles upstream of a weir control, for rectangular and
// trapezoidal channel sections, and classifies the flow regime along the way.
// ref: Chow, V.T., 1959. Open-Channel Hydraulics. McGraw-Hill. 680pp.
//      Henderson, F.M., 1966. Open Channel Flow. MacMillan. 522pp.
package gvf

const (
	// Gdefault standard gravitational acceleration [m/s²]
	Gdefault = 9.81

	dtol     = 1e-8 // depth solver absolute tolerance [m]
	epsdenom = 1e-6 // default near-critical |1-Fr²| guard
	maxiter  = 100  // depth solver iteration cap
	critol   = 1e-9 // relative tolerance deeming a depth critical
)
