package gvf

import "fmt"

// FlowParameters steady flow and resistance terms held constant along a reach.
// G is an explicit field (not a package constant) so alternate unit systems
// can override it; NewFlowParameters fills the standard value.
type FlowParameters struct {
	Q  float64 // discharge [m³/s]
	N  float64 // Manning roughness [-]
	S0 float64 // bed slope [-]
	G  float64 // gravitational acceleration [m/s²]
}

// NewFlowParameters constructor, G defaulted to Gdefault
func NewFlowParameters(q, n, s0 float64) FlowParameters {
	return FlowParameters{Q: q, N: n, S0: s0, G: Gdefault}
}

// InvalidParameterError a static precondition violated; raised before any
// computation starts, never recovered internally.
type InvalidParameterError struct {
	Param string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("gvf: invalid parameter %s = %g", e.Param, e.Value)
}

func (fp *FlowParameters) check() error {
	switch {
	case fp.Q <= 0.:
		return &InvalidParameterError{"Q", fp.Q}
	case fp.N <= 0.:
		return &InvalidParameterError{"n", fp.N}
	case fp.G <= 0.:
		return &InvalidParameterError{"g", fp.G}
	}
	return nil
}
