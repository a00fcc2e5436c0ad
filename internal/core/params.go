package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeText denotes free-form values such as coordinates.
	ParamTypeText ParamType = "text"
)

// Parameter describes a single value reported on the HUD.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current state reported on the HUD.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// IntParam builds an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// FloatParam builds a floating-point parameter with two decimals.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', 2, 64)}
}

// BoolParam builds a boolean parameter.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

// TextParam builds a free-form parameter.
func TextParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeText, Value: value}
}
