package warp

import "strconv"

// ParamType describes the kind of input control for a filter parameter.
type ParamType string

const (
	ParamRange    ParamType = "range"
	ParamNumber   ParamType = "number"
	ParamSelect   ParamType = "select"
	ParamCheckbox ParamType = "checkbox"
)

// ParamOption is a single choice in a select parameter.
type ParamOption struct {
	Value string
	Label string
}

// ParamSpec describes one adjustable parameter for a filter.
// Every spec carries a default; numeric specs satisfy Min <= Max.
type ParamSpec struct {
	Key     string
	Label   string
	Type    ParamType
	Min     float64
	Max     float64
	Step    float64
	Options []ParamOption
	Default any
}

// Params is a flat parameter record as produced by UI or preset decoding.
// Values are float64, string, or bool; JSON decoding yields exactly these.
type Params map[string]any

// Float reads a numeric parameter. Numeric strings are accepted so presets
// hand-edited as text still load.
func (p Params) Float(key string) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return 0
}

// floatOK is Float plus a report of whether the value was actually numeric,
// so Resolve can tell a genuine zero apart from a failed coercion.
func (p Params) floatOK(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}

// Int reads a numeric parameter truncated to int.
func (p Params) Int(key string) int {
	return int(p.Float(key))
}

// Bool reads a checkbox parameter.
func (p Params) Bool(key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v == "true" || v == "1"
	}
	return false
}

// String reads a select parameter.
func (p Params) String(key string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

// Has reports whether the record contains a value for key.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Resolve merges a parameter record against a filter's schema.
// The result contains a value for every declared key: user values where
// present and coercible, schema defaults otherwise. Keys not declared by the
// schema are dropped, so a record carried over from another filter cannot
// leak into a mapper.
func Resolve(d Descriptor, p Params) Params {
	out := make(Params, len(d.Params))
	for _, spec := range d.Params {
		out[spec.Key] = spec.Default
		if p == nil || !p.Has(spec.Key) {
			continue
		}
		switch spec.Type {
		case ParamRange, ParamNumber:
			v, ok := p.floatOK(spec.Key)
			if !ok || !isFinite(v) {
				continue
			}
			if v < spec.Min {
				v = spec.Min
			}
			if v > spec.Max {
				v = spec.Max
			}
			out[spec.Key] = v
		case ParamCheckbox:
			out[spec.Key] = p.Bool(spec.Key)
		case ParamSelect:
			s := p.String(spec.Key)
			if validOption(spec.Options, s) {
				out[spec.Key] = s
			}
		}
	}
	return out
}

func validOption(opts []ParamOption, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

// rangeSpec is shorthand for a bounded numeric slider parameter.
func rangeSpec(key, label string, min, max, step, def float64) ParamSpec {
	return ParamSpec{Key: key, Label: label, Type: ParamRange, Min: min, Max: max, Step: step, Default: def}
}

// numberSpec is shorthand for a bounded free-form numeric parameter.
func numberSpec(key, label string, min, max, step, def float64) ParamSpec {
	return ParamSpec{Key: key, Label: label, Type: ParamNumber, Min: min, Max: max, Step: step, Default: def}
}

// centerSpecs declares the shared center-of-effect parameters, authored as
// percentages of the source width and height.
func centerSpecs() []ParamSpec {
	return []ParamSpec{
		rangeSpec("centerX", "Center X", 0, 100, 1, 50.0),
		rangeSpec("centerY", "Center Y", 0, 100, 1, 50.0),
	}
}

// radiusSpec declares the shared radius-of-effect parameter, authored as a
// percentage of the shorter source dimension.
func radiusSpec() ParamSpec {
	return rangeSpec("radius", "Radius", 1, 150, 1, 100.0)
}
