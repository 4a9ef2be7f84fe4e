package data

import (
	"strconv"

	"github.com/rs/zerolog"
)

// ValueKind discriminates the representations a label can take after
// numeric coercion.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindInt
	KindFloat
	KindStr
)

// Value is a label or cell after coercion: an int, a float, a string,
// or absent. The zero Value is absent.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
}

func NoneValue() Value           { return Value{} }
func IntValue(i int64) Value     { return Value{Kind: KindInt, Int: i} }
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }
func StrValue(s string) Value    { return Value{Kind: KindStr, Str: s} }

// AsFloat returns the numeric value of an int or float Value.
func (v Value) AsFloat() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	}
	return 0, false
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindStr:
		return v.Str
	}
	return ""
}

// SafeFloat converts a raw token to its most specific numeric
// representation: int, then float, then the original text. A token found
// in classMap is substituted before conversion; when a classMap is
// supplied, every token missing from it is logged at warning level since
// it usually means the map is misconfigured. An absent input coerces to
// integer zero, a compatibility rule inherited from existing datasets.
func SafeFloat(raw Value, classMap map[string]string, logger zerolog.Logger) Value {
	switch raw.Kind {
	case KindNone:
		return IntValue(0)
	case KindInt, KindFloat:
		return raw
	}
	text := raw.Str
	if classMap != nil {
		if replacement, ok := classMap[text]; ok {
			text = replacement
		} else {
			logger.Warn().Str("value", text).Msg("value not found in replacement dictionary (e.g. class_map)")
		}
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return FloatValue(f)
	}
	return StrValue(text)
}

// setFeature coerces a raw cell and stores it under the given feature
// name. Numeric cells keep their value; anything else becomes a
// categorical indicator "name=value" with value 1, so that downstream
// vectorization one-hot encodes it.
func setFeature(features map[string]float64, name, raw string, logger zerolog.Logger) {
	v := SafeFloat(StrValue(raw), nil, logger)
	if f, ok := v.AsFloat(); ok {
		features[name] = f
		return
	}
	features[name+"="+v.Str] = 1
}
