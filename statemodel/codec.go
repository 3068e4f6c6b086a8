package statemodel

import "math"

// FormatKind selects how a custom feature's f64/i64/u64/bool accessors
// encode into and decode out of a StateVar.
type FormatKind uint8

const (
	FloatingPoint FormatKind = iota
	SignedInteger
	UnsignedInteger
	Boolean
)

func (k FormatKind) String() string {
	switch k {
	case FloatingPoint:
		return "floating_point"
	case SignedInteger:
		return "signed_integer"
	case UnsignedInteger:
		return "unsigned_integer"
	case Boolean:
		return "boolean"
	default:
		return "unknown_format"
	}
}

// CustomFormat is the codec backing a custom StateFeature: it determines
// how encodeF64/encodeI64/encodeU64/encodeBool round, range-check, and
// store a value into the flat float64 StateVector, and how the matching
// decode* calls recover it. Every custom feature carries exactly one
// format regardless of which typed accessor is used against it, so a
// feature declared as UnsignedInteger rejects a negative f64 write just
// as it would reject one through the i64 accessor.
type CustomFormat struct {
	Kind FormatKind
}

func (f CustomFormat) encodeF64(v float64) (StateVar, error) {
	switch f.Kind {
	case FloatingPoint:
		return StateVar(v), nil
	case SignedInteger, UnsignedInteger:
		if f.Kind == UnsignedInteger && v < 0 {
			return 0, codecErrorf("unsigned integer feature cannot hold negative value %v", v)
		}
		if v != math.Trunc(v) {
			return 0, codecErrorf("integer feature cannot hold non-integral value %v", v)
		}
		return StateVar(v), nil
	case Boolean:
		if v != 0 && v != 1 {
			return 0, codecErrorf("boolean feature requires 0 or 1, got %v", v)
		}
		return StateVar(v), nil
	default:
		return 0, codecErrorf("unrecognized format kind %d", f.Kind)
	}
}

func (f CustomFormat) decodeF64(v StateVar) (float64, error) {
	return float64(v), nil
}

func (f CustomFormat) encodeI64(v int64) (StateVar, error) {
	if f.Kind == UnsignedInteger && v < 0 {
		return 0, codecErrorf("unsigned integer feature cannot hold negative value %d", v)
	}
	if f.Kind == Boolean && v != 0 && v != 1 {
		return 0, codecErrorf("boolean feature requires 0 or 1, got %d", v)
	}
	return StateVar(v), nil
}

func (f CustomFormat) decodeI64(v StateVar) (int64, error) {
	rounded := math.Round(float64(v))
	if math.Abs(float64(v)-rounded) > 1e-9 {
		return 0, codecErrorf("stored value %v is not integral", v)
	}
	return int64(rounded), nil
}

func (f CustomFormat) encodeU64(v uint64) (StateVar, error) {
	if f.Kind == Boolean && v > 1 {
		return 0, codecErrorf("boolean feature requires 0 or 1, got %d", v)
	}
	return StateVar(v), nil
}

func (f CustomFormat) decodeU64(v StateVar) (uint64, error) {
	if v < 0 {
		return 0, codecErrorf("stored value %v is negative, cannot decode as unsigned", v)
	}
	rounded := math.Round(float64(v))
	if math.Abs(float64(v)-rounded) > 1e-9 {
		return 0, codecErrorf("stored value %v is not integral", v)
	}
	return uint64(rounded), nil
}

func (f CustomFormat) encodeBool(v bool) (StateVar, error) {
	if v {
		return 1, nil
	}
	return 0, nil
}

func (f CustomFormat) decodeBool(v StateVar) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, codecErrorf("stored value %v is not 0 or 1", v)
	}
}
