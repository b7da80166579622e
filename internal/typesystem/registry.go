package typesystem

import "fmt"

// IsComptime reports whether t belongs to the comptime (adaptable
// placeholder) universe.
func IsComptime(t Type) bool {
	switch t {
	case ComptimeInt, ComptimeFloat, ComptimeArrayInt, ComptimeArrayFloat:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t is any integer or float type, concrete or
// comptime.
func IsNumeric(t Type) bool {
	return IsInteger(t) || IsFloat(t)
}

// IsInteger reports whether t is i32, i64, or comptime_int.
func IsInteger(t Type) bool {
	switch t {
	case I32, I64, ComptimeInt:
		return true
	default:
		return false
	}
}

// IsFloat reports whether t is f32, f64, or comptime_float.
func IsFloat(t Type) bool {
	switch t {
	case F32, F64, ComptimeFloat:
		return true
	default:
		return false
	}
}

// CanCoerce reports whether src can be implicitly (safely) coerced to
// dst per the module's coercion lattice. Unknown coerces from/to
// anything silently so a single earlier diagnostic never cascades.
func CanCoerce(src, dst Type) bool {
	if src == Unknown || dst == Unknown {
		return true
	}
	if Equal(src, dst) {
		return true
	}

	switch src {
	case I32:
		return dst == I64 || dst == F32 || dst == F64
	case I64:
		return dst == F32 || dst == F64
	case F32:
		return dst == F64
	case ComptimeInt:
		switch dst {
		case I32, I64, F32, F64:
			return true
		}
		return false
	case ComptimeFloat:
		switch dst {
		case F32, F64:
			return true
		}
		return false
	}

	if srcArr, ok := src.(Array); ok {
		if dstArr, ok := dst.(Array); ok {
			if srcArr.Len != dstArr.Len && !srcArr.Inferred && !dstArr.Inferred {
				return false
			}
			return CanCoerce(srcArr.Elem, dstArr.Elem)
		}
	}

	if src == ComptimeArrayInt {
		if dstArr, ok := dst.(Array); ok {
			return IsInteger(dstArr.Elem)
		}
	}
	if src == ComptimeArrayFloat {
		if dstArr, ok := dst.(Array); ok {
			return IsFloat(dstArr.Elem)
		}
	}

	return false
}

// IsSafeCoercion is an alias kept for readability at call sites that are
// explicitly distinguishing "safe, implicit" from "dangerous" coercions.
func IsSafeCoercion(src, dst Type) bool { return CanCoerce(src, dst) }

// UnifyComptime promotes a pair of comptime operand types to their common
// comptime type: int+float widen to comptime_float, equal types stay as
// they are. UnifyComptime is only meaningful when both a and b are
// comptime; callers must check IsComptime first.
func UnifyComptime(a, b Type) Type {
	if a == ComptimeFloat || b == ComptimeFloat {
		return ComptimeFloat
	}
	return ComptimeInt
}

// OverflowError reports that a literal's value does not fit the
// destination type's representable range (LiteralOverflow).
type OverflowError struct {
	Dst Type
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("literal does not fit in %s", e.Dst.String())
}

// Commit converts a comptime type into a concrete destination type,
// performing the single range check in the whole analyzer.
// value is the literal's raw numeric value (int64 or float64, as produced
// by the parser); it is nil when committing a non-literal comptime-typed
// expression (e.g. the result of comptime arithmetic), in which case no
// range check is possible and Commit always succeeds.
func Commit(comptimeSrc Type, dst Type, value interface{}) (Type, error) {
	if !IsComptime(comptimeSrc) {
		return dst, nil
	}
	if value != nil {
		if !fits(value, dst) {
			return nil, &OverflowError{Dst: dst}
		}
	}
	return dst, nil
}

func fits(value interface{}, dst Type) bool {
	switch v := value.(type) {
	case int64:
		switch dst {
		case I32:
			return v >= -(1<<31) && v <= (1<<31)-1
		case I64:
			return true
		case F32, F64:
			return true
		}
	case float64:
		switch dst {
		case F32:
			return v >= -3.4e38 && v <= 3.4e38
		case F64:
			return true
		}
	}
	return true
}
