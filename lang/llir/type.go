package llir

// Type is one of the low-level IR's three value types (spec.md §4.4).
type Type int8

// List of IR types.
const (
	TypeVoid Type = iota
	TypeI32
	TypeF32
)

func (t Type) String() string {
	switch t {
	case TypeVoid:
		return "void"
	case TypeI32:
		return "i32"
	case TypeF32:
		return "f32"
	default:
		return "<invalid-type>"
	}
}

// typeFromSource maps a source type name to its IR type, per the lowering
// table of spec.md §4.4 step 1: int -> i32, float -> f32, and — preserved
// exactly as the reference behaves, not "fixed" — char -> f32 as well. ok
// is false for any other source type name.
func typeFromSource(name string) (Type, bool) {
	switch name {
	case "int":
		return TypeI32, true
	case "float":
		return TypeF32, true
	case "char":
		// Sic: char parameters lower to float, matching spec.md §9's
		// explicitly preserved quirk.
		return TypeF32, true
	default:
		return TypeVoid, false
	}
}

// returnTypeFromSource maps a function's source return type name to its IR
// type, per spec.md §4.4 step 2: void, int or float; any other name fails.
func returnTypeFromSource(name string) (Type, bool) {
	switch name {
	case "void":
		return TypeVoid, true
	case "int":
		return TypeI32, true
	case "float":
		return TypeF32, true
	default:
		return TypeVoid, false
	}
}
