package quad

// Op identifies the operation performed by one Quad. One entry per
// binary/unary operation plus Assign and Invalid (spec.md §3), extended
// with the control-flow and call opcodes SPEC_FULL.md §4 adds to complete
// the emission table for nodes spec.md's explicit rule list omits.
type Op int8

// List of quaternion operations.
const (
	OpInvalid Op = iota
	OpAssign
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpEqual
	OpNeg
	OpNot
	OpIfFalse
	OpJmp
	OpParam
	OpCall
	OpReturn

	maxOp
)

var opNames = [...]string{
	OpInvalid:      "Invalid",
	OpAssign:       "Assign",
	OpAdd:          "Add",
	OpSub:          "Sub",
	OpMul:          "Mul",
	OpDiv:          "Div",
	OpLess:         "Less",
	OpLessEqual:    "LessEqual",
	OpGreater:      "Greater",
	OpGreaterEqual: "GreaterEqual",
	OpEqual:        "Equal",
	OpNeg:          "Neg",
	OpNot:          "Not",
	OpIfFalse:      "IfFalse",
	OpJmp:          "Jmp",
	OpParam:        "Param",
	OpCall:         "Call",
	OpReturn:       "Return",
}

func (o Op) String() string {
	if o < 0 || o >= maxOp {
		return "Invalid"
	}
	return opNames[o]
}
