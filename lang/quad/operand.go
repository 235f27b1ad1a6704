package quad

import (
	"fmt"
	"strconv"
)

// OperandKind discriminates the four tagged variants a Quad operand can
// take, per spec.md §3.
type OperandKind int8

// List of operand kinds.
const (
	OperandNil OperandKind = iota
	OperandEntry
	OperandValue
	OperandCodeAddr
)

// Operand is a tagged-variant quaternion operand: exactly one of Entry,
// Value or CodeAddr is meaningful, selected by Kind.
type Operand struct {
	Kind     OperandKind
	Entry    *Entry  // meaningful iff Kind == OperandEntry
	IntValue int64   // meaningful iff Kind == OperandValue and !IsFloat
	FltValue float64 // meaningful iff Kind == OperandValue and IsFloat
	IsFloat  bool
	CodeAddr int // meaningful iff Kind == OperandCodeAddr
}

// Nil is the absent operand.
var Nil = Operand{Kind: OperandNil}

// EntryOperand wraps a symbol-table entry reference.
func EntryOperand(e *Entry) Operand { return Operand{Kind: OperandEntry, Entry: e} }

// IntValueOperand wraps an immediate integer literal.
func IntValueOperand(v int64) Operand { return Operand{Kind: OperandValue, IntValue: v} }

// FloatValueOperand wraps an immediate floating-point literal.
func FloatValueOperand(v float64) Operand { return Operand{Kind: OperandValue, FltValue: v, IsFloat: true} }

// CodeAddrOperand wraps an absolute quaternion-list index, used for jump
// patching.
func CodeAddrOperand(index int) Operand { return Operand{Kind: OperandCodeAddr, CodeAddr: index} }

// Name renders the operand the way it appears inside a quaternion
// disassembly: "_" for Nil, the entry's name for Entry, the decimal literal
// for Value, the decimal index for CodeAddr (spec.md §6).
func (o Operand) Name() string {
	switch o.Kind {
	case OperandNil:
		return "_"
	case OperandEntry:
		if o.Entry == nil {
			return "_"
		}
		return o.Entry.Name
	case OperandValue:
		if o.IsFloat {
			return strconv.FormatFloat(o.FltValue, 'g', -1, 64)
		}
		return strconv.FormatInt(o.IntValue, 10)
	case OperandCodeAddr:
		return strconv.Itoa(o.CodeAddr)
	default:
		return fmt.Sprintf("<bad-operand-kind %d>", o.Kind)
	}
}
