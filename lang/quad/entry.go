package quad

// Entry is a quaternion-generator symbol-table payload: a declared name, its
// source type name, and the offset assigned to it within its scope's
// running width (spec.md §3: "entries never move").
type Entry struct {
	Name   string
	Type   string // "int", "float", "char", or "function" for a call target
	Offset int
}

// FuncEntry records the quaternion index at which a function's code begins
// (spec.md §3's function table).
type FuncEntry struct {
	Name       string
	EntryIndex int
}

// Quad is one three-address instruction: an operation plus up to three
// tagged operands.
type Quad struct {
	Op                Op
	Arg1, Arg2, Result Operand
}
