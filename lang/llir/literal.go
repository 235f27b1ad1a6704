package llir

import "strconv"

// itoa renders a 32-bit signed integer constant, per spec.md §4.4's
// "IntegerLiteral produces a 32-bit signed constant".
func itoa(v int64) string { return strconv.FormatInt(int64(int32(v)), 10) }

// ftoa renders an IR floating-point constant.
func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
