// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import "cmp"

// Kind identifies a binary comparison.
type Kind uint8

// The comparison kinds an [Operation] can capture.
const (
	Less Kind = iota
	LessEqual
	Greater
	GreaterEqual
	Equal
	NotEqual
)

var kindSymbols = [...]string{
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Equal:        "==",
	NotEqual:     "!=",
}

var kindNames = [...]string{
	Less:         "lt",
	LessEqual:    "le",
	Greater:      "gt",
	GreaterEqual: "ge",
	Equal:        "eq",
	NotEqual:     "ne",
}

// Symbol returns the operator as written in Go source, e.g. "<=".
func (k Kind) Symbol() string {
	if int(k) < len(kindSymbols) {
		return kindSymbols[k]
	}
	return "?"
}

// String returns the short name of k: lt, le, gt, ge, eq or ne.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// ParseKind returns the Kind for a short name or an operator symbol.
func ParseKind(s string) (Kind, bool) {
	for k := Less; k <= NotEqual; k++ {
		if s == kindNames[k] || s == kindSymbols[k] {
			return k, true
		}
	}
	return 0, false
}

// holds reports whether c, the three-way result of comparing the two
// operands (-1, 0 or +1), satisfies k.
func (k Kind) holds(c int) bool {
	switch k {
	case Less:
		return c < 0
	case LessEqual:
		return c <= 0
	case Greater:
		return c > 0
	case GreaterEqual:
		return c >= 0
	case Equal:
		return c == 0
	case NotEqual:
		return c != 0
	}
	return false
}

// Operation is a binary comparison that has not been evaluated yet.
//
// Evaluate applies the comparison to the captured operands. Render writes
// "<operand1><symbol><operand2>" followed by a newline and a flush; it is
// a diagnostic projection and does not affect Evaluate.
type Operation interface {
	Evaluate() bool
	Render(s *Stream)
}

// Capture is an [Operation] over two operands of the same [Ordered] type.
//
// Capture borrows its operands: it stores pointers, never copies, and reads
// them only when evaluated or rendered. The pointed-to values must stay valid
// until the capture has been consumed.
//
// Example:
//
//	n, limit := len(queue), 64
//	diag.AssertOp(diag.Le(&n, &limit))
type Capture[T Ordered] struct {
	v1   *T
	v2   *T
	kind Kind
}

// Of captures the comparison "*v1 kind *v2".
func Of[T Ordered](v1 *T, kind Kind, v2 *T) Capture[T] {
	return Capture[T]{v1: v1, v2: v2, kind: kind}
}

// Lt captures *v1 < *v2.
func Lt[T Ordered](v1, v2 *T) Capture[T] { return Of(v1, Less, v2) }

// Le captures *v1 <= *v2.
func Le[T Ordered](v1, v2 *T) Capture[T] { return Of(v1, LessEqual, v2) }

// Gt captures *v1 > *v2.
func Gt[T Ordered](v1, v2 *T) Capture[T] { return Of(v1, Greater, v2) }

// Ge captures *v1 >= *v2.
func Ge[T Ordered](v1, v2 *T) Capture[T] { return Of(v1, GreaterEqual, v2) }

// Eq captures *v1 == *v2.
func Eq[T Ordered](v1, v2 *T) Capture[T] { return Of(v1, Equal, v2) }

// Ne captures *v1 != *v2.
func Ne[T Ordered](v1, v2 *T) Capture[T] { return Of(v1, NotEqual, v2) }

// Kind returns the comparison kind.
func (c Capture[T]) Kind() Kind {
	return c.kind
}

// Evaluate reports whether the comparison holds.
func (c Capture[T]) Evaluate() bool {
	return c.kind.holds(cmp.Compare(*c.v1, *c.v2))
}

// Render writes the operands and the operator symbol to s.
func (c Capture[T]) Render(s *Stream) {
	s.emitRef(c.v1)
	s.PrintString(c.kind.Symbol())
	s.emitRef(c.v2)
	FlushLine(s)
}

// MixedCapture is an [Operation] over two integers of different types.
//
// The operands are compared by mathematical value, so int8(-1) is less than
// uint64(0) even though converting either operand to the other's type would
// say otherwise. Like [Capture], it borrows its operands.
type MixedCapture[T1, T2 Integer] struct {
	v1   *T1
	v2   *T2
	kind Kind
}

// Mixed captures the comparison "*v1 kind *v2" for integers of any two types.
//
//	var used uint32 = 70
//	limit := 64
//	diag.AssertOp(diag.Mixed(&used, diag.LessEqual, &limit))
func Mixed[T1, T2 Integer](v1 *T1, kind Kind, v2 *T2) MixedCapture[T1, T2] {
	return MixedCapture[T1, T2]{v1: v1, v2: v2, kind: kind}
}

// Kind returns the comparison kind.
func (c MixedCapture[T1, T2]) Kind() Kind {
	return c.kind
}

// Evaluate reports whether the comparison holds.
func (c MixedCapture[T1, T2]) Evaluate() bool {
	return c.kind.holds(compareIntegers(*c.v1, *c.v2))
}

// Render writes the operands and the operator symbol to s.
func (c MixedCapture[T1, T2]) Render(s *Stream) {
	Print(s, *c.v1)
	s.PrintString(c.kind.Symbol())
	Print(s, *c.v2)
	FlushLine(s)
}

// compareIntegers returns -1, 0 or +1 as a is less than, equal to or
// greater than b by value.
func compareIntegers[T1, T2 Integer](a T1, b T2) int {
	aNeg := isSigned[T1]() && a < 0
	bNeg := isSigned[T2]() && b < 0
	switch {
	case aNeg && !bNeg:
		return -1
	case !aNeg && bNeg:
		return 1
	case aNeg && bNeg:
		return cmp.Compare(int64(a), int64(b))
	default:
		return cmp.Compare(uint64(a), uint64(b))
	}
}
