// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

// Sink is the byte destination a [Stream] writes to.
//
// Sink is append-only: the Stream never reads it back and never owns its
// storage. There is no status channel. A sink that cannot accept a byte
// (for example a bounded buffer that is full) must drop it silently, because
// the Stream never checks a result and never reports one to its caller.
//
// Implementations are not required to be safe for concurrent use. Exactly
// one Stream should write to a given Sink at a time.
//
// Example:
//
//	var storage [64]byte
//	buf := diag.NewMemoryBuffer(storage[:], nil)
//	s := diag.NewStream(buf)
//	s.Emit(diag.Hexadecimal).Emit(255)
//	// buf.Bytes() == []byte("FF")
type Sink interface {
	// Put appends a single byte.
	Put(c byte)

	// Flush hands buffered bytes to the underlying device, if any.
	Flush()
}

// WriteFunc confirms bytes handed over by [MemoryBuffer.Flush].
// It reports whether p was consumed. A false result keeps the bytes
// pending, so the next Flush offers them again.
type WriteFunc func(p []byte) bool

// NoWrite accepts every flush without doing anything.
// It pairs with a [MemoryBuffer] whose contents are read back directly,
// such as the capture buffer of a failing assertion.
func NoWrite(p []byte) bool {
	return true
}

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types, including uintptr.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of all integer types.
type Integer interface {
	Signed | Unsigned
}

// Ordered is the set of types a [Capture] can compare and render.
// Floating-point types are not supported.
type Ordered interface {
	Integer | ~string
}

// Char is a byte that [Stream.Emit] renders as a character instead of a
// number. Go has no distinct character type (byte is uint8), so values meant
// as text must be converted explicitly:
//
//	s.Emit(diag.Char('x'))
type Char byte

// Manipulator is a state transition applied to a Stream in an Emit chain.
//
//	s.Emit(diag.Hexadecimal).Emit(v).Emit(diag.FlushLine)
type Manipulator func(s *Stream) *Stream

// Hook receives assertion failures.
//
// Fail is conventionally non-returning: implementations abort the process or
// panic. A hook that returns (for example one that records failures in tests)
// makes the assertion return normally.
type Hook interface {
	Fail(message, file string, line uint, function string)
}
