// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import "unsafe"

// Stream formats values as text and writes them to a [Sink].
//
// A Stream has two pieces of state: the base used for integers (2 to 16,
// default 10) and the fixed-width flag (default false). In fixed-width mode
// integers are padded with leading zeros to the full digit count of their
// type in the current base.
//
// No Stream operation allocates and none can fail. Bytes rejected by the
// sink are lost silently.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	sink  Sink
	base  uint8
	fixed bool
}

// NewStream creates a Stream writing to sink with base 10 and variable width.
//
// Panics if sink is nil.
func NewStream(sink Sink) *Stream {
	if sink == nil {
		panic("diag: nil sink")
	}
	return &Stream{sink: sink, base: BaseDecimal}
}

// SetBase sets the base for integer output.
// Values outside [BaseMin, BaseMax] are ignored and the current base is kept.
func (s *Stream) SetBase(base int) {
	if base >= BaseMin && base <= BaseMax {
		s.base = uint8(base)
	}
}

// Base returns the current base.
func (s *Stream) Base() int {
	return int(s.base)
}

// SetFixed selects fixed-width (true) or variable-width (false) output.
func (s *Stream) SetFixed(fixed bool) {
	s.fixed = fixed
}

// Fixed reports whether fixed-width output is active.
func (s *Stream) Fixed() bool {
	return s.fixed
}

// Flush flushes the sink.
func (s *Stream) Flush() {
	s.sink.Flush()
}

// PrintChar writes c as a single character.
func (s *Stream) PrintChar(c byte) {
	s.sink.Put(c)
}

// PrintString writes every byte of v.
func (s *Stream) PrintString(v string) {
	for i := 0; i < len(v); i++ {
		s.sink.Put(v[i])
	}
}

// PrintCString writes the bytes of v up to, not including, the first NUL.
// All of v is written if it contains no NUL.
func (s *Stream) PrintCString(v []byte) {
	for _, c := range v {
		if c == 0 {
			return
		}
		s.sink.Put(c)
	}
}

// PrintBool writes "true" or "false".
func (s *Stream) PrintBool(v bool) {
	if v {
		s.PrintString("true")
		return
	}
	s.PrintString("false")
}

// PrintNil writes "null".
func (s *Stream) PrintNil() {
	s.PrintString("null")
}

// PrintPointer writes the address p refers to as an unsigned integer.
func (s *Stream) PrintPointer(p unsafe.Pointer) {
	s.PrintUintptr(uintptr(p))
}

// PrintUintptr writes v as a pointer-sized unsigned integer.
func (s *Stream) PrintUintptr(v uintptr) {
	s.printUnsigned(uint64(v), ptrSize)
}

// PrintUint8 and the other integer printers write v in the current base,
// honouring the fixed-width flag for the width of v's type.
func (s *Stream) PrintUint8(v uint8)   { s.printUnsigned(uint64(v), 1) }
func (s *Stream) PrintUint16(v uint16) { s.printUnsigned(uint64(v), 2) }
func (s *Stream) PrintUint32(v uint32) { s.printUnsigned(uint64(v), 4) }
func (s *Stream) PrintUint64(v uint64) { s.printUnsigned(v, 8) }
func (s *Stream) PrintUint(v uint)     { s.printUnsigned(uint64(v), intSize) }

func (s *Stream) PrintInt8(v int8)   { s.printSigned(int64(v), 1) }
func (s *Stream) PrintInt16(v int16) { s.printSigned(int64(v), 2) }
func (s *Stream) PrintInt32(v int32) { s.printSigned(int64(v), 4) }
func (s *Stream) PrintInt64(v int64) { s.printSigned(v, 8) }
func (s *Stream) PrintInt(v int)     { s.printSigned(int64(v), intSize) }

// printSigned writes a sign for negative values and then the magnitude.
// The magnitude is taken in the unsigned domain so that the most negative
// value of each width has a representable magnitude.
func (s *Stream) printSigned(v int64, size uintptr) {
	if v < 0 {
		s.sink.Put('-')
		s.printUnsigned(-uint64(v), size)
		return
	}
	s.printUnsigned(uint64(v), size)
}

// printUnsigned writes v, an unsigned value of size bytes, in the current
// base. The loop walks the digit places from the greatest power of the base
// that fits the type down to 1. Leading zeros are skipped until the first
// non-zero digit unless fixed-width output is active.
func (s *Stream) printUnsigned(v uint64, size uintptr) {
	if !s.fixed && v == 0 {
		s.sink.Put('0')
		return
	}

	base := uint64(s.base)
	emit := s.fixed
	for power := greatestPower(size, s.base); power >= 1; power /= base {
		digit := v / power
		rem := v % power

		emit = emit || digit > 0
		if emit {
			s.sink.Put(Digit(uint8(digit)))
			v = rem
		}
	}
}
