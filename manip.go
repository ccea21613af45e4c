// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

// Binary sets base 2.
func Binary(s *Stream) *Stream {
	s.SetBase(BaseBinary)
	return s
}

// Octal sets base 8.
func Octal(s *Stream) *Stream {
	s.SetBase(BaseOctal)
	return s
}

// Decimal sets base 10.
func Decimal(s *Stream) *Stream {
	s.SetBase(BaseDecimal)
	return s
}

// Hexadecimal sets base 16.
func Hexadecimal(s *Stream) *Stream {
	s.SetBase(BaseHexadecimal)
	return s
}

// FixedWidth pads integers to the full digit count of their type.
// See [Stream.SetFixed].
func FixedWidth(s *Stream) *Stream {
	s.SetFixed(true)
	return s
}

// VariableWidth drops leading zeros from integers.
// See [Stream.SetFixed].
func VariableWidth(s *Stream) *Stream {
	s.SetFixed(false)
	return s
}

// FlushLine writes a newline and flushes the sink.
func FlushLine(s *Stream) *Stream {
	s.PrintChar('\n')
	s.Flush()
	return s
}

// Flush flushes the sink.
func Flush(s *Stream) *Stream {
	s.Flush()
	return s
}
