// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import (
	"reflect"
	"unsafe"
)

// Emit writes v and returns s, so calls can be chained left to right:
//
//	s.Emit(diag.Hexadecimal).Emit(uint8(255)).Emit(diag.FlushLine) // "FF\n"
//
// Manipulators are applied to s instead of being printed. Integers of every
// width are printed in the current base and width mode; string writes its
// bytes, []byte writes up to the first NUL, [Char] writes one character,
// bool writes "true" or "false", nil writes "null", and unsafe.Pointer writes
// the address. Named types are printed according to their underlying kind.
// Values of any other kind are written as "?".
//
// Passing a non-pointer value through the any parameter may allocate for some
// types; use the typed Print methods or [Print] on allocation-sensitive paths.
func (s *Stream) Emit(v any) *Stream {
	switch v := v.(type) {
	case Manipulator:
		return v(s)
	case func(*Stream) *Stream:
		return v(s)
	case nil:
		s.PrintNil()
	case int:
		s.PrintInt(v)
	case int8:
		s.PrintInt8(v)
	case int16:
		s.PrintInt16(v)
	case int32:
		s.PrintInt32(v)
	case int64:
		s.PrintInt64(v)
	case uint:
		s.PrintUint(v)
	case uint8:
		s.PrintUint8(v)
	case uint16:
		s.PrintUint16(v)
	case uint32:
		s.PrintUint32(v)
	case uint64:
		s.PrintUint64(v)
	case uintptr:
		s.PrintUintptr(v)
	case Char:
		s.PrintChar(byte(v))
	case string:
		s.PrintString(v)
	case []byte:
		s.PrintCString(v)
	case bool:
		s.PrintBool(v)
	case unsafe.Pointer:
		s.PrintPointer(v)
	default:
		s.emitValue(reflect.ValueOf(v))
	}
	return s
}

// Print writes the integer v and returns s. Unlike [Stream.Emit] it never
// boxes v and never allocates.
func Print[T Integer](s *Stream, v T) *Stream {
	size := unsafe.Sizeof(v)
	if isSigned[T]() {
		s.printSigned(int64(v), size)
	} else {
		s.printUnsigned(uint64(v), size)
	}
	return s
}

func isSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// emitRef writes the value p points to. p is a pointer to an [Ordered] type.
// Pointers fit in an interface without boxing, so the common cases below do
// not allocate.
func (s *Stream) emitRef(p any) {
	switch p := p.(type) {
	case *int:
		s.PrintInt(*p)
	case *int8:
		s.PrintInt8(*p)
	case *int16:
		s.PrintInt16(*p)
	case *int32:
		s.PrintInt32(*p)
	case *int64:
		s.PrintInt64(*p)
	case *uint:
		s.PrintUint(*p)
	case *uint8:
		s.PrintUint8(*p)
	case *uint16:
		s.PrintUint16(*p)
	case *uint32:
		s.PrintUint32(*p)
	case *uint64:
		s.PrintUint64(*p)
	case *uintptr:
		s.PrintUintptr(*p)
	case *Char:
		s.PrintChar(byte(*p))
	case *string:
		s.PrintString(*p)
	default:
		v := reflect.ValueOf(p)
		if v.Kind() != reflect.Pointer || v.IsNil() {
			s.PrintNil()
			return
		}
		s.emitValue(v.Elem())
	}
}

// emitValue is the fallback for named types.
func (s *Stream) emitValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s.printSigned(v.Int(), v.Type().Size())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s.printUnsigned(v.Uint(), v.Type().Size())
	case reflect.String:
		s.PrintString(v.String())
	case reflect.Bool:
		s.PrintBool(v.Bool())
	case reflect.Pointer, reflect.UnsafePointer:
		if v.IsNil() {
			s.PrintNil()
			return
		}
		s.PrintUintptr(v.Pointer())
	case reflect.Invalid:
		s.PrintNil()
	default:
		s.PrintChar('?')
	}
}
