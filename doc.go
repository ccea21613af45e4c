// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package diag provides allocation-free diagnostic output for environments
// without a general-purpose runtime library.
//
// The package has two parts:
//
//   - Stream: formats integers (any base from 2 to 16, signed or unsigned,
//     variable or fixed width), pointers, characters and text, writing byte
//     by byte to an abstract [Sink].
//   - Operation captures: a comparison such as "i < n" is captured with
//     borrowed operands and evaluated at the check point. Only when it fails
//     are the operands rendered into a small bounded buffer and reported to
//     a [Hook].
//
// # Quick Start
//
//	var storage [64]byte
//	buf := diag.NewMemoryBuffer(storage[:], nil)
//	s := diag.NewStream(buf)
//
//	s.Emit(diag.Hexadecimal).Emit(uint8(255))        // "FF"
//	s.Emit(diag.Decimal).Emit(int8(-128))            // "-128"
//	s.Emit(diag.Binary).Emit(diag.FixedWidth).Emit(uint8(5)) // "00000101"
//
// Typed print methods avoid boxing entirely:
//
//	s.SetBase(8)
//	s.PrintUint16(8) // "10"
//
// # Bases and Width
//
// The base is run-time state of a Stream. [Stream.SetBase] accepts 2 to 16
// and silently ignores anything else:
//
//	s.SetBase(16)
//	s.SetBase(17) // ignored, still hexadecimal
//
// In variable-width mode leading zeros are dropped and zero prints as "0".
// In fixed-width mode every integer is padded to the digit count of its type
// in the current base: uint8 in base 10 always takes three digits, uint32 in
// base 16 eight.
//
// The digit count comes from [GreatestPower], the greatest power of the base
// the type can hold. Digits are produced from that power downwards, so no
// scratch buffer is needed.
//
// # Sinks
//
// A [Sink] accepts bytes with Put and is flushed with Flush. It never reports
// errors; a full sink drops bytes. The package provides:
//
//	MemoryBuffer - bounded buffer over caller storage (capture buffer)
//	Ring         - SPSC byte ring drained by another goroutine
//	WriterSink   - adapter to io.Writer for hosted programs
//
// # Assertions
//
// Boolean assertions report the given text:
//
//	diag.Assert(p != nil, "p != nil")
//
// Comparison assertions capture their operands by pointer and report the
// values on failure:
//
//	i, n := 5, 3
//	diag.AssertOp(diag.Lt(&i, &n)) // reports "5<3\n"
//
// Operands of different integer types are compared by value with [Mixed]:
//
//	var used uint32 = 70
//	limit := 64
//	diag.AssertOp(diag.Mixed(&used, diag.LessEqual, &limit))
//
// Failures go to a [Hook]. The package-level functions use the default
// [Asserter], whose hook is [Abort]: print a report to standard error and
// exit with status 134. Inject another hook with [NewAsserter] or
// [SetDefault]; [Panic] panics with a [*Failure] instead.
//
// Building with the nodiag tag turns every assertion into a no-op:
//
//	go build -tags nodiag
//
// # Thread Safety
//
// Stream, MemoryBuffer, WriterSink and the default Asserter are meant for a
// single goroutine. Failure reports share one capture buffer, so assertions
// must not fail on two goroutines at once. Ring allows one producer goroutine and one consumer
// goroutine.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// backoff, [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package diag
