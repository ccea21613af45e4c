// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import (
	"io"
	"os"
)

// Failure describes a failed assertion.
//
// For a boolean assertion Message is the assertion text as given by the
// caller. For an operation capture it is the rendered comparison, such as
// "5<3\n".
type Failure struct {
	Message  string
	File     string
	Line     uint
	Function string
}

// Error formats f like the C library's assertion message:
//
//	file:line: function: Assertion `message' failed.
func (f *Failure) Error() string {
	var storage [CaptureSize * 2]byte
	buf := NewMemoryBuffer(storage[:], nil)
	writeFailure(NewStream(buf), f.Message, f.File, f.Line, f.Function)
	return string(buf.Bytes())
}

// Unwrap returns [ErrAssertionFailed] for errors.Is.
func (f *Failure) Unwrap() error {
	return ErrAssertionFailed
}

// writeFailure renders a failure report without a trailing newline.
// A trailing newline of a rendered capture is trimmed from message.
func writeFailure(s *Stream, message, file string, line uint, function string) {
	if n := len(message); n > 0 && message[n-1] == '\n' {
		message = message[:n-1]
	}
	s.PrintString(file)
	s.PrintChar(':')
	s.PrintUint(line)
	s.PrintString(": ")
	if function != "" {
		s.PrintString(function)
		s.PrintString(": ")
	}
	s.PrintString("Assertion `")
	s.PrintString(message)
	s.PrintString("' failed.")
}

// HookFunc adapts a function to a [Hook].
type HookFunc func(message, file string, line uint, function string)

// Fail calls h.
func (h HookFunc) Fail(message, file string, line uint, function string) {
	h(message, file, line, function)
}

// Abort is the default [Hook]. It writes the failure report to Out (standard
// error if nil) and terminates the process with exit status 134, the status of
// a process killed by SIGABRT.
type Abort struct {
	Out io.Writer

	// Exit replaces os.Exit when set. If Exit returns, Fail returns.
	Exit func(code int)
}

// Fail reports the failure and exits.
func (a Abort) Fail(message, file string, line uint, function string) {
	out := a.Out
	if out == nil {
		out = os.Stderr
	}
	exit := a.Exit
	if exit == nil {
		exit = os.Exit
	}

	ws := NewWriterSink(out)
	s := NewStream(ws)
	writeFailure(s, message, file, line, function)
	FlushLine(s)
	exit(134)
}

// Panic is a [Hook] that panics with a [*Failure].
// Tests and programs that recover from assertion failures use it.
type Panic struct{}

// Fail panics.
func (Panic) Fail(message, file string, line uint, function string) {
	panic(&Failure{Message: message, File: file, Line: line, Function: function})
}
