// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import "runtime"

// CaptureSize is the capacity of the buffer a failing [Operation] is
// rendered into. Longer diagnostics are truncated.
const CaptureSize = 256

// Report evaluates op and calls hook if the comparison does not hold.
//
// On success Report returns without any other effect. On failure it renders
// op through a [Stream] into a package-level [MemoryBuffer] of [CaptureSize]
// bytes and passes a copy of the rendered text, file, line and function to
// hook.Fail. Report is not safe for concurrent use.
// Whether hook.Fail returns is up to the hook; Report does not retry.
func Report[O Operation](op O, file, function string, line uint, hook Hook) {
	if op.Evaluate() {
		return
	}
	fail(op, file, function, line, hook)
}

// capture is the rendering state of a failing operation. It is reused by
// every report, so reporting is not safe for concurrent use. The hook gets a
// copy of the rendered bytes, which is the only allocation on this path.
var capture struct {
	storage [CaptureSize]byte
	buf     MemoryBuffer
	stream  Stream
}

// fail renders an operation known to have failed and calls hook.
func fail[O Operation](op O, file, function string, line uint, hook Hook) {
	c := &capture
	c.buf = MemoryBuffer{storage: c.storage[:], write: NoWrite}
	c.stream = Stream{sink: &c.buf, base: BaseDecimal}
	op.Render(&c.stream)

	hook.Fail(string(c.buf.Bytes()), file, line, function)
}

// Asserter checks assertions and reports failures to an injected [Hook].
//
// The call site (file, line and function) is looked up only when an
// assertion fails.
type Asserter struct {
	hook Hook
}

// NewAsserter creates an Asserter reporting to hook.
// A nil hook selects [Abort].
func NewAsserter(hook Hook) *Asserter {
	if hook == nil {
		hook = Abort{}
	}
	return &Asserter{hook: hook}
}

// Hook returns the hook failures are reported to.
func (a *Asserter) Hook() Hook {
	return a.hook
}

// That reports assertion as the failure message if ok is false.
//
//	a.That(len(buf) <= cap(buf), "len(buf) <= cap(buf)")
func (a *Asserter) That(ok bool, assertion string) {
	if !Enabled || ok {
		return
	}
	file, line, function := caller(1)
	a.hook.Fail(assertion, file, line, function)
}

// Op evaluates op and reports it if it does not hold.
//
// op is evaluated once. Passing a [Capture] through the Operation interface
// boxes it; the generic [CheckOp] avoids that.
func (a *Asserter) Op(op Operation) {
	if !Enabled || op.Evaluate() {
		return
	}
	file, line, function := caller(1)
	fail(op, file, function, line, a.hook)
}

// CheckOp is the generic form of [Asserter.Op].
func CheckOp[O Operation](a *Asserter, op O) {
	if !Enabled || op.Evaluate() {
		return
	}
	file, line, function := caller(1)
	fail(op, file, function, line, a.hook)
}

var std = NewAsserter(nil)

// Default returns the Asserter used by [Assert] and [AssertOp].
func Default() *Asserter {
	return std
}

// SetDefault replaces the Asserter used by [Assert] and [AssertOp] and
// returns the previous one. A nil a restores an Asserter with the [Abort]
// hook. Like the rest of the package, SetDefault is not synchronized.
func SetDefault(a *Asserter) *Asserter {
	if a == nil {
		a = NewAsserter(nil)
	}
	prev := std
	std = a
	return prev
}

// Assert reports assertion through the default Asserter if ok is false.
// It is a no-op in builds with the nodiag tag.
//
//	diag.Assert(p != nil, "p != nil")
func Assert(ok bool, assertion string) {
	if !Enabled || ok {
		return
	}
	file, line, function := caller(1)
	std.hook.Fail(assertion, file, line, function)
}

// AssertOp evaluates op and reports it through the default Asserter if it
// does not hold. It is a no-op in builds with the nodiag tag.
//
//	diag.AssertOp(diag.Lt(&i, &n))
func AssertOp[O Operation](op O) {
	if !Enabled || op.Evaluate() {
		return
	}
	file, line, function := caller(1)
	fail(op, file, function, line, std.hook)
}

// caller returns the location skip frames above its caller.
func caller(skip int) (file string, line uint, function string) {
	pc, file, l, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0, ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return file, uint(l), function
}
