// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// The race detector instruments memory accesses and allocates on its own,
// so allocation counts are only checked in normal builds.

package diag_test

import (
	"testing"

	"code.hybscloud.com/diag"
)

// =============================================================================
// Allocation
// =============================================================================

func TestZeroAllocations(t *testing.T) {
	var storage [256]byte
	buf := diag.NewMemoryBuffer(storage[:], nil)
	s := diag.NewStream(buf)

	rec := &recorder{}
	a := diag.NewAsserter(rec)
	prev := diag.SetDefault(a)
	defer diag.SetDefault(prev)

	i64 := int64(-9223372036854775808)
	u8 := uint8(255)
	u16 := uint16(0xCAFE)
	three, five := 3, 5
	pass := diag.Lt(&three, &five)
	mixed := diag.Mixed(&u8, diag.Greater, &i64)

	tests := []struct {
		name string
		f    func()
	}{
		{"PrintInt64", func() { s.PrintInt64(i64) }},
		{"PrintUint8", func() { s.PrintUint8(u8) }},
		{"Print[uint16]", func() { diag.Print(s, u16) }},
		{"Print[int64] fixed hex", func() {
			s.SetBase(16)
			s.SetFixed(true)
			diag.Print(s, i64)
			s.SetBase(10)
			s.SetFixed(false)
		}},
		{"Emit", func() {
			s.Emit(diag.Hexadecimal).Emit(uint64(0xDEADBEEF)).Emit(diag.Decimal).Emit(diag.Flush)
		}},
		{"Capture.Render", func() { pass.Render(s) }},
		{"MixedCapture.Render", func() { mixed.Render(s) }},
		{"Report pass", func() { diag.Report(pass, "f.go", "f", 1, rec) }},
		{"Report mixed pass", func() { diag.Report(mixed, "f.go", "f", 1, rec) }},
		{"CheckOp pass", func() { diag.CheckOp(a, pass) }},
		{"AssertOp pass", func() { diag.AssertOp(pass) }},
		{"Assert pass", func() { diag.Assert(three < five, "three < five") }},
	}
	for _, tt := range tests {
		buf.Reset()
		if allocs := testing.AllocsPerRun(100, tt.f); allocs != 0 {
			t.Errorf("%s: got %v allocs/op, want 0", tt.name, allocs)
		}
	}
	if rec.calls != 0 {
		t.Fatalf("passing operations: got %d hook calls", rec.calls)
	}
}

// TestReportFailureAllocations checks that a failing report allocates only
// the message copy handed to the hook.
func TestReportFailureAllocations(t *testing.T) {
	var hook diag.Hook = diag.HookFunc(func(message, file string, line uint, function string) {})
	three, five := 3, 5
	fail := diag.Lt(&five, &three)

	allocs := testing.AllocsPerRun(100, func() {
		diag.Report(fail, "f.go", "f", 1, hook)
	})
	if allocs > 1 {
		t.Fatalf("Report fail: got %v allocs/op, want at most 1", allocs)
	}
}
