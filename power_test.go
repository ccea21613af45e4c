// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag_test

import (
	"math/bits"
	"testing"

	"code.hybscloud.com/diag"
)

// =============================================================================
// Greatest Power
// =============================================================================

func TestGreatestPowerKnownValues(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"uint8/2", uint64(diag.GreatestPower[uint8](2)), 128},
		{"uint8/3", uint64(diag.GreatestPower[uint8](3)), 243},
		{"uint8/7", uint64(diag.GreatestPower[uint8](7)), 49},
		{"uint8/10", uint64(diag.GreatestPower[uint8](10)), 100},
		{"uint8/15", uint64(diag.GreatestPower[uint8](15)), 225},
		{"uint8/16", uint64(diag.GreatestPower[uint8](16)), 16},
		{"uint16/2", uint64(diag.GreatestPower[uint16](2)), 32768},
		{"uint16/10", uint64(diag.GreatestPower[uint16](10)), 10000},
		{"uint16/16", uint64(diag.GreatestPower[uint16](16)), 4096},
		{"uint32/10", uint64(diag.GreatestPower[uint32](10)), 1000000000},
		{"uint32/16", uint64(diag.GreatestPower[uint32](16)), 1 << 28},
		{"uint64/10", diag.GreatestPower[uint64](10), 10000000000000000000},
		{"uint64/16", diag.GreatestPower[uint64](16), 1 << 60},
		{"uint64/2", diag.GreatestPower[uint64](2), 1 << 63},
		{"int8/2", uint64(diag.GreatestPower[int8](2)), 64},
		{"int8/10", uint64(diag.GreatestPower[int8](10)), 100},
		{"int32/2", uint64(diag.GreatestPower[int32](2)), 1 << 30},
		{"int32/10", uint64(diag.GreatestPower[int32](10)), 1000000000},
		{"int64/10", uint64(diag.GreatestPower[int64](10)), 1000000000000000000},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("GreatestPower %s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestGreatestPowerInvalidBase(t *testing.T) {
	for _, base := range []int{-1, 0, 1, 17, 36, 256} {
		if got := diag.GreatestPower[uint32](base); got != 0 {
			t.Errorf("GreatestPower[uint32](%d): got %d, want 0", base, got)
		}
		if got := diag.GreatestPower[int64](base); got != 0 {
			t.Errorf("GreatestPower[int64](%d): got %d, want 0", base, got)
		}
	}
}

// TestGreatestPowerUint64Property checks every base against 128-bit
// multiplication: the power must be a power of the base, and one more
// multiplication must overflow.
func TestGreatestPowerUint64Property(t *testing.T) {
	for base := diag.BaseMin; base <= diag.BaseMax; base++ {
		p := diag.GreatestPower[uint64](base)
		if p == 0 {
			t.Fatalf("base %d: got 0", base)
		}

		rest := p
		for rest%uint64(base) == 0 {
			rest /= uint64(base)
		}
		if rest != 1 {
			t.Errorf("base %d: %d is not a power of the base", base, p)
		}

		if hi, _ := bits.Mul64(p, uint64(base)); hi == 0 {
			t.Errorf("base %d: %d * base does not overflow", base, p)
		}
	}
}

func TestGreatestPowerUint16Property(t *testing.T) {
	for base := diag.BaseMin; base <= diag.BaseMax; base++ {
		p := uint32(diag.GreatestPower[uint16](base))
		if p*uint32(base) <= 0xFFFF {
			t.Errorf("base %d: %d * base still fits uint16", base, p)
		}
		if p > 0xFFFF {
			t.Errorf("base %d: %d does not fit uint16", base, p)
		}
	}
}

// =============================================================================
// Digit Encoder
// =============================================================================

func TestDigit(t *testing.T) {
	want := "0123456789ABCDEF"
	for n := range 16 {
		if got := diag.Digit(uint8(n)); got != want[n] {
			t.Errorf("Digit(%d): got %q, want %q", n, got, want[n])
		}
	}
	for _, n := range []uint8{16, 17, 255} {
		if got := diag.Digit(n); got != '?' {
			t.Errorf("Digit(%d): got %q, want '?'", n, got)
		}
	}
}
