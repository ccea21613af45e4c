// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

// Base bounds and the bases selected by the manipulators.
const (
	BaseMin         = 2
	BaseBinary      = 2
	BaseOctal       = 8
	BaseDecimal     = 10
	BaseHexadecimal = 16
	BaseMax         = 16
)

// GreatestPower returns the greatest power of base that T can hold.
//
// The result is base^k for the largest k such that base^k does not overflow
// T. For example:
//
//	GreatestPower[uint16](10) == 10000      // 10^5 would overflow
//	GreatestPower[int32](2)   == 1073741824 // 2^31 is one above MaxInt32
//	GreatestPower[uint8](16)  == 16
//
// The power is found by repeated multiplication starting from base^1. The
// loop stops one step before overflow, detected when dividing the next
// candidate by base no longer yields the previous power.
//
// Returns 0 if base is outside [BaseMin, BaseMax].
func GreatestPower[T Integer](base int) T {
	if base < BaseMin || base > BaseMax {
		return 0
	}

	b := T(base)
	power := b
	for {
		next := power * b
		if next/b != power {
			return power
		}
		power = next
	}
}

// Widths of the unsigned types the formatter knows about.
const (
	width8 = iota
	width16
	width32
	width64
	widthCount
)

// powerTable caches GreatestPower for every unsigned width and base.
// Entries for bases 0 and 1 stay zero.
var powerTable = func() (t [widthCount][BaseMax + 1]uint64) {
	for base := BaseMin; base <= BaseMax; base++ {
		t[width8][base] = uint64(GreatestPower[uint8](base))
		t[width16][base] = uint64(GreatestPower[uint16](base))
		t[width32][base] = uint64(GreatestPower[uint32](base))
		t[width64][base] = GreatestPower[uint64](base)
	}
	return t
}()

// greatestPower returns the cached power for an unsigned type of size bytes.
func greatestPower(size uintptr, base uint8) uint64 {
	switch size {
	case 1:
		return powerTable[width8][base]
	case 2:
		return powerTable[width16][base]
	case 4:
		return powerTable[width32][base]
	default:
		return powerTable[width64][base]
	}
}

const digits = "0123456789ABCDEF"

// Digit returns the printable character for a numeral in [0, 15]:
// '0' through '9', then 'A' through 'F'. Other values yield '?'.
func Digit(n uint8) byte {
	if int(n) >= len(digits) {
		return '?'
	}
	return digits[n]
}
