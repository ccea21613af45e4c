// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import "unsafe"

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// Sizes in bytes of the platform-dependent integer types.
const (
	ptrSize = unsafe.Sizeof(uintptr(0))
	intSize = unsafe.Sizeof(int(0))
)

// pad is cache line padding to prevent false sharing.
type pad [64]byte
