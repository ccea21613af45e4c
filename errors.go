// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package diag

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates that [Ring.Read] found no published bytes.
//
// ErrWouldBlock is a control flow signal, not a failure. The consumer should
// retry later (with backoff or yield) rather than propagating the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrAssertionFailed is the error every [*Failure] unwraps to.
var ErrAssertionFailed = errors.New("diag: assertion failed")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
