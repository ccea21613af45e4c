// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !nodiag

package diag

// Enabled is true unless the package is built with the nodiag tag.
// Assertion entry points check it first, so disabled builds compile the
// checks away.
const Enabled = true
