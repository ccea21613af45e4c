// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build nodiag

package diag

// Enabled is false when the package is built with the nodiag tag.
const Enabled = false
