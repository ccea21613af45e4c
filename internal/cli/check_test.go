// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/diag"
)

func TestCheckHolds(t *testing.T) {
	tests := [][]string{
		{"check", "3", "lt", "5"},
		{"check", "3", "<=", "3"},
		{"check", "--", "-1", "gt", "-2"},
		{"check", "0x10", "eq", "16"},
		{"check", "1", "!=", "2"},
	}
	for _, args := range tests {
		out, err := execute(t, args...)
		require.NoError(t, err, args)
		assert.Equal(t, "ok\n", out, args)
	}
}

func TestCheckFails(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"check", "5", "lt", "3"}, "5<3\n"},
		{[]string{"check", "4", "ne", "4"}, "4!=4\n"},
		{[]string{"check", "--", "-9223372036854775808", ">=", "0"}, "-9223372036854775808>=0\n"},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		require.Error(t, err, tt.args)
		assert.Equal(t, tt.want, out)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.ErrorIs(t, err, diag.ErrAssertionFailed)

		var failure *diag.Failure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, tt.want, failure.Message)
		assert.Equal(t, "check", failure.Function)
	}
}

func TestCheckErrors(t *testing.T) {
	tests := [][]string{
		{"check", "1", "=~", "2"},
		{"check", "x", "lt", "2"},
		{"check", "1", "lt", "99999999999999999999"},
		{"check", "1", "lt"},
	}
	for _, args := range tests {
		out, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Equal(t, ExitCommandError, GetExitCode(err), args)
		assert.Empty(t, out)
	}
}
