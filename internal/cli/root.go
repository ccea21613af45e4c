// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the diagfmt command line.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the diagfmt CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagfmt",
		Short: "Render integers and comparisons the way diag does",
		Long: `diagfmt exercises the diag formatter from the command line.

It prints integers in any base from 2 to 16, the greatest-power table that
fixes the digit count per integer width, and the diagnostic a failing
comparison renders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewFormatCommand())
	cmd.AddCommand(NewPowersCommand())
	cmd.AddCommand(NewCheckCommand())

	return cmd
}
