// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command diagfmt renders integers and comparison diagnostics with diag.
package main

import (
	"fmt"
	"os"

	"code.hybscloud.com/diag/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "diagfmt:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
