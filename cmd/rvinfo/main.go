// SPDX-License-Identifier: BSD-2-Clause

/*
rvinfo - Report RISC-V processor ISA capabilities and profile support.

Copyright (c) 2025, the rvinfo authors
BSD-2-Clause license, see https://opensource.org/license/BSD-2-Clause
*/

package main

import (
	"fmt"
	"os"

	"github.com/rvtools/rvinfo/cmd/rvinfo/commands"
	"github.com/rvtools/rvinfo/cmd/rvinfo/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
