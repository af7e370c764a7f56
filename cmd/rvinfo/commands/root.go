// SPDX-License-Identifier: BSD-2-Clause

/*
rvinfo - Report RISC-V processor ISA capabilities and profile support.

Copyright (c) 2025, the rvinfo authors
BSD-2-Clause license, see https://opensource.org/license/BSD-2-Clause
*/

// Package commands contains the Cobra subcommands for the rvinfo CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvtools/rvinfo/cmd/rvinfo/internal/clierr"
	"github.com/rvtools/rvinfo/internal/catalog"
)

// NewRootCmd constructs the rvinfo root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("RVINFO_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "rvinfo",
		Short:         "rvinfo - RISC-V processor capability reporter",
		Long:          "rvinfo reads the kernel-exposed ISA descriptors of a RISC-V processor and reports its base architecture, extensions, and profile support.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of rvinfo",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rvinfo version %s\n", version)
		},
	})

	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewProfilesCommand())
	cmd.AddCommand(NewExtensionsCommand())
	cmd.AddCommand(NewFlagsCommand())

	return cmd
}

// loadCatalog resolves the --catalog flag: the embedded catalog when empty,
// otherwise the document at the given path.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, clierr.Wrap(clierr.CodeCatalog, "loading catalog", err)
	}
	return cat, nil
}
