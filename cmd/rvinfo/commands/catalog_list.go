// SPDX-License-Identifier: BSD-2-Clause

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rvtools/rvinfo/internal/report"
)

// NewProfilesCommand returns the `rvinfo profiles` command.
func NewProfilesCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles known to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.CatalogProfiles(cat))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a catalog file (default: built-in catalog)")

	return cmd
}

// NewExtensionsCommand returns the `rvinfo extensions` command.
func NewExtensionsCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "List the ISA extensions known to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.CatalogExtensions(cat))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a catalog file (default: built-in catalog)")

	return cmd
}

// NewFlagsCommand returns the `rvinfo flags` command.
func NewFlagsCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "flags",
		Short: "List the base-architecture flags known to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.CatalogFlags(cat))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a catalog file (default: built-in catalog)")

	return cmd
}
