// SPDX-License-Identifier: BSD-2-Clause

package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/rvtools/rvinfo/cmd/rvinfo/internal/clierr"
	"github.com/rvtools/rvinfo/internal/catalog"
	"github.com/rvtools/rvinfo/internal/isa"
	"github.com/rvtools/rvinfo/internal/match"
	"github.com/rvtools/rvinfo/internal/report"
)

const (
	defaultCPUInfo = "/proc/cpuinfo"
	defaultDTGlob  = "/proc/device-tree/cpus/cpu@*/riscv,isa-extensions"
)

// NewReportCommand returns the `rvinfo report` command.
func NewReportCommand() *cobra.Command {
	var (
		cpuinfoPath string
		dtGlob      string
		catalogPath string
		profileName string
		dump        bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report the ISA capabilities of the local processor",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")

			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			builder := isa.New(cat)
			if err := isa.LoadCPUInfo(cpuinfoPath, builder); err != nil {
				return clierr.Wrap(clierr.CodeSource, "reading processor attributes", err)
			}
			if err := isa.LoadDeviceTree(dtGlob, builder); err != nil {
				// Device-tree access problems count as zero results.
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}

			caps := builder.Capabilities()
			for _, warn := range builder.Warnings() {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", warn)
			}

			out := cmd.OutOrStdout()
			if dump {
				spew.Fdump(out, caps)
			}

			if profileName != "" {
				p := cat.Profile(profileName)
				if p == nil {
					return clierr.Wrap(clierr.CodeProfile, "profile detail", &catalog.UnknownProfileError{Name: profileName})
				}
				fmt.Fprint(out, report.ProfileDetail(cat, caps, match.Profile(caps, p)))
				return nil
			}

			fmt.Fprint(out, report.Processor(cat, caps))
			fmt.Fprint(out, report.Profiles(cat, caps, match.All(caps, cat), verbose))
			return nil
		},
	}

	cmd.Flags().StringVar(&cpuinfoPath, "cpuinfo", defaultCPUInfo, "Path to the processor attribute file")
	cmd.Flags().StringVar(&dtGlob, "dt-glob", defaultDTGlob, "Glob pattern for device-tree extension files")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a catalog file (default: built-in catalog)")
	cmd.Flags().StringVar(&profileName, "profile", "", "Show the detail view for one profile")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the parsed capability set")
	_ = cmd.Flags().MarkHidden("dump")

	return cmd
}
