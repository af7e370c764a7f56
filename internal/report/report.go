// SPDX-License-Identifier: BSD-2-Clause

/*
rvinfo - Report RISC-V processor ISA capabilities and profile support.

Copyright (c) 2025, the rvinfo authors
BSD-2-Clause license, see https://opensource.org/license/BSD-2-Clause
*/

// Package report renders the core model (capability set, match results,
// catalog listings) as human-readable text. It holds no logic of its own:
// everything it prints is produced by the catalog, isa, and match packages.
package report

import (
	"fmt"
	"strings"

	"github.com/rvtools/rvinfo/internal/catalog"
	"github.com/rvtools/rvinfo/internal/isa"
	"github.com/rvtools/rvinfo/internal/match"
)

func header(title string) string {
	return fmt.Sprintf("\n%s\n%s\n", title, strings.Repeat("=", len(title)))
}

func nameWidth(names []string) int {
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	return width
}

// Processor renders the base architecture and extension sections.
func Processor(cat *catalog.Catalog, caps *isa.CapabilitySet) string {
	var b strings.Builder

	b.WriteString(header("Base architecture"))
	if caps.BaseName == "" {
		b.WriteString("No base architecture reported\n")
	} else {
		fmt.Fprintf(&b, "%s (%d bits)\n", caps.BaseName, caps.Bits)
	}
	for _, code := range caps.Flags.Codes() {
		fmt.Fprintf(&b, "  %s: %s\n", code, cat.FlagDescription(code))
	}

	b.WriteString(header("ISA extensions"))
	exts := caps.Extensions()
	fmt.Fprintf(&b, "Found %d extensions\n", len(exts))
	width := nameWidth(exts)
	for _, name := range exts {
		fmt.Fprintf(&b, "  %-*s : %s\n", width, name, cat.ExtensionDescription(name))
	}

	return b.String()
}

// Profiles renders the per-profile support table. In verbose mode every
// unsatisfied requirement is itemized with its description.
func Profiles(cat *catalog.Catalog, caps *isa.CapabilitySet, results []match.Result, verbose bool) string {
	var b strings.Builder

	b.WriteString(header("Profile support"))
	names := make([]string, 0, len(results))
	for _, res := range results {
		names = append(names, res.Profile.Name)
	}
	width := nameWidth(names)
	for _, res := range results {
		verdict := "no"
		if res.Supported {
			verdict = "yes"
		}
		fmt.Fprintf(&b, "  %-*s : %s\n", width, res.Profile.Name, verdict)
		if verbose {
			writeMissing(&b, cat, caps, res, "    ")
		}
	}

	return b.String()
}

// ProfileDetail renders one profile's definition and verdict.
func ProfileDetail(cat *catalog.Catalog, caps *isa.CapabilitySet, res match.Result) string {
	var b strings.Builder
	p := res.Profile

	b.WriteString(header("Profile " + p.Name))
	if p.Description != "" {
		b.WriteString(p.Description + "\n")
	}
	fmt.Fprintf(&b, "%d bits, %s endian\n", p.Bits, p.Endian)
	fmt.Fprintf(&b, "Mandatory flags: %s\n", flagString(p.MandatoryFlags))
	fmt.Fprintf(&b, "Optional flags: %s\n", flagString(p.OptionalFlags))
	fmt.Fprintf(&b, "Mandatory extensions: %s\n", extString(p.MandatoryExtensions))
	fmt.Fprintf(&b, "Optional extensions: %s\n", extString(p.OptionalExtensions))

	verdict := "no"
	if res.Supported {
		verdict = "yes"
	}
	fmt.Fprintf(&b, "Supported by %s: %s\n", caps.BaseName, verdict)
	writeMissing(&b, cat, caps, res, "  ")

	return b.String()
}

func writeMissing(b *strings.Builder, cat *catalog.Catalog, caps *isa.CapabilitySet, res match.Result, indent string) {
	if caps.Bits != res.Profile.Bits {
		fmt.Fprintf(b, "%srequires %d bits, processor reports %d\n", indent, res.Profile.Bits, caps.Bits)
	}
	writeMissingFlags(b, cat, "missing mandatory flags:", res.MissingMandatoryFlags, indent)
	writeMissingFlags(b, cat, "missing optional flags:", res.MissingOptionalFlags, indent)
	writeMissingExts(b, cat, "missing mandatory extensions:", res.MissingMandatoryExtensions, indent)
	writeMissingExts(b, cat, "missing optional extensions:", res.MissingOptionalExtensions, indent)
}

func writeMissingFlags(b *strings.Builder, cat *catalog.Catalog, title string, codes []catalog.FlagCode, indent string) {
	if len(codes) == 0 {
		return
	}
	fmt.Fprintf(b, "%s%s\n", indent, title)
	for _, code := range codes {
		fmt.Fprintf(b, "%s  %s: %s\n", indent, code, cat.FlagDescription(code))
	}
}

func writeMissingExts(b *strings.Builder, cat *catalog.Catalog, title string, names []string, indent string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "%s%s\n", indent, title)
	width := nameWidth(names)
	for _, name := range names {
		fmt.Fprintf(b, "%s  %-*s : %s\n", indent, width, name, cat.ExtensionDescription(name))
	}
}

func flagString(codes []catalog.FlagCode) string {
	if len(codes) == 0 {
		return "none"
	}
	var b strings.Builder
	for _, code := range codes {
		b.WriteByte(byte(code))
	}
	return b.String()
}

func extString(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
