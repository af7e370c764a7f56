// SPDX-License-Identifier: BSD-2-Clause

package report

import (
	"fmt"
	"strings"

	"github.com/rvtools/rvinfo/internal/catalog"
)

// CatalogFlags renders the known flag codes and shorthand expansions.
func CatalogFlags(cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString(header("Known flags"))
	for _, code := range cat.FlagCodes() {
		fmt.Fprintf(&b, "  %s: %s\n", code, cat.FlagDescription(code))
	}

	shorthands := cat.Shorthands()
	if len(shorthands) > 0 {
		b.WriteString(header("Shorthands"))
		for _, sh := range shorthands {
			fmt.Fprintf(&b, "  %s: %s\n", sh.Letter, sh.Expansion)
		}
	}

	return b.String()
}

// CatalogExtensions renders the known extensions and their descriptions.
func CatalogExtensions(cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString(header("Known extensions"))
	names := cat.ExtensionNames()
	fmt.Fprintf(&b, "Found %d extensions\n", len(names))
	width := nameWidth(names)
	for _, name := range names {
		fmt.Fprintf(&b, "  %-*s : %s\n", width, name, cat.ExtensionDescription(name))
	}

	return b.String()
}

// CatalogProfiles renders the known profiles in catalog declaration order.
func CatalogProfiles(cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString(header("Known profiles"))
	names := cat.ProfileNames()
	width := nameWidth(names)
	for _, name := range names {
		p := cat.Profile(name)
		fmt.Fprintf(&b, "  %-*s : %d bits, %s\n", width, p.Name, p.Bits, p.Description)
	}

	return b.String()
}
