// SPDX-License-Identifier: BSD-2-Clause

/*
rvinfo - Report RISC-V processor ISA capabilities and profile support.

Copyright (c) 2025, the rvinfo authors
BSD-2-Clause license, see https://opensource.org/license/BSD-2-Clause
*/

// Package isa builds the normalized capability model of one RISC-V processor
// from the kernel-exposed text descriptors: the colon-delimited attribute
// stream (/proc/cpuinfo) and NUL-delimited device-tree properties.
package isa

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rvtools/rvinfo/internal/catalog"
)

// CapabilitySet is the normalized architecture of one processor: its base
// name (for example RV64IMAFDCH), bit width, single-letter flags, and named
// extensions. It is built by a Builder and read-only afterwards.
type CapabilitySet struct {
	BaseName string
	Bits     int
	Flags    catalog.FlagSet

	exts map[string]struct{}
}

// Extensions returns the extension names in ascending ordinal order.
func (s *CapabilitySet) Extensions() []string {
	names := make([]string, 0, len(s.exts))
	for name := range s.exts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasExtension reports whether the set contains the extension, compared by
// canonical name.
func (s *CapabilitySet) HasExtension(name string) bool {
	_, ok := s.exts[catalog.CanonicalExtension(name)]
	return ok
}

// ExtensionCount returns the number of distinct extensions.
func (s *CapabilitySet) ExtensionCount() int { return len(s.exts) }

// MultipleBaseArchitectureError reports a second base-architecture token that
// disagrees with the first. The first declaration stays authoritative and
// parsing continues, so this surfaces as a warning, not an abort.
type MultipleBaseArchitectureError struct {
	First  string
	Second string
}

func (e *MultipleBaseArchitectureError) Error() string {
	return fmt.Sprintf("multiple base architectures reported: %s, %s", e.First, e.Second)
}

// The base ISA token is RV32xxx, RV64xxx, RV128xxx, in any case.
var basePattern = regexp.MustCompile(`^[Rr][Vv]([0-9]+)(.*)$`)

// Builder accumulates a CapabilitySet from raw source tokens. It consults the
// catalog only for shorthand expansion of flag strings.
type Builder struct {
	cat      *catalog.Catalog
	set      *CapabilitySet
	warnings []error
}

func New(cat *catalog.Catalog) *Builder {
	return &Builder{
		cat: cat,
		set: &CapabilitySet{exts: map[string]struct{}{}},
	}
}

// ObserveToken consumes one token from the attribute stream. A token of the
// form RV<digits><flags> is a base-architecture declaration; anything else
// non-empty is an extension name.
func (b *Builder) ObserveToken(tok string) {
	if tok == "" {
		return
	}
	if m := basePattern.FindStringSubmatch(tok); m != nil {
		b.observeBase(m)
		return
	}
	b.addExtension(tok)
}

// ObserveRawToken consumes one token from the device-tree stream, where a
// single character is a bare flag rather than a one-letter extension name.
func (b *Builder) ObserveRawToken(tok string) {
	switch {
	case tok == "":
	case len(tok) == 1:
		b.set.Flags = b.set.Flags.Union(b.cat.NormalizeFlags(tok))
	default:
		b.addExtension(tok)
	}
}

// Warnings returns the non-fatal conditions observed so far.
func (b *Builder) Warnings() []error { return b.warnings }

// Capabilities returns the accumulated set. The builder must not be fed
// further tokens afterwards.
func (b *Builder) Capabilities() *CapabilitySet { return b.set }

func (b *Builder) observeBase(m []string) {
	name := strings.ToUpper(m[0])
	if b.set.BaseName == "" {
		b.set.BaseName = name
		b.set.Bits, _ = strconv.Atoi(m[1])
		b.set.Flags = b.set.Flags.Union(b.cat.NormalizeFlags(m[2]))
	} else if b.set.BaseName != name {
		b.warnings = append(b.warnings, &MultipleBaseArchitectureError{
			First:  b.set.BaseName,
			Second: name,
		})
	}
}

func (b *Builder) addExtension(tok string) {
	b.set.exts[catalog.CanonicalExtension(tok)] = struct{}{}
}
