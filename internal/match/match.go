// SPDX-License-Identifier: BSD-2-Clause

/*
rvinfo - Report RISC-V processor ISA capabilities and profile support.

Copyright (c) 2025, the rvinfo authors
BSD-2-Clause license, see https://opensource.org/license/BSD-2-Clause
*/

// Package match decides whether a processor's capability set satisfies the
// catalog's profiles. Matching is a pure function of its inputs: it never
// fails and never mutates the profile or the capability set.
package match

import (
	"github.com/rvtools/rvinfo/internal/catalog"
	"github.com/rvtools/rvinfo/internal/isa"
)

// Result is the verdict for one profile. The missing lists are always fully
// computed, even when a bit-width mismatch already decided the outcome, so
// verbose reporting can itemize them. List order follows the profile's
// declared order.
type Result struct {
	Profile   *catalog.Profile
	Supported bool

	MissingMandatoryFlags []catalog.FlagCode
	MissingOptionalFlags  []catalog.FlagCode

	MissingMandatoryExtensions []string
	MissingOptionalExtensions  []string
}

// Profile evaluates one profile against a capability set. Mandatory gaps and
// a bit-width mismatch make the profile unsupported; optional gaps are
// recorded for diagnostics only. Profile endianness is deliberately not part
// of the decision: no available input source reports host endianness.
func Profile(caps *isa.CapabilitySet, p *catalog.Profile) Result {
	res := Result{
		Profile:   p,
		Supported: caps.Bits == p.Bits,
	}

	for _, code := range p.MandatoryFlags {
		if !caps.Flags.Has(code) {
			res.MissingMandatoryFlags = append(res.MissingMandatoryFlags, code)
			res.Supported = false
		}
	}
	for _, code := range p.OptionalFlags {
		if !caps.Flags.Has(code) {
			res.MissingOptionalFlags = append(res.MissingOptionalFlags, code)
		}
	}

	for _, name := range p.MandatoryExtensions {
		if !caps.HasExtension(name) {
			res.MissingMandatoryExtensions = append(res.MissingMandatoryExtensions, name)
			res.Supported = false
		}
	}
	for _, name := range p.OptionalExtensions {
		if !caps.HasExtension(name) {
			res.MissingOptionalExtensions = append(res.MissingOptionalExtensions, name)
		}
	}

	return res
}

// All evaluates every catalog profile in declaration order.
func All(caps *isa.CapabilitySet, cat *catalog.Catalog) []Result {
	names := cat.ProfileNames()
	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, Profile(caps, cat.Profile(name)))
	}
	return results
}
