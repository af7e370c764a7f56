// SPDX-License-Identifier: BSD-2-Clause

package catalog

import (
	"math/bits"
	"strings"
)

// FlagCode is a single-letter base-architecture capability code, always an
// uppercase ASCII letter (for example 'M' for integer multiply/divide).
type FlagCode byte

func (c FlagCode) String() string { return string(byte(c)) }

// FlagSet is a set of FlagCodes, one bit per letter A-Z.
type FlagSet uint32

func flagBit(c FlagCode) (uint32, bool) {
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return 1 << (c - 'A'), true
}

// Add inserts c into the set. Non-letter codes are ignored.
func (s *FlagSet) Add(c FlagCode) {
	if bit, ok := flagBit(c); ok {
		*s |= FlagSet(bit)
	}
}

// Has reports whether c is in the set.
func (s FlagSet) Has(c FlagCode) bool {
	bit, ok := flagBit(c)
	return ok && uint32(s)&bit != 0
}

// Union returns the set of flags present in either set.
func (s FlagSet) Union(o FlagSet) FlagSet { return s | o }

// Len returns the number of flags in the set.
func (s FlagSet) Len() int { return bits.OnesCount32(uint32(s)) }

// Codes returns the flags in the set in alphabetical order.
func (s FlagSet) Codes() []FlagCode {
	codes := make([]FlagCode, 0, s.Len())
	for c := FlagCode('A'); c <= 'Z'; c++ {
		if s.Has(c) {
			codes = append(codes, c)
		}
	}
	return codes
}

// String returns the set as a string of letters in alphabetical order.
func (s FlagSet) String() string {
	var b strings.Builder
	for _, c := range s.Codes() {
		b.WriteByte(byte(c))
	}
	return b.String()
}

// NormalizeFlags converts a raw flag string (the tail of a base-architecture
// token such as "imafdc" or "G") into a FlagSet. The input is uppercased and
// scanned one character at a time: a shorthand letter contributes its literal
// expansion, any other letter contributes itself, and non-letter characters
// are dropped. Because each character is consumed exactly once, a shorthand
// letter appearing inside another shorthand's expansion is never re-expanded.
func (c *Catalog) NormalizeFlags(raw string) FlagSet {
	var set FlagSet
	up := strings.ToUpper(raw)
	for i := 0; i < len(up); i++ {
		ch := up[i]
		if exp, ok := c.shorthandExp[ch]; ok {
			for j := 0; j < len(exp); j++ {
				set.Add(FlagCode(exp[j]))
			}
			continue
		}
		set.Add(FlagCode(ch))
	}
	return set
}

// CanonicalExtension returns the canonical spelling of an extension name:
// first letter uppercase, remainder lowercase. Vendor variance such as
// "ZICSR" or "zicsr" collapses to "Zicsr".
func CanonicalExtension(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}
