// SPDX-License-Identifier: BSD-2-Clause

/*
rvinfo - Report RISC-V processor ISA capabilities and profile support.

Copyright (c) 2025, the rvinfo authors
BSD-2-Clause license, see https://opensource.org/license/BSD-2-Clause
*/

// Package catalog loads and serves the human-maintained definition of known
// RISC-V base-architecture flags, ISA extensions, shorthand expansions, and
// certification profiles. A Catalog is built once per invocation from a YAML
// document and read-only afterwards; it is passed explicitly to the parser
// and matcher rather than held in package state.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Endianness of a profile. No available input source reports host endianness,
// so this is recorded but never part of the match decision.
type Endianness string

const (
	EndianLittle Endianness = "little"
	EndianBig    Endianness = "big"
	EndianAny    Endianness = "any"
)

// Shorthand maps a single letter to its literal multi-letter expansion,
// classically 'G' -> "IMAFD".
type Shorthand struct {
	Letter    FlagCode
	Expansion string
}

// Profile is a named bundle of mandatory and optional capabilities.
// The flag and extension slices preserve catalog declaration order.
type Profile struct {
	Name        string
	Description string
	Bits        int
	Endian      Endianness

	MandatoryFlags []FlagCode
	OptionalFlags  []FlagCode

	MandatoryExtensions []string
	OptionalExtensions  []string
}

// Catalog is the loaded definition document. All lookups are total: absent
// entries resolve to documented defaults, never to errors.
type Catalog struct {
	flags        map[FlagCode]string
	extensions   map[string]string
	shorthands   []Shorthand
	shorthandExp map[byte]string
	profiles     map[string]*Profile
	profileOrder []string
}

//go:embed catalog.yaml
var embeddedCatalog []byte

// Default returns the catalog baked into the binary. The embedded document is
// covered by tests, so a parse failure here is a build defect.
func Default() *Catalog {
	cat, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return cat
}

// Load reads and parses a catalog document from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DefinitionError{Source: path, Err: err}
	}
	cat, err := Parse(data)
	if err != nil {
		var de *DefinitionError
		if errors.As(err, &de) {
			de.Source = path
			return nil, de
		}
		return nil, &DefinitionError{Source: path, Err: err}
	}
	return cat, nil
}

// Parse builds a Catalog from a YAML document. The top level must be a
// mapping; the sections flags, shorthands, extensions, and profiles are each
// optional and default to empty. Profile declaration order is preserved.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DefinitionError{Err: fmt.Errorf("parse YAML: %w", err)}
	}
	root := documentRoot(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, &DefinitionError{Err: fmt.Errorf("top level is not a mapping")}
	}

	cat := &Catalog{
		flags:        map[FlagCode]string{},
		extensions:   map[string]string{},
		shorthandExp: map[byte]string{},
		profiles:     map[string]*Profile{},
	}

	for _, p := range mappingPairs(root) {
		if isNull(p.value) {
			// An empty section is the same as an absent one.
			continue
		}
		var err error
		switch p.key {
		case "flags":
			err = cat.parseFlags(p.value)
		case "shorthands":
			err = cat.parseShorthands(p.value)
		case "extensions":
			err = cat.parseExtensions(p.value)
		case "profiles":
			err = cat.parseProfiles(p.value)
		default:
			// Unknown sections are ignored so the document can grow.
		}
		if err != nil {
			return nil, &DefinitionError{Err: err}
		}
	}
	return cat, nil
}

// FlagDescription returns the description of a flag code, or "Unknown" when
// the catalog has no entry for it. It never fails.
func (c *Catalog) FlagDescription(code FlagCode) string {
	if desc, ok := c.flags[code]; ok {
		return desc
	}
	return "Unknown"
}

// ExtensionDescription returns the description of an extension, or "Unknown"
// when the catalog has no entry for it. Lookup is by canonical name, so any
// case variant of a known extension resolves. It never fails.
func (c *Catalog) ExtensionDescription(name string) string {
	if desc, ok := c.extensions[CanonicalExtension(name)]; ok {
		return desc
	}
	return "Unknown"
}

// Shorthands returns the shorthand table in declaration order.
func (c *Catalog) Shorthands() []Shorthand { return c.shorthands }

// FlagCodes returns the codes of all cataloged flags in alphabetical order.
func (c *Catalog) FlagCodes() []FlagCode {
	var set FlagSet
	for code := range c.flags {
		set.Add(code)
	}
	return set.Codes()
}

// ExtensionNames returns the names of all cataloged extensions in declaration
// order (the catalog source keeps them sorted).
func (c *Catalog) ExtensionNames() []string {
	names := make([]string, 0, len(c.extensions))
	for name := range c.extensions {
		names = append(names, name)
	}
	sortStrings(names)
	return names
}

// ProfileNames returns all profile names in catalog declaration order.
func (c *Catalog) ProfileNames() []string { return c.profileOrder }

// Profile returns the named profile, or nil when the catalog does not define
// it. Names are matched case-insensitively.
func (c *Catalog) Profile(name string) *Profile {
	return c.profiles[strings.ToUpper(name)]
}

func (c *Catalog) parseFlags(node *yaml.Node) error {
	if err := expectMapping(node, "flags"); err != nil {
		return err
	}
	for _, p := range mappingPairs(node) {
		code, err := parseFlagCode(p.key)
		if err != nil {
			return fmt.Errorf("flags: %w", err)
		}
		c.flags[code] = p.value.Value
	}
	return nil
}

func (c *Catalog) parseShorthands(node *yaml.Node) error {
	if err := expectMapping(node, "shorthands"); err != nil {
		return err
	}
	for _, p := range mappingPairs(node) {
		code, err := parseFlagCode(p.key)
		if err != nil {
			return fmt.Errorf("shorthands: %w", err)
		}
		exp := strings.ToUpper(p.value.Value)
		c.shorthands = append(c.shorthands, Shorthand{Letter: code, Expansion: exp})
		c.shorthandExp[byte(code)] = exp
	}
	return nil
}

func (c *Catalog) parseExtensions(node *yaml.Node) error {
	if err := expectMapping(node, "extensions"); err != nil {
		return err
	}
	for _, p := range mappingPairs(node) {
		c.extensions[CanonicalExtension(p.key)] = p.value.Value
	}
	return nil
}

func (c *Catalog) parseProfiles(node *yaml.Node) error {
	if err := expectMapping(node, "profiles"); err != nil {
		return err
	}
	for _, p := range mappingPairs(node) {
		name := strings.ToUpper(p.key)
		if _, ok := c.profiles[name]; ok {
			return fmt.Errorf("profiles: duplicate profile %q", name)
		}
		profile, err := parseProfile(name, p.value)
		if err != nil {
			return fmt.Errorf("profile %s: %w", name, err)
		}
		c.profiles[name] = profile
		c.profileOrder = append(c.profileOrder, name)
	}
	return nil
}

// rawProfile mirrors one profile entry of the catalog document. Field order
// inside a profile does not matter, so a plain struct decode is enough here;
// only the profile map itself needs order-preserving traversal.
type rawProfile struct {
	Description string  `yaml:"description"`
	Bits        int     `yaml:"bits"`
	Endian      string  `yaml:"endian"`
	Flags       rawReqs `yaml:"flags"`
	Extensions  rawExts `yaml:"extensions"`
}

type rawReqs struct {
	Mandatory string `yaml:"mandatory"`
	Optional  string `yaml:"optional"`
}

type rawExts struct {
	Mandatory []string `yaml:"mandatory"`
	Optional  []string `yaml:"optional"`
}

func parseProfile(name string, node *yaml.Node) (*Profile, error) {
	var raw rawProfile
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}

	endian := Endianness(raw.Endian)
	switch endian {
	case EndianLittle, EndianBig, EndianAny:
	case "":
		endian = EndianAny
	default:
		return nil, fmt.Errorf("invalid endianness %q", raw.Endian)
	}

	mandFlags, err := parseFlagList(raw.Flags.Mandatory)
	if err != nil {
		return nil, fmt.Errorf("mandatory flags: %w", err)
	}
	optFlags, err := parseFlagList(raw.Flags.Optional)
	if err != nil {
		return nil, fmt.Errorf("optional flags: %w", err)
	}

	return &Profile{
		Name:                name,
		Description:         raw.Description,
		Bits:                raw.Bits,
		Endian:              endian,
		MandatoryFlags:      mandFlags,
		OptionalFlags:       optFlags,
		MandatoryExtensions: canonicalAll(raw.Extensions.Mandatory),
		OptionalExtensions:  canonicalAll(raw.Extensions.Optional),
	}, nil
}

// parseFlagList converts a letter string such as "IMAFDC" into an ordered
// list of flag codes, dropping repeats while keeping first-seen order.
func parseFlagList(letters string) ([]FlagCode, error) {
	var (
		codes []FlagCode
		seen  FlagSet
	)
	for i := 0; i < len(letters); i++ {
		code, err := parseFlagCode(string(letters[i]))
		if err != nil {
			return nil, err
		}
		if seen.Has(code) {
			continue
		}
		seen.Add(code)
		codes = append(codes, code)
	}
	return codes, nil
}

func parseFlagCode(s string) (FlagCode, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if len(up) != 1 || up[0] < 'A' || up[0] > 'Z' {
		return 0, fmt.Errorf("flag code %q is not a single letter", s)
	}
	return FlagCode(up[0]), nil
}

func canonicalAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		out = append(out, CanonicalExtension(name))
	}
	return out
}
