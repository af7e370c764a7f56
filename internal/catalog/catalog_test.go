package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `
flags:
  I: Integer instructions
  M: Integer multiplication and division
  A: Atomic instructions
  F: Single-precision floating-point
  D: Double-precision floating-point
  C: Compressed instructions
shorthands:
  G: IMAFD
  X: GQ
extensions:
  Zicsr: Control and status register instructions
  Sstc: Supervisor-mode timer interrupts
profiles:
  RVI20U64:
    description: Base integer profile
    bits: 64
    endian: little
    flags:
      mandatory: I
      optional: MAFDC
    extensions:
      optional: [Zifencei, Zicntr]
  RVA22U64:
    description: Application profile
    bits: 64
    flags:
      mandatory: IMAFDC
    extensions:
      mandatory: [Zicsr, Sstc]
`

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Parse([]byte(testDoc))
	require.NoError(t, err)
	return cat
}

func TestParse_ProfileOrder(t *testing.T) {
	cat := testCatalog(t)
	assert.Equal(t, []string{"RVI20U64", "RVA22U64"}, cat.ProfileNames())
}

func TestParse_ProfileFields(t *testing.T) {
	cat := testCatalog(t)

	p := cat.Profile("RVI20U64")
	require.NotNil(t, p)
	assert.Equal(t, "Base integer profile", p.Description)
	assert.Equal(t, 64, p.Bits)
	assert.Equal(t, EndianLittle, p.Endian)
	assert.Equal(t, []FlagCode{'I'}, p.MandatoryFlags)
	assert.Equal(t, []FlagCode{'M', 'A', 'F', 'D', 'C'}, p.OptionalFlags)
	assert.Empty(t, p.MandatoryExtensions)
	assert.Equal(t, []string{"Zifencei", "Zicntr"}, p.OptionalExtensions)

	// Missing endian defaults to any.
	assert.Equal(t, EndianAny, cat.Profile("RVA22U64").Endian)
}

func TestProfile_Lookup(t *testing.T) {
	cat := testCatalog(t)

	assert.NotNil(t, cat.Profile("rva22u64"), "profile lookup is case-insensitive")
	assert.Nil(t, cat.Profile("RVB23U64"))
}

func TestParse_DefaultFilling(t *testing.T) {
	// Absent and null sections both mean empty, and every lookup stays total.
	for _, doc := range []string{"flags: {}", "profiles:\nextensions:\n"} {
		cat, err := Parse([]byte(doc))
		require.NoError(t, err, "doc %q", doc)
		assert.Empty(t, cat.ProfileNames())
		assert.Empty(t, cat.ExtensionNames())
		assert.Equal(t, "Unknown", cat.FlagDescription('I'))
		assert.Equal(t, "Unknown", cat.ExtensionDescription("Zicsr"))
	}
}

func TestParse_StructurallyInvalid(t *testing.T) {
	for _, doc := range []string{
		"just a string",
		"- a\n- b",
		"",
		"flags: [I, M]",
		"profiles:\n  RVX:\n    endian: middle",
		"profiles:\n  RVX:\n    flags:\n      mandatory: I2C",
		"profiles:\n  rvx: {}\n  RVX: {}",
	} {
		_, err := Parse([]byte(doc))
		var de *DefinitionError
		require.Error(t, err, "doc %q", doc)
		assert.True(t, errors.As(err, &de), "doc %q should fail with DefinitionError", doc)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDoc), 0o600))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, cat.Profile("RVI20U64"))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var de *DefinitionError
	require.Error(t, err)
	require.True(t, errors.As(err, &de))
	assert.Contains(t, de.Error(), "nope.yaml")
}

func TestDescriptions_Total(t *testing.T) {
	cat := testCatalog(t)

	assert.Equal(t, "Integer instructions", cat.FlagDescription('I'))
	assert.Equal(t, "Unknown", cat.FlagDescription('Z'))
	assert.Equal(t, "Supervisor-mode timer interrupts", cat.ExtensionDescription("Sstc"))
	assert.Equal(t, "Supervisor-mode timer interrupts", cat.ExtensionDescription("SSTC"))
	assert.Equal(t, "Unknown", cat.ExtensionDescription("Zmadeup"))
	assert.Equal(t, "Unknown", cat.ExtensionDescription(""))
}

func TestNormalizeFlags_Shorthand(t *testing.T) {
	cat := testCatalog(t)

	set := cat.NormalizeFlags("g")
	assert.Equal(t, "ADFIM", set.String())

	// Digits and punctuation are dropped.
	assert.Equal(t, "ACIM", cat.NormalizeFlags("64imac").String())
}

func TestNormalizeFlags_NotRecursive(t *testing.T) {
	cat := testCatalog(t)

	// X expands to "GQ"; the G inside the expansion must stay a literal G.
	assert.Equal(t, "GQ", cat.NormalizeFlags("X").String())
}

func TestNormalizeFlags_Idempotent(t *testing.T) {
	cat := testCatalog(t)

	for _, raw := range []string{"G", "imafdcvh", "RV64GC", ""} {
		once := cat.NormalizeFlags(raw)
		again := cat.NormalizeFlags(once.String())
		assert.Equal(t, once, again, "input %q", raw)
	}
}

func TestCanonicalExtension(t *testing.T) {
	assert.Equal(t, "Zicsr", CanonicalExtension("ZICSR"))
	assert.Equal(t, "Zicsr", CanonicalExtension("zicsr"))
	assert.Equal(t, "Zicsr", CanonicalExtension("Zicsr"))
	assert.Equal(t, "", CanonicalExtension(""))
}

func TestFlagSet(t *testing.T) {
	var set FlagSet
	set.Add('I')
	set.Add('M')
	set.Add('I')
	set.Add('@') // not a letter, ignored

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has('I'))
	assert.False(t, set.Has('A'))
	assert.Equal(t, []FlagCode{'I', 'M'}, set.Codes())
	assert.Equal(t, "IM", set.String())

	var other FlagSet
	other.Add('A')
	assert.Equal(t, "AIM", set.Union(other).String())
}

func TestDefault(t *testing.T) {
	cat := Default()

	assert.Equal(t, "Integer instructions", cat.FlagDescription('I'))
	assert.Equal(t, "ADFIM", cat.NormalizeFlags("G").String())
	assert.Contains(t, cat.ProfileNames(), "RVI20U32")
	assert.Contains(t, cat.ProfileNames(), "RVA22U64")
	require.NotNil(t, cat.Profile("RVI20U64"))
	assert.Equal(t, 64, cat.Profile("RVI20U64").Bits)
}
