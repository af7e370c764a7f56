package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvtools/rvinfo/internal/catalog"
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
extensions:
  Zicsr: Control and status register instructions
`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(testDoc))
	require.NoError(t, err)
	return cat
}

func TestBuilder_BaseDeclaration(t *testing.T) {
	b := New(testCatalog(t))
	b.ObserveToken("rv64imac")

	caps := b.Capabilities()
	assert.Equal(t, "RV64IMAC", caps.BaseName)
	assert.Equal(t, 64, caps.Bits)
	assert.Equal(t, "ACIM", caps.Flags.String())
	assert.Empty(t, b.Warnings())
}

func TestBuilder_ShorthandExpansion(t *testing.T) {
	b := New(testCatalog(t))
	b.ObserveToken("RV64G")

	caps := b.Capabilities()
	assert.Equal(t, 64, caps.Bits)
	assert.Equal(t, "ADFIM", caps.Flags.String())
}

func TestBuilder_BaseConflict(t *testing.T) {
	b := New(testCatalog(t))
	b.ObserveToken("RV64IMAC")
	b.ObserveToken("RV32IMAC")
	b.ObserveToken("Sstc")

	caps := b.Capabilities()
	assert.Equal(t, 64, caps.Bits, "first declaration wins")
	assert.Equal(t, "RV64IMAC", caps.BaseName)
	assert.True(t, caps.HasExtension("Sstc"), "parsing continues after the conflict")

	require.Len(t, b.Warnings(), 1)
	var mbe *MultipleBaseArchitectureError
	require.ErrorAs(t, b.Warnings()[0], &mbe)
	assert.Equal(t, "RV64IMAC", mbe.First)
	assert.Equal(t, "RV32IMAC", mbe.Second)
}

func TestBuilder_BaseRepeatAgrees(t *testing.T) {
	b := New(testCatalog(t))
	b.ObserveToken("rv64imac")
	b.ObserveToken("RV64IMAC")

	assert.Empty(t, b.Warnings(), "an identical repeat is not a conflict")
}

func TestBuilder_ExtensionDedup(t *testing.T) {
	b := New(testCatalog(t))
	for _, tok := range []string{"Zicsr", "zicsr", "ZICSR"} {
		b.ObserveToken(tok)
	}

	assert.Equal(t, []string{"Zicsr"}, b.Capabilities().Extensions())
}

func TestBuilder_ExtensionsSorted(t *testing.T) {
	b := New(testCatalog(t))
	for _, tok := range []string{"Zifencei", "Sstc", "Zba"} {
		b.ObserveToken(tok)
	}

	caps := b.Capabilities()
	assert.Equal(t, []string{"Sstc", "Zba", "Zifencei"}, caps.Extensions())
	assert.Equal(t, 3, caps.ExtensionCount())
}

func TestBuilder_EmptyTokensIgnored(t *testing.T) {
	b := New(testCatalog(t))
	b.ObserveToken("")
	b.ObserveRawToken("")

	caps := b.Capabilities()
	assert.Equal(t, 0, caps.ExtensionCount())
	assert.Zero(t, caps.Flags)
}

func TestBuilder_RawTokens(t *testing.T) {
	b := New(testCatalog(t))
	b.ObserveRawToken("g") // bare shorthand flag
	b.ObserveRawToken("v")
	b.ObserveRawToken("sstc")

	caps := b.Capabilities()
	assert.Equal(t, "ADFIMV", caps.Flags.String())
	assert.Equal(t, []string{"Sstc"}, caps.Extensions())
}

func TestCapabilitySet_HasExtension(t *testing.T) {
	b := New(testCatalog(t))
	b.ObserveToken("zicsr")

	caps := b.Capabilities()
	assert.True(t, caps.HasExtension("Zicsr"))
	assert.True(t, caps.HasExtension("ZICSR"), "membership is by canonical name")
	assert.False(t, caps.HasExtension("Zba"))
}
