package canon_test

import (
	"testing"

	"github.com/gnames/gnindexer/pkg/canon"
	"github.com/stretchr/testify/assert"
)

func TestCanonical_ParsableName(t *testing.T) {
	c := canon.New(1)
	defer c.Close()

	got := c.Canonical("Panthera leo (Linnaeus, 1758)")
	assert.Equal(t, "Panthera leo", got)
}

func TestCanonical_Idempotent(t *testing.T) {
	c := canon.New(1)
	defer c.Close()

	once := c.Canonical("Homo sapiens Linnaeus, 1758")
	twice := c.Canonical(once)
	assert.Equal(t, once, twice)
}

func TestCanonical_UnparsableReturnsInput(t *testing.T) {
	c := canon.New(1)
	defer c.Close()

	got := c.Canonical("???not a name###")
	assert.Equal(t, "???not a name###", got)
}

func TestCanonical_EmptyString(t *testing.T) {
	c := canon.New(1)
	defer c.Close()

	assert.Equal(t, "", c.Canonical(""))
}
