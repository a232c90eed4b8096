package elf32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	table := []byte("\x00.text\x00.data\x00")

	s, err := Lookup(table, 1)
	assert.NoError(t, err)
	assert.Equal(t, ".text", s)

	s, err = Lookup(table, 7)
	assert.NoError(t, err)
	assert.Equal(t, ".data", s)

	// offset zero is the empty string by convention
	s, err = Lookup(table, 0)
	assert.NoError(t, err)
	assert.Equal(t, "", s)

	// suffix of a longer name
	s, err = Lookup(table, 2)
	assert.NoError(t, err)
	assert.Equal(t, "text", s)
}

func TestLookupOutOfRange(t *testing.T) {
	table := []byte("\x00ok\x00")
	_, err := Lookup(table, uint32(len(table)))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestLookupUnterminated(t *testing.T) {
	_, err := Lookup([]byte("\x00body"), 1)
	assert.ErrorIs(t, err, ErrTruncated)
}
