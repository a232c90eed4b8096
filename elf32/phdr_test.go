package elf32

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentValidSize(t *testing.T) {
	assert.True(t, Phdr{Filesz: 64, Memsz: 128}.ValidSize())
	assert.True(t, Phdr{Filesz: 64, Memsz: 64}.ValidSize())

	// a file image larger than its memory image is malformed
	assert.False(t, Phdr{Filesz: 128, Memsz: 64}.ValidSize())
}

func TestSegmentValidAlign(t *testing.T) {
	// 0 and 1 both mean no alignment constraint
	assert.True(t, Phdr{Type: PT_LOAD, Align: 0}.ValidAlign())
	assert.True(t, Phdr{Type: PT_LOAD, Align: 1, Vaddr: 7, Offset: 3}.ValidAlign())

	assert.True(t, Phdr{Type: PT_LOAD, Align: 0x1000, Vaddr: 0x8049000, Offset: 0x1000}.ValidAlign())
	assert.False(t, Phdr{Type: PT_LOAD, Align: 3}.ValidAlign())
	assert.False(t, Phdr{Type: PT_LOAD, Align: 0x1000, Vaddr: 0x8049010, Offset: 0x1000}.ValidAlign())

	// congruence only binds loadable segments
	assert.True(t, Phdr{Type: PT_NOTE, Align: 4, Vaddr: 2, Offset: 1}.ValidAlign())
	assert.False(t, Phdr{Type: PT_NOTE, Align: 6}.ValidAlign())
}

func TestDecodePhdrTruncated(t *testing.T) {
	buf := make([]byte, PhdrSize)
	_, err := DecodePhdr(binary.LittleEndian, buf, 1)
	assert.ErrorIs(t, err, ErrTruncated)
	_, err = DecodePhdr(binary.LittleEndian, buf[:PhdrSize-1], 0)
	assert.ErrorIs(t, err, ErrTruncated)
}
