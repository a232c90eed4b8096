package elf32

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validIdent() []byte {
	id := make([]byte, EI_NIDENT)
	copy(id, Magic)
	id[EI_CLASS] = byte(ELFCLASS32)
	id[EI_DATA] = byte(ELFDATA2LSB)
	id[EI_VERSION] = byte(EV_CURRENT)
	return id
}

// minimalExec builds the header of a little-endian i386 executable
// with no tables behind it.
func minimalExec() []byte {
	b := make([]byte, EhdrSize)
	copy(b, validIdent())
	le := binary.LittleEndian
	le.PutUint16(b[16:], uint16(ET_EXEC))
	le.PutUint16(b[18:], uint16(EM_386))
	le.PutUint32(b[20:], 1)
	le.PutUint32(b[24:], 0x8048000)
	le.PutUint16(b[40:], EhdrSize)
	return b
}

func TestDecodeIdent(t *testing.T) {
	id, err := DecodeIdent(validIdent(), 0)
	assert.NoError(t, err)
	assert.Equal(t, ELFCLASS32, id.Class)
	assert.Equal(t, ELFDATA2LSB, id.Data)
	assert.Equal(t, EV_CURRENT, id.Version)
	assert.Equal(t, binary.LittleEndian, id.ByteOrder())
}

func TestDecodeIdentBadMagic(t *testing.T) {
	b := validIdent()
	b[EI_MAG0] = 0x7E
	_, err := DecodeIdent(b, 0)
	assert.ErrorIs(t, err, ErrMagic)

	// the magic is checked before anything else is looked at
	b = validIdent()
	b[EI_MAG3] = 'G'
	b[EI_CLASS] = 0xFF
	_, err = DecodeIdent(b, 0)
	assert.ErrorIs(t, err, ErrMagic)
}

func TestDecodeIdentTruncated(t *testing.T) {
	b := validIdent()
	_, err := DecodeIdent(b[:10], 0)
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = DecodeIdent(b, 1)
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = DecodeIdent(b, -1)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeIdentUnsupported(t *testing.T) {
	b := validIdent()
	b[EI_CLASS] = 3
	_, err := DecodeIdent(b, 0)
	assert.ErrorIs(t, err, ErrClass)

	b = validIdent()
	b[EI_DATA] = 9
	_, err = DecodeIdent(b, 0)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestDecodeEhdr(t *testing.T) {
	e, err := DecodeEhdr(minimalExec(), 0)
	assert.NoError(t, err)
	assert.Equal(t, ET_EXEC, e.Type)
	assert.Equal(t, EM_386, e.Machine)
	assert.Equal(t, uint32(1), e.Version)
	assert.Equal(t, uint32(0x8048000), e.Entry)
	assert.Equal(t, uint16(EhdrSize), e.Ehsize)

	assert.Equal(t, "ELF32", e.Ident.Class.String())
	assert.Equal(t, "Little endian", e.Ident.Data.String())
	assert.Equal(t, "1, (current)", e.Ident.Version.String())
	assert.Equal(t, "EXEC (Executable file)", e.Type.String())
	assert.Equal(t, "Intel 80386", e.Machine.String())
}

func TestDecodeEhdrDeterministic(t *testing.T) {
	buf := minimalExec()
	first, err := DecodeEhdr(buf, 0)
	assert.NoError(t, err)
	second, err := DecodeEhdr(buf, 0)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeEhdrBigEndian(t *testing.T) {
	b := make([]byte, EhdrSize)
	copy(b, validIdent())
	b[EI_DATA] = byte(ELFDATA2MSB)
	be := binary.BigEndian
	be.PutUint16(b[16:], uint16(ET_REL))
	be.PutUint16(b[18:], uint16(EM_MIPS))
	be.PutUint32(b[20:], 1)

	e, err := DecodeEhdr(b, 0)
	assert.NoError(t, err)
	assert.Equal(t, ET_REL, e.Type)
	assert.Equal(t, EM_MIPS, e.Machine)
	assert.Equal(t, binary.BigEndian, e.ByteOrder())
}

func TestDecodeEhdrTruncated(t *testing.T) {
	b := minimalExec()
	_, err := DecodeEhdr(b[:EhdrSize-1], 0)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestTypeLabels(t *testing.T) {
	assert.Equal(t, "NONE (No file type)", ET_NONE.String())
	assert.Equal(t, "DYN (Shared object file)", ET_DYN.String())
	assert.Contains(t, Type(0xff20).String(), "processor-specific")
	assert.Contains(t, Type(0x1234).String(), "unknown")
}

func TestMachineLabels(t *testing.T) {
	assert.Equal(t, "No machine", EM_NONE.String())
	assert.Equal(t, "SUN SPARC", EM_SPARC.String())
	assert.Contains(t, Machine(999).String(), "unknown")
}
