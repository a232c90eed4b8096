package elf32

import (
	"encoding/binary"
	"fmt"
)

// Byte sizes of the two relocation entry layouts.
const (
	RelSize  = 8
	RelaSize = 12
)

// Relocation types of the Intel 386 supplement.
const (
	R_386_NONE     uint8 = 0
	R_386_32       uint8 = 1
	R_386_PC32     uint8 = 2
	R_386_GOT32    uint8 = 3
	R_386_PLT32    uint8 = 4
	R_386_COPY     uint8 = 5
	R_386_GLOB_DAT uint8 = 6
	R_386_JMP_SLOT uint8 = 7
	R_386_RELATIVE uint8 = 8
	R_386_GOTOFF   uint8 = 9
	R_386_GOTPC    uint8 = 10
)

// RelTypeString maps an i386 relocation type to its label. Types of
// other machines are reported as unknown.
func RelTypeString(typ uint8) string {
	switch typ {
	case R_386_NONE:
		return "R_386_NONE"
	case R_386_32:
		return "R_386_32"
	case R_386_PC32:
		return "R_386_PC32"
	case R_386_GOT32:
		return "R_386_GOT32"
	case R_386_PLT32:
		return "R_386_PLT32"
	case R_386_COPY:
		return "R_386_COPY"
	case R_386_GLOB_DAT:
		return "R_386_GLOB_DAT"
	case R_386_JMP_SLOT:
		return "R_386_JMP_SLOT"
	case R_386_RELATIVE:
		return "R_386_RELATIVE"
	case R_386_GOTOFF:
		return "R_386_GOTOFF"
	case R_386_GOTPC:
		return "R_386_GOTPC"
	default:
		return fmt.Sprintf("unknown (%d)", typ)
	}
}

// RelSym extracts the symbol table index from an info word.
func RelSym(info uint32) uint32 {
	return info >> 8
}

// RelType extracts the relocation type from an info word.
func RelType(info uint32) uint8 {
	return uint8(info)
}

// RelInfo packs a symbol index and a relocation type into an info
// word. A symbol index wider than 24 bits is truncated, not rejected.
func RelInfo(sym uint32, typ uint8) uint32 {
	return sym<<8 | uint32(typ)
}

// Rel is a relocation entry with an implicit addend. A symbol index
// of STN_UNDEF means no symbol: the relocation uses zero as the
// symbol value.
type Rel struct {
	Offset uint32
	Info   uint32
}

// Rela is a relocation entry with an explicit addend.
type Rela struct {
	Offset uint32
	Info   uint32
	Addend int32
}

// DecodeRel decodes an implicit-addend relocation entry at off.
func DecodeRel(bo binary.ByteOrder, buf []byte, off int) (Rel, error) {
	var r Rel
	if off < 0 || off+RelSize > len(buf) {
		return r, fmt.Errorf("%w: relocation needs %d bytes at offset %d", ErrTruncated, RelSize, off)
	}
	b := buf[off : off+RelSize]
	r.Offset = bo.Uint32(b)
	r.Info = bo.Uint32(b[4:])
	return r, nil
}

// DecodeRela decodes an explicit-addend relocation entry at off.
func DecodeRela(bo binary.ByteOrder, buf []byte, off int) (Rela, error) {
	var r Rela
	if off < 0 || off+RelaSize > len(buf) {
		return r, fmt.Errorf("%w: relocation needs %d bytes at offset %d", ErrTruncated, RelaSize, off)
	}
	b := buf[off : off+RelaSize]
	r.Offset = bo.Uint32(b)
	r.Info = bo.Uint32(b[4:])
	r.Addend = int32(bo.Uint32(b[8:]))
	return r, nil
}

// Sym gives the symbol table index of the info word.
func (r Rel) Sym() uint32 {
	return RelSym(r.Info)
}

// Type gives the relocation type of the info word.
func (r Rel) Type() uint8 {
	return RelType(r.Info)
}

// Sym gives the symbol table index of the info word.
func (r Rela) Sym() uint32 {
	return RelSym(r.Info)
}

// Type gives the relocation type of the info word.
func (r Rela) Type() uint8 {
	return RelType(r.Info)
}
