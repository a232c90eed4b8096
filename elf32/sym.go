package elf32

import (
	"encoding/binary"
	"fmt"
)

// SymSize is the byte size of one symbol table entry.
const SymSize = 16

// STN_UNDEF is the reserved undefined symbol index; entry 0 of every
// symbol table holds the undefined symbol.
const STN_UNDEF = 0

// Symbol bindings, the top four bits of the info byte.
const (
	STB_LOCAL  uint8 = 0
	STB_GLOBAL uint8 = 1
	STB_WEAK   uint8 = 2
	STB_LOPROC uint8 = 13
	STB_HIPROC uint8 = 15
)

// Symbol types, the bottom four bits of the info byte.
const (
	STT_NOTYPE  uint8 = 0
	STT_OBJECT  uint8 = 1
	STT_FUNC    uint8 = 2
	STT_SECTION uint8 = 3
	STT_FILE    uint8 = 4
	STT_LOPROC  uint8 = 13
	STT_HIPROC  uint8 = 15
)

// SymBind extracts the binding from an info byte.
func SymBind(info uint8) uint8 {
	return info >> 4
}

// SymType extracts the type from an info byte.
func SymType(info uint8) uint8 {
	return info & 0xf
}

// SymInfo packs a binding and a type into an info byte. Values wider
// than four bits are truncated, not rejected; callers range-check
// when that matters.
func SymInfo(bind, typ uint8) uint8 {
	return bind<<4 | typ&0xf
}

// BindString maps a binding value to its label. Values in the
// processor reserved range report as such instead of unknown.
func BindString(bind uint8) string {
	switch bind {
	case STB_LOCAL:
		return "LOCAL"
	case STB_GLOBAL:
		return "GLOBAL"
	case STB_WEAK:
		return "WEAK"
	}
	if bind >= STB_LOPROC && bind <= STB_HIPROC {
		return fmt.Sprintf("processor-specific (%d)", bind)
	}
	return fmt.Sprintf("unknown (%d)", bind)
}

// TypeString maps a symbol type value to its label.
func TypeString(typ uint8) string {
	switch typ {
	case STT_NOTYPE:
		return "NOTYPE"
	case STT_OBJECT:
		return "OBJECT"
	case STT_FUNC:
		return "FUNC"
	case STT_SECTION:
		return "SECTION"
	case STT_FILE:
		return "FILE"
	}
	if typ >= STT_LOPROC && typ <= STT_HIPROC {
		return fmt.Sprintf("processor-specific (%d)", typ)
	}
	return fmt.Sprintf("unknown (%d)", typ)
}

// Sym is one symbol table entry. Name is an offset into the linked
// string table.
type Sym struct {
	Name  uint32
	Value uint32
	Size  uint32
	Info  uint8
	Other uint8
	Shndx uint16
}

// DecodeSym decodes a symbol table entry at off, reading multi-byte
// fields with the given byte order.
func DecodeSym(bo binary.ByteOrder, buf []byte, off int) (Sym, error) {
	var s Sym
	if off < 0 || off+SymSize > len(buf) {
		return s, fmt.Errorf("%w: symbol needs %d bytes at offset %d", ErrTruncated, SymSize, off)
	}
	b := buf[off : off+SymSize]
	s.Name = bo.Uint32(b)
	s.Value = bo.Uint32(b[4:])
	s.Size = bo.Uint32(b[8:])
	s.Info = b[12]
	s.Other = b[13]
	s.Shndx = bo.Uint16(b[14:])
	return s, nil
}

// Bind gives the binding half of the info byte.
func (s Sym) Bind() uint8 {
	return SymBind(s.Info)
}

// Type gives the type half of the info byte.
func (s Sym) Type() uint8 {
	return SymType(s.Info)
}

// IsUndef reports whether the symbol is defined relative to no
// section.
func (s Sym) IsUndef() bool {
	return s.Shndx == SHN_UNDEF
}

// IsAbs reports whether the symbol holds an absolute value unaffected
// by relocation.
func (s Sym) IsAbs() bool {
	return s.Shndx == SHN_ABS
}

// IsCommon reports whether the symbol labels an unallocated common
// block.
func (s Sym) IsCommon() bool {
	return s.Shndx == SHN_COMMON
}
