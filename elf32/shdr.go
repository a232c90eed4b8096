package elf32

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ShdrSize is the byte size of one section header table entry.
const ShdrSize = 40

// Special section indexes.
const (
	SHN_UNDEF     uint16 = 0
	SHN_LORESERVE uint16 = 0xff00
	SHN_LOPROC    uint16 = 0xff00
	SHN_HIPROC    uint16 = 0xff1f
	SHN_ABS       uint16 = 0xfff1
	SHN_COMMON    uint16 = 0xfff2
	SHN_HIRESERVE uint16 = 0xffff
)

type SectionType uint32

const (
	SHT_NULL     SectionType = 0
	SHT_PROGBITS SectionType = 1
	SHT_SYMTAB   SectionType = 2
	SHT_STRTAB   SectionType = 3
	SHT_RELA     SectionType = 4
	SHT_HASH     SectionType = 5
	SHT_DYNAMIC  SectionType = 6
	SHT_NOTE     SectionType = 7
	SHT_NOBITS   SectionType = 8
	SHT_REL      SectionType = 9
	SHT_SHLIB    SectionType = 10
	SHT_DYNSYM   SectionType = 11
	SHT_LOOS     SectionType = 0x60000000
	SHT_HIOS     SectionType = 0x6fffffff
	SHT_LOPROC   SectionType = 0x70000000
	SHT_HIPROC   SectionType = 0x7fffffff
	SHT_LOUSER   SectionType = 0x80000000
	SHT_HIUSER   SectionType = 0xffffffff
)

func (t SectionType) String() string {
	switch t {
	case SHT_NULL:
		return "NULL"
	case SHT_PROGBITS:
		return "PROGBITS"
	case SHT_SYMTAB:
		return "SYMTAB"
	case SHT_STRTAB:
		return "STRTAB"
	case SHT_RELA:
		return "RELA"
	case SHT_HASH:
		return "HASH"
	case SHT_DYNAMIC:
		return "DYNAMIC"
	case SHT_NOTE:
		return "NOTE"
	case SHT_NOBITS:
		return "NOBITS"
	case SHT_REL:
		return "REL"
	case SHT_SHLIB:
		return "SHLIB"
	case SHT_DYNSYM:
		return "DYNSYM"
	}
	switch {
	case t >= SHT_LOOS && t <= SHT_HIOS:
		return fmt.Sprintf("os-specific (%#08x)", uint32(t))
	case t >= SHT_LOPROC && t <= SHT_HIPROC:
		return fmt.Sprintf("processor-specific (%#08x)", uint32(t))
	case t >= SHT_LOUSER:
		return fmt.Sprintf("application-specific (%#08x)", uint32(t))
	}
	return fmt.Sprintf("unknown (%#08x)", uint32(t))
}

type SectionFlags uint32

const (
	SHF_WRITE     SectionFlags = 0x1
	SHF_ALLOC     SectionFlags = 0x2
	SHF_EXECINSTR SectionFlags = 0x4
	SHF_MASKPROC  SectionFlags = 0xf0000000
)

// Has reports whether every flag of the given subset is set.
func (f SectionFlags) Has(sub SectionFlags) bool {
	return f&sub == sub
}

// String renders the flag bits as a combinable set, one label per bit.
// Bits under SHF_MASKPROC are reported together as processor-specific.
func (f SectionFlags) String() string {
	var parts []string
	for _, b := range []struct {
		bit   SectionFlags
		label string
	}{
		{SHF_WRITE, "WRITE"},
		{SHF_ALLOC, "ALLOC"},
		{SHF_EXECINSTR, "EXECINSTR"},
	} {
		if f&b.bit != 0 {
			parts = append(parts, b.label)
		}
	}
	if p := f & SHF_MASKPROC; p != 0 {
		parts = append(parts, fmt.Sprintf("MASKPROC(%#08x)", uint32(p)))
	}
	if r := f &^ (SHF_WRITE | SHF_ALLOC | SHF_EXECINSTR | SHF_MASKPROC); r != 0 {
		parts = append(parts, fmt.Sprintf("unknown(%#08x)", uint32(r)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// Shdr is one entry of the section header table. Name is an offset
// into the section name string table, not a resolved string.
type Shdr struct {
	Name      uint32
	Type      SectionType
	Flags     SectionFlags
	Addr      uint32
	Offset    uint32
	Size      uint32
	Link      uint32
	Info      uint32
	AddrAlign uint32
	EntSize   uint32
}

// DecodeShdr decodes a section header table entry at off, reading
// multi-byte fields with the given byte order.
func DecodeShdr(bo binary.ByteOrder, buf []byte, off int) (Shdr, error) {
	var s Shdr
	if off < 0 || off+ShdrSize > len(buf) {
		return s, fmt.Errorf("%w: section header needs %d bytes at offset %d", ErrTruncated, ShdrSize, off)
	}
	b := buf[off : off+ShdrSize]
	s.Name = bo.Uint32(b)
	s.Type = SectionType(bo.Uint32(b[4:]))
	s.Flags = SectionFlags(bo.Uint32(b[8:]))
	s.Addr = bo.Uint32(b[12:])
	s.Offset = bo.Uint32(b[16:])
	s.Size = bo.Uint32(b[20:])
	s.Link = bo.Uint32(b[24:])
	s.Info = bo.Uint32(b[28:])
	s.AddrAlign = bo.Uint32(b[32:])
	s.EntSize = bo.Uint32(b[36:])
	return s, nil
}

// NoBits reports whether the section reserves no space in the file.
func (s Shdr) NoBits() bool {
	return s.Type == SHT_NOBITS
}

// ValidAlign reports whether the alignment field holds 0, 1 or a
// power of two and the address honors it.
func (s Shdr) ValidAlign() bool {
	if s.AddrAlign > 1 {
		if s.AddrAlign&(s.AddrAlign-1) != 0 {
			return false
		}
		if s.Addr%s.AddrAlign != 0 {
			return false
		}
	}
	return true
}
