package elf32

import (
	"encoding/binary"
	"fmt"
)

// DynSize is the byte size of one dynamic section entry.
const DynSize = 8

type DynTag int32

const (
	DT_NULL     DynTag = 0
	DT_NEEDED   DynTag = 1
	DT_PLTRELSZ DynTag = 2
	DT_PLTGOT   DynTag = 3
	DT_HASH     DynTag = 4
	DT_STRTAB   DynTag = 5
	DT_SYMTAB   DynTag = 6
	DT_RELA     DynTag = 7
	DT_RELASZ   DynTag = 8
	DT_RELAENT  DynTag = 9
	DT_STRSZ    DynTag = 10
	DT_SYMENT   DynTag = 11
	DT_INIT     DynTag = 12
	DT_FINI     DynTag = 13
	DT_SONAME   DynTag = 14
	DT_RPATH    DynTag = 15
	DT_SYMBOLIC DynTag = 16
	DT_REL      DynTag = 17
	DT_RELSZ    DynTag = 18
	DT_RELENT   DynTag = 19
	DT_PLTREL   DynTag = 20
	DT_DEBUG    DynTag = 21
	DT_TEXTREL  DynTag = 22
	DT_JMPREL   DynTag = 23
	DT_LOPROC   DynTag = 0x70000000
	DT_HIPROC   DynTag = 0x7fffffff
)

var dynTagNames = map[DynTag]string{
	DT_NULL:     "NULL",
	DT_NEEDED:   "NEEDED",
	DT_PLTRELSZ: "PLTRELSZ",
	DT_PLTGOT:   "PLTGOT",
	DT_HASH:     "HASH",
	DT_STRTAB:   "STRTAB",
	DT_SYMTAB:   "SYMTAB",
	DT_RELA:     "RELA",
	DT_RELASZ:   "RELASZ",
	DT_RELAENT:  "RELAENT",
	DT_STRSZ:    "STRSZ",
	DT_SYMENT:   "SYMENT",
	DT_INIT:     "INIT",
	DT_FINI:     "FINI",
	DT_SONAME:   "SONAME",
	DT_RPATH:    "RPATH",
	DT_SYMBOLIC: "SYMBOLIC",
	DT_REL:      "REL",
	DT_RELSZ:    "RELSZ",
	DT_RELENT:   "RELENT",
	DT_PLTREL:   "PLTREL",
	DT_DEBUG:    "DEBUG",
	DT_TEXTREL:  "TEXTREL",
	DT_JMPREL:   "JMPREL",
}

func (t DynTag) String() string {
	if v, ok := dynTagNames[t]; ok {
		return v
	}
	if t >= DT_LOPROC && t <= DT_HIPROC {
		return fmt.Sprintf("processor-specific (%#08x)", uint32(t))
	}
	return fmt.Sprintf("unknown (%#08x)", uint32(t))
}

// Pointer reports whether the value union of an entry with this tag
// holds a virtual address rather than an integer.
func (t DynTag) Pointer() bool {
	switch t {
	case DT_PLTGOT, DT_HASH, DT_STRTAB, DT_SYMTAB, DT_RELA,
		DT_INIT, DT_FINI, DT_REL, DT_DEBUG, DT_JMPREL:
		return true
	}
	return false
}

// Dyn is one entry of the dynamic section. Value holds the d_un
// union; the tag decides whether it reads as an integer or an
// address.
type Dyn struct {
	Tag   DynTag
	Value uint32
}

// DecodeDyn decodes a dynamic section entry at off, reading
// multi-byte fields with the given byte order.
func DecodeDyn(bo binary.ByteOrder, buf []byte, off int) (Dyn, error) {
	var d Dyn
	if off < 0 || off+DynSize > len(buf) {
		return d, fmt.Errorf("%w: dynamic entry needs %d bytes at offset %d", ErrTruncated, DynSize, off)
	}
	b := buf[off : off+DynSize]
	d.Tag = DynTag(int32(bo.Uint32(b)))
	d.Value = bo.Uint32(b[4:])
	return d, nil
}

func (d Dyn) String() string {
	if d.Tag.Pointer() {
		return fmt.Sprintf("%s %#08x", d.Tag, d.Value)
	}
	return fmt.Sprintf("%s %d", d.Tag, d.Value)
}
