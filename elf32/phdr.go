package elf32

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// PhdrSize is the byte size of one program header table entry.
const PhdrSize = 32

type SegmentType uint32

const (
	PT_NULL    SegmentType = 0
	PT_LOAD    SegmentType = 1
	PT_DYNAMIC SegmentType = 2
	PT_INTERP  SegmentType = 3
	PT_NOTE    SegmentType = 4
	PT_SHLIB   SegmentType = 5
	PT_PHDR    SegmentType = 6
	PT_TLS     SegmentType = 7
	PT_LOPROC  SegmentType = 0x70000000
	PT_HIPROC  SegmentType = 0x7fffffff
)

func (t SegmentType) String() string {
	switch t {
	case PT_NULL:
		return "NULL"
	case PT_LOAD:
		return "LOAD"
	case PT_DYNAMIC:
		return "DYNAMIC"
	case PT_INTERP:
		return "INTERP"
	case PT_NOTE:
		return "NOTE"
	case PT_SHLIB:
		return "SHLIB"
	case PT_PHDR:
		return "PHDR"
	case PT_TLS:
		return "TLS"
	}
	if t >= PT_LOPROC && t <= PT_HIPROC {
		return fmt.Sprintf("processor-specific (%#08x)", uint32(t))
	}
	return fmt.Sprintf("unknown (%#08x)", uint32(t))
}

// Segment permission flags.
const (
	PF_X uint32 = 0x1
	PF_W uint32 = 0x2
	PF_R uint32 = 0x4
)

// Phdr is one entry of the program header table, describing a segment
// of the process image.
type Phdr struct {
	Type   SegmentType
	Offset uint32
	Vaddr  uint32
	Paddr  uint32
	Filesz uint32
	Memsz  uint32
	Flags  uint32
	Align  uint32
}

// DecodePhdr decodes a program header table entry at off, reading
// multi-byte fields with the given byte order.
func DecodePhdr(bo binary.ByteOrder, buf []byte, off int) (Phdr, error) {
	var p Phdr
	if off < 0 || off+PhdrSize > len(buf) {
		return p, fmt.Errorf("%w: program header needs %d bytes at offset %d", ErrTruncated, PhdrSize, off)
	}
	b := buf[off : off+PhdrSize]
	p.Type = SegmentType(bo.Uint32(b))
	p.Offset = bo.Uint32(b[4:])
	p.Vaddr = bo.Uint32(b[8:])
	p.Paddr = bo.Uint32(b[12:])
	p.Filesz = bo.Uint32(b[16:])
	p.Memsz = bo.Uint32(b[20:])
	p.Flags = bo.Uint32(b[24:])
	p.Align = bo.Uint32(b[28:])
	return p, nil
}

// FlagString renders the segment permission bits the way readelf
// does, eg "R E" for a text segment.
func (p Phdr) FlagString() string {
	var b strings.Builder
	for _, f := range []struct {
		bit  uint32
		mark byte
	}{
		{PF_R, 'R'},
		{PF_W, 'W'},
		{PF_X, 'E'},
	} {
		if p.Flags&f.bit != 0 {
			b.WriteByte(f.mark)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Loadable reports whether the segment is mapped into the process
// image.
func (p Phdr) Loadable() bool {
	return p.Type == PT_LOAD
}

// ValidSize reports whether the segment respects the rule that its
// file image never exceeds its memory image.
func (p Phdr) ValidSize() bool {
	return p.Filesz <= p.Memsz
}

// ValidAlign reports whether the alignment field holds 0, 1 or a
// power of two, and, for loadable segments, whether the virtual
// address and file offset are congruent modulo the alignment.
func (p Phdr) ValidAlign() bool {
	if p.Align > 1 {
		if p.Align&(p.Align-1) != 0 {
			return false
		}
		if p.Loadable() && p.Vaddr%p.Align != p.Offset%p.Align {
			return false
		}
	}
	return true
}
