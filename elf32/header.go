package elf32

import (
	"encoding/binary"
	"fmt"
)

// EhdrSize is the byte size of a 32-bit file header, identification
// included.
const EhdrSize = 52

type Type uint16

const (
	ET_NONE   Type = 0
	ET_REL    Type = 1
	ET_EXEC   Type = 2
	ET_DYN    Type = 3
	ET_CORE   Type = 4
	ET_LOPROC Type = 0xff00
	ET_HIPROC Type = 0xffff
)

func (t Type) String() string {
	switch t {
	case ET_NONE:
		return "NONE (No file type)"
	case ET_REL:
		return "REL (Relocatable file)"
	case ET_EXEC:
		return "EXEC (Executable file)"
	case ET_DYN:
		return "DYN (Shared object file)"
	case ET_CORE:
		return "CORE (Core file)"
	}
	if t >= ET_LOPROC {
		return fmt.Sprintf("processor-specific (%#04x)", uint16(t))
	}
	return fmt.Sprintf("unknown (%#04x)", uint16(t))
}

type Machine uint16

const (
	EM_NONE  Machine = 0
	EM_M32   Machine = 1
	EM_SPARC Machine = 2
	EM_386   Machine = 3
	EM_68K   Machine = 4
	EM_88K   Machine = 5
	EM_860   Machine = 7
	EM_MIPS  Machine = 8
)

func (m Machine) String() string {
	switch m {
	case EM_NONE:
		return "No machine"
	case EM_M32:
		return "AT&T WE 32100"
	case EM_SPARC:
		return "SUN SPARC"
	case EM_386:
		return "Intel 80386"
	case EM_68K:
		return "Motorola m68k family"
	case EM_88K:
		return "Motorola m88k family"
	case EM_860:
		return "Intel 80860"
	case EM_MIPS:
		return "MIPS R3000 big-endian"
	default:
		return fmt.Sprintf("unknown (%d)", uint16(m))
	}
}

// Ehdr is the ELF32 file header.
type Ehdr struct {
	Ident     Ident
	Type      Type
	Machine   Machine
	Version   uint32
	Entry     uint32
	Phoff     uint32
	Shoff     uint32
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// DecodeEhdr decodes the file header at off. The identification block
// is validated first and fixes the byte order for the remaining
// fields.
func DecodeEhdr(buf []byte, off int) (Ehdr, error) {
	var e Ehdr
	if off < 0 || off+EhdrSize > len(buf) {
		return e, fmt.Errorf("%w: file header needs %d bytes at offset %d", ErrTruncated, EhdrSize, off)
	}
	id, err := DecodeIdent(buf, off)
	if err != nil {
		return e, err
	}
	var (
		bo = id.ByteOrder()
		b  = buf[off : off+EhdrSize]
	)
	e.Ident = id
	e.Type = Type(bo.Uint16(b[16:]))
	e.Machine = Machine(bo.Uint16(b[18:]))
	e.Version = bo.Uint32(b[20:])
	e.Entry = bo.Uint32(b[24:])
	e.Phoff = bo.Uint32(b[28:])
	e.Shoff = bo.Uint32(b[32:])
	e.Flags = bo.Uint32(b[36:])
	e.Ehsize = bo.Uint16(b[40:])
	e.Phentsize = bo.Uint16(b[42:])
	e.Phnum = bo.Uint16(b[44:])
	e.Shentsize = bo.Uint16(b[46:])
	e.Shnum = bo.Uint16(b[48:])
	e.Shstrndx = bo.Uint16(b[50:])
	return e, nil
}

// ByteOrder gives the byte order recorded in the identification
// block.
func (e Ehdr) ByteOrder() binary.ByteOrder {
	return e.Ident.ByteOrder()
}
