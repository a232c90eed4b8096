// Package elf32 decodes the on-disk layout of 32-bit ELF object files.
//
// Records are decoded from an immutable byte buffer supplied by the
// caller. Decoding performs bounds checking and endianness conversion
// only; interpretation of the numeric codes is done by the String
// methods of the typed fields, which never fail. Decoded records are
// plain values and do not retain the buffer, except where a function
// is documented to return a view into it.
package elf32

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrTruncated = errors.New("elf32: truncated input")
	ErrMagic     = errors.New("elf32: bad magic")
	ErrClass     = errors.New("elf32: unsupported class")
	ErrEncoding  = errors.New("elf32: unsupported data encoding")
	ErrTable     = errors.New("elf32: inconsistent header table")
)

// Magic identifies a buffer as an ELF object file.
var Magic = []byte{0x7F, 'E', 'L', 'F'}

// Indexes into the identification block.
const (
	EI_MAG0    = 0
	EI_MAG1    = 1
	EI_MAG2    = 2
	EI_MAG3    = 3
	EI_CLASS   = 4
	EI_DATA    = 5
	EI_VERSION = 6
	EI_PAD     = 7
	EI_NIDENT  = 16
)

type Class uint8

const (
	ELFCLASSNONE Class = 0
	ELFCLASS32   Class = 1
	ELFCLASS64   Class = 2
)

func (c Class) String() string {
	switch c {
	case ELFCLASSNONE:
		return "None"
	case ELFCLASS32:
		return "ELF32"
	case ELFCLASS64:
		return "ELF64"
	default:
		return fmt.Sprintf("unknown (%d)", uint8(c))
	}
}

type Data uint8

const (
	ELFDATANONE Data = 0
	ELFDATA2LSB Data = 1
	ELFDATA2MSB Data = 2
)

func (d Data) String() string {
	switch d {
	case ELFDATANONE:
		return "None"
	case ELFDATA2LSB:
		return "Little endian"
	case ELFDATA2MSB:
		return "Big endian"
	default:
		return fmt.Sprintf("unknown (%d)", uint8(d))
	}
}

type Version uint8

const (
	EV_NONE    Version = 0
	EV_CURRENT Version = 1
)

func (v Version) String() string {
	switch v {
	case EV_NONE:
		return "0, (invalid)"
	case EV_CURRENT:
		return "1, (current)"
	default:
		return fmt.Sprintf("%d, (unknown)", uint8(v))
	}
}

// Ident is the decoded 16-byte identification block that prefixes
// every ELF image.
type Ident struct {
	Class   Class
	Data    Data
	Version Version
	Raw     [EI_NIDENT]byte
}

// DecodeIdent reads and validates the identification block at off.
// The magic is checked before any other byte is interpreted; the
// class and data encoding bytes must hold recognized values.
func DecodeIdent(buf []byte, off int) (Ident, error) {
	var id Ident
	if off < 0 || off+EI_NIDENT > len(buf) {
		return id, fmt.Errorf("%w: identification needs %d bytes at offset %d", ErrTruncated, EI_NIDENT, off)
	}
	if !bytes.Equal(buf[off:off+4], Magic) {
		return id, fmt.Errorf("%w: got % x", ErrMagic, buf[off:off+4])
	}
	copy(id.Raw[:], buf[off:off+EI_NIDENT])
	id.Class = Class(id.Raw[EI_CLASS])
	id.Data = Data(id.Raw[EI_DATA])
	id.Version = Version(id.Raw[EI_VERSION])
	if id.Class > ELFCLASS64 {
		return id, fmt.Errorf("%w: class byte %d", ErrClass, id.Raw[EI_CLASS])
	}
	if id.Data > ELFDATA2MSB {
		return id, fmt.Errorf("%w: data byte %d", ErrEncoding, id.Raw[EI_DATA])
	}
	return id, nil
}

// ByteOrder gives the byte order every multi-byte field of the image
// is encoded with. ELFDATANONE falls back to little endian; callers
// that care should reject it beforehand.
func (id Ident) ByteOrder() binary.ByteOrder {
	if id.Data == ELFDATA2MSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
