package elf32

import (
	"encoding/binary"
	"fmt"
)

// File holds the decoded headers of one ELF32 image together with the
// raw bytes they were decoded from. The buffer is never mutated;
// SectionData returns views into it.
type File struct {
	Ehdr  Ehdr
	Phdrs []Phdr
	Shdrs []Shdr

	data  []byte
	order binary.ByteOrder
}

// Decode validates the identification block of an image and walks its
// program and section header tables. The buffer must hold a complete
// 32-bit object; tables whose declared entry size or count would read
// past the end of the buffer are rejected with ErrTable.
func Decode(data []byte) (*File, error) {
	hdr, err := DecodeEhdr(data, 0)
	if err != nil {
		return nil, err
	}
	switch hdr.Ident.Class {
	case ELFCLASS32:
	case ELFCLASS64:
		return nil, fmt.Errorf("%w: 64-bit objects not supported", ErrClass)
	default:
		return nil, fmt.Errorf("%w: class none", ErrClass)
	}
	if hdr.Ident.Data == ELFDATANONE {
		return nil, fmt.Errorf("%w: data encoding none", ErrEncoding)
	}
	f := File{
		Ehdr:  hdr,
		data:  data,
		order: hdr.ByteOrder(),
	}
	if err := f.readPhdrs(); err != nil {
		return nil, err
	}
	if err := f.readShdrs(); err != nil {
		return nil, err
	}
	if x := hdr.Shstrndx; x != SHN_UNDEF && int(x) >= len(f.Shdrs) {
		return nil, fmt.Errorf("%w: section name table index %d out of %d sections", ErrTable, x, len(f.Shdrs))
	}
	return &f, nil
}

// checkTable verifies that count entries of size entsize starting at
// off fit within the buffer. entsize may exceed the record size, as
// the format allows, but never undercut it.
func (f *File) checkTable(what string, off uint32, entsize, count uint16, record int) error {
	if count == 0 {
		return nil
	}
	if int(entsize) < record {
		return fmt.Errorf("%w: %s entry size %d below %d", ErrTable, what, entsize, record)
	}
	end := uint64(off) + uint64(entsize)*uint64(count)
	if end > uint64(len(f.data)) {
		return fmt.Errorf("%w: %s table of %d entries ends at %d beyond %d bytes", ErrTable, what, count, end, len(f.data))
	}
	return nil
}

func (f *File) readPhdrs() error {
	e := f.Ehdr
	if err := f.checkTable("program header", e.Phoff, e.Phentsize, e.Phnum, PhdrSize); err != nil {
		return err
	}
	for i := 0; i < int(e.Phnum); i++ {
		p, err := DecodePhdr(f.order, f.data, int(e.Phoff)+i*int(e.Phentsize))
		if err != nil {
			return err
		}
		f.Phdrs = append(f.Phdrs, p)
	}
	return nil
}

func (f *File) readShdrs() error {
	e := f.Ehdr
	if err := f.checkTable("section header", e.Shoff, e.Shentsize, e.Shnum, ShdrSize); err != nil {
		return err
	}
	for i := 0; i < int(e.Shnum); i++ {
		s, err := DecodeShdr(f.order, f.data, int(e.Shoff)+i*int(e.Shentsize))
		if err != nil {
			return err
		}
		f.Shdrs = append(f.Shdrs, s)
	}
	return nil
}

// ByteOrder gives the byte order of the image.
func (f *File) ByteOrder() binary.ByteOrder {
	return f.order
}

// Section gives the section header at index i.
func (f *File) Section(i int) (Shdr, error) {
	if i < 0 || i >= len(f.Shdrs) {
		return Shdr{}, fmt.Errorf("elf32: no section %d in %d sections", i, len(f.Shdrs))
	}
	return f.Shdrs[i], nil
}

// SectionData gives the bytes of section i as a view into the image
// buffer. A SHT_NOBITS section reserves no file space and yields nil.
func (f *File) SectionData(i int) ([]byte, error) {
	s, err := f.Section(i)
	if err != nil {
		return nil, err
	}
	if s.NoBits() {
		return nil, nil
	}
	end := uint64(s.Offset) + uint64(s.Size)
	if end > uint64(len(f.data)) {
		return nil, fmt.Errorf("%w: section %d ends at %d beyond %d bytes", ErrTruncated, i, end, len(f.data))
	}
	return f.data[s.Offset:end], nil
}

// SectionName resolves the name of section i through the section name
// string table. Images without one yield the empty name.
func (f *File) SectionName(i int) (string, error) {
	s, err := f.Section(i)
	if err != nil {
		return "", err
	}
	if f.Ehdr.Shstrndx == SHN_UNDEF {
		return "", nil
	}
	table, err := f.SectionData(int(f.Ehdr.Shstrndx))
	if err != nil {
		return "", err
	}
	return Lookup(table, s.Name)
}

// ClassifySection gives the conventional identity of section i, or
// KindNone if its name and structure match no convention.
func (f *File) ClassifySection(i int) (Kind, error) {
	s, err := f.Section(i)
	if err != nil {
		return KindNone, err
	}
	name, err := f.SectionName(i)
	if err != nil {
		return KindNone, err
	}
	return Classify(s, name), nil
}

// entries gives the number of fixed-size records in section i and the
// stride between them.
func (f *File) entries(i int, record int) (int, int, error) {
	s, err := f.Section(i)
	if err != nil {
		return 0, 0, err
	}
	stride := int(s.EntSize)
	if stride == 0 {
		stride = record
	}
	if stride < record {
		return 0, 0, fmt.Errorf("%w: section %d entry size %d below %d", ErrTable, i, stride, record)
	}
	return int(s.Size) / stride, stride, nil
}

// Symbols decodes the symbol table held by section i, which must be
// of type SHT_SYMTAB or SHT_DYNSYM.
func (f *File) Symbols(i int) ([]Sym, error) {
	s, err := f.Section(i)
	if err != nil {
		return nil, err
	}
	if s.Type != SHT_SYMTAB && s.Type != SHT_DYNSYM {
		return nil, fmt.Errorf("elf32: section %d is %s, not a symbol table", i, s.Type)
	}
	count, stride, err := f.entries(i, SymSize)
	if err != nil {
		return nil, err
	}
	data, err := f.SectionData(i)
	if err != nil {
		return nil, err
	}
	syms := make([]Sym, 0, count)
	for j := 0; j < count; j++ {
		sym, err := DecodeSym(f.order, data, j*stride)
		if err != nil {
			return nil, err
		}
		syms = append(syms, sym)
	}
	return syms, nil
}

// SymbolNames resolves the names of the given symbols through the
// string table section i is linked to. Symbols at name offset zero
// have no name and resolve to the empty string.
func (f *File) SymbolNames(i int, syms []Sym) ([]string, error) {
	s, err := f.Section(i)
	if err != nil {
		return nil, err
	}
	table, err := f.SectionData(int(s.Link))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(syms))
	for j, sym := range syms {
		if sym.Name == 0 {
			continue
		}
		names[j], err = Lookup(table, sym.Name)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", j, err)
		}
	}
	return names, nil
}

// Rels decodes the implicit-addend relocation table held by section
// i, which must be of type SHT_REL.
func (f *File) Rels(i int) ([]Rel, error) {
	s, err := f.Section(i)
	if err != nil {
		return nil, err
	}
	if s.Type != SHT_REL {
		return nil, fmt.Errorf("elf32: section %d is %s, not REL", i, s.Type)
	}
	count, stride, err := f.entries(i, RelSize)
	if err != nil {
		return nil, err
	}
	data, err := f.SectionData(i)
	if err != nil {
		return nil, err
	}
	rels := make([]Rel, 0, count)
	for j := 0; j < count; j++ {
		r, err := DecodeRel(f.order, data, j*stride)
		if err != nil {
			return nil, err
		}
		rels = append(rels, r)
	}
	return rels, nil
}

// Relas decodes the explicit-addend relocation table held by section
// i, which must be of type SHT_RELA.
func (f *File) Relas(i int) ([]Rela, error) {
	s, err := f.Section(i)
	if err != nil {
		return nil, err
	}
	if s.Type != SHT_RELA {
		return nil, fmt.Errorf("elf32: section %d is %s, not RELA", i, s.Type)
	}
	count, stride, err := f.entries(i, RelaSize)
	if err != nil {
		return nil, err
	}
	data, err := f.SectionData(i)
	if err != nil {
		return nil, err
	}
	relas := make([]Rela, 0, count)
	for j := 0; j < count; j++ {
		r, err := DecodeRela(f.order, data, j*stride)
		if err != nil {
			return nil, err
		}
		relas = append(relas, r)
	}
	return relas, nil
}

// Dynamic decodes the dynamic section held by section i. The array
// ends at the first DT_NULL entry, which is included in the result;
// bytes past it are ignored.
func (f *File) Dynamic(i int) ([]Dyn, error) {
	s, err := f.Section(i)
	if err != nil {
		return nil, err
	}
	if s.Type != SHT_DYNAMIC {
		return nil, fmt.Errorf("elf32: section %d is %s, not DYNAMIC", i, s.Type)
	}
	count, stride, err := f.entries(i, DynSize)
	if err != nil {
		return nil, err
	}
	data, err := f.SectionData(i)
	if err != nil {
		return nil, err
	}
	var dyns []Dyn
	for j := 0; j < count; j++ {
		d, err := DecodeDyn(f.order, data, j*stride)
		if err != nil {
			return nil, err
		}
		dyns = append(dyns, d)
		if d.Tag == DT_NULL {
			break
		}
	}
	return dyns, nil
}

// Needed gives the names of the shared libraries the image depends
// on, in the order their DT_NEEDED entries appear. Images without a
// dynamic section have none.
func (f *File) Needed() ([]string, error) {
	dynndx := -1
	for i, s := range f.Shdrs {
		if s.Type == SHT_DYNAMIC {
			dynndx = i
			break
		}
	}
	if dynndx < 0 {
		return nil, nil
	}
	dyns, err := f.Dynamic(dynndx)
	if err != nil {
		return nil, err
	}
	table, err := f.SectionData(int(f.Shdrs[dynndx].Link))
	if err != nil {
		return nil, err
	}
	var needed []string
	for _, d := range dyns {
		if d.Tag != DT_NEEDED {
			continue
		}
		name, err := Lookup(table, d.Value)
		if err != nil {
			return nil, err
		}
		needed = append(needed, name)
	}
	return needed, nil
}
