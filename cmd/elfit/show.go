package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"text/template"

	"github.com/midbel/cli"
	"github.com/midbel/elfit/elf32"
)

func openELF(file string) (*elf32.File, error) {
	buf, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return elf32.Decode(buf)
}

const headerText = `ELF Header:
  Magic:   {{printf "% x" .Magic}}
  Class:                             {{.Ident.Class}}
  Data:                              {{.Ident.Data}}
  Version:                           {{.Ident.Version}}
  Type:                              {{.Hdr.Type}}
  Machine:                           {{.Hdr.Machine}}
  Version:                           {{printf "%#x" .Hdr.Version}}
  Entry point address:               {{printf "%#x" .Hdr.Entry}}
  Start of program headers:          {{.Hdr.Phoff}} (bytes into file)
  Start of section headers:          {{.Hdr.Shoff}} (bytes into file)
  Flags:                             {{printf "%#x" .Hdr.Flags}}
  Size of this header:               {{.Hdr.Ehsize}} (bytes)
  Size of program headers:           {{.Hdr.Phentsize}} (bytes)
  Number of program headers:         {{.Hdr.Phnum}}
  Size of section headers:           {{.Hdr.Shentsize}} (bytes)
  Number of section headers:         {{.Hdr.Shnum}}
  Section header string table index: {{.Hdr.Shstrndx}}
`

func runHeader(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := openELF(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	data := struct {
		Magic []byte
		Ident elf32.Ident
		Hdr   elf32.Ehdr
	}{
		Magic: f.Ehdr.Ident.Raw[:],
		Ident: f.Ehdr.Ident,
		Hdr:   f.Ehdr,
	}
	t := template.Must(template.New("header").Parse(headerText))
	return t.Execute(os.Stdout, data)
}

func runSections(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := openELF(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)

	fmt.Fprintln(w, "Nr\tName\tKind\tType\tAddr\tOffset\tSize\tES\tFlags\tLink\tInfo\tAlign")
	for i, s := range f.Shdrs {
		name, err := f.SectionName(i)
		if err != nil {
			return err
		}
		kind := elf32.Classify(s, name)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%#08x\t%#08x\t%d\t%d\t%s\t%d\t%d\t%d\n",
			i, name, kind, s.Type, s.Addr, s.Offset, s.Size, s.EntSize, s.Flags, s.Link, s.Info, s.AddrAlign)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	for i, s := range f.Shdrs {
		if !s.ValidAlign() {
			fmt.Fprintf(os.Stderr, "warning: section %d has invalid alignment %d for address %#08x\n", i, s.AddrAlign, s.Addr)
		}
	}
	return nil
}

func runSegments(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := openELF(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)

	fmt.Fprintln(w, "Type\tOffset\tVirtAddr\tPhysAddr\tFileSiz\tMemSiz\tFlg\tAlign")
	for _, p := range f.Phdrs {
		fmt.Fprintf(w, "%s\t%#08x\t%#08x\t%#08x\t%d\t%d\t%s\t%#x\n",
			p.Type, p.Offset, p.Vaddr, p.Paddr, p.Filesz, p.Memsz, p.FlagString(), p.Align)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	for i, p := range f.Phdrs {
		if !p.ValidSize() {
			fmt.Fprintf(os.Stderr, "warning: segment %d file size %d exceeds memory size %d\n", i, p.Filesz, p.Memsz)
		}
		if !p.ValidAlign() {
			fmt.Fprintf(os.Stderr, "warning: segment %d has invalid alignment %#x\n", i, p.Align)
		}
	}
	return nil
}
