package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/midbel/cli"
	"github.com/midbel/elfit/elf32"
)

func runSymbols(cmd *cli.Command, args []string) error {
	dynamic := cmd.Flag.Bool("d", false, "show the dynamic symbol table")
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := openELF(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	want := elf32.SHT_SYMTAB
	if *dynamic {
		want = elf32.SHT_DYNSYM
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()

	for i, s := range f.Shdrs {
		if s.Type != want {
			continue
		}
		syms, err := f.Symbols(i)
		if err != nil {
			return err
		}
		names, err := f.SymbolNames(i, syms)
		if err != nil {
			return err
		}
		sname, err := f.SectionName(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Symbol table '%s' contains %d entries:\n", sname, len(syms))
		fmt.Fprintln(w, "Num\tValue\tSize\tType\tBind\tNdx\tName")
		for j, sym := range syms {
			fmt.Fprintf(w, "%d\t%#08x\t%d\t%s\t%s\t%s\t%s\n",
				j, sym.Value, sym.Size, elf32.TypeString(sym.Type()),
				elf32.BindString(sym.Bind()), ndxString(sym), names[j])
		}
	}
	return nil
}

func ndxString(sym elf32.Sym) string {
	switch {
	case sym.IsUndef():
		return "UND"
	case sym.IsAbs():
		return "ABS"
	case sym.IsCommon():
		return "COM"
	default:
		return fmt.Sprintf("%d", sym.Shndx)
	}
}

func runRelocs(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := openELF(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()

	for i, s := range f.Shdrs {
		name, err := f.SectionName(i)
		if err != nil {
			return err
		}
		switch s.Type {
		case elf32.SHT_REL:
			rels, err := f.Rels(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Relocation section '%s' contains %d entries:\n", name, len(rels))
			fmt.Fprintln(w, "Offset\tInfo\tType\tSym")
			for _, r := range rels {
				fmt.Fprintf(w, "%08x\t%08x\t%s\t%d\n", r.Offset, r.Info, elf32.RelTypeString(r.Type()), r.Sym())
			}
		case elf32.SHT_RELA:
			relas, err := f.Relas(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Relocation section '%s' contains %d entries:\n", name, len(relas))
			fmt.Fprintln(w, "Offset\tInfo\tType\tSym\tAddend")
			for _, r := range relas {
				fmt.Fprintf(w, "%08x\t%08x\t%s\t%d\t%d\n", r.Offset, r.Info, elf32.RelTypeString(r.Type()), r.Sym(), r.Addend)
			}
		}
	}
	return nil
}

func runDynamic(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := openELF(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()

	for i, s := range f.Shdrs {
		if s.Type != elf32.SHT_DYNAMIC {
			continue
		}
		dyns, err := f.Dynamic(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Dynamic section contains %d entries:\n", len(dyns))
		fmt.Fprintln(w, "Tag\tName\tValue")
		for _, d := range dyns {
			if d.Tag.Pointer() {
				fmt.Fprintf(w, "%#08x\t%s\t%#08x\n", uint32(d.Tag), d.Tag, d.Value)
			} else {
				fmt.Fprintf(w, "%#08x\t%s\t%d\n", uint32(d.Tag), d.Tag, d.Value)
			}
		}
	}
	return nil
}

func runNeeded(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := openELF(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	needed, err := f.Needed()
	if err != nil {
		return err
	}
	for _, n := range needed {
		fmt.Println(n)
	}
	return nil
}
