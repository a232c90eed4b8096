package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/midbel/cli"
	"github.com/midbel/elfit/elf32"
	"github.com/midbel/tape/ar"
)

// runArchive walks an ar archive, typically a static library, and
// decodes every member that carries the ELF magic.
func runArchive(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	r, err := os.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	defer r.Close()

	a, err := ar.NewReader(r)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "Member\tSize\tClass\tMachine\tType\tSections")
	for {
		h, err := a.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, io.LimitReader(a, h.Size)); err != nil {
			return err
		}
		if !bytes.HasPrefix(buf.Bytes(), elf32.Magic) {
			fmt.Fprintf(w, "%s\t%d\t-\t-\t-\t-\n", h.Filename, h.Size)
			continue
		}
		f, err := elf32.Decode(buf.Bytes())
		if err != nil {
			fmt.Fprintf(w, "%s\t%d\t%s\t-\t-\t-\n", h.Filename, h.Size, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%d\n",
			h.Filename, h.Size, f.Ehdr.Ident.Class, f.Ehdr.Machine, f.Ehdr.Type, len(f.Shdrs))
	}
	return nil
}
