package main

import (
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/midbel/cli"
	"github.com/midbel/textwrap"
)

const description = `elfit inspects 32-bit ELF object files. It decodes the file
header, the program and section header tables, symbol tables, relocation
tables and the dynamic section, and labels every numeric code the way
readelf does. Nothing is ever written back: elfit only reads.`

const helpText = `{{.Help}}

Usage:

  {{.Name}} command [arguments] <file>

The commands are:

{{range .Commands}}{{printf "  %-9s %s" .String .Short}}
{{end}}

Use {{.Name}} [command] -h for more information about its usage.
`

var commands = []*cli.Command{
	{
		Run:     runHeader,
		Usage:   "header <file>",
		Short:   "show the file header",
		Alias:   []string{"hdr"},
		Default: true,
	},
	{
		Run:   runSections,
		Usage: "sections <file>",
		Short: "show the section header table",
	},
	{
		Run:   runSegments,
		Usage: "segments <file>",
		Short: "show the program header table",
	},
	{
		Run:   runSymbols,
		Usage: "symbols [-d] <file>",
		Short: "show the symbol table",
	},
	{
		Run:   runRelocs,
		Usage: "relocs <file>",
		Short: "show the relocation tables",
	},
	{
		Run:   runDynamic,
		Usage: "dynamic <file>",
		Short: "show the dynamic section",
	},
	{
		Run:   runNeeded,
		Usage: "needed <file>",
		Short: "show the shared libraries the file depends on",
		Alias: []string{"deps"},
	},
	{
		Run:   runArchive,
		Usage: "archive <file.a>",
		Short: "show the ELF members of an ar archive",
		Alias: []string{"ar"},
	},
}

func main() {
	log.SetFlags(0)
	if err := cli.Run(commands, usage); err != nil {
		log.Fatalln(err)
	}
}

func usage() {
	data := struct {
		Name     string
		Help     string
		Commands []*cli.Command
	}{
		Name:     filepath.Base(os.Args[0]),
		Help:     textwrap.Wrap(description),
		Commands: commands,
	}
	t := template.Must(template.New("help").Parse(helpText))
	t.Execute(os.Stderr, data)

	os.Exit(2)
}
