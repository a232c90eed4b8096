package elf32

// Kind is the conventional identity of a section. Names in ELF images
// are a convention, not a guarantee, so a section only gets a Kind
// when its structural signature and its exact name both match.
type Kind int

const (
	KindNone Kind = iota
	KindBss
	KindComment
	KindData
	KindData1
	KindDebug
	KindDynamic
	KindDynstr
	KindDynsym
	KindFini
	KindGot
	KindHash
	KindInit
	KindInterp
	KindLine
	KindNote
	KindPlt
	KindRodata
	KindRodata1
	KindShstrtab
	KindStrtab
	KindSymtab
	KindText
)

type signature struct {
	kind  Kind
	name  string
	typ   SectionType
	flags SectionFlags
	exact bool // flags must match exactly instead of as a subset
}

// Signatures are evaluated in this fixed order; the first match wins
// when an unconventional image satisfies more than one.
var signatures = []signature{
	{KindBss, ".bss", SHT_NOBITS, SHF_ALLOC | SHF_WRITE, false},
	{KindComment, ".comment", SHT_PROGBITS, 0, true},
	{KindData, ".data", SHT_PROGBITS, SHF_ALLOC | SHF_WRITE, false},
	{KindData1, ".data1", SHT_PROGBITS, SHF_ALLOC | SHF_WRITE, false},
	{KindDebug, ".debug", SHT_PROGBITS, 0, true},
	{KindDynamic, ".dynamic", SHT_DYNAMIC, 0, false},
	{KindDynstr, ".dynstr", SHT_STRTAB, SHF_ALLOC, false},
	{KindDynsym, ".dynsym", SHT_DYNSYM, SHF_ALLOC, false},
	{KindFini, ".fini", SHT_PROGBITS, SHF_ALLOC | SHF_EXECINSTR, false},
	{KindGot, ".got", SHT_PROGBITS, 0, false},
	{KindHash, ".hash", SHT_HASH, SHF_ALLOC, false},
	{KindInit, ".init", SHT_PROGBITS, 0, false},
	{KindInterp, ".interp", SHT_PROGBITS, SHF_ALLOC, false},
	{KindLine, ".line", SHT_PROGBITS, 0, true},
	{KindNote, ".note", SHT_NOTE, 0, false},
	{KindPlt, ".plt", SHT_PROGBITS, 0, false},
	{KindRodata, ".rodata", SHT_PROGBITS, SHF_ALLOC, false},
	{KindRodata1, ".rodata1", SHT_PROGBITS, SHF_ALLOC, false},
	{KindShstrtab, ".shstrtab", SHT_STRTAB, 0, false},
	{KindStrtab, ".strtab", SHT_STRTAB, 0, false},
	{KindSymtab, ".symtab", SHT_SYMTAB, 0, false},
	{KindText, ".text", SHT_PROGBITS, SHF_ALLOC | SHF_EXECINSTR, false},
}

var kindNames = map[Kind]string{}

func init() {
	for _, s := range signatures {
		kindNames[s.kind] = s.name
	}
}

func (k Kind) String() string {
	if v, ok := kindNames[k]; ok {
		return v
	}
	return "none"
}

func (s signature) match(sh Shdr, name string) bool {
	if name != s.name || sh.Type != s.typ {
		return false
	}
	if s.exact {
		return sh.Flags == s.flags
	}
	return sh.Flags.Has(s.flags)
}

// Classify gives the conventional identity of a section given its
// header and its resolved name, or KindNone when no signature
// matches.
func Classify(sh Shdr, name string) Kind {
	for _, s := range signatures {
		if s.match(sh, name) {
			return s.kind
		}
	}
	return KindNone
}
