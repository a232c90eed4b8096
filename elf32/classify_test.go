package elf32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyText(t *testing.T) {
	sh := Shdr{Type: SHT_PROGBITS, Flags: SHF_ALLOC | SHF_EXECINSTR}
	assert.Equal(t, KindText, Classify(sh, ".text"))

	// the same structure under another name matches nothing
	assert.Equal(t, KindNone, Classify(sh, ".foo"))
}

func TestClassifyNameAloneInsufficient(t *testing.T) {
	// a section merely called .text is not .text
	assert.Equal(t, KindNone, Classify(Shdr{Type: SHT_NOBITS}, ".text"))
	assert.Equal(t, KindNone, Classify(Shdr{Type: SHT_PROGBITS, Flags: SHF_ALLOC}, ".text"))
	// nor is a .symtab that is really a string table
	assert.Equal(t, KindNone, Classify(Shdr{Type: SHT_STRTAB}, ".symtab"))
	// .interp must be allocated, not just PROGBITS with the right name
	assert.Equal(t, KindNone, Classify(Shdr{Type: SHT_PROGBITS}, ".interp"))
}

func TestClassifyFlagSubset(t *testing.T) {
	// extra flags on top of the required subset still match
	sh := Shdr{Type: SHT_PROGBITS, Flags: SHF_ALLOC | SHF_EXECINSTR | SHF_WRITE}
	assert.Equal(t, KindText, Classify(sh, ".text"))

	// exact-flag signatures reject any extra bit
	assert.Equal(t, KindDebug, Classify(Shdr{Type: SHT_PROGBITS}, ".debug"))
	assert.Equal(t, KindNone, Classify(Shdr{Type: SHT_PROGBITS, Flags: SHF_WRITE}, ".debug"))
}

func TestClassifyConventionalSet(t *testing.T) {
	cases := []struct {
		name string
		sh   Shdr
		want Kind
	}{
		{".bss", Shdr{Type: SHT_NOBITS, Flags: SHF_ALLOC | SHF_WRITE}, KindBss},
		{".data", Shdr{Type: SHT_PROGBITS, Flags: SHF_ALLOC | SHF_WRITE}, KindData},
		{".rodata", Shdr{Type: SHT_PROGBITS, Flags: SHF_ALLOC}, KindRodata},
		{".dynamic", Shdr{Type: SHT_DYNAMIC, Flags: SHF_ALLOC}, KindDynamic},
		{".dynsym", Shdr{Type: SHT_DYNSYM, Flags: SHF_ALLOC}, KindDynsym},
		{".dynstr", Shdr{Type: SHT_STRTAB, Flags: SHF_ALLOC}, KindDynstr},
		{".hash", Shdr{Type: SHT_HASH, Flags: SHF_ALLOC}, KindHash},
		{".symtab", Shdr{Type: SHT_SYMTAB}, KindSymtab},
		{".strtab", Shdr{Type: SHT_STRTAB}, KindStrtab},
		{".shstrtab", Shdr{Type: SHT_STRTAB}, KindShstrtab},
		{".note", Shdr{Type: SHT_NOTE}, KindNote},
		{".interp", Shdr{Type: SHT_PROGBITS, Flags: SHF_ALLOC}, KindInterp},
		{".fini", Shdr{Type: SHT_PROGBITS, Flags: SHF_ALLOC | SHF_EXECINSTR}, KindFini},
		{".got", Shdr{Type: SHT_PROGBITS, Flags: SHF_ALLOC | SHF_WRITE}, KindGot},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.sh, c.name), c.name)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, ".text", KindText.String())
	assert.Equal(t, ".shstrtab", KindShstrtab.String())
	assert.Equal(t, "none", KindNone.String())
}
