package elf32

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymInfoRoundTrip(t *testing.T) {
	for bind := uint8(0); bind < 16; bind++ {
		for typ := uint8(0); typ < 16; typ++ {
			info := SymInfo(bind, typ)
			assert.Equal(t, bind, SymBind(info))
			assert.Equal(t, typ, SymType(info))
		}
	}
}

func TestSymInfoTruncates(t *testing.T) {
	// values wider than four bits lose their top bits, silently
	assert.Equal(t, SymInfo(0x2, 0x3), SymInfo(0x12, 0x23))
}

func TestDecodeSym(t *testing.T) {
	b := make([]byte, SymSize)
	le := binary.LittleEndian
	le.PutUint32(b[0:], 5)
	le.PutUint32(b[4:], 0x8048100)
	le.PutUint32(b[8:], 64)
	b[12] = SymInfo(STB_GLOBAL, STT_FUNC)
	b[13] = 0
	le.PutUint16(b[14:], 2)

	s, err := DecodeSym(le, b, 0)
	assert.NoError(t, err)
	assert.Equal(t, uint32(5), s.Name)
	assert.Equal(t, uint32(0x8048100), s.Value)
	assert.Equal(t, uint32(64), s.Size)
	assert.Equal(t, STB_GLOBAL, s.Bind())
	assert.Equal(t, STT_FUNC, s.Type())
	assert.Equal(t, uint16(2), s.Shndx)
	assert.False(t, s.IsUndef())
}

func TestDecodeSymTruncated(t *testing.T) {
	b := make([]byte, SymSize)
	_, err := DecodeSym(binary.LittleEndian, b, 1)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSymSpecialIndexes(t *testing.T) {
	assert.True(t, Sym{Shndx: SHN_UNDEF}.IsUndef())
	assert.True(t, Sym{Shndx: SHN_ABS}.IsAbs())
	assert.True(t, Sym{Shndx: SHN_COMMON}.IsCommon())
}

func TestBindLabels(t *testing.T) {
	assert.Equal(t, "LOCAL", BindString(STB_LOCAL))
	assert.Equal(t, "GLOBAL", BindString(STB_GLOBAL))
	assert.Equal(t, "WEAK", BindString(STB_WEAK))
	assert.Contains(t, BindString(14), "processor-specific")
	assert.Contains(t, BindString(7), "unknown")
}

func TestTypeStringLabels(t *testing.T) {
	assert.Equal(t, "NOTYPE", TypeString(STT_NOTYPE))
	assert.Equal(t, "FUNC", TypeString(STT_FUNC))
	assert.Equal(t, "FILE", TypeString(STT_FILE))
	assert.Contains(t, TypeString(13), "processor-specific")
	assert.Contains(t, TypeString(9), "unknown")
}
