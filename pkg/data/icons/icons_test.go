package icons

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(errorPartyPNG))
	require.Nil(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	_, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), a, "corners are transparent")
	r, g, b, _ := img.At(15, 10).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

type iconDirEntry struct {
	Width, Height, Colors, Reserved uint8
	Planes, BitCount                uint16
	Size, Offset                    uint32
}

func TestICO(t *testing.T) {
	data := errorPartyICO
	r := bytes.NewReader(data)
	var header struct{ Reserved, Type, Count uint16 }
	require.Nil(t, binary.Read(r, binary.LittleEndian, &header))
	assert.Equal(t, uint16(0), header.Reserved)
	assert.Equal(t, uint16(1), header.Type)
	require.Equal(t, uint16(2), header.Count)

	var sizes []int
	for i := 0; i < int(header.Count); i++ {
		var e iconDirEntry
		require.Nil(t, binary.Read(r, binary.LittleEndian, &e))
		sizes = append(sizes, int(e.Width))
		assert.Equal(t, uint16(32), e.BitCount)
		require.True(t, int(e.Offset+e.Size) <= len(data))

		dib := data[e.Offset : e.Offset+e.Size]
		assert.Equal(t, uint32(40), binary.LittleEndian.Uint32(dib[0:4]))
		assert.Equal(t, int32(e.Width), int32(binary.LittleEndian.Uint32(dib[4:8])))
		assert.Equal(t, 2*int32(e.Height), int32(binary.LittleEndian.Uint32(dib[8:12])))
	}
	assert.Equal(t, []int{16, 32}, sizes)
}

func TestLookup(t *testing.T) {
	assert.Equal(t, ErrorParty, Lookup("errorparty"))
	assert.Equal(t, ErrorParty, Lookup("unknown"))
	if runtime.GOOS == "windows" {
		assert.Equal(t, errorPartyICO, Lookup("errorparty"))
	} else {
		assert.Equal(t, errorPartyPNG, Lookup("errorparty"))
	}
}
