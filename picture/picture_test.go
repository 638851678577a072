package picture

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stuarthighley/doomstruct/codec"
)

func TestSinglePixel(t *testing.T) {
	require := require.New(t)

	p, err := New(1, 1)
	require.NoError(err)
	require.NoError(p.SetPixel(0, 0, 200))

	b := p.Bytes()
	require.Equal([]byte{
		1, 0, 1, 0, 0, 0, 0, 0, // header
		12, 0, 0, 0, // column offset
		0, 1, 0, 200, 0, // post
		0xff,
	}, b)

	var out Picture
	require.NoError(out.UnmarshalBinary(b))
	require.Equal(200, out.Pixel(0, 0))
	require.Equal(*p, out)
}

func TestTransparentColumn(t *testing.T) {
	require := require.New(t)

	p, err := New(2, 8)
	require.NoError(err)
	require.NoError(p.SetPixel(1, 3, 0))

	b := p.Bytes()
	col0 := binary.LittleEndian.Uint32(b[8:])
	col1 := binary.LittleEndian.Uint32(b[12:])
	require.EqualValues(16, col0)
	require.EqualValues(17, col1, "transparent column is only the end marker")
	require.Equal(byte(0xff), b[col0])

	var out Picture
	require.NoError(out.UnmarshalBinary(b))
	for y := range 8 {
		require.Equal(Transparent, out.Pixel(0, y))
	}
	require.Equal(0, out.Pixel(1, 3))
	require.Equal(Transparent, out.Pixel(1, 4))
}

func TestSharedColumnOffsets(t *testing.T) {
	require := require.New(t)

	p, err := New(3, 4)
	require.NoError(err)
	for y := range 4 {
		require.NoError(p.SetPixel(0, y, 10+y))
	}
	require.NoError(p.SetPixel(2, 1, 99))

	b := p.Bytes()
	// Point column 1 at column 0's block.
	copy(b[12:16], b[8:12])

	var out Picture
	require.NoError(out.UnmarshalBinary(b))
	for y := range 4 {
		require.Equal(10+y, out.Pixel(0, y))
		require.Equal(out.Pixel(0, y), out.Pixel(1, y))
	}
	require.Equal(99, out.Pixel(2, 1))
}

func TestCompactBytes(t *testing.T) {
	require := require.New(t)

	p, err := New(4, 16)
	require.NoError(err)
	for x := range 4 {
		for y := 2; y < 6; y++ {
			require.NoError(p.SetPixel(x, y, 7))
		}
	}
	require.NoError(p.SetPixel(3, 10, 8))

	full := p.Bytes()
	compact := p.CompactBytes()
	require.Less(len(compact), len(full))

	offsets := make([]uint32, 4)
	require.NoError(binary.Read(bytes.NewReader(compact[8:]), binary.LittleEndian, offsets))
	require.Equal(offsets[0], offsets[1])
	require.Equal(offsets[0], offsets[2])
	require.NotEqual(offsets[0], offsets[3])

	var a, c Picture
	require.NoError(a.UnmarshalBinary(full))
	require.NoError(c.UnmarshalBinary(compact))
	require.Equal(a, c)
}

func TestPostSplitting(t *testing.T) {
	require := require.New(t)

	p, err := New(1, 12)
	require.NoError(err)
	for _, y := range []int{0, 1, 5, 11} {
		require.NoError(p.SetPixel(0, y, y))
	}
	b := p.Bytes()
	require.Equal([]byte{
		0, 2, 0, 0, 1, 0,
		5, 1, 0, 5, 0,
		11, 1, 0, 11, 0,
		0xff,
	}, b[12:])
}

func TestTallPicture(t *testing.T) {
	require := require.New(t)

	p, err := New(2, 1000)
	require.NoError(err)
	for y := range 1000 {
		require.NoError(p.SetPixel(0, y, y%256))
	}
	for _, y := range []int{3, 254, 255, 300, 600, 999} {
		require.NoError(p.SetPixel(1, y, 1))
	}

	var out Picture
	require.NoError(out.UnmarshalBinary(p.Bytes()))
	require.Equal(*p, out)

	n, err := new(Picture).ReadFrom(bytes.NewReader(p.Bytes()))
	require.NoError(err)
	require.EqualValues(len(p.Bytes()), n)
}

func TestClassicHeightUnchanged(t *testing.T) {
	require := require.New(t)

	p, err := New(1, 254)
	require.NoError(err)
	for y := range 254 {
		require.NoError(p.SetPixel(0, y, 4))
	}
	b := p.Bytes()
	require.Equal([]byte{0, 254, 0}, b[12:15])
	require.Len(b, 12+3+254+1+1)
}

func TestReadFromConsumesLump(t *testing.T) {
	require := require.New(t)

	p, err := New(3, 20)
	require.NoError(err)
	require.NoError(p.SetOffsetX(-5))
	require.NoError(p.SetOffsetY(30))
	require.NoError(p.SetPixel(2, 19, 255))
	require.NoError(p.SetPixel(2, 0, 1))

	b := p.Bytes()
	r := bytes.NewReader(append(bytes.Clone(b), 0xde, 0xad))
	var out Picture
	n, err := out.ReadFrom(r)
	require.NoError(err)
	require.EqualValues(len(b), n)
	require.Equal(2, r.Len())
	require.Equal(*p, out)

	_, err = new(Picture).ReadFrom(bytes.NewReader(b[:len(b)-1]))
	require.ErrorIs(err, io.ErrUnexpectedEOF)
}

func TestDecodeErrors(t *testing.T) {
	require := require.New(t)

	p, err := New(1, 4)
	require.NoError(err)
	require.NoError(p.SetPixel(0, 3, 1))
	b := p.Bytes()

	target, err := New(2, 2)
	require.NoError(err)

	bad := bytes.Clone(b)
	bad[12] = 3
	bad[13] = 2
	err = target.UnmarshalBinary(bad)
	require.ErrorIs(err, codec.ErrMalformed)
	require.Equal(2, target.Width(), "failed decode leaves the picture alone")

	bad = bytes.Clone(b)
	binary.LittleEndian.PutUint32(bad[8:], 500)
	require.ErrorIs(target.UnmarshalBinary(bad), codec.ErrMalformed)

	require.ErrorIs(target.UnmarshalBinary(b[:len(b)-1]), io.ErrUnexpectedEOF)
	require.ErrorIs(target.UnmarshalBinary(b[:5]), io.ErrUnexpectedEOF)

	var de *codec.DecodeError
	require.ErrorAs(target.UnmarshalBinary(make([]byte, 8)), &de)
	require.Equal("picture", de.Entity)
}

func TestSetters(t *testing.T) {
	require := require.New(t)

	_, err := New(0, 1)
	require.ErrorIs(err, codec.ErrOutOfRange)
	_, err = New(1, 65536)
	require.ErrorIs(err, codec.ErrOutOfRange)

	p, err := New(2, 2)
	require.NoError(err)
	require.ErrorIs(p.SetPixel(0, 0, 256), codec.ErrOutOfRange)
	require.ErrorIs(p.SetPixel(0, 0, -2), codec.ErrOutOfRange)
	require.ErrorIs(p.SetPixel(2, 0, 1), codec.ErrOutOfRange)
	require.NoError(p.SetPixel(1, 1, 255))
	require.NoError(p.SetPixel(1, 1, Transparent))
	require.Equal(Transparent, p.Pixel(1, 1))
	require.Equal(Transparent, p.Pixel(-1, 0))
	require.ErrorIs(p.SetOffsetX(32768), codec.ErrOutOfRange)

	require.NoError(p.SetPixel(0, 0, 9))
	require.NoError(p.SetDimensions(3, 1))
	require.Equal(Transparent, p.Pixel(0, 0), "resize clears content")
}

func TestReadFromHugeOffsets(t *testing.T) {
	require := require.New(t)

	p, err := New(1, 4)
	require.NoError(err)
	require.NoError(p.SetPixel(0, 1, 3))
	b := p.Bytes()

	far := bytes.Clone(b)
	binary.LittleEndian.PutUint32(far[8:], 0xFFFFFFF0)
	var out Picture
	_, err = out.ReadFrom(bytes.NewReader(far))
	require.ErrorIs(err, io.ErrUnexpectedEOF)
	require.Zero(out.Width())

	wide := bytes.Clone(b)
	binary.LittleEndian.PutUint16(wide[0:], 0xFFFF)
	_, err = out.ReadFrom(bytes.NewReader(wide))
	require.ErrorIs(err, io.ErrUnexpectedEOF)
}
