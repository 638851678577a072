package mapdata

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stuarthighley/doomstruct/codec"
)

func TestSidedefDefaults(t *testing.T) {
	require := require.New(t)

	s := NewSidedef()
	require.Equal("-", s.UpperTexture())
	require.Equal("-", s.LowerTexture())
	require.Equal("-", s.MiddleTexture())
	require.Equal(NoSector, s.SectorIndex())

	b := s.Bytes()
	require.Len(b, SidedefLength)
	require.Equal([]byte{'-', 0, 0, 0, 0, 0, 0, 0}, b[4:12])
	require.Equal([]byte{0xff, 0xff}, b[28:30])
}

func TestSidedefRoundTrip(t *testing.T) {
	require := require.New(t)

	in := NewSidedef()
	require.NoError(in.SetOffsetX(-8))
	require.NoError(in.SetOffsetY(16))
	require.NoError(in.SetUpperTexture("startan3"))
	require.NoError(in.SetMiddleTexture("MIDGRATE"))
	require.NoError(in.SetSectorIndex(12))
	require.Equal("STARTAN3", in.UpperTexture())

	var out Sidedef
	require.NoError(out.UnmarshalBinary(in.Bytes()))
	require.Equal(*in, out)
}

func TestSidedefInvalidTexture(t *testing.T) {
	require := require.New(t)

	s := NewSidedef()
	require.ErrorIs(s.SetUpperTexture(""), codec.ErrInvalidName)
	require.ErrorIs(s.SetLowerTexture("NINECHARS"), codec.ErrInvalidName)
	require.ErrorIs(s.SetMiddleTexture("A B"), codec.ErrInvalidName)
	require.ErrorIs(s.SetSectorIndex(40000), codec.ErrOutOfRange)
	require.Equal(*NewSidedef(), *s)
}

func TestSectorRoundTrip(t *testing.T) {
	require := require.New(t)

	in := NewSector()
	require.NoError(in.SetFloorHeight(-128))
	require.NoError(in.SetCeilingHeight(256))
	require.NoError(in.SetFloorTexture("flat5_4"))
	require.NoError(in.SetLightLevel(160))
	require.NoError(in.SetSpecial(9))
	require.NoError(in.SetTag(-1))
	require.Equal("-", in.CeilingTexture())

	b := in.Bytes()
	require.Len(b, SectorLength)
	require.Equal([]byte("FLAT5_4\x00"), b[4:12])

	var out Sector
	require.NoError(out.UnmarshalBinary(b))
	require.Equal(*in, out)
	require.Equal(-1, out.Tag())

	require.ErrorIs(in.SetLightLevel(32768), codec.ErrOutOfRange)
	require.ErrorIs(in.SetCeilingTexture("TOOLONGNAME"), codec.ErrInvalidName)
}

func TestVertexBatch(t *testing.T) {
	require := require.New(t)

	vs := make([]*Vertex, 3)
	for i := range vs {
		vs[i] = &Vertex{}
		require.NoError(vs[i].SetX(i * -100))
		require.NoError(vs[i].SetY(i * 100))
	}
	var buf bytes.Buffer
	_, err := codec.WriteRecords(&buf, vs)
	require.NoError(err)
	require.Equal(3*VertexLength, buf.Len())

	got, err := ReadVertices(&buf, 3)
	require.NoError(err)
	for i, v := range got {
		require.Equal(*vs[i], v)
	}

	_, err = ReadVertices(bytes.NewReader([]byte{1, 2, 3}), 1)
	require.ErrorIs(err, io.ErrUnexpectedEOF)
}
