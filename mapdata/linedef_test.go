package mapdata

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stuarthighley/doomstruct/codec"
)

func TestDoomLinedefRoundTrip(t *testing.T) {
	require := require.New(t)

	in := NewDoomLinedef()
	in.Impassable = true
	in.TwoSided = true
	require.NoError(in.SetTag(7))
	require.NoError(in.SetSpecial(1))

	b := in.Bytes()
	require.Len(b, DoomLinedefLength)
	require.Equal([]byte{
		0, 0, 0, 0, // vertices
		0x05, 0x00, // flags
		0x01, 0x00, // special
		0x07, 0x00, // tag
		0xff, 0xff, 0xff, 0xff, // no sidedefs
	}, b)

	var out DoomLinedef
	require.NoError(out.UnmarshalBinary(b))
	require.Equal(*in, out)
	require.Equal(NoSidedef, out.SidedefFront())
	require.Equal(NoSidedef, out.SidedefBack())
}

func TestLinedefBaseFlags(t *testing.T) {
	require := require.New(t)

	for flags := 0; flags < 1<<10; flags++ {
		in := NewDoomLinedef()
		in.setFlags(uint16(flags))
		in.PassThru = flags&(1<<9) != 0

		b := in.Bytes()
		require.Equal(uint16(flags), binary.LittleEndian.Uint16(b[4:]))

		var out DoomLinedef
		require.NoError(out.UnmarshalBinary(b))
		require.Equal(*in, out)
	}
}

func TestLinedefUnsignedRange(t *testing.T) {
	require := require.New(t)

	l := NewDoomLinedef()
	require.NoError(l.SetVertexStart(65535))
	require.NoError(l.SetSpecial(40000))
	require.ErrorIs(l.SetVertexEnd(-1), codec.ErrOutOfRange)
	require.ErrorIs(l.SetTag(65536), codec.ErrOutOfRange)
	require.ErrorIs(l.SetSidedefFront(32768), codec.ErrOutOfRange)

	var out DoomLinedef
	require.NoError(out.UnmarshalBinary(l.Bytes()))
	require.Equal(65535, out.VertexStart())
	require.Equal(40000, out.Special())
}

func TestStrifeLinedefFlags(t *testing.T) {
	require := require.New(t)

	in := NewStrifeLinedef()
	in.JumpOver = true
	in.Translucent75 = true
	in.Mapped = true
	b := in.Bytes()
	require.Equal(uint16(1<<8|1<<9|1<<12), binary.LittleEndian.Uint16(b[4:]))

	var out StrifeLinedef
	require.NoError(out.UnmarshalBinary(b))
	require.Equal(*in, out)
}

func TestHexenLinedefActivation(t *testing.T) {
	for a := PlayerCrosses; a <= PlayerUsesPassThru; a++ {
		t.Run(a.String(), func(t *testing.T) {
			require := require.New(t)

			in := NewHexenLinedef()
			require.NoError(in.SetActivation(a))
			in.Repeatable = true
			in.BlocksEverything = true

			b := in.Bytes()
			require.Len(b, HexenLinedefLength)
			flags := binary.LittleEndian.Uint16(b[4:])
			require.Equal(uint16(a), (flags>>10)&7)
			require.NotZero(flags & (1 << 9))
			require.NotZero(flags & (1 << 15))

			var out HexenLinedef
			require.NoError(out.UnmarshalBinary(b))
			require.Equal(*in, out)
			require.Equal(a, out.Activation())
		})
	}
}

func TestHexenLinedefInvalidActivation(t *testing.T) {
	require := require.New(t)

	l := NewHexenLinedef()
	require.ErrorIs(l.SetActivation(7), codec.ErrOutOfRange)
	require.ErrorIs(l.SetActivation(-1), codec.ErrOutOfRange)

	b := l.Bytes()
	binary.LittleEndian.PutUint16(b[4:], 7<<10)
	require.ErrorIs(l.UnmarshalBinary(b), codec.ErrMalformed)
	require.Equal(NoSidedef, l.SidedefFront())
}

func TestHexenLinedefSpecial(t *testing.T) {
	require := require.New(t)

	in := NewHexenLinedef()
	require.NoError(in.SetSpecial(243))
	require.ErrorIs(in.SetSpecial(256), codec.ErrOutOfRange)
	require.NoError(in.SetArguments(0, 200, 0, 1))
	require.NoError(in.SetSidedefFront(3))

	b := in.Bytes()
	require.Equal(byte(243), b[6])
	require.Equal([]byte{0, 200, 0, 1, 0}, b[7:12])
	require.Equal([]byte{3, 0, 0xff, 0xff}, b[12:16])

	var out HexenLinedef
	require.NoError(out.UnmarshalBinary(b))
	arg, ok := out.Argument(1)
	require.True(ok)
	require.Equal(200, arg)
	_, ok = out.Argument(5)
	require.False(ok)
	require.Equal(243, out.Special())
}

func TestReadLinedefs(t *testing.T) {
	require := require.New(t)

	var records []Linedef
	for i := range 4 {
		l := NewHexenLinedef()
		require.NoError(l.SetVertexStart(i))
		require.NoError(l.SetVertexEnd(i + 1))
		records = append(records, l)
	}
	var buf bytes.Buffer
	n, err := codec.WriteRecords(&buf, records)
	require.NoError(err)
	require.EqualValues(4*HexenLinedefLength, n)

	got, err := ReadLinedefs(&buf, Hexen, 4)
	require.NoError(err)
	require.Equal(records, got)
	require.Zero(buf.Len())
}

func TestRecordLengths(t *testing.T) {
	require := require.New(t)

	for f, want := range map[Format][2]int{Doom: {10, 14}, Hexen: {20, 16}, Strife: {10, 14}} {
		n, err := ThingLength(f)
		require.NoError(err)
		require.Equal(want[0], n)
		n, err = LinedefLength(f)
		require.NoError(err)
		require.Equal(want[1], n)

		th, err := NewThing(f)
		require.NoError(err)
		require.Len(th.Bytes(), want[0])
		l, err := NewLinedef(f)
		require.NoError(err)
		require.Len(l.Bytes(), want[1])
	}

	_, err := NewLinedef(UDMF)
	require.ErrorIs(err, ErrNoBinaryRecords)
	require.Equal("UDMF", UDMF.String())
}
