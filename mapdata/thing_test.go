package mapdata

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stuarthighley/doomstruct/codec"
)

func TestDoomThingRoundTrip(t *testing.T) {
	require := require.New(t)

	in := &DoomThing{}
	require.NoError(in.SetX(-1024))
	require.NoError(in.SetY(512))
	require.NoError(in.SetAngle(270))
	require.NoError(in.SetType(65535))
	in.Easy = true
	in.Ambush = true
	in.Friendly = true

	b := in.Bytes()
	require.Len(b, DoomThingLength)
	require.Equal([]byte{0x00, 0xfc, 0x00, 0x02, 0x0e, 0x01, 0xff, 0xff, 0x89, 0x00}, b)

	var out DoomThing
	require.NoError(out.UnmarshalBinary(b))
	require.Equal(*in, out)
}

func TestDoomThingFlags(t *testing.T) {
	require := require.New(t)

	for flags := 0; flags < 256; flags++ {
		var in DoomThing
		in.Easy = flags&1 != 0
		in.Medium = flags&2 != 0
		in.Hard = flags&4 != 0
		in.Ambush = flags&8 != 0
		in.NotSinglePlayer = flags&16 != 0
		in.NotDeathmatch = flags&32 != 0
		in.NotCooperative = flags&64 != 0
		in.Friendly = flags&128 != 0

		b := in.Bytes()
		require.Equal(byte(flags), b[8])

		var out DoomThing
		require.NoError(out.UnmarshalBinary(b))
		require.Equal(in, out)
	}
}

func TestThingSetterRange(t *testing.T) {
	require := require.New(t)

	var th DoomThing
	require.NoError(th.SetX(32767))
	require.ErrorIs(th.SetX(32768), codec.ErrOutOfRange)
	require.Equal(32767, th.X())

	require.NoError(th.SetY(-32768))
	require.ErrorIs(th.SetY(-32769), codec.ErrOutOfRange)
	require.Equal(-32768, th.Y())

	require.ErrorIs(th.SetType(-1), codec.ErrOutOfRange)
	require.ErrorIs(th.SetType(65536), codec.ErrOutOfRange)
	require.Equal(0, th.Type())
}

func TestStrifeThingFlags(t *testing.T) {
	require := require.New(t)

	var in StrifeThing
	in.Standing = true
	in.Ambush = true
	in.Translucent = true
	b := in.Bytes()
	require.Equal(uint16(1<<3|1<<5|1<<8), uint16(b[8])|uint16(b[9])<<8)

	var out StrifeThing
	require.NoError(out.UnmarshalBinary(b))
	require.Equal(in, out)
}

func TestHexenThingRoundTrip(t *testing.T) {
	require := require.New(t)

	in := &HexenThing{}
	require.NoError(in.SetID(7))
	require.NoError(in.SetX(64))
	require.NoError(in.SetY(-64))
	require.NoError(in.SetHeight(16))
	require.NoError(in.SetAngle(90))
	require.NoError(in.SetType(3001))
	require.NoError(in.SetSpecial(80))
	require.NoError(in.SetArguments(1, 2, 255))
	in.Hard = true
	in.Dormant = true
	in.Cleric = true
	in.Deathmatch = true
	in.StandStill = true

	b := in.Bytes()
	require.Len(b, HexenThingLength)
	require.Equal(byte(80), b[14])
	require.Equal([]byte{1, 2, 255, 0, 0}, b[15:20])

	var out HexenThing
	require.NoError(out.UnmarshalBinary(b))
	require.Equal(*in, out)
	require.Equal(Arguments{1, 2, 255, 0, 0}, out.Arguments())
	arg, ok := out.Argument(2)
	require.True(ok)
	require.Equal(255, arg)
	_, ok = out.Argument(5)
	require.False(ok)
	_, ok = out.Argument(-1)
	require.False(ok)
}

func TestHexenThingSinglePlayerBit(t *testing.T) {
	require := require.New(t)

	var th HexenThing
	b := th.Bytes()
	require.Equal(byte(1), b[13]&1, "single player bit is set when NotSinglePlayer is false")

	th.NotSinglePlayer = true
	b = th.Bytes()
	require.Equal(byte(0), b[13]&1)

	b[13] |= 1
	var out HexenThing
	require.NoError(out.UnmarshalBinary(b))
	require.False(out.NotSinglePlayer)
}

func TestHexenThingArguments(t *testing.T) {
	require := require.New(t)

	var th HexenThing
	require.NoError(th.SetArguments(9, 8, 7, 6, 5))
	require.ErrorIs(th.SetArguments(1, 2, 3, 4, 5, 6), codec.ErrOutOfRange)
	require.ErrorIs(th.SetArguments(1, 256), codec.ErrOutOfRange)
	require.Equal(Arguments{9, 8, 7, 6, 5}, th.Arguments())

	require.NoError(th.SetArguments(4))
	require.Equal(Arguments{4, 0, 0, 0, 0}, th.Arguments())

	require.ErrorIs(th.SetSpecial(256), codec.ErrOutOfRange)
}

func TestReadThings(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	for i := range 3 {
		th := &DoomThing{}
		require.NoError(th.SetType(i + 1))
		_, err := th.WriteTo(&buf)
		require.NoError(err)
	}
	buf.WriteByte(0xff)

	things, err := ReadThings(&buf, Doom, 3)
	require.NoError(err)
	require.Len(things, 3)
	for i, th := range things {
		require.IsType(&DoomThing{}, th)
		require.Equal(i+1, th.Base().Type())
		require.Equal(Doom, th.Format())
	}
	require.Equal(1, buf.Len(), "reader stops after the last record")

	_, err = ReadThings(bytes.NewReader(make([]byte, 15)), Doom, 2)
	require.ErrorContains(err, "record 1")

	_, err = ReadThings(&buf, UDMF, 1)
	require.ErrorIs(err, ErrNoBinaryRecords)
}

func TestThingDecodeShort(t *testing.T) {
	in := &HexenThing{}
	require.NoError(t, in.SetID(5))

	err := in.UnmarshalBinary(make([]byte, 10))
	var de *codec.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "hexen thing", de.Entity)
	require.Equal(t, 5, in.ID(), "failed decode leaves receiver unchanged")
}

func TestThingString(t *testing.T) {
	th := &DoomThing{}
	require.NoError(t, th.SetType(1))
	th.Hard = true
	require.Equal(t, "Thing X 0 Y 0 Type 1 Angle 0 HARD", th.String())
}
