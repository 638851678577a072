package codec

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckRange(t *testing.T) {
	require := require.New(t)

	require.NoError(CheckInt16("x", -32768))
	require.NoError(CheckInt16("x", 32767))
	require.ErrorIs(CheckInt16("x", -32769), ErrOutOfRange)
	require.ErrorIs(CheckInt16("x", 32768), ErrOutOfRange)

	require.NoError(CheckUint16("x", 0))
	require.NoError(CheckUint16("x", 65535))
	require.ErrorIs(CheckUint16("x", -1), ErrOutOfRange)
	require.ErrorIs(CheckUint16("x", 65536), ErrOutOfRange)

	require.NoError(CheckUint8("x", 255))
	require.ErrorIs(CheckUint8("x", 256), ErrOutOfRange)

	err := CheckUint8("Argument 2", 300)
	require.ErrorContains(err, "Argument 2")
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"STARTAN3", true},
		{"-", true},
		{"w94_1", true},
		{"", false},
		{"TOOLONGNAME", false},
		{"HAS SPACE", false},
		{"TAB\t", false},
		{"NUL\x00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, ValidName(tt.name))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	n, err := NormalizeName("w94_1")
	require.NoError(t, err)
	require.Equal(t, "W94_1", n)

	_, err = NormalizeName("")
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestNameField(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, NameLength)
	PutName(buf, "DOOR3")
	require.Equal([]byte{'D', 'O', 'O', 'R', '3', 0, 0, 0}, buf)
	require.Equal("DOOR3", Name(buf))

	PutName(buf, "STARTAN3")
	require.Equal("STARTAN3", Name(buf))

	// Bytes above 0x7F survive a round trip.
	raw := []byte{'A', 0x82, 'B', 0, 0, 0, 0, 0}
	name := Name(raw)
	out := make([]byte, NameLength)
	PutName(out, name)
	require.Equal(raw, out)
}

type pair struct {
	A, B int16
}

func (p *pair) ReadFrom(r io.Reader) (int64, error) {
	var buf [4]byte
	n, err := ReadFull(r, buf[:], "pair")
	if err != nil {
		return n, err
	}
	p.A = int16(binary.LittleEndian.Uint16(buf[0:]))
	p.B = int16(binary.LittleEndian.Uint16(buf[2:]))
	return n, nil
}

func (p pair) WriteTo(w io.Writer) (int64, error) {
	var buf [4]byte
	binary.LittleEndian.PutUint16(buf[0:], uint16(p.A))
	binary.LittleEndian.PutUint16(buf[2:], uint16(p.B))
	return Write(w, buf[:])
}

func TestRecords(t *testing.T) {
	require := require.New(t)

	in := []pair{{1, 2}, {-3, 4}, {5, -6}}
	var buf bytes.Buffer
	n, err := WriteRecords(&buf, in)
	require.NoError(err)
	require.EqualValues(12, n)

	out, err := ReadRecords[pair](bytes.NewReader(buf.Bytes()), 3)
	require.NoError(err)
	require.Equal(in, out)

	each, err := ReadEach(bytes.NewReader(buf.Bytes()), 3, func() *pair { return new(pair) })
	require.NoError(err)
	require.Equal(in[2], *each[2])

	_, err = ReadRecords[pair](bytes.NewReader(buf.Bytes()[:10]), 3)
	require.ErrorIs(err, io.ErrUnexpectedEOF)
	require.ErrorContains(err, "record 2")

	var de *DecodeError
	require.ErrorAs(err, &de)
	require.Equal("pair", de.Entity)
}

func TestRecordsHugeCount(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	_, err := WriteRecords(&buf, []pair{{1, 2}, {3, 4}})
	require.NoError(err)

	_, err = ReadRecords[pair](bytes.NewReader(buf.Bytes()), 0x7FFFFFFF)
	require.ErrorIs(err, io.ErrUnexpectedEOF)
	require.ErrorContains(err, "record 2")

	_, err = ReadEach(bytes.NewReader(buf.Bytes()), 0x7FFFFFFF, func() *pair { return new(pair) })
	require.ErrorIs(err, io.ErrUnexpectedEOF)

	out, err := ReadRecords[pair](bytes.NewReader(buf.Bytes()), -1)
	require.NoError(err)
	require.Empty(out)
}
