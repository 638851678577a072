package doomstruct

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/stuarthighley/doomstruct/codec"
)

// EntryLength is the size of one directory record.
const EntryLength = 16

// Entry is a directory record: the name, position and size of one lump.
type Entry struct {
	Name   string
	Offset int
	Size   int
}

type binEntry struct {
	Filepos int32
	Size    int32
	Name    [8]byte
}

// IsMarker reports whether the entry is an empty lump used as a namespace or level marker.
func (e *Entry) IsMarker() bool {
	return e.Size == 0
}

func (e *Entry) Bytes() []byte {
	b := make([]byte, EntryLength)
	binary.LittleEndian.PutUint32(b[0:], uint32(e.Offset))
	binary.LittleEndian.PutUint32(b[4:], uint32(e.Size))
	codec.PutName(b[8:16], e.Name)
	return b
}

func (e *Entry) MarshalBinary() ([]byte, error) {
	return e.Bytes(), nil
}

func (e *Entry) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, e.Bytes())
}

func (e *Entry) UnmarshalBinary(data []byte) error {
	if len(data) < EntryLength {
		return codec.Decoding("entry", io.ErrUnexpectedEOF)
	}
	var bin binEntry
	binary.Read(bytes.NewReader(data), binary.LittleEndian, &bin)
	if bin.Filepos < 0 || bin.Size < 0 {
		return codec.Malformed("entry", "%s at %d size %d", codec.Name(bin.Name[:]), bin.Filepos, bin.Size)
	}
	*e = Entry{
		Name:   codec.Name(bin.Name[:]),
		Offset: int(bin.Filepos),
		Size:   int(bin.Size),
	}
	return nil
}

func (e *Entry) ReadFrom(r io.Reader) (int64, error) {
	var buf [EntryLength]byte
	n, err := codec.ReadFull(r, buf[:], "entry")
	if err != nil {
		return n, err
	}
	return n, e.UnmarshalBinary(buf[:])
}
