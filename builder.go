package doomstruct

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct/codec"
)

// Builder assembles a new archive in memory. Lumps are written in the order they are added,
// followed by the directory.
type Builder struct {
	magic   string
	entries []Entry
	data    bytes.Buffer
}

// NewBuilder returns an empty builder for an archive of type IWAD or PWAD.
func NewBuilder(magic string) (*Builder, error) {
	if magic != IWAD && magic != PWAD {
		return nil, errors.Errorf("bad magic %q", magic)
	}
	return &Builder{magic: magic}, nil
}

// Add appends a lump. Names are validated and upper-cased.
func (b *Builder) Add(name string, data []byte) error {
	name, err := codec.NormalizeName(name)
	if err != nil {
		return err
	}
	b.entries = append(b.entries, Entry{
		Name:   name,
		Offset: headerLength + b.data.Len(),
		Size:   len(data),
	})
	b.data.Write(data)
	return nil
}

// AddEncoded appends a lump holding the encoding of e.
func (b *Builder) AddEncoded(name string, e codec.Encoder) error {
	return b.Add(name, e.Bytes())
}

// AddMarker appends an empty lump such as a level marker.
func (b *Builder) AddMarker(name string) error {
	return b.Add(name, nil)
}

// WriteTo writes the header, the lump data and the directory.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	var hdr bytes.Buffer
	var magic [4]byte
	copy(magic[:], b.magic)
	binary.Write(&hdr, binary.LittleEndian, &binHeader{
		Magic:        magic,
		NumLumps:     int32(len(b.entries)),
		InfoTableOfs: int32(headerLength + b.data.Len()),
	})

	n, err := codec.Write(w, hdr.Bytes())
	if err != nil {
		return n, err
	}
	m, err := codec.Write(w, b.data.Bytes())
	n += m
	if err != nil {
		return n, err
	}
	dir := make([]*Entry, len(b.entries))
	for i := range b.entries {
		dir[i] = &b.entries[i]
	}
	m, err = codec.WriteRecords(w, dir)
	return n + m, err
}

// Bytes returns the complete archive.
func (b *Builder) Bytes() []byte {
	var buf bytes.Buffer
	b.WriteTo(&buf)
	return buf.Bytes()
}
