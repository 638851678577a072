package texture

import (
	"bytes"
	"encoding/binary"
	"io"
	"iter"

	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct/codec"
	"github.com/stuarthighley/doomstruct/namedlist"
)

// PatchNames is the PNAMES lump: the list of patch lumps that textures refer to by index.
// Names are stored upper-case.
type PatchNames struct {
	names *namedlist.List[string]
}

func NewPatchNames() *PatchNames {
	return &PatchNames{names: newNames()}
}

func newNames() *namedlist.List[string] {
	return namedlist.New(func(s string) string { return s })
}

// Add validates and upper-cases name, appends it if new, and returns its index.
func (p *PatchNames) Add(name string) (int, error) {
	name, err := codec.NormalizeName(name)
	if err != nil {
		return -1, err
	}
	return p.names.Add(name), nil
}

// Name returns the name at index i. ok is false when i is out of range.
func (p *PatchNames) Name(i int) (name string, ok bool) {
	return p.names.Get(i)
}

// IndexOf returns the index of name, or -1. The lookup is case-insensitive.
func (p *PatchNames) IndexOf(name string) int {
	return p.names.IndexOf(codec.UpperName(name))
}

func (p *PatchNames) Contains(name string) bool {
	return p.names.Contains(codec.UpperName(name))
}

// Remove deletes name and reports whether it was present. Textures that referred to later
// entries by index must be renumbered by the caller.
func (p *PatchNames) Remove(name string) bool {
	return p.names.RemoveKey(codec.UpperName(name))
}

func (p *PatchNames) Len() int { return p.names.Len() }

func (p *PatchNames) IsEmpty() bool { return p.names.IsEmpty() }

func (p *PatchNames) All() iter.Seq2[int, string] {
	return p.names.All()
}

func (p *PatchNames) Clear() {
	p.names.Clear()
}

func (p *PatchNames) Bytes() []byte {
	b := make([]byte, 4+p.names.Len()*codec.NameLength)
	binary.LittleEndian.PutUint32(b, uint32(p.names.Len()))
	for i, name := range p.names.All() {
		off := 4 + i*codec.NameLength
		codec.PutName(b[off:off+codec.NameLength], name)
	}
	return b
}

func (p *PatchNames) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

func (p *PatchNames) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, p.Bytes())
}

// UnmarshalBinary replaces the names with those in data. A name that repeats an earlier
// one is dropped, so later indices shift down.
func (p *PatchNames) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return codec.Decoding("patch names", io.ErrUnexpectedEOF)
	}
	count := int32(binary.LittleEndian.Uint32(data))
	if count < 0 {
		return codec.Malformed("patch names", "count %d", count)
	}
	if int64(len(data)-4) < int64(count)*codec.NameLength {
		return codec.Decoding("patch names", errors.Wrapf(io.ErrUnexpectedEOF, "%d names", count))
	}
	names := newNames()
	for i := range int(count) {
		off := 4 + i*codec.NameLength
		name, err := codec.NormalizeName(codec.Name(data[off : off+codec.NameLength]))
		if err != nil {
			return codec.Decoding("patch names", errors.Wrapf(err, "name %d", i))
		}
		names.Add(name)
	}
	p.names = names
	return nil
}

func (p *PatchNames) ReadFrom(r io.Reader) (int64, error) {
	var head [4]byte
	n, err := codec.ReadFull(r, head[:], "patch names")
	if err != nil {
		return n, err
	}
	count := int32(binary.LittleEndian.Uint32(head[:]))
	if count < 0 {
		return n, codec.Malformed("patch names", "count %d", count)
	}
	buf := bytes.NewBuffer(head[:])
	m, err := codec.CopyFull(buf, r, int64(count)*codec.NameLength, "patch names")
	n += m
	if err != nil {
		return n, err
	}
	return n, p.UnmarshalBinary(buf.Bytes())
}
