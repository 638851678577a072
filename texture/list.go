package texture

import (
	"bytes"
	"encoding/binary"
	"io"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct/codec"
	"github.com/stuarthighley/doomstruct/namedlist"
)

// List is a TEXTUREx lump: an ordered set of uniquely named textures.
type List struct {
	format   Format
	textures *namedlist.List[*Texture]
}

// NewList returns an empty list that encodes textures in format f.
func NewList(f Format) *List {
	return &List{format: f, textures: newDirectory()}
}

func newDirectory() *namedlist.List[*Texture] {
	return namedlist.New(func(t *Texture) string { return t.name })
}

func (l *List) Format() Format { return l.format }

// CreateTexture adds an empty texture called name and returns it. The name is validated
// and upper-cased; ErrDuplicateName is returned if the list already has one by that name.
func (l *List) CreateTexture(name string) (*Texture, error) {
	name, err := codec.NormalizeName(name)
	if err != nil {
		return nil, err
	}
	if l.textures.Contains(name) {
		return nil, errors.Wrapf(codec.ErrDuplicateName, "texture %s", name)
	}
	t := &Texture{name: name, format: l.format}
	l.textures.Add(t)
	return t, nil
}

// Texture returns the texture called name, or nil. The lookup is case-insensitive.
func (l *List) Texture(name string) *Texture {
	t, _ := l.textures.GetByKey(codec.UpperName(name))
	return t
}

// TextureAt returns the texture at index i, or nil.
func (l *List) TextureAt(i int) *Texture {
	t, _ := l.textures.Get(i)
	return t
}

// IndexOf returns the index of the texture called name, or -1.
func (l *List) IndexOf(name string) int {
	return l.textures.IndexOf(codec.UpperName(name))
}

// Remove removes the texture called name and reports whether it existed.
func (l *List) Remove(name string) bool {
	return l.textures.RemoveKey(codec.UpperName(name))
}

// RemoveAt removes and returns the texture at index i, or nil. Later textures move down by one.
func (l *List) RemoveAt(i int) *Texture {
	t, _ := l.textures.RemoveIndex(i)
	return t
}

func (l *List) Len() int { return l.textures.Len() }

func (l *List) IsEmpty() bool { return l.textures.IsEmpty() }

// All yields the textures in list order.
func (l *List) All() iter.Seq2[int, *Texture] {
	return l.textures.All()
}

// Sort orders the textures by name.
func (l *List) Sort() {
	l.SortFunc(func(a, b *Texture) int { return strings.Compare(a.name, b.name) })
}

func (l *List) SortFunc(cmp func(a, b *Texture) int) {
	l.textures.SortFunc(cmp)
}

func (l *List) Clear() {
	l.textures.Clear()
}

// Bytes encodes the list: a count, one absolute offset per texture, then the texture
// records in order.
func (l *List) Bytes() []byte {
	count := l.textures.Len()
	base := (count + 1) * 4

	size := base
	for _, t := range l.textures.All() {
		size += t.Len()
	}
	b := make([]byte, base, size)
	binary.LittleEndian.PutUint32(b, uint32(count))
	offset := base
	for i, t := range l.textures.All() {
		binary.LittleEndian.PutUint32(b[(i+1)*4:], uint32(offset))
		offset += t.Len()
	}
	for _, t := range l.textures.All() {
		b = append(b, t.Bytes()...)
	}
	return b
}

func (l *List) MarshalBinary() ([]byte, error) {
	return l.Bytes(), nil
}

func (l *List) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, l.Bytes())
}

// UnmarshalBinary replaces the list's textures with those decoded from data. The
// format of the list selects the record layout. Textures that repeat an earlier name are
// dropped.
func (l *List) UnmarshalBinary(data []byte) error {
	offsets, err := readOffsets(data)
	if err != nil {
		return err
	}
	textures := newDirectory()
	for i, off := range offsets {
		if off < 0 || int64(off) >= int64(len(data)) {
			return codec.Malformed("texture list", "texture %d offset %d outside %d bytes", i, off, len(data))
		}
		t, err := decodeTexture(l.format, data[off:])
		if err != nil {
			return errors.Wrapf(err, "texture %d", i)
		}
		textures.Add(t)
	}
	l.textures = textures
	return nil
}

// ReadFrom reads a whole texture list from r, stopping at the end of the last texture
// record.
func (l *List) ReadFrom(r io.Reader) (int64, error) {
	var head [4]byte
	n, err := codec.ReadFull(r, head[:], "texture list")
	if err != nil {
		return n, err
	}
	count := int32(binary.LittleEndian.Uint32(head[:]))
	if count < 0 || count > math.MaxInt32/4-1 {
		return n, codec.Malformed("texture list", "count %d", count)
	}

	buf := bytes.NewBuffer(head[:])
	m, err := codec.CopyFull(buf, r, int64(count)*4, "texture list")
	n += m
	if err != nil {
		return n, errors.Wrap(err, "offsets")
	}
	offsets, err := readOffsets(buf.Bytes())
	if err != nil {
		return n, err
	}

	// Textures may be stored in any order; read through the header and patches of the one
	// that starts last.
	end := 0
	if len(offsets) > 0 {
		last := slices.Max(offsets)
		if int(last) < buf.Len() {
			return n, codec.Malformed("texture list", "texture offset %d inside offset table", last)
		}
		m, err = codec.CopyFull(buf, r, int64(last)-int64(buf.Len())+int64(l.format.headerLength()), "texture")
		n += m
		if err != nil {
			return n, err
		}
		hdr := buf.Bytes()[last:]
		patches := int(int16(binary.LittleEndian.Uint16(hdr[l.format.headerLength()-2:])))
		if patches < 0 {
			return n, codec.Malformed("texture", "patch count %d", patches)
		}
		end = int(last) + l.format.RecordLength(patches)
	}
	if end > buf.Len() {
		m, err = codec.CopyFull(buf, r, int64(end-buf.Len()), "texture")
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, l.UnmarshalBinary(buf.Bytes())
}

// readOffsets decodes the count and offset table at the start of a list lump.
func readOffsets(data []byte) ([]int32, error) {
	if len(data) < 4 {
		return nil, codec.Decoding("texture list", io.ErrUnexpectedEOF)
	}
	count := int32(binary.LittleEndian.Uint32(data))
	if count < 0 {
		return nil, codec.Malformed("texture list", "count %d", count)
	}
	if int64(len(data)) < (int64(count)+1)*4 {
		return nil, codec.Decoding("texture list", errors.Wrapf(io.ErrUnexpectedEOF, "%d offsets", count))
	}
	offsets := make([]int32, count)
	binary.Read(bytes.NewReader(data[4:]), binary.LittleEndian, offsets)
	return offsets, nil
}
