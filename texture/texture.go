package texture

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"slices"

	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct/codec"
)

// Patch places one PNAMES entry inside a texture.
type Patch struct {
	patchIndex int
	originX    int
	originY    int
}

// PatchIndex is the position of the patch's name in PNAMES.
func (p *Patch) PatchIndex() int { return p.patchIndex }

func (p *Patch) SetPatchIndex(i int) error {
	if err := codec.CheckUint16("Patch Index", i); err != nil {
		return err
	}
	p.patchIndex = i
	return nil
}

// OriginX is the horizontal offset of the patch relative to the texture's left edge.
func (p *Patch) OriginX() int { return p.originX }

func (p *Patch) SetOriginX(x int) error {
	if err := codec.CheckInt16("Origin X", x); err != nil {
		return err
	}
	p.originX = x
	return nil
}

// OriginY is the vertical offset of the patch relative to the texture's top edge.
func (p *Patch) OriginY() int { return p.originY }

func (p *Patch) SetOriginY(y int) error {
	if err := codec.CheckInt16("Origin Y", y); err != nil {
		return err
	}
	p.originY = y
	return nil
}

// Texture is a composite texture. Patches are drawn in order, so later patches cover
// earlier ones.
type Texture struct {
	name    string
	format  Format
	width   int
	height  int
	patches []*Patch

	Masked bool // has transparent gaps; ignored by most engines
}

// Name is the upper-case texture name. It is fixed when the texture is created.
func (t *Texture) Name() string { return t.name }

func (t *Texture) Width() int { return t.width }

func (t *Texture) SetWidth(w int) error {
	if err := codec.CheckUint16("Width", w); err != nil {
		return err
	}
	t.width = w
	return nil
}

func (t *Texture) Height() int { return t.height }

func (t *Texture) SetHeight(h int) error {
	if err := codec.CheckUint16("Height", h); err != nil {
		return err
	}
	t.height = h
	return nil
}

// MaxPatches is the most patches a texture record can count.
const MaxPatches = math.MaxInt16

// CreatePatch appends a new patch at the origin referencing PNAMES entry 0. It fails once
// the texture holds MaxPatches patches.
func (t *Texture) CreatePatch() (*Patch, error) {
	if len(t.patches) >= MaxPatches {
		return nil, errors.Wrapf(codec.ErrOutOfRange, "%s: more than %d patches", t.name, MaxPatches)
	}
	p := &Patch{}
	t.patches = append(t.patches, p)
	return p, nil
}

// Patch returns the patch at index i, or nil.
func (t *Texture) Patch(i int) *Patch {
	if i < 0 || i >= len(t.patches) {
		return nil
	}
	return t.patches[i]
}

func (t *Texture) PatchCount() int { return len(t.patches) }

// Patches returns the patches in drawing order. The slice is a copy; the patches are not.
func (t *Texture) Patches() []*Patch {
	return slices.Clone(t.patches)
}

// ShiftPatch moves the patch at index from to index to, shifting the patches in between.
// It reports false if either index is out of range.
func (t *Texture) ShiftPatch(from, to int) bool {
	if from < 0 || from >= len(t.patches) || to < 0 || to >= len(t.patches) {
		return false
	}
	p := t.patches[from]
	t.patches = slices.Insert(slices.Delete(t.patches, from, from+1), to, p)
	return true
}

// RemovePatch removes and returns the patch at index i, or nil. Later patches move down
// by one.
func (t *Texture) RemovePatch(i int) *Patch {
	if i < 0 || i >= len(t.patches) {
		return nil
	}
	p := t.patches[i]
	t.patches = slices.Delete(t.patches, i, i+1)
	return p
}

// Len returns the encoded size of the texture record.
func (t *Texture) Len() int {
	return t.format.RecordLength(len(t.patches))
}

// Bytes encodes the texture record in the format of its list.
func (t *Texture) Bytes() []byte {
	var name [8]byte
	codec.PutName(name[:], t.name)

	buf := bytes.NewBuffer(make([]byte, 0, t.Len()))
	var masked int32
	if t.Masked {
		masked = 1
	}
	if t.format == Strife {
		binary.Write(buf, binary.LittleEndian, &binStrifeHeader{
			Name:       name,
			Masked:     masked,
			Width:      uint16(t.width),
			Height:     uint16(t.height),
			PatchCount: int16(len(t.patches)),
		})
		for _, p := range t.patches {
			binary.Write(buf, binary.LittleEndian, &binStrifePatch{
				OriginX:    int16(p.originX),
				OriginY:    int16(p.originY),
				PatchIndex: uint16(p.patchIndex),
			})
		}
		return buf.Bytes()
	}

	binary.Write(buf, binary.LittleEndian, &binDoomHeader{
		Name:       name,
		Masked:     masked,
		Width:      uint16(t.width),
		Height:     uint16(t.height),
		PatchCount: int16(len(t.patches)),
	})
	for _, p := range t.patches {
		binary.Write(buf, binary.LittleEndian, &binDoomPatch{
			OriginX:    int16(p.originX),
			OriginY:    int16(p.originY),
			PatchIndex: uint16(p.patchIndex),
			StepDir:    1,
		})
	}
	return buf.Bytes()
}

func (t *Texture) MarshalBinary() ([]byte, error) {
	return t.Bytes(), nil
}

func (t *Texture) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, t.Bytes())
}

// decodeTexture reads one texture record from the start of data.
func decodeTexture(f Format, data []byte) (*Texture, error) {
	if len(data) < f.headerLength() {
		return nil, codec.Decoding("texture", io.ErrUnexpectedEOF)
	}
	r := bytes.NewReader(data)

	var (
		rawName [8]byte
		t       = &Texture{format: f}
		count   int
	)
	if f == Strife {
		var h binStrifeHeader
		binary.Read(r, binary.LittleEndian, &h)
		rawName, t.Masked, t.width, t.height, count = h.Name, h.Masked != 0, int(h.Width), int(h.Height), int(h.PatchCount)
	} else {
		var h binDoomHeader
		binary.Read(r, binary.LittleEndian, &h)
		rawName, t.Masked, t.width, t.height, count = h.Name, h.Masked != 0, int(h.Width), int(h.Height), int(h.PatchCount)
	}

	name, err := codec.NormalizeName(codec.Name(rawName[:]))
	if err != nil {
		return nil, codec.Decoding("texture", err)
	}
	t.name = name
	if count < 0 {
		return nil, codec.Malformed("texture", "%s: patch count %d", name, count)
	}
	if r.Len() < count*f.patchLength() {
		return nil, codec.Decoding("texture", errors.Wrapf(io.ErrUnexpectedEOF, "%s: %d patches", name, count))
	}

	t.patches = make([]*Patch, count)
	for i := range t.patches {
		var p binStrifePatch
		binary.Read(r, binary.LittleEndian, &p)
		if f == Doom {
			r.Seek(doomPatchLength-strifePatchLength, io.SeekCurrent)
		}
		t.patches[i] = &Patch{
			patchIndex: int(p.PatchIndex),
			originX:    int(p.OriginX),
			originY:    int(p.OriginY),
		}
	}
	return t, nil
}
