// Package texture models composite wall textures: the TEXTURE1/TEXTURE2 lumps that
// assemble patches named in PNAMES into textures, and the PNAMES lump itself.
//
// Textures are created through the List that owns them so that names stay unique.
package texture

import "strconv"

// Format selects the on-disk texture record layout.
type Format int

const (
	// Doom is the layout used by Doom, Heretic, Hexen and most ports: a 22-byte header and
	// 10-byte patch records.
	Doom Format = iota
	// Strife drops the obsolete column directory and per-patch step/colormap fields: an
	// 18-byte header and 6-byte patch records.
	Strife
)

func (f Format) String() string {
	switch f {
	case Doom:
		return "Doom"
	case Strife:
		return "Strife"
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Wire records.
type binDoomHeader struct {
	Name            [8]byte
	Masked          int32
	Width           uint16
	Height          uint16
	ColumnDirectory int32 // obsolete, always zero
	PatchCount      int16
}

type binStrifeHeader struct {
	Name       [8]byte
	Masked     int32
	Width      uint16
	Height     uint16
	PatchCount int16
}

type binDoomPatch struct {
	OriginX    int16
	OriginY    int16
	PatchIndex uint16
	StepDir    int16 // obsolete, always 1
	ColorMap   int16 // obsolete, always 0
}

type binStrifePatch struct {
	OriginX    int16
	OriginY    int16
	PatchIndex uint16
}

const (
	doomHeaderLength   = 22
	strifeHeaderLength = 18
	doomPatchLength    = 10
	strifePatchLength  = 6
)

func (f Format) headerLength() int {
	if f == Strife {
		return strifeHeaderLength
	}
	return doomHeaderLength
}

func (f Format) patchLength() int {
	if f == Strife {
		return strifePatchLength
	}
	return doomPatchLength
}

// RecordLength returns the encoded size of a texture with patchCount patches.
func (f Format) RecordLength(patchCount int) int {
	return f.headerLength() + patchCount*f.patchLength()
}
