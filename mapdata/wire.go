package mapdata

import (
	"bytes"
	"encoding/binary"

	"github.com/stuarthighley/doomstruct/codec"
)

// Wire records. Field order is the on-disk order; every record is little-endian with no
// padding.

type binDoomThing struct {
	X       int16
	Y       int16
	Angle   int16
	Type    uint16
	Options uint16
}

type binHexenThing struct {
	ID      uint16
	X       int16
	Y       int16
	Height  int16
	Angle   int16
	Type    uint16
	Options uint16
	Special uint8
	Args    [5]uint8
}

type binDoomLinedef struct {
	VertexStart uint16
	VertexEnd   uint16
	Flags       uint16
	Special     uint16
	Tag         uint16
	Front       int16
	Back        int16
}

type binHexenLinedef struct {
	VertexStart uint16
	VertexEnd   uint16
	Flags       uint16
	Special     uint8
	Args        [5]uint8
	Front       int16
	Back        int16
}

type binSidedef struct {
	XOffset       int16
	YOffset       int16
	UpperTexture  [8]byte
	LowerTexture  [8]byte
	MiddleTexture [8]byte
	SectorNum     int16
}

type binSector struct {
	FloorHeight    int16
	CeilingHeight  int16
	FloorTexture   [8]byte
	CeilingTexture [8]byte
	LightLevel     int16
	Type           int16
	TagNum         int16
}

type binVertex struct {
	X, Y int16
}

// encode packs a wire record.
func encode(bin any) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, binary.Size(bin)))
	binary.Write(buf, binary.LittleEndian, bin)
	return buf.Bytes()
}

// decode unpacks data into a wire record. The caller checks that data is long enough.
func decode(data []byte, bin any) {
	binary.Read(bytes.NewReader(data), binary.LittleEndian, bin)
}

func putName(name string) (b [8]byte) {
	codec.PutName(b[:], name)
	return b
}

func getName(b [8]byte) string {
	return codec.UpperName(codec.Name(b[:]))
}
