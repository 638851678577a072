package mapdata

import (
	"io"

	"github.com/stuarthighley/doomstruct/codec"
)

// SectorLength is the size of a sector record. Every dialect uses the same layout.
const SectorLength = 26

// Sector is an area of the map with a floor and a ceiling.
type Sector struct {
	floorHeight    int
	ceilingHeight  int
	floorTexture   string
	ceilingTexture string
	lightLevel     int
	special        int
	tag            int
}

// NewSector returns a sector with blank flats.
func NewSector() *Sector {
	return &Sector{
		floorTexture:   codec.BlankTexture,
		ceilingTexture: codec.BlankTexture,
	}
}

// ReadSectors reads count consecutive sectors from r.
func ReadSectors(r io.Reader, count int) ([]Sector, error) {
	return codec.ReadRecords[Sector](r, count)
}

func (s *Sector) FloorHeight() int { return s.floorHeight }

func (s *Sector) SetFloorHeight(h int) error {
	if err := codec.CheckInt16("Floor Height", h); err != nil {
		return err
	}
	s.floorHeight = h
	return nil
}

func (s *Sector) CeilingHeight() int { return s.ceilingHeight }

func (s *Sector) SetCeilingHeight(h int) error {
	if err := codec.CheckInt16("Ceiling Height", h); err != nil {
		return err
	}
	s.ceilingHeight = h
	return nil
}

func (s *Sector) FloorTexture() string { return s.floorTexture }

func (s *Sector) SetFloorTexture(name string) error {
	return setName(&s.floorTexture, name)
}

func (s *Sector) CeilingTexture() string { return s.ceilingTexture }

func (s *Sector) SetCeilingTexture(name string) error {
	return setName(&s.ceilingTexture, name)
}

func (s *Sector) LightLevel() int { return s.lightLevel }

func (s *Sector) SetLightLevel(l int) error {
	if err := codec.CheckInt16("Light Level", l); err != nil {
		return err
	}
	s.lightLevel = l
	return nil
}

func (s *Sector) Special() int { return s.special }

func (s *Sector) SetSpecial(special int) error {
	if err := codec.CheckInt16("Special", special); err != nil {
		return err
	}
	s.special = special
	return nil
}

func (s *Sector) Tag() int { return s.tag }

func (s *Sector) SetTag(tag int) error {
	if err := codec.CheckInt16("Tag", tag); err != nil {
		return err
	}
	s.tag = tag
	return nil
}

func (s *Sector) Bytes() []byte {
	return encode(&binSector{
		FloorHeight:    int16(s.floorHeight),
		CeilingHeight:  int16(s.ceilingHeight),
		FloorTexture:   putName(s.floorTexture),
		CeilingTexture: putName(s.ceilingTexture),
		LightLevel:     int16(s.lightLevel),
		Type:           int16(s.special),
		TagNum:         int16(s.tag),
	})
}

func (s *Sector) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

func (s *Sector) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, s.Bytes())
}

func (s *Sector) UnmarshalBinary(data []byte) error {
	if len(data) < SectorLength {
		return codec.Decoding("sector", io.ErrUnexpectedEOF)
	}
	var bin binSector
	decode(data, &bin)
	*s = Sector{
		floorHeight:    int(bin.FloorHeight),
		ceilingHeight:  int(bin.CeilingHeight),
		floorTexture:   getName(bin.FloorTexture),
		ceilingTexture: getName(bin.CeilingTexture),
		lightLevel:     int(bin.LightLevel),
		special:        int(bin.Type),
		tag:            int(bin.TagNum),
	}
	return nil
}

func (s *Sector) ReadFrom(r io.Reader) (int64, error) {
	var buf [SectorLength]byte
	n, err := codec.ReadFull(r, buf[:], "sector")
	if err != nil {
		return n, err
	}
	return n, s.UnmarshalBinary(buf[:])
}

func (s *Sector) String() string {
	var d describer
	d.WriteString("Sector")
	d.field("Floor", s.floorHeight)
	d.field("Ceiling", s.ceilingHeight)
	d.field("FloorFlat", s.floorTexture)
	d.field("CeilingFlat", s.ceilingTexture)
	d.field("Light", s.lightLevel)
	d.field("Special", s.special)
	d.field("Tag", s.tag)
	return d.String()
}
