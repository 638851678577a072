package mapdata

import (
	"io"

	"github.com/stuarthighley/doomstruct/codec"
)

// NoSector is the sector index of a sidedef that faces nothing.
const NoSector = -1

// SidedefLength is the size of a sidedef record. Every dialect uses the same layout.
const SidedefLength = 30

// Sidedef describes the textures on one side of a linedef.
type Sidedef struct {
	offsetX, offsetY int
	upper            string
	lower            string
	middle           string
	sector           int
}

// NewSidedef returns a sidedef with blank textures and no sector.
func NewSidedef() *Sidedef {
	return &Sidedef{
		upper:  codec.BlankTexture,
		lower:  codec.BlankTexture,
		middle: codec.BlankTexture,
		sector: NoSector,
	}
}

// ReadSidedefs reads count consecutive sidedefs from r.
func ReadSidedefs(r io.Reader, count int) ([]Sidedef, error) {
	return codec.ReadRecords[Sidedef](r, count)
}

func (s *Sidedef) OffsetX() int { return s.offsetX }

func (s *Sidedef) SetOffsetX(x int) error {
	if err := codec.CheckInt16("Offset X", x); err != nil {
		return err
	}
	s.offsetX = x
	return nil
}

func (s *Sidedef) OffsetY() int { return s.offsetY }

func (s *Sidedef) SetOffsetY(y int) error {
	if err := codec.CheckInt16("Offset Y", y); err != nil {
		return err
	}
	s.offsetY = y
	return nil
}

func (s *Sidedef) UpperTexture() string { return s.upper }

func (s *Sidedef) SetUpperTexture(name string) error {
	return setName(&s.upper, name)
}

func (s *Sidedef) LowerTexture() string { return s.lower }

func (s *Sidedef) SetLowerTexture(name string) error {
	return setName(&s.lower, name)
}

func (s *Sidedef) MiddleTexture() string { return s.middle }

func (s *Sidedef) SetMiddleTexture(name string) error {
	return setName(&s.middle, name)
}

// SectorIndex is the sector this side faces, or NoSector.
func (s *Sidedef) SectorIndex() int { return s.sector }

func (s *Sidedef) SetSectorIndex(i int) error {
	if err := codec.CheckInt16("Sector Index", i); err != nil {
		return err
	}
	s.sector = i
	return nil
}

func (s *Sidedef) Bytes() []byte {
	return encode(&binSidedef{
		XOffset:       int16(s.offsetX),
		YOffset:       int16(s.offsetY),
		UpperTexture:  putName(s.upper),
		LowerTexture:  putName(s.lower),
		MiddleTexture: putName(s.middle),
		SectorNum:     int16(s.sector),
	})
}

func (s *Sidedef) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

func (s *Sidedef) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, s.Bytes())
}

func (s *Sidedef) UnmarshalBinary(data []byte) error {
	if len(data) < SidedefLength {
		return codec.Decoding("sidedef", io.ErrUnexpectedEOF)
	}
	var bin binSidedef
	decode(data, &bin)
	*s = Sidedef{
		offsetX: int(bin.XOffset),
		offsetY: int(bin.YOffset),
		upper:   getName(bin.UpperTexture),
		lower:   getName(bin.LowerTexture),
		middle:  getName(bin.MiddleTexture),
		sector:  int(bin.SectorNum),
	}
	return nil
}

func (s *Sidedef) ReadFrom(r io.Reader) (int64, error) {
	var buf [SidedefLength]byte
	n, err := codec.ReadFull(r, buf[:], "sidedef")
	if err != nil {
		return n, err
	}
	return n, s.UnmarshalBinary(buf[:])
}

func (s *Sidedef) String() string {
	var d describer
	d.WriteString("Sidedef")
	d.field("OffsetX", s.offsetX)
	d.field("OffsetY", s.offsetY)
	d.field("Upper", s.upper)
	d.field("Lower", s.lower)
	d.field("Middle", s.middle)
	d.field("Sector", s.sector)
	return d.String()
}

// setName validates and upper-cases name before storing it in dst.
func setName(dst *string, name string) error {
	n, err := codec.NormalizeName(name)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}
