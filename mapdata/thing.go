package mapdata

import (
	"io"

	"github.com/stuarthighley/doomstruct/codec"
)

// Thing is a placed object in any binary dialect. The concrete types are *DoomThing,
// *HexenThing and *StrifeThing.
type Thing interface {
	codec.Codec
	Base() *ThingBase
	Format() Format
	String() string
	thing()
}

// ThingBase holds the fields every thing dialect shares.
type ThingBase struct {
	x, y      int
	angle     int
	thingType int

	Easy            bool // skill levels 1 and 2
	Medium          bool // skill level 3
	Hard            bool // skill levels 4 and 5
	Ambush          bool // deaf until it sees a player
	NotSinglePlayer bool
}

func (t *ThingBase) X() int { return t.x }

func (t *ThingBase) SetX(x int) error {
	if err := codec.CheckInt16("Position X", x); err != nil {
		return err
	}
	t.x = x
	return nil
}

func (t *ThingBase) Y() int { return t.y }

func (t *ThingBase) SetY(y int) error {
	if err := codec.CheckInt16("Position Y", y); err != nil {
		return err
	}
	t.y = y
	return nil
}

// Angle is the facing in degrees, 0 being east.
func (t *ThingBase) Angle() int { return t.angle }

func (t *ThingBase) SetAngle(angle int) error {
	if err := codec.CheckInt16("Angle", angle); err != nil {
		return err
	}
	t.angle = angle
	return nil
}

// Type is the editor number of the thing.
func (t *ThingBase) Type() int { return t.thingType }

func (t *ThingBase) SetType(thingType int) error {
	if err := codec.CheckUint16("Type", thingType); err != nil {
		return err
	}
	t.thingType = thingType
	return nil
}

func (t *ThingBase) describe(d *describer) {
	d.WriteString("Thing")
	d.field("X", t.x)
	d.field("Y", t.y)
	d.field("Type", t.thingType)
	d.field("Angle", t.angle)
	d.flag(t.Easy, "EASY")
	d.flag(t.Medium, "MEDIUM")
	d.flag(t.Hard, "HARD")
	d.flag(t.Ambush, "AMBUSH")
	d.flag(t.NotSinglePlayer, "NOTSINGLEPLAYER")
}

// NewThing returns an empty thing for format f.
func NewThing(f Format) (Thing, error) {
	switch f {
	case Doom:
		return new(DoomThing), nil
	case Hexen:
		return new(HexenThing), nil
	case Strife:
		return new(StrifeThing), nil
	}
	_, err := ThingLength(f)
	return nil, err
}

// ReadThings reads count consecutive things of format f from r.
func ReadThings(r io.Reader, f Format, count int) ([]Thing, error) {
	if _, err := NewThing(f); err != nil {
		return nil, err
	}
	return codec.ReadEach(r, count, func() Thing {
		t, _ := NewThing(f)
		return t
	})
}

// DoomThingLength is the size of a Doom/Boom thing record.
const DoomThingLength = 10

// DoomThing is the Doom/Boom thing record.
type DoomThing struct {
	ThingBase
	NotDeathmatch  bool
	NotCooperative bool
	Friendly       bool // MBF
}

func (t *DoomThing) Base() *ThingBase { return &t.ThingBase }
func (t *DoomThing) Format() Format   { return Doom }
func (*DoomThing) thing()             {}

func (t *DoomThing) Bytes() []byte {
	return encode(&binDoomThing{
		X:     int16(t.x),
		Y:     int16(t.y),
		Angle: int16(t.angle),
		Type:  uint16(t.thingType),
		Options: packFlags(
			t.Easy,
			t.Medium,
			t.Hard,
			t.Ambush,
			t.NotSinglePlayer,
			t.NotDeathmatch,
			t.NotCooperative,
			t.Friendly,
		),
	})
}

func (t *DoomThing) MarshalBinary() ([]byte, error) {
	return t.Bytes(), nil
}

func (t *DoomThing) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, t.Bytes())
}

func (t *DoomThing) UnmarshalBinary(data []byte) error {
	if len(data) < DoomThingLength {
		return codec.Decoding("doom thing", io.ErrUnexpectedEOF)
	}
	var bin binDoomThing
	decode(data, &bin)
	var out DoomThing
	out.x, out.y, out.angle, out.thingType = int(bin.X), int(bin.Y), int(bin.Angle), int(bin.Type)
	out.Easy = bitSet(bin.Options, 0)
	out.Medium = bitSet(bin.Options, 1)
	out.Hard = bitSet(bin.Options, 2)
	out.Ambush = bitSet(bin.Options, 3)
	out.NotSinglePlayer = bitSet(bin.Options, 4)
	out.NotDeathmatch = bitSet(bin.Options, 5)
	out.NotCooperative = bitSet(bin.Options, 6)
	out.Friendly = bitSet(bin.Options, 7)
	*t = out
	return nil
}

func (t *DoomThing) ReadFrom(r io.Reader) (int64, error) {
	var buf [DoomThingLength]byte
	n, err := codec.ReadFull(r, buf[:], "doom thing")
	if err != nil {
		return n, err
	}
	return n, t.UnmarshalBinary(buf[:])
}

func (t *DoomThing) String() string {
	var d describer
	t.describe(&d)
	d.flag(t.NotDeathmatch, "NOTDEATHMATCH")
	d.flag(t.NotCooperative, "NOTCOOPERATIVE")
	d.flag(t.Friendly, "FRIENDLY")
	return d.String()
}

// StrifeThingLength is the size of a Strife thing record.
const StrifeThingLength = 10

// StrifeThing is the Strife thing record. Strife moves the ambush bit to bit 5 and uses bit 3
// for things that stand still.
type StrifeThing struct {
	ThingBase
	Standing    bool
	Ally        bool
	Translucent bool
	Invisible   bool
}

func (t *StrifeThing) Base() *ThingBase { return &t.ThingBase }
func (t *StrifeThing) Format() Format   { return Strife }
func (*StrifeThing) thing()             {}

func (t *StrifeThing) Bytes() []byte {
	return encode(&binDoomThing{
		X:     int16(t.x),
		Y:     int16(t.y),
		Angle: int16(t.angle),
		Type:  uint16(t.thingType),
		Options: packFlags(
			t.Easy,
			t.Medium,
			t.Hard,
			t.Standing,
			t.NotSinglePlayer,
			t.Ambush,
			t.Ally,
			false,
			t.Translucent,
			t.Invisible,
		),
	})
}

func (t *StrifeThing) MarshalBinary() ([]byte, error) {
	return t.Bytes(), nil
}

func (t *StrifeThing) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, t.Bytes())
}

func (t *StrifeThing) UnmarshalBinary(data []byte) error {
	if len(data) < StrifeThingLength {
		return codec.Decoding("strife thing", io.ErrUnexpectedEOF)
	}
	var bin binDoomThing
	decode(data, &bin)
	var out StrifeThing
	out.x, out.y, out.angle, out.thingType = int(bin.X), int(bin.Y), int(bin.Angle), int(bin.Type)
	out.Easy = bitSet(bin.Options, 0)
	out.Medium = bitSet(bin.Options, 1)
	out.Hard = bitSet(bin.Options, 2)
	out.Standing = bitSet(bin.Options, 3)
	out.NotSinglePlayer = bitSet(bin.Options, 4)
	out.Ambush = bitSet(bin.Options, 5)
	out.Ally = bitSet(bin.Options, 6)
	out.Translucent = bitSet(bin.Options, 8)
	out.Invisible = bitSet(bin.Options, 9)
	*t = out
	return nil
}

func (t *StrifeThing) ReadFrom(r io.Reader) (int64, error) {
	var buf [StrifeThingLength]byte
	n, err := codec.ReadFull(r, buf[:], "strife thing")
	if err != nil {
		return n, err
	}
	return n, t.UnmarshalBinary(buf[:])
}

func (t *StrifeThing) String() string {
	var d describer
	t.describe(&d)
	d.flag(t.Standing, "STANDING")
	d.flag(t.Ally, "ALLY")
	d.flag(t.Translucent, "TRANSLUCENT")
	d.flag(t.Invisible, "INVISIBLE")
	return d.String()
}

// HexenThingLength is the size of a Hexen/ZDoom thing record.
const HexenThingLength = 20

// HexenThing is the Hexen/ZDoom thing record. Hexen stores a positive "appears in single
// player" bit; it is kept here as the inverse of NotSinglePlayer.
type HexenThing struct {
	ThingBase
	id      int
	height  int
	special int
	args    Arguments

	Dormant     bool
	Fighter     bool
	Cleric      bool
	Mage        bool
	Cooperative bool
	Deathmatch  bool
	Translucent bool // ZDoom
	Invisible   bool // ZDoom
	Friendly    bool // ZDoom
	StandStill  bool // ZDoom
}

func (t *HexenThing) Base() *ThingBase { return &t.ThingBase }
func (t *HexenThing) Format() Format   { return Hexen }
func (*HexenThing) thing()             {}

// ID is the thing's spawn id (TID).
func (t *HexenThing) ID() int { return t.id }

func (t *HexenThing) SetID(id int) error {
	if err := codec.CheckUint16("ID", id); err != nil {
		return err
	}
	t.id = id
	return nil
}

// Height is the spawn height above the floor.
func (t *HexenThing) Height() int { return t.height }

func (t *HexenThing) SetHeight(height int) error {
	if err := codec.CheckInt16("Height", height); err != nil {
		return err
	}
	t.height = height
	return nil
}

func (t *HexenThing) Special() int { return t.special }

func (t *HexenThing) SetSpecial(special int) error {
	if err := codec.CheckUint8("Special", special); err != nil {
		return err
	}
	t.special = special
	return nil
}

// Arguments returns a copy of the special's arguments.
func (t *HexenThing) Arguments() Arguments { return t.args }

// Argument returns argument n. ok is false when n is not 0 to 4.
func (t *HexenThing) Argument(n int) (v int, ok bool) { return t.args.at(n) }

// SetArguments sets up to five arguments; missing ones become zero.
func (t *HexenThing) SetArguments(args ...int) error {
	return t.args.set(args)
}

func (t *HexenThing) Bytes() []byte {
	return encode(&binHexenThing{
		ID:     uint16(t.id),
		X:      int16(t.x),
		Y:      int16(t.y),
		Height: int16(t.height),
		Angle:  int16(t.angle),
		Type:   uint16(t.thingType),
		Options: packFlags(
			t.Easy,
			t.Medium,
			t.Hard,
			t.Ambush,
			t.Dormant,
			t.Fighter,
			t.Cleric,
			t.Mage,
			!t.NotSinglePlayer,
			t.Cooperative,
			t.Deathmatch,
			t.Translucent,
			t.Invisible,
			t.Friendly,
			t.StandStill,
		),
		Special: uint8(t.special),
		Args:    t.args.wire(),
	})
}

func (t *HexenThing) MarshalBinary() ([]byte, error) {
	return t.Bytes(), nil
}

func (t *HexenThing) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, t.Bytes())
}

func (t *HexenThing) UnmarshalBinary(data []byte) error {
	if len(data) < HexenThingLength {
		return codec.Decoding("hexen thing", io.ErrUnexpectedEOF)
	}
	var bin binHexenThing
	decode(data, &bin)
	var out HexenThing
	out.id, out.x, out.y, out.height = int(bin.ID), int(bin.X), int(bin.Y), int(bin.Height)
	out.angle, out.thingType = int(bin.Angle), int(bin.Type)
	out.Easy = bitSet(bin.Options, 0)
	out.Medium = bitSet(bin.Options, 1)
	out.Hard = bitSet(bin.Options, 2)
	out.Ambush = bitSet(bin.Options, 3)
	out.Dormant = bitSet(bin.Options, 4)
	out.Fighter = bitSet(bin.Options, 5)
	out.Cleric = bitSet(bin.Options, 6)
	out.Mage = bitSet(bin.Options, 7)
	out.NotSinglePlayer = !bitSet(bin.Options, 8)
	out.Cooperative = bitSet(bin.Options, 9)
	out.Deathmatch = bitSet(bin.Options, 10)
	out.Translucent = bitSet(bin.Options, 11)
	out.Invisible = bitSet(bin.Options, 12)
	out.Friendly = bitSet(bin.Options, 13)
	out.StandStill = bitSet(bin.Options, 14)
	out.special = int(bin.Special)
	out.args = argumentsFrom(bin.Args)
	*t = out
	return nil
}

func (t *HexenThing) ReadFrom(r io.Reader) (int64, error) {
	var buf [HexenThingLength]byte
	n, err := codec.ReadFull(r, buf[:], "hexen thing")
	if err != nil {
		return n, err
	}
	return n, t.UnmarshalBinary(buf[:])
}

func (t *HexenThing) String() string {
	var d describer
	t.describe(&d)
	d.field("ID", t.id)
	d.field("Height", t.height)
	d.flag(t.Dormant, "DORMANT")
	d.flag(t.Fighter, "FIGHTER")
	d.flag(t.Cleric, "CLERIC")
	d.flag(t.Mage, "MAGE")
	d.flag(t.Cooperative, "COOPERATIVE")
	d.flag(t.Deathmatch, "DEATHMATCH")
	d.flag(t.Translucent, "TRANSLUCENT")
	d.flag(t.Invisible, "INVISIBLE")
	d.flag(t.Friendly, "FRIENDLY")
	d.flag(t.StandStill, "STANDSTILL")
	d.field("Special", t.special)
	d.field("Args", t.args)
	return d.String()
}
