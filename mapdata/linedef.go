package mapdata

import (
	"io"
	"strconv"

	"github.com/stuarthighley/doomstruct/codec"
)

// NoSidedef is the sidedef index of a missing side.
const NoSidedef = -1

// Dialect flag bits above the shared nine.
const (
	doomPassThru = 1 << 9

	strifeJumpOver      = 1 << 9
	strifeBlockFloaters = 1 << 10
	strifeTranslucent   = 1 << 11
	strifeTranslucent75 = 1 << 12

	hexenRepeatable       = 1 << 9
	hexenActivationShift  = 10
	hexenActivationMask   = 0x7
	hexenMonsterActivates = 1 << 13
	hexenBlocksEverything = 1 << 15
)

func flagIf(set bool, bit uint16) uint16 {
	if set {
		return bit
	}
	return 0
}

// Linedef is a wall segment in any binary dialect. The concrete types are *DoomLinedef,
// *HexenLinedef and *StrifeLinedef.
type Linedef interface {
	codec.Codec
	Base() *LinedefBase
	Format() Format
	String() string
	linedef()
}

// LinedefBase holds the fields every linedef dialect shares. Bits 0 to 8 of the flag word
// are the same in all dialects.
type LinedefBase struct {
	vertexStart  int
	vertexEnd    int
	special      int
	sidedefFront int
	sidedefBack  int

	Impassable      bool
	MonsterBlocking bool
	TwoSided        bool
	UpperUnpegged   bool
	LowerUnpegged   bool
	Secret          bool
	SoundBlocking   bool
	NotDrawn        bool
	Mapped          bool
}

func newLinedefBase() LinedefBase {
	return LinedefBase{sidedefFront: NoSidedef, sidedefBack: NoSidedef}
}

func (l *LinedefBase) VertexStart() int { return l.vertexStart }

func (l *LinedefBase) SetVertexStart(i int) error {
	if err := codec.CheckUint16("Vertex Start", i); err != nil {
		return err
	}
	l.vertexStart = i
	return nil
}

func (l *LinedefBase) VertexEnd() int { return l.vertexEnd }

func (l *LinedefBase) SetVertexEnd(i int) error {
	if err := codec.CheckUint16("Vertex End", i); err != nil {
		return err
	}
	l.vertexEnd = i
	return nil
}

// SidedefFront is the index of the right-hand sidedef, or NoSidedef.
func (l *LinedefBase) SidedefFront() int { return l.sidedefFront }

func (l *LinedefBase) SetSidedefFront(i int) error {
	if err := codec.CheckInt16("Sidedef Front", i); err != nil {
		return err
	}
	l.sidedefFront = i
	return nil
}

// SidedefBack is the index of the left-hand sidedef, or NoSidedef.
func (l *LinedefBase) SidedefBack() int { return l.sidedefBack }

func (l *LinedefBase) SetSidedefBack(i int) error {
	if err := codec.CheckInt16("Sidedef Back", i); err != nil {
		return err
	}
	l.sidedefBack = i
	return nil
}

// Special is the action special number. Its range depends on the dialect, so each dialect
// provides its own setter.
func (l *LinedefBase) Special() int { return l.special }

func (l *LinedefBase) flags() uint16 {
	return packFlags(
		l.Impassable,
		l.MonsterBlocking,
		l.TwoSided,
		l.UpperUnpegged,
		l.LowerUnpegged,
		l.Secret,
		l.SoundBlocking,
		l.NotDrawn,
		l.Mapped,
	)
}

func (l *LinedefBase) setFlags(flags uint16) {
	l.Impassable = bitSet(flags, 0)
	l.MonsterBlocking = bitSet(flags, 1)
	l.TwoSided = bitSet(flags, 2)
	l.UpperUnpegged = bitSet(flags, 3)
	l.LowerUnpegged = bitSet(flags, 4)
	l.Secret = bitSet(flags, 5)
	l.SoundBlocking = bitSet(flags, 6)
	l.NotDrawn = bitSet(flags, 7)
	l.Mapped = bitSet(flags, 8)
}

func (l *LinedefBase) describe(d *describer) {
	d.WriteString("Linedef")
	d.field("Vertex", l.vertexStart)
	d.field("to", l.vertexEnd)
	d.field("Front", l.sidedefFront)
	d.field("Back", l.sidedefBack)
	d.flag(l.Impassable, "IMPASSABLE")
	d.flag(l.MonsterBlocking, "MONSTERBLOCK")
	d.flag(l.TwoSided, "TWOSIDED")
	d.flag(l.UpperUnpegged, "UPPERUNPEGGED")
	d.flag(l.LowerUnpegged, "LOWERUNPEGGED")
	d.flag(l.Secret, "SECRET")
	d.flag(l.SoundBlocking, "SOUNDBLOCKING")
	d.flag(l.NotDrawn, "NOTDRAWN")
	d.flag(l.Mapped, "MAPPED")
}

// NewLinedef returns an empty linedef for format f with no sidedefs attached.
func NewLinedef(f Format) (Linedef, error) {
	switch f {
	case Doom:
		return NewDoomLinedef(), nil
	case Hexen:
		return NewHexenLinedef(), nil
	case Strife:
		return NewStrifeLinedef(), nil
	}
	_, err := LinedefLength(f)
	return nil, err
}

// ReadLinedefs reads count consecutive linedefs of format f from r.
func ReadLinedefs(r io.Reader, f Format, count int) ([]Linedef, error) {
	if _, err := NewLinedef(f); err != nil {
		return nil, err
	}
	return codec.ReadEach(r, count, func() Linedef {
		l, _ := NewLinedef(f)
		return l
	})
}

// DoomLinedefLength is the size of a Doom/Boom linedef record.
const DoomLinedefLength = 14

// DoomLinedef is the Doom/Boom linedef record.
type DoomLinedef struct {
	LinedefBase
	tag int

	PassThru bool // Boom: activation passes through to lines behind
}

func NewDoomLinedef() *DoomLinedef {
	return &DoomLinedef{LinedefBase: newLinedefBase()}
}

func (l *DoomLinedef) Base() *LinedefBase { return &l.LinedefBase }
func (l *DoomLinedef) Format() Format     { return Doom }
func (*DoomLinedef) linedef()             {}

func (l *DoomLinedef) SetSpecial(special int) error {
	if err := codec.CheckUint16("Special", special); err != nil {
		return err
	}
	l.special = special
	return nil
}

// Tag is the sector tag the special acts on.
func (l *DoomLinedef) Tag() int { return l.tag }

func (l *DoomLinedef) SetTag(tag int) error {
	if err := codec.CheckUint16("Tag", tag); err != nil {
		return err
	}
	l.tag = tag
	return nil
}

func (l *DoomLinedef) Bytes() []byte {
	return encode(&binDoomLinedef{
		VertexStart: uint16(l.vertexStart),
		VertexEnd:   uint16(l.vertexEnd),
		Flags:       l.flags() | flagIf(l.PassThru, doomPassThru),
		Special:     uint16(l.special),
		Tag:         uint16(l.tag),
		Front:       int16(l.sidedefFront),
		Back:        int16(l.sidedefBack),
	})
}

func (l *DoomLinedef) MarshalBinary() ([]byte, error) {
	return l.Bytes(), nil
}

func (l *DoomLinedef) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, l.Bytes())
}

func (l *DoomLinedef) UnmarshalBinary(data []byte) error {
	if len(data) < DoomLinedefLength {
		return codec.Decoding("doom linedef", io.ErrUnexpectedEOF)
	}
	var bin binDoomLinedef
	decode(data, &bin)
	var out DoomLinedef
	out.vertexStart, out.vertexEnd = int(bin.VertexStart), int(bin.VertexEnd)
	out.setFlags(bin.Flags)
	out.PassThru = bin.Flags&doomPassThru != 0
	out.special, out.tag = int(bin.Special), int(bin.Tag)
	out.sidedefFront, out.sidedefBack = int(bin.Front), int(bin.Back)
	*l = out
	return nil
}

func (l *DoomLinedef) ReadFrom(r io.Reader) (int64, error) {
	var buf [DoomLinedefLength]byte
	n, err := codec.ReadFull(r, buf[:], "doom linedef")
	if err != nil {
		return n, err
	}
	return n, l.UnmarshalBinary(buf[:])
}

func (l *DoomLinedef) String() string {
	var d describer
	l.describe(&d)
	d.flag(l.PassThru, "PASSTHRU")
	d.field("Special", l.special)
	d.field("Tag", l.tag)
	return d.String()
}

// StrifeLinedefLength is the size of a Strife linedef record.
const StrifeLinedefLength = 14

// StrifeLinedef is the Strife linedef record: the Doom layout with Strife's own upper flags.
type StrifeLinedef struct {
	LinedefBase
	tag int

	JumpOver      bool // players can jump over this railing
	BlockFloaters bool // blocks floating monsters
	Translucent   bool // 25% translucent
	Translucent75 bool // 75% translucent
}

func NewStrifeLinedef() *StrifeLinedef {
	return &StrifeLinedef{LinedefBase: newLinedefBase()}
}

func (l *StrifeLinedef) Base() *LinedefBase { return &l.LinedefBase }
func (l *StrifeLinedef) Format() Format     { return Strife }
func (*StrifeLinedef) linedef()             {}

func (l *StrifeLinedef) SetSpecial(special int) error {
	if err := codec.CheckUint16("Special", special); err != nil {
		return err
	}
	l.special = special
	return nil
}

func (l *StrifeLinedef) Tag() int { return l.tag }

func (l *StrifeLinedef) SetTag(tag int) error {
	if err := codec.CheckUint16("Tag", tag); err != nil {
		return err
	}
	l.tag = tag
	return nil
}

func (l *StrifeLinedef) Bytes() []byte {
	flags := l.flags() |
		flagIf(l.JumpOver, strifeJumpOver) |
		flagIf(l.BlockFloaters, strifeBlockFloaters) |
		flagIf(l.Translucent, strifeTranslucent) |
		flagIf(l.Translucent75, strifeTranslucent75)

	return encode(&binDoomLinedef{
		VertexStart: uint16(l.vertexStart),
		VertexEnd:   uint16(l.vertexEnd),
		Flags:       flags,
		Special:     uint16(l.special),
		Tag:         uint16(l.tag),
		Front:       int16(l.sidedefFront),
		Back:        int16(l.sidedefBack),
	})
}

func (l *StrifeLinedef) MarshalBinary() ([]byte, error) {
	return l.Bytes(), nil
}

func (l *StrifeLinedef) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, l.Bytes())
}

func (l *StrifeLinedef) UnmarshalBinary(data []byte) error {
	if len(data) < StrifeLinedefLength {
		return codec.Decoding("strife linedef", io.ErrUnexpectedEOF)
	}
	var bin binDoomLinedef
	decode(data, &bin)
	var out StrifeLinedef
	out.vertexStart, out.vertexEnd = int(bin.VertexStart), int(bin.VertexEnd)
	out.setFlags(bin.Flags)
	out.JumpOver = bin.Flags&strifeJumpOver != 0
	out.BlockFloaters = bin.Flags&strifeBlockFloaters != 0
	out.Translucent = bin.Flags&strifeTranslucent != 0
	out.Translucent75 = bin.Flags&strifeTranslucent75 != 0
	out.special, out.tag = int(bin.Special), int(bin.Tag)
	out.sidedefFront, out.sidedefBack = int(bin.Front), int(bin.Back)
	*l = out
	return nil
}

func (l *StrifeLinedef) ReadFrom(r io.Reader) (int64, error) {
	var buf [StrifeLinedefLength]byte
	n, err := codec.ReadFull(r, buf[:], "strife linedef")
	if err != nil {
		return n, err
	}
	return n, l.UnmarshalBinary(buf[:])
}

func (l *StrifeLinedef) String() string {
	var d describer
	l.describe(&d)
	d.flag(l.JumpOver, "JUMPOVER")
	d.flag(l.BlockFloaters, "BLOCKFLOATERS")
	d.flag(l.Translucent, "TRANSLUCENT")
	d.flag(l.Translucent75, "TRANSLUCENT75")
	d.field("Special", l.special)
	d.field("Tag", l.tag)
	return d.String()
}

// Activation is how a Hexen linedef special is triggered. It occupies bits 10 to 12 of the
// flag word.
type Activation int

const (
	PlayerCrosses Activation = iota
	PlayerUses
	MonsterCrosses
	ProjectileHits
	PlayerBumps
	ProjectileCrosses
	PlayerUsesPassThru
)

var activationNames = [...]string{
	"PlayerCrosses",
	"PlayerUses",
	"MonsterCrosses",
	"ProjectileHits",
	"PlayerBumps",
	"ProjectileCrosses",
	"PlayerUsesPassThru",
}

// activationFlags is the flag word pattern of each activation type.
var activationFlags = [...]uint16{
	0x0000,
	0x0400,
	0x0800,
	0x0C00,
	0x1000,
	0x1400,
	0x1800,
}

func (a Activation) String() string {
	if !a.valid() {
		return "Activation(" + strconv.Itoa(int(a)) + ")"
	}
	return activationNames[a]
}

func (a Activation) valid() bool {
	return a >= PlayerCrosses && a <= PlayerUsesPassThru
}

// HexenLinedefLength is the size of a Hexen/ZDoom linedef record.
const HexenLinedefLength = 16

// HexenLinedef is the Hexen/ZDoom linedef record. The special is a single byte followed by
// five byte arguments; there is no tag.
type HexenLinedef struct {
	LinedefBase
	activation Activation
	args       Arguments

	Repeatable       bool
	MonsterActivates bool // ZDoom: players and monsters can activate
	BlocksEverything bool // ZDoom
}

func NewHexenLinedef() *HexenLinedef {
	return &HexenLinedef{LinedefBase: newLinedefBase()}
}

func (l *HexenLinedef) Base() *LinedefBase { return &l.LinedefBase }
func (l *HexenLinedef) Format() Format     { return Hexen }
func (*HexenLinedef) linedef()             {}

func (l *HexenLinedef) SetSpecial(special int) error {
	if err := codec.CheckUint8("Special", special); err != nil {
		return err
	}
	l.special = special
	return nil
}

func (l *HexenLinedef) Activation() Activation { return l.activation }

func (l *HexenLinedef) SetActivation(a Activation) error {
	if err := codec.CheckRange("Activation", PlayerCrosses, PlayerUsesPassThru, a); err != nil {
		return err
	}
	l.activation = a
	return nil
}

// Arguments returns a copy of the special's arguments.
func (l *HexenLinedef) Arguments() Arguments { return l.args }

// Argument returns argument n. ok is false when n is not 0 to 4.
func (l *HexenLinedef) Argument(n int) (v int, ok bool) { return l.args.at(n) }

// SetArguments sets up to five arguments; missing ones become zero.
func (l *HexenLinedef) SetArguments(args ...int) error {
	return l.args.set(args)
}

func (l *HexenLinedef) Bytes() []byte {
	flags := l.flags() |
		flagIf(l.Repeatable, hexenRepeatable) |
		flagIf(l.MonsterActivates, hexenMonsterActivates) |
		flagIf(l.BlocksEverything, hexenBlocksEverything)
	flags |= activationFlags[l.activation]

	return encode(&binHexenLinedef{
		VertexStart: uint16(l.vertexStart),
		VertexEnd:   uint16(l.vertexEnd),
		Flags:       flags,
		Special:     uint8(l.special),
		Args:        l.args.wire(),
		Front:       int16(l.sidedefFront),
		Back:        int16(l.sidedefBack),
	})
}

func (l *HexenLinedef) MarshalBinary() ([]byte, error) {
	return l.Bytes(), nil
}

func (l *HexenLinedef) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, l.Bytes())
}

func (l *HexenLinedef) UnmarshalBinary(data []byte) error {
	if len(data) < HexenLinedefLength {
		return codec.Decoding("hexen linedef", io.ErrUnexpectedEOF)
	}
	var bin binHexenLinedef
	decode(data, &bin)
	activation := Activation((bin.Flags >> hexenActivationShift) & hexenActivationMask)
	if !activation.valid() {
		return codec.Malformed("hexen linedef", "activation type %d", int(activation))
	}

	var out HexenLinedef
	out.vertexStart, out.vertexEnd = int(bin.VertexStart), int(bin.VertexEnd)
	out.setFlags(bin.Flags)
	out.Repeatable = bin.Flags&hexenRepeatable != 0
	out.MonsterActivates = bin.Flags&hexenMonsterActivates != 0
	out.BlocksEverything = bin.Flags&hexenBlocksEverything != 0
	out.activation = activation
	out.special = int(bin.Special)
	out.args = argumentsFrom(bin.Args)
	out.sidedefFront, out.sidedefBack = int(bin.Front), int(bin.Back)
	*l = out
	return nil
}

func (l *HexenLinedef) ReadFrom(r io.Reader) (int64, error) {
	var buf [HexenLinedefLength]byte
	n, err := codec.ReadFull(r, buf[:], "hexen linedef")
	if err != nil {
		return n, err
	}
	return n, l.UnmarshalBinary(buf[:])
}

func (l *HexenLinedef) String() string {
	var d describer
	l.describe(&d)
	d.flag(l.Repeatable, "REPEATABLE")
	d.flag(l.MonsterActivates, "PLAYERSANDMONSTERSACTIVATE")
	d.flag(l.BlocksEverything, "BLOCKEVERYTHING")
	d.field("Special", l.special)
	d.field("Args", l.args)
	d.field("Activation", l.activation.String())
	return d.String()
}
