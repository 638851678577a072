package mapdata

import (
	"strconv"
	"strings"

	"github.com/stuarthighley/doomstruct/codec"
)

// packFlags sets bit i of the result for every true bits[i].
func packFlags(bits ...bool) uint16 {
	var out uint16
	for i, b := range bits {
		if b {
			out |= 1 << i
		}
	}
	return out
}

func bitSet(flags uint16, n uint) bool {
	return flags&(1<<n) != 0
}

// Arguments are the five byte-sized parameters of a Hexen special.
type Arguments [5]int

// set replaces a with args, zero-filling unused slots.
func (a *Arguments) set(args []int) error {
	if len(args) > len(a) {
		return codec.CheckRange("Argument count", 0, len(a), len(args))
	}
	var out Arguments
	for i, v := range args {
		if err := codec.CheckUint8("Argument "+strconv.Itoa(i), v); err != nil {
			return err
		}
		out[i] = v
	}
	*a = out
	return nil
}

// at returns argument n. ok is false when n is not 0 to 4.
func (a *Arguments) at(n int) (v int, ok bool) {
	if n < 0 || n >= len(a) {
		return 0, false
	}
	return a[n], true
}

func (a *Arguments) wire() (b [5]uint8) {
	for i, v := range a {
		b[i] = uint8(v)
	}
	return b
}

func argumentsFrom(b [5]uint8) (a Arguments) {
	for i, v := range b {
		a[i] = int(v)
	}
	return a
}

// describer accumulates a one-line description of a record.
type describer struct {
	strings.Builder
}

func (d *describer) flag(set bool, name string) {
	if set {
		d.WriteByte(' ')
		d.WriteString(name)
	}
}

func (d *describer) field(name string, v any) {
	d.WriteByte(' ')
	d.WriteString(name)
	d.WriteByte(' ')
	switch v := v.(type) {
	case int:
		d.WriteString(strconv.Itoa(v))
	case string:
		d.WriteString(v)
	case Arguments:
		d.WriteString(fmtInts(v[:]))
	default:
		d.WriteString("?")
	}
}

func fmtInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
