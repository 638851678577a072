package codec

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// CheckRange returns an ErrOutOfRange error naming field when v is outside [lo, hi].
func CheckRange[T constraints.Integer | constraints.Float](field string, lo, hi, v T) error {
	if v < lo || v > hi {
		return errors.Wrapf(ErrOutOfRange, "%s: %v not in [%v, %v]", field, v, lo, hi)
	}
	return nil
}

// CheckInt16 accepts -32768 to 32767.
func CheckInt16(field string, v int) error {
	return CheckRange(field, math.MinInt16, math.MaxInt16, v)
}

// CheckUint16 accepts 0 to 65535.
func CheckUint16(field string, v int) error {
	return CheckRange(field, 0, math.MaxUint16, v)
}

// CheckUint8 accepts 0 to 255.
func CheckUint8(field string, v int) error {
	return CheckRange(field, 0, math.MaxUint8, v)
}
