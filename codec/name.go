package codec

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// NameLength is the width of every fixed-length name field.
const NameLength = 8

// BlankTexture is the name that marks an absent texture.
const BlankTexture = "-"

// ValidName reports whether s can be stored in an 8-byte name field: nonempty, at most
// 8 bytes, and made only of printable ASCII other than space.
func ValidName(s string) bool {
	if len(s) == 0 || len(s) > NameLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '!' || s[i] > '~' {
			return false
		}
	}
	return true
}

// NormalizeName validates s and returns it upper-cased.
func NormalizeName(s string) (string, error) {
	if !ValidName(s) {
		return "", errors.Wrapf(ErrInvalidName, "%q", s)
	}
	return UpperName(s), nil
}

// UpperName upper-cases the ASCII letters of s and leaves every other rune alone.
func UpperName(s string) string {
	b := []rune(s)
	for i, r := range b {
		if r >= 'a' && r <= 'z' {
			b[i] = r - 'a' + 'A'
		}
	}
	return string(b)
}

// Name decodes a NUL-padded name field. Bytes above 0x7F are read as code page 437 so
// that names written by DOS-era tools survive a round trip.
func Name(src []byte) string {
	if len(src) > NameLength {
		src = src[:NameLength]
	}
	out := make([]rune, 0, len(src))
	for _, c := range src {
		if c == 0 {
			break
		}
		out = append(out, charmap.CodePage437.DecodeByte(c))
	}
	return string(out)
}

// PutName writes name into dst as a NUL-padded field of len(dst) bytes (at most 8 are used).
func PutName(dst []byte, name string) {
	if len(dst) > NameLength {
		dst = dst[:NameLength]
	}
	clear(dst)
	i := 0
	for _, r := range name {
		if i == len(dst) {
			break
		}
		c, ok := charmap.CodePage437.EncodeRune(r)
		if !ok {
			c = '?'
		}
		dst[i] = c
		i++
	}
}
