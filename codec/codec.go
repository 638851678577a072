// Package codec defines the round-trip binary contract shared by every structure in this module,
// along with the validation helpers the structures use to guard their fields.
//
// An entity that satisfies Codec can be turned into bytes and back:
//
//	b := thing.Bytes()
//	var out mapdata.DoomThing
//	err := out.UnmarshalBinary(b)
//
// ReadFrom consumes exactly the bytes that belong to the entity, so it may be called
// repeatedly on one open reader to decode a run of records. It never closes the reader.
package codec

import (
	"encoding"
	"io"

	"github.com/pkg/errors"
)

// Encoder serializes an entity. MarshalBinary never returns an error for a value built
// through its setters; it exists to satisfy encoding.BinaryMarshaler.
type Encoder interface {
	encoding.BinaryMarshaler
	io.WriterTo
	Bytes() []byte
}

// Decoder deserializes an entity. On failure the receiver is left unchanged.
type Decoder interface {
	encoding.BinaryUnmarshaler
	io.ReaderFrom
}

// Codec is an entity that can be both encoded and decoded.
type Codec interface {
	Encoder
	Decoder
}

var (
	// ErrOutOfRange is returned when a value is outside a field's declared range.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidName is returned for names that are empty, too long or not printable.
	ErrInvalidName = errors.New("invalid name")
	// ErrDuplicateName is returned when a name already exists in a list that requires unique names.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrMalformed is returned when input bytes describe something no writer could have produced.
	ErrMalformed = errors.New("malformed data")
)

// DecodeError reports which kind of entity failed to decode.
type DecodeError struct {
	Entity string
	Err    error
}

func (e *DecodeError) Error() string {
	return "decode " + e.Entity + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decoding wraps err in a DecodeError for entity. A nil err stays nil.
func Decoding(entity string, err error) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if errors.As(err, &de) && de.Entity == entity {
		return err
	}
	return &DecodeError{Entity: entity, Err: err}
}

// Malformed returns a DecodeError for entity wrapping ErrMalformed with a formatted reason.
func Malformed(entity string, format string, args ...any) error {
	return &DecodeError{Entity: entity, Err: errors.Wrapf(ErrMalformed, format, args...)}
}

// ReadFull fills buf from r. A short read is reported as io.ErrUnexpectedEOF, even when
// nothing at all could be read, because the caller always expects a whole record.
func ReadFull(r io.Reader, buf []byte, entity string) (int64, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return int64(n), Decoding(entity, err)
}

// CopyFull copies exactly n bytes from r to dst. A short copy is reported as
// io.ErrUnexpectedEOF. Unlike ReadFull no buffer of size n is reserved, so n may come from
// untrusted input.
func CopyFull(dst io.Writer, r io.Reader, n int64, entity string) (int64, error) {
	m, err := io.CopyN(dst, r, n)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return m, Decoding(entity, err)
}

// Write writes b to w and reports the byte count the way io.WriterTo does.
func Write(w io.Writer, b []byte) (int64, error) {
	n, err := w.Write(b)
	return int64(n), err
}
