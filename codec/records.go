package codec

import (
	"io"

	"github.com/pkg/errors"
)

// maxPrealloc bounds the capacity reserved from a record count read off the wire. Larger
// runs grow as records actually decode.
const maxPrealloc = 4096

// ReadRecords decodes count back-to-back records of type T from r. Nothing is returned
// unless every record decodes.
func ReadRecords[T any, PT interface {
	*T
	io.ReaderFrom
}](r io.Reader, count int) ([]T, error) {
	out := make([]T, 0, min(max(count, 0), maxPrealloc))
	for i := 0; i < count; i++ {
		var rec T
		if _, err := PT(&rec).ReadFrom(r); err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		out = append(out, rec)
	}
	return out, nil
}

// ReadEach is ReadRecords for records that are handled through an interface; newRecord
// supplies a fresh value for each slot.
func ReadEach[T io.ReaderFrom](r io.Reader, count int, newRecord func() T) ([]T, error) {
	out := make([]T, 0, min(max(count, 0), maxPrealloc))
	for i := 0; i < count; i++ {
		rec := newRecord()
		if _, err := rec.ReadFrom(r); err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		out = append(out, rec)
	}
	return out, nil
}

// WriteRecords writes each record to w in order with no separators.
func WriteRecords[T io.WriterTo](w io.Writer, records []T) (int64, error) {
	var total int64
	for i, rec := range records {
		n, err := rec.WriteTo(w)
		total += n
		if err != nil {
			return total, errors.Wrapf(err, "record %d", i)
		}
	}
	return total, nil
}
