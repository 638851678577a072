package mapdata

import (
	"io"

	"github.com/stuarthighley/doomstruct/codec"
)

// VertexLength is the size of a vertex record.
const VertexLength = 4

// Vertex is a map coordinate shared by linedefs.
type Vertex struct {
	x, y int
}

// ReadVertices reads count consecutive vertices from r.
func ReadVertices(r io.Reader, count int) ([]Vertex, error) {
	return codec.ReadRecords[Vertex](r, count)
}

func (v *Vertex) X() int { return v.x }

func (v *Vertex) SetX(x int) error {
	if err := codec.CheckInt16("Position X", x); err != nil {
		return err
	}
	v.x = x
	return nil
}

func (v *Vertex) Y() int { return v.y }

func (v *Vertex) SetY(y int) error {
	if err := codec.CheckInt16("Position Y", y); err != nil {
		return err
	}
	v.y = y
	return nil
}

func (v *Vertex) Bytes() []byte {
	return encode(&binVertex{X: int16(v.x), Y: int16(v.y)})
}

func (v *Vertex) MarshalBinary() ([]byte, error) {
	return v.Bytes(), nil
}

func (v *Vertex) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, v.Bytes())
}

func (v *Vertex) UnmarshalBinary(data []byte) error {
	if len(data) < VertexLength {
		return codec.Decoding("vertex", io.ErrUnexpectedEOF)
	}
	var bin binVertex
	decode(data, &bin)
	*v = Vertex{x: int(bin.X), y: int(bin.Y)}
	return nil
}

func (v *Vertex) ReadFrom(r io.Reader) (int64, error) {
	var buf [VertexLength]byte
	n, err := codec.ReadFull(r, buf[:], "vertex")
	if err != nil {
		return n, err
	}
	return n, v.UnmarshalBinary(buf[:])
}
