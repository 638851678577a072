package picture

import (
	"bytes"
	"encoding/binary"
	"io"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct/codec"
)

const (
	headerLength = 8
	endOfColumn  = 0xFF

	// maxTop is the largest post start that can be written as an absolute row, and the
	// largest relative step.
	maxTop = 254
	// maxPostLength keeps the start of a split run reachable in one relative step.
	maxPostLength = 254
)

type binHeader struct {
	Width   uint16
	Height  uint16
	OffsetX int16
	OffsetY int16
}

// post is a run of opaque pixels starting at row top.
type post struct {
	top    int
	pixels []byte
}

// encodeColumn returns the posts of column x followed by the end marker.
func (p *Picture) encodeColumn(x int) []byte {
	col := p.column(x)
	var out []byte
	last := -1

	for y := 0; y < len(col); {
		if col[y] == Transparent {
			y++
			continue
		}
		top := y
		for y < len(col) && col[y] != Transparent && y-top < maxPostLength {
			y++
		}

		// Tall columns: insert empty posts until top is in reach.
		for {
			if top <= maxTop && top > last {
				out = append(out, byte(top))
				break
			}
			if delta := top - last; last >= 0 && delta <= last && delta <= maxTop {
				out = append(out, byte(delta))
				break
			}
			out = append(out, maxTop, 0, 0, 0)
			if last < maxTop {
				last = maxTop
			} else {
				last += maxTop
			}
		}

		out = append(out, byte(y-top), 0)
		for _, v := range col[top:y] {
			out = append(out, byte(v))
		}
		out = append(out, 0)
		last = top
	}
	return append(out, endOfColumn)
}

// Bytes encodes the picture with one column block per column.
func (p *Picture) Bytes() []byte {
	return p.assemble(false)
}

// CompactBytes encodes the picture like Bytes, but columns with identical encodings share
// one column block.
func (p *Picture) CompactBytes() []byte {
	return p.assemble(true)
}

func (p *Picture) assemble(share bool) []byte {
	var (
		offsets = make([]uint32, p.width)
		blocks  [][]byte
		starts  []uint32
		seen    = map[uint64][]int{}
		pos     = headerLength + 4*p.width
	)
	for x := range offsets {
		col := p.encodeColumn(x)
		if share {
			h := xxhash.Sum64(col)
			i := slices.IndexFunc(seen[h], func(i int) bool { return bytes.Equal(blocks[i], col) })
			if i >= 0 {
				offsets[x] = starts[seen[h][i]]
				continue
			}
			seen[h] = append(seen[h], len(blocks))
		}
		offsets[x] = uint32(pos)
		blocks = append(blocks, col)
		starts = append(starts, uint32(pos))
		pos += len(col)
	}

	buf := bytes.NewBuffer(make([]byte, 0, pos))
	binary.Write(buf, binary.LittleEndian, &binHeader{
		Width:   uint16(p.width),
		Height:  uint16(p.height),
		OffsetX: int16(p.offsetX),
		OffsetY: int16(p.offsetY),
	})
	binary.Write(buf, binary.LittleEndian, offsets)
	for _, b := range blocks {
		buf.Write(b)
	}
	return buf.Bytes()
}

func (p *Picture) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

func (p *Picture) WriteTo(w io.Writer) (int64, error) {
	return codec.Write(w, p.Bytes())
}

// UnmarshalBinary decodes a picture lump. Columns may share column blocks; each distinct
// block is decoded once.
func (p *Picture) UnmarshalBinary(data []byte) error {
	var h binHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return codec.Decoding("picture", io.ErrUnexpectedEOF)
	}
	if h.Width == 0 || h.Height == 0 {
		return codec.Malformed("picture", "size %dx%d", h.Width, h.Height)
	}
	width, height := int(h.Width), int(h.Height)
	if len(data) < headerLength+4*width {
		return codec.Decoding("picture", errors.Wrapf(io.ErrUnexpectedEOF, "%d column offsets", width))
	}
	offsets := make([]uint32, width)
	binary.Read(bytes.NewReader(data[headerLength:]), binary.LittleEndian, offsets)

	// Decode every distinct column block before filling any column.
	columns := make(map[uint32][]post, width)
	for x, off := range offsets {
		if _, ok := columns[off]; ok {
			continue
		}
		posts, _, err := decodeColumn(data, int64(off), height)
		if err != nil {
			return errors.Wrapf(err, "column %d", x)
		}
		columns[off] = posts
	}

	out := Picture{offsetX: int(h.OffsetX), offsetY: int(h.OffsetY)}
	out.SetDimensions(width, height)
	for x, off := range offsets {
		col := out.column(x)
		for _, ps := range columns[off] {
			for i, v := range ps.pixels {
				col[ps.top+i] = int16(v)
			}
		}
	}
	*p = out
	return nil
}

// decodeColumn parses the posts of the column block at off and returns them with the offset
// just past the end marker.
func decodeColumn(data []byte, off int64, height int) ([]post, int64, error) {
	if off < headerLength || off >= int64(len(data)) {
		return nil, 0, codec.Malformed("picture", "column offset %d outside %d bytes", off, len(data))
	}
	var posts []post
	last := -1
	for {
		if off >= int64(len(data)) {
			return nil, 0, codec.Decoding("picture", io.ErrUnexpectedEOF)
		}
		b := int(data[off])
		if b == endOfColumn {
			return posts, off + 1, nil
		}
		top := b
		if b <= last {
			top = last + b
		}
		last = top

		if off+2 > int64(len(data)) {
			return nil, 0, codec.Decoding("picture", io.ErrUnexpectedEOF)
		}
		n := int(data[off+1])
		end := off + 3 + int64(n) + 1
		if end > int64(len(data)) {
			return nil, 0, codec.Decoding("picture", io.ErrUnexpectedEOF)
		}
		if top+n > height {
			return nil, 0, codec.Malformed("picture", "post at row %d length %d exceeds height %d", top, n, height)
		}
		if n > 0 {
			posts = append(posts, post{top: top, pixels: data[off+3 : off+3+int64(n)]})
		}
		off = end
	}
}

// ReadFrom reads a picture lump from r, stopping at the end marker of the column block that
// starts last.
func (p *Picture) ReadFrom(r io.Reader) (int64, error) {
	head := make([]byte, headerLength)
	n, err := codec.ReadFull(r, head, "picture")
	if err != nil {
		return n, err
	}
	width := int(binary.LittleEndian.Uint16(head))
	if width == 0 {
		return n, codec.Malformed("picture", "zero width")
	}

	buf := bytes.NewBuffer(head)
	grow := func(k int64) error {
		m, err := codec.CopyFull(buf, r, k, "picture")
		n += m
		return err
	}
	if err := grow(4 * int64(width)); err != nil {
		return n, err
	}
	last := int64(0)
	for x := range width {
		off := int64(binary.LittleEndian.Uint32(buf.Bytes()[headerLength+4*x:]))
		last = max(last, off)
	}
	if last < int64(buf.Len()) {
		return n, codec.Malformed("picture", "column offset %d inside column table", last)
	}

	// Read up to the last column block, then post by post until its end marker.
	if err := grow(last - int64(buf.Len()) + 1); err != nil {
		return n, err
	}
	for data := buf.Bytes(); data[len(data)-1] != endOfColumn; data = buf.Bytes() {
		// Post header: length byte and leading pad, then pixels, trailing pad and the next
		// post start.
		if err := grow(2); err != nil {
			return n, err
		}
		data = buf.Bytes()
		if err := grow(int64(data[len(data)-2]) + 2); err != nil {
			return n, err
		}
	}
	return n, p.UnmarshalBinary(buf.Bytes())
}
