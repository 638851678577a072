// Package picture encodes and decodes the column-post picture format used for patches,
// sprites and most graphics lumps.
//
// A picture is stored column by column. Each column is a list of posts, runs of opaque
// pixels with a starting row, ended by a 0xFF byte. Transparent pixels are simply not
// stored. Pictures taller than 254 rows use the "tall patch" convention: a post start that
// is not greater than the previous post's start is relative to it.
package picture

import (
	"github.com/stuarthighley/doomstruct/codec"
)

// Transparent is the pixel value of a cell that no post covers.
const Transparent = -1

// MaxDimension is the largest width or height a picture can have.
const MaxDimension = 65535

// Picture is a grid of palette indices with a drawing offset.
type Picture struct {
	width, height    int
	offsetX, offsetY int
	pixels           []int16 // column-major
}

// New returns a fully transparent picture.
func New(width, height int) (*Picture, error) {
	p := &Picture{}
	if err := p.SetDimensions(width, height); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Picture) Width() int { return p.width }

func (p *Picture) Height() int { return p.height }

// SetDimensions resizes the picture and clears every pixel to Transparent. Existing
// content is not preserved.
func (p *Picture) SetDimensions(width, height int) error {
	if err := codec.CheckRange("Width", 1, MaxDimension, width); err != nil {
		return err
	}
	if err := codec.CheckRange("Height", 1, MaxDimension, height); err != nil {
		return err
	}
	p.width, p.height = width, height
	p.pixels = make([]int16, width*height)
	for i := range p.pixels {
		p.pixels[i] = Transparent
	}
	return nil
}

// OffsetX is the horizontal drawing offset; for sprites it is the distance from the left
// edge to the sprite's origin.
func (p *Picture) OffsetX() int { return p.offsetX }

func (p *Picture) SetOffsetX(x int) error {
	if err := codec.CheckInt16("Offset X", x); err != nil {
		return err
	}
	p.offsetX = x
	return nil
}

// OffsetY is the vertical drawing offset.
func (p *Picture) OffsetY() int { return p.offsetY }

func (p *Picture) SetOffsetY(y int) error {
	if err := codec.CheckInt16("Offset Y", y); err != nil {
		return err
	}
	p.offsetY = y
	return nil
}

// Pixel returns the palette index at (x, y), or Transparent. Coordinates outside the
// picture are transparent.
func (p *Picture) Pixel(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return int(p.pixels[x*p.height+y])
}

// SetPixel sets the palette index at (x, y). Transparent clears the cell.
func (p *Picture) SetPixel(x, y, v int) error {
	if err := codec.CheckRange("Pixel", Transparent, 255, v); err != nil {
		return err
	}
	if err := codec.CheckRange("X", 0, p.width-1, x); err != nil {
		return err
	}
	if err := codec.CheckRange("Y", 0, p.height-1, y); err != nil {
		return err
	}
	p.pixels[x*p.height+y] = int16(v)
	return nil
}

func (p *Picture) column(x int) []int16 {
	return p.pixels[x*p.height : (x+1)*p.height]
}
