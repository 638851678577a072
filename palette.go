package doomstruct

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"

	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct/picture"
)

type RGB struct {
	Red, Green, Blue uint8
}

// PLAYPAL lump. A set of color palettes used to set the main graphics colors. The Doom engine can
// only display 256 simultaneous colors, so it performs palette swaps to achieve these effects.
type Palettes [14]Palette

// Each palette in PLAYPAL contains 256 three-ubyte colors totaling 768 bytes (RGB).
type Palette [256]RGB

// Palettes reads the PLAYPAL lump. Only the first palette is required; missing ones are
// left black.
func (w *WAD) Palettes() (*Palettes, error) {
	logger.Println("Loading PLAYPAL ...")
	data, err := w.Data("PLAYPAL")
	if err != nil {
		return nil, err
	}
	if len(data) < binary.Size(Palette{}) {
		return nil, errors.Errorf("PLAYPAL: %d bytes is less than one palette", len(data))
	}
	count := min(len(data)/binary.Size(Palette{}), len(Palettes{}))
	var playpal Palettes
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, playpal[:count]); err != nil {
		return nil, errors.Wrap(err, "PLAYPAL")
	}
	return &playpal, nil
}

// Image renders pic in the colors of p. Transparent pixels have zero alpha.
func (p *Palette) Image(pic *picture.Picture) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, pic.Width(), pic.Height()))
	for x := range pic.Width() {
		for y := range pic.Height() {
			v := pic.Pixel(x, y)
			if v == picture.Transparent {
				continue
			}
			c := p[v]
			img.SetNRGBA(x, y, color.NRGBA{c.Red, c.Green, c.Blue, 0xff})
		}
	}
	return img
}
