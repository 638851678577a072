package doomstruct

import (
	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct/picture"
	"github.com/stuarthighley/doomstruct/texture"
)

// PatchNames reads the PNAMES lump.
func (w *WAD) PatchNames() (*texture.PatchNames, error) {
	logger.Println("Loading patch names ...")
	r, err := w.Section("PNAMES")
	if err != nil {
		return nil, err
	}
	pnames := texture.NewPatchNames()
	if _, err := pnames.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, "PNAMES")
	}
	logger.Printf("Loaded %v patch names", pnames.Len())
	return pnames, nil
}

// TextureList reads a texture lump such as TEXTURE1 in format f.
func (w *WAD) TextureList(name string, f texture.Format) (*texture.List, error) {
	logger.Printf("Loading %v ...", name)
	r, err := w.Section(name)
	if err != nil {
		return nil, err
	}
	list := texture.NewList(f)
	if _, err := list.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, name)
	}
	logger.Printf("Loaded %v textures", list.Len())
	return list, nil
}

// Picture reads a picture lump such as a patch or sprite.
func (w *WAD) Picture(name string) (*picture.Picture, error) {
	data, err := w.Data(name)
	if err != nil {
		return nil, err
	}
	var pic picture.Picture
	if err := pic.UnmarshalBinary(data); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return &pic, nil
}
