// Command wadinfo lists the contents of a WAD archive and can dump its levels, textures and
// patch pictures.
//
//	wadinfo -wad DOOM1.WAD
//	wadinfo -wad DOOM1.WAD -level E1M1
//	wadinfo -wad DOOM1.WAD -textures
//	wadinfo -wad DOOM1.WAD -png out
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct"
	"github.com/stuarthighley/doomstruct/mapdata"
	"github.com/stuarthighley/doomstruct/texture"
)

type options struct {
	wad      string
	level    string
	format   string
	textures bool
	pngDir   string
	verbose  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.wad, "wad", "", "WAD file to read")
	flag.StringVar(&opts.level, "level", "", "dump the records of this level")
	flag.StringVar(&opts.format, "format", "auto", "map format: auto, doom, hexen or strife")
	flag.BoolVar(&opts.textures, "textures", false, "list patch names and textures")
	flag.StringVar(&opts.pngDir, "png", "", "write every patch in PNAMES as a PNG into this directory")
	flag.BoolVar(&opts.verbose, "v", false, "log progress")
	flag.Parse()

	if opts.wad == "" {
		flag.Usage()
		os.Exit(2)
	}
	if opts.verbose {
		doomstruct.SetLogger(log.New(os.Stderr, "", log.LstdFlags))
	}
	if err := run(os.Stdout, opts); err != nil {
		log.Fatalln(err)
	}
}

func run(out io.Writer, opts options) error {
	w, err := doomstruct.Open(opts.wad)
	if err != nil {
		return err
	}
	defer w.Close()

	switch {
	case opts.level != "":
		return dumpLevel(out, w, opts.level, opts.format)
	case opts.textures:
		return listTextures(out, w)
	case opts.pngDir != "":
		return exportPatches(w, opts.pngDir)
	}
	return listEntries(out, w)
}

func listEntries(out io.Writer, w *doomstruct.WAD) error {
	h := w.Header()
	fmt.Fprintf(out, "%s: %d entries\n", h.Type, h.NumEntries)
	for i, e := range w.Entries() {
		fmt.Fprintf(out, "%5d %-8s %10d %8d\n", i, e.Name, e.Offset, e.Size)
	}
	for _, name := range w.LevelNames() {
		f, err := w.LevelFormat(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Level: %s (%v)\n", name, f)
	}
	return nil
}

func parseFormat(s string) (mapdata.Format, bool, error) {
	switch strings.ToLower(s) {
	case "auto":
		return 0, true, nil
	case "doom":
		return mapdata.Doom, false, nil
	case "hexen":
		return mapdata.Hexen, false, nil
	case "strife":
		return mapdata.Strife, false, nil
	}
	return 0, false, errors.Errorf("unknown map format %q", s)
}

func dumpLevel(out io.Writer, w *doomstruct.WAD, name, format string) error {
	f, auto, err := parseFormat(format)
	if err != nil {
		return err
	}
	if auto {
		if f, err = w.LevelFormat(name); err != nil {
			return err
		}
	}
	level, err := w.ReadLevel(name, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%v): %d things, %d linedefs, %d sidedefs, %d vertices, %d sectors\n",
		level.Name, level.Format, len(level.Things), len(level.Linedefs), len(level.Sidedefs),
		len(level.Vertices), len(level.Sectors))
	for _, t := range level.Things {
		fmt.Fprintln(out, t)
	}
	for _, l := range level.Linedefs {
		fmt.Fprintln(out, l)
	}
	for i := range level.Sidedefs {
		fmt.Fprintln(out, &level.Sidedefs[i])
	}
	for i := range level.Sectors {
		fmt.Fprintln(out, &level.Sectors[i])
	}
	return nil
}

func listTextures(out io.Writer, w *doomstruct.WAD) error {
	pnames, err := w.PatchNames()
	if err != nil {
		return err
	}
	for i, name := range pnames.All() {
		fmt.Fprintln(out, "Patch:", i, name)
	}
	for _, lump := range []string{"TEXTURE1", "TEXTURE2"} {
		if _, ok := w.Entry(lump); !ok {
			continue
		}
		list, err := w.TextureList(lump, texture.Doom)
		if err != nil {
			return err
		}
		for i, t := range list.All() {
			fmt.Fprintf(out, "Texture: %d %s %dx%d patches %d\n", i, t.Name(), t.Width(), t.Height(), t.PatchCount())
		}
	}
	return nil
}

func exportPatches(w *doomstruct.WAD, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	pals, err := w.Palettes()
	if err != nil {
		return err
	}
	pnames, err := w.PatchNames()
	if err != nil {
		return err
	}
	for _, name := range pnames.All() {
		pic, err := w.Picture(name)
		if err != nil {
			log.Printf("Err: %v", err)
			continue
		}
		if err := writePNG(filepath.Join(dir, name+".png"), pals[0].Image(pic)); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrap(err, path)
	}
	return f.Close()
}
