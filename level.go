package doomstruct

import (
	"io"

	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct/codec"
	"github.com/stuarthighley/doomstruct/mapdata"
)

// Level holds the records of one binary-format map.
type Level struct {
	Name     string
	Format   mapdata.Format
	Things   []mapdata.Thing
	Linedefs []mapdata.Linedef
	Sidedefs []mapdata.Sidedef
	Vertices []mapdata.Vertex
	Sectors  []mapdata.Sector
}

// levelLumps are the lump names that may follow a level marker.
var levelLumps = map[string]bool{
	"THINGS":   true,
	"LINEDEFS": true,
	"SIDEDEFS": true,
	"VERTEXES": true,
	"SEGS":     true,
	"SSECTORS": true,
	"NODES":    true,
	"SECTORS":  true,
	"REJECT":   true,
	"BLOCKMAP": true,
	"BEHAVIOR": true,
	"SCRIPTS":  true,
	"TEXTMAP":  true,
	"ZNODES":   true,
	"DIALOGUE": true,
	"ENDMAP":   true,
}

// levelEntries returns the entries that belong to the level called name, keyed by lump name.
func (w *WAD) levelEntries(name string) (map[string]Entry, error) {
	marker, ok := w.levels[codec.UpperName(name)]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "level %s", name)
	}
	lumps := map[string]Entry{}
	for _, e := range w.entries[marker+1:] {
		if !levelLumps[e.Name] {
			break
		}
		if _, dup := lumps[e.Name]; dup {
			break // next level without a marker
		}
		lumps[e.Name] = e
		if e.Name == "ENDMAP" {
			break
		}
	}
	return lumps, nil
}

// LevelFormat reports the map format of the level called name: UDMF if it has a TEXTMAP,
// Hexen if it has a BEHAVIOR lump, otherwise Doom. Strife maps cannot be told apart from
// Doom maps by their lumps.
func (w *WAD) LevelFormat(name string) (mapdata.Format, error) {
	lumps, err := w.levelEntries(name)
	if err != nil {
		return 0, err
	}
	switch {
	case hasEntry(lumps, "TEXTMAP"):
		return mapdata.UDMF, nil
	case hasEntry(lumps, "BEHAVIOR"):
		return mapdata.Hexen, nil
	}
	return mapdata.Doom, nil
}

func hasEntry(lumps map[string]Entry, name string) bool {
	_, ok := lumps[name]
	return ok
}

// ReadLevel reads the things, linedefs, sidedefs, vertices and sectors of the level called
// name, decoding things and linedefs in format f.
func (w *WAD) ReadLevel(name string, f mapdata.Format) (*Level, error) {
	logger.Printf("Reading Level %v as %v ...", name, f)
	if _, err := mapdata.ThingLength(f); err != nil {
		return nil, errors.Wrapf(err, "level %s", name)
	}
	lumps, err := w.levelEntries(name)
	if err != nil {
		return nil, err
	}

	level := &Level{Name: codec.UpperName(name), Format: f}
	thingLength, _ := mapdata.ThingLength(f)
	linedefLength, _ := mapdata.LinedefLength(f)

	if level.Things, err = readLump(w, lumps, "THINGS", thingLength, func(r io.Reader, n int) ([]mapdata.Thing, error) {
		return mapdata.ReadThings(r, f, n)
	}); err != nil {
		return nil, err
	}
	if level.Linedefs, err = readLump(w, lumps, "LINEDEFS", linedefLength, func(r io.Reader, n int) ([]mapdata.Linedef, error) {
		return mapdata.ReadLinedefs(r, f, n)
	}); err != nil {
		return nil, err
	}
	if level.Sidedefs, err = readLump(w, lumps, "SIDEDEFS", mapdata.SidedefLength, mapdata.ReadSidedefs); err != nil {
		return nil, err
	}
	if level.Vertices, err = readLump(w, lumps, "VERTEXES", mapdata.VertexLength, mapdata.ReadVertices); err != nil {
		return nil, err
	}
	if level.Sectors, err = readLump(w, lumps, "SECTORS", mapdata.SectorLength, mapdata.ReadSectors); err != nil {
		return nil, err
	}

	logger.Printf("Read %v things, %v linedefs, %v sidedefs, %v vertices, %v sectors",
		len(level.Things), len(level.Linedefs), len(level.Sidedefs), len(level.Vertices), len(level.Sectors))
	return level, nil
}

// readLump streams the records of one level lump through read. A missing lump yields no
// records; trailing bytes that do not make a whole record are ignored.
func readLump[T any](w *WAD, lumps map[string]Entry, name string, size int, read func(io.Reader, int) ([]T, error)) ([]T, error) {
	e, ok := lumps[name]
	if !ok {
		logger.Printf("Level has no %s lump", name)
		return nil, nil
	}
	count := e.Size / size
	if e.Size%size != 0 {
		logger.Printf("%s: ignoring %d trailing bytes", name, e.Size%size)
	}
	records, err := read(w.section(e), count)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return records, nil
}
