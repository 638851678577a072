// Package doomstruct reads WAD archives, the data files of Doom-engine games, and decodes
// their lumps with the structure codecs in its subpackages.
//
// The file format is documented in The Unofficial DOOM Specs:
// http://www.gamers.org/dhs/helpdocs/dmsp1666.html
package doomstruct

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/stuarthighley/doomstruct/codec"
)

const (
	IWAD = "IWAD"
	PWAD = "PWAD"
)

const headerLength = 12

// ErrNotFound is returned when an archive has no entry by the requested name.
var ErrNotFound = errors.New("entry not found")

// WAD is an open archive. Lumps are read on demand through the directory; nothing but the
// directory is held in memory.
type WAD struct {
	header   Header
	r        io.ReaderAt
	closer   io.Closer
	entries  []Entry
	entryNum map[string]int
	levels   map[string]int
}

type binHeader struct {
	Magic        [4]byte
	NumLumps     int32
	InfoTableOfs int32
}

// Header describes the archive.
type Header struct {
	Type            string // IWAD or PWAD
	NumEntries      int
	DirectoryOffset int
}

// Open opens the named WAD file. Close releases it.
func Open(filename string) (*WAD, error) {
	logger.Printf("Opening %s", filename)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	w, err := New(file)
	if err != nil {
		file.Close()
		return nil, errors.Wrap(err, filename)
	}
	w.closer = file
	return w, nil
}

// New reads the header and directory of the archive in r.
func New(r io.ReaderAt) (*WAD, error) {
	var hdr [headerLength]byte
	if err := readAt(r, hdr[:], 0); err != nil {
		return nil, codec.Decoding("wad header", err)
	}
	var bin binHeader
	binary.Read(bytes.NewReader(hdr[:]), binary.LittleEndian, &bin)
	magic := string(bin.Magic[:])
	if magic != IWAD && magic != PWAD {
		return nil, codec.Malformed("wad header", "bad magic %q", magic)
	}
	if bin.NumLumps < 0 || bin.InfoTableOfs < 0 {
		return nil, codec.Malformed("wad header", "%d entries at %d", bin.NumLumps, bin.InfoTableOfs)
	}
	w := &WAD{
		header: Header{magic, int(bin.NumLumps), int(bin.InfoTableOfs)},
		r:      r,
	}
	if err := w.readDirectory(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *WAD) readDirectory() error {
	dir := io.NewSectionReader(w.r, int64(w.header.DirectoryOffset), int64(w.header.NumEntries)*EntryLength)
	entries, err := codec.ReadRecords[Entry](dir, w.header.NumEntries)
	if err != nil {
		return errors.Wrap(err, "directory")
	}

	entryNum := make(map[string]int, len(entries))
	levels := map[string]int{}
	for i, e := range entries {
		// Later entries replace earlier ones of the same name, as they do in the engine.
		entryNum[codec.UpperName(e.Name)] = i
		if i > 0 && (e.Name == "THINGS" || e.Name == "TEXTMAP") {
			levels[codec.UpperName(entries[i-1].Name)] = i - 1
		}
	}
	w.entries = entries
	w.entryNum = entryNum
	w.levels = levels
	logger.Printf("Read %d directory entries, %d levels", len(entries), len(levels))
	return nil
}

// Close closes the underlying file if the archive was opened with Open.
func (w *WAD) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

func (w *WAD) Header() Header { return w.header }

// Entries returns a copy of the directory in archive order.
func (w *WAD) Entries() []Entry {
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

// Entry returns the last directory entry called name. The lookup is case-insensitive.
func (w *WAD) Entry(name string) (Entry, bool) {
	i, ok := w.entryNum[codec.UpperName(name)]
	if !ok {
		return Entry{}, false
	}
	return w.entries[i], true
}

// Section returns a reader over the lump called name.
func (w *WAD) Section(name string) (*io.SectionReader, error) {
	e, ok := w.Entry(name)
	if !ok {
		return nil, errors.Wrap(ErrNotFound, name)
	}
	return w.section(e), nil
}

func (w *WAD) section(e Entry) *io.SectionReader {
	return io.NewSectionReader(w.r, int64(e.Offset), int64(e.Size))
}

// Data reads the whole lump called name.
func (w *WAD) Data(name string) ([]byte, error) {
	e, ok := w.Entry(name)
	if !ok {
		return nil, errors.Wrap(ErrNotFound, name)
	}
	return w.readLump(e)
}

// Read entire lump. The buffer grows as data arrives, so a directory size past the end of
// the archive fails without reserving it.
func (w *WAD) readLump(e Entry) ([]byte, error) {
	lump, err := io.ReadAll(w.section(e))
	if err == nil && len(lump) < e.Size {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, errors.Wrapf(err, "lump %s", e.Name)
	}
	return lump, nil
}

// readAt fills buf from offset off. A short read is io.ErrUnexpectedEOF.
func readAt(r io.ReaderAt, buf []byte, off int64) error {
	n, err := r.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}
	if err == nil || err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// LevelNames returns the names of the level markers in the archive, sorted.
func (w *WAD) LevelNames() []string {
	result := make([]string, 0, len(w.levels))
	for name := range w.levels {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
