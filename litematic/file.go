package litematic

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
)

// document is the shape decoded straight off the wire. BlockStates stays raw so that an absent or
// mistyped array can be told apart from an empty one.
type document struct {
	Version              int32                     `nbt:"Version"`
	MinecraftDataVersion int32                     `nbt:"MinecraftDataVersion"`
	Metadata             Metadata                  `nbt:"Metadata"`
	Regions              map[string]documentRegion `nbt:"Regions"`
}

type documentRegion struct {
	Position          Vec3           `nbt:"Position"`
	Size              Vec3           `nbt:"Size"`
	BlockStatePalette []BlockState   `nbt:"BlockStatePalette"`
	BlockStates       nbt.RawMessage `nbt:"BlockStates"`
}

// parse validates a decoded document once, so the codec only ever sees typed values.
func (d *document) parse() (*Root, error) {
	if len(d.Regions) == 0 {
		return nil, invalidf("missing Regions")
	}
	root := &Root{
		Version:              d.Version,
		MinecraftDataVersion: d.MinecraftDataVersion,
		Metadata:             d.Metadata,
		Regions:              make(map[string]Region, len(d.Regions)),
	}
	for name, r := range d.Regions {
		if r.BlockStates.Type != nbt.TagLongArray {
			return nil, invalidf("region %q: BlockStates not a long array", name)
		}
		var longs []int64
		if err := r.BlockStates.Unmarshal(&longs); err != nil {
			return nil, invalidf("region %q: BlockStates: %v", name, err)
		}
		if longs == nil {
			longs = []int64{}
		}
		root.Regions[name] = Region{
			Position:          r.Position,
			Size:              r.Size,
			BlockStatePalette: r.BlockStatePalette,
			BlockStates:       longs,
		}
	}
	return root, nil
}

// Decode reads an uncompressed big-endian NBT document.
func Decode(r io.Reader) (*Root, error) {
	var doc document
	if _, err := nbt.NewDecoder(r).Decode(&doc); err != nil {
		return nil, invalidf("%v", err)
	}
	return doc.parse()
}

// Encode writes root as an uncompressed big-endian NBT document with an empty root name.
func Encode(w io.Writer, root *Root) error {
	return nbt.NewEncoder(w).Encode(root, "")
}

// Read reads a gzip compressed .litematic stream.
func Read(r io.Reader) (*Root, error) {
	zr, err := gzip.NewReader(bufio.NewReader(r))
	if err != nil {
		return nil, invalidf("not gzip compressed: %v", err)
	}
	defer zr.Close()
	return Decode(zr)
}

// Write writes root as a gzip compressed .litematic stream.
func Write(w io.Writer, root *Root) error {
	zw := gzip.NewWriter(w)
	if err := Encode(zw, root); err != nil {
		zw.Close()
		return fmt.Errorf("litematic: encode: %w", err)
	}
	return zw.Close()
}

func ReadFile(path string) (*Root, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	root, err := Read(fp)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return root, nil
}

func WriteFile(path string, root *Root) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fp)
	if err := Write(w, root); err != nil {
		fp.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
