// Package buildfile is the flat JSON save format of the editor. Version 0 lists every block with its
// coordinates and identifier; version 1 indexes blocks into a palette.
package buildfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Wayner84/minecraft-schematic-studio/define"
	"github.com/Wayner84/minecraft-schematic-studio/layers"
	"github.com/muhammadmuzzammil1998/jsonc"
)

const (
	DefaultSize      = 128
	DefaultHeightMax = layers.MaxY
)

var (
	ErrInvalidFile        = errors.New("invalid build file")
	ErrUnsupportedVersion = errors.New("unsupported build file version")
)

type Size struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

type PlacedBlock struct {
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Z     int                    `json:"z"`
	ID    string                 `json:"id"`
	Props map[string]interface{} `json:"props,omitempty"`
}

type FileV0 struct {
	Version int           `json:"version"`
	Name    string        `json:"name"`
	Size    Size          `json:"size"`
	Blocks  []PlacedBlock `json:"blocks"`
}

type FileV1 struct {
	Version   int      `json:"version"`
	Name      string   `json:"name"`
	CreatedAt string   `json:"createdAt"`
	Size      Size     `json:"size"`
	Palette   []string `json:"palette"`
	Blocks    [][4]int `json:"blocks"`
}

// FileSize is the size of a decoded file. Each axis is a pointer so that an absent axis can be told apart
// from a zero one.
type FileSize struct {
	X *int `json:"x"`
	Y *int `json:"y"`
	Z *int `json:"z"`
}

// File is a decoded build file of either version.
type File struct {
	Version   *int            `json:"version"`
	Name      string          `json:"name"`
	CreatedAt string          `json:"createdAt,omitempty"`
	Size      *FileSize       `json:"size"`
	Palette   []string        `json:"palette,omitempty"`
	Blocks    json.RawMessage `json:"blocks"`
}

// ExportV0 lists every cell of the layers in [0, heightMax].
func ExportV0(state *layers.State, name string, heightMax int) *FileV0 {
	blocks := make([]PlacedBlock, 0, state.Count())
	state.Each(func(x, y, z int, id string) {
		if y < 0 || y > heightMax {
			return
		}
		blocks = append(blocks, PlacedBlock{X: x, Y: y, Z: z, ID: id})
	})
	return &FileV0{
		Version: 0,
		Name:    name,
		Size:    Size{X: state.SizeX, Y: heightMax + 1, Z: state.SizeZ},
		Blocks:  blocks,
	}
}

// ExportV1 writes the layers in [0, heightMax] as palette indexed tuples.
func ExportV1(state *layers.State, name string, heightMax int, now time.Time) *FileV1 {
	palette := make([]string, 0)
	palIndex := make(map[string]int)
	blocks := make([][4]int, 0, state.Count())
	state.Each(func(x, y, z int, id string) {
		if y < 0 || y > heightMax {
			return
		}
		i, ok := palIndex[id]
		if !ok {
			i = len(palette)
			palette = append(palette, id)
			palIndex[id] = i
		}
		blocks = append(blocks, [4]int{x, y, z, i})
	})
	return &FileV1{
		Version:   1,
		Name:      name,
		CreatedAt: now.UTC().Format(time.RFC3339Nano),
		Size:      Size{X: state.SizeX, Y: heightMax + 1, Z: state.SizeZ},
		Palette:   palette,
		Blocks:    blocks,
	}
}

// Import converts a decoded file into layers. Y is clamped into the vertical range; cells outside the
// X/Z extent and air are skipped.
func Import(f *File) (*layers.State, error) {
	if f == nil || f.Version == nil {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidFile)
	}
	sizeX, sizeZ := DefaultSize, DefaultSize
	if f.Size != nil {
		sizeX, sizeZ = orSize(f.Size.X), orSize(f.Size.Z)
	}
	state := layers.New(sizeX, sizeZ)
	place := func(x, y, z int, id string) {
		y = layers.ClampY(y)
		if !state.InBounds(x, z) || define.IsAirID(id) {
			return
		}
		state.Set(x, y, z, id)
	}

	switch *f.Version {
	case 1:
		var blocks [][]int
		if len(f.Blocks) > 0 {
			if err := json.Unmarshal(f.Blocks, &blocks); err != nil {
				return nil, fmt.Errorf("%w: blocks: %v", ErrInvalidFile, err)
			}
		}
		for _, b := range blocks {
			if len(b) < 4 {
				continue
			}
			id := define.AirBlockName
			if b[3] >= 0 && b[3] < len(f.Palette) {
				id = f.Palette[b[3]]
			}
			place(b[0], b[1], b[2], id)
		}
	case 0:
		var blocks []PlacedBlock
		if len(f.Blocks) > 0 {
			if err := json.Unmarshal(f.Blocks, &blocks); err != nil {
				return nil, fmt.Errorf("%w: blocks: %v", ErrInvalidFile, err)
			}
		}
		for _, b := range blocks {
			place(b.X, b.Y, b.Z, b.ID)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, *f.Version)
	}
	return state, nil
}

func orSize(axis *int) int {
	if axis == nil {
		return DefaultSize
	}
	return *axis
}

// Read decodes a build file. Comments are tolerated.
func Read(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f := &File{}
	if err := jsonc.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return f, nil
}

// Write encodes v as indented JSON.
func Write(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
