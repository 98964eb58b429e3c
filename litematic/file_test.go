package litematic

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Tnze/go-mc/nbt"
	"github.com/Wayner84/minecraft-schematic-studio/layers"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	s := layers.New(6, 5)
	s.Set(2, 5, 3, "minecraft:stone")
	s.Set(5, 319, 4, "minecraft:glass")
	s.Set(0, 0, 0, "minecraft:oak_log[axis=x]")

	c := &Codec{KeepProperties: true, Now: func() time.Time { return time.Unix(1700000000, 0) }}
	root := c.Export(s, "file")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, root))

	back, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, root.Version, back.Version)
	assert.Equal(t, root.MinecraftDataVersion, back.MinecraftDataVersion)
	assert.Equal(t, root.Metadata, back.Metadata)
	require.Contains(t, back.Regions, DefaultRegionName)
	assert.Equal(t, root.Regions[DefaultRegionName].BlockStates, back.Regions[DefaultRegionName].BlockStates)
	assert.Equal(t, root.Regions[DefaultRegionName].BlockStatePalette, back.Regions[DefaultRegionName].BlockStatePalette)

	got, _, err := c.Import(back)
	require.NoError(t, err)
	assert.Equal(t, s.Layers, got.Layers)
}

func TestWriteReadFile(t *testing.T) {
	s := layers.New(3, 3)
	s.Set(1, 1, 1, "minecraft:sand")
	path := filepath.Join(t.TempDir(), "sand.litematic")
	require.NoError(t, WriteFile(path, (&Codec{}).Export(s, "sand")))

	root, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sand", root.Metadata.Name)
}

func gzipNBT(t *testing.T, v interface{}) *bytes.Buffer {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	require.NoError(t, nbt.NewEncoder(zw).Encode(v, ""))
	require.NoError(t, zw.Close())
	return &buf
}

func TestReadMissingRegions(t *testing.T) {
	buf := gzipNBT(t, map[string]interface{}{"Version": int32(6)})
	_, err := Read(buf)
	assert.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)
}

func TestReadBlockStatesWrongType(t *testing.T) {
	doc := map[string]interface{}{
		"Regions": map[string]interface{}{
			"r": map[string]interface{}{
				"Size":        map[string]interface{}{"x": int32(1), "y": int32(1), "z": int32(1)},
				"BlockStates": []int32{0, 0},
			},
		},
	}
	_, err := Read(gzipNBT(t, doc))
	assert.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)
}

func TestReadBlockStatesMissing(t *testing.T) {
	doc := map[string]interface{}{
		"Regions": map[string]interface{}{
			"r": map[string]interface{}{
				"Size": map[string]interface{}{"x": int32(1), "y": int32(1), "z": int32(1)},
			},
		},
	}
	_, err := Read(gzipNBT(t, doc))
	assert.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)
}

func TestReadMissingAxesDefaultToZero(t *testing.T) {
	doc := map[string]interface{}{
		"Regions": map[string]interface{}{
			"r": map[string]interface{}{
				"Size":        map[string]interface{}{"x": int32(2)},
				"BlockStates": []int64{},
			},
		},
	}
	root, err := Read(gzipNBT(t, doc))
	require.NoError(t, err)
	assert.Equal(t, Vec3{X: 2}, root.Regions["r"].Size)

	got, stats, err := (&Codec{}).Import(root)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Count())
	assert.Equal(t, 2, got.SizeX)
	assert.Equal(t, 1, got.SizeZ)
	assert.Equal(t, 0, stats.PaletteSize)
}

func TestReadNotGzip(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("definitely not gzip")))
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}
