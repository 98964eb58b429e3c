package litematic

import (
	"sort"
	"time"

	"github.com/Wayner84/minecraft-schematic-studio/bitstore"
	"github.com/Wayner84/minecraft-schematic-studio/define"
	"github.com/Wayner84/minecraft-schematic-studio/layers"
)

const (
	FormatVersion     = 6
	DataVersion       = 3837
	DefaultRegionName = "Region0"
	DefaultBuildName  = "Untitled build"
	DefaultAuthor     = "Minecraft Schematic Studio"
	DefaultDesc       = "Exported from Minecraft Schematic Studio"
)

// Codec converts between the sparse layer model and a Litematica document. The zero value is ready to use.
type Codec struct {
	// KeepProperties makes Import append block state properties to identifiers ("name[k=v]"). Off, only
	// the palette entry's Name is kept.
	KeepProperties bool
	Author         string
	Description    string
	// Now stamps TimeCreated and TimeModified; time.Now when nil.
	Now func() time.Time
}

// ImportStats describes what Import did with the voxels of the region.
type ImportStats struct {
	Region       string
	Version      int32
	DataVersion  int32
	Position     Vec3
	Size         Vec3
	PaletteSize  int
	BitsPerBlock int
	Placed       int
	// non-air voxels whose world y is outside the vertical range
	DroppedVertical int
	// non-air voxels whose translated x/z is outside the destination extent
	DroppedOutside int
}

// axis normalises one axis of a region: Litematica regions may have a negative size, in which case they
// extend from Position toward negative coordinates.
func axis(pos, size int32) (origin, extent int) {
	if size < 0 {
		return int(pos) + int(size) + 1, -int(size)
	}
	return int(pos), int(size)
}

// firstRegion picks the region to read. Only one region is supported; with several, the lexicographically
// first name wins.
func firstRegion(regions map[string]Region) (string, Region) {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0], regions[names[0]]
}

// Import reads the first region of root into a new sparse layer map. The destination extent is taken from
// the region size. Voxels whose world y falls outside the vertical range, or whose x/z lands outside the
// extent, are dropped and counted in the stats.
func (c *Codec) Import(root *Root) (*layers.State, *ImportStats, error) {
	if root == nil || len(root.Regions) == 0 {
		return nil, nil, invalidf("missing Regions")
	}
	regionName, region := firstRegion(root.Regions)
	if region.BlockStates == nil {
		return nil, nil, invalidf("region %q: BlockStates not a long array", regionName)
	}

	ox, sx := axis(region.Position.X, region.Size.X)
	oy, sy := axis(region.Position.Y, region.Size.Y)
	oz, sz := axis(region.Position.Z, region.Size.Z)

	ids := paletteIDs(region.BlockStatePalette, c.KeepProperties)
	bitsPerBlock := bitstore.BitsNeeded(len(ids))
	volume, ok := bitstore.Volume(sx, sy, sz)
	if !ok || !bitstore.Holds(len(region.BlockStates), bitsPerBlock, volume) {
		return nil, nil, invalidf("region %q: BlockStates holds %d longs, too few for %dx%dx%d at %d bits",
			regionName, len(region.BlockStates), sx, sy, sz, bitsPerBlock)
	}
	// bounded by len(BlockStates)*32, so it fits in an int
	count := int(volume)
	indices := bitstore.Unpack(bitstore.FromLongs(region.BlockStates), bitsPerBlock, count)

	stats := &ImportStats{
		Region:       regionName,
		Version:      root.Version,
		DataVersion:  root.MinecraftDataVersion,
		Position:     region.Position,
		Size:         region.Size,
		PaletteSize:  len(ids),
		BitsPerBlock: bitsPerBlock,
	}
	state := layers.New(maxInt(1, sx), maxInt(1, sz))
	for y := 0; y < sy; y++ {
		wy := y + oy
		inRange := layers.InRange(wy)
		for z := 0; z < sz; z++ {
			for x := 0; x < sx; x++ {
				pi := indices[LinearIndex(x, y, z, sx, sz)]
				if int(pi) >= len(ids) || define.IsAirID(ids[pi]) {
					continue
				}
				if !inRange {
					stats.DroppedVertical++
					continue
				}
				wx, wz := x+ox, z+oz
				if !state.InBounds(wx, wz) {
					stats.DroppedOutside++
					continue
				}
				state.Set(wx, wy, wz, ids[pi])
				stats.Placed++
			}
		}
	}
	return state, stats, nil
}

// Export writes state as a single region at the origin spanning the full vertical range.
func (c *Codec) Export(state *layers.State, name string) *Root {
	sizeX, sizeY, sizeZ := state.SizeX, layers.Height, state.SizeZ
	palette := NewPaletteBuilder()
	dense := make([]uint32, sizeX*sizeY*sizeZ)
	placed := 0
	state.Each(func(x, y, z int, id string) {
		if y < 0 || y >= sizeY || !state.InBounds(x, z) {
			return
		}
		pi := palette.Intern(id)
		if pi != 0 {
			placed++
		}
		dense[LinearIndex(x, y, z, sizeX, sizeZ)] = pi
	})
	bitsPerBlock := bitstore.BitsNeeded(palette.Len())
	longs := bitstore.ToLongs(bitstore.Pack(dense, bitsPerBlock))

	if name == "" {
		name = DefaultBuildName
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	millis := now().UnixNano() / int64(time.Millisecond)
	size := Vec3{X: int32(sizeX), Y: int32(sizeY), Z: int32(sizeZ)}
	return &Root{
		Version:              FormatVersion,
		MinecraftDataVersion: DataVersion,
		Metadata: Metadata{
			Name:          name,
			Author:        orDefault(c.Author, DefaultAuthor),
			Description:   orDefault(c.Description, DefaultDesc),
			RegionCount:   1,
			TimeCreated:   millis,
			TimeModified:  millis,
			TotalBlocks:   int32(placed),
			TotalVolume:   int32(len(dense)),
			EnclosingSize: size,
		},
		Regions: map[string]Region{
			DefaultRegionName: {
				Position:          Vec3{},
				Size:              size,
				BlockStatePalette: palette.Palette(),
				BlockStates:       longs,
			},
		},
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
