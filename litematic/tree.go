package litematic

// The types below mirror the Litematica document. Field names are the wire contract.

// Vec3 is an integer triple stored as a compound of x, y and z ints.
type Vec3 struct {
	X int32 `nbt:"x"`
	Y int32 `nbt:"y"`
	Z int32 `nbt:"z"`
}

func (v Vec3) Volume() int {
	return int(v.X) * int(v.Y) * int(v.Z)
}

// BlockState is one palette entry.
type BlockState struct {
	Name       string            `nbt:"Name"`
	Properties map[string]string `nbt:"Properties,omitempty"`
}

type Region struct {
	Position          Vec3         `nbt:"Position"`
	Size              Vec3         `nbt:"Size"`
	BlockStatePalette []BlockState `nbt:"BlockStatePalette"`
	// BlockStates is nil only when the document did not carry a long array.
	BlockStates []int64 `nbt:"BlockStates"`
}

type Metadata struct {
	Name          string `nbt:"Name"`
	Author        string `nbt:"Author"`
	Description   string `nbt:"Description"`
	RegionCount   int32  `nbt:"RegionCount"`
	TimeCreated   int64  `nbt:"TimeCreated"`
	TimeModified  int64  `nbt:"TimeModified"`
	TotalBlocks   int32  `nbt:"TotalBlocks"`
	TotalVolume   int32  `nbt:"TotalVolume"`
	EnclosingSize Vec3   `nbt:"EnclosingSize"`
}

// Root is the whole document.
type Root struct {
	Version              int32             `nbt:"Version"`
	MinecraftDataVersion int32             `nbt:"MinecraftDataVersion"`
	Metadata             Metadata          `nbt:"Metadata"`
	Regions              map[string]Region `nbt:"Regions"`
}
