// Package catalog holds the starter block palette offered by the editor: display names, categories and a
// colour hint per block.
package catalog

import (
	"math"
	"strings"

	"github.com/Wayner84/minecraft-schematic-studio/define"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Category string

const (
	Terrain Category = "terrain"
	Wood    Category = "wood"
	Stone   Category = "stone"
	Glass   Category = "glass"
	Wool    Category = "wool"
	Misc    Category = "misc"
)

const DefaultBlockID = "minecraft:stone"

type Block struct {
	ID       string
	Name     string
	Category Category
	Color    colorful.Color
}

func block(id, name string, category Category, hex string) Block {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return Block{ID: id, Name: name, Category: category, Color: c}
}

var Blocks = []Block{
	block(define.AirBlockName, "Air", Misc, "#0b0f14"),

	block("minecraft:grass_block", "Grass Block", Terrain, "#4a7c3a"),
	block("minecraft:dirt", "Dirt", Terrain, "#6b4f2a"),
	block("minecraft:sand", "Sand", Terrain, "#d7cf8a"),

	block("minecraft:stone", "Stone", Stone, "#8b8b8b"),
	block("minecraft:cobblestone", "Cobblestone", Stone, "#7a7a7a"),
	block("minecraft:deepslate", "Deepslate", Stone, "#3e3e3e"),

	block("minecraft:oak_planks", "Oak Planks", Wood, "#b38b52"),
	block("minecraft:oak_log", "Oak Log", Wood, "#7f5a34"),

	block("minecraft:glass", "Glass", Glass, "#bfe7ff"),

	block("minecraft:white_wool", "White Wool", Wool, "#eeeeee"),
	block("minecraft:red_wool", "Red Wool", Wool, "#c43a3a"),
	block("minecraft:blue_wool", "Blue Wool", Wool, "#2f5fbf"),
	block("minecraft:black_wool", "Black Wool", Wool, "#1f1f1f"),
}

var byID map[string]*Block

func init() {
	byID = make(map[string]*Block, len(Blocks))
	for i := range Blocks {
		byID[Blocks[i].ID] = &Blocks[i]
	}
}

var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Lookup returns the catalog entry for id. Block state properties are ignored. Unknown identifiers get a
// Misc entry whose name is derived from the identifier path, "minecraft:red_sandstone" -> "Red Sandstone".
func Lookup(id string) Block {
	name := define.ParseBlockDescribe(id).Name
	if b, ok := byID[name]; ok {
		return *b
	}
	return Block{ID: name, Name: DisplayName(name), Category: Misc, Color: fallbackColor}
}

func Known(id string) bool {
	_, ok := byID[define.ParseBlockDescribe(id).Name]
	return ok
}

func DisplayName(id string) string {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		id = id[i+1:]
	}
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

// Nearest returns the non-air catalog block whose colour hint is closest to c in CIE L*a*b* space.
func Nearest(c colorful.Color) Block {
	best, bestDist := -1, math.MaxFloat64
	for i, b := range Blocks {
		if b.ID == define.AirBlockName {
			continue
		}
		if d := c.DistanceLab(b.Color); d < bestDist {
			best, bestDist = i, d
		}
	}
	return Blocks[best]
}

func ByCategory(category Category) []Block {
	ret := make([]Block, 0)
	for _, b := range Blocks {
		if b.Category == category {
			ret = append(ret, b)
		}
	}
	return ret
}
