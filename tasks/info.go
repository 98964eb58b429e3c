package tasks

import (
	"context"
	"fmt"
	"sort"

	"github.com/Wayner84/minecraft-schematic-studio/catalog"
	"github.com/Wayner84/minecraft-schematic-studio/define"
	"github.com/Wayner84/minecraft-schematic-studio/world"
	"gopkg.in/yaml.v3"
)

// Info prints the extent, the block histogram and the chunk footprint of a build.
type Info struct {
	// number of histogram lines, 0 for all
	Top int `yaml:"top"`
	env *define.Env
}

func (o *Info) New(config []byte) define.Task {
	err := yaml.Unmarshal(config, o)
	if err != nil {
		panic(err)
	}
	return o
}

func (o *Info) Inject(env *define.Env) define.Task {
	o.env = env
	return o
}

type blockCount struct {
	id    string
	count int
}

func (o *Info) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: info <file>")
	}
	b, err := loadBuild(args[0], newCodec(o.env.Config))
	if err != nil {
		return err
	}
	logImport(o.env.Log, args[0], b.stats)
	state := b.state
	ys := state.Ys()
	o.env.Progress("Name: %v", b.name)
	o.env.Progress("Extent: %v x %v", state.SizeX, state.SizeZ)
	if len(ys) > 0 {
		o.env.Progress("Layers: %v (y %v..%v)", len(ys), ys[0], ys[len(ys)-1])
	}

	counts := make([]blockCount, 0)
	for id, n := range state.Histogram() {
		counts = append(counts, blockCount{id: id, count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].id < counts[j].id
	})
	if o.Top > 0 && len(counts) > o.Top {
		counts = counts[:o.Top]
	}
	o.env.Progress("Blocks: %v", state.Count())
	for _, c := range counts {
		o.env.Progress("  %8d  %-20s %v", c.count, catalog.Lookup(c.id).Name, c.id)
	}

	w := world.FromLayers(state)
	if min, max, ok := w.Bounds(); ok {
		ext := world.Extent(min, max)
		o.env.Progress("Bounds: %v..%v (%vx%vx%v, %v cells)", min, max, ext.X(), ext.Y(), ext.Z(), ext.Volume())
	}
	st := w.Stats()
	o.env.Progress("Chunks: %v, sections: %v (%v dense), palette: %v", st.Chunks, st.Sections, st.DenseSections, st.PaletteSize)
	return nil
}

func (o *Info) Close() {

}
