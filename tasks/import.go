package tasks

import (
	"context"
	"fmt"

	"github.com/Wayner84/minecraft-schematic-studio/define"
	"gopkg.in/yaml.v3"
)

// Import converts a .litematic file into a version 1 build file.
type Import struct {
	// overrides litematic.keep_properties when set
	KeepProperties *bool `yaml:"keep_properties"`
	env            *define.Env
}

func (o *Import) New(config []byte) define.Task {
	err := yaml.Unmarshal(config, o)
	if err != nil {
		panic(err)
	}
	return o
}

func (o *Import) Inject(env *define.Env) define.Task {
	o.env = env
	return o
}

func (o *Import) Run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: import <in.litematic> <out.json>")
	}
	in, out := args[0], args[1]
	codec := newCodec(o.env.Config)
	if o.KeepProperties != nil {
		codec.KeepProperties = *o.KeepProperties
	}
	b, err := loadBuild(in, codec)
	if err != nil {
		return err
	}
	logImport(o.env.Log, in, b.stats)
	if err := saveJSON(out, b.state, b.name); err != nil {
		return err
	}
	o.env.Progress("Import: %v -> %v (%v blocks)", in, out, b.state.Count())
	return nil
}

func (o *Import) Close() {

}
