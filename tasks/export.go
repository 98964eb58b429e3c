package tasks

import (
	"context"
	"fmt"

	"github.com/Wayner84/minecraft-schematic-studio/define"
	"github.com/Wayner84/minecraft-schematic-studio/litematic"
	"gopkg.in/yaml.v3"
)

// Export converts a build file (version 0 or 1) into a .litematic file.
type Export struct {
	Author string `yaml:"author"`
	env    *define.Env
}

func (o *Export) New(config []byte) define.Task {
	err := yaml.Unmarshal(config, o)
	if err != nil {
		panic(err)
	}
	return o
}

func (o *Export) Inject(env *define.Env) define.Task {
	o.env = env
	return o
}

func (o *Export) Run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: export <in.json> <out.litematic> [name]")
	}
	in, out := args[0], args[1]
	codec := newCodec(o.env.Config)
	if o.Author != "" {
		codec.Author = o.Author
	}
	b, err := loadBuild(in, codec)
	if err != nil {
		return err
	}
	name := b.name
	if len(args) > 2 {
		name = args[2]
	}
	if name == "" {
		name = litematic.DefaultBuildName
	}
	if err := saveLitematic(out, b.state, name, codec); err != nil {
		return err
	}
	o.env.Log.WithField("file", out).Debugf("exported %q", name)
	o.env.Progress("Export: %v -> %v (%v blocks)", in, out, b.state.Count())
	return nil
}

func (o *Export) Close() {

}
