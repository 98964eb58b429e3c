package tasks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Wayner84/minecraft-schematic-studio/define"
	"github.com/Wayner84/minecraft-schematic-studio/library"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Library manages the saved builds database: save, list, load and delete.
type Library struct {
	// overrides library.path when set
	Path string `yaml:"path"`
	env  *define.Env
	lib  *library.Library
}

func (o *Library) New(config []byte) define.Task {
	err := yaml.Unmarshal(config, o)
	if err != nil {
		panic(err)
	}
	return o
}

func (o *Library) Inject(env *define.Env) define.Task {
	o.env = env
	if o.Path == "" && env.Config != nil {
		o.Path = env.Config.Library.Path
	}
	return o
}

const libraryUsage = "usage: library save <file> [name] | list | load <id> <out> | delete <id>"

func (o *Library) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(libraryUsage)
	}
	if o.lib == nil {
		lib, err := library.Open(o.Path)
		if err != nil {
			return err
		}
		o.lib = lib
	}
	switch args[0] {
	case "save":
		return o.save(ctx, args[1:])
	case "list":
		return o.list(ctx)
	case "load":
		return o.load(ctx, args[1:])
	case "delete":
		return o.delete(ctx, args[1:])
	}
	return fmt.Errorf("library: unknown command %q (%v)", args[0], libraryUsage)
}

func (o *Library) save(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(libraryUsage)
	}
	b, err := loadBuild(args[0], newCodec(o.env.Config))
	if err != nil {
		return err
	}
	logImport(o.env.Log, args[0], b.stats)
	name := b.name
	if len(args) > 1 {
		name = args[1]
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	id, err := o.lib.Save(ctx, name, b.state)
	if err != nil {
		return err
	}
	o.env.Progress("Library: saved %q as %v", name, id)
	return nil
}

func (o *Library) list(ctx context.Context) error {
	entries, err := o.lib.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		o.env.Progress("%v  %-24s %4dx%-4d %8d blocks  %v", e.ID, e.Name, e.SizeX, e.SizeZ, e.Blocks,
			e.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (o *Library) load(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(libraryUsage)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("library: bad id %q: %w", args[0], err)
	}
	entry, state, err := o.lib.Load(ctx, id)
	if err != nil {
		return err
	}
	out := args[1]
	if strings.EqualFold(filepath.Ext(out), extLitematic) {
		err = saveLitematic(out, state, entry.Name, newCodec(o.env.Config))
	} else {
		err = saveJSON(out, state, entry.Name)
	}
	if err != nil {
		return err
	}
	o.env.Progress("Library: %q -> %v", entry.Name, out)
	return nil
}

func (o *Library) delete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(libraryUsage)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("library: bad id %q: %w", args[0], err)
	}
	if err := o.lib.Delete(ctx, id); err != nil {
		return err
	}
	o.env.Progress("Library: deleted %v", id)
	return nil
}

func (o *Library) Close() {
	if o.lib != nil {
		o.lib.Close()
		o.lib = nil
	}
}
