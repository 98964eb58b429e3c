package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Wayner84/minecraft-schematic-studio/buildfile"
	"github.com/Wayner84/minecraft-schematic-studio/config"
	"github.com/Wayner84/minecraft-schematic-studio/layers"
	"github.com/Wayner84/minecraft-schematic-studio/litematic"
	"github.com/sirupsen/logrus"
)

const (
	extLitematic = ".litematic"
	extJSON      = ".json"
)

func newCodec(cfg *config.StudioConfig) *litematic.Codec {
	if cfg == nil {
		return &litematic.Codec{}
	}
	return &litematic.Codec{
		KeepProperties: cfg.Litematic.KeepProperties,
		Author:         cfg.Litematic.Author,
		Description:    cfg.Litematic.Description,
	}
}

// loaded is a build read from disk in either format.
type loaded struct {
	name  string
	state *layers.State
	stats *litematic.ImportStats
}

func loadBuild(path string, codec *litematic.Codec) (*loaded, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case extLitematic:
		root, err := litematic.ReadFile(path)
		if err != nil {
			return nil, err
		}
		state, stats, err := codec.Import(root)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", path, err)
		}
		return &loaded{name: root.Metadata.Name, state: state, stats: stats}, nil
	case extJSON:
		fp, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		f, err := buildfile.Read(fp)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", path, err)
		}
		state, err := buildfile.Import(f)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", path, err)
		}
		return &loaded{name: f.Name, state: state}, nil
	default:
		return nil, fmt.Errorf("%v: unknown file type %q", path, filepath.Ext(path))
	}
}

func saveJSON(path string, state *layers.State, name string) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := buildfile.Write(fp, buildfile.ExportV1(state, name, buildfile.DefaultHeightMax, time.Now())); err != nil {
		fp.Close()
		return fmt.Errorf("%v: %w", path, err)
	}
	return fp.Close()
}

func saveLitematic(path string, state *layers.State, name string, codec *litematic.Codec) error {
	return litematic.WriteFile(path, codec.Export(state, name))
}

func logImport(log *logrus.Logger, path string, stats *litematic.ImportStats) {
	if log == nil || stats == nil {
		return
	}
	entry := log.WithFields(logrus.Fields{
		"file":    path,
		"region":  stats.Region,
		"version": stats.Version,
		"palette": stats.PaletteSize,
		"bits":    stats.BitsPerBlock,
		"placed":  stats.Placed,
	})
	if stats.DroppedVertical > 0 || stats.DroppedOutside > 0 {
		entry.WithFields(logrus.Fields{
			"dropped_vertical": stats.DroppedVertical,
			"dropped_outside":  stats.DroppedOutside,
		}).Warn("blocks dropped on import")
		return
	}
	entry.Debug("imported")
}
