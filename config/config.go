package config

import (
	"flag"

	"github.com/sirupsen/logrus"
)

var argConfigFile = flag.String("c", "", "config file path")

const (
	ConfigVersion     = "0.0.0"
	DefaultConfigFile = "studio.yaml"
)

type EditorConfig struct {
	SizeX int `yaml:"size_x"`
	SizeZ int `yaml:"size_z"`
}

type LitematicConfig struct {
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
	// keep block state properties in identifiers on import
	KeepProperties bool `yaml:"keep_properties"`
}

type LibraryConfig struct {
	Path string `yaml:"path"`
}

type ConvertConfig struct {
	Workers int `yaml:"workers"`
}

type StudioConfig struct {
	Version   string          `yaml:"version"`
	LogLevel  string          `yaml:"log_level"`
	Editor    EditorConfig    `yaml:"editor"`
	Litematic LitematicConfig `yaml:"litematic"`
	Library   LibraryConfig   `yaml:"library"`
	Convert   ConvertConfig   `yaml:"convert"`
	// raw per task blocks, handed to Task.New
	Tasks map[string]interface{} `yaml:"tasks,omitempty"`
	// Aux
	writeBackPath string
	args          []string
}

func Default() *StudioConfig {
	return &StudioConfig{
		Version:  ConfigVersion,
		LogLevel: "info",
		Editor: EditorConfig{
			SizeX: 128,
			SizeZ: 128,
		},
		Litematic: LitematicConfig{
			Author:      "Minecraft Schematic Studio",
			Description: "Exported from Minecraft Schematic Studio",
		},
		Library: LibraryConfig{
			Path: "data/library.db",
		},
		Convert: ConvertConfig{
			Workers: 4,
		},
		Tasks: map[string]interface{}{},
	}
}

// Args returns the command line arguments left after flag parsing.
func (s *StudioConfig) Args() []string {
	return s.args
}

func (s *StudioConfig) WriteBackPath() string {
	return s.writeBackPath
}

// Level parses LogLevel, falling back to info.
func (s *StudioConfig) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
