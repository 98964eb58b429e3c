package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CollectInfo parses the command line and loads the config file named by -c, or the default one in the
// working directory. A missing file is not an error: defaults are used and written back.
func CollectInfo() (*StudioConfig, error) {
	flag.Parse()
	configFile := *argConfigFile
	if configFile == "" {
		configFile = DefaultConfigFile
	}
	config, err := Load(configFile)
	if err != nil {
		return nil, err
	}
	config.args = flag.Args()
	return config, nil
}

// Load reads a yaml config, filling defaults for anything the file leaves out.
func Load(path string) (*StudioConfig, error) {
	config := Default()
	config.writeBackPath = path
	fp, err := os.Open(path)
	if os.IsNotExist(err) {
		return config, nil
	} else if err != nil {
		return nil, fmt.Errorf("config: cannot open %v (%w)", path, err)
	}
	defer fp.Close()
	err = yaml.NewDecoder(fp).Decode(config)
	if err != nil {
		return nil, fmt.Errorf("config: error at unmarshal %v (%w)", path, err)
	}
	if config.Version != ConfigVersion {
		return nil, fmt.Errorf("config: version %q not support", config.Version)
	}
	if config.Tasks == nil {
		config.Tasks = map[string]interface{}{}
	}
	return config, nil
}

// WriteBack persists the config to the path it was loaded from.
func WriteBack(config *StudioConfig) error {
	if config.writeBackPath == "" {
		return nil
	}
	if dir := filepath.Dir(config.writeBackPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: cannot create %v (%w)", dir, err)
		}
	}
	fp, err := os.Create(config.writeBackPath)
	if err != nil {
		return fmt.Errorf("config: fail to create config (%w)", err)
	}
	defer fp.Close()
	encoder := yaml.NewEncoder(fp)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("config: fail to marshal config (%w)", err)
	}
	return encoder.Close()
}

// TaskConfig returns the raw yaml block configured for a task, or nil.
func (s *StudioConfig) TaskConfig(name string) []byte {
	block, ok := s.Tasks[name]
	if !ok || block == nil {
		return nil
	}
	out, err := yaml.Marshal(block)
	if err != nil {
		return nil
	}
	return out
}
