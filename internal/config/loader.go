package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadQuery reads and decodes a QueryConfig from path, dispatching on
// its extension.
func LoadQuery(path string) (*QueryConfig, error) {
	var q QueryConfig
	if err := load(path, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// LoadEngineConfig reads and decodes an EngineConfig from path.
func LoadEngineConfig(path string) (*EngineConfig, error) {
	var c EngineConfig
	if err := load(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func load(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("config: parsing %s as yaml: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("config: parsing %s as toml: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("config: parsing %s as json: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}
