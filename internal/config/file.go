package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type FileConfig struct {
	StartLevel  *int   `yaml:"start_level" toml:"start_level"`
	EndLevel    *int   `yaml:"end_level" toml:"end_level"`
	Format      string `yaml:"format" toml:"format"`
	Steps       *bool  `yaml:"steps" toml:"steps"`
	XLSX        *bool  `yaml:"xlsx" toml:"xlsx"`
	OutPath     string `yaml:"out_path" toml:"out_path"`
	OutDir      string `yaml:"out_dir" toml:"out_dir"`
	SourcesPath string `yaml:"sources_path" toml:"sources_path"`
	LogLevel    string `yaml:"log_level" toml:"log_level"`
}

// loadFileConfig reads a YAML or TOML config depending on the extension.
// A missing file is only an error when required is set.
func loadFileConfig(path string, required bool) (FileConfig, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fc); err != nil {
			return FileConfig{}, false, fmt.Errorf("parse config toml %s: %w", path, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
			return FileConfig{}, false, fmt.Errorf("parse config yaml %s: %w", path, err)
		}
	}
	return fc, true, nil
}
