package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is looked up in the working directory
const DefaultConfigFile = "cubegen.toml"

// Config represents the generator configuration
type Config struct {
	DatabaseURL string `toml:"database_url"`
	UserAgent   string `toml:"user_agent"`

	// Paths below are relative to the working directory
	SourceDir   string `toml:"source_dir"`
	FragmentExt string `toml:"fragment_ext"`
	LayoutsFile string `toml:"layouts_file"`
	CardScript  string `toml:"card_script"`
	ProxyScript string `toml:"proxy_script"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		DatabaseURL: "https://raw.githubusercontent.com/bones-bones/hellfall/main/src/data/Hellscube-Database.json",
		UserAgent:   "cubegen",
		SourceDir:   "src",
		FragmentExt: ".lua",
		LayoutsFile: "layouts.yaml",
		CardScript:  "src/card_script.lua",
		ProxyScript: "src/proxy_script.lua",
	}
}

// LoadConfig loads the config file at path. A missing file yields the
// defaults; keys left out of the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that required values are set and that every path stays
// inside the working directory
func (c *Config) Validate() error {
	var errs []error

	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("database_url is required"))
	}
	if c.FragmentExt == "" {
		errs = append(errs, errors.New("fragment_ext is required"))
	}

	paths := []struct {
		key, value string
	}{
		{"source_dir", c.SourceDir},
		{"layouts_file", c.LayoutsFile},
		{"card_script", c.CardScript},
		{"proxy_script", c.ProxyScript},
	}
	for _, p := range paths {
		if p.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", p.key))
		} else if !filepath.IsLocal(p.value) {
			errs = append(errs, fmt.Errorf("%s must be a relative path inside the working directory: %s", p.key, p.value))
		}
	}

	return errors.Join(errs...)
}

// WriteDefault creates a config file with the default values. An existing
// file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(Default()); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
