package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// SearchPaths are tried in order when no config file is given.
var SearchPaths = []string{"config.yml", "./config/config.yml"}

const (
	DefaultOutput   = "output"
	DefaultParallel = 4
	DefaultPort     = 16181
)

// Load reads and validates the configuration at path. With an empty path the
// SearchPaths are tried, and a missing file yields the defaults.
func Load(path string) (AppConfig, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return AppConfig{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		for _, p := range SearchPaths {
			data, err = os.ReadFile(p)
			if err == nil {
				break
			}
		}
		if errors.Is(err, fs.ErrNotExist) {
			data, err = nil, nil
		}
		if err != nil {
			return AppConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Validate checks the struct tags of cfg. It is run again after command line
// flags have been merged in.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *AppConfig) applyDefaults() {
	if c.Validator.Output == "" {
		c.Validator.Output = DefaultOutput
	}
	if c.Validator.Parallel == 0 {
		c.Validator.Parallel = DefaultParallel
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}
