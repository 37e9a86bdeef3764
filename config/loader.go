package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Default returns a configuration with every default applied
func Default() AppConfig {
	var cfg AppConfig
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero fields with their defaults
func (c *AppConfig) ApplyDefaults() {
	if c.Cluster.ThresholdKM == 0 {
		c.Cluster.ThresholdKM = 0.28
	}
	if c.Cluster.SpatialIndex == "" {
		c.Cluster.SpatialIndex = "rtree"
	}
	if c.Index.StationCapacity == 0 {
		c.Index.StationCapacity = 977
	}
	if c.Index.StationRehashCapacity == 0 {
		c.Index.StationRehashCapacity = 1973
	}
	if c.Index.LineCapacity == 0 {
		c.Index.LineCapacity = 59
	}
	if c.Index.LineRehashCapacity == 0 {
		c.Index.LineRehashCapacity = 127
	}
	if c.Distance == "" {
		c.Distance = "haversine"
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// Validate checks the struct tags
func (c AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Parse decodes YAML, applies defaults and validates
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// LoadAppConfig loads the configuration into Config. It tries path first,
// then config.yml and ./config/config.yml. When none exists the defaults
// are used.
func LoadAppConfig(path string) error {
	paths := []string{"config.yml", "./config/config.yml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if path != "" {
			return fmt.Errorf("failed to read config: %w", err)
		}
		Config = Default()
		return nil
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}
