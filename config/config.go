package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alanwang67/requestgen/workload"
)

const (
	DefaultFile = "requests.csv"
	DefaultRows = 100
)

// Config holds everything a generator run needs.
type Config struct {
	File            string  `yaml:"file"`
	Rows            int     `yaml:"rows"`
	AddressMax      uint64  `yaml:"address_max"`
	SpecialUserRate float64 `yaml:"special_user_rate"`
	Seed            uint64  `yaml:"seed"`      // 0 seeds from the clock
	Plot            string  `yaml:"plot"`      // optional PNG path for the user histogram
	LogLevel        string  `yaml:"log_level"` // debug, info, warn, error
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		File:            DefaultFile,
		Rows:            DefaultRows,
		AddressMax:      workload.DefaultAddressMax,
		SpecialUserRate: workload.DefaultSpecialUserRate,
		LogLevel:        "info",
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that the configuration describes a dataset the simulator can read.
func (c *Config) Validate() error {
	if c.File == "" {
		return errors.New("output file name is empty")
	}
	if c.Rows < 0 {
		return fmt.Errorf("row count %d is negative", c.Rows)
	}
	if c.AddressMax > math.MaxUint32 {
		return fmt.Errorf("address max %#x does not fit in 32 bits", c.AddressMax)
	}
	if c.SpecialUserRate < 0 || c.SpecialUserRate > 1 {
		return fmt.Errorf("special user rate %v is outside [0, 1]", c.SpecialUserRate)
	}
	return nil
}
