package server

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration, read from a YAML file with
// environment variable overrides.
type Config struct {
	// Listen is the address the HTTP server binds, e.g. ":9000".
	Listen string `yaml:"listen"`
	// ExamplesFile is the path to the example-patient CSV used to
	// pre-fill the form. Optional.
	ExamplesFile string `yaml:"examples_file"`
	// MatrixFile is the path to a DSAM matrix CSV to preload at
	// startup, so mode B works without an upload. Optional.
	MatrixFile string `yaml:"matrix_file"`
}

// DefaultConfig returns the defaults used when the file or a field is
// absent.
func DefaultConfig() Config {
	return Config{Listen: ":9000"}
}

// LoadConfig parses YAML bytes into a Config and applies defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return applyDefaults(cfg), nil
}

// ApplyEnv overrides config fields from the environment. Variables:
// RISKSERVICE_LISTEN, RISKSERVICE_EXAMPLES_FILE, RISKSERVICE_MATRIX_FILE.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("RISKSERVICE_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("RISKSERVICE_EXAMPLES_FILE"); v != "" {
		cfg.ExamplesFile = v
	}
	if v := os.Getenv("RISKSERVICE_MATRIX_FILE"); v != "" {
		cfg.MatrixFile = v
	}
	return cfg
}

func applyDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Listen == "" {
		cfg.Listen = def.Listen
	}
	return cfg
}
