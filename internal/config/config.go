package config

import (
	"os"
	"path/filepath"

	"github.com/katalvlaran/rootfind/itp"
	"github.com/spf13/viper"
)

// Config represents the complete itp command-line configuration
type Config struct {
	Algorithm AlgorithmConfig `mapstructure:"algorithm"`
	Sweep     SweepConfig     `mapstructure:"sweep"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// AlgorithmConfig holds the ITP tuning constants and the iteration cap
type AlgorithmConfig struct {
	// ScaledK1 is the truncation scale (> 0, default 0.2)
	ScaledK1 float64 `mapstructure:"scaled_k1"`
	// K2 is the truncation exponent, in (1, 1+phi] (default 2)
	K2 float64 `mapstructure:"k2"`
	// N0 is the projection slack (>= 0, default 0)
	N0 int `mapstructure:"n0"`
	// MaxIters caps every solve (> 0, default 1000)
	MaxIters int `mapstructure:"max_iters"`
}

// SweepConfig controls parameter sweeps
type SweepConfig struct {
	// Workers bounds concurrent solves (0 = one per CPU)
	Workers int `mapstructure:"workers"`
}

// LoggingConfig controls diagnostic output
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR (default WARN)
	Level string `mapstructure:"level"`
	// Format is "text" or "json" (default text)
	Format string `mapstructure:"format"`
	// File, when set, receives log records instead of stderr
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Algorithm: AlgorithmConfig{
			ScaledK1: itp.DefaultScaledK1,
			K2:       itp.DefaultK2,
			N0:       itp.DefaultN0,
			MaxIters: itp.DefaultMaxIters,
		},
		Sweep: SweepConfig{Workers: 0},
		Logging: LoggingConfig{
			Level:  "WARN",
			Format: "text",
		},
	}
}

// SetDefaults registers every default with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("algorithm.scaled_k1", defaults.Algorithm.ScaledK1)
	v.SetDefault("algorithm.k2", defaults.Algorithm.K2)
	v.SetDefault("algorithm.n0", defaults.Algorithm.N0)
	v.SetDefault("algorithm.max_iters", defaults.Algorithm.MaxIters)

	v.SetDefault("sweep.workers", defaults.Sweep.Workers)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ITP builds the solver configuration from the algorithm section
func (c *Config) ITP() (itp.Config, error) {
	return itp.NewConfig(
		itp.WithScaledK1(c.Algorithm.ScaledK1),
		itp.WithK2(c.Algorithm.K2),
		itp.WithN0(c.Algorithm.N0),
	)
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "itp")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".itp"
	}
	return filepath.Join(home, ".config", "itp")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// WriteDefault writes the default configuration as YAML to path,
// creating parent directories. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	v := viper.New()
	SetDefaults(v)
	return v.SafeWriteConfigAs(path)
}
