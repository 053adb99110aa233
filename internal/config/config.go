package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	SlowThreshold       float64 `mapstructure:"slow_threshold" yaml:"slow_threshold"`
	FastThreshold       float64 `mapstructure:"fast_threshold" yaml:"fast_threshold"`
	DefaultLeadTimeDays float64 `mapstructure:"default_lead_time_days" yaml:"default_lead_time_days"`
	Currency            string  `mapstructure:"currency" yaml:"currency"`
	SampleRows          int     `mapstructure:"sample_rows" yaml:"sample_rows"`
	ReportsDir          string  `mapstructure:"reports_dir" yaml:"reports_dir"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.stockloom/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".stockloom")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("STOCKLOOM")
	v.AutomaticEnv()

	// Defaults match the classic dashboard sliders.
	v.SetDefault("slow_threshold", 1.0)
	v.SetDefault("fast_threshold", 5.0)
	v.SetDefault("default_lead_time_days", 14.0)
	v.SetDefault("currency", "BHD")
	v.SetDefault("sample_rows", 5)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".stockloom")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve reports_dir default: ~/.stockloom/reports
	if c.ReportsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.ReportsDir = filepath.Join(home, ".stockloom", "reports")
	}
	return &c, nil
}
