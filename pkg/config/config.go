// Package config loads editor settings through viper.
package config

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Keys understood in .blocks.yaml and as BLOCKS_* environment variables.
const (
	KeyLogFile  = "log_file"
	KeyLogLevel = "log_level"
	KeyDebug    = "debug"
	KeyMouse    = "mouse"
	KeyMenuRows = "menu_rows"
)

// Config is the resolved editor configuration.
type Config struct {
	LogFile  string `json:"log_file"`
	LogLevel string `json:"log_level"`
	Debug    bool   `json:"debug"`
	Mouse    bool   `json:"mouse"`
	MenuRows int    `json:"menu_rows"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel: "info",
		Mouse:    true,
		MenuRows: 8,
	}
}

// New returns a viper instance with defaults, the .blocks config search
// path and BLOCKS_ environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyMouse, d.Mouse)
	v.SetDefault(KeyMenuRows, d.MenuRows)

	v.SetConfigName(".blocks") // .yaml is implicit
	v.SetEnvPrefix("BLOCKS")
	v.AutomaticEnv()

	if override := os.Getenv("BLOCKS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	return v
}

// Load reads the config file, if present, and resolves the settings. A
// missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = New()
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := Config{
		LogFile:  v.GetString(KeyLogFile),
		LogLevel: v.GetString(KeyLogLevel),
		Debug:    v.GetBool(KeyDebug),
		Mouse:    v.GetBool(KeyMouse),
		MenuRows: v.GetInt(KeyMenuRows),
	}
	if cfg.LogFile != "" {
		path, err := homedir.Expand(cfg.LogFile)
		if err != nil {
			return Config{}, fmt.Errorf("config: expand %s: %w", KeyLogFile, err)
		}
		cfg.LogFile = path
	}
	if cfg.MenuRows <= 0 {
		cfg.MenuRows = Default().MenuRows
	}
	return cfg, nil
}
