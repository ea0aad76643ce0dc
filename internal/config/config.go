// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     config
// Description: TOML configuration with defaults and file discovery
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/talevox/talevox/internal/tts"
)

// Config holds the complete application configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	TTS     TTSConfig     `toml:"tts"`
	Audio   AudioConfig   `toml:"audio"`
}

// GeneralConfig holds general application settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// TTSConfig holds speech synthesis settings.
type TTSConfig struct {
	Language string `toml:"language"`
	// Endpoint overrides the synthesis service URL. Empty means the
	// built-in default; tests point it at a local server.
	Endpoint string `toml:"endpoint"`
	MaxChars int    `toml:"max_chars"`
}

// AudioConfig holds audio processing settings.
type AudioConfig struct {
	Speed float64 `toml:"speed"`
	// FFmpegPath overrides toolchain discovery.
	FFmpegPath string `toml:"ffmpeg_path"`
	PlayAfter  bool   `toml:"play_after"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFile == "" {
		c.General.LogFile = "talevox.log"
	}
	if c.TTS.Language == "" {
		c.TTS.Language = "en"
	}
	if c.TTS.MaxChars == 0 {
		c.TTS.MaxChars = 1000
	}
	if c.Audio.Speed == 0 {
		c.Audio.Speed = 1.0
	}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "talevox", "config.toml")
}

// Load reads the configuration from path. A missing file is not an error:
// the defaults apply. An unreadable or invalid file is.
func Load(path string) (Config, error) {
	cfg := Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges after defaults are applied.
func (c *Config) Validate() error {
	if c.Audio.Speed < 0.5 || c.Audio.Speed > 2.0 {
		return fmt.Errorf("audio.speed must be between 0.5 and 2.0, got %g", c.Audio.Speed)
	}
	if c.TTS.MaxChars < 1 {
		return fmt.Errorf("tts.max_chars must be positive, got %d", c.TTS.MaxChars)
	}
	if !tts.IsSupported(c.TTS.Language) {
		return fmt.Errorf("tts.language %q is not supported", c.TTS.Language)
	}
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("general.log_level must be one of debug, info, warn, error; got %q", c.General.LogLevel)
	}
	return nil
}
