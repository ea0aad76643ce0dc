package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.General.LogLevel)
	}
	if cfg.General.LogFile != "talevox.log" {
		t.Errorf("LogFile = %q, want talevox.log", cfg.General.LogFile)
	}
	if cfg.TTS.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.TTS.Language)
	}
	if cfg.TTS.MaxChars != 1000 {
		t.Errorf("MaxChars = %d, want 1000", cfg.TTS.MaxChars)
	}
	if cfg.Audio.Speed != 1.0 {
		t.Errorf("Speed = %g, want 1.0", cfg.Audio.Speed)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[general]
log_level = "debug"

[tts]
language = "de"
max_chars = 500

[audio]
speed = 1.5
play_after = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.General.LogLevel)
	}
	if cfg.TTS.Language != "de" {
		t.Errorf("Language = %q, want de", cfg.TTS.Language)
	}
	if cfg.TTS.MaxChars != 500 {
		t.Errorf("MaxChars = %d, want 500", cfg.TTS.MaxChars)
	}
	if cfg.Audio.Speed != 1.5 {
		t.Errorf("Speed = %g, want 1.5", cfg.Audio.Speed)
	}
	if !cfg.Audio.PlayAfter {
		t.Error("PlayAfter = false, want true")
	}
	// Unset values still default.
	if cfg.General.LogFile != "talevox.log" {
		t.Errorf("LogFile = %q, want default", cfg.General.LogFile)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(invalid) error = nil, want parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"speed too low", func(c *Config) { c.Audio.Speed = 0.4 }, true},
		{"speed too high", func(c *Config) { c.Audio.Speed = 2.1 }, true},
		{"speed lower bound", func(c *Config) { c.Audio.Speed = 0.5 }, false},
		{"speed upper bound", func(c *Config) { c.Audio.Speed = 2.0 }, false},
		{"zero max chars", func(c *Config) { c.TTS.MaxChars = -1 }, true},
		{"bad log level", func(c *Config) { c.General.LogLevel = "loud" }, true},
		{"unsupported language", func(c *Config) { c.TTS.Language = "xx" }, true},
		{"regional language code", func(c *Config) { c.TTS.Language = "zh-CN" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
