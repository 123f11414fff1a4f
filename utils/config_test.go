package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config != DefaultConfig() {
		t.Errorf("LoadConfig(\"\") = %+v, want %+v", config, DefaultConfig())
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"width": 10,
		"height": 8,
		"frame_rate": "50ms",
		"seed_mode": "random",
		"random_density": 0.5,
		"random_seed": 42
	}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 10 || config.Height != 8 {
		t.Errorf("dimensions = %dx%d, want 10x8", config.Width, config.Height)
	}
	if config.FrameRate != 50*time.Millisecond {
		t.Errorf("FrameRate = %v, want 50ms", config.FrameRate)
	}
	if config.SeedMode != SeedModeRandom || config.RandomDensity != 0.5 || config.RandomSeed != 42 {
		t.Errorf("seed settings = %q %v %d", config.SeedMode, config.RandomDensity, config.RandomSeed)
	}
	// untouched keys keep their defaults
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Errorf("StagnationThreshold = %d, want default", config.StagnationThreshold)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", "width: 12\nheight: 6\nauto_restart: true\n")
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 12 || config.Height != 6 || !config.AutoRestart {
		t.Errorf("LoadConfig = %+v", config)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LIFE_HEIGHT", "12")
	t.Setenv("LIFE_LOG_LEVEL", "debug")
	path := writeConfig(t, "config.json", `{"width": 10, "height": 8}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Height != 12 {
		t.Errorf("Height = %d, want 12 from env", config.Height)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug from env", config.LogLevel)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("LoadConfig on a missing file succeeded")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeConfig(t, "config.json", `{"width": 0}`)
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("LoadConfig accepted a zero width")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"pattern seed", func(c *Config) { c.SeedMode = SeedModePattern }, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -3 }, true},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }, true},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }, true},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
		{"negative generations", func(c *Config) { c.MaxGenerations = -1 }, true},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }, true},
		{"unknown seed mode", func(c *Config) { c.SeedMode = "glider-gun" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
