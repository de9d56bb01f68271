package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Delay() != 110*time.Millisecond {
		t.Errorf("expected 110ms default delay, got %v", cfg.Delay())
	}
}

func TestDelayFor(t *testing.T) {
	tests := []struct {
		speed int
		want  time.Duration
	}{
		{10, 200 * time.Millisecond},
		{100, 110 * time.Millisecond},
		{200, 10 * time.Millisecond},
		{0, 200 * time.Millisecond},
		{500, 10 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := DelayFor(tt.speed); got != tt.want {
			t.Errorf("DelayFor(%d) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestInstantDelay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Instant = true
	if cfg.Delay() != 0 {
		t.Errorf("instant config should have zero delay, got %v", cfg.Delay())
	}
}

func TestSpeedLabel(t *testing.T) {
	tests := []struct {
		speed int
		want  string
	}{
		{10, "Slow"},
		{69, "Slow"},
		{70, "Medium"},
		{129, "Medium"},
		{130, "Fast"},
		{200, "Fast"},
	}

	for _, tt := range tests {
		if got := SpeedLabel(tt.speed); got != tt.want {
			t.Errorf("SpeedLabel(%d) = %q, want %q", tt.speed, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"size too small", func(c *Config) { c.Size = MinSize - 1 }},
		{"size too large", func(c *Config) { c.Size = MaxSize + 1 }},
		{"speed too small", func(c *Config) { c.Speed = 0 }},
		{"speed too large", func(c *Config) { c.Speed = 201 }},
		{"negative fps", func(c *Config) { c.FPS = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if ClampSize(1) != MinSize || ClampSize(1000) != MaxSize || ClampSize(40) != 40 {
		t.Error("ClampSize mismatch")
	}
	if ClampSpeed(1) != MinSpeed || ClampSpeed(1000) != MaxSpeed || ClampSpeed(90) != 90 {
		t.Error("ClampSpeed mismatch")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")

	cfg := DefaultConfig()
	cfg.Algorithm = "merge"
	cfg.Size = 64
	cfg.Seed = 42
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Algorithm != "merge" || loaded.Size != 64 || loaded.Seed != 42 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("algorithm: quick\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Algorithm != "quick" {
		t.Errorf("expected quick, got %s", cfg.Algorithm)
	}
	if cfg.Size != DefaultSize || cfg.Speed != DefaultSpeed {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("size: 1000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classroom")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Algorithm != "insertion" || cfg.Size != 25 {
		t.Errorf("unexpected preset %+v", cfg)
	}
	if cfg.Theme != DefaultTheme {
		t.Error("preset should inherit defaults for unset fields")
	}

	cfg.Size = 99
	if Presets["classroom"].Size == 99 {
		t.Error("GetPreset returned shared preset")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
