package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ServiceName != "Global Entry" {
		t.Errorf("ServiceName = %q, want Global Entry", cfg.ServiceName)
	}
	if cfg.Limit != DefaultLimit {
		t.Errorf("Limit = %d, want %d", cfg.Limit, DefaultLimit)
	}
	if cfg.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want America/New_York", cfg.Timezone)
	}
	if cfg.MaxConcurrent != DefaultMaxConcurrent {
		t.Errorf("MaxConcurrent = %d, want %d", cfg.MaxConcurrent, DefaultMaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `states: [OH, KY]
limit: 5
interval: 2m
allow_partial: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.States, []string{"OH", "KY"}) {
		t.Errorf("States = %v, want [OH KY]", cfg.States)
	}
	if cfg.Limit != 5 {
		t.Errorf("Limit = %d, want 5", cfg.Limit)
	}
	if cfg.Interval != 2*time.Minute {
		t.Errorf("Interval = %s, want 2m", cfg.Interval)
	}
	if !cfg.AllowPartial {
		t.Error("AllowPartial = false, want true")
	}

	// Unset keys keep their defaults
	if cfg.ServiceName != DefaultServiceName {
		t.Errorf("ServiceName = %q, want default %q", cfg.ServiceName, DefaultServiceName)
	}
	if cfg.Timezone != DefaultTimezone {
		t.Errorf("Timezone = %q, want default %q", cfg.Timezone, DefaultTimezone)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("states: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed YAML, got nil")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("interval: five minutes\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for unparseable duration, got nil")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.States = []string{"OH"}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "no states",
			mutate:  func(c *Config) { c.States = nil },
			wantErr: true,
		},
		{
			name:    "blank state code",
			mutate:  func(c *Config) { c.States = []string{"OH", "  "} },
			wantErr: true,
		},
		{
			name:    "empty service name",
			mutate:  func(c *Config) { c.ServiceName = "" },
			wantErr: true,
		},
		{
			name:    "zero limit",
			mutate:  func(c *Config) { c.Limit = 0 },
			wantErr: true,
		},
		{
			name:    "empty timezone",
			mutate:  func(c *Config) { c.Timezone = "" },
			wantErr: true,
		},
		{
			name:    "zero max concurrent",
			mutate:  func(c *Config) { c.MaxConcurrent = 0 },
			wantErr: true,
		},
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.Interval = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeStates(t *testing.T) {
	cfg := Default()
	cfg.States = []string{" oh", "Ky ", "NV"}
	cfg.NormalizeStates()

	want := []string{"OH", "KY", "NV"}
	if !reflect.DeepEqual(cfg.States, want) {
		t.Errorf("States = %v, want %v", cfg.States, want)
	}
}
