package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func noEnv(string) (string, bool) { return "", false }

func mapEnv(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

// inTempDir runs the test from an empty directory so default file lookups miss
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tiny grid", func(c *Config) { c.GridWidth = 4 }, "smaller than"},
		{"long snake", func(c *Config) { c.InitialLength = 30 }, "does not fit"},
		{"zero rate", func(c *Config) { c.BaseTickRate = 0 }, "must be positive"},
		{"inverted rates", func(c *Config) { c.MaxTickRate = 3 }, "below base"},
		{"no score file", func(c *Config) { c.ScoreFile = "" }, "score file"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
		{"bad color", func(c *Config) { c.ColorMode = "sepia" }, "color mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vi-snake.toml")
	data := "grid_width = 30\ngrid_height = 15\nscore_file = \"/tmp/s.toml\"\naudio = false\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.GridWidth != 30 || cfg.GridHeight != 15 || cfg.ScoreFile != "/tmp/s.toml" || cfg.Audio {
		t.Errorf("Expected file values applied, got %+v", cfg)
	}
	if cfg.BaseTickRate != Default().BaseTickRate {
		t.Error("Expected absent keys to keep defaults")
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("grid_wdth = 30\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := LoadFile(path, &cfg); err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("Expected unknown key error, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, mapEnv(map[string]string{
		"VI_SNAKE_WIDTH": "25",
		"VI_SNAKE_SEED":  "42",
		"VI_SNAKE_AUDIO": "false",
		"LOG_LEVEL":      "debug",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.GridWidth != 25 || cfg.Seed != 42 || cfg.Audio || cfg.LogLevel != "debug" {
		t.Errorf("Expected env values applied, got %+v", cfg)
	}

	cfg = Default()
	err = ApplyEnv(&cfg, mapEnv(map[string]string{"VI_SNAKE_HEIGHT": "tall"}))
	if err == nil || !strings.Contains(err.Error(), "VI_SNAKE_HEIGHT") {
		t.Errorf("Expected parse error naming the variable, got %v", err)
	}
}

func TestEnvLookupLayersDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("VI_SNAKE_WIDTH=12\nVI_SNAKE_HEIGHT=9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lookup, err := EnvLookup(path, mapEnv(map[string]string{"VI_SNAKE_WIDTH": "16"}))
	if err != nil {
		t.Fatalf("EnvLookup failed: %v", err)
	}
	if v, _ := lookup("VI_SNAKE_WIDTH"); v != "16" {
		t.Errorf("Expected process env to win, got %q", v)
	}
	if v, _ := lookup("VI_SNAKE_HEIGHT"); v != "9" {
		t.Errorf("Expected dotenv value, got %q", v)
	}

	if _, err := EnvLookup(filepath.Join(t.TempDir(), "missing.env"), noEnv); err != nil {
		t.Errorf("Expected missing dotenv to be ignored, got %v", err)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := inTempDir(t)
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("grid_width = 30\ngrid_height = 30\nmax_rate_unused = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// Unknown keys in the default file are errors too
	if _, err := Load(nil, noEnv); err == nil {
		t.Fatal("Expected unknown key in default config file to fail")
	}

	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("grid_width = 30\ngrid_height = 30\n"), 0644); err != nil {
		t.Fatal(err)
	}
	env := mapEnv(map[string]string{"VI_SNAKE_HEIGHT": "25"})

	cfg, err := Load([]string{"-width", "40"}, env)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GridWidth != 40 {
		t.Errorf("Expected flag to beat the file, got width %d", cfg.GridWidth)
	}
	if cfg.GridHeight != 25 {
		t.Errorf("Expected env to beat the file, got height %d", cfg.GridHeight)
	}

	cfg, err = Load([]string{"-height=12"}, env)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GridHeight != 12 || cfg.GridWidth != 30 {
		t.Errorf("Expected flag over env and file width kept, got %dx%d", cfg.GridWidth, cfg.GridHeight)
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	inTempDir(t)
	cfg, err := Load(nil, noEnv)
	if err != nil {
		t.Fatalf("Expected defaults without any files, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadExplicitConfigMustExist(t *testing.T) {
	inTempDir(t)
	if _, err := Load([]string{"-config", "nope.toml"}, noEnv); err == nil {
		t.Error("Expected a missing explicit config file to fail")
	}
}

func TestLoadValidates(t *testing.T) {
	inTempDir(t)
	if _, err := Load([]string{"-width", "3"}, noEnv); err == nil {
		t.Error("Expected invalid flag values to fail validation")
	}
}

func TestArgValue(t *testing.T) {
	tests := []struct {
		args []string
		want string
		ok   bool
	}{
		{[]string{"-config", "a.toml"}, "a.toml", true},
		{[]string{"--config=b.toml"}, "b.toml", true},
		{[]string{"-debug", "-config=c.toml"}, "c.toml", true},
		{[]string{"-configx", "d"}, "", false},
		{[]string{"--", "-config", "e"}, "", false},
		{[]string{"-config"}, "", false},
	}
	for _, tt := range tests {
		got, ok := argValue(tt.args, "config")
		if got != tt.want || ok != tt.ok {
			t.Errorf("argValue(%v): expected %q/%v, got %q/%v", tt.args, tt.want, tt.ok, got, ok)
		}
	}
}
