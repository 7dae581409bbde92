package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

func TestLoadKeyConfigOverrides(t *testing.T) {
	data := []byte(`
[keys]
k = "up"
j = "down"
h = "left"
l = "right"
w = "none"
space = "pause"

[special]
F2 = "reset"
Up = "none"
`)
	ov, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), ov)
	if kt.Runes['k'] != engine.CmdUp || kt.Runes['l'] != engine.CmdRight {
		t.Error("Expected vi-style movement bindings")
	}
	if _, ok := kt.Runes['w']; ok {
		t.Error("Expected w unbound by none")
	}
	if kt.Runes[' '] != engine.CmdPause {
		t.Errorf("Expected space alias rebound to pause, got %v", kt.Runes[' '])
	}
	if kt.SpecialKeys[tcell.KeyF2] != engine.CmdReset {
		t.Error("Expected F2 bound to reset")
	}
	if _, ok := kt.SpecialKeys[tcell.KeyUp]; ok {
		t.Error("Expected arrow up unbound")
	}
	if kt.Runes['q'] != engine.CmdQuit {
		t.Error("Expected untouched defaults to survive the merge")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad toml", "[keys\n", "keymap parse"},
		{"unknown command", "[keys]\nx = \"jump\"\n", "unknown command"},
		{"multi-char key", "[keys]\nxy = \"up\"\n", "invalid rune key"},
		{"unknown special", "[special]\nHyper = \"up\"\n", "unknown key name"},
		{"unknown section", "[modes]\nx = \"up\"\n", "unknown entry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadKeyFile(t *testing.T) {
	dir := t.TempDir()

	kt, err := LoadKeyFile(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Expected missing keymap to be fine, got %v", err)
	}
	if kt.Runes['w'] != engine.CmdUp {
		t.Error("Expected defaults for a missing keymap")
	}

	path := filepath.Join(dir, "keys.toml")
	if err := os.WriteFile(path, []byte("[keys]\nx = \"quit\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	kt, err = LoadKeyFile(path)
	if err != nil {
		t.Fatalf("LoadKeyFile failed: %v", err)
	}
	if kt.Runes['x'] != engine.CmdQuit {
		t.Error("Expected file binding applied")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[keys]\nx = \"fly\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	kt, err = LoadKeyFile(bad)
	if err == nil {
		t.Error("Expected error for an invalid keymap")
	}
	if kt == nil || kt.Runes['w'] != engine.CmdUp {
		t.Error("Expected defaults returned alongside the error")
	}
}
