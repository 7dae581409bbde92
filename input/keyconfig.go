package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyByName indexes tcell's key names lowercased ("up", "esc", "ctrl-c")
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// keyConfigFile is the TOML layout: key → command name, "none" unbinds
type keyConfigFile struct {
	Keys    map[string]string `toml:"keys"`
	Special map[string]string `toml:"special"`
}

// KeyOverrides is a sparse set of bindings; CmdNone entries delete the key when merged
type KeyOverrides struct {
	SpecialKeys map[tcell.Key]engine.Command
	Runes       map[rune]engine.Command
}

// LoadKeyConfig parses TOML keymap data
// Returns error on unknown command names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyOverrides, error) {
	var raw keyConfigFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}

	ov := &KeyOverrides{
		SpecialKeys: make(map[tcell.Key]engine.Command, len(raw.Special)),
		Runes:       make(map[rune]engine.Command, len(raw.Keys)),
	}

	for keyStr, name := range raw.Keys {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		cmd, err := resolveCommand(name)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		ov.Runes[r] = cmd
	}

	for keyStr, name := range raw.Special {
		k, ok := keyByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[special] unknown key name: %q", keyStr)
		}
		cmd, err := resolveCommand(name)
		if err != nil {
			return nil, fmt.Errorf("[special] key %q: %w", keyStr, err)
		}
		ov.SpecialKeys[k] = cmd
	}

	return ov, nil
}

// LoadKeyFile reads and merges a keymap file over the defaults
// A missing file yields the defaults unchanged
func LoadKeyFile(path string) (*KeyTable, error) {
	base := DefaultKeyTable()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("read keymap %s: %w", path, err)
	}
	ov, err := LoadKeyConfig(data)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return MergeKeyTable(base, ov), nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveCommand converts a command name; "none" maps to CmdNone
func resolveCommand(name string) (engine.Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "none" {
		return engine.CmdNone, nil
	}
	cmd, ok := engine.ParseCommand(name)
	if !ok {
		return engine.CmdNone, fmt.Errorf("unknown command: %q", name)
	}
	return cmd, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by ov
func MergeKeyTable(base *KeyTable, ov *KeyOverrides) *KeyTable {
	result := base.Clone()
	if ov == nil {
		return result
	}
	for k, v := range ov.SpecialKeys {
		if v == engine.CmdNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}
	for r, v := range ov.Runes {
		if v == engine.CmdNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}
	return result
}
