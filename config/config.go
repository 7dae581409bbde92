package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/constants"
)

const (
	// DefaultConfigFile is read when present and -config is not given
	DefaultConfigFile = "vi-snake.toml"

	// DefaultEnvFile is the dotenv file merged under the process environment
	DefaultEnvFile = ".env"

	// EnvPrefix namespaces environment overrides
	EnvPrefix = "VI_SNAKE_"
)

// Config is the resolved runtime configuration
type Config struct {
	GridWidth     int    `toml:"grid_width"`
	GridHeight    int    `toml:"grid_height"`
	InitialLength int    `toml:"initial_length"`
	BaseTickRate  int    `toml:"base_tick_rate"`
	MaxTickRate   int    `toml:"max_tick_rate"`
	Seed          uint64 `toml:"seed"` // 0 seeds from the clock
	ScoreFile     string `toml:"score_file"`
	KeymapFile    string `toml:"keymap_file"`
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	Debug         bool   `toml:"debug"`
	Audio         bool   `toml:"audio"`
	ColorMode     string `toml:"color_mode"` // truecolor or mono
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		GridWidth:     constants.DefaultGridWidth,
		GridHeight:    constants.DefaultGridHeight,
		InitialLength: constants.DefaultInitialLength,
		BaseTickRate:  constants.DefaultBaseTickRate,
		MaxTickRate:   constants.DefaultMaxTickRate,
		ScoreFile:     constants.DefaultScoreFile,
		LogDir:        "logs",
		LogLevel:      "info",
		Audio:         true,
		ColorMode:     "truecolor",
	}
}

// LoadFile decodes a TOML file over cfg; keys absent from the file keep their values
func LoadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// envSetters maps variable names (without EnvPrefix) to field parsers
var envSetters = map[string]func(*Config, string) error{
	"WIDTH":     func(c *Config, v string) error { return parseInt(v, &c.GridWidth) },
	"HEIGHT":    func(c *Config, v string) error { return parseInt(v, &c.GridHeight) },
	"LENGTH":    func(c *Config, v string) error { return parseInt(v, &c.InitialLength) },
	"BASE_RATE": func(c *Config, v string) error { return parseInt(v, &c.BaseTickRate) },
	"MAX_RATE":  func(c *Config, v string) error { return parseInt(v, &c.MaxTickRate) },
	"SEED": func(c *Config, v string) error {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = n
		return nil
	},
	"SCORES":    func(c *Config, v string) error { c.ScoreFile = v; return nil },
	"KEYMAP":    func(c *Config, v string) error { c.KeymapFile = v; return nil },
	"LOG_DIR":   func(c *Config, v string) error { c.LogDir = v; return nil },
	"LOG_LEVEL": func(c *Config, v string) error { c.LogLevel = v; return nil },
	"DEBUG":     func(c *Config, v string) error { return parseBool(v, &c.Debug) },
	"AUDIO":     func(c *Config, v string) error { return parseBool(v, &c.Audio) },
	"COLOR":     func(c *Config, v string) error { c.ColorMode = v; return nil },
}

// ApplyEnv applies VI_SNAKE_* variables from lookup, plus the conventional LOG_LEVEL
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	var errs []error
	for name, set := range envSetters {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			continue
		}
		if err := set(cfg, v); err != nil {
			errs = append(errs, fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, v, err))
		}
	}
	return errors.Join(errs...)
}

// EnvLookup layers a dotenv file under a process environment lookup
// A missing dotenv file is not an error
func EnvLookup(envFile string, process func(string) (string, bool)) (func(string) (string, bool), error) {
	dot := map[string]string{}
	if envFile != "" {
		read, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dot = read
		case !errors.Is(err, fs.ErrNotExist):
			return process, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}
	return func(key string) (string, bool) {
		if v, ok := process(key); ok {
			return v, true
		}
		v, ok := dot[key]
		return v, ok
	}, nil
}

// BindFlags registers one flag per field, defaulting to the current values
func (c *Config) BindFlags(fset *flag.FlagSet) {
	fset.IntVar(&c.GridWidth, "width", c.GridWidth, "board width in cells")
	fset.IntVar(&c.GridHeight, "height", c.GridHeight, "board height in cells")
	fset.IntVar(&c.InitialLength, "length", c.InitialLength, "initial snake length")
	fset.IntVar(&c.BaseTickRate, "base-rate", c.BaseTickRate, "moves per second at score 0")
	fset.IntVar(&c.MaxTickRate, "max-rate", c.MaxTickRate, "moves per second ceiling")
	fset.Uint64Var(&c.Seed, "seed", c.Seed, "placement seed (0 = clock)")
	fset.StringVar(&c.ScoreFile, "scores", c.ScoreFile, "high-score file")
	fset.StringVar(&c.KeymapFile, "keymap", c.KeymapFile, "TOML keymap overrides")
	fset.StringVar(&c.LogDir, "log-dir", c.LogDir, "log directory used with -debug")
	fset.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: trace, debug, info, warn, error")
	fset.BoolVar(&c.Debug, "debug", c.Debug, "write logs to the log directory")
	fset.BoolVar(&c.Audio, "audio", c.Audio, "enable sound")
	fset.StringVar(&c.ColorMode, "color", c.ColorMode, "color mode: truecolor, mono")
}

// Load resolves configuration: defaults, TOML file, dotenv and environment, then flags
func Load(args []string, process func(string) (string, bool)) (Config, error) {
	cfg := Default()

	configPath, explicit := argValue(args, "config")
	if !explicit {
		configPath = DefaultConfigFile
	}
	if err := LoadFile(configPath, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	envFile, ok := argValue(args, "env")
	if !ok {
		envFile = DefaultEnvFile
	}
	lookup, err := EnvLookup(envFile, process)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	fset := flag.NewFlagSet("vi-snake", flag.ContinueOnError)
	fset.String("config", DefaultConfigFile, "TOML configuration file")
	fset.String("env", DefaultEnvFile, "dotenv file")
	cfg.BindFlags(fset)
	if err := fset.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the game cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.GridWidth < constants.MinGridSize || c.GridHeight < constants.MinGridSize {
		errs = append(errs, fmt.Errorf("grid %dx%d smaller than %dx%d",
			c.GridWidth, c.GridHeight, constants.MinGridSize, constants.MinGridSize))
	}
	if c.InitialLength < 1 || c.InitialLength > c.GridWidth/2+1 {
		errs = append(errs, fmt.Errorf("initial length %d does not fit a %d-wide board", c.InitialLength, c.GridWidth))
	}
	if c.BaseTickRate <= 0 || c.MaxTickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rates must be positive, got base=%d max=%d", c.BaseTickRate, c.MaxTickRate))
	} else if c.MaxTickRate < c.BaseTickRate {
		errs = append(errs, fmt.Errorf("max tick rate %d below base %d", c.MaxTickRate, c.BaseTickRate))
	}
	if c.ScoreFile == "" {
		errs = append(errs, errors.New("score file must be set"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	switch c.ColorMode {
	case "truecolor", "mono":
	default:
		errs = append(errs, fmt.Errorf("unknown color mode %q", c.ColorMode))
	}
	return errors.Join(errs...)
}

// argValue finds -name/--name in args, as "-name v" or "-name=v"
func argValue(args []string, name string) (string, bool) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		trimmed := strings.TrimLeft(a, "-")
		if trimmed == a || len(a)-len(trimmed) > 2 {
			continue
		}
		if v, ok := strings.CutPrefix(trimmed, name+"="); ok {
			return v, true
		}
		if trimmed == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

func parseInt(v string, dst *int) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func parseBool(v string, dst *bool) error {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
