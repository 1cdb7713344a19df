package dbg

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config represents a dbg.toml configuration file.
type Config struct {
	// Output selects the sink: "file" truncates Path, "append" appends
	// to it, "stdout" writes to standard output.
	Output string `toml:"output"`

	// Path is the log file for the file modes.
	Path string `toml:"path"`

	// Enabled is the initial toggle state.
	Enabled bool `toml:"enabled"`
}

// DefaultConfig mirrors the zero-option printer: truncate dbg.log,
// enabled.
func DefaultConfig() Config {
	return Config{
		Output:  "file",
		Path:    DefaultLogFile,
		Enabled: true,
	}
}

// LoadConfig reads a dbg.toml file and applies DBG_OUTPUT, DBG_PATH,
// and DBG_ENABLED environment overrides on top of it.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return config, errors.Wrapf(err, "parsing %s", path)
	}
	applyEnv(&config)
	return config, nil
}

// FindConfig searches for a dbg.toml file starting from dir and walking
// up to parent directories. Returns the path and the parsed config, or
// ("", DefaultConfig(), nil) if not found.
func FindConfig(dir string) (string, Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", DefaultConfig(), err
	}
	for {
		path := filepath.Join(dir, "dbg.toml")
		if _, err := os.Stat(path); err == nil {
			config, err := LoadConfig(path)
			return path, config, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			config := DefaultConfig()
			applyEnv(&config)
			return "", config, nil
		}
		dir = parent
	}
}

func applyEnv(config *Config) {
	if v := os.Getenv("DBG_OUTPUT"); v != "" {
		config.Output = v
	}
	if v := os.Getenv("DBG_PATH"); v != "" {
		config.Path = v
	}
	if v := os.Getenv("DBG_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			config.Enabled = enabled
		}
	}
}

// FromConfig builds a Printer from a Config. Unlike New, a sink that
// cannot be opened is reported instead of silently discarded.
func FromConfig(config Config) (*Printer, error) {
	var p *Printer
	switch config.Output {
	case "", "file":
		p = New(WriteToFile(config.Path))
	case "append":
		p = New(AppendToFile(config.Path))
	case "stdout":
		p = New(WriteToStdout())
	default:
		return nil, errors.Errorf("unknown output mode %q", config.Output)
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	if !config.Enabled {
		p.Disable()
	}
	return p, nil
}
