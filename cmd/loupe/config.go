package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the viewer's user configuration, read from
// <user config dir>/loupe/config.toml. A missing file yields the defaults.
type Config struct {
	// Capture mouse events so the wheel scrolls the view.
	Mouse bool

	// Lines scrolled per wheel notch.
	WheelLines int

	// How often the display refreshes while indexing is still running, so
	// the status bar totals stay live even with no input.
	RefreshInterval duration
}

// duration decodes TOML strings like "500ms" into a time.Duration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() *Config {
	return &Config{
		Mouse:           true,
		WheelLines:      1,
		RefreshInterval: duration{time.Second},
	}
}

// configFilename returns the default config file location.
func configFilename() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "loupe", "config.toml"), nil
}

// loadConfig reads the config file at path, or at the default location when
// path is empty. A missing file at the default location is not an error; an
// explicitly named file must exist.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = configFilename(); err != nil {
			return defaultConfig(), nil
		}
	}

	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if cfg.WheelLines < 1 {
		cfg.WheelLines = 1
	}
	if cfg.RefreshInterval.Duration <= 0 {
		cfg.RefreshInterval = duration{time.Second}
	}
	return cfg, nil
}
