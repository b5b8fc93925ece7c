package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	intersect "github.com/dkorbel/flag-intersect-go"
)

// config holds the defaults a user can persist in a TOML file instead of
// repeating flags on every run. Command-line flags always win.
type config struct {
	Tolerance int
	WhiteBG   bool
	OutputDir string
}

func defaultConfig() config {
	return config{
		Tolerance: intersect.DefaultTolerance,
		WhiteBG:   false,
		OutputDir: "output",
	}
}

// loadConfig reads a TOML config file on top of the built-in defaults.
func loadConfig(path string) (config, error) {
	conf := defaultConfig()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if conf.Tolerance < 0 {
		return config{}, fmt.Errorf("config %s: negative tolerance %d", path, conf.Tolerance)
	}
	return conf, nil
}
