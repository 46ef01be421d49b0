package main

import (
	"os"
	"path/filepath"

	"github.com/BourgeoisBear/ripews/whois"
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileConfig is the layout of the TOML config file.
type FileConfig struct {
	whois.Config
	Verbose bool   `toml:"verbose"`
	Timeout string `toml:"timeout"`
}

func defaultConfigPath(szAppName string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, szAppName, "config.toml")
}

// loadConfig reads fname into cfg. A missing file is not an error unless
// bRequired is set.
func loadConfig(fname string, bRequired bool, cfg *FileConfig) error {

	if len(fname) == 0 {
		return nil
	}

	md, err := toml.DecodeFile(fname, cfg)
	if err != nil {
		if !bRequired && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.WithMessage(err, "config")
	}

	if sKeys := md.Undecoded(); len(sKeys) > 0 {
		return errors.Errorf("config %s: unknown key %q", fname, sKeys[0].String())
	}

	return nil
}
