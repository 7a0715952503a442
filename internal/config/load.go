package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// FileName is the conventional configuration file name.
const FileName = "veil.toml"

// LoadFile overlays a TOML configuration file onto defaults and validates
// the result.
func LoadFile(path string) (Options, error) {
	opts := Default()
	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return opts, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return opts, fmt.Errorf("load %s: unknown option %q", path, undecoded[0].String())
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("load %s: %w", path, err)
	}
	return opts, nil
}

// LoadFileIfPresent loads path when it exists; a missing file yields
// defaults without error.
func LoadFileIfPresent(path string) (Options, error) {
	opts, err := LoadFile(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return opts, err
}
