// Package config resolves the request stdinfile works on from command-line
// flags and an optional config file.
package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/stdinfile/stdinfile/internal/errors"
	"github.com/stdinfile/stdinfile/internal/msg"
)

// DefaultExtension is appended to temp file names unless overridden.
const DefaultExtension = ".tmp"

// Keys of the settings a Request is built from.
const (
	KeyDir           = "dir"
	KeyExtension     = "extension"
	KeyRemovePartial = "remove-partial"
)

// Request describes where and how the temp file is created.
type Request struct {
	// Dir is the directory the temp file is created in. Absolute once resolved.
	Dir string `mapstructure:"dir"`
	// Extension is appended to the generated file name verbatim.
	Extension string `mapstructure:"extension"`
	// RemovePartial deletes the temp file again if it could not be fully written.
	RemovePartial bool `mapstructure:"remove-partial"`
}

// Load reads cfgPath, if given, into v and unmarshals the merged settings
// into a resolved Request. Flags bound to v take precedence over the file.
func Load(v *viper.Viper, cfgPath string) (Request, error) {
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Request{}, errors.Wrapf(errors.InvalidArgument, err, msg.InvalidConfigFile, cfgPath)
		}
	}

	var r Request
	if err := v.Unmarshal(&r, func(decodeCfg *mapstructure.DecoderConfig) {
		decodeCfg.ErrorUnused = true
	}); err != nil {
		return Request{}, errors.Wrapf(errors.InvalidArgument, err, msg.InvalidConfigFile, cfgPath)
	}

	return r.Resolve()
}

// Resolve fills in defaults and makes Dir absolute. The platform temp
// directory is looked up here, once.
func (r Request) Resolve() (Request, error) {
	if r.Dir == "" {
		r.Dir = os.TempDir()
	}

	abs, err := filepath.Abs(r.Dir)
	if err != nil {
		return Request{}, errors.Wrapf(errors.InvalidArgument, err, msg.InvalidDir, r.Dir)
	}
	r.Dir = abs

	return r, nil
}
