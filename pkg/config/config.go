// Package config loads modelshape's layered configuration: embedded
// defaults, then an optional modelshape.toml (working directory or XDG
// config dir), then MODELSHAPE_* environment variables.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/modelshape/modelshape/pkg/errors"
)

//go:embed modelshape.toml
var defaultConfig []byte

// ConfigFileName is the name of the user-facing configuration file.
const ConfigFileName = "modelshape.toml"

// EnvPrefix is the prefix for environment overrides. Nesting uses a
// double underscore: MODELSHAPE_STORAGE__S3__BUCKET sets storage.s3.bucket.
const EnvPrefix = "MODELSHAPE_"

// Config is the fully merged configuration.
type Config struct {
	Storage  StorageConfig  `koanf:"storage"`
	Validate ValidateConfig `koanf:"validate"`
}

// StorageConfig selects and configures the storage backend.
type StorageConfig struct {
	Backend string     `koanf:"backend"` // "local" or "s3"
	S3      S3Settings `koanf:"s3"`
}

// S3Settings configures the S3-compatible backend.
type S3Settings struct {
	Endpoint  string `koanf:"endpoint"`
	Region    string `koanf:"region"`
	Bucket    string `koanf:"bucket"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	UseSSL    bool   `koanf:"use_ssl"`
}

// ValidateConfig holds the default validation settings, overridable per
// invocation by CLI flags or a manifest entry.
type ValidateConfig struct {
	Predictor string `koanf:"predictor"`
	Mode      string `koanf:"mode"`
	Templates string `koanf:"templates"` // optional YAML template override file
}

// Load builds the merged configuration. When explicitPath is non-empty it
// is loaded instead of the search locations and must exist.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if explicitPath != "" {
		if err := k.Load(file.Provider(explicitPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", explicitPath)
		}
	} else {
		for _, path := range searchPaths() {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"failed to load config from %s", path)
			}
			break
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse configuration")
	}
	return &cfg, nil
}

// envKey maps MODELSHAPE_STORAGE__S3__ACCESS_KEY to storage.s3.access_key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func searchPaths() []string {
	return []string{
		ConfigFileName,
		filepath.Join(xdg.ConfigHome, "modelshape", ConfigFileName),
	}
}

// rawBytesProvider feeds embedded bytes to koanf.
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}
