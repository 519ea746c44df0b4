package config

import (
	"os"
	"path"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/logging"
)

var log = logging.GetLogger("config")

// ManifestFileName is the per-repository manifest mapping model prefixes
// to their predictor types.
const ManifestFileName = ".modelshape.toml"

// Manifest maps storage prefixes to validation settings so `modelshape
// validate <prefix>` can run without flags.
type Manifest struct {
	Models []ModelEntry `toml:"models"`
}

// ModelEntry declares how one prefix should be validated.
type ModelEntry struct {
	Prefix    string `toml:"prefix"`
	Predictor string `toml:"predictor"`
	Mode      string `toml:"mode"`
	Templates string `toml:"templates"` // optional YAML template override file
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(manifestPath string) (Manifest, error) {
	logger := log.With().Str("manifestPath", manifestPath).Logger()

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return Manifest{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to read manifest")
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse manifest TOML")
	}

	logger.Debug().Int("models", len(m.Models)).Msg("Manifest loaded")
	return m, nil
}

// FindModel returns the entry whose prefix contains the given prefix,
// preferring the longest match. Nil when nothing matches.
func (m *Manifest) FindModel(prefix string) *ModelEntry {
	cleaned := path.Clean("/" + prefix)

	var best *ModelEntry
	bestLen := -1
	for i, entry := range m.Models {
		entryPrefix := path.Clean("/" + entry.Prefix)
		if cleaned != entryPrefix && !strings.HasPrefix(cleaned, entryPrefix+"/") {
			continue
		}
		if len(entryPrefix) > bestLen {
			best = &m.Models[i]
			bestLen = len(entryPrefix)
		}
	}
	return best
}
