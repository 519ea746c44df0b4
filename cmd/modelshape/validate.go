package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/modelshape/modelshape/pkg/config"
	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/modelpath"
	"github.com/modelshape/modelshape/pkg/storage"
	"github.com/modelshape/modelshape/pkg/template"
	"github.com/modelshape/modelshape/pkg/types"
	"github.com/modelshape/modelshape/pkg/ui"
	"github.com/modelshape/modelshape/pkg/validate"
)

var (
	flagPredictor string
	flagMode      string
	flagBackend   string
	flagTemplates string
	flagManifest  string
)

var validateCmd = &cobra.Command{
	Use:   "validate <prefix>",
	Short: "Validate the model layout under a storage prefix",
	Long: `Validate lists every key under the given prefix (a local directory or
an S3 prefix, depending on the configured backend) and checks the
resulting layout against the predictor type's template.

The predictor type and mode come from flags, falling back to a matching
.modelshape.toml manifest entry, then to the configuration defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&flagPredictor, "predictor", "p", "", "Predictor type: python, tensorflow or onnx")
	validateCmd.Flags().StringVarP(&flagMode, "mode", "m", "", "Path mode: single (one model) or dir (directory of models)")
	validateCmd.Flags().StringVar(&flagBackend, "backend", "", "Storage backend: local or s3")
	validateCmd.Flags().StringVar(&flagTemplates, "templates", "", "YAML file overriding the built-in templates")
	validateCmd.Flags().StringVar(&flagManifest, "manifest", "", "Manifest file (default: .modelshape.toml in cwd)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	predictorName, modeName, templatesPath := resolveSettings(cfg, prefix)

	pt, err := types.ParsePredictorType(predictorName)
	if err != nil {
		return err
	}
	mode, err := types.ParseMode(modeName)
	if err != nil {
		return err
	}

	registry, err := buildRegistry(templatesPath)
	if err != nil {
		return err
	}

	lister, err := buildLister(cfg)
	if err != nil {
		return err
	}

	keys, err := lister.List(cmd.Context(), prefix)
	if err != nil {
		return err
	}

	verr := validate.NewWithRegistry(registry).Validate(keys, pt, prefix, mode)

	format := outputFormat()
	res := ui.Result{
		Prefix:    prefix,
		Predictor: pt,
		Mode:      mode,
		KeyCount:  len(keys),
		Err:       verr,
	}
	fmt.Println(ui.RenderResult(res, format))

	if verr == nil && mode == types.ModeDirectory {
		fmt.Print(ui.RenderModelList(modelNames(keys, prefix), format))
	}

	if verr != nil {
		// Verdict already rendered; main just needs the exit code.
		return errAlreadyReported
	}
	return nil
}

// resolveSettings applies the flag > manifest > config precedence.
func resolveSettings(cfg *config.Config, prefix string) (predictor, mode, templates string) {
	predictor = cfg.Validate.Predictor
	mode = cfg.Validate.Mode
	templates = cfg.Validate.Templates

	if entry := manifestEntry(prefix); entry != nil {
		if entry.Predictor != "" {
			predictor = entry.Predictor
		}
		if entry.Mode != "" {
			mode = entry.Mode
		}
		if entry.Templates != "" {
			templates = entry.Templates
		}
	}

	if flagPredictor != "" {
		predictor = flagPredictor
	}
	if flagMode != "" {
		mode = flagMode
	}
	if flagTemplates != "" {
		templates = flagTemplates
	}
	return predictor, mode, templates
}

func manifestEntry(prefix string) *config.ModelEntry {
	manifestPath := flagManifest
	if manifestPath == "" {
		manifestPath = config.ManifestFileName
		if _, err := os.Stat(manifestPath); err != nil {
			return nil
		}
	}
	manifest, err := config.LoadManifest(manifestPath)
	if err != nil {
		return nil
	}
	return manifest.FindModel(prefix)
}

func buildRegistry(templatesPath string) (*template.Registry, error) {
	registry := template.NewRegistry()
	if templatesPath == "" {
		return registry, nil
	}
	data, err := os.ReadFile(templatesPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to read template overrides from %s", templatesPath)
	}
	overrides, err := template.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	for pt, root := range overrides {
		registry.Override(pt, root)
	}
	return registry, nil
}

func buildLister(cfg *config.Config) (types.Lister, error) {
	backend := cfg.Storage.Backend
	if flagBackend != "" {
		backend = flagBackend
	}
	switch backend {
	case "", "local":
		return storage.NewLocalLister(), nil
	case "s3":
		return storage.NewS3Lister(storage.S3Config{
			Endpoint:  cfg.Storage.S3.Endpoint,
			Region:    cfg.Storage.S3.Region,
			AccessKey: cfg.Storage.S3.AccessKey,
			SecretKey: cfg.Storage.S3.SecretKey,
			Bucket:    cfg.Storage.S3.Bucket,
			UseSSL:    cfg.Storage.S3.UseSSL,
		})
	default:
		return nil, errors.Newf(errors.ErrConfigInvalid, "unknown storage backend %q", backend)
	}
}

func outputFormat() ui.Format {
	if plainOut {
		return ui.FormatText
	}
	return ui.DetectFormat(os.Stdout)
}

// modelNames reduces keys to the model directory names directly under the
// prefix, for the per-model listing in directory mode.
func modelNames(keys []string, prefix string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, key := range keys {
		rel, ok := modelpath.Relative(key, prefix)
		if !ok {
			continue
		}
		name := modelpath.Leftmost(rel)
		if name == "." || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
