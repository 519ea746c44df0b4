package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/types"
	"github.com/modelshape/modelshape/pkg/ui"
)

var templatesOverride string

var templatesCmd = &cobra.Command{
	Use:   "templates [predictor]",
	Short: "Show the expected layout templates",
	Long: `Templates prints the rule tree each predictor type's model layout is
validated against, in the same token syntax accepted by template
override files (see "modelshape topics templates").`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().StringVar(&templatesOverride, "templates", "", "YAML file overriding the built-in templates")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	registry, err := buildRegistry(templatesOverride)
	if err != nil {
		return err
	}

	predictors := types.PredictorTypes()
	if len(args) == 1 {
		pt, err := types.ParsePredictorType(args[0])
		if err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "unknown predictor")
		}
		predictors = []types.PredictorType{pt}
	}

	format := outputFormat()
	for _, pt := range predictors {
		root, err := registry.For(pt, types.ModeSinglePath)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, ui.RenderTemplate(pt, root, format))
		fmt.Println()
	}
	return nil
}
