package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelshape/modelshape/pkg/topics"
	"github.com/modelshape/modelshape/pkg/ui"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [name]",
	Short: "Browse the built-in documentation topics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println("Available topics:")
			for _, name := range topics.List() {
				fmt.Println("  " + name)
			}
			return nil
		}

		plain := outputFormat() == ui.FormatText
		rendered, err := topics.Render(args[0], plain)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
		return nil
	},
}
