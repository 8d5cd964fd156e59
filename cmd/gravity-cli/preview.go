package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-gravity/pkg/schema"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Print the outline of a local form document (JSON or YAML), no network",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		form, err := schema.LoadFormFile(args[0])
		if err != nil {
			return err
		}
		if unsupported := form.UnsupportedField(); unsupported != nil {
			return fmt.Errorf("form %s uses unsupported field type %q", form.ID, unsupported.Type)
		}
		printOutline(form)
		return nil
	},
}
