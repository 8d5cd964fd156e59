package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-gravity/internal/htmltext"
	"github.com/goliatone/go-gravity/pkg/schema"
)

var showCmd = &cobra.Command{
	Use:   "show <formID>",
	Short: "Fetch a form and print its outline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("form id must be numeric: %q", args[0])
		}

		api, err := newClient()
		if err != nil {
			return err
		}
		form, err := api.FetchForm(cmd.Context(), formID)
		if err != nil {
			return err
		}
		printOutline(form)
		return nil
	},
}

func printOutline(form *schema.Form) {
	fmt.Fprintf(os.Stdout, "%s (form %s)\n", form.Title, form.ID)
	if form.Description != "" {
		fmt.Fprintln(os.Stdout, htmltext.Flatten(form.Description))
	}
	fmt.Fprintln(os.Stdout)

	for _, field := range form.Fields {
		marker := " "
		if field.IsRequired {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s [%s] %s (%s)\n", marker, field.ID, field.Label, field.Type)
		for _, choice := range field.Choices {
			fmt.Fprintf(os.Stdout, "      - %s\n", choice.Text)
		}
		for _, input := range field.VisibleInputs() {
			fmt.Fprintf(os.Stdout, "      · %s (%s)\n", input.Label, input.ID)
		}
		if logic := field.Conditional; logic != nil && logic.Enabled {
			fmt.Fprintf(os.Stdout, "      shown when %s of %d rule(s) match\n", logic.LogicType, len(logic.Rules))
		}
	}

	if form.Button.Text != "" {
		fmt.Fprintf(os.Stdout, "\nSubmit button: %q\n", form.Button.Text)
	}
}
