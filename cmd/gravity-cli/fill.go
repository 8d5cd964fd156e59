package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-gravity/pkg/answers"
	"github.com/goliatone/go-gravity/pkg/controller"
	"github.com/goliatone/go-gravity/pkg/renderers/tui"
	"github.com/goliatone/go-gravity/pkg/submission"
)

var fillCmd = &cobra.Command{
	Use:   "fill <formID>",
	Short: "Fill a form interactively and submit the answers",
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

		ctrl := controller.New(api, formID,
			controller.WithLogger(log.Logger),
			controller.WithOnSubmit(func(_ []submission.SummaryEntry, _ answers.State, entryID int) {
				log.Info().Int("entry_id", entryID).Msg("entry created")
			}),
		)
		return tui.New().Run(cmd.Context(), ctrl)
	},
}
