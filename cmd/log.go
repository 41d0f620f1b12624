package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
)

func newLogCmd(a *app) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "log <mood>",
		Short: "Log a mood (name or emoji)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(a, cmd, args[0], at)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Capture time (RFC3339 or YYYY-MM-DDTHH:MM); defaults to now")
	return cmd
}

func runLog(a *app, cmd *cobra.Command, arg, at string) error {
	mood, err := model.ParseMood(arg)
	if err != nil {
		return err
	}

	var entry *model.Entry
	if at == "" {
		entry, err = a.engine.LogMood(mood)
	} else {
		t, perr := parseTime(at, a.engine.Location())
		if perr != nil {
			return perr
		}
		entry, err = a.engine.LogMoodAt(mood, t)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %s at %s (%s)\n",
		mood.Glyph(), mood, entry.CapturedAt().In(a.engine.Location()).Format("2006-01-02 15:04"), entry.ID())
	return nil
}
