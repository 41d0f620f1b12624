package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-mood-tracker/internal/calendar"
	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
	"github.com/Tiliavir/trivial-mood-tracker/internal/report"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		from, to string
		week     bool
		format   string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export logged moods to stdout",
		Long: `Export writes entries to stdout. Without flags every entry of the session is
written in the order it was logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := report.CheckFormat(format); err != nil {
				return err
			}

			var entries []*model.Entry
			switch {
			case week:
				monday, sunday := calendar.WeekRange(a.engine.Today())
				entries = a.engine.EntriesBetween(monday, sunday)
			case from != "" || to != "":
				start, err := a.parseDay(from)
				if err != nil {
					return err
				}
				end, err := a.parseDay(to)
				if err != nil {
					return err
				}
				entries = a.engine.EntriesBetween(start, end)
			default:
				entries = a.engine.All()
			}
			return report.WriteEntries(cmd.OutOrStdout(), entries, a.engine.Location(), format)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First day (YYYY-MM-DD); defaults to today")
	cmd.Flags().StringVar(&to, "to", "", "Last day (YYYY-MM-DD); defaults to today")
	cmd.Flags().BoolVar(&week, "week", false, "Export this week's entries")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv, json, yaml, md")
	return cmd
}

func newMoodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List the moods that can be logged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range model.Moods() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", m.Glyph(), m)
			}
			return nil
		},
	}
}
