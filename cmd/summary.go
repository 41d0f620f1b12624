package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-mood-tracker/internal/calendar"
	"github.com/Tiliavir/trivial-mood-tracker/internal/report"
)

func newSummaryCmd(a *app) *cobra.Command {
	var (
		date   string
		week   bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show mood counts and percentages for a day or week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDay(date)
			if err != nil {
				return err
			}
			if !week {
				return report.WriteSummary(cmd.OutOrStdout(), d.String(), a.engine.SummaryForDay(d), format)
			}
			s, from, to := a.engine.SummaryForWeek(d)
			label := fmt.Sprintf("Week %s (%s – %s)", calendar.ISOWeekLabel(d), from, to)
			return report.WriteSummary(cmd.OutOrStdout(), label, s, format)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to summarise (YYYY-MM-DD, today, yesterday); defaults to today")
	cmd.Flags().BoolVar(&week, "week", false, "Summarise the ISO week containing --date")
	cmd.Flags().StringVar(&format, "format", "md", "Output format: md, csv, json, yaml")
	return cmd
}
