package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-mood-tracker/internal/moodlog"
	"github.com/Tiliavir/trivial-mood-tracker/internal/report"
)

func newDayCmd(a *app) *cobra.Command {
	var date, format string
	cmd := &cobra.Command{
		Use:   "day",
		Short: "List the moods logged on one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDay(date)
			if err != nil {
				return err
			}
			if err := report.CheckFormat(format); err != nil {
				return err
			}
			a.view = a.engine.DayView(d)
			if format != "md" {
				return report.WriteEntries(cmd.OutOrStdout(), a.view.Entries(), a.engine.Location(), format)
			}
			printView(cmd.OutOrStdout(), a.view, a)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, today, yesterday); defaults to today")
	cmd.Flags().StringVar(&format, "format", "md", "Output format: md, csv, json, yaml")
	return cmd
}

// printView prints the presented list with row numbers usable by edit,
// delete and hide.
func printView(w io.Writer, v *moodlog.DayView, a *app) {
	fmt.Fprintln(w, v.Date())
	if v.Len() == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}
	for i, e := range v.Entries() {
		m := e.Mood()
		fmt.Fprintf(w, "%3d. %s  %s %-8s  %s\n",
			i+1, e.CapturedAt().In(a.engine.Location()).Format("15:04"), m.Glyph(), m, e.ID())
	}
}
