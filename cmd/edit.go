package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <row|id> <mood>",
		Short: "Change the mood of an entry (its time is kept)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.resolveEntry(args[0])
			if err != nil {
				return err
			}
			mood, err := model.ParseMood(args[1])
			if err != nil {
				return err
			}
			if err := a.engine.EditEntryMood(entry, mood); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s to %s %s\n", entry.ID(), mood.Glyph(), mood)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <row|id>",
		Short: "Delete an entry from the log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.resolveEntry(args[0])
			if err != nil {
				return err
			}
			if a.view != nil {
				err = a.view.Delete(entry)
			} else {
				err = a.engine.DeleteEntry(entry)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", entry.ID())
			return nil
		},
	}
}

func newHideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hide <row|id>",
		Short: "Hide an entry from the current day list without deleting it",
		Long: `Hide removes an entry from the list printed by the last "day" command only.
The entry stays in the log and shows up again the next time the day is listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.view == nil {
				return fmt.Errorf("no day listed yet; run \"day\" first")
			}
			entry, err := a.resolveEntry(args[0])
			if err != nil {
				return err
			}
			if !a.view.Hide(entry) {
				return fmt.Errorf("entry %s is not in the current list", entry.ID())
			}
			printView(cmd.OutOrStdout(), a.view, a)
			return nil
		},
	}
}
