package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Tiliavir/trivial-mood-tracker/internal/calendar"
	"github.com/Tiliavir/trivial-mood-tracker/internal/config"
	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
	"github.com/Tiliavir/trivial-mood-tracker/internal/moodlog"
	"github.com/Tiliavir/trivial-mood-tracker/internal/store"
)

// app is the state shared by every command of one process. The shell runs
// many command trees against the same app.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	engine *moodlog.Engine
	// view is the day list last printed by `day`; row numbers refer to it.
	view *moodlog.DayView

	verbose  bool
	timezone string
	inShell  bool
}

// Execute is the entry point called from main.
func Execute() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tmt",
		Short: "Trivial Mood Tracker – log how you feel, one emoji at a time",
		Long: `tmt is a single-binary mood log.
Moods live in memory for the lifetime of the process: use "tmt shell" for an
interactive session or "tmt serve" to expose the log over HTTP.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.timezone, "timezone", "", "IANA timezone for day boundaries (overrides config)")

	root.AddCommand(
		newLogCmd(a),
		newDayCmd(a),
		newSummaryCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newHideCmd(a),
		newExportCmd(a),
		newMoodsCmd(),
	)
	if !a.inShell {
		root.AddCommand(newShellCmd(a), newServeCmd(a))
	}
	return root
}

// setup builds the logger and engine on first use. Later command trees in the
// same process reuse them, so the process-wide flags are refused there.
func (a *app) setup() error {
	if a.engine != nil {
		if a.timezone != "" || a.verbose {
			return fmt.Errorf("--timezone and --verbose apply to the whole session; pass them to \"tmt shell\"")
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.timezone != "" {
		cfg.Timezone = a.timezone
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	if a.verbose || cfg.LogLevel == "debug" {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	a.engine = moodlog.New(store.New(), moodlog.WithLocation(loc), moodlog.WithLogger(logger))
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// parseDay returns today for "" and parses YYYY-MM-DD otherwise.
func (a *app) parseDay(s string) (calendar.Date, error) {
	if s == "" || s == "today" {
		return a.engine.Today(), nil
	}
	if s == "yesterday" {
		return a.engine.Today().AddDays(-1), nil
	}
	return calendar.ParseDate(s)
}

// resolveEntry accepts either a row number from the last `day` listing or an
// entry ID.
func (a *app) resolveEntry(ref string) (*model.Entry, error) {
	if n, err := strconv.Atoi(ref); err == nil && a.view != nil {
		if n < 1 || n > a.view.Len() {
			return nil, fmt.Errorf("row %d out of range (1-%d)", n, a.view.Len())
		}
		return a.view.At(n - 1), nil
	}
	entry, err := a.engine.Entry(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, ref)
	}
	return entry, nil
}

func parseTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: expected RFC3339 or YYYY-MM-DDTHH:MM", s)
}
