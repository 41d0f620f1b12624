// Package report renders mood summaries and entry lists for humans and tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/trivial-mood-tracker/internal/model"
	"github.com/Tiliavir/trivial-mood-tracker/internal/summary"
)

// Formats lists the accepted --format values.
var Formats = []string{"md", "csv", "json", "yaml"}

// CheckFormat returns an error for unknown formats.
func CheckFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// SummaryDoc is the machine-readable form of a summary.
type SummaryDoc struct {
	Label  string             `json:"label" yaml:"label"`
	Counts map[model.Mood]int `json:"counts" yaml:"counts"`
	Total  int                `json:"total" yaml:"total"`
	Rows   []summary.Row      `json:"rows" yaml:"rows"`
}

// NewSummaryDoc wraps s with a label such as a date or week.
func NewSummaryDoc(label string, s summary.Summary) SummaryDoc {
	rows := s.Rows()
	if rows == nil {
		rows = []summary.Row{}
	}
	return SummaryDoc{Label: label, Counts: s.Counts, Total: s.Total, Rows: rows}
}

// WriteSummary renders s in the given format.
func WriteSummary(w io.Writer, label string, s summary.Summary, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	doc := NewSummaryDoc(label, s)

	switch format {
	case "csv":
		fmt.Fprintln(w, "mood,count,percent")
		for _, r := range doc.Rows {
			fmt.Fprintf(w, "%s,%d,%d\n", r.Mood, r.Count, r.Percent)
		}
	case "json":
		return writeJSON(w, doc)
	case "yaml":
		return writeYAML(w, doc)
	default: // md
		fmt.Fprintln(w, label)
		fmt.Fprintln(w, "--------------------------------")
		if s.Empty() {
			fmt.Fprintln(w, "No entries made that day.")
			return nil
		}
		for _, r := range doc.Rows {
			fmt.Fprintf(w, "%s %-10s%3d (%d%%)\n", r.Glyph, r.Mood, r.Count, r.Percent)
		}
		fmt.Fprintln(w, "--------------------------------")
		fmt.Fprintf(w, "%-13s%3d\n", "Total", s.Total)
	}
	return nil
}

// WriteEntries renders entries in the given format. Times are shown in loc.
func WriteEntries(w io.Writer, entries []*model.Entry, loc *time.Location, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	views := make([]model.EntryView, len(entries))
	for i, e := range entries {
		v := e.View()
		if loc != nil {
			v.CapturedAt = v.CapturedAt.In(loc)
		}
		views[i] = v
	}

	switch format {
	case "csv":
		writeCSV(w, views)
	case "json":
		return writeJSON(w, views)
	case "yaml":
		return writeYAML(w, views)
	default: // md
		writeList(w, views)
	}
	return nil
}

// writeList groups entries by date and prints them.
func writeList(w io.Writer, views []model.EntryView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	var currentDay string
	for _, v := range views {
		day := v.CapturedAt.Format("2006-01-02")
		if day != currentDay {
			fmt.Fprintln(w, day)
			currentDay = day
		}
		fmt.Fprintf(w, "%s  %s %-8s  %s\n", v.CapturedAt.Format("15:04"), v.Glyph, v.Mood, v.ID)
	}
}

func writeCSV(w io.Writer, views []model.EntryView) {
	fmt.Fprintln(w, "id,date,time,mood,captured_at")
	for _, v := range views {
		fmt.Fprintf(w, "%s,%s,%s,%s,%s\n",
			csvEscape(v.ID),
			csvEscape(v.CapturedAt.Format("2006-01-02")),
			csvEscape(v.CapturedAt.Format("15:04")),
			csvEscape(string(v.Mood)),
			csvEscape(v.CapturedAt.Format(time.RFC3339)),
		)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
