package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/aretw0/fieldset/pkg/model"
)

const (
	colorValid   = "#34d399"
	colorInvalid = "#fb7185"
	colorMuted   = "#a78bfa"
)

// WriteReport prints a per-record validation summary followed by a totals
// line. Colors follow profile; termenv.Ascii disables them.
func WriteReport(w io.Writer, profile termenv.Profile, results []model.Result) error {
	failed := 0
	for i, res := range results {
		if res.Errors.Valid() {
			ok := profile.String("ok").Foreground(profile.Color(colorValid))
			if _, err := fmt.Fprintf(w, "record %d: %s\n", i, ok); err != nil {
				return err
			}
			continue
		}

		failed++
		bad := profile.String("invalid").Foreground(profile.Color(colorInvalid)).Bold()
		if _, err := fmt.Fprintf(w, "record %d: %s\n", i, bad); err != nil {
			return err
		}
		for _, field := range res.Errors.Fields() {
			name := profile.String(field).Foreground(profile.Color(colorMuted))
			if _, err := fmt.Fprintf(w, "  %s: %s\n", name, res.Errors[field]); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%d records, %d valid, %d invalid\n", len(results), len(results)-failed, failed)
	return err
}
