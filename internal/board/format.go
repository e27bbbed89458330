// Package board renders the rolling week grid and the claimed-slot view for
// the CLI. Rendering is presentation only: it derives everything from the
// generated weeks and the reconciler's current mapping.
package board

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/rotaboard/rota/internal/calendar"
	"github.com/rotaboard/rota/pkg/slotboard"
)

// OutputFormat specifies how to format board output.
type OutputFormat string

const (
	// OutputFormatDefault renders a human-readable week grid
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSON outputs claimed slots as line-delimited JSON
	OutputFormatJSON OutputFormat = "json"
)

// ansiPalette approximates derived hues on the terminal. The real color
// travels with the slot record; this is only a local tint.
var ansiPalette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgYellow),
	color.New(color.FgGreen),
	color.New(color.FgCyan),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
}

// tintFor picks the terminal approximation of an hsl() claimant color.
// Unparseable colors fall back to no tint.
func tintFor(claimantColor string) *color.Color {
	var hue, s, l int
	if _, err := fmt.Sscanf(claimantColor, "hsl(%d, %d%%, %d%%)", &hue, &s, &l); err != nil {
		return color.New()
	}
	return ansiPalette[(hue%360)/60]
}

// FormatGrid writes the week grid to w. Every generated slot appears: claimed
// slots show the claimant (tinted, with a "(you)" marker for selfID), open
// slots show a dash.
func FormatGrid(w io.Writer, weeks []calendar.Week, view map[string]slotboard.Slot, selfID string) {
	claimed := 0
	total := 0

	for _, week := range weeks {
		fmt.Fprintf(w, "Week of %s\n", week.Monday.Format(slotboard.DateFormat))
		for _, day := range week.Days {
			fmt.Fprintf(w, "  %s %s\n", day.Date.Format("Mon"), day.Date.Format(slotboard.DateFormat))
			for _, task := range day.Tasks {
				total++
				slotID := slotboard.SlotID(day.Date, task)
				slot, ok := view[slotID]
				if !ok {
					fmt.Fprintf(w, "    %-20s -\n", task)
					continue
				}
				claimed++
				claimant := tintFor(slot.ClaimantColor).Sprint(slot.ClaimantName)
				if slot.ClaimedBy == selfID {
					claimant += " (you)"
				}
				fmt.Fprintf(w, "    %-20s %s\n", task, claimant)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%d of %d slots claimed\n", claimed, total)
}

// FormatJSON writes the claimed slots as line-delimited JSON, one slot per
// line, ordered by slot ID for stable output.
func FormatJSON(w io.Writer, view map[string]slotboard.Slot) error {
	ids := make([]string, 0, len(view))
	for id := range view {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		slot := view[id]
		data, err := json.Marshal(slot)
		if err != nil {
			return fmt.Errorf("failed to marshal slot to JSON: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
	}
	return nil
}
