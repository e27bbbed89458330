// Package watch streams board activity to the terminal. It consumes the
// snapshot subscription and reduces consecutive snapshots to claim and
// release events, since subscribers only ever receive whole snapshots.
package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rotaboard/rota/pkg/slotboard"
)

// OutputFormat specifies how to format activity output.
type OutputFormat string

const (
	// OutputFormatDefault is human-readable output with timestamps
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSON is line-delimited JSON for programmatic processing
	OutputFormatJSON OutputFormat = "json"
)

// EventKind distinguishes the two observable board mutations.
type EventKind string

const (
	EventClaim   EventKind = "claim"
	EventRelease EventKind = "release"
)

// Event is one observed board mutation, derived by diffing snapshots.
type Event struct {
	Kind          EventKind `json:"kind"`
	SlotID        string    `json:"slot_id"`
	ClaimedBy     string    `json:"claimed_by,omitempty"`
	ClaimantName  string    `json:"claimant_name,omitempty"`
	ClaimantColor string    `json:"claimant_color,omitempty"`
	ClaimedAtMs   int64     `json:"claimed_at_ms,omitempty"`
	ObservedAtMs  int64     `json:"observed_at_ms"`
}

// Diff reduces two consecutive claimed-slot views to the events between
// them. A slot present only in next is a claim; present only in prev is a
// release; present in both with a different claimant or claim time is a
// release followed by a claim. Events are ordered by slot ID for stable
// output.
func Diff(prev, next map[string]slotboard.Slot, observedAt time.Time) []Event {
	observedAtMs := observedAt.UnixMilli()
	var events []Event

	for id, slot := range next {
		old, existed := prev[id]
		if existed && old.ClaimedBy == slot.ClaimedBy && old.ClaimedAtMs == slot.ClaimedAtMs {
			continue
		}
		if existed {
			events = append(events, Event{Kind: EventRelease, SlotID: id, ObservedAtMs: observedAtMs})
		}
		events = append(events, Event{
			Kind:          EventClaim,
			SlotID:        id,
			ClaimedBy:     slot.ClaimedBy,
			ClaimantName:  slot.ClaimantName,
			ClaimantColor: slot.ClaimantColor,
			ClaimedAtMs:   slot.ClaimedAtMs,
			ObservedAtMs:  observedAtMs,
		})
	}

	for id := range prev {
		if _, still := next[id]; !still {
			events = append(events, Event{Kind: EventRelease, SlotID: id, ObservedAtMs: observedAtMs})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].SlotID != events[j].SlotID {
			return events[i].SlotID < events[j].SlotID
		}
		return events[i].Kind == EventRelease
	})
	return events
}

// claimedOnly filters a raw snapshot down to complete claims, the same rule
// the reconciler applies, so the diff never reports a partial record.
func claimedOnly(snapshot slotboard.Snapshot) map[string]slotboard.Slot {
	view := make(map[string]slotboard.Slot, len(snapshot))
	for id, slot := range snapshot {
		if slot.Complete() {
			view[id] = slot
		}
	}
	return view
}

// StreamActivity consumes the subscription until the context ends or the
// stream fails, writing one line per observed event. The first snapshot
// establishes the baseline; in default format it is summarized, in JSON it
// is emitted as claim events so consumers start from a complete picture.
func StreamActivity(ctx context.Context, sub *slotboard.Subscription, format OutputFormat, w io.Writer) error {
	var prev map[string]slotboard.Slot

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-sub.Errors():
			if !ok {
				return nil
			}
			return fmt.Errorf("sync lost: %w", err)

		case snapshot, ok := <-sub.Snapshots():
			if !ok {
				return nil
			}
			next := claimedOnly(snapshot)
			now := time.Now()

			if prev == nil {
				if format == OutputFormatDefault {
					fmt.Fprintf(w, "[%s] synced: %d slot(s) currently claimed\n", now.Format("15:04:05"), len(next))
				} else {
					if err := writeJSON(w, Diff(nil, next, now)); err != nil {
						return err
					}
				}
				prev = next
				continue
			}

			events := Diff(prev, next, now)
			prev = next

			switch format {
			case OutputFormatJSON:
				if err := writeJSON(w, events); err != nil {
					return err
				}
			default:
				writeDefault(w, events, now)
			}
		}
	}
}

func writeDefault(w io.Writer, events []Event, now time.Time) {
	stamp := now.Format("15:04:05")
	for _, e := range events {
		switch e.Kind {
		case EventClaim:
			fmt.Fprintf(w, "[%s] ✋ %s claimed by %s\n", stamp, e.SlotID, e.ClaimantName)
		case EventRelease:
			fmt.Fprintf(w, "[%s] 🔓 %s released\n", stamp, e.SlotID)
		}
	}
}

func writeJSON(w io.Writer, events []Event) error {
	for _, e := range events {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
	}
	return nil
}
