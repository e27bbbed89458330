// Package reconcile turns the stream of board snapshots into the
// authoritative local view of claimed slots. The reconciler's mapping is the
// only genuinely stateful value on the client side; everything else is
// recomputed from inputs.
package reconcile

import (
	"context"
	"fmt"
	"sync"

	"github.com/rotaboard/rota/pkg/slotboard"
)

// Reconciler owns the current claimed-slot mapping. It is safe for
// concurrent use: Run applies snapshots from the subscription goroutine
// while readers consult the view.
type Reconciler struct {
	mu    sync.RWMutex
	slots map[string]slotboard.Slot
}

// New creates a reconciler with an empty view.
func New() *Reconciler {
	return &Reconciler{slots: make(map[string]slotboard.Slot)}
}

// Apply fully replaces the view with the given snapshot. Only records with a
// complete claim survive: a record with an empty claimed_by, or with any
// companion field missing, is treated as not-claimed and dropped. Absence
// represents Unclaimed, so the view can never retain a stale claim after a
// release and never surfaces a partial one.
func (r *Reconciler) Apply(snapshot slotboard.Snapshot) {
	next := make(map[string]slotboard.Slot, len(snapshot))
	for id, slot := range snapshot {
		if !slot.Complete() {
			continue
		}
		next[id] = slot
	}

	r.mu.Lock()
	r.slots = next
	r.mu.Unlock()
}

// Get returns the slot record and whether a claim exists for the slot.
// Implements claim.View.
func (r *Reconciler) Get(slotID string) (slotboard.Slot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slot, ok := r.slots[slotID]
	return slot, ok
}

// View returns a copy of the current claimed-slot mapping.
func (r *Reconciler) View() map[string]slotboard.Slot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	view := make(map[string]slotboard.Slot, len(r.slots))
	for id, slot := range r.slots {
		view[id] = slot
	}
	return view
}

// Len returns the number of currently claimed slots.
func (r *Reconciler) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

// Run consumes a subscription until it ends, applying every snapshot as it
// arrives. Returns nil when the subscription closes cleanly (caller closed
// it or the context ended). On a terminal stream error the view is frozen at
// its last applied state - it is not reverted to empty - and a "sync lost"
// error is returned so the consumer can surface the degradation.
func (r *Reconciler) Run(ctx context.Context, sub *slotboard.Subscription) error {
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
				// Channel closed: either a clean shutdown or a terminal
				// error that will be waiting on the error channel.
				select {
				case err, errOk := <-sub.Errors():
					if errOk && err != nil {
						return fmt.Errorf("sync lost: %w", err)
					}
				default:
				}
				return nil
			}
			r.Apply(snapshot)
		}
	}
}
