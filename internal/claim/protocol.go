// Package claim implements the slot claim state machine. Claim state is
// derived, never stored: it is computed at decision time from the current
// slot record and the local identity, and the only mutation path is a single
// keyed write to the store. The local view is never touched optimistically -
// the consumer learns the outcome when the next snapshot reflects it.
package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rotaboard/rota/internal/identity"
	"github.com/rotaboard/rota/pkg/slotboard"
)

// ErrNotReady is returned when a toggle is rejected before any network call:
// either the local identity lacks an ID or display name, or the store cannot
// accept writes (offline mode). Distinct from a genuine write failure.
var ErrNotReady = errors.New("not ready: identity or store unavailable")

// State is the claim state of one slot as seen by one observing identity.
type State string

const (
	// StateUnclaimed means no record exists for the slot
	StateUnclaimed State = "unclaimed"

	// StateClaimedByMe means the record's claimed_by matches the observer
	StateClaimedByMe State = "claimed_by_me"

	// StateClaimedByOther means the record belongs to a different identity
	StateClaimedByOther State = "claimed_by_other"
)

// Outcome is the action a toggle actually took.
type Outcome string

const (
	// OutcomeClaimed means a claim write was issued
	OutcomeClaimed Outcome = "claimed"

	// OutcomeReleased means a release write was issued
	OutcomeReleased Outcome = "released"

	// OutcomeIgnored means the slot belongs to someone else; no write occurred.
	// This is intentional behavior, not an error.
	OutcomeIgnored Outcome = "ignored"
)

// StateOf derives the claim state of a slot for the given observer.
// exists is false when the view holds no record for the slot.
func StateOf(slot slotboard.Slot, exists bool, self identity.Identity) State {
	if !exists || slot.ClaimedBy == "" {
		return StateUnclaimed
	}
	if slot.ClaimedBy == self.ID {
		return StateClaimedByMe
	}
	return StateClaimedByOther
}

// View is the read side the protocol decides against - in practice the
// reconciler's current slot mapping.
type View interface {
	// Get returns the slot record and whether one exists.
	Get(slotID string) (slotboard.Slot, bool)
}

// Protocol toggles slots between unclaimed and claimed-by-me.
//
// The protocol provides no de-duplication and no locking: two rapid toggles
// before the first write's snapshot arrives both observe the same stale state
// and may issue a canceling or duplicate write. That race is resolved by the
// store's commit order, not here.
type Protocol struct {
	store slotboard.Store
	view  View
	now   func() time.Time
}

// NewProtocol creates a claim protocol over the given store and view.
func NewProtocol(store slotboard.Store, view View) *Protocol {
	return &Protocol{
		store: store,
		view:  view,
		now:   time.Now,
	}
}

// Toggle computes the next desired state for exactly one slot and issues a
// single keyed write.
//
//   - Unclaimed: claim it (all four fields, claimed_at = now).
//   - ClaimedByMe: release it (all-empty write; the record ceases to exist).
//   - ClaimedByOther: no-op, silently ignored, no write attempted.
//
// Precondition: the identity must be ready (ID and display name set) and the
// store must accept writes; otherwise ErrNotReady is returned before any
// network call. A write failure is returned as-is: no retry, no local state
// change - the user sees no effect and may simply toggle again.
func (p *Protocol) Toggle(ctx context.Context, self identity.Identity, slotID string) (Outcome, error) {
	if !self.Ready() || !p.store.Ready() {
		return "", ErrNotReady
	}

	slot, exists := p.view.Get(slotID)
	switch StateOf(slot, exists, self) {
	case StateClaimedByOther:
		return OutcomeIgnored, nil

	case StateClaimedByMe:
		if err := p.store.Write(ctx, slotID, slotboard.ClaimFields{}); err != nil {
			return "", fmt.Errorf("failed to release slot %s: %w", slotID, err)
		}
		return OutcomeReleased, nil

	default:
		fields := slotboard.ClaimFields{
			ClaimedBy:     self.ID,
			ClaimantName:  self.Name,
			ClaimantColor: self.Color(),
			ClaimedAtMs:   p.now().UnixMilli(),
		}
		if err := p.store.Write(ctx, slotID, fields); err != nil {
			return "", fmt.Errorf("failed to claim slot %s: %w", slotID, err)
		}
		return OutcomeClaimed, nil
	}
}
