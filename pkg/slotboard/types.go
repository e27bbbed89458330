// Package slotboard provides type-safe Go definitions and Redis schema patterns
// for the Rota slot board. The board is the shared state system where all
// clients of a rota interact: every claimable slot is a well-defined record
// stored in Redis, observed live by every subscriber.
//
// All Redis keys and channels are namespaced by board name to enable multiple
// rota boards to safely coexist on a single Redis server.
package slotboard

import "fmt"

// Slot represents a single claimable (date, task) unit of work on the board.
// A slot record only exists while it is claimed: claiming creates it, and
// releasing it deletes the record entirely rather than leaving a tombstone.
type Slot struct {
	ID            string `json:"id"`             // Deterministic slot ID: <YYYY-MM-DD>_<Task_Name>
	ClaimedBy     string `json:"claimed_by"`     // Stable identifier of the claiming actor
	ClaimantName  string `json:"claimant_name"`  // Display name chosen by the claimant
	ClaimantColor string `json:"claimant_color"` // Color derived from the display name
	ClaimedAtMs   int64  `json:"claimed_at_ms"`  // Unix timestamp in milliseconds when the claim was made
}

// ClaimFields is the payload of a merge-style slot write. Either all four
// fields are set (a claim) or all four are zero (a release). No other
// combination is ever written.
type ClaimFields struct {
	ClaimedBy     string
	ClaimantName  string
	ClaimantColor string
	ClaimedAtMs   int64
}

// Empty reports whether the fields describe a release (all zero).
func (f ClaimFields) Empty() bool {
	return f.ClaimedBy == "" && f.ClaimantName == "" && f.ClaimantColor == "" && f.ClaimedAtMs == 0
}

// Validate checks that the fields are either fully empty or fully populated.
// A partial claim is never valid and must never reach the store.
func (f ClaimFields) Validate() error {
	if f.Empty() {
		return nil
	}
	if f.ClaimedBy == "" {
		return fmt.Errorf("claimed_by cannot be empty on a claim")
	}
	if f.ClaimantName == "" {
		return fmt.Errorf("claimant_name cannot be empty on a claim")
	}
	if f.ClaimantColor == "" {
		return fmt.Errorf("claimant_color cannot be empty on a claim")
	}
	if f.ClaimedAtMs <= 0 {
		return fmt.Errorf("claimed_at_ms must be set on a claim, got %d", f.ClaimedAtMs)
	}
	return nil
}

// Complete reports whether the slot carries a fully populated claim.
// Records failing this check are treated as not-claimed and dropped during
// reconciliation.
func (s *Slot) Complete() bool {
	return s.ClaimedBy != "" && s.ClaimantName != "" && s.ClaimantColor != "" && s.ClaimedAtMs > 0
}

// Validate checks that the slot has a well-formed ID and a complete claim.
func (s *Slot) Validate() error {
	if err := ValidateSlotID(s.ID); err != nil {
		return err
	}
	if !s.Complete() {
		return fmt.Errorf("slot %s has a partial claim: all four claim fields must be set", s.ID)
	}
	return nil
}

// Snapshot is the complete set of slot records that currently exist on the
// board, keyed by slot ID. Subscriptions always deliver whole snapshots,
// never diffs.
type Snapshot map[string]Slot
