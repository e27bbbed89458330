package slotboard

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrOffline is returned by write operations on a store that was constructed
// in offline mode. Subscriptions on an offline store succeed but only ever
// deliver a single empty snapshot.
var ErrOffline = errors.New("slot store is offline")

// Store abstracts the shared slot collection. Exactly two implementations
// exist: the live Redis-backed Client and the inert OfflineStore selected at
// construction when the board is unreachable or offline mode is configured.
type Store interface {
	// Subscribe opens a live subscription delivering the complete set of
	// existing slot records, first immediately and then after every remote
	// mutation by any client. The caller must Close() the subscription.
	Subscribe(ctx context.Context) (*Subscription, error)

	// Write applies a merge-style update to a single slot. Empty fields
	// release the slot (the record ceases to exist). Concurrent writers to
	// the same slot race; the store's last commit wins.
	Write(ctx context.Context, slotID string, fields ClaimFields) error

	// Ready reports whether the store can accept writes. It is a cheap
	// capability check, not a connectivity probe.
	Ready() bool

	// Close releases the store's resources. Implements io.Closer.
	Close() error
}

// Subscription represents an active subscription to board snapshots.
// Caller must call Close() when done to clean up resources.
type Subscription struct {
	snapshots <-chan Snapshot
	errors    <-chan error
	cancel    func()
	once      sync.Once
}

// NewSubscription assembles a subscription from raw channels. Store
// implementations use it; it is also handy for driving consumers in tests.
// cancel is invoked exactly once, on the first Close().
func NewSubscription(snapshots <-chan Snapshot, errors <-chan error, cancel func()) *Subscription {
	return &Subscription{
		snapshots: snapshots,
		errors:    errors,
		cancel:    cancel,
	}
}

// Snapshots returns the channel of full board snapshots.
// The channel is closed when the subscription is closed, the context is
// cancelled, or the stream fails terminally.
func (s *Subscription) Snapshots() <-chan Snapshot {
	return s.snapshots
}

// Errors returns the channel of subscription errors. Any error delivered
// here is terminal: the snapshot channel closes and no further snapshots
// arrive. The consumer should freeze its last known view rather than reset.
func (s *Subscription) Errors() <-chan error {
	return s.errors
}

// Close stops the subscription and cleans up resources. Implements io.Closer.
// Safe to call multiple times - subsequent calls are no-ops.
func (s *Subscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// IsNotFound returns true if the error is a Redis "key not found" error
// (redis.Nil). Use this to check if GetSlot returned "not found".
func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
