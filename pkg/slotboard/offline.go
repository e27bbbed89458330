package slotboard

import "context"

// OfflineStore is the inert Store implementation used when the board is
// unreachable or offline mode is configured. It behaves as if permanently
// subscribed to an empty board: subscriptions deliver a single empty
// snapshot and then stay silent, and every write is rejected.
type OfflineStore struct{}

// NewOfflineStore creates a store for degraded/offline operation.
func NewOfflineStore() *OfflineStore {
	return &OfflineStore{}
}

// Subscribe delivers one empty snapshot and then nothing until the
// subscription is closed or the context is cancelled.
func (s *OfflineStore) Subscribe(ctx context.Context) (*Subscription, error) {
	snapshotsChan := make(chan Snapshot, 1)
	errorsChan := make(chan error)

	subCtx, cancelFunc := context.WithCancel(ctx)

	snapshotsChan <- Snapshot{}

	go func() {
		<-subCtx.Done()
		close(snapshotsChan)
		close(errorsChan)
	}()

	return NewSubscription(snapshotsChan, errorsChan, cancelFunc), nil
}

// Write always fails with ErrOffline. The claim protocol rejects toggles
// before reaching here (Ready() is false), so this is a backstop.
func (s *OfflineStore) Write(ctx context.Context, slotID string, fields ClaimFields) error {
	return ErrOffline
}

// Ready reports that the offline store can never accept writes.
func (s *OfflineStore) Ready() bool {
	return false
}

// Close is a no-op; the offline store holds no resources.
func (s *OfflineStore) Close() error {
	return nil
}
