package slotboard

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client provides board-scoped Redis operations for the slot collection.
// All keys and channels are automatically namespaced with the board name.
// The client is thread-safe and can be used concurrently from multiple
// goroutines.
type Client struct {
	rdb   *redis.Client
	board string
}

// NewClient creates a slot store client for the specified board.
//
// Parameters:
//   - redisOpts: Redis connection options (address, password, DB, etc.)
//   - board: board identifier shared by all collaborating clients (must not be empty)
//
// Returns an error if board is empty.
func NewClient(redisOpts *redis.Options, board string) (*Client, error) {
	if board == "" {
		return nil, fmt.Errorf("board name cannot be empty")
	}

	return &Client{
		rdb:   redis.NewClient(redisOpts),
		board: board,
	}, nil
}

// Close closes the Redis connection. Implements io.Closer.
// After calling Close(), the client should not be used.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies Redis connectivity. Useful for health checks and for the
// offline-mode decision at startup.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Ready reports that the live client accepts writes. Reachability problems
// surface as individual write or subscription errors, not here.
func (c *Client) Ready() bool {
	return true
}

// Board returns the board name this client is scoped to.
func (c *Client) Board() string {
	return c.board
}

// Write applies a merge-style update to a single slot and publishes a slot
// event so every subscriber re-reads the board.
//
// A claim (populated fields) is merged into the slot's hash with HSET; the
// record is created implicitly on first claim. A release (empty fields)
// deletes the key outright so the slot reverts to non-existence rather than
// a tombstone. There is no transaction around the write: concurrent writers
// to the same slot race and the last commit wins.
func (c *Client) Write(ctx context.Context, slotID string, fields ClaimFields) error {
	if err := ValidateSlotID(slotID); err != nil {
		return err
	}
	if err := fields.Validate(); err != nil {
		return fmt.Errorf("invalid slot write: %w", err)
	}

	key := SlotKey(c.board, slotID)
	if fields.Empty() {
		if err := c.rdb.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to release slot in Redis: %w", err)
		}
	} else {
		if err := c.rdb.HSet(ctx, key, SlotToHash(slotID, fields)).Err(); err != nil {
			return fmt.Errorf("failed to write slot to Redis: %w", err)
		}
	}

	// Publish the mutated slot ID; subscribers respond by re-reading the
	// full collection, so a dropped event only delays convergence until the
	// next one.
	channel := SlotEventsChannel(c.board)
	if err := c.rdb.Publish(ctx, channel, slotID).Err(); err != nil {
		return fmt.Errorf("failed to publish slot event: %w", err)
	}

	return nil
}

// GetSlot retrieves a single slot record by ID.
// Returns (nil, redis.Nil) if the slot doesn't exist (i.e. it is unclaimed).
// Use IsNotFound() to check for not-found errors.
func (c *Client) GetSlot(ctx context.Context, slotID string) (*Slot, error) {
	key := SlotKey(c.board, slotID)

	hashData, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read slot from Redis: %w", err)
	}

	// HGetAll returns an empty map for non-existent keys
	if len(hashData) == 0 {
		return nil, redis.Nil
	}

	slot, err := HashToSlot(slotID, hashData)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize slot: %w", err)
	}

	return slot, nil
}

// ReadSnapshot assembles the complete current set of slot records using
// Redis SCAN, so it never blocks the server. Records that fail to
// deserialize are skipped: a malformed record is indistinguishable from an
// unclaimed slot to consumers.
func (c *Client) ReadSnapshot(ctx context.Context) (Snapshot, error) {
	prefix := SlotKeyPrefix(c.board)
	iter := c.rdb.Scan(ctx, 0, SlotKeyPattern(c.board), 0).Iterator()

	snapshot := make(Snapshot)
	for iter.Next(ctx) {
		key := iter.Val()
		slotID := key[len(prefix):]

		hashData, err := c.rdb.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read slot %s: %w", slotID, err)
		}
		if len(hashData) == 0 {
			// Deleted between SCAN and HGETALL
			continue
		}

		slot, err := HashToSlot(slotID, hashData)
		if err != nil {
			continue
		}
		snapshot[slot.ID] = *slot
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan slots: %w", err)
	}

	return snapshot, nil
}

// Subscribe opens a live subscription to the board. The subscription
// immediately delivers the current snapshot, then delivers a fresh full
// snapshot after every slot event published by any client.
// Caller must call subscription.Close() when done.
// Context cancellation also stops the subscription.
//
// Snapshots are delivered on a buffered channel (size 10) to prevent
// blocking. A snapshot read failure is terminal: it is delivered on the
// error channel and the subscription ends.
func (c *Client) Subscribe(ctx context.Context) (*Subscription, error) {
	channel := SlotEventsChannel(c.board)
	pubsub := c.rdb.Subscribe(ctx, channel)

	// Confirm the subscription before the initial snapshot read, so no event
	// can slip between the two.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to slot events: %w", err)
	}

	snapshotsChan := make(chan Snapshot, 10)
	errorsChan := make(chan error, 1)

	subCtx, cancelFunc := context.WithCancel(ctx)

	go func() {
		defer close(snapshotsChan)
		defer close(errorsChan)
		defer pubsub.Close()

		deliver := func() bool {
			snapshot, err := c.ReadSnapshot(subCtx)
			if err != nil {
				select {
				case errorsChan <- fmt.Errorf("snapshot read failed: %w", err):
				case <-subCtx.Done():
				}
				return false
			}
			select {
			case snapshotsChan <- snapshot:
				return true
			case <-subCtx.Done():
				return false
			}
		}

		// Initial snapshot
		if !deliver() {
			return
		}

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				if !deliver() {
					return
				}
			}
		}
	}()

	return NewSubscription(snapshotsChan, errorsChan, cancelFunc), nil
}
