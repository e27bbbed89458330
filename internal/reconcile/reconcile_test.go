package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaboard/rota/pkg/slotboard"
)

func claimedSlot(id, by, name string) slotboard.Slot {
	return slotboard.Slot{
		ID:            id,
		ClaimedBy:     by,
		ClaimantName:  name,
		ClaimantColor: "hsl(1, 70%, 50%)",
		ClaimedAtMs:   1704067200000,
	}
}

func TestApplyReplacesView(t *testing.T) {
	r := New()

	r.Apply(slotboard.Snapshot{
		"2024-01-01_Breakfast": claimedSlot("2024-01-01_Breakfast", "A", "Alice"),
		"2024-01-01_Dinner":    claimedSlot("2024-01-01_Dinner", "B", "Bob"),
	})
	assert.Equal(t, 2, r.Len())

	// Next snapshot no longer contains Dinner: the view must not retain it
	r.Apply(slotboard.Snapshot{
		"2024-01-01_Breakfast": claimedSlot("2024-01-01_Breakfast", "A", "Alice"),
	})
	assert.Equal(t, 1, r.Len())

	_, ok := r.Get("2024-01-01_Dinner")
	assert.False(t, ok)

	slot, ok := r.Get("2024-01-01_Breakfast")
	require.True(t, ok)
	assert.Equal(t, "Alice", slot.ClaimantName)
}

func TestApplyDropsPartialRecords(t *testing.T) {
	r := New()

	missingColor := claimedSlot("2024-01-01_Lunch", "A", "Alice")
	missingColor.ClaimantColor = ""
	missingTime := claimedSlot("2024-01-02_Lunch", "A", "Alice")
	missingTime.ClaimedAtMs = 0
	emptyClaim := slotboard.Slot{ID: "2024-01-03_Lunch"}

	r.Apply(slotboard.Snapshot{
		"2024-01-01_Breakfast": claimedSlot("2024-01-01_Breakfast", "A", "Alice"),
		"2024-01-01_Lunch":     missingColor,
		"2024-01-02_Lunch":     missingTime,
		"2024-01-03_Lunch":     emptyClaim,
	})

	// Only the complete record survives; every view entry is fully populated
	assert.Equal(t, 1, r.Len())
	for _, slot := range r.View() {
		assert.True(t, slot.Complete())
	}
}

func TestViewReturnsACopy(t *testing.T) {
	r := New()
	r.Apply(slotboard.Snapshot{
		"2024-01-01_Breakfast": claimedSlot("2024-01-01_Breakfast", "A", "Alice"),
	})

	view := r.View()
	delete(view, "2024-01-01_Breakfast")

	_, ok := r.Get("2024-01-01_Breakfast")
	assert.True(t, ok, "mutating the returned view must not affect the reconciler")
}

func TestRun(t *testing.T) {
	setup := func(t *testing.T) (*slotboard.Client, *miniredis.Miniredis) {
		mr := miniredis.NewMiniRedis()
		require.NoError(t, mr.Start())
		t.Cleanup(mr.Close)

		client, err := slotboard.NewClient(&redis.Options{Addr: mr.Addr()}, "test-board")
		require.NoError(t, err)
		t.Cleanup(func() { client.Close() })
		return client, mr
	}

	fields := slotboard.ClaimFields{
		ClaimedBy:     "A",
		ClaimantName:  "Alice",
		ClaimantColor: "hsl(1, 70%, 50%)",
		ClaimedAtMs:   1704067200000,
	}

	t.Run("applies snapshots until the subscription closes", func(t *testing.T) {
		client, _ := setup(t)
		ctx := context.Background()

		sub, err := client.Subscribe(ctx)
		require.NoError(t, err)

		r := New()
		done := make(chan error, 1)
		go func() { done <- r.Run(ctx, sub) }()

		require.NoError(t, client.Write(ctx, "2024-01-01_Breakfast", fields))

		require.Eventually(t, func() bool {
			_, ok := r.Get("2024-01-01_Breakfast")
			return ok
		}, 2*time.Second, 10*time.Millisecond)

		require.NoError(t, client.Write(ctx, "2024-01-01_Breakfast", slotboard.ClaimFields{}))

		require.Eventually(t, func() bool {
			return r.Len() == 0
		}, 2*time.Second, 10*time.Millisecond)

		sub.Close()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after subscription close")
		}
	})

	t.Run("freezes the view on a terminal stream error", func(t *testing.T) {
		ctx := context.Background()

		snapshots := make(chan slotboard.Snapshot, 1)
		errs := make(chan error, 1)
		sub := slotboard.NewSubscription(snapshots, errs, func() {})
		defer sub.Close()

		r := New()
		done := make(chan error, 1)
		go func() { done <- r.Run(ctx, sub) }()

		snapshots <- slotboard.Snapshot{
			"2024-01-01_Breakfast": claimedSlot("2024-01-01_Breakfast", "A", "Alice"),
		}

		require.Eventually(t, func() bool {
			_, ok := r.Get("2024-01-01_Breakfast")
			return ok
		}, 2*time.Second, 10*time.Millisecond)

		// The stream fails terminally
		errs <- assert.AnError
		close(errs)
		close(snapshots)

		select {
		case err := <-done:
			require.Error(t, err)
			assert.Contains(t, err.Error(), "sync lost")
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after stream failure")
		}

		// The last known view is frozen, not reverted to empty
		_, ok := r.Get("2024-01-01_Breakfast")
		assert.True(t, ok)
	})
}
