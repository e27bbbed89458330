package slotboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotID(t *testing.T) {
	date := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)

	t.Run("formats date and task", func(t *testing.T) {
		assert.Equal(t, "2024-01-01_Breakfast", SlotID(date, "Breakfast"))
	})

	t.Run("normalizes whitespace to underscores", func(t *testing.T) {
		assert.Equal(t, "2024-01-01_Morning_Feed", SlotID(date, "Morning Feed"))
		assert.Equal(t, "2024-01-01_Morning_Feed", SlotID(date, "  Morning \t Feed  "))
	})
}

func TestValidateSlotID(t *testing.T) {
	t.Run("accepts well-formed IDs", func(t *testing.T) {
		assert.NoError(t, ValidateSlotID("2024-01-01_Breakfast"))
		assert.NoError(t, ValidateSlotID("2024-12-31_Morning_Feed"))
	})

	t.Run("rejects malformed IDs", func(t *testing.T) {
		assert.Error(t, ValidateSlotID(""))
		assert.Error(t, ValidateSlotID("Breakfast"))
		assert.Error(t, ValidateSlotID("2024-01-01_"))
		assert.Error(t, ValidateSlotID("2024-1-1_Breakfast"))
		assert.Error(t, ValidateSlotID("2024-13-40_Breakfast"))
	})
}

func TestSplitSlotID(t *testing.T) {
	date, task, err := SplitSlotID("2024-01-01_Morning_Feed")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, "Morning_Feed", task)

	_, _, err = SplitSlotID("not-a-slot")
	assert.Error(t, err)
}

func TestKeyPatterns(t *testing.T) {
	assert.Equal(t, "rota:family:slot:2024-01-01_Breakfast", SlotKey("family", "2024-01-01_Breakfast"))
	assert.Equal(t, "rota:family:slot:", SlotKeyPrefix("family"))
	assert.Equal(t, "rota:family:slot:*", SlotKeyPattern("family"))
	assert.Equal(t, "rota:family:slot_events", SlotEventsChannel("family"))
}
