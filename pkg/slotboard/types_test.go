package slotboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimFieldsValidate(t *testing.T) {
	t.Run("all-empty fields are a valid release", func(t *testing.T) {
		assert.NoError(t, ClaimFields{}.Validate())
		assert.True(t, ClaimFields{}.Empty())
	})

	t.Run("fully populated fields are a valid claim", func(t *testing.T) {
		f := ClaimFields{
			ClaimedBy:     "A",
			ClaimantName:  "Alice",
			ClaimantColor: "hsl(120, 70%, 50%)",
			ClaimedAtMs:   1704067200000,
		}
		assert.NoError(t, f.Validate())
		assert.False(t, f.Empty())
	})

	t.Run("every partial combination is rejected", func(t *testing.T) {
		partials := []ClaimFields{
			{ClaimedBy: "A"},
			{ClaimantName: "Alice"},
			{ClaimantColor: "hsl(120, 70%, 50%)"},
			{ClaimedAtMs: 1704067200000},
			{ClaimedBy: "A", ClaimantName: "Alice", ClaimantColor: "hsl(120, 70%, 50%)"},
			{ClaimedBy: "A", ClaimantName: "Alice", ClaimedAtMs: 1704067200000},
		}
		for _, f := range partials {
			assert.Error(t, f.Validate(), "fields %+v should be invalid", f)
		}
	})
}

func TestSlotComplete(t *testing.T) {
	slot := Slot{
		ID:            "2024-01-01_Breakfast",
		ClaimedBy:     "A",
		ClaimantName:  "Alice",
		ClaimantColor: "hsl(120, 70%, 50%)",
		ClaimedAtMs:   1704067200000,
	}
	assert.True(t, slot.Complete())
	assert.NoError(t, slot.Validate())

	missingColor := slot
	missingColor.ClaimantColor = ""
	assert.False(t, missingColor.Complete())
	assert.Error(t, missingColor.Validate())

	badID := slot
	badID.ID = "nope"
	assert.Error(t, badID.Validate())
}
