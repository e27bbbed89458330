package slotboard

import (
	"fmt"
	"strconv"
)

// Serialization helpers for converting between Go structs and Redis hashes
//
// Redis stores data as string-to-string maps (hashes). The slot record is
// flat, so every field maps directly to a hash field; timestamps are stored
// as decimal millisecond strings.

// SlotToHash converts claim fields to the Redis hash format for a slot.
func SlotToHash(id string, f ClaimFields) map[string]interface{} {
	return map[string]interface{}{
		"id":             id,
		"claimed_by":     f.ClaimedBy,
		"claimant_name":  f.ClaimantName,
		"claimant_color": f.ClaimantColor,
		"claimed_at_ms":  f.ClaimedAtMs,
	}
}

// HashToSlot converts a Redis hash to a Slot struct.
// The id stored inside the hash wins over the key-derived one when present.
func HashToSlot(id string, hash map[string]string) (*Slot, error) {
	if stored := hash["id"]; stored != "" {
		id = stored
	}

	var claimedAtMs int64
	if raw := hash["claimed_at_ms"]; raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid claimed_at_ms field: %w", err)
		}
		claimedAtMs = parsed
	}

	return &Slot{
		ID:            id,
		ClaimedBy:     hash["claimed_by"],
		ClaimantName:  hash["claimant_name"],
		ClaimantColor: hash["claimant_color"],
		ClaimedAtMs:   claimedAtMs,
	}, nil
}
