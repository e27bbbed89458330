package slotboard

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Redis key pattern helpers
//
// All Redis keys and Pub/Sub channels are namespaced by board name to enable
// multiple rota boards to safely coexist on a single Redis server.
//
// Key pattern: rota:{board}:slot:{slot_id}
// Channel pattern: rota:{board}:slot_events

// DateFormat is the calendar-date layout used inside slot IDs.
const DateFormat = "2006-01-02"

// slotIDPattern matches <YYYY-MM-DD>_<task> where the task part has had
// whitespace replaced by underscores.
var slotIDPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_\S+$`)

// SlotID builds the deterministic slot identifier for a (date, task) pair.
// The date is rendered as YYYY-MM-DD and the task name has its whitespace
// normalized to single underscores so the ID is safe inside a Redis key.
func SlotID(date time.Time, task string) string {
	normalized := strings.Join(strings.Fields(task), "_")
	return fmt.Sprintf("%s_%s", date.Format(DateFormat), normalized)
}

// ValidateSlotID checks that an ID has the <YYYY-MM-DD>_<task> shape and that
// the date part actually parses as a calendar date.
func ValidateSlotID(id string) error {
	if !slotIDPattern.MatchString(id) {
		return fmt.Errorf("invalid slot ID %q: expected <YYYY-MM-DD>_<task>", id)
	}
	if _, err := time.Parse(DateFormat, id[:len(DateFormat)]); err != nil {
		return fmt.Errorf("invalid slot ID %q: bad date: %w", id, err)
	}
	return nil
}

// SplitSlotID returns the date and task components of a slot ID.
// The task component keeps its underscore normalization.
func SplitSlotID(id string) (date time.Time, task string, err error) {
	if err := ValidateSlotID(id); err != nil {
		return time.Time{}, "", err
	}
	date, err = time.Parse(DateFormat, id[:len(DateFormat)])
	if err != nil {
		return time.Time{}, "", err
	}
	return date, id[len(DateFormat)+1:], nil
}

// SlotKey returns the Redis key for a slot record.
// Pattern: rota:{board}:slot:{slot_id}
func SlotKey(board, slotID string) string {
	return fmt.Sprintf("rota:%s:slot:%s", board, slotID)
}

// SlotKeyPrefix returns the key prefix shared by all slot records on a board.
func SlotKeyPrefix(board string) string {
	return fmt.Sprintf("rota:%s:slot:", board)
}

// SlotKeyPattern returns the SCAN glob matching every slot record on a board.
func SlotKeyPattern(board string) string {
	return SlotKeyPrefix(board) + "*"
}

// SlotEventsChannel returns the Pub/Sub channel name for slot mutation events.
// Pattern: rota:{board}:slot_events
func SlotEventsChannel(board string) string {
	return fmt.Sprintf("rota:%s:slot_events", board)
}
