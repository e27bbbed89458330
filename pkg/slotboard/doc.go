// Package slotboard provides type-safe Go definitions and Redis schema patterns
// for the Rota slot board.
//
// # Overview
//
// The slot board is the shared state system for a rota: a rolling weekly grid
// of claimable (date, task) slots stored in Redis, written to and observed by
// many independent clients at once. Clients never exchange messages with each
// other - all coordination happens through the board.
//
// # Core Concepts
//
// Slots are claimable units of work identified by a deterministic
// <YYYY-MM-DD>_<task> ID. A slot record exists only while the slot is
// claimed; claiming creates it, releasing deletes it. A record is either
// fully populated (claimed_by, claimant_name, claimant_color, claimed_at_ms
// all set) or it does not exist - no partial state is valid.
//
// Subscriptions deliver the complete current set of slot records, first
// immediately on subscribe and then after every remote mutation. Consumers
// replace their local view wholesale on each snapshot; they never merge.
//
// Writes are merge-style keyed updates with no transaction and no mutual
// exclusion. Concurrent claims of the same slot race, and the state the
// store commits last is the state every subscriber converges on.
//
// # Multi-Board Support
//
// All Redis keys and Pub/Sub channels are namespaced by board name to enable
// multiple rota boards to safely coexist on a single Redis server. Each board
// has complete isolation of its data and events.
//
// # Degraded Mode
//
// Store is implemented both by the live Redis Client and by OfflineStore,
// which yields a single empty snapshot and rejects all writes. The
// implementation is selected once at construction; callers hold a Store and
// never branch on connectivity themselves.
//
// # Redis Schema
//
// Slot records: rota:{board}:slot:{slot_id} (hash)
// Slot events: rota:{board}:slot_events (Pub/Sub, payload = mutated slot ID)
//
// # Design Principles
//
// - Snapshots over diffs: a dropped event only delays convergence, never corrupts it
// - Absence is truth: an unclaimed slot has no record, not a tombstone
// - Full-or-empty claims: partial records are dropped, never surfaced
// - Isolation: board namespacing prevents cross-board interference
package slotboard
