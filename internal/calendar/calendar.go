// Package calendar generates the rolling weekly grid of claimable slots.
// Generation is a pure function of its inputs: weeks are recomputed on every
// call and are never stored or shared - they exist only to index into the
// slot collection.
package calendar

import (
	"time"

	"github.com/rotaboard/rota/pkg/slotboard"
)

// TaskSet maps each weekday to its fixed list of task names. A weekday with
// no entry falls back to the set under time.Weekday(-1) via Default.
type TaskSet map[time.Weekday][]string

// defaultKey is the pseudo-weekday used for the fallback task list.
const defaultKey = time.Weekday(-1)

// NewTaskSet builds a TaskSet with the given fallback list for weekdays that
// have no explicit entry.
func NewTaskSet(fallback []string) TaskSet {
	ts := make(TaskSet)
	if len(fallback) > 0 {
		ts[defaultKey] = fallback
	}
	return ts
}

// Set assigns the task list for a single weekday.
func (ts TaskSet) Set(day time.Weekday, tasks []string) {
	ts[day] = tasks
}

// For returns the task list for a weekday, falling back to the default list.
func (ts TaskSet) For(day time.Weekday) []string {
	if tasks, ok := ts[day]; ok {
		return tasks
	}
	return ts[defaultKey]
}

// Day is a single generated calendar day carrying its fixed tasks.
type Day struct {
	Date  time.Time
	Tasks []string
}

// SlotIDs returns the deterministic slot IDs for every task on this day.
func (d Day) SlotIDs() []string {
	ids := make([]string, len(d.Tasks))
	for i, task := range d.Tasks {
		ids[i] = slotboard.SlotID(d.Date, task)
	}
	return ids
}

// Week is a generated grouping of 7 consecutive days, identified by the date
// of its Monday. Days are always in Mon..Sun order.
type Week struct {
	Monday time.Time
	Days   [7]Day
}

// MostRecentMonday rolls a reference instant back to the Monday of its ISO
// week: if the day is Sunday, Monday is 6 days earlier, otherwise it is
// (weekday - 1) days earlier. The result is truncated to midnight in the
// reference's location.
func MostRecentMonday(ref time.Time) time.Time {
	back := int(ref.Weekday()) - 1
	if ref.Weekday() == time.Sunday {
		back = 6
	}
	day := ref.AddDate(0, 0, -back)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, ref.Location())
}

// GenerateWeeks produces exactly count weeks anchored to ref. Week 0 starts
// on the most recent Monday relative to ref; each subsequent week's Monday is
// exactly 7 days later. Deterministic: the same ref, count and tasks always
// yield the same sequence. No side effects and no store access.
func GenerateWeeks(ref time.Time, count int, tasks TaskSet) []Week {
	if count < 1 {
		return nil
	}

	monday := MostRecentMonday(ref)
	weeks := make([]Week, count)
	for w := range weeks {
		weekMonday := monday.AddDate(0, 0, 7*w)
		week := Week{Monday: weekMonday}
		for d := 0; d < 7; d++ {
			date := weekMonday.AddDate(0, 0, d)
			week.Days[d] = Day{
				Date:  date,
				Tasks: tasks.For(date.Weekday()),
			}
		}
		weeks[w] = week
	}
	return weeks
}
