package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTasks() TaskSet {
	ts := NewTaskSet([]string{"Breakfast", "Dinner"})
	ts.Set(time.Saturday, []string{"Breakfast", "Lunch", "Dinner"})
	return ts
}

func TestMostRecentMonday(t *testing.T) {
	cases := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{
			name: "wednesday rolls back two days",
			ref:  time.Date(2024, 1, 3, 14, 30, 0, 0, time.UTC),
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday stays put",
			ref:  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday rolls back six days",
			ref:  time.Date(2024, 1, 7, 23, 59, 0, 0, time.UTC),
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "saturday rolls back five days",
			ref:  time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MostRecentMonday(tc.ref))
		})
	}
}

func TestGenerateWeeks(t *testing.T) {
	// 2024-01-03 is a Wednesday
	ref := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	t.Run("produces exactly count weeks with 7 days each", func(t *testing.T) {
		weeks := GenerateWeeks(ref, 8, testTasks())
		require.Len(t, weeks, 8)

		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), weeks[0].Monday)
		assert.Equal(t, time.Date(2024, 2, 19, 0, 0, 0, 0, time.UTC), weeks[7].Monday)

		for i, week := range weeks {
			assert.Equal(t, time.Monday, week.Monday.Weekday())
			if i > 0 {
				assert.Equal(t, week.Monday, weeks[i-1].Monday.AddDate(0, 0, 7))
			}
			for d, day := range week.Days {
				assert.Equal(t, week.Monday.AddDate(0, 0, d), day.Date)
			}
			assert.Equal(t, time.Monday, week.Days[0].Date.Weekday())
			assert.Equal(t, time.Sunday, week.Days[6].Date.Weekday())
		}
	})

	t.Run("reference falls inside week zero", func(t *testing.T) {
		weeks := GenerateWeeks(ref, 1, testTasks())
		require.Len(t, weeks, 1)
		sunday := weeks[0].Days[6].Date
		assert.False(t, ref.Before(weeks[0].Monday))
		assert.False(t, ref.After(sunday.AddDate(0, 0, 1)))
	})

	t.Run("is deterministic", func(t *testing.T) {
		a := GenerateWeeks(ref, 4, testTasks())
		b := GenerateWeeks(ref, 4, testTasks())
		assert.Equal(t, a, b)
	})

	t.Run("applies weekday overrides and fallback", func(t *testing.T) {
		weeks := GenerateWeeks(ref, 1, testTasks())
		monday := weeks[0].Days[0]
		saturday := weeks[0].Days[5]
		assert.Equal(t, []string{"Breakfast", "Dinner"}, monday.Tasks)
		assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, saturday.Tasks)
	})

	t.Run("rejects non-positive counts", func(t *testing.T) {
		assert.Nil(t, GenerateWeeks(ref, 0, testTasks()))
		assert.Nil(t, GenerateWeeks(ref, -3, testTasks()))
	})
}

func TestDaySlotIDs(t *testing.T) {
	day := Day{
		Date:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Tasks: []string{"Breakfast", "Morning Feed"},
	}
	assert.Equal(t, []string{"2024-01-01_Breakfast", "2024-01-01_Morning_Feed"}, day.SlotIDs())
}
