package service

import (
	"testing"
	"time"

	"github.com/martyacryl/the-daily-david-sub003/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Saturday, mid-month, so week and month windows are unambiguous.
var now = time.Date(2024, 6, 15, 10, 30, 0, 0, time.Local)

func entryDaysAgo(days int) model.Entry {
	return model.Entry{EntryDate: FormatDay(Midnight(now).AddDate(0, 0, -days))}
}

func TestAnalyzeEmpty(t *testing.T) {
	snap := Analyze(nil, now)

	assert.Zero(t, snap.CurrentStreak)
	assert.Zero(t, snap.LongestStreak)
	assert.Zero(t, snap.TotalEntries)
	assert.Zero(t, snap.CompletionRate)
	assert.Zero(t, snap.ThisWeek)
	assert.Zero(t, snap.GoalCompletion.Daily.Percentage)
	assert.Empty(t, snap.CategoryBreakdown)
	assert.Empty(t, snap.MonthlyProgress)
	assert.Equal(t, model.LeadershipScores{}, snap.LeadershipScores)

	require.Len(t, snap.Heatmap, 30)
	for _, day := range snap.Heatmap {
		assert.False(t, day.HasEntry)
		assert.Equal(t, "none", day.Intensity)
	}
}

func TestCurrentStreakFromToday(t *testing.T) {
	entries := []model.Entry{entryDaysAgo(0), entryDaysAgo(1), entryDaysAgo(2)}
	snap := Analyze(entries, now)
	assert.Equal(t, 3, snap.CurrentStreak)
}

func TestCurrentStreakFromYesterday(t *testing.T) {
	entries := []model.Entry{entryDaysAgo(1), entryDaysAgo(2)}
	snap := Analyze(entries, now)
	assert.Equal(t, 2, snap.CurrentStreak)
}

func TestCurrentStreakZeroAfterGap(t *testing.T) {
	entries := []model.Entry{entryDaysAgo(2)}
	snap := Analyze(entries, now)
	assert.Zero(t, snap.CurrentStreak)
}

func TestCurrentStreakStopsAtGap(t *testing.T) {
	entries := []model.Entry{entryDaysAgo(0), entryDaysAgo(1), entryDaysAgo(3), entryDaysAgo(4)}
	snap := Analyze(entries, now)
	assert.Equal(t, 2, snap.CurrentStreak)
}

func TestCurrentStreakIgnoresDuplicateDays(t *testing.T) {
	entries := []model.Entry{entryDaysAgo(0), entryDaysAgo(0), entryDaysAgo(1), entryDaysAgo(1)}
	snap := Analyze(entries, now)
	assert.Equal(t, 2, snap.CurrentStreak)
}

func TestLongestStreakAcrossGap(t *testing.T) {
	// day0..day2 run of 3, gap, then day5..day6 run of 2.
	entries := []model.Entry{
		entryDaysAgo(10), entryDaysAgo(9), entryDaysAgo(8),
		entryDaysAgo(5), entryDaysAgo(4),
	}
	snap := Analyze(entries, now)
	assert.Equal(t, 3, snap.LongestStreak)
}

func TestCompletionRate(t *testing.T) {
	t.Run("single entry today", func(t *testing.T) {
		snap := Analyze([]model.Entry{entryDaysAgo(0)}, now)
		assert.Equal(t, 100, snap.CompletionRate)
	})
	t.Run("one entry nine days ago", func(t *testing.T) {
		snap := Analyze([]model.Entry{entryDaysAgo(9)}, now)
		assert.Equal(t, 10, snap.CompletionRate)
	})
	t.Run("duplicates count one day", func(t *testing.T) {
		snap := Analyze([]model.Entry{entryDaysAgo(9), entryDaysAgo(9)}, now)
		assert.Equal(t, 10, snap.CompletionRate)
	})
}

func TestThisWeekCount(t *testing.T) {
	// now is Saturday; the Sunday-start week holds today back through six
	// days ago. Seven days ago was last week.
	entries := []model.Entry{entryDaysAgo(0), entryDaysAgo(6), entryDaysAgo(7)}
	snap := Analyze(entries, now)
	assert.Equal(t, 2, snap.ThisWeek)
}

func TestGoalCompletion(t *testing.T) {
	done := model.Goal{ID: "1", Text: "done", Completed: true}
	open := model.Goal{ID: "2", Text: "open"}

	e1 := entryDaysAgo(0)
	e1.Goals = model.GoalLists{Daily: []model.Goal{done, open}, Weekly: []model.Goal{done}}
	e2 := entryDaysAgo(1)
	e2.Goals = model.GoalLists{Daily: []model.Goal{done, done}}

	snap := Analyze([]model.Entry{e1, e2}, now)
	assert.Equal(t, model.ScopeCompletion{Completed: 3, Total: 4, Percentage: 75}, snap.GoalCompletion.Daily)
	assert.Equal(t, model.ScopeCompletion{Completed: 1, Total: 1, Percentage: 100}, snap.GoalCompletion.Weekly)
	// Zero monthly goals must yield 0, not a division error.
	assert.Equal(t, model.ScopeCompletion{}, snap.GoalCompletion.Monthly)
}

func TestCategoryBreakdown(t *testing.T) {
	mk := func(category string, n int) []model.Goal {
		goals := make([]model.Goal, n)
		for i := range goals {
			goals[i] = model.Goal{ID: "x", Category: category}
		}
		return goals
	}

	e := entryDaysAgo(0)
	e.Goals = model.GoalLists{
		Daily:   mk("spiritual", 3),
		Weekly:  mk("health", 2),
		Monthly: mk("", 1), // missing category lands in Other
	}
	snap := Analyze([]model.Entry{e}, now)

	require.Len(t, snap.CategoryBreakdown, 3)
	assert.Equal(t, "spiritual", snap.CategoryBreakdown[0].Category)
	assert.Equal(t, 3, snap.CategoryBreakdown[0].Count)
	assert.Equal(t, "health", snap.CategoryBreakdown[1].Category)
	assert.Equal(t, "Other", snap.CategoryBreakdown[2].Category)
	// Colors cycle by rank.
	assert.Equal(t, "#3b82f6", snap.CategoryBreakdown[0].Color)
	assert.Equal(t, "#22c55e", snap.CategoryBreakdown[1].Color)
}

func TestCategoryBreakdownTopSix(t *testing.T) {
	e := entryDaysAgo(0)
	for _, cat := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		e.Goals.Daily = append(e.Goals.Daily, model.Goal{ID: "x", Category: cat})
	}
	snap := Analyze([]model.Entry{e}, now)
	assert.Len(t, snap.CategoryBreakdown, 6)
}

func TestMonthlyProgress(t *testing.T) {
	may := model.Entry{EntryDate: "2024-05-10"}
	may.Goals.Daily = []model.Goal{{ID: "1"}, {ID: "2"}}
	may2 := model.Entry{EntryDate: "2024-05-20"}
	june := model.Entry{EntryDate: "2024-06-01"}
	june.Goals.Weekly = []model.Goal{{ID: "3"}}

	snap := Analyze([]model.Entry{june, may, may2}, now)
	require.Len(t, snap.MonthlyProgress, 2)
	assert.Equal(t, model.MonthProgress{Month: "May 2024", Entries: 2, Goals: 2}, snap.MonthlyProgress[0])
	assert.Equal(t, model.MonthProgress{Month: "Jun 2024", Entries: 1, Goals: 1}, snap.MonthlyProgress[1])
}

func TestMonthlyProgressKeepsLastSix(t *testing.T) {
	var entries []model.Entry
	for m := 1; m <= 8; m++ {
		entries = append(entries, model.Entry{EntryDate: FormatDay(time.Date(2024, time.Month(m), 5, 0, 0, 0, 0, time.Local))})
	}
	snap := Analyze(entries, now)
	require.Len(t, snap.MonthlyProgress, 6)
	assert.Equal(t, "Mar 2024", snap.MonthlyProgress[0].Month)
	assert.Equal(t, "Aug 2024", snap.MonthlyProgress[5].Month)
}

func TestLeadershipScores(t *testing.T) {
	rated := entryDaysAgo(0)
	rated.LeadershipRating = model.LeadershipRating{Wisdom: 7, Courage: 8, Patience: 6, Integrity: 9}
	rated2 := entryDaysAgo(1)
	rated2.LeadershipRating = model.LeadershipRating{Wisdom: 8, Courage: 9, Patience: 7, Integrity: 10}
	unrated := entryDaysAgo(2)

	snap := Analyze([]model.Entry{rated, rated2, unrated}, now)
	assert.Equal(t, model.LeadershipScores{Wisdom: 7.5, Courage: 8.5, Patience: 6.5, Integrity: 9.5}, snap.LeadershipScores)
}

func TestLeadershipScoresNoRatings(t *testing.T) {
	snap := Analyze([]model.Entry{entryDaysAgo(0)}, now)
	assert.Equal(t, model.LeadershipScores{}, snap.LeadershipScores)
}

func TestDisciplineRates(t *testing.T) {
	soapOnly := entryDaysAgo(0)
	soapOnly.SOAP.Observation = "he restores my soul"
	prayerful := entryDaysAgo(1)
	prayerful.SOAP.Prayer = "thank you"
	grateful := entryDaysAgo(2)
	grateful.Gratitude = model.StringSlice{"", "family", ""}
	blank := entryDaysAgo(3)

	snap := Analyze([]model.Entry{soapOnly, prayerful, grateful, blank}, now)
	assert.Equal(t, 50, snap.Disciplines.SOAP) // observation and prayer entries both count
	assert.Equal(t, 25, snap.Disciplines.Prayer)
	assert.Equal(t, 25, snap.Disciplines.Gratitude)
	assert.Equal(t, 0, snap.Disciplines.Goals)
}

func TestHeatmap(t *testing.T) {
	busy := entryDaysAgo(0)
	busy.SOAP.Scripture = "Psalm 23"
	busy.Gratitude = model.StringSlice{"grace"}
	busy.Goals.Daily = []model.Goal{{ID: "1"}}
	busy.DailyIntention = "lead well"

	medium := entryDaysAgo(1)
	medium.SOAP.Prayer = "amen"
	medium.GrowthQuestion = "what am i avoiding?"

	light := entryDaysAgo(2)
	light.DailyIntention = "rest"

	old := entryDaysAgo(31) // outside the window

	snap := Analyze([]model.Entry{busy, medium, light, old}, now)
	require.Len(t, snap.Heatmap, 30)

	last := snap.Heatmap[29]
	assert.True(t, last.HasEntry)
	assert.Equal(t, 4, last.Activities)
	assert.Equal(t, "high", last.Intensity)

	assert.Equal(t, "medium", snap.Heatmap[28].Intensity)
	assert.Equal(t, "low", snap.Heatmap[27].Intensity)
	assert.Equal(t, "none", snap.Heatmap[26].Intensity)

	// Oldest cell is 29 days back, so the 31-day-old entry never shows.
	assert.Equal(t, FormatDay(Midnight(now).AddDate(0, 0, -29)), snap.Heatmap[0].Date)
	assert.False(t, snap.Heatmap[0].HasEntry)
}

func TestAnalyzeSkipsUnparseableDates(t *testing.T) {
	bad := model.Entry{EntryDate: "garbage"}
	entries := []model.Entry{entryDaysAgo(0), bad}
	snap := Analyze(entries, now)
	assert.Equal(t, 2, snap.TotalEntries)
	assert.Equal(t, 1, snap.CurrentStreak)
	require.Len(t, snap.MonthlyProgress, 1)
}
