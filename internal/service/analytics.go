package service

import (
	"math"
	"sort"
	"time"

	"github.com/martyacryl/the-daily-david-sub003/internal/logger"
	"github.com/martyacryl/the-daily-david-sub003/internal/model"
)

// categoryPalette is cycled through the category breakdown by rank.
var categoryPalette = []string{"#3b82f6", "#22c55e", "#a855f7", "#f97316", "#ec4899", "#6366f1"}

const heatmapDays = 30

// Analyze computes the full analytics snapshot from an entry history. It is
// a pure function: "now" comes in as an argument and no I/O happens here.
func Analyze(entries []model.Entry, now time.Time) model.AnalyticsSnapshot {
	today := Midnight(now)

	snap := model.AnalyticsSnapshot{
		TotalEntries:      len(entries),
		CategoryBreakdown: []model.CategoryCount{},
		MonthlyProgress:   []model.MonthProgress{},
		Heatmap:           heatmap(entries, today),
	}
	if len(entries) == 0 {
		return snap
	}

	dated := datedEntries(entries)
	snap.CurrentStreak, snap.LongestStreak = streaks(dated, today)
	snap.CompletionRate = completionRate(dated, today)
	snap.ThisWeek = thisWeekCount(dated, today)
	snap.GoalCompletion = goalCompletion(entries)
	snap.CategoryBreakdown = categoryBreakdown(entries)
	snap.MonthlyProgress = monthlyProgress(dated)
	snap.LeadershipScores = leadershipScores(entries)
	snap.Disciplines = disciplineRates(entries)
	return snap
}

type datedEntry struct {
	day   time.Time
	entry model.Entry
}

// datedEntries pairs each entry with its parsed local date, dropping entries
// whose dates cannot be parsed, sorted newest first.
func datedEntries(entries []model.Entry) []datedEntry {
	out := make([]datedEntry, 0, len(entries))
	for _, e := range entries {
		day, err := ParseDay(e.EntryDate)
		if err != nil {
			logger.Warn("analytics.bad_entry_date", "date", e.EntryDate, "err", err)
			continue
		}
		out = append(out, datedEntry{day: day, entry: e})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].day.After(out[j].day) })
	return out
}

func streaks(sorted []datedEntry, today time.Time) (current, longest int) {
	if len(sorted) == 0 {
		return 0, 0
	}

	// Current streak counts back from today, or from yesterday when today
	// has no entry yet.
	cursor := today
	if !hasDay(sorted, today) {
		yesterday := today.AddDate(0, 0, -1)
		if !hasDay(sorted, yesterday) {
			cursor = time.Time{}
		} else {
			cursor = yesterday
		}
	}
	if !cursor.IsZero() {
		for _, de := range sorted {
			if de.day.Equal(cursor) {
				current++
				cursor = cursor.AddDate(0, 0, -1)
			} else if de.day.Before(cursor) {
				break
			}
			// A duplicate same-day entry lands after the cursor moved on;
			// it is skipped without touching the count.
		}
	}

	// Longest streak: running length resets whenever consecutive sorted
	// entries are not exactly one day apart.
	temp := 0
	var last time.Time
	for _, de := range sorted {
		if temp == 0 {
			temp = 1
		} else if DaysBetween(de.day, last) == 1 {
			temp++
		} else {
			if temp > longest {
				longest = temp
			}
			temp = 1
		}
		last = de.day
	}
	if temp > longest {
		longest = temp
	}
	return current, longest
}

func hasDay(sorted []datedEntry, day time.Time) bool {
	for _, de := range sorted {
		if de.day.Equal(day) {
			return true
		}
	}
	return false
}

// completionRate is unique journaled days over calendar days elapsed since
// the first entry, inclusive.
func completionRate(dated []datedEntry, today time.Time) int {
	if len(dated) == 0 {
		return 0
	}
	earliest := dated[len(dated)-1].day
	totalDays := DaysBetween(earliest, today) + 1
	if totalDays <= 0 {
		return 0
	}
	unique := make(map[string]struct{}, len(dated))
	for _, de := range dated {
		unique[FormatDay(de.day)] = struct{}{}
	}
	return int(math.Round(float64(len(unique)) / float64(totalDays) * 100))
}

func thisWeekCount(dated []datedEntry, today time.Time) int {
	start := SundayWeekStart(today)
	end := start.AddDate(0, 0, 7)
	n := 0
	for _, de := range dated {
		if !de.day.Before(start) && de.day.Before(end) {
			n++
		}
	}
	return n
}

func goalCompletion(entries []model.Entry) model.GoalCompletion {
	tally := func(pick func(model.GoalLists) []model.Goal) model.ScopeCompletion {
		var sc model.ScopeCompletion
		for _, e := range entries {
			for _, g := range pick(e.Goals) {
				sc.Total++
				if g.Completed {
					sc.Completed++
				}
			}
		}
		if sc.Total > 0 {
			sc.Percentage = int(math.Round(float64(sc.Completed) / float64(sc.Total) * 100))
		}
		return sc
	}
	return model.GoalCompletion{
		Daily:   tally(func(g model.GoalLists) []model.Goal { return g.Daily }),
		Weekly:  tally(func(g model.GoalLists) []model.Goal { return g.Weekly }),
		Monthly: tally(func(g model.GoalLists) []model.Goal { return g.Monthly }),
	}
}

func categoryBreakdown(entries []model.Entry) []model.CategoryCount {
	counts := map[string]int{}
	for _, e := range entries {
		for _, g := range allGoals(e.Goals) {
			cat := g.Category
			if cat == "" {
				cat = "Other"
			}
			counts[cat]++
		}
	}
	out := make([]model.CategoryCount, 0, len(counts))
	for cat, n := range counts {
		out = append(out, model.CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > 6 {
		out = out[:6]
	}
	for i := range out {
		out[i].Color = categoryPalette[i%len(categoryPalette)]
	}
	return out
}

func monthlyProgress(dated []datedEntry) []model.MonthProgress {
	type bucket struct {
		month   time.Time
		entries int
		goals   int
	}
	buckets := map[time.Time]*bucket{}
	for _, de := range dated {
		key := time.Date(de.day.Year(), de.day.Month(), 1, 0, 0, 0, 0, de.day.Location())
		b := buckets[key]
		if b == nil {
			b = &bucket{month: key}
			buckets[key] = b
		}
		b.entries++
		b.goals += len(allGoals(de.entry.Goals))
	}
	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].month.Before(ordered[j].month) })
	if len(ordered) > 6 {
		ordered = ordered[len(ordered)-6:]
	}
	out := make([]model.MonthProgress, len(ordered))
	for i, b := range ordered {
		out[i] = model.MonthProgress{Month: b.month.Format("Jan 2006"), Entries: b.entries, Goals: b.goals}
	}
	return out
}

func leadershipScores(entries []model.Entry) model.LeadershipScores {
	var wisdom, courage, patience, integrity, count int
	for _, e := range entries {
		if e.LeadershipRating.IsZero() {
			continue
		}
		wisdom += e.LeadershipRating.Wisdom
		courage += e.LeadershipRating.Courage
		patience += e.LeadershipRating.Patience
		integrity += e.LeadershipRating.Integrity
		count++
	}
	if count == 0 {
		return model.LeadershipScores{}
	}
	avg := func(sum int) float64 {
		return math.Round(float64(sum)/float64(count)*10) / 10
	}
	return model.LeadershipScores{
		Wisdom:    avg(wisdom),
		Courage:   avg(courage),
		Patience:  avg(patience),
		Integrity: avg(integrity),
	}
}

func disciplineRates(entries []model.Entry) model.DisciplineRates {
	if len(entries) == 0 {
		return model.DisciplineRates{}
	}
	var soap, prayer, gratitude, goals int
	for _, e := range entries {
		if !e.SOAP.Empty() {
			soap++
		}
		if e.SOAP.Prayer != "" {
			prayer++
		}
		if anyNonEmpty(e.Gratitude) {
			gratitude++
		}
		if len(allGoals(e.Goals)) > 0 {
			goals++
		}
	}
	pct := func(n int) int {
		return int(math.Round(float64(n) / float64(len(entries)) * 100))
	}
	return model.DisciplineRates{
		SOAP:      pct(soap),
		Prayer:    pct(prayer),
		Gratitude: pct(gratitude),
		Goals:     pct(goals),
	}
}

// heatmap covers the last 30 calendar days inclusive of today. Entries are
// matched by exact date-string equality.
func heatmap(entries []model.Entry, today time.Time) []model.HeatmapDay {
	byDate := make(map[string]model.Entry, len(entries))
	for _, e := range entries {
		if _, ok := byDate[e.EntryDate]; !ok {
			byDate[e.EntryDate] = e
		}
	}
	out := make([]model.HeatmapDay, 0, heatmapDays)
	for i := heatmapDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		ds := FormatDay(day)
		hd := model.HeatmapDay{Date: ds, Day: day.Day(), Intensity: "none"}
		if e, ok := byDate[ds]; ok {
			hd.HasEntry = true
			hd.Activities = activityCount(e)
			switch {
			case hd.Activities >= 4:
				hd.Intensity = "high"
			case hd.Activities >= 2:
				hd.Intensity = "medium"
			case hd.Activities >= 1:
				hd.Intensity = "low"
			}
		}
		out = append(out, hd)
	}
	return out
}

// activityCount tallies how many of the five journaling areas were touched.
func activityCount(e model.Entry) int {
	n := 0
	if !e.SOAP.Empty() {
		n++
	}
	if anyNonEmpty(e.Gratitude) {
		n++
	}
	if len(allGoals(e.Goals)) > 0 {
		n++
	}
	if e.DailyIntention != "" {
		n++
	}
	if e.GrowthQuestion != "" {
		n++
	}
	return n
}

func allGoals(g model.GoalLists) []model.Goal {
	out := make([]model.Goal, 0, len(g.Daily)+len(g.Weekly)+len(g.Monthly))
	out = append(out, g.Daily...)
	out = append(out, g.Weekly...)
	out = append(out, g.Monthly...)
	return out
}

func anyNonEmpty(items []string) bool {
	for _, s := range items {
		if s != "" {
			return true
		}
	}
	return false
}
