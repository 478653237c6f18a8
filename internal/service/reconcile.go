package service

import (
	"github.com/martyacryl/the-daily-david-sub003/internal/logger"
	"github.com/martyacryl/the-daily-david-sub003/internal/model"
)

// ReconcileGoals computes the goal set visible on targetDate from the full
// entry history. Daily goals come only from the caller's current lists;
// weekly and monthly goals declared on other entries inside the same week or
// month window are merged in, de-duplicated by id. A goal id soft-deleted on
// ANY entry suppresses that goal on every date, not just the one it was
// recorded on.
func ReconcileGoals(entries []model.Entry, current model.GoalLists, targetDate string) model.GoalLists {
	deleted := deletedIDSet(entries)

	target, err := ParseDay(targetDate)
	if err != nil {
		// Without a usable target date there is no window to merge over;
		// still honor deletions on the caller's own lists.
		logger.Warn("reconcile.bad_target_date", "date", targetDate, "err", err)
		return model.GoalLists{
			Daily:   filterGoals(current.Daily, deleted),
			Weekly:  filterGoals(current.Weekly, deleted),
			Monthly: filterGoals(current.Monthly, deleted),
		}
	}

	out := model.GoalLists{
		Daily:   filterGoals(current.Daily, deleted),
		Weekly:  filterGoals(current.Weekly, deleted),
		Monthly: filterGoals(current.Monthly, deleted),
	}

	seenWeekly := idSetOf(out.Weekly)
	seenMonthly := idSetOf(out.Monthly)

	targetSeen := false
	for _, e := range entries {
		// The target entry is authoritative for its own goals; only the
		// first entry on that date counts as the target, later duplicates
		// are scanned like any other entry.
		if !targetSeen && e.EntryDate == targetDate {
			targetSeen = true
			continue
		}
		day, err := ParseDay(e.EntryDate)
		if err != nil {
			logger.Warn("reconcile.bad_entry_date", "date", e.EntryDate, "err", err)
			continue
		}
		if SameWeek(day, target) {
			out.Weekly = mergeGoals(out.Weekly, e.Goals.Weekly, seenWeekly, deleted)
		}
		if SameMonth(day, target) {
			out.Monthly = mergeGoals(out.Monthly, e.Goals.Monthly, seenMonthly, deleted)
		}
	}
	return out
}

// deletedIDSet unions deleted_goal_ids across every entry. Ids were already
// normalized to strings at decode time, so one string-keyed set covers both
// numeric and string wire forms.
func deletedIDSet(entries []model.Entry) map[model.GoalID]struct{} {
	deleted := make(map[model.GoalID]struct{})
	for _, e := range entries {
		for _, id := range e.DeletedGoalIDs {
			if id != "" {
				deleted[id] = struct{}{}
			}
		}
	}
	return deleted
}

func idSetOf(goals []model.Goal) map[model.GoalID]struct{} {
	seen := make(map[model.GoalID]struct{}, len(goals))
	for _, g := range goals {
		seen[g.ID] = struct{}{}
	}
	return seen
}

// filterGoals drops goals that were soft-deleted or never got an id. A
// missing id is logged and skipped rather than risking a text-based merge.
func filterGoals(goals []model.Goal, deleted map[model.GoalID]struct{}) []model.Goal {
	out := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.ID == "" {
			logger.Warn("reconcile.goal_missing_id", "text", g.Text)
			continue
		}
		if _, gone := deleted[g.ID]; gone {
			continue
		}
		out = append(out, g)
	}
	return out
}

func mergeGoals(dst []model.Goal, src []model.Goal, seen, deleted map[model.GoalID]struct{}) []model.Goal {
	for _, g := range src {
		if g.ID == "" {
			logger.Warn("reconcile.goal_missing_id", "text", g.Text)
			continue
		}
		if _, gone := deleted[g.ID]; gone {
			continue
		}
		if _, dup := seen[g.ID]; dup {
			continue
		}
		seen[g.ID] = struct{}{}
		dst = append(dst, g)
	}
	return dst
}

// MatchMode selects how the legacy dashboard aggregation decides two goals
// are the same. MatchByText exists only for that path; reconciliation always
// matches by id.
type MatchMode int

const (
	MatchByID MatchMode = iota
	MatchByText
)

func (m MatchMode) equal(a, b model.Goal) bool {
	if m == MatchByText {
		return a.Text == b.Text
	}
	return a.ID == b.ID
}

// CurrentGoals reproduces the dashboard's "current goals" view: the most
// recent entry's goals verbatim when it has any, otherwise a union of every
// entry's goals de-duplicated by text (legacy data predates stable ids).
func CurrentGoals(entries []model.Entry) model.GoalLists {
	if len(entries) == 0 {
		return model.GoalLists{Daily: []model.Goal{}, Weekly: []model.Goal{}, Monthly: []model.Goal{}}
	}

	recent := mostRecentEntry(entries)
	if len(recent.Goals.Daily) > 0 || len(recent.Goals.Weekly) > 0 || len(recent.Goals.Monthly) > 0 {
		return recent.Goals
	}

	var daily, weekly, monthly []model.Goal
	for _, e := range entries {
		daily = append(daily, e.Goals.Daily...)
		weekly = append(weekly, e.Goals.Weekly...)
		monthly = append(monthly, e.Goals.Monthly...)
	}
	return model.GoalLists{
		Daily:   dedupGoals(daily, MatchByText),
		Weekly:  dedupGoals(weekly, MatchByText),
		Monthly: dedupGoals(monthly, MatchByText),
	}
}

func mostRecentEntry(entries []model.Entry) model.Entry {
	best := entries[0]
	bestDay, bestErr := ParseDay(best.EntryDate)
	for _, e := range entries[1:] {
		day, err := ParseDay(e.EntryDate)
		if err != nil {
			continue
		}
		if bestErr != nil || day.After(bestDay) {
			best, bestDay, bestErr = e, day, nil
		}
	}
	return best
}

func dedupGoals(goals []model.Goal, mode MatchMode) []model.Goal {
	out := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		dup := false
		for _, kept := range out {
			if mode.equal(kept, g) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, g)
		}
	}
	return out
}
