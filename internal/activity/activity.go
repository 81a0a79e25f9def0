// Package activity derives read-only rollups from the stored progress
// history for display. Nothing here is persisted; every view is a pure
// fold over the aggregate and the static dataset.
package activity

import (
	"math"
	"sort"

	"github.com/beemnet-bee/Elementia/internal/elements"
	"github.com/beemnet-bee/Elementia/internal/progress"
)

// DayCount is one point of an activity series.
type DayCount struct {
	Date  progress.Date
	Label string
	Count int
}

// Last7Days returns one entry per calendar day for the 7 days ending
// today, oldest first. Days absent from the history count 0. Labels are
// short weekday names.
func Last7Days(history []progress.DailyActivity, today progress.Date) []DayCount {
	return window(history, today, 7)
}

// Last28Days returns the 28-day window ending today, oldest first,
// for the activity heatmap.
func Last28Days(history []progress.DailyActivity, today progress.Date) []DayCount {
	return window(history, today, 28)
}

func window(history []progress.DailyActivity, today progress.Date, days int) []DayCount {
	counts := make(map[progress.Date]int, len(history))
	for _, a := range history {
		counts[a.Date] = a.Count
	}

	out := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		out = append(out, DayCount{
			Date:  d,
			Label: d.Weekday().String()[:3],
			Count: counts[d],
		})
	}
	return out
}

// HeatTier buckets a daily count into one of 4 intensity tiers for the
// heatmap: 0 (none), 1 (1-4), 2 (5-14), 3 (15+). The thresholds are a
// display policy; keep them stable.
func HeatTier(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 4:
		return 1
	case count <= 14:
		return 2
	default:
		return 3
	}
}

// CategoryStat is the mastery tally for one element category.
type CategoryStat struct {
	Category string
	Total    int
	Mastered int
}

// CategoryMastery folds the mastered set over the dataset, returning one
// stat per category sorted by mastered count descending (category name
// breaks ties).
func CategoryMastery(mastered []int, all []elements.Element) []CategoryStat {
	isMastered := make(map[int]bool, len(mastered))
	for _, id := range mastered {
		isMastered[id] = true
	}

	byCategory := make(map[string]*CategoryStat)
	var order []string
	for _, el := range all {
		stat, ok := byCategory[el.Category]
		if !ok {
			stat = &CategoryStat{Category: el.Category}
			byCategory[el.Category] = stat
			order = append(order, el.Category)
		}
		stat.Total++
		if isMastered[el.Number] {
			stat.Mastered++
		}
	}

	out := make([]CategoryStat, 0, len(order))
	for _, c := range order {
		out = append(out, *byCategory[c])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Mastered != out[j].Mastered {
			return out[i].Mastered > out[j].Mastered
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// AccuracyPercent returns the rounded answer accuracy in 0..100.
// Zero attempts yield 0, not NaN.
func AccuracyPercent(stats progress.QuizStats) int {
	if stats.Total == 0 {
		return 0
	}
	return int(math.Round(float64(stats.Correct) / float64(stats.Total) * 100))
}

// MasteryPercent returns the rounded share of the dataset mastered.
func MasteryPercent(masteredCount, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(masteredCount) / float64(total) * 100))
}
