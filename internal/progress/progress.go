// Package progress owns the persisted user-progress aggregate: the
// mastered-element set, quiz statistics, the day streak, and the bounded
// daily-activity history. It is the only mutation surface for that state;
// the store persists the full aggregate after every mutation.
package progress

// historyCap bounds the activity-history list. Oldest entries are trimmed
// first when a new date pushes the list over the cap.
const historyCap = 14

// DailyActivity records the number of study events on one calendar date.
// The history holds at most one entry per distinct date.
type DailyActivity struct {
	Date  Date `json:"date"`
	Count int  `json:"count"`
}

// QuizStats tracks lifetime answer counts plus the two streaks: the
// session streak (consecutive correct answers, reset by a wrong one) and
// the day streak (consecutive calendar days with recorded activity).
type QuizStats struct {
	Correct          int  `json:"correct"`
	Total            int  `json:"total"`
	Streak           int  `json:"streak"`
	DayStreak        int  `json:"dayStreak"`
	LastActivityDate Date `json:"lastActivityDate"`
}

// UserProgress is the root aggregate, a singleton per storage scope.
type UserProgress struct {
	MasteredElements []int           `json:"masteredElements"`
	QuizStats        QuizStats       `json:"quizStats"`
	ActivityHistory  []DailyActivity `json:"activityHistory"`
}

// New returns the all-zero default aggregate used on first load and as
// the recovery value for corrupt saves.
func New() *UserProgress {
	return &UserProgress{
		MasteredElements: []int{},
		ActivityHistory:  []DailyActivity{},
	}
}

// IsMastered reports whether the element id is in the mastered set.
func (p *UserProgress) IsMastered(id int) bool {
	for _, n := range p.MasteredElements {
		if n == id {
			return true
		}
	}
	return false
}

// ToggleMastery flips the mastered flag for the element id: removes it if
// present, adds it otherwise. Ids are not validated against the dataset.
func (p *UserProgress) ToggleMastery(id int) {
	for i, n := range p.MasteredElements {
		if n == id {
			p.MasteredElements = append(p.MasteredElements[:i], p.MasteredElements[i+1:]...)
			return
		}
	}
	p.MasteredElements = append(p.MasteredElements, id)
}

// MasteredCount returns the size of the mastered set.
func (p *UserProgress) MasteredCount() int {
	return len(p.MasteredElements)
}

// RecordAnswer scores one quiz answer: total always increments, correct
// increments iff the answer was right, and the session streak extends or
// resets to 0. The answer also counts as activity for today, driving the
// day streak and the activity history.
func (p *UserProgress) RecordAnswer(correct bool, today Date) {
	p.QuizStats.Total++
	if correct {
		p.QuizStats.Correct++
		p.QuizStats.Streak++
	} else {
		p.QuizStats.Streak = 0
	}
	p.RecordActivity(today)
}

// RecordActivity registers one study event on the given date, updating the
// day streak and the activity history.
//
// Day-streak policy:
//   - no prior activity            -> streak starts at 1
//   - same day as last activity    -> unchanged
//   - exactly one day after        -> streak + 1
//   - more than one day after      -> restart at 1 (today itself counts)
//   - earlier than last activity   -> restart at 1 (clock skew treated as
//     a broken streak)
func (p *UserProgress) RecordActivity(today Date) {
	last := p.QuizStats.LastActivityDate
	switch {
	case last.IsZero():
		p.QuizStats.DayStreak = 1
	case last == today:
		// Same-day repeat: streak untouched.
	default:
		if today.DaysSince(last) == 1 {
			p.QuizStats.DayStreak++
		} else {
			p.QuizStats.DayStreak = 1
		}
	}
	p.QuizStats.LastActivityDate = today

	for i := range p.ActivityHistory {
		if p.ActivityHistory[i].Date == today {
			p.ActivityHistory[i].Count++
			return
		}
	}
	p.ActivityHistory = append(p.ActivityHistory, DailyActivity{Date: today, Count: 1})
	if len(p.ActivityHistory) > historyCap {
		p.ActivityHistory = p.ActivityHistory[len(p.ActivityHistory)-historyCap:]
	}
}

// CheckDecay is the passive streak check run once at application start.
// If the most recent activity is more than one day in the past (or in the
// future, under clock skew), the day streak resets to 0 so the UI shows
// the broken streak before any new activity lands. It never touches
// lastActivityDate or the history, and is idempotent.
func (p *UserProgress) CheckDecay(today Date) bool {
	last := p.QuizStats.LastActivityDate
	if last.IsZero() || last == today {
		return false
	}
	gap := today.DaysSince(last)
	if gap < 0 {
		gap = -gap
	}
	if gap > 1 && p.QuizStats.DayStreak != 0 {
		p.QuizStats.DayStreak = 0
		return true
	}
	return false
}
