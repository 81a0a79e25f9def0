package progress

import "encoding/json"

// schemaVersion tags newly written envelopes. Version 0 (no envelope)
// is the legacy shape: the bare UserProgress object.
const schemaVersion = 1

// envelope is the persisted wire shape.
type envelope struct {
	Version  int             `json:"version"`
	Progress json.RawMessage `json:"progress"`
}

// Encode serializes the aggregate into a versioned envelope.
func Encode(p *UserProgress) ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Version: schemaVersion, Progress: raw})
}

// Decode parses a persisted blob into a UserProgress, migrating legacy
// shapes and backfilling missing fields with defaults. It never fails:
// corrupt or unrecognized payloads degrade to the default aggregate
// (losing state is acceptable, refusing to start is not).
func Decode(raw []byte) *UserProgress {
	if len(raw) == 0 {
		return New()
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return New()
	}

	body := raw
	if env.Version >= 1 {
		if len(env.Progress) == 0 {
			return New()
		}
		body = env.Progress
	}

	// Unmarshaling over a prefilled default merges field-by-field at every
	// object level, so saves written before a field existed simply keep the
	// default for it.
	p := New()
	if err := json.Unmarshal(body, p); err != nil {
		return New()
	}
	sanitize(p)
	return p
}

// sanitize restores the aggregate invariants after decoding an untrusted
// payload: no duplicate mastered ids, total >= correct, no negative
// counters, one history entry per date, history within the retention cap.
func sanitize(p *UserProgress) {
	if p.MasteredElements == nil {
		p.MasteredElements = []int{}
	}
	seen := make(map[int]bool, len(p.MasteredElements))
	deduped := p.MasteredElements[:0]
	for _, id := range p.MasteredElements {
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}
	p.MasteredElements = deduped

	if p.QuizStats.Correct < 0 {
		p.QuizStats.Correct = 0
	}
	if p.QuizStats.Total < p.QuizStats.Correct {
		p.QuizStats.Total = p.QuizStats.Correct
	}
	if p.QuizStats.Streak < 0 {
		p.QuizStats.Streak = 0
	}
	if p.QuizStats.DayStreak < 0 {
		p.QuizStats.DayStreak = 0
	}

	if p.ActivityHistory == nil {
		p.ActivityHistory = []DailyActivity{}
	}
	seenDates := make(map[Date]bool, len(p.ActivityHistory))
	history := p.ActivityHistory[:0]
	for _, a := range p.ActivityHistory {
		if a.Date.IsZero() || seenDates[a.Date] || a.Count < 0 {
			continue
		}
		seenDates[a.Date] = true
		history = append(history, a)
	}
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}
	p.ActivityHistory = history
}
