package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FactEvent records one fact-lookup request against the generative
// provider, successful or not.
type FactEvent struct {
	ID           string
	Timestamp    time.Time
	Element      string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// FactEventRepo provides append and query access to the fact-request log.
type FactEventRepo interface {
	Append(ctx context.Context, ev FactEvent) error
	Recent(ctx context.Context, limit int) ([]FactEvent, error)
}

// FactEvents returns a FactEventRepo backed by this database.
func (d *DB) FactEvents() FactEventRepo {
	return &factEventRepo{db: d}
}

type factEventRepo struct {
	db *DB
}

func (r *factEventRepo) Append(ctx context.Context, ev FactEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	success := 0
	if ev.Success {
		success = 1
	}
	_, err := r.db.db.ExecContext(ctx,
		`INSERT INTO fact_events
			(id, timestamp, element, provider, model,
			 input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Timestamp.Format(time.RFC3339), ev.Element, ev.Provider, ev.Model,
		ev.InputTokens, ev.OutputTokens, ev.LatencyMs, success, ev.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append fact event: %w", err)
	}
	return nil
}

func (r *factEventRepo) Recent(ctx context.Context, limit int) ([]FactEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.db.QueryContext(ctx,
		`SELECT id, timestamp, element, provider, model,
			input_tokens, output_tokens, latency_ms, success, error_message
		 FROM fact_events ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query fact events: %w", err)
	}
	defer rows.Close()

	var out []FactEvent
	for rows.Next() {
		var ev FactEvent
		var ts string
		var success int
		if err := rows.Scan(&ev.ID, &ts, &ev.Element, &ev.Provider, &ev.Model,
			&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &success, &ev.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan fact event: %w", err)
		}
		ev.Timestamp, _ = time.Parse(time.RFC3339, ts)
		ev.Success = success != 0
		out = append(out, ev)
	}
	return out, rows.Err()
}
