package facts

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beemnet-bee/Elementia/internal/storage"
)

type contextKey string

const elementKey contextKey = "fact_element"

// WithElement tags the context with the element a lookup is about, for
// event logging.
func WithElement(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, elementKey, name)
}

// ElementFrom extracts the element name from the context.
func ElementFrom(ctx context.Context) string {
	if v, ok := ctx.Value(elementKey).(string); ok {
		return v
	}
	return "unknown"
}

// LoggingProvider records every lookup as a fact event, success or not.
type LoggingProvider struct {
	inner  Provider
	events storage.FactEventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, events storage.FactEventRepo) Provider {
	return &LoggingProvider{inner: p, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := storage.FactEvent{
		Element:   ElementFrom(ctx),
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Log the event but never fail the lookup over it.
	if logErr := l.events.Append(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log fact event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
