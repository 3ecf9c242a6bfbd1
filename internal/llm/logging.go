package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// LoggingProvider is a decorator that records every LLM request in the
// usage log.
type LoggingProvider struct {
	inner Provider
	log   *UsageLog
}

// WithLogging wraps a Provider with usage logging. A nil log disables the
// decorator.
func WithLogging(p Provider, log *UsageLog) Provider {
	if log == nil {
		return p
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := UsageRecord{
		Timestamp: start,
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
	}
	if err != nil {
		rec.Error = err.Error()
	}

	// Log the request but never fail it over a logging problem.
	if logErr := l.log.Append(rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
