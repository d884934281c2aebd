package service

import (
	"context"
	"log/slog"
	"time"
)

// UseCaseEvent describes one finished service call.
type UseCaseEvent struct {
	Name      string
	UserID    string
	StartedAt time.Time
	Duration  time.Duration
	Err       error
	Fields    map[string]any
}

// Success reports whether the call returned without error.
func (e UseCaseEvent) Success() bool { return e.Err == nil }

// UseCaseObserver receives an event after every service use case.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type slogObserver struct {
	logger *slog.Logger
}

// NewSlogUseCaseObserver logs each use case at Info, or at Error when it
// failed.
func NewSlogUseCaseObserver(l *slog.Logger) UseCaseObserver {
	if l == nil {
		return NoopUseCaseObserver{}
	}
	return slogObserver{logger: l}
}

func (o slogObserver) ObserveUseCase(ctx context.Context, e UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", e.Name),
		slog.Int64("duration_ms", e.Duration.Milliseconds()),
	}
	if e.UserID != "" {
		attrs = append(attrs, slog.String("user_id", e.UserID))
	}
	for k, v := range e.Fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	level := slog.LevelInfo
	if e.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "use case", attrs...)
}

type multiObserver []UseCaseObserver

func (m multiObserver) ObserveUseCase(ctx context.Context, e UseCaseEvent) {
	for _, o := range m {
		o.ObserveUseCase(ctx, e)
	}
}

func combineObservers(observers []UseCaseObserver) UseCaseObserver {
	var live multiObserver
	for _, o := range observers {
		if o != nil {
			live = append(live, o)
		}
	}
	switch len(live) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return live[0]
	}
	return live
}

// report emits the event for a use case that began at startedAt.
func report(ctx context.Context, obs UseCaseObserver, name, userID string, startedAt time.Time, fields map[string]any, err error) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		UserID:    userID,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Err:       err,
		Fields:    fields,
	})
}
