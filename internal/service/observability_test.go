package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewSlogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "check-in", UserID: "u1", Duration: 3 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "use_case=check-in")
	assert.Contains(t, buf.String(), "user_id=u1")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "export-ics", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
	assert.NotContains(t, buf.String(), "user_id")
}

func TestCombineObservers(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers(nil))
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers([]UseCaseObserver{nil}))

	a, b := &recordingObserver{}, &recordingObserver{}
	assert.Same(t, a, combineObservers([]UseCaseObserver{nil, a}))

	combineObservers([]UseCaseObserver{a, b}).ObserveUseCase(context.Background(), UseCaseEvent{Name: "onboard"})
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}
