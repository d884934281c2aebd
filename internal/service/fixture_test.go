package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rich365/rich365/internal/catalogue"
	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/intelligence"
	"github.com/rich365/rich365/internal/llm"
	"github.com/rich365/rich365/internal/repository"
	"github.com/rich365/rich365/internal/scheduler"
	"github.com/rich365/rich365/internal/testutil"
)

var shanghai = time.FixedZone("CST", 8*3600)

// fixedClock is 2025-03-10 09:00 in Shanghai.
func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, shanghai)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.events))
	for i, e := range o.events {
		out[i] = e.Name
	}
	return out
}

type fixture struct {
	db       *sql.DB
	uow      db.UnitOfWork
	users    *repository.SQLiteUserRepo
	actions  *repository.SQLiteDailyActionRepo
	themes   *repository.SQLiteMonthlyThemeRepo
	selector *scheduler.Selector
	observer *recordingObserver

	profiles    ProfileService
	calendar    CalendarService
	generation  GenerationService
	checkIns    CheckInService
	leaderboard LeaderboardService
	export      ExportService
}

// newFixture wires every service against an in-memory database. client may
// be nil to force the template path.
func newFixture(t *testing.T, client llm.LLMClient) *fixture {
	t.Helper()
	return newFixtureOn(t, testutil.NewTestDB(t), client)
}

// newFixtureOn wires a fresh service graph, with empty memos, over database.
func newFixtureOn(t *testing.T, database *sql.DB, client llm.LLMClient) *fixture {
	t.Helper()
	uow := testutil.NewTestUoW(database)

	f := &fixture{
		db:       database,
		uow:      uow,
		users:    repository.NewSQLiteUserRepo(database),
		actions:  repository.NewSQLiteDailyActionRepo(database),
		themes:   repository.NewSQLiteMonthlyThemeRepo(database),
		observer: &recordingObserver{},
	}
	f.selector = scheduler.New(catalogue.Default(), repository.NewSQLiteUsedActionStore(database, uow))

	calendar, err := NewCalendarService(f.users, f.actions, f.themes, f.selector, 16, nil, f.observer)
	require.NoError(t, err)
	f.calendar = calendar

	f.profiles = NewProfileService(f.users, repository.NewSQLiteSettingsRepo(database), uow, f.observer)
	f.generation = NewGenerationService(f.users, f.actions, uow,
		intelligence.NewCalendarDraftService(client, f.selector, nil),
		intelligence.NewGoalService(client, f.selector, nil),
		f.observer)
	f.checkIns = NewCheckInService(repository.NewSQLiteCheckInRepo(database), repository.NewSQLiteStatsRepo(database),
		uow, shanghai, fixedClock, f.observer)
	f.leaderboard = NewLeaderboardService(repository.NewSQLiteLeaderboardRepo(database), f.observer)
	f.export = NewExportService(f.calendar, f.observer)
	return f
}

func (f *fixture) seedUser(t *testing.T, opts ...testutil.UserOption) *domain.User {
	t.Helper()
	return testutil.SeedUser(t, f.db, opts...)
}

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) Generate(context.Context, llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.GenerateResponse{Text: s.response, Model: "stub"}, nil
}

func (s *stubLLM) Available(context.Context) bool { return s.err == nil }

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
