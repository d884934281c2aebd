// Package app wires repositories, the action selector and the use-case
// services into one graph shared by the CLI and the HTTP server.
package app

import (
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/rich365/rich365/internal/catalogue"
	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/httpapi"
	"github.com/rich365/rich365/internal/intelligence"
	"github.com/rich365/rich365/internal/llm"
	"github.com/rich365/rich365/internal/repository"
	"github.com/rich365/rich365/internal/scheduler"
	"github.com/rich365/rich365/internal/service"
)

// Deps are the process-level resources the services are built from.
type Deps struct {
	DB        *sql.DB
	Catalogue *catalogue.Catalogue
	// LLM may be nil; generation then always uses the template path.
	LLM       llm.LLMClient
	Location  *time.Location
	Clock     func() time.Time
	CacheSize int
	// UsedStore overrides the SQLite used-title ledger when set.
	UsedStore scheduler.UsedActionStore
	Logger    *slog.Logger
	Observers []service.UseCaseObserver
}

// Services is the wired use-case graph.
type Services struct {
	Profiles    service.ProfileService
	Calendar    service.CalendarService
	Generation  service.GenerationService
	CheckIns    service.CheckInService
	Leaderboard service.LeaderboardService
	Export      service.ExportService

	Selector *scheduler.Selector
}

// Build wires every service against d.DB.
func Build(d Deps) (*Services, error) {
	if d.DB == nil {
		return nil, errors.New("app: database is required")
	}
	if d.Catalogue == nil {
		d.Catalogue = catalogue.Default()
	}
	if d.Location == nil {
		d.Location = time.Local
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	uow := db.NewSQLiteUnitOfWork(d.DB)
	users := repository.NewSQLiteUserRepo(d.DB)
	actions := repository.NewSQLiteDailyActionRepo(d.DB)
	themes := repository.NewSQLiteMonthlyThemeRepo(d.DB)

	if d.UsedStore == nil {
		d.UsedStore = repository.NewSQLiteUsedActionStore(d.DB, uow)
	}
	selector := scheduler.New(d.Catalogue, d.UsedStore, scheduler.WithLogger(d.Logger))

	calendar, err := service.NewCalendarService(users, actions, themes, selector, d.CacheSize, d.Logger, d.Observers...)
	if err != nil {
		return nil, err
	}

	return &Services{
		Profiles: service.NewProfileService(users, repository.NewSQLiteSettingsRepo(d.DB), uow, d.Observers...),
		Calendar: calendar,
		Generation: service.NewGenerationService(users, actions, uow,
			intelligence.NewCalendarDraftService(d.LLM, selector, d.Logger),
			intelligence.NewGoalService(d.LLM, selector, d.Logger),
			d.Observers...),
		CheckIns: service.NewCheckInService(repository.NewSQLiteCheckInRepo(d.DB), repository.NewSQLiteStatsRepo(d.DB),
			uow, d.Location, d.Clock, d.Observers...),
		Leaderboard: service.NewLeaderboardService(repository.NewSQLiteLeaderboardRepo(d.DB), d.Observers...),
		Export:      service.NewExportService(calendar, d.Observers...),
		Selector:    selector,
	}, nil
}

// HTTP returns the subset served by the JSON API.
func (s *Services) HTTP() httpapi.Services {
	return httpapi.Services{
		Profiles:    s.Profiles,
		Calendar:    s.Calendar,
		Generation:  s.Generation,
		CheckIns:    s.CheckIns,
		Leaderboard: s.Leaderboard,
		Export:      s.Export,
	}
}
