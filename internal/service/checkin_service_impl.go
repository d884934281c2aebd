package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/progress"
	"github.com/rich365/rich365/internal/repository"
)

type checkInService struct {
	checkIns repository.CheckInRepo
	stats    repository.StatsRepo
	uow      db.UnitOfWork
	loc      *time.Location
	now      func() time.Time
	observer UseCaseObserver
}

// NewCheckInService decides "today" in loc (UTC when nil). A nil clock uses
// time.Now.
func NewCheckInService(
	checkIns repository.CheckInRepo,
	stats repository.StatsRepo,
	uow db.UnitOfWork,
	loc *time.Location,
	clock func() time.Time,
	observers ...UseCaseObserver,
) CheckInService {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &checkInService{
		checkIns: checkIns,
		stats:    stats,
		uow:      uow,
		loc:      loc,
		now:      clock,
		observer: combineObservers(observers),
	}
}

func (s *checkInService) CheckIn(ctx context.Context, userID, date, note string) (res *progress.Result, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { report(ctx, s.observer, "check-in", userID, startedAt, fields, err) }()

	today := s.now().In(s.loc)
	if date == "" {
		date = today.Format(domain.DateLayout)
	}
	fields["date"] = date

	return db.InTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) (*progress.Result, error) {
		if _, err := repository.NewSQLiteUserRepo(tx).GetByID(ctx, userID); err != nil {
			return nil, fmt.Errorf("user %s: %w", userID, err)
		}
		checkIns := repository.NewSQLiteCheckInRepo(tx)
		statsRepo := repository.NewSQLiteStatsRepo(tx)

		history, err := checkIns.ListDates(ctx, userID)
		if err != nil {
			return nil, err
		}
		current, err := statsRepo.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		res, err := progress.ApplyCheckIn(*current, history, date, today)
		if err != nil {
			return nil, err
		}

		err = checkIns.Create(ctx, &domain.CheckIn{
			UserID:     userID,
			Date:       date,
			ActionDate: date,
			Note:       strings.TrimSpace(note),
			CreatedAt:  s.now().UTC(),
		})
		if err != nil {
			return nil, err
		}
		if err := statsRepo.Upsert(ctx, userID, &res.Stats); err != nil {
			return nil, err
		}
		fields["streak"] = res.Stats.CurrentStreak
		fields["new_badges"] = len(res.NewBadges)
		return res, nil
	})
}

func (s *checkInService) Stats(ctx context.Context, userID string) (*domain.UserStats, error) {
	return s.stats.Get(ctx, userID)
}

func (s *checkInService) History(ctx context.Context, userID, from, to string) ([]*domain.CheckIn, error) {
	if _, err := domain.ParseDate(from); err != nil {
		return nil, err
	}
	if _, err := domain.ParseDate(to); err != nil {
		return nil, err
	}
	return s.checkIns.ListRange(ctx, userID, from, to)
}

func (s *checkInService) Progress(ctx context.Context, userID string) (*ProgressReport, error) {
	stats, err := s.stats.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	r := &ProgressReport{
		Stats:        *stats,
		Earned:       progress.EarnedBadges(*stats),
		NextBadge:    progress.NextBadge(*stats),
		Tree:         progress.TreeLevel(stats.TotalCheckIns),
		NextTree:     progress.NextTreeLevel(stats.TotalCheckIns),
		TreeProgress: progress.TreeProgress(stats.TotalCheckIns),
	}
	if r.NextBadge != nil {
		r.BadgeRemain = progress.Remaining(*r.NextBadge, *stats)
	}
	return r, nil
}
