package service

import (
	"context"
	"time"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/repository"
)

// DefaultLeaderboardLimit applies when the caller passes no limit.
const DefaultLeaderboardLimit = 10

const maxLeaderboardLimit = 100

type leaderboardService struct {
	board    repository.LeaderboardRepo
	observer UseCaseObserver
}

func NewLeaderboardService(board repository.LeaderboardRepo, observers ...UseCaseObserver) LeaderboardService {
	return &leaderboardService{board: board, observer: combineObservers(observers)}
}

func validKind(kind domain.LeaderboardKind) error {
	if !kind.Valid() {
		return &domain.ValidationError{Field: "kind", Value: string(kind), Err: ErrInvalidLeaderboardKind}
	}
	return nil
}

func (s *leaderboardService) Top(ctx context.Context, kind domain.LeaderboardKind, limit int) (entries []domain.LeaderboardEntry, err error) {
	startedAt := time.Now()
	defer func() {
		report(ctx, s.observer, "leaderboard-top", "", startedAt, map[string]any{"kind": string(kind), "limit": limit}, err)
	}()

	if err = validKind(kind); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}
	return s.board.Top(ctx, kind, limit)
}

func (s *leaderboardService) Rank(ctx context.Context, userID string, kind domain.LeaderboardKind) (rank *domain.UserRank, err error) {
	startedAt := time.Now()
	defer func() {
		report(ctx, s.observer, "leaderboard-rank", userID, startedAt, map[string]any{"kind": string(kind)}, err)
	}()

	if err = validKind(kind); err != nil {
		return nil, err
	}
	return s.board.Rank(ctx, userID, kind)
}
