package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/repository"
	"github.com/rich365/rich365/internal/service"
)

// resolveUser returns the user named by --user, or the current user. The
// flag accepts a full ID or a unique prefix.
func resolveUser(ctx context.Context, app *App) (*domain.User, error) {
	if app.userFlag == "" {
		u, err := app.Profiles.Current(ctx)
		if errors.Is(err, service.ErrNoCurrentUser) {
			return nil, fmt.Errorf("还没有用户，请先运行 `rich365 onboard`: %w", err)
		}
		return u, err
	}

	u, err := app.Profiles.Get(ctx, app.userFlag)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	users, err := app.Profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	var match *domain.User
	for _, candidate := range users {
		if !strings.HasPrefix(candidate.ID, app.userFlag) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("user prefix %q is ambiguous", app.userFlag)
		}
		match = candidate
	}
	if match == nil {
		return nil, fmt.Errorf("user %q: %w", app.userFlag, repository.ErrNotFound)
	}
	return match, nil
}

// resolveYearMonth parses optional [year] [month] arguments, defaulting to
// the current ones.
func resolveYearMonth(args []string, now time.Time) (year, month int, err error) {
	year, month = now.Year(), int(now.Month())
	if len(args) > 0 {
		if year, err = strconv.Atoi(args[0]); err != nil || year < 1 {
			return 0, 0, &domain.ValidationError{Field: "year", Value: args[0], Err: domain.ErrInvalidDate}
		}
	}
	if len(args) > 1 {
		if month, err = strconv.Atoi(args[1]); err != nil || !domain.ValidMonth(month) {
			return 0, 0, &domain.ValidationError{Field: "month", Value: args[1], Err: domain.ErrInvalidMonth}
		}
	}
	return year, month, nil
}

// resolveDate accepts YYYY-MM-DD, 今天/today, 昨天/yesterday or 明天/tomorrow.
// Empty means today.
func resolveDate(input string, now time.Time) (string, error) {
	today := now.Format(domain.DateLayout)
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "today", "今天":
		return today, nil
	case "yesterday", "昨天":
		return now.AddDate(0, 0, -1).Format(domain.DateLayout), nil
	case "tomorrow", "明天":
		return now.AddDate(0, 0, 1).Format(domain.DateLayout), nil
	}
	if _, err := domain.ParseDate(input); err != nil {
		return "", &domain.ValidationError{Field: "date", Value: input, Err: domain.ErrInvalidDate}
	}
	return input, nil
}

func parseKind(s string) (domain.LeaderboardKind, error) {
	k := domain.LeaderboardKind(strings.ToLower(s))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q (streak or total)", service.ErrInvalidLeaderboardKind, s)
	}
	return k, nil
}
