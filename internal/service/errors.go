package service

import "errors"

// ErrInvalidLeaderboardKind is wrapped when kind is not streak or total.
var ErrInvalidLeaderboardKind = errors.New("leaderboard kind must be streak or total")
