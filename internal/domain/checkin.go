package domain

import "time"

// CoinsPerCheckIn is awarded for every accepted check-in.
const CoinsPerCheckIn = 10

type CheckIn struct {
	UserID     string
	Date       string
	ActionDate string
	Note       string
	CreatedAt  time.Time
}

// UserStats is the running progress summary kept per user.
type UserStats struct {
	TotalCheckIns   int
	CurrentStreak   int
	LongestStreak   int
	TotalCoins      int
	Badges          []string
	LastCheckInDate string
}

// HasBadge reports whether id has already been awarded.
func (s UserStats) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b == id {
			return true
		}
	}
	return false
}

type BadgeKind string

const (
	BadgeStreak BadgeKind = "streak"
	BadgeTotal  BadgeKind = "total"
)

type Badge struct {
	ID          string
	Name        string
	Emoji       string
	Description string
	Requirement int
	Kind        BadgeKind
}

type TreeLevel struct {
	Level            int
	Name             string
	Emoji            string
	RequiredCheckIns int
	Description      string
}

type LeaderboardKind string

const (
	LeaderboardStreak LeaderboardKind = "streak"
	LeaderboardTotal  LeaderboardKind = "total"
)

func (k LeaderboardKind) Valid() bool {
	return k == LeaderboardStreak || k == LeaderboardTotal
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	Avatar        string `json:"avatar"`
	CurrentStreak int    `json:"current_streak"`
	TotalCheckIns int    `json:"total_check_ins"`
}

type UserRank struct {
	Rank       int `json:"rank"`
	TotalUsers int `json:"total_users"`
}

// PlannedTheme is a stored month theme for a user's year plan.
type PlannedTheme struct {
	UserID        string
	Year          int
	RelativeMonth int
	Theme         string
	Description   string
	Emoji         string
	StartDate     string
	EndDate       string
	Generated     bool
}
