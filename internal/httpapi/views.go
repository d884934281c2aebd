package httpapi

import (
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/progress"
	"github.com/rich365/rich365/internal/service"
)

type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	MBTI     string `json:"mbti"`
	Role     string `json:"role"`
	Goal     string `json:"goal,omitempty"`
}

func toUserView(u *domain.User) userView {
	return userView{
		ID:       u.ID,
		Username: u.DisplayName(),
		Avatar:   u.DisplayAvatar(),
		MBTI:     string(u.Profile.PersonalityType),
		Role:     string(u.Profile.Role),
		Goal:     u.Profile.Goal,
	}
}

type statsView struct {
	TotalCheckIns   int      `json:"total_check_ins"`
	CurrentStreak   int      `json:"current_streak"`
	LongestStreak   int      `json:"longest_streak"`
	TotalCoins      int      `json:"total_coins"`
	Badges          []string `json:"badges"`
	LastCheckInDate string   `json:"last_check_in_date,omitempty"`
}

func toStatsView(s domain.UserStats) statsView {
	badges := s.Badges
	if badges == nil {
		badges = []string{}
	}
	return statsView{
		TotalCheckIns:   s.TotalCheckIns,
		CurrentStreak:   s.CurrentStreak,
		LongestStreak:   s.LongestStreak,
		TotalCoins:      s.TotalCoins,
		Badges:          badges,
		LastCheckInDate: s.LastCheckInDate,
	}
}

type badgeView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Requirement int    `json:"requirement"`
	Kind        string `json:"kind"`
}

func toBadgeViews(badges []domain.Badge) []badgeView {
	out := make([]badgeView, 0, len(badges))
	for _, b := range badges {
		out = append(out, badgeView{
			ID: b.ID, Name: b.Name, Emoji: b.Emoji, Description: b.Description,
			Requirement: b.Requirement, Kind: string(b.Kind),
		})
	}
	return out
}

type treeView struct {
	Level            int    `json:"level"`
	Name             string `json:"name"`
	Emoji            string `json:"emoji"`
	RequiredCheckIns int    `json:"required_check_ins"`
	Description      string `json:"description"`
}

func toTreeView(t *domain.TreeLevel) *treeView {
	if t == nil {
		return nil
	}
	return &treeView{Level: t.Level, Name: t.Name, Emoji: t.Emoji, RequiredCheckIns: t.RequiredCheckIns, Description: t.Description}
}

type progressView struct {
	Stats        statsView   `json:"stats"`
	Earned       []badgeView `json:"earned_badges"`
	NextBadge    *badgeView  `json:"next_badge,omitempty"`
	BadgeRemain  int         `json:"next_badge_remaining"`
	Tree         *treeView   `json:"tree"`
	NextTree     *treeView   `json:"next_tree,omitempty"`
	TreeProgress float64     `json:"tree_progress"`
}

func toProgressView(r *service.ProgressReport) progressView {
	v := progressView{
		Stats:        toStatsView(r.Stats),
		Earned:       toBadgeViews(r.Earned),
		BadgeRemain:  r.BadgeRemain,
		Tree:         toTreeView(&r.Tree),
		NextTree:     toTreeView(r.NextTree),
		TreeProgress: r.TreeProgress,
	}
	if r.NextBadge != nil {
		next := toBadgeViews([]domain.Badge{*r.NextBadge})[0]
		v.NextBadge = &next
	}
	return v
}

type checkInView struct {
	Stats     statsView   `json:"stats"`
	NewBadges []badgeView `json:"new_badges"`
}

func toCheckInView(r *progress.Result) checkInView {
	return checkInView{Stats: toStatsView(r.Stats), NewBadges: toBadgeViews(r.NewBadges)}
}

type plannedThemeView struct {
	RelativeMonth int    `json:"relative_month"`
	Theme         string `json:"theme"`
	Description   string `json:"description"`
	Emoji         string `json:"emoji"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Generated     bool   `json:"generated"`
}

func toPlannedThemeViews(in []domain.PlannedTheme) []plannedThemeView {
	out := make([]plannedThemeView, 0, len(in))
	for _, t := range in {
		out = append(out, plannedThemeView{
			RelativeMonth: t.RelativeMonth, Theme: t.Theme, Description: t.Description, Emoji: t.Emoji,
			StartDate: t.StartDate, EndDate: t.EndDate, Generated: t.Generated,
		})
	}
	return out
}
