package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rich365/rich365/internal/domain"
)

var testUserCounter atomic.Int64

// User options
type UserOption func(*domain.User)

func WithProfile(p domain.PersonalityType, r domain.Role) UserOption {
	return func(u *domain.User) {
		u.Profile.PersonalityType = p
		u.Profile.Role = r
	}
}

func WithGoal(goal string) UserOption {
	return func(u *domain.User) {
		u.Profile.Goal = goal
	}
}

func WithUsername(name string) UserOption {
	return func(u *domain.User) {
		u.Username = name
	}
}

func WithAvatar(avatar string) UserOption {
	return func(u *domain.User) {
		u.Avatar = avatar
	}
}

// WithoutProfile clears both personalization axes.
func WithoutProfile() UserOption {
	return func(u *domain.User) {
		u.Profile = domain.Profile{}
	}
}

// NewTestUser builds an INTJ entrepreneur with a fresh id.
func NewTestUser(opts ...UserOption) *domain.User {
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	u := &domain.User{
		ID:       uuid.New().String(),
		Username: fmt.Sprintf("user-%02d", testUserCounter.Add(1)),
		Avatar:   "🌱",
		Profile: domain.Profile{
			PersonalityType: domain.INTJ,
			Role:            domain.RoleEntrepreneur,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Check-in options
type CheckInOption func(*domain.CheckIn)

func WithNote(note string) CheckInOption {
	return func(c *domain.CheckIn) {
		c.Note = note
	}
}

func WithActionDate(date string) CheckInOption {
	return func(c *domain.CheckIn) {
		c.ActionDate = date
	}
}

func NewTestCheckIn(userID, date string, opts ...CheckInOption) *domain.CheckIn {
	c := &domain.CheckIn{
		UserID:     userID,
		Date:       date,
		ActionDate: date,
		CreatedAt:  time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// NewTestActions builds n consecutive actions starting at start.
func NewTestActions(start time.Time, n int, theme string) []domain.DailyAction {
	out := make([]domain.DailyAction, n)
	for i := range out {
		d := start.AddDate(0, 0, i)
		out[i] = domain.DailyAction{
			Date:        d.Format(domain.DateLayout),
			Title:       fmt.Sprintf("Action %d", i+1),
			Description: "做一件小事。",
			Emoji:       "🎯",
			Theme:       theme,
			Category:    domain.CategoryExecution,
		}
	}
	return out
}
