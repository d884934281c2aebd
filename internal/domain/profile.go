package domain

import "time"

// Profile holds the two personalization axes and an optional goal.
type Profile struct {
	PersonalityType PersonalityType `json:"mbti"`
	Role            Role            `json:"role"`
	Goal            string          `json:"goal,omitempty"`
}

// Complete reports whether both axes are set.
func (p Profile) Complete() bool {
	return p.PersonalityType != "" && p.Role != ""
}

// Validate returns ErrProfileIncomplete when an axis is missing, or a
// ValidationError when an axis holds an unknown value.
func (p Profile) Validate() error {
	if !p.Complete() {
		return ErrProfileIncomplete
	}
	if !p.PersonalityType.Valid() {
		return &ValidationError{Field: "personality_type", Value: string(p.PersonalityType), Err: ErrInvalidPersonality}
	}
	if !p.Role.Valid() {
		return &ValidationError{Field: "role", Value: string(p.Role), Err: ErrInvalidRole}
	}
	return nil
}

// User is a locally stored account with its profile and display info.
type User struct {
	ID        string
	Username  string
	Avatar    string
	Profile   Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	DefaultUsername = "未命名用户"
	DefaultAvatar   = "⭐"
)

// DisplayName falls back to DefaultUsername.
func (u *User) DisplayName() string {
	if u.Username == "" {
		return DefaultUsername
	}
	return u.Username
}

// DisplayAvatar falls back to DefaultAvatar.
func (u *User) DisplayAvatar() string {
	if u.Avatar == "" {
		return DefaultAvatar
	}
	return u.Avatar
}
