package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rich365/rich365/internal/db"
	"github.com/rich365/rich365/internal/domain"
	"github.com/rich365/rich365/internal/repository"
)

// ErrNoCurrentUser is returned before anyone has onboarded.
var ErrNoCurrentUser = errors.New("no current user: run onboard first")

type profileService struct {
	users    repository.UserRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewProfileService(users repository.UserRepo, settings repository.SettingsRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		users:    users,
		settings: settings,
		uow:      uow,
		observer: combineObservers(observers),
		now:      time.Now,
	}
}

func (s *profileService) Onboard(ctx context.Context, p domain.Profile, username, avatar string) (user *domain.User, err error) {
	startedAt := time.Now()
	fields := map[string]any{"mbti": string(p.PersonalityType), "role": string(p.Role)}
	defer func() { report(ctx, s.observer, "onboard", "", startedAt, fields, err) }()

	if err = p.Validate(); err != nil {
		return nil, err
	}
	p.Goal = strings.TrimSpace(p.Goal)

	return db.InTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) (*domain.User, error) {
		users := repository.NewSQLiteUserRepo(tx)
		settings := repository.NewSQLiteSettingsRepo(tx)

		id, err := settings.Get(ctx, CurrentUserKey)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if id == "" {
			id = uuid.New().String()
		}
		u, err := s.upsert(ctx, users, id, p, username, avatar)
		if err != nil {
			return nil, err
		}
		fields["user_id"] = u.ID
		if err := settings.Put(ctx, CurrentUserKey, u.ID); err != nil {
			return nil, err
		}
		return u, nil
	})
}

func (s *profileService) SaveProfile(ctx context.Context, userID string, p domain.Profile, username, avatar string) (user *domain.User, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { report(ctx, s.observer, "save-profile", userID, startedAt, fields, err) }()

	if strings.TrimSpace(userID) == "" {
		return nil, &domain.ValidationError{Field: "user_id", Value: userID, Err: domain.ErrProfileIncomplete}
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	p.Goal = strings.TrimSpace(p.Goal)

	return db.InTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) (*domain.User, error) {
		return s.upsert(ctx, repository.NewSQLiteUserRepo(tx), userID, p, username, avatar)
	})
}

// upsert keeps existing display info when username or avatar is empty.
func (s *profileService) upsert(ctx context.Context, users repository.UserRepo, id string, p domain.Profile, username, avatar string) (*domain.User, error) {
	now := s.now().UTC()
	u, err := users.GetByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		u = &domain.User{
			ID:        id,
			Username:  strings.TrimSpace(username),
			Avatar:    strings.TrimSpace(avatar),
			Profile:   p,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := users.Create(ctx, u); err != nil {
			return nil, err
		}
		return u, nil
	case err != nil:
		return nil, err
	}

	u.Profile = p
	if v := strings.TrimSpace(username); v != "" {
		u.Username = v
	}
	if v := strings.TrimSpace(avatar); v != "" {
		u.Avatar = v
	}
	u.UpdatedAt = now
	if err := users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}
	return u, nil
}

func (s *profileService) UpdateDisplayInfo(ctx context.Context, userID, username, avatar string) error {
	return s.users.UpdateDisplayInfo(ctx, userID, strings.TrimSpace(username), strings.TrimSpace(avatar))
}

func (s *profileService) Current(ctx context.Context) (*domain.User, error) {
	id, err := s.settings.Get(ctx, CurrentUserKey)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoCurrentUser
	}
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoCurrentUser
	}
	return u, err
}

func (s *profileService) Use(ctx context.Context, userID string) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	return s.settings.Put(ctx, CurrentUserKey, userID)
}

func (s *profileService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
