package services

import (
	"context"
	"errors"
	"time"

	"github.com/clubsphere/backend/entities"
	"github.com/clubsphere/backend/repositories"
)

type UserService struct {
	userRepository UserRepository
	now            func() time.Time
}

func NewUserService(userRepository UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
		now:            time.Now,
	}
}

// UpsertOnLogin creates the user on first login with the default role, or
// refreshes last_loggedIn on subsequent logins. Returns whether the user was
// created.
func (s *UserService) UpsertOnLogin(ctx context.Context, email, name, photoURL string) (bool, error) {
	_, err := s.userRepository.FindOneByEmail(ctx, email)
	if err == nil {
		return false, s.userRepository.UpdateLastLoggedIn(ctx, email, isoNow(s.now()))
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return false, err
	}

	user := entities.User{
		Email:        email,
		Name:         name,
		PhotoURL:     photoURL,
		Role:         entities.RoleMember,
		CreatedAt:    isoNow(s.now()),
		LastLoggedIn: isoNow(s.now()),
	}

	return true, s.userRepository.InsertOne(ctx, user)
}

func (s *UserService) FindOneByEmail(ctx context.Context, email string) (*entities.User, error) {
	return s.userRepository.FindOneByEmail(ctx, email)
}

// GetRole reports the persisted role of a user, or "" when the user is
// unknown.
func (s *UserService) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.userRepository.FindOneByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return user.Role, nil
}

// SetRole assigns a role unconditionally: last write wins, and the target is
// not required to exist.
func (s *UserService) SetRole(ctx context.Context, email, role string) error {
	return s.userRepository.UpdateRole(ctx, email, role)
}

func (s *UserService) ListOthers(ctx context.Context, callerEmail string) ([]*entities.User, error) {
	return s.userRepository.FindAllExcept(ctx, callerEmail)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.userRepository.CountAll(ctx)
}
