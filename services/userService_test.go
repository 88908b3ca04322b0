package services

import (
	"context"
	"testing"

	"github.com/clubsphere/backend/entities"
	"github.com/clubsphere/backend/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*UserService, *mockUserRepo) {
	users := new(mockUserRepo)
	service := NewUserService(users)
	service.now = fixedNow

	return service, users
}

func TestUpsertOnLoginCreatesWithDefaultRole(t *testing.T) {
	service, users := newUserFixture()

	users.On("FindOneByEmail", mock.Anything, "alice@example.com").Return(nil, repositories.ErrNotFound)
	users.On("InsertOne", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.Email == "alice@example.com" &&
			u.Role == entities.RoleMember &&
			u.CreatedAt == "2025-03-15T10:30:00Z" &&
			u.LastLoggedIn == "2025-03-15T10:30:00Z"
	})).Return(nil)

	created, err := service.UpsertOnLogin(context.Background(), "alice@example.com", "Alice", "https://img.example/a.png")

	require.NoError(t, err)
	assert.True(t, created)
	users.AssertExpectations(t)
}

func TestUpsertOnLoginRefreshesExistingUser(t *testing.T) {
	service, users := newUserFixture()

	users.On("FindOneByEmail", mock.Anything, "alice@example.com").
		Return(&entities.User{Email: "alice@example.com", Role: entities.RoleAdmin}, nil)
	users.On("UpdateLastLoggedIn", mock.Anything, "alice@example.com", "2025-03-15T10:30:00Z").Return(nil)

	created, err := service.UpsertOnLogin(context.Background(), "alice@example.com", "Alice", "")

	require.NoError(t, err)
	assert.False(t, created)
	users.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestGetRoleUnknownUser(t *testing.T) {
	service, users := newUserFixture()

	users.On("FindOneByEmail", mock.Anything, "ghost@example.com").Return(nil, repositories.ErrNotFound)

	role, err := service.GetRole(context.Background(), "ghost@example.com")

	require.NoError(t, err)
	assert.Empty(t, role)
}

func TestGetRole(t *testing.T) {
	service, users := newUserFixture()

	users.On("FindOneByEmail", mock.Anything, "bob@example.com").
		Return(&entities.User{Email: "bob@example.com", Role: entities.RoleClubManager}, nil)

	role, err := service.GetRole(context.Background(), "bob@example.com")

	require.NoError(t, err)
	assert.Equal(t, entities.RoleClubManager, role)
}

func TestSetRole(t *testing.T) {
	service, users := newUserFixture()

	users.On("UpdateRole", mock.Anything, "bob@example.com", entities.RoleAdmin).Return(nil)

	require.NoError(t, service.SetRole(context.Background(), "bob@example.com", entities.RoleAdmin))
	users.AssertExpectations(t)
}
