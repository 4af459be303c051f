package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/identity"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/cache"
)

func TestProfileService_LoadProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves from repository and caches snapshot", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := newTestUser(t)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

		store := cache.NewMemoryStore()
		svc := NewProfileService(repo, store, 15*time.Minute, zap.NewNop())

		profile := svc.LoadProfile(ctx, user.ID, user.Email)
		assert.Equal(t, "Mandy Manager", profile.DisplayName)
		assert.Equal(t, "Store Manager", profile.DisplayRole)

		// Second load is served from the snapshot, no second repo call
		again := svc.LoadProfile(ctx, user.ID, user.Email)
		assert.Equal(t, profile, again)
		repo.AssertExpectations(t)
	})

	t.Run("missing account falls back to email local part", func(t *testing.T) {
		repo := new(MockUserRepository)
		userID := uuid.New()
		repo.On("FindByID", mock.Anything, userID).Return(nil, shared.ErrNotFound)

		svc := NewProfileService(repo, cache.NewMemoryStore(), time.Minute, zap.NewNop())
		profile := svc.LoadProfile(ctx, userID, "jane.doe@example.com")

		assert.Equal(t, "jane.doe", profile.DisplayName)
		assert.Equal(t, identity.RoleStaff, profile.Role)
		assert.Equal(t, "Staff", profile.DisplayRole)
	})

	t.Run("repository outage also falls back", func(t *testing.T) {
		repo := new(MockUserRepository)
		userID := uuid.New()
		repo.On("FindByID", mock.Anything, userID).Return(nil, assert.AnError)

		svc := NewProfileService(repo, cache.NewMemoryStore(), time.Minute, zap.NewNop())
		profile := svc.LoadProfile(ctx, userID, "ops@example.com")
		assert.Equal(t, "ops", profile.DisplayName)
	})

	t.Run("fallback is never cached", func(t *testing.T) {
		repo := new(MockUserRepository)
		userID := uuid.New()
		repo.On("FindByID", mock.Anything, userID).Return(nil, shared.ErrNotFound).Twice()

		store := cache.NewMemoryStore()
		svc := NewProfileService(repo, store, time.Minute, zap.NewNop())

		svc.LoadProfile(ctx, userID, "x@example.com")
		svc.LoadProfile(ctx, userID, "x@example.com")
		repo.AssertExpectations(t)
	})

	t.Run("corrupt snapshot falls through to repository", func(t *testing.T) {
		repo := new(MockUserRepository)
		user := newTestUser(t)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()

		store := cache.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "profile:"+user.ID.String(), "{not json", time.Minute))

		svc := NewProfileService(repo, store, time.Minute, zap.NewNop())
		profile := svc.LoadProfile(ctx, user.ID, user.Email)
		assert.Equal(t, "Mandy Manager", profile.DisplayName)
	})
}

func TestProfileService_Invalidate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	user := newTestUser(t)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Twice()

	store := cache.NewMemoryStore()
	svc := NewProfileService(repo, store, time.Minute, zap.NewNop())

	svc.LoadProfile(ctx, user.ID, user.Email)
	svc.Invalidate(ctx, user.ID)
	svc.LoadProfile(ctx, user.ID, user.Email)
	repo.AssertExpectations(t)
}

func TestFallbackProfile(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		email    string
		wantName string
	}{
		{"email local part", "jane.doe@example.com", "jane.doe"},
		{"no at sign", "janedoe", "janedoe"},
		{"empty email", "", "Staff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := FallbackProfile(userID, tt.email)
			assert.Equal(t, tt.wantName, profile.DisplayName)
			assert.Equal(t, identity.RoleStaff, profile.Role)
		})
	}
}
