package identity

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/identity"
	"github.com/shopadmin/backend/internal/infrastructure/cache"
)

const profileKeyPrefix = "profile:"

// ProfileService resolves the signed-in staff profile for the portal
// chrome. Resolution never fails: when the account record cannot be
// loaded, a profile is synthesized from the session email so the page
// still renders.
type ProfileService struct {
	users       identity.UserRepository
	snapshots   cache.Store
	snapshotTTL time.Duration
	logger      *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(users identity.UserRepository, snapshots cache.Store, snapshotTTL time.Duration, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		users:       users,
		snapshots:   snapshots,
		snapshotTTL: snapshotTTL,
		logger:      logger.Named("profile_service"),
	}
}

// LoadProfile returns the profile for a session, preferring the cached
// snapshot, then the account record, then an email-derived fallback.
func (s *ProfileService) LoadProfile(ctx context.Context, userID uuid.UUID, email string) identity.Profile {
	key := profileKeyPrefix + userID.String()

	if raw, ok, err := s.snapshots.Get(ctx, key); err == nil && ok {
		var profile identity.Profile
		if err := json.Unmarshal([]byte(raw), &profile); err == nil {
			return profile
		}
		// Corrupt snapshot, drop it and fall through to the repository
		_ = s.snapshots.Delete(ctx, key)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Profile lookup failed, using email fallback",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return FallbackProfile(userID, email)
	}

	profile := identity.ProfileFromUser(user)
	s.storeSnapshot(ctx, key, profile)
	return profile
}

// Invalidate drops the cached snapshot for a user, forcing the next
// LoadProfile to re-read the account record.
func (s *ProfileService) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := s.snapshots.Delete(ctx, profileKeyPrefix+userID.String()); err != nil {
		s.logger.Warn("Failed to invalidate profile snapshot",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
}

func (s *ProfileService) storeSnapshot(ctx context.Context, key string, profile identity.Profile) {
	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := s.snapshots.Set(ctx, key, string(raw), s.snapshotTTL); err != nil {
		s.logger.Warn("Failed to store profile snapshot", zap.Error(err))
	}
}

// FallbackProfile synthesizes a staff-role profile from the session
// email. The display name is the email local part; an empty email
// yields "Staff".
func FallbackProfile(userID uuid.UUID, email string) identity.Profile {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	if name == "" {
		name = "Staff"
	}
	return identity.Profile{
		UserID:      userID.String(),
		Email:       email,
		DisplayName: name,
		Role:        identity.RoleStaff,
		DisplayRole: identity.FormatRole(identity.RoleStaff),
	}
}
