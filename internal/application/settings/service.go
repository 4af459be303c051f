package settings

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/cache"
)

const mainSiteURLKey = "settings:main_site_url"

// Service stores portal-wide preferences in the shared KV store.
// Settings have no TTL; they live until overwritten.
type Service struct {
	store  cache.Store
	logger *zap.Logger
}

// NewService creates a new settings Service
func NewService(store cache.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.Named("settings_service"),
	}
}

// MainSiteURL returns the configured storefront URL, empty when unset
func (s *Service) MainSiteURL(ctx context.Context) (string, error) {
	value, ok, err := s.store.Get(ctx, mainSiteURLKey)
	if err != nil {
		s.logger.Error("Failed to read main site URL", zap.Error(err))
		return "", shared.ErrFetchFailed
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// SetMainSiteURL validates and stores the storefront URL. An empty
// value clears the setting.
func (s *Service) SetMainSiteURL(ctx context.Context, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if err := s.store.Delete(ctx, mainSiteURLKey); err != nil {
			return shared.ErrWriteFailed
		}
		return nil
	}

	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return shared.NewDomainError("INVALID_URL", "Main site URL must be an absolute http(s) URL")
	}

	if err := s.store.Set(ctx, mainSiteURLKey, raw, 0); err != nil {
		s.logger.Error("Failed to store main site URL", zap.Error(err))
		return shared.ErrWriteFailed
	}
	return nil
}
