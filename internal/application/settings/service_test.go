package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/infrastructure/cache"
)

func TestService_MainSiteURL(t *testing.T) {
	ctx := context.Background()

	t.Run("unset returns empty", func(t *testing.T) {
		svc := NewService(cache.NewMemoryStore(), zap.NewNop())
		value, err := svc.MainSiteURL(ctx)
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		svc := NewService(cache.NewMemoryStore(), zap.NewNop())
		require.NoError(t, svc.SetMainSiteURL(ctx, "https://shop.example.com"))

		value, err := svc.MainSiteURL(ctx)
		require.NoError(t, err)
		assert.Equal(t, "https://shop.example.com", value)
	})

	t.Run("rejects non-http URLs", func(t *testing.T) {
		svc := NewService(cache.NewMemoryStore(), zap.NewNop())
		assert.Error(t, svc.SetMainSiteURL(ctx, "ftp://shop.example.com"))
		assert.Error(t, svc.SetMainSiteURL(ctx, "not a url"))
		assert.Error(t, svc.SetMainSiteURL(ctx, "https://"))
	})

	t.Run("empty value clears the setting", func(t *testing.T) {
		svc := NewService(cache.NewMemoryStore(), zap.NewNop())
		require.NoError(t, svc.SetMainSiteURL(ctx, "https://shop.example.com"))
		require.NoError(t, svc.SetMainSiteURL(ctx, ""))

		value, err := svc.MainSiteURL(ctx)
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}
