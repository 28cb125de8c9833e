package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ─────────────────────────────────────────────
// GetAppVersion / GetBuildInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetBuildInfo_ConfiguredVersionWins(t *testing.T) {
	build := models.NewAppBuildInfo("0.9.0", "2026-10-01", "abc123")
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, build, logger.Nop())
	require.NoError(t, err)

	info := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestGetBuildInfo_MissingValuesAreNotAvailable(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "dev"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	raw, err := json.Marshal(svc.GetBuildInfo(context.Background()))
	require.NoError(t, err)

	assert.JSONEq(t, `{"version":"dev","date":"N/A","commit":"N/A"}`, string(raw))
}
