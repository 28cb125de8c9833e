package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/config"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/logger"
	"github.com/owenmerry/skyscanner-flight-search-sub002/internal/service"
)

// http.NewHandler only stores the services pointer, so an empty value is
// enough for construction tests.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
