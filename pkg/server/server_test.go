package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getjsond/jsond/pkg/config"
)

func TestServerLifecycle(t *testing.T) {
	cfg := config.Default()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0

	srv := New(cfg, testStore())
	assert.False(t, srv.IsRunning())
	assert.Equal(t, 0, srv.Uptime())

	require.NoError(t, srv.Start())
	assert.True(t, srv.IsRunning())

	// Double start is refused while running.
	assert.Error(t, srv.Start())

	require.NoError(t, srv.Stop())
	assert.False(t, srv.IsRunning())

	// Stop is idempotent.
	assert.NoError(t, srv.Stop())
}

func TestServerNilConfig(t *testing.T) {
	srv := New(nil, testStore())
	require.NotNil(t, srv)
	assert.Equal(t, config.Default().Port, srv.cfg.Port)
}
