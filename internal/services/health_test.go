package services

import (
	"context"
	"net"
	"testing"

	"github.com/localnerve/waitinglist/internal/config"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listen(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	return "http://" + ln.Addr().String()
}

func TestHealthCheckHealthy(t *testing.T) {
	db := testutil.NewDB(t)
	cfg := &config.Config{DBType: "sqlite-pure", DBAppDatabase: "memory", AuthzURL: listen(t)}

	result := HealthCheck(context.Background(), cfg, db, nil, logger.NewNop())
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "ok", result.Authorizer)
	assert.Equal(t, "database", result.BlobStore)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, "sqlite-pure", result.Details["database_type"])
}

func TestHealthCheckAuthorizerDown(t *testing.T) {
	db := testutil.NewDB(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cfg := &config.Config{DBType: "sqlite-pure", AuthzURL: "http://" + addr}

	result := HealthCheck(context.Background(), cfg, db, nil, logger.NewNop())
	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "unreachable", result.Authorizer)
	assert.Contains(t, result.ErrorMessage, "Authorizer ping failed")
	assert.NotEmpty(t, result.Details["authorizer_error"])
}
