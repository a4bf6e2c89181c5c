package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func observed(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return wrap(zap.New(core)), logs
}

func TestParseLevel(t *testing.T) {
	require.NotNil(t, parseLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, *parseLevel("warn"))
	assert.Nil(t, parseLevel("verbose"))
}

func TestNamedAddsComponent(t *testing.T) {
	log, logs := observed(zapcore.InfoLevel)

	log.Named("scheduler").Info("tick", Int("removed", 2))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "scheduler", entry.LoggerName)
	assert.Equal(t, int64(2), entry.ContextMap()["removed"])
}

func TestGormLoggerTrace(t *testing.T) {
	log, logs := observed(zapcore.DebugLevel)
	g := NewGormLogger(log, gormlogger.Warn)
	sql := func() (string, int64) { return "SELECT 1", 1 }

	g.Trace(context.Background(), time.Now(), sql, nil)
	assert.Zero(t, logs.Len(), "fast queries stay quiet at warn")

	g.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Zero(t, logs.Len())

	g.Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "query failed", logs.All()[0].Message)

	g.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "slow query", logs.All()[1].Message)

	g.LogMode(gormlogger.Info).Trace(context.Background(), time.Now(), sql, nil)
	require.Equal(t, 3, logs.Len())
	assert.Equal(t, "query", logs.All()[2].Message)
}
