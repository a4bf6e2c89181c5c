package testutil

import (
	"context"
	"fmt"
	"testing"

	gsqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/localnerve/waitinglist/internal/database"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory sqlite database, migrated and seeded with the default lookups
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(gsqlite.Open(dsn), logger.NewNop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	_, err = database.SeedLookups(context.Background(), db)
	require.NoError(t, err)

	return db
}
