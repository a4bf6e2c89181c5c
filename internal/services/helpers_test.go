package services

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/localnerve/waitinglist/internal/i18n"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testNow is 1 March 2026, 10:00 UTC
var testNow = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*WaitingList, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	locale, err := i18n.New("en-GB", "UTC", i18n.FixedClock{T: testNow})
	require.NoError(t, err)
	return NewWaitingList(db, locale, nil, logger.NewNop()), db
}

func setConfig(t *testing.T, db *gorm.DB, key, value string) {
	t.Helper()
	require.NoError(t, NewSettings(db).Set(key, value))
}

func rowIDs(rows []WaitingListRow) []uint64 {
	ids := make([]uint64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func padded(id uint64) string {
	return fmt.Sprintf("%03d", id)
}
