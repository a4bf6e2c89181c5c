package services

import (
	"context"
	"testing"
	"time"

	"github.com/localnerve/waitinglist/internal/models"
	"github.com/localnerve/waitinglist/internal/testutil"
	"github.com/localnerve/waitinglist/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{
		OwnerID: owner.ID, SizeID: testutil.SizeLarge, Urgency: 3,
		DatePutOnList: testutil.Date(2026, time.January, 1),
	})
	require.NoError(t, db.Create(&models.Media{
		MediaName: "12.jpg", WebsitePhoto: true, MediaNotes: "portrait",
		LinkID: e.ID, LinkTypeID: models.MediaLinkWaitingList, Date: testNow,
	}).Error)

	row, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, row.ID)
	assert.Equal(t, "Dog", row.SpeciesName)
	assert.Equal(t, "Large", row.SizeName)
	assert.Equal(t, "Medium", row.UrgencyName)
	assert.Equal(t, "1 High Street", row.OwnerAddress)
	require.NotNil(t, row.Rank)
	assert.Equal(t, 1, *row.Rank)
	assert.Equal(t, 59, row.DaysOnList)
	assert.Equal(t, "8 weeks", row.TimeOnList)
	require.NotNil(t, row.WebsiteMediaName)
	assert.Equal(t, "12.jpg", *row.WebsiteMediaName)
	assert.Equal(t, "portrait", *row.WebsiteMediaNotes)

	_, err = svc.Get(ctx, e.ID+1)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetWithoutOptionalJoins(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{
		OwnerID: owner.ID, DatePutOnList: testutil.Date(2026, time.February, 26),
		DateRemovedFromList: testutil.DatePtr(2026, time.February, 28),
	})

	row, err := svc.Get(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Nil(t, row.Rank)
	assert.Equal(t, "", row.SizeName)
	assert.Nil(t, row.WebsiteMediaID)
	assert.Equal(t, "3 days", row.TimeOnList)
}

func TestPersonName(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: owner.ID})

	name, err := svc.PersonName(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", name)

	_, err = svc.PersonName(context.Background(), e.ID+1)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSatelliteCounts(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: owner.ID})
	require.NoError(t, db.Create(&models.Diary{LinkID: e.ID, LinkType: models.DiaryLinkWaitingList, DiaryDateTime: testNow}).Error)
	require.NoError(t, db.Create(&models.Diary{LinkID: e.ID, LinkType: models.DiaryLinkWaitingList, DiaryDateTime: testNow}).Error)
	// same id, animal link type
	require.NoError(t, db.Create(&models.Diary{LinkID: e.ID, LinkType: models.DiaryLinkAnimal, DiaryDateTime: testNow}).Error)

	counts, err := svc.SatelliteCounts(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, SatelliteCounts{ID: e.ID, Diary: 2}, counts)

	_, err = svc.SatelliteCounts(context.Background(), e.ID+1)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
