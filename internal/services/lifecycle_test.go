package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localnerve/waitinglist/internal/i18n"
	"github.com/localnerve/waitinglist/internal/models"
	"github.com/localnerve/waitinglist/internal/testutil"
	"github.com/localnerve/waitinglist/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateValidationOrder(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)

	tests := []struct {
		name   string
		fields EntryFields
		want   string
	}{
		{"everything blank", EntryFields{}, i18n.MsgDescriptionBlank},
		{"no contact", EntryFields{AnimalDescription: "Spaniel"}, i18n.MsgContactRequired},
		{"no date", EntryFields{AnimalDescription: "Spaniel", OwnerID: owner.ID}, i18n.MsgDatePutOnBlank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreateRequest{EntryFields: tt.fields}, "alice")
			var verr *types.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.want, verr.Message)
		})
	}

	assert.Zero(t, testutil.Count(t, db, &models.WaitingListEntry{}, "1 = 1"))
	assert.Zero(t, testutil.Count(t, db, &models.AuditTrail{}, "1 = 1"))
}

func TestCreateSchedulesUrgencyUpdate(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	field := models.AdditionalField{FieldName: "chip", LinkType: models.AdditionalLinkWaitingList}
	require.NoError(t, db.Create(&field).Error)

	id, err := svc.Create(context.Background(), CreateRequest{EntryFields: EntryFields{
		SpeciesID:         testutil.SpeciesRabbit,
		DatePutOnList:     "2026-02-27",
		OwnerID:           owner.ID,
		AnimalDescription: "Lop eared rabbit",
		AdditionalValues:  map[uint64]string{field.ID: "981000"},
	}}, "alice")
	require.NoError(t, err)

	e := testutil.Reload(t, db, id)
	assert.True(t, e.Active())
	assert.Equal(t, defaultUrgency, e.Urgency)
	assert.True(t, testutil.Date(2026, time.February, 27).Equal(e.DatePutOnList))
	require.NotNil(t, e.UrgencyLastUpdatedDate)
	require.NotNil(t, e.UrgencyUpdateDate)
	assert.True(t, testutil.Date(2026, time.March, 1).Equal(*e.UrgencyLastUpdatedDate))
	assert.True(t, testutil.Date(2026, time.March, 15).Equal(*e.UrgencyUpdateDate))
	assert.Equal(t, "alice", e.CreatedBy)

	assert.Equal(t, int64(1), testutil.Count(t, db, &models.Additional{},
		"link_type = ? AND link_id = ? AND value = ?", models.AdditionalLinkWaitingList, id, "981000"))
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.AuditTrail{},
		"action = ? AND table_name = ? AND link_id = ?", models.AuditAdd, waitingListTable, id))
}

func TestCreateRejectsUnknownAdditionalField(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)

	_, err := svc.Create(context.Background(), CreateRequest{EntryFields: EntryFields{
		DatePutOnList:     "2026-02-27",
		OwnerID:           owner.ID,
		AnimalDescription: "Lop eared rabbit",
		AdditionalValues:  map[uint64]string{99: "x"},
	}}, "alice")
	assert.ErrorIs(t, err, types.ErrValidation)
	assert.Zero(t, testutil.Count(t, db, &models.WaitingListEntry{}, "1 = 1"))
}

func TestUpdateChecksVersionFirst(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: owner.ID, RecordVersion: 3})

	// stale version with invalid fields reports the conflict
	_, err := svc.Update(ctx, UpdateRequest{ID: e.ID, RecordVersion: 2}, "bob")
	var conflict *types.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, i18n.MsgRecordChanged, conflict.Message)

	_, err = svc.Update(ctx, UpdateRequest{ID: e.ID, RecordVersion: 3}, "bob")
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = svc.Update(ctx, UpdateRequest{ID: e.ID + 50, RecordVersion: 3}, "bob")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateReplacesFields(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	alice := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	bob := testutil.Owner(t, db, "Bob Jones", "2 Low Road", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: alice.ID, Comments: "call after 6"})

	req := UpdateRequest{
		ID:            e.ID,
		RecordVersion: types.FlexUint64(e.RecordVersion),
		EntryFields: EntryFields{
			SpeciesID:              testutil.SpeciesCat,
			SizeID:                 testutil.SizeSmall,
			DatePutOnList:          "2026-01-10",
			OwnerID:                bob.ID,
			AnimalDescription:      "Black cat",
			Urgency:                2,
			AutoRemovePolicy:       4,
			DateOfLastOwnerContact: "2026-02-20",
		},
	}
	version, err := svc.Update(ctx, req, "bob")
	require.NoError(t, err)
	assert.Equal(t, e.RecordVersion+1, version)

	got := testutil.Reload(t, db, e.ID)
	assert.Equal(t, version, got.RecordVersion)
	assert.Equal(t, bob.ID, got.OwnerID)
	assert.Equal(t, "Black cat", got.AnimalDescription)
	assert.Equal(t, 2, got.Urgency)
	assert.Equal(t, 4, got.AutoRemovePolicy)
	assert.Equal(t, "", got.Comments)
	assert.Equal(t, "bob", got.LastChangedBy)
	require.NotNil(t, got.DateOfLastOwnerContact)
	assert.True(t, testutil.Date(2026, time.February, 20).Equal(*got.DateOfLastOwnerContact))

	// the same version again is now stale
	_, err = svc.Update(ctx, req, "bob")
	assert.ErrorIs(t, err, types.ErrConflict)
}

func TestUpdateKeepsUrgencyWhenOmitted(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: owner.ID, Urgency: 2})

	_, err := svc.Update(context.Background(), UpdateRequest{
		ID:            e.ID,
		RecordVersion: types.FlexUint64(e.RecordVersion),
		EntryFields: EntryFields{
			SpeciesID:         testutil.SpeciesDog,
			DatePutOnList:     "2026-01-10",
			OwnerID:           owner.ID,
			AnimalDescription: "Brown dog",
		},
	}, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, testutil.Reload(t, db, e.ID).Urgency)
}

func TestRemoveKeepsReason(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	a := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: owner.ID, ReasonForRemoval: "rehomed privately"})
	b := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: owner.ID})

	require.NoError(t, svc.Remove(ctx, "alice", a.ID, b.ID))

	got := testutil.Reload(t, db, a.ID)
	require.NotNil(t, got.DateRemovedFromList)
	assert.True(t, testutil.Date(2026, time.March, 1).Equal(*got.DateRemovedFromList))
	assert.Equal(t, "rehomed privately", got.ReasonForRemoval)
	assert.Equal(t, a.RecordVersion+1, got.RecordVersion)
	assert.False(t, testutil.Reload(t, db, b.ID).Active())

	err := svc.Remove(ctx, "alice", 999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: owner.ID})
	other := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: owner.ID})
	field := models.AdditionalField{FieldName: "chip", LinkType: models.AdditionalLinkWaitingList}
	require.NoError(t, db.Create(&field).Error)

	for _, id := range []uint64{e.ID, other.ID} {
		blobID, err := svc.blobs.Put(ctx, db, "/waitinglist/"+itoa(id), "1.jpg", []byte("jpeg"))
		require.NoError(t, err)
		require.NoError(t, db.Create(&models.Media{
			MediaName: "1.jpg", LinkID: id, LinkTypeID: models.MediaLinkWaitingList, DBFSID: blobID, Date: testNow,
		}).Error)
		require.NoError(t, db.Create(&models.Diary{
			LinkID: id, LinkType: models.DiaryLinkWaitingList, DiaryDateTime: testNow, Subject: "Call owner",
		}).Error)
		require.NoError(t, db.Create(&models.Log{
			LinkID: id, LinkType: models.LogLinkWaitingList, LogTypeID: 1, Date: testNow,
		}).Error)
		require.NoError(t, db.Create(&models.Additional{
			LinkType: models.AdditionalLinkWaitingList, LinkID: id, AdditionalFieldID: field.ID, Value: "x",
		}).Error)
	}

	require.NoError(t, svc.Delete(ctx, e.ID, "alice"))

	assert.Zero(t, testutil.Count(t, db, &models.WaitingListEntry{}, "id = ?", e.ID))
	assert.Zero(t, testutil.Count(t, db, &models.Media{}, "link_id = ?", e.ID))
	assert.Zero(t, testutil.Count(t, db, &models.Diary{}, "link_id = ?", e.ID))
	assert.Zero(t, testutil.Count(t, db, &models.Log{}, "link_id = ?", e.ID))
	assert.Zero(t, testutil.Count(t, db, &models.Additional{}, "link_id = ?", e.ID))
	files, err := svc.blobs.List(ctx, db, "/waitinglist/"+itoa(e.ID))
	require.NoError(t, err)
	assert.Empty(t, files)

	counts, err := svc.SatelliteCounts(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, SatelliteCounts{ID: other.ID, Media: 1, Diary: 1, Logs: 1}, counts)
	files, err = svc.blobs.List(ctx, db, "/waitinglist/"+itoa(other.ID))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	assert.Equal(t, int64(1), testutil.Count(t, db, &models.AuditTrail{},
		"action = ? AND table_name = ? AND link_id = ?", models.AuditDelete, waitingListTable, e.ID))

	assert.ErrorIs(t, svc.Delete(ctx, e.ID, "alice"), types.ErrNotFound)
}
