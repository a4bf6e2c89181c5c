package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localnerve/waitinglist/internal/i18n"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/models"
	"github.com/localnerve/waitinglist/internal/testutil"
	"github.com/localnerve/waitinglist/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateAnimal(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{
		OwnerID:                owner.ID,
		SpeciesID:              testutil.SpeciesRabbit,
		AnimalDescription:      "White doe",
		ReasonForWantingToPart: "Allergies",
		Comments:               "Bites when handled",
	})

	blobID, err := svc.blobs.Put(ctx, db, "/waitinglist/"+itoa(e.ID), "Photo.JPG", []byte("jpeg bytes"))
	require.NoError(t, err)
	photo := models.Media{
		MediaName: "Photo.JPG", MediaMimeType: "image/jpeg", MediaType: models.MediaTypeFile,
		MediaNotes: "front view", WebsitePhoto: true, LinkID: e.ID, LinkTypeID: models.MediaLinkWaitingList,
		Date: testNow, DBFSID: blobID, MediaSize: 10, UpdatedSinceLastPublish: true,
	}
	report := models.Media{
		MediaName: "https://example.com/vet-report.pdf", MediaType: models.MediaTypeDocumentLink,
		MediaNotes: "vet report", LinkID: e.ID, LinkTypeID: models.MediaLinkWaitingList, Date: testNow,
	}
	require.NoError(t, db.Create(&photo).Error)
	require.NoError(t, db.Create(&report).Error)
	require.NoError(t, db.Create(&models.Log{
		LinkID: e.ID, LinkType: models.LogLinkWaitingList, LogTypeID: 3, Date: testNow, Comments: "Phoned owner",
	}).Error)

	animalID, err := svc.CreateAnimal(ctx, e.ID, "alice")
	require.NoError(t, err)

	var animal models.Animal
	require.NoError(t, db.First(&animal, animalID).Error)
	assert.Equal(t, "Waiting List "+itoa(e.ID), animal.AnimalName)
	assert.Equal(t, "White doe", animal.Markings)
	assert.Equal(t, "Allergies", animal.ReasonForEntry)
	assert.Equal(t, "Bites when handled", animal.HiddenAnimalDetails)
	assert.Equal(t, uint64(testutil.SpeciesRabbit), animal.SpeciesID)
	assert.Equal(t, owner.ID, animal.BroughtInByOwnerID)
	assert.Equal(t, owner.ID, animal.OriginalOwnerID)
	assert.True(t, animal.EstimatedDOB)
	assert.True(t, testutil.Date(2025, time.March, 1).Equal(animal.DateOfBirth))
	assert.True(t, testutil.Date(2026, time.March, 1).Equal(animal.DateBroughtIn))
	assert.Equal(t, "2026"+padded(animalID), animal.ShelterCode)

	entry := testutil.Reload(t, db, e.ID)
	assert.False(t, entry.Active())
	assert.Equal(t, "Moved to animal record "+animal.ShelterCode, entry.ReasonForRemoval)

	media, err := svc.satellites.Media(db, models.MediaLinkAnimal, animalID)
	require.NoError(t, err)
	require.Len(t, media, 2)

	file, link := media[0], media[1]
	assert.Equal(t, itoa(file.ID)+".jpg", file.MediaName)
	assert.Equal(t, "image/jpeg", file.MediaMimeType)
	assert.Equal(t, "front view", file.MediaNotes)
	assert.True(t, file.WebsitePhoto)
	assert.True(t, file.NewSinceLastPublish)
	assert.False(t, file.UpdatedSinceLastPublish)
	assert.NotEqual(t, blobID, file.DBFSID)
	assert.Equal(t, int64(len("jpeg bytes")), file.MediaSize)

	content, err := svc.blobs.Get(ctx, db, file.DBFSID)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), content)

	assert.Equal(t, itoa(link.ID)+".pdf", link.MediaName)
	assert.Equal(t, "application/pdf", link.MediaMimeType)
	assert.Equal(t, "vet report", link.MediaNotes)
	assert.Zero(t, link.DBFSID)

	files, err := svc.blobs.List(ctx, db, "/animal/"+itoa(animalID))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	logs, err := svc.satellites.Logs(db, models.LogLinkAnimal, animalID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Phoned owner", logs[0].Comments)

	// the entry keeps its own satellites
	counts, err := svc.SatelliteCounts(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, SatelliteCounts{ID: e.ID, Media: 2, Logs: 1}, counts)
}

func TestCreateAnimalManualCodes(t *testing.T) {
	svc, db := newTestService(t)
	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: owner.ID})
	setConfig(t, db, KeyManualCodes, "Yes")
	setConfig(t, db, KeyShowTimeBroughtIn, "Yes")
	setConfig(t, db, KeyDefaultBreed, "7")

	animalID, err := svc.CreateAnimal(context.Background(), e.ID, "alice")
	require.NoError(t, err)

	var animal models.Animal
	require.NoError(t, db.First(&animal, animalID).Error)
	assert.Equal(t, "WL"+itoa(e.ID), animal.ShelterCode)
	assert.Equal(t, "WL"+itoa(e.ID), animal.ShortCode)
	assert.Equal(t, uint64(7), animal.BreedID)
	assert.Equal(t, uint64(7), animal.Breed2ID)
	assert.True(t, testNow.Equal(animal.DateBroughtIn))
	assert.Equal(t, "Moved to animal record WL"+itoa(e.ID), testutil.Reload(t, db, e.ID).ReasonForRemoval)
}

func TestCreateAnimalMissingEntry(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.CreateAnimal(context.Background(), 42, "alice")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Zero(t, testutil.Count(t, db, &models.Animal{}, "1 = 1"))
}

type failingAnimals struct{}

func (failingAnimals) InsertFromForm(*gorm.DB, AnimalForm, string) (uint64, string, error) {
	return 0, "", errors.New("animal table is read only")
}

func TestCreateAnimalRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	locale, err := i18n.New("en-GB", "UTC", i18n.FixedClock{T: testNow})
	require.NoError(t, err)
	svc := NewWaitingList(db, locale, nil, logger.NewNop(), WithAnimals(failingAnimals{}))

	owner := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	e := testutil.Entry(t, db, models.WaitingListEntry{OwnerID: owner.ID})
	require.NoError(t, db.Create(&models.Log{
		LinkID: e.ID, LinkType: models.LogLinkWaitingList, LogTypeID: 3, Date: testNow, Comments: "Phoned owner",
	}).Error)

	_, err = svc.CreateAnimal(ctx, e.ID, "alice")
	assert.ErrorContains(t, err, "read only")

	entry := testutil.Reload(t, db, e.ID)
	assert.True(t, entry.Active())
	assert.Equal(t, e.RecordVersion, entry.RecordVersion)
	assert.Zero(t, testutil.Count(t, db, &models.Log{}, "link_type = ?", models.LogLinkAnimal))
}
