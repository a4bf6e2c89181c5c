package testutil

import (
	"testing"
	"time"

	"github.com/localnerve/waitinglist/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Seeded lookup ids
const (
	SpeciesDog    = 1
	SpeciesCat    = 2
	SpeciesRabbit = 5
	SizeLarge     = 2
	SizeSmall     = 4
)

// Date is a calendar date as UTC midnight
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DatePtr is Date as a pointer, for nullable columns
func DatePtr(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}

// Owner inserts a contact
func Owner(t testing.TB, db *gorm.DB, name, address string, siteID uint64) models.Owner {
	t.Helper()
	o := models.Owner{
		OwnerName:    name,
		OwnerSurname: name,
		OwnerAddress: address,
		OwnerTown:    "Exeter",
		EmailAddress: "contact@example.com",
		SiteID:       siteID,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

// Entry inserts a waiting list entry, filling species, urgency and description when unset
func Entry(t testing.TB, db *gorm.DB, e models.WaitingListEntry) models.WaitingListEntry {
	t.Helper()
	if e.SpeciesID == 0 {
		e.SpeciesID = SpeciesDog
	}
	if e.Urgency == 0 {
		e.Urgency = 5
	}
	if e.AnimalDescription == "" {
		e.AnimalDescription = "Brown terrier"
	}
	if e.DatePutOnList.IsZero() {
		e.DatePutOnList = Date(2026, time.January, 1)
	}
	require.NoError(t, db.Create(&e).Error)
	return e
}

// Reload reads an entry back from the store
func Reload(t testing.TB, db *gorm.DB, id uint64) models.WaitingListEntry {
	t.Helper()
	var e models.WaitingListEntry
	require.NoError(t, db.First(&e, id).Error)
	return e
}

// Count counts rows of model matching the condition
func Count(t testing.TB, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
