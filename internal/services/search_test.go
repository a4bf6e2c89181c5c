package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/localnerve/waitinglist/internal/models"
	"github.com/localnerve/waitinglist/internal/testutil"
	"github.com/localnerve/waitinglist/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type listFixture struct {
	alice, bob, carol, removed models.WaitingListEntry
}

func seedList(t *testing.T, db *gorm.DB) listFixture {
	t.Helper()
	alice := testutil.Owner(t, db, "Alice Smith", "1 High Street", 0)
	bob := testutil.Owner(t, db, "Bob Jones", "2 Low Road", 2)
	carol := testutil.Owner(t, db, "Carol White", "3 Mill Lane", 3)

	return listFixture{
		alice: testutil.Entry(t, db, models.WaitingListEntry{
			OwnerID: alice.ID, Urgency: 2, SizeID: testutil.SizeLarge,
			DatePutOnList: testutil.Date(2026, time.January, 1),
		}),
		bob: testutil.Entry(t, db, models.WaitingListEntry{
			OwnerID: bob.ID, Urgency: 1, SpeciesID: testutil.SpeciesCat, SizeID: testutil.SizeSmall,
			AnimalDescription: "Grey tabby", DatePutOnList: testutil.Date(2026, time.January, 5),
		}),
		carol: testutil.Entry(t, db, models.WaitingListEntry{
			OwnerID: carol.ID, Urgency: 4, SizeID: testutil.SizeLarge,
			DatePutOnList: testutil.Date(2026, time.January, 3),
			ReasonForWantingToPart: "Moving abroad",
		}),
		removed: testutil.Entry(t, db, models.WaitingListEntry{
			OwnerID: alice.ID, Urgency: 1,
			DatePutOnList:       testutil.Date(2025, time.December, 1),
			DateRemovedFromList: testutil.DatePtr(2026, time.February, 1),
		}),
	}
}

func TestListDefaultOrderAndRanks(t *testing.T) {
	svc, db := newTestService(t)
	f := seedList(t, db)

	rows, err := svc.List(context.Background(), DefaultListFilter())
	require.NoError(t, err)
	require.Equal(t, []uint64{f.bob.ID, f.alice.ID, f.carol.ID}, rowIDs(rows))

	for i, r := range rows {
		require.NotNil(t, r.Rank)
		assert.Equal(t, i+1, *r.Rank)
	}
	assert.Equal(t, "Cat", rows[0].SpeciesName)
	assert.Equal(t, "Small", rows[0].SizeName)
	assert.Equal(t, "Urgent", rows[0].UrgencyName)
	assert.Equal(t, "Bob Jones", rows[0].OwnerName)
	assert.Equal(t, "", rows[0].Highlight)
}

func TestListRemovedEntriesHaveNoRank(t *testing.T) {
	svc, db := newTestService(t)
	f := seedList(t, db)

	filter := DefaultListFilter()
	filter.IncludeRemoved = true
	rows, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for _, r := range rows {
		if r.ID == f.removed.ID {
			assert.Nil(t, r.Rank)
		} else {
			assert.NotNil(t, r.Rank)
		}
	}
}

func TestListFilters(t *testing.T) {
	svc, db := newTestService(t)
	f := seedList(t, db)

	tests := []struct {
		name   string
		filter func(*ListFilter)
		want   []uint64
	}{
		{"priority floor", func(l *ListFilter) { l.PriorityFloor = 2 }, []uint64{f.bob.ID, f.alice.ID}},
		{"species", func(l *ListFilter) { l.Species = testutil.SpeciesDog }, []uint64{f.alice.ID, f.carol.ID}},
		{"size", func(l *ListFilter) { l.Size = testutil.SizeSmall }, []uint64{f.bob.ID}},
		{"address", func(l *ListFilter) { l.AddressContains = "high" }, []uint64{f.alice.ID}},
		{"name", func(l *ListFilter) { l.NameContains = "JONES" }, []uint64{f.bob.ID}},
		{"description", func(l *ListFilter) { l.DescriptionContains = "tabby" }, []uint64{f.bob.ID}},
		{"site", func(l *ListFilter) { l.SiteID = 2 }, []uint64{f.bob.ID, f.alice.ID}},
		{"no match", func(l *ListFilter) { l.NameContains = "nobody" }, []uint64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := DefaultListFilter()
			tt.filter(&filter)
			rows, err := svc.List(context.Background(), filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rowIDs(rows))
		})
	}
}

func TestListRejectsInvalidFilter(t *testing.T) {
	svc, _ := newTestService(t)

	filter := DefaultListFilter()
	filter.PriorityFloor = 0
	_, err := svc.List(context.Background(), filter)
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestRankBySpecies(t *testing.T) {
	svc, db := newTestService(t)
	f := seedList(t, db)
	setConfig(t, db, KeyRankBySpecies, "Yes")

	rows, err := svc.List(context.Background(), DefaultListFilter())
	require.NoError(t, err)

	ranks := map[uint64]int{}
	for _, r := range rows {
		require.NotNil(t, r.Rank)
		ranks[r.ID] = *r.Rank
	}
	assert.Equal(t, map[uint64]int{f.alice.ID: 1, f.carol.ID: 2, f.bob.ID: 1}, ranks)
}

func TestSimpleSearch(t *testing.T) {
	ctx := context.Background()
	svc, db := newTestService(t)
	f := seedList(t, db)

	chip := models.AdditionalField{FieldName: "chip", LinkType: models.AdditionalLinkWaitingList, Searchable: true}
	private := models.AdditionalField{FieldName: "private", LinkType: models.AdditionalLinkWaitingList}
	require.NoError(t, db.Create(&chip).Error)
	require.NoError(t, db.Create(&private).Error)
	require.NoError(t, db.Create(&models.Additional{
		LinkType: models.AdditionalLinkWaitingList, LinkID: f.alice.ID, AdditionalFieldID: chip.ID, Value: "Microchipped",
	}).Error)
	require.NoError(t, db.Create(&models.Additional{
		LinkType: models.AdditionalLinkWaitingList, LinkID: f.carol.ID, AdditionalFieldID: private.ID, Value: "microchip pending",
	}).Error)

	tests := []struct {
		name  string
		query string
		limit int
		site  uint64
		want  []uint64
	}{
		{"id", strconv.FormatUint(f.carol.ID, 10), 0, 0, []uint64{f.carol.ID}},
		{"owner name", "jones", 0, 0, []uint64{f.bob.ID}},
		{"searchable additional field", "MICRO", 0, 0, []uint64{f.alice.ID}},
		{"reason for wanting to part", "abroad", 0, 0, []uint64{f.carol.ID}},
		{"includes removed", "terrier", 0, 0, []uint64{f.alice.ID, f.carol.ID, f.removed.ID}},
		{"limit", "terrier", 2, 0, []uint64{f.alice.ID, f.carol.ID}},
		{"site", "terrier", 0, 2, []uint64{f.alice.ID, f.removed.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := svc.SimpleSearch(ctx, tt.query, tt.limit, tt.site)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rowIDs(rows))
		})
	}
}

func TestSimpleSearchEmptyQueryListsActive(t *testing.T) {
	svc, db := newTestService(t)
	f := seedList(t, db)

	rows, err := svc.SimpleSearch(context.Background(), "  ", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{f.bob.ID, f.alice.ID, f.carol.ID}, rowIDs(rows))
}
