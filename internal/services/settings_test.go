package services

import (
	"testing"

	"github.com/localnerve/waitinglist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	db := testutil.NewDB(t)
	s := NewSettings(db)

	bySpecies, err := s.RankBySpecies()
	require.NoError(t, err)
	assert.False(t, bySpecies)

	period, err := s.UrgencyUpdatePeriod()
	require.NoError(t, err)
	assert.Equal(t, 14, period)

	d, err := s.AnimalDefaults()
	require.NoError(t, err)
	assert.Equal(t, AnimalDefaults{
		TypeID: 1, EntryReasonID: 1, BreedID: 1, ColourID: 1, SizeID: 1, LocationID: 1,
	}, d)
}

func TestSettingsParsing(t *testing.T) {
	db := testutil.NewDB(t)
	s := NewSettings(db)

	require.NoError(t, s.Set(KeyRankBySpecies, "Yes"))
	require.NoError(t, s.Set(KeyUrgencyUpdatePeriod, "not a number"))
	require.NoError(t, s.Set(KeyDefaultLocation, "-4"))

	bySpecies, err := s.RankBySpecies()
	require.NoError(t, err)
	assert.True(t, bySpecies)

	period, err := s.UrgencyUpdatePeriod()
	require.NoError(t, err)
	assert.Equal(t, defaultUrgencyPeriod, period)

	d, err := s.AnimalDefaults()
	require.NoError(t, err)
	assert.Zero(t, d.LocationID)

	// Set overwrites
	require.NoError(t, s.Set(KeyRankBySpecies, "No"))
	bySpecies, err = s.RankBySpecies()
	require.NoError(t, err)
	assert.False(t, bySpecies)
}

func TestUrgencyUpdatePeriodNegative(t *testing.T) {
	s := NewSettings(testutil.NewDB(t))
	require.NoError(t, s.Set(KeyUrgencyUpdatePeriod, "-7"))

	period, err := s.UrgencyUpdatePeriod()
	require.NoError(t, err)
	assert.Zero(t, period)
}
