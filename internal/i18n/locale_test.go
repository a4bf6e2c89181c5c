package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(t *testing.T, locale, zone string, now time.Time) *Locale {
	t.Helper()
	l, err := New(locale, zone, FixedClock{T: now})
	require.NoError(t, err)
	return l
}

func TestTodayUsesConfiguredZone(t *testing.T) {
	// 23:30 UTC is already the next day in Berlin
	now := time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), fixed(t, "en-GB", "UTC", now).Today())
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), fixed(t, "de-DE", "Europe/Berlin", now).Today())

	l := fixed(t, "en-GB", "UTC", now)
	assert.Equal(t, time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC), l.TodayOffset(14))
	assert.Equal(t, now, l.Now())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("en-GB", "Mars/Olympus", nil)
	assert.Error(t, err)

	_, err = New("!!", "UTC", nil)
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Waiting List 12", fixed(t, "en-GB", "UTC", now).T(MsgWaitingListName, 12))
	assert.Equal(t, "Warteliste 12", fixed(t, "de", "UTC", now).T(MsgWaitingListName, 12))
	assert.Equal(t, "Moved to animal record 2026001", fixed(t, "en", "UTC", now).T(MsgMovedToAnimal, "2026001"))
	assert.Equal(t, "La description ne peut pas être vide", fixed(t, "fr-FR", "UTC", now).T(MsgDescriptionBlank))
}

func TestDateDiff(t *testing.T) {
	now := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)
	en := fixed(t, "en-GB", "UTC", now)
	es := fixed(t, "es", "UTC", now)

	tests := []struct {
		from time.Time
		en   string
		es   string
	}{
		{time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), "0 days", "0 días"},
		{time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), "1 day", "1 día"},
		{time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC), "5 days", "5 días"},
		{time.Date(2026, 1, 24, 0, 0, 0, 0, time.UTC), "1 week", "1 semana"},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "4 weeks", "4 semanas"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.en, en.DateDiff(tt.from, en.Now()))
		assert.Equal(t, tt.es, es.DateDiff(tt.from, es.Now()))
	}
}

func TestDateHelpers(t *testing.T) {
	d := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), AddDays(d, 14))
	assert.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), SubtractYears(d, 1))
	assert.Equal(t, 14, DaysBetween(d, AddDays(d, 14).Add(5*time.Hour)))
	assert.Equal(t, -1, DaysBetween(d, d.Add(-time.Minute)))
	assert.True(t, After(d.Add(time.Second), d))
	assert.False(t, After(d, d))
}
