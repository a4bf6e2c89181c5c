package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankEntries(t *testing.T) {
	rows := []rankRow{
		{ID: 10, SpeciesID: 1},
		{ID: 4, SpeciesID: 1},
		{ID: 7, SpeciesID: 2},
		{ID: 2, SpeciesID: 2},
		{ID: 9, SpeciesID: 5},
	}

	assert.Equal(t, map[uint64]int{10: 1, 4: 2, 7: 3, 2: 4, 9: 5}, rankEntries(rows, false))
	assert.Equal(t, map[uint64]int{10: 1, 4: 2, 7: 1, 2: 2, 9: 1}, rankEntries(rows, true))
	assert.Empty(t, rankEntries(nil, true))
}
