// settings.go
//
// Shelter waiting list data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of waitinglist.
// waitinglist is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// waitinglist is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with waitinglist.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/localnerve/waitinglist/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Configuration keys
const (
	KeyRankBySpecies       = "WaitingListRankBySpecies"
	KeyHighlights          = "WaitingListHighlights"
	KeyUrgencyUpdatePeriod = "WaitingListUrgencyUpdatePeriod"
	KeyDefaultType         = "AFDefaultType"
	KeyDefaultEntryReason  = "AFDefaultEntryReason"
	KeyDefaultBreed        = "AFDefaultBreed"
	KeyDefaultColour       = "AFDefaultColour"
	KeyDefaultSize         = "AFDefaultSize"
	KeyDefaultLocation     = "AFDefaultLocation"
	KeyManualCodes         = "ManualCodes"
	KeyShowTimeBroughtIn   = "AddAnimalsShowTimeBroughtIn"
)

const (
	defaultUrgencyPeriod  = 14
	defaultAnimalLookupID = 1
)

// Settings reads and writes the configuration table through db,
// which may be a transaction
type Settings struct {
	db *gorm.DB
}

// NewSettings binds settings access to db
func NewSettings(db *gorm.DB) *Settings {
	return &Settings{db: db}
}

// Get returns the raw value for key, or def when the key is absent
func (s *Settings) Get(key, def string) (string, error) {
	var item models.ConfigItem
	err := s.db.Where("item_name = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read configuration %s: %w", key, err)
	}
	return item.ItemValue, nil
}

// Int parses the value for key, falling back to def when absent or malformed
func (s *Settings) Int(key string, def int) (int, error) {
	v, err := s.Get(key, "")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def, nil
	}
	return n, nil
}

// Bool accepts Yes/No as well as the usual boolean spellings
func (s *Settings) Bool(key string, def bool) (bool, error) {
	v, err := s.Get(key, "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0":
		return false, nil
	}
	return def, nil
}

// Set upserts the value for key
func (s *Settings) Set(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"item_value"}),
	}).Create(&models.ConfigItem{ItemName: key, ItemValue: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write configuration %s: %w", key, err)
	}
	return nil
}

// RankBySpecies selects per-species ranking
func (s *Settings) RankBySpecies() (bool, error) {
	return s.Bool(KeyRankBySpecies, false)
}

// UrgencyUpdatePeriod is the number of days between automatic urgency escalations.
// 0 disables them, negative values count as 0.
func (s *Settings) UrgencyUpdatePeriod() (int, error) {
	n, err := s.Int(KeyUrgencyUpdatePeriod, defaultUrgencyPeriod)
	if err != nil {
		return 0, err
	}
	return max(n, 0), nil
}

// AnimalDefaults are the lookup values given to animals created from the waiting list
type AnimalDefaults struct {
	TypeID            uint64
	EntryReasonID     uint64
	BreedID           uint64
	ColourID          uint64
	SizeID            uint64
	LocationID        uint64
	ManualCodes       bool
	ShowTimeBroughtIn bool
}

// AnimalDefaults reads the add-animal defaults
func (s *Settings) AnimalDefaults() (AnimalDefaults, error) {
	var d AnimalDefaults
	ids := []struct {
		key string
		dst *uint64
	}{
		{KeyDefaultType, &d.TypeID},
		{KeyDefaultEntryReason, &d.EntryReasonID},
		{KeyDefaultBreed, &d.BreedID},
		{KeyDefaultColour, &d.ColourID},
		{KeyDefaultSize, &d.SizeID},
		{KeyDefaultLocation, &d.LocationID},
	}
	for _, id := range ids {
		n, err := s.Int(id.key, defaultAnimalLookupID)
		if err != nil {
			return d, err
		}
		*id.dst = uint64(max(n, 0))
	}

	var err error
	if d.ManualCodes, err = s.Bool(KeyManualCodes, false); err != nil {
		return d, err
	}
	if d.ShowTimeBroughtIn, err = s.Bool(KeyShowTimeBroughtIn, false); err != nil {
		return d, err
	}
	return d, nil
}
