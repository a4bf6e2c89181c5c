// animal.go
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
	"fmt"
	"time"

	"github.com/localnerve/waitinglist/internal/models"
	"gorm.io/gorm"
)

// AnimalForm carries the fields needed to create an animal record
type AnimalForm struct {
	Name               string
	Markings           string
	ReasonForEntry     string
	HiddenDetails      string
	SpeciesID          uint64
	TypeID             uint64
	EntryReasonID      uint64
	BreedID            uint64
	Breed2ID           uint64
	BaseColourID       uint64
	SizeID             uint64
	LocationID         uint64
	BroughtInByOwnerID uint64
	OriginalOwnerID    uint64
	DateOfBirth        time.Time
	EstimatedDOB       bool
	DateBroughtIn      time.Time
	ShelterCode        string // generated when empty
	ShortCode          string // generated when empty
}

// AnimalInserter creates animal records inside the caller's transaction
type AnimalInserter interface {
	InsertFromForm(tx *gorm.DB, form AnimalForm, actor string) (id uint64, code string, err error)
}

// Animals is the minimal animal collaborator backed by the animal table
type Animals struct {
	audit *Auditor
}

// NewAnimals returns the animal collaborator
func NewAnimals(audit *Auditor) *Animals {
	return &Animals{audit: audit}
}

// InsertFromForm stores the animal and returns its id and shelter code.
// Generated shelter codes are the intake year followed by the zero padded id.
func (a *Animals) InsertFromForm(tx *gorm.DB, form AnimalForm, actor string) (uint64, string, error) {
	row := models.Animal{
		AnimalName:          form.Name,
		ShelterCode:         form.ShelterCode,
		ShortCode:           form.ShortCode,
		YearCodeID:          form.DateBroughtIn.Year(),
		AnimalTypeID:        form.TypeID,
		SpeciesID:           form.SpeciesID,
		BreedID:             form.BreedID,
		Breed2ID:            form.Breed2ID,
		BaseColourID:        form.BaseColourID,
		SizeID:              form.SizeID,
		ShelterLocation:     form.LocationID,
		EntryReasonID:       form.EntryReasonID,
		DateOfBirth:         form.DateOfBirth,
		EstimatedDOB:        form.EstimatedDOB,
		DateBroughtIn:       form.DateBroughtIn,
		Markings:            form.Markings,
		HiddenAnimalDetails: form.HiddenDetails,
		ReasonForEntry:      form.ReasonForEntry,
		BroughtInByOwnerID:  form.BroughtInByOwnerID,
		OriginalOwnerID:     form.OriginalOwnerID,
		CreatedBy:           actor,
		LastChangedBy:       actor,
	}
	if err := tx.Create(&row).Error; err != nil {
		return 0, "", fmt.Errorf("failed to create animal: %w", err)
	}

	codes := map[string]any{}
	if row.ShelterCode == "" {
		row.ShelterCode = fmt.Sprintf("%d%03d", row.YearCodeID, row.ID)
		codes["shelter_code"] = row.ShelterCode
	}
	if row.ShortCode == "" {
		row.ShortCode = fmt.Sprintf("%03d", row.ID)
		codes["short_code"] = row.ShortCode
	}
	if len(codes) > 0 {
		if err := tx.Model(&models.Animal{}).Where("id = ?", row.ID).Updates(codes).Error; err != nil {
			return 0, "", fmt.Errorf("failed to set animal codes: %w", err)
		}
	}

	if err := a.audit.Record(tx, models.AuditAdd, "animal", row.ID, actor, row); err != nil {
		return 0, "", err
	}
	return row.ID, row.ShelterCode, nil
}
