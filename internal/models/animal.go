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

package models

import (
	"time"
)

// Animal is the shelter animal record a waiting list entry can be promoted into
type Animal struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	AnimalName          string    `gorm:"size:255;not null" json:"animalName"`
	ShelterCode         string    `gorm:"size:255;index" json:"shelterCode"`
	ShortCode           string    `gorm:"size:255" json:"shortCode"`
	YearCodeID          int       `gorm:"not null" json:"yearCodeId"`
	AnimalTypeID        uint64    `gorm:"not null" json:"animalTypeId"`
	SpeciesID           uint64    `gorm:"not null" json:"speciesId"`
	BreedID             uint64    `gorm:"not null" json:"breedId"`
	Breed2ID            uint64    `gorm:"not null" json:"breed2Id"`
	BaseColourID        uint64    `gorm:"not null" json:"baseColourId"`
	SizeID              uint64    `gorm:"not null" json:"sizeId"`
	ShelterLocation     uint64    `gorm:"not null" json:"shelterLocation"`
	EntryReasonID       uint64    `gorm:"not null" json:"entryReasonId"`
	DateOfBirth         time.Time `gorm:"not null" json:"dateOfBirth"`
	EstimatedDOB        bool      `gorm:"column:estimated_dob;not null" json:"estimatedDob"`
	DateBroughtIn       time.Time `gorm:"not null" json:"dateBroughtIn"`
	Markings            string    `gorm:"type:text" json:"markings"`
	HiddenAnimalDetails string    `gorm:"type:text" json:"hiddenAnimalDetails"`
	ReasonForEntry      string    `gorm:"type:text" json:"reasonForEntry"`
	BroughtInByOwnerID  uint64    `gorm:"not null" json:"broughtInByOwnerId"`
	OriginalOwnerID     uint64    `gorm:"not null" json:"originalOwnerId"`
	RecordVersion       uint64    `gorm:"not null" json:"recordVersion"`
	CreatedBy           string    `gorm:"size:255" json:"createdBy"`
	LastChangedBy       string    `gorm:"size:255" json:"lastChangedBy"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (Animal) TableName() string {
	return "animal"
}
