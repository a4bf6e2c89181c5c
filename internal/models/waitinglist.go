// waitinglist.go
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

// WaitingListEntry is a request from an owner to hand an animal over to the shelter.
// An entry is active while DateRemovedFromList is nil.
type WaitingListEntry struct {
	ID                     uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SpeciesID              uint64     `gorm:"not null;index" json:"speciesId"`
	SizeID                 uint64     `gorm:"not null" json:"sizeId"`
	DatePutOnList          time.Time  `gorm:"not null;index" json:"datePutOnList"`
	OwnerID                uint64     `gorm:"not null;index" json:"ownerId"`
	AnimalDescription      string     `gorm:"size:255;not null" json:"animalDescription"`
	ReasonForWantingToPart string     `gorm:"type:text" json:"reasonForWantingToPart"`
	CanAffordDonation      bool       `gorm:"not null" json:"canAffordDonation"`
	Urgency                int        `gorm:"not null;index" json:"urgency"`
	DateRemovedFromList    *time.Time `gorm:"index" json:"dateRemovedFromList"`
	AutoRemovePolicy       int        `gorm:"not null" json:"autoRemovePolicy"`
	DateOfLastOwnerContact *time.Time `json:"dateOfLastOwnerContact"`
	ReasonForRemoval       string     `gorm:"type:text" json:"reasonForRemoval"`
	Comments               string     `gorm:"type:text" json:"comments"`
	UrgencyLastUpdatedDate *time.Time `json:"urgencyLastUpdatedDate"`
	UrgencyUpdateDate      *time.Time `gorm:"index" json:"urgencyUpdateDate"`
	RecordVersion          uint64     `gorm:"not null" json:"recordVersion"`
	CreatedBy              string     `gorm:"size:255" json:"createdBy"`
	LastChangedBy          string     `gorm:"size:255" json:"lastChangedBy"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// Active reports whether the entry is still on the list
func (e WaitingListEntry) Active() bool {
	return e.DateRemovedFromList == nil
}

func (WaitingListEntry) TableName() string {
	return "animalwaitinglist"
}
