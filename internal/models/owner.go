// owner.go
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

// Owner is a person record, the contact for a waiting list entry
type Owner struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerTitle      string    `gorm:"size:50" json:"ownerTitle"`
	OwnerInitials   string    `gorm:"size:50" json:"ownerInitials"`
	OwnerForeNames  string    `gorm:"size:200" json:"ownerForeNames"`
	OwnerSurname    string    `gorm:"size:100" json:"ownerSurname"`
	OwnerName       string    `gorm:"size:255;index" json:"ownerName"`
	OwnerAddress    string    `gorm:"size:255" json:"ownerAddress"`
	OwnerTown       string    `gorm:"size:100" json:"ownerTown"`
	OwnerCounty     string    `gorm:"size:100" json:"ownerCounty"`
	OwnerPostcode   string    `gorm:"size:50" json:"ownerPostcode"`
	HomeTelephone   string    `gorm:"size:50" json:"homeTelephone"`
	WorkTelephone   string    `gorm:"size:50" json:"workTelephone"`
	MobileTelephone string    `gorm:"size:50" json:"mobileTelephone"`
	EmailAddress    string    `gorm:"size:200" json:"emailAddress"`
	SiteID          uint64    `gorm:"not null;default:0" json:"siteId"`
	RecordVersion   uint64    `gorm:"not null" json:"recordVersion"`
	CreatedBy       string    `gorm:"size:255" json:"createdBy"`
	LastChangedBy   string    `gorm:"size:255" json:"lastChangedBy"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Owner) TableName() string {
	return "owner"
}

// Species lookup
type Species struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	SpeciesName string `gorm:"size:100;not null" json:"speciesName"`
}

func (Species) TableName() string {
	return "species"
}

// LkSize is the animal size lookup
type LkSize struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	SizeName string `gorm:"size:50;not null" json:"sizeName"`
}

func (LkSize) TableName() string {
	return "lksize"
}

// LkUrgency is the waiting list urgency lookup, 1 is the most urgent
type LkUrgency struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Urgency string `gorm:"size:50;not null" json:"urgency"`
}

func (LkUrgency) TableName() string {
	return "lkurgency"
}
