// satellites.go
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

// Link type tags. Each satellite table numbers its owners differently.
const (
	MediaLinkAnimal      = 0
	MediaLinkWaitingList = 5

	DiaryLinkAnimal      = 1
	DiaryLinkWaitingList = 5

	LogLinkAnimal      = 0
	LogLinkWaitingList = 4

	AdditionalLinkWaitingList = 20
)

// Media types
const (
	MediaTypeFile         = 0
	MediaTypeDocumentLink = 1
	MediaTypeVideoLink    = 2
)

// Media is an attachment. File media point at blob storage through DBFSID,
// link media keep the target in MediaName until promotion renames them.
type Media struct {
	ID                      uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MediaName               string     `gorm:"size:255;not null" json:"mediaName"`
	MediaMimeType           string     `gorm:"size:100" json:"mediaMimeType"`
	MediaType               int        `gorm:"not null" json:"mediaType"`
	MediaNotes              string     `gorm:"type:text" json:"mediaNotes"`
	WebsitePhoto            bool       `gorm:"not null" json:"websitePhoto"`
	WebsiteVideo            bool       `gorm:"not null" json:"websiteVideo"`
	DocPhoto                bool       `gorm:"not null" json:"docPhoto"`
	ExcludeFromPublish      bool       `gorm:"not null" json:"excludeFromPublish"`
	NewSinceLastPublish     bool       `gorm:"not null" json:"newSinceLastPublish"`
	UpdatedSinceLastPublish bool       `gorm:"not null" json:"updatedSinceLastPublish"`
	LinkID                  uint64     `gorm:"not null;index:idx_media_link" json:"linkId"`
	LinkTypeID              int        `gorm:"not null;index:idx_media_link" json:"linkTypeId"`
	Date                    time.Time  `gorm:"not null" json:"date"`
	RetainUntil             *time.Time `json:"retainUntil"`
	DBFSID                  uint64     `gorm:"column:dbfs_id;not null" json:"dbfsId"`
	MediaSize               int64      `gorm:"not null" json:"mediaSize"`
	CreatedBy               string     `gorm:"size:255" json:"createdBy"`
	CreatedAt               time.Time  `json:"createdAt"`
	UpdatedAt               time.Time  `json:"updatedAt"`
}

func (Media) TableName() string {
	return "media"
}

// Diary is a dated task attached to a record
type Diary struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	LinkID        uint64     `gorm:"not null;index:idx_diary_link" json:"linkId"`
	LinkType      int        `gorm:"not null;index:idx_diary_link" json:"linkType"`
	DiaryDateTime time.Time  `gorm:"not null" json:"diaryDateTime"`
	DiaryForName  string     `gorm:"size:255" json:"diaryForName"`
	Subject       string     `gorm:"size:255" json:"subject"`
	Note          string     `gorm:"type:text" json:"note"`
	DateCompleted *time.Time `json:"dateCompleted"`
	CreatedBy     string     `gorm:"size:255" json:"createdBy"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (Diary) TableName() string {
	return "diary"
}

// Log is a typed, dated note attached to a record
type Log struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	LinkID    uint64    `gorm:"not null;index:idx_log_link" json:"linkId"`
	LinkType  int       `gorm:"not null;index:idx_log_link" json:"linkType"`
	LogTypeID uint64    `gorm:"not null" json:"logTypeId"`
	Date      time.Time `gorm:"not null" json:"date"`
	Comments  string    `gorm:"type:text" json:"comments"`
	CreatedBy string    `gorm:"size:255" json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Log) TableName() string {
	return "log"
}

// AdditionalField defines a custom field shown on records of one link type
type AdditionalField struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	FieldName    string `gorm:"size:255;not null" json:"fieldName"`
	FieldLabel   string `gorm:"size:255" json:"fieldLabel"`
	LinkType     int    `gorm:"not null;index" json:"linkType"`
	Searchable   bool   `gorm:"not null" json:"searchable"`
	DisplayIndex int    `gorm:"not null" json:"displayIndex"`
}

func (AdditionalField) TableName() string {
	return "additionalfield"
}

// Additional holds one custom field value for one record
type Additional struct {
	LinkType          int    `gorm:"primaryKey;autoIncrement:false" json:"linkType"`
	LinkID            uint64 `gorm:"primaryKey;autoIncrement:false" json:"linkId"`
	AdditionalFieldID uint64 `gorm:"primaryKey;autoIncrement:false" json:"additionalFieldId"`
	Value             string `gorm:"type:text" json:"value"`
}

func (Additional) TableName() string {
	return "additional"
}
