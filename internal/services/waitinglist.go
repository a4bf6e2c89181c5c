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

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/localnerve/waitinglist/internal/dbfs"
	"github.com/localnerve/waitinglist/internal/i18n"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/models"
	"github.com/localnerve/waitinglist/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

const waitingListTable = "animalwaitinglist"

// WaitingList implements the waiting list operations over the relational store
type WaitingList struct {
	db         *gorm.DB
	locale     *i18n.Locale
	blobs      dbfs.Store
	animals    AnimalInserter
	audit      *Auditor
	satellites *Satellites
	log        logger.Logger
	validate   *validator.Validate
}

// Option customises a WaitingList
type Option func(*WaitingList)

// WithAnimals replaces the animal collaborator
func WithAnimals(animals AnimalInserter) Option {
	return func(w *WaitingList) {
		w.animals = animals
	}
}

// NewWaitingList wires the service. Blob storage defaults to the dbfs table.
func NewWaitingList(db *gorm.DB, locale *i18n.Locale, blobs dbfs.Store, log logger.Logger, opts ...Option) *WaitingList {
	if blobs == nil {
		blobs = dbfs.NewDBStore()
	}
	audit := NewAuditor(locale)
	w := &WaitingList{
		db:         db,
		locale:     locale,
		blobs:      blobs,
		animals:    NewAnimals(audit),
		audit:      audit,
		satellites: NewSatellites(audit),
		log:        log.Named("waitinglist"),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WaitingListRow is an entry with its lookups resolved and the computed presentation fields
type WaitingListRow struct {
	models.WaitingListEntry
	SpeciesName       string     `json:"speciesName"`
	SizeName          string     `json:"sizeName"`
	UrgencyName       string     `json:"urgencyName"`
	OwnerName         string     `json:"ownerName"`
	OwnerTitle        string     `json:"ownerTitle"`
	OwnerInitials     string     `json:"ownerInitials"`
	OwnerForeNames    string     `json:"ownerForeNames"`
	OwnerSurname      string     `json:"ownerSurname"`
	OwnerAddress      string     `json:"ownerAddress"`
	OwnerTown         string     `json:"ownerTown"`
	OwnerCounty       string     `json:"ownerCounty"`
	OwnerPostcode     string     `json:"ownerPostcode"`
	HomeTelephone     string     `json:"homeTelephone"`
	WorkTelephone     string     `json:"workTelephone"`
	MobileTelephone   string     `json:"mobileTelephone"`
	EmailAddress      string     `json:"emailAddress"`
	WebsiteMediaID    *uint64    `json:"websiteMediaId"`
	WebsiteMediaName  *string    `json:"websiteMediaName"`
	WebsiteMediaDate  *time.Time `json:"websiteMediaDate"`
	WebsiteMediaNotes *string    `json:"websiteMediaNotes"`

	Rank       *int   `gorm:"-" json:"rank"`
	Highlight  string `gorm:"-" json:"highlight"`
	TimeOnList string `gorm:"-" json:"timeOnList"`
	DaysOnList int    `gorm:"-" json:"daysOnList"`
}

const waitingListColumns = "a.*, " +
	"s.species_name, COALESCE(sz.size_name, '') AS size_name, u.urgency AS urgency_name, " +
	"o.owner_name, o.owner_title, o.owner_initials, o.owner_fore_names, o.owner_surname, " +
	"o.owner_address, o.owner_town, o.owner_county, o.owner_postcode, " +
	"o.home_telephone, o.work_telephone, o.mobile_telephone, o.email_address, " +
	"web.id AS website_media_id, web.media_name AS website_media_name, " +
	"web.date AS website_media_date, web.media_notes AS website_media_notes"

// waitingListQuery selects entries joined to their lookups. Owner, species and
// urgency are required, size and the website photo are optional.
func waitingListQuery(tx *gorm.DB, tag string) *gorm.DB {
	return tx.Clauses(hints.Comment("select", tag)).
		Table(waitingListTable+" a").
		Select(waitingListColumns).
		Joins("LEFT JOIN lksize sz ON sz.id = a.size_id").
		Joins("LEFT JOIN media web ON web.link_id = a.id AND web.link_type_id = ? AND web.website_photo = ?",
			models.MediaLinkWaitingList, true).
		Joins("INNER JOIN species s ON s.id = a.species_id").
		Joins("INNER JOIN owner o ON o.id = a.owner_id").
		Joins("INNER JOIN lkurgency u ON u.id = a.urgency")
}

// Get returns one entry with rank, highlight and time on list
func (w *WaitingList) Get(ctx context.Context, id uint64) (*WaitingListRow, error) {
	db := w.db.WithContext(ctx)

	var rows []WaitingListRow
	if err := waitingListQuery(db, "waitinglist:get").Where("a.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read waiting list entry %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, &types.NotFoundError{Table: waitingListTable, ID: id}
	}

	if err := w.decorate(db, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// PersonName returns the contact name of an entry
func (w *WaitingList) PersonName(ctx context.Context, id uint64) (string, error) {
	var names []string
	err := w.db.WithContext(ctx).
		Table(waitingListTable+" a").
		Joins("INNER JOIN owner o ON a.owner_id = o.id").
		Where("a.id = ?", id).
		Pluck("o.owner_name", &names).Error
	if err != nil {
		return "", fmt.Errorf("failed to read contact of entry %d: %w", id, err)
	}
	if len(names) == 0 {
		return "", &types.NotFoundError{Table: waitingListTable, ID: id}
	}
	return names[0], nil
}

// SatelliteCounts counts the media, diary and log rows of an entry
func (w *WaitingList) SatelliteCounts(ctx context.Context, id uint64) (SatelliteCounts, error) {
	return w.satellites.Counts(w.db.WithContext(ctx), id)
}

// decorate fills rank, highlight and time on list
func (w *WaitingList) decorate(tx *gorm.DB, rows []WaitingListRow) error {
	if len(rows) == 0 {
		return nil
	}

	ranks, err := w.ranks(tx)
	if err != nil {
		return err
	}
	raw, err := NewSettings(tx).Get(KeyHighlights, "")
	if err != nil {
		return err
	}
	colors := ParseHighlights(raw).Colors()

	now := w.locale.Now()
	for i := range rows {
		r := &rows[i]
		if rank, ok := ranks[r.ID]; ok {
			r.Rank = &rank
		}
		r.Highlight = colors[r.ID]
		r.DaysOnList = i18n.DaysBetween(r.DatePutOnList, now)
		r.TimeOnList = w.locale.DateDiff(r.DatePutOnList, now)
	}
	return nil
}

// loadEntry reads an entry for update inside tx
func loadEntry(tx *gorm.DB, id uint64) (*models.WaitingListEntry, error) {
	var entry models.WaitingListEntry
	err := lockForUpdate(tx).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &types.NotFoundError{Table: waitingListTable, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read waiting list entry %d: %w", id, err)
	}
	return &entry, nil
}
