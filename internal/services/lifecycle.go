// lifecycle.go
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
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/localnerve/waitinglist/internal/i18n"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/models"
	"github.com/localnerve/waitinglist/internal/types"
	"gorm.io/gorm"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

const defaultUrgency = 5

// EntryFields are the user editable columns of a waiting list entry
type EntryFields struct {
	SpeciesID              uint64            `json:"species"`
	SizeID                 uint64            `json:"size"`
	DatePutOnList          string            `json:"dateputon" validate:"required,datetime=2006-01-02"`
	OwnerID                uint64            `json:"owner" validate:"required"`
	AnimalDescription      string            `json:"description" validate:"required,max=255"`
	ReasonForWantingToPart string            `json:"reasonforwantingtopart"`
	CanAffordDonation      bool              `json:"canafforddonation"`
	Urgency                int               `json:"urgency" validate:"min=0,max=5"`
	DateRemovedFromList    string            `json:"dateremoved" validate:"omitempty,datetime=2006-01-02"`
	AutoRemovePolicy       int               `json:"autoremovepolicy" validate:"min=0"`
	DateOfLastOwnerContact string            `json:"dateoflastownercontact" validate:"omitempty,datetime=2006-01-02"`
	ReasonForRemoval       string            `json:"reasonforremoval"`
	Comments               string            `json:"comments"`
	AdditionalValues       map[uint64]string `json:"additional,omitempty"`
}

// CreateRequest adds an entry to the waiting list
type CreateRequest struct {
	EntryFields
}

// UpdateRequest replaces the editable fields of an entry. RecordVersion must be
// the version the client last read.
type UpdateRequest struct {
	ID            uint64           `json:"id"`
	RecordVersion types.FlexUint64 `json:"recordversion"`
	EntryFields
}

// required fields, reported in this order
var requiredFields = []struct {
	field string
	msg   string
}{
	{"AnimalDescription", i18n.MsgDescriptionBlank},
	{"OwnerID", i18n.MsgContactRequired},
	{"DatePutOnList", i18n.MsgDatePutOnBlank},
}

// check validates the fields and returns a localised ValidationError
func (w *WaitingList) check(f *EntryFields) error {
	err := w.validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate entry: %w", err)
	}

	failed := make(map[string]validator.FieldError, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = fe
	}
	for _, r := range requiredFields {
		if fe, ok := failed[r.field]; ok && fe.Tag() == "required" {
			return &types.ValidationError{Field: fe.Field(), Message: w.locale.T(r.msg)}
		}
	}

	fe := verrs[0]
	return &types.ValidationError{
		Field:   fe.Field(),
		Message: fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()),
	}
}

// editableColumns are written by Update
var editableColumns = []string{
	"species_id", "size_id", "date_put_on_list", "owner_id",
	"animal_description", "reason_for_wanting_to_part", "can_afford_donation",
	"urgency", "date_removed_from_list", "auto_remove_policy",
	"date_of_last_owner_contact", "reason_for_removal", "comments",
	"record_version", "last_changed_by", "updated_at",
}

// apply copies validated fields onto e
func (f *EntryFields) apply(e *models.WaitingListEntry) error {
	putOn, err := time.Parse(DateLayout, f.DatePutOnList)
	if err != nil {
		return &types.ValidationError{Field: "dateputon", Message: err.Error()}
	}
	removed, err := parseOptionalDate(f.DateRemovedFromList)
	if err != nil {
		return &types.ValidationError{Field: "dateremoved", Message: err.Error()}
	}
	contact, err := parseOptionalDate(f.DateOfLastOwnerContact)
	if err != nil {
		return &types.ValidationError{Field: "dateoflastownercontact", Message: err.Error()}
	}

	e.SpeciesID = f.SpeciesID
	e.SizeID = f.SizeID
	e.DatePutOnList = putOn
	e.OwnerID = f.OwnerID
	e.AnimalDescription = f.AnimalDescription
	e.ReasonForWantingToPart = f.ReasonForWantingToPart
	e.CanAffordDonation = f.CanAffordDonation
	if f.Urgency != 0 {
		e.Urgency = f.Urgency
	}
	e.DateRemovedFromList = removed
	e.AutoRemovePolicy = f.AutoRemovePolicy
	e.DateOfLastOwnerContact = contact
	e.ReasonForRemoval = f.ReasonForRemoval
	e.Comments = f.Comments
	return nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create validates and stores a new entry, scheduling its first urgency update
// one period from today
func (w *WaitingList) Create(ctx context.Context, req CreateRequest, actor string) (uint64, error) {
	if err := w.check(&req.EntryFields); err != nil {
		return 0, err
	}
	entry := models.WaitingListEntry{Urgency: defaultUrgency}
	if err := req.apply(&entry); err != nil {
		return 0, err
	}

	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		period, err := NewSettings(tx).UrgencyUpdatePeriod()
		if err != nil {
			return err
		}
		today := w.locale.Today()
		next := i18n.AddDays(today, period)

		entry.UrgencyLastUpdatedDate = &today
		entry.UrgencyUpdateDate = &next
		entry.CreatedBy = actor
		entry.LastChangedBy = actor
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create waiting list entry: %w", err)
		}
		if err := w.audit.Record(tx, models.AuditAdd, waitingListTable, entry.ID, actor, entry); err != nil {
			return err
		}
		return w.satellites.SaveAdditionalValues(tx, models.AdditionalLinkWaitingList, entry.ID, req.AdditionalValues)
	})
	if err != nil {
		return 0, err
	}

	w.log.Info("created waiting list entry",
		logger.Uint64("id", entry.ID),
		logger.String("actor", actor))
	return entry.ID, nil
}

// Update replaces the editable fields of an entry. A stale record version is
// reported before any field validation.
func (w *WaitingList) Update(ctx context.Context, req UpdateRequest, actor string) (uint64, error) {
	var version uint64
	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := loadEntry(tx, req.ID)
		if err != nil {
			return err
		}
		if current.RecordVersion != req.RecordVersion.Uint64() {
			return w.conflict(req.ID)
		}

		if err := w.check(&req.EntryFields); err != nil {
			return err
		}
		updated := *current
		if err := req.apply(&updated); err != nil {
			return err
		}
		version = current.RecordVersion + 1
		updated.RecordVersion = version
		updated.LastChangedBy = actor

		res := tx.Model(current).
			Where("record_version = ?", current.RecordVersion).
			Select(editableColumns).
			Updates(&updated)
		if res.Error != nil {
			return fmt.Errorf("failed to update waiting list entry %d: %w", req.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return w.conflict(req.ID)
		}

		if err := w.audit.Record(tx, models.AuditEdit, waitingListTable, req.ID, actor, updated); err != nil {
			return err
		}
		return w.satellites.SaveAdditionalValues(tx, models.AdditionalLinkWaitingList, req.ID, req.AdditionalValues)
	})
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (w *WaitingList) conflict(id uint64) error {
	return &types.ConflictError{Table: waitingListTable, ID: id, Message: w.locale.T(i18n.MsgRecordChanged)}
}

// Remove takes entries off the list as of today. The reason for removal is left alone.
func (w *WaitingList) Remove(ctx context.Context, actor string, ids ...uint64) error {
	return w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		today := w.locale.Today()
		for _, id := range ids {
			if _, err := loadEntry(tx, id); err != nil {
				return err
			}
			cols := map[string]any{
				"date_removed_from_list": today,
				"record_version":         gorm.Expr("record_version + 1"),
				"last_changed_by":        actor,
			}
			if err := tx.Model(&models.WaitingListEntry{}).Where("id = ?", id).Updates(cols).Error; err != nil {
				return fmt.Errorf("failed to remove waiting list entry %d: %w", id, err)
			}
			if err := w.audit.Record(tx, models.AuditEdit, waitingListTable, id, actor, map[string]any{"dateRemovedFromList": today}); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an entry with its media, diary, logs, additional values and stored files
func (w *WaitingList) Delete(ctx context.Context, id uint64, actor string) error {
	var files int
	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := loadEntry(tx, id)
		if err != nil {
			return err
		}
		if err := w.satellites.DeleteForWaitingList(tx, id, actor); err != nil {
			return err
		}
		path := fmt.Sprintf("/waitinglist/%d", id)
		stored, err := w.blobs.List(ctx, tx, path)
		if err != nil {
			return err
		}
		files = len(stored)
		if err := w.blobs.DeletePath(ctx, tx, path); err != nil {
			return err
		}
		if err := tx.Delete(&models.WaitingListEntry{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete waiting list entry %d: %w", id, err)
		}
		return w.audit.Record(tx, models.AuditDelete, waitingListTable, id, actor, entry)
	})
	if err != nil {
		return err
	}

	w.log.Info("deleted waiting list entry",
		logger.Uint64("id", id),
		logger.Int("files", files),
		logger.String("actor", actor))
	return nil
}
