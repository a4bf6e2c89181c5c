// promote.go
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
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/localnerve/waitinglist/internal/i18n"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/models"
	"gorm.io/gorm"
)

const defaultMimeType = "application/octet-stream"

// CreateAnimal turns a waiting list entry into an animal record. The entry is
// removed from the list and its media and logs are copied onto the animal.
func (w *WaitingList) CreateAnimal(ctx context.Context, id uint64, actor string) (uint64, error) {
	var animalID uint64
	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := loadEntry(tx, id)
		if err != nil {
			return err
		}
		defaults, err := NewSettings(tx).AnimalDefaults()
		if err != nil {
			return err
		}

		var code string
		animalID, code, err = w.animals.InsertFromForm(tx, w.animalForm(entry, defaults), actor)
		if err != nil {
			return err
		}

		cols := map[string]any{
			"date_removed_from_list": w.locale.Today(),
			"reason_for_removal":     w.locale.T(i18n.MsgMovedToAnimal, code),
			"record_version":         gorm.Expr("record_version + 1"),
			"last_changed_by":        actor,
		}
		if err := tx.Model(&models.WaitingListEntry{}).Where("id = ?", id).Updates(cols).Error; err != nil {
			return fmt.Errorf("failed to remove waiting list entry %d: %w", id, err)
		}
		if err := w.audit.Record(tx, models.AuditEdit, waitingListTable, id, actor, map[string]any{
			"reasonForRemoval": cols["reason_for_removal"],
			"animalId":         animalID,
		}); err != nil {
			return err
		}

		if err := w.copyMedia(ctx, tx, id, animalID, actor); err != nil {
			return err
		}
		return w.copyLogs(tx, id, animalID, actor)
	})
	if err != nil {
		return 0, err
	}

	w.log.Info("created animal from waiting list entry",
		logger.Uint64("id", id),
		logger.Uint64("animal_id", animalID))
	return animalID, nil
}

func (w *WaitingList) animalForm(e *models.WaitingListEntry, d AnimalDefaults) AnimalForm {
	broughtIn := w.locale.Today()
	if d.ShowTimeBroughtIn {
		broughtIn = w.locale.Now()
	}

	form := AnimalForm{
		Name:               w.locale.T(i18n.MsgWaitingListName, e.ID),
		Markings:           e.AnimalDescription,
		ReasonForEntry:     e.ReasonForWantingToPart,
		HiddenDetails:      e.Comments,
		SpeciesID:          e.SpeciesID,
		TypeID:             d.TypeID,
		EntryReasonID:      d.EntryReasonID,
		BreedID:            d.BreedID,
		Breed2ID:           d.BreedID,
		BaseColourID:       d.ColourID,
		SizeID:             d.SizeID,
		LocationID:         d.LocationID,
		BroughtInByOwnerID: e.OwnerID,
		OriginalOwnerID:    e.OwnerID,
		DateOfBirth:        i18n.SubtractYears(w.locale.Today(), 1),
		EstimatedDOB:       true,
		DateBroughtIn:      broughtIn,
	}
	if d.ManualCodes {
		form.ShelterCode = fmt.Sprintf("WL%d", e.ID)
		form.ShortCode = form.ShelterCode
	}
	return form
}

// copyMedia clones the entry's media onto the animal, renaming each to its new id.
// Stored files get their own copy of the content.
func (w *WaitingList) copyMedia(ctx context.Context, tx *gorm.DB, id, animalID uint64, actor string) error {
	media, err := w.satellites.Media(tx, models.MediaLinkWaitingList, id)
	if err != nil {
		return err
	}

	for _, m := range media {
		ext := strings.ToLower(filepath.Ext(m.MediaName))
		clone := m
		clone.ID = 0
		clone.LinkID = animalID
		clone.LinkTypeID = models.MediaLinkAnimal
		clone.NewSinceLastPublish = true
		clone.UpdatedSinceLastPublish = false
		clone.CreatedBy = actor
		clone.CreatedAt = w.locale.Now()
		clone.UpdatedAt = clone.CreatedAt
		if err := tx.Create(&clone).Error; err != nil {
			return fmt.Errorf("failed to copy media %d: %w", m.ID, err)
		}

		name := fmt.Sprintf("%d%s", clone.ID, ext)
		cols := map[string]any{
			"media_name":      name,
			"media_mime_type": mimeType(name),
		}
		if m.MediaType == models.MediaTypeFile {
			content, err := w.blobs.Get(ctx, tx, m.DBFSID)
			if err != nil {
				return err
			}
			blobID, err := w.blobs.Put(ctx, tx, fmt.Sprintf("/animal/%d", animalID), name, content)
			if err != nil {
				return err
			}
			cols["dbfs_id"] = blobID
			cols["media_size"] = int64(len(content))
		}
		if err := tx.Model(&models.Media{}).Where("id = ?", clone.ID).Updates(cols).Error; err != nil {
			return fmt.Errorf("failed to update media %d: %w", clone.ID, err)
		}
	}
	return nil
}

func (w *WaitingList) copyLogs(tx *gorm.DB, id, animalID uint64, actor string) error {
	logs, err := w.satellites.Logs(tx, models.LogLinkWaitingList, id)
	if err != nil {
		return err
	}

	for _, l := range logs {
		clone := l
		clone.ID = 0
		clone.LinkID = animalID
		clone.LinkType = models.LogLinkAnimal
		clone.CreatedBy = actor
		clone.CreatedAt = w.locale.Now()
		clone.UpdatedAt = clone.CreatedAt
		if err := tx.Create(&clone).Error; err != nil {
			return fmt.Errorf("failed to copy log %d: %w", l.ID, err)
		}
	}
	return nil
}

func mimeType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return defaultMimeType
}
