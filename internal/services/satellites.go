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

package services

import (
	"fmt"
	"sort"

	"github.com/localnerve/waitinglist/internal/models"
	"github.com/localnerve/waitinglist/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SatelliteCounts is the number of media, diary and log rows attached to an entry
type SatelliteCounts struct {
	ID    uint64 `json:"id"`
	Media int64  `json:"media"`
	Diary int64  `json:"diary"`
	Logs  int64  `json:"logs"`
}

// Satellites reads and removes the media, diary, log and additional rows linked to a record
type Satellites struct {
	audit *Auditor
}

// NewSatellites returns the satellite collaborator
func NewSatellites(audit *Auditor) *Satellites {
	return &Satellites{audit: audit}
}

// Media lists media linked to (linkType, linkID) in id order
func (s *Satellites) Media(tx *gorm.DB, linkType int, linkID uint64) ([]models.Media, error) {
	var rows []models.Media
	err := tx.Where("link_type_id = ? AND link_id = ?", linkType, linkID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read media: %w", err)
	}
	return rows, nil
}

// Logs lists logs linked to (linkType, linkID) in id order
func (s *Satellites) Logs(tx *gorm.DB, linkType int, linkID uint64) ([]models.Log, error) {
	var rows []models.Log
	err := tx.Where("link_type = ? AND link_id = ?", linkType, linkID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read logs: %w", err)
	}
	return rows, nil
}

// Counts returns satellite counts for a waiting list entry
func (s *Satellites) Counts(tx *gorm.DB, id uint64) (SatelliteCounts, error) {
	var counts SatelliteCounts
	res := tx.Table("animalwaitinglist a").
		Select("a.id, "+
			"(SELECT COUNT(*) FROM media me WHERE me.link_id = a.id AND me.link_type_id = ?) AS media, "+
			"(SELECT COUNT(*) FROM diary di WHERE di.link_id = a.id AND di.link_type = ?) AS diary, "+
			"(SELECT COUNT(*) FROM log lo WHERE lo.link_id = a.id AND lo.link_type = ?) AS logs",
			models.MediaLinkWaitingList, models.DiaryLinkWaitingList, models.LogLinkWaitingList).
		Where("a.id = ?", id).
		Scan(&counts)
	if res.Error != nil {
		return counts, fmt.Errorf("failed to count satellites: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return counts, &types.NotFoundError{Table: waitingListTable, ID: id}
	}
	return counts, nil
}

// DeleteForWaitingList removes every satellite row of a waiting list entry
func (s *Satellites) DeleteForWaitingList(tx *gorm.DB, id uint64, actor string) error {
	deletes := []struct {
		table string
		model any
		where string
		link  int
	}{
		{"media", &models.Media{}, "link_id = ? AND link_type_id = ?", models.MediaLinkWaitingList},
		{"diary", &models.Diary{}, "link_id = ? AND link_type = ?", models.DiaryLinkWaitingList},
		{"log", &models.Log{}, "link_id = ? AND link_type = ?", models.LogLinkWaitingList},
		{"additional", &models.Additional{}, "link_id = ? AND link_type = ?", models.AdditionalLinkWaitingList},
	}

	for _, d := range deletes {
		res := tx.Where(d.where, id, d.link).Delete(d.model)
		if res.Error != nil {
			return fmt.Errorf("failed to delete %s for entry %d: %w", d.table, id, res.Error)
		}
		if res.RowsAffected == 0 || d.table == "additional" {
			continue
		}
		err := s.audit.Record(tx, models.AuditDelete, d.table, id, actor, map[string]any{
			"linkId":   id,
			"linkType": d.link,
			"rows":     res.RowsAffected,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveAdditionalValues upserts custom field values for one record. Field ids must
// belong to fields defined for linkType.
func (s *Satellites) SaveAdditionalValues(tx *gorm.DB, linkType int, linkID uint64, values map[uint64]string) error {
	if len(values) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var known []uint64
	if err := tx.Model(&models.AdditionalField{}).
		Where("id IN ? AND link_type = ?", ids, linkType).
		Pluck("id", &known).Error; err != nil {
		return fmt.Errorf("failed to read additional fields: %w", err)
	}
	if len(known) != len(ids) {
		return &types.ValidationError{Field: "additional", Message: "unknown additional field"}
	}

	rows := make([]models.Additional, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.Additional{
			LinkType:          linkType,
			LinkID:            linkID,
			AdditionalFieldID: id,
			Value:             values[id],
		})
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "link_type"}, {Name: "link_id"}, {Name: "additional_field_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to save additional values: %w", err)
	}
	return nil
}
