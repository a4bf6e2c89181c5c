// jobs.go
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
	"time"

	"github.com/localnerve/waitinglist/internal/i18n"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/models"
	"gorm.io/gorm"
)

// batchUpdate is one row of an executeMany batch
type batchUpdate struct {
	id   uint64
	cols map[string]any
}

// executeMany applies updates in one transaction, stamping each with the system actor
func (w *WaitingList) executeMany(ctx context.Context, updates []batchUpdate) error {
	return w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			audit := u.cols
			cols := make(map[string]any, len(u.cols)+2)
			for k, v := range u.cols {
				cols[k] = v
			}
			cols["record_version"] = gorm.Expr("record_version + 1")
			cols["last_changed_by"] = SystemActor

			if err := tx.Model(&models.WaitingListEntry{}).Where("id = ?", u.id).Updates(cols).Error; err != nil {
				return fmt.Errorf("failed to update waiting list entry %d: %w", u.id, err)
			}
			if err := w.audit.Record(tx, models.AuditEdit, waitingListTable, u.id, SystemActor, audit); err != nil {
				return err
			}
		}
		return nil
	})
}

// AutoRemove takes entries off the list once the owner has not been in contact
// for their auto remove policy in weeks. It returns the number removed.
func (w *WaitingList) AutoRemove(ctx context.Context) (int, error) {
	var rows []models.WaitingListEntry
	err := w.db.WithContext(ctx).
		Select("id", "date_of_last_owner_contact", "auto_remove_policy").
		Where("date_removed_from_list IS NULL AND auto_remove_policy > 0 AND date_of_last_owner_contact IS NOT NULL").
		Find(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read auto remove candidates: %w", err)
	}

	now := w.locale.Now()
	reason := w.locale.T(i18n.MsgAutoRemoved)
	var updates []batchUpdate
	for _, r := range rows {
		deadline := i18n.AddDays(*r.DateOfLastOwnerContact, 7*r.AutoRemovePolicy)
		if !i18n.After(now, deadline) {
			continue
		}
		w.log.Debug("auto removing waiting list entry due to policy",
			logger.Uint64("id", r.ID),
			logger.Int("policy_weeks", r.AutoRemovePolicy))
		updates = append(updates, batchUpdate{id: r.ID, cols: map[string]any{
			"date_removed_from_list": now,
			"reason_for_removal":     reason,
		}})
	}

	if len(updates) == 0 {
		return 0, nil
	}
	if err := w.executeMany(ctx, updates); err != nil {
		return 0, err
	}
	w.log.Info("auto removed waiting list entries", logger.Int("count", len(updates)))
	return len(updates), nil
}

// AutoUpdateUrgencies raises the urgency of entries whose urgency update date has
// arrived, one step per period. Entries never escalate past High (2).
func (w *WaitingList) AutoUpdateUrgencies(ctx context.Context) (int, error) {
	db := w.db.WithContext(ctx)
	period, err := NewSettings(db).UrgencyUpdatePeriod()
	if err != nil {
		return 0, err
	}
	if period <= 0 {
		w.log.Debug("urgency update period is 0, not updating waiting list entries")
		return 0, nil
	}

	var rows []models.WaitingListEntry
	err = db.Select("id", "urgency", "urgency_update_date").
		Where("urgency_update_date <= ? AND urgency > ?", w.locale.Today(), 2).
		Find(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read urgency candidates: %w", err)
	}

	now := w.locale.Now()
	updates := make([]batchUpdate, 0, len(rows))
	for _, r := range rows {
		w.log.Debug("increasing urgency of waiting list entry",
			logger.Uint64("id", r.ID),
			logger.Int("urgency", r.Urgency-1))
		updates = append(updates, batchUpdate{id: r.ID, cols: map[string]any{
			"urgency_last_updated_date": now,
			"urgency_update_date":       nextUpdate(*r.UrgencyUpdateDate, period),
			"urgency":                   r.Urgency - 1,
		}})
	}

	if len(updates) == 0 {
		return 0, nil
	}
	if err := w.executeMany(ctx, updates); err != nil {
		return 0, err
	}
	w.log.Info("escalated waiting list urgencies", logger.Int("count", len(updates)))
	return len(updates), nil
}

func nextUpdate(last time.Time, period int) time.Time {
	return i18n.AddDays(last, period)
}
