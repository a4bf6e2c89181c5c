// audit.go
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

	"github.com/localnerve/waitinglist/internal/i18n"
	"github.com/localnerve/waitinglist/internal/models"
	"gorm.io/gorm"
)

// SystemActor stamps changes made by scheduled jobs
const SystemActor = "system"

// Auditor writes audittrail rows in the caller's transaction
type Auditor struct {
	locale *i18n.Locale
}

// NewAuditor returns an Auditor stamping rows with the locale clock
func NewAuditor(locale *i18n.Locale) *Auditor {
	return &Auditor{locale: locale}
}

// Record stores one audit row with values serialised as JSON
func (a *Auditor) Record(tx *gorm.DB, action int, table string, id uint64, actor string, values any) error {
	doc, err := models.NewJSON(values)
	if err != nil {
		return fmt.Errorf("failed to encode audit values: %w", err)
	}

	row := models.AuditTrail{
		Action:    action,
		AuditDate: a.locale.Now(),
		UserName:  actor,
		Table:     table,
		LinkID:    id,
		Values:    doc,
	}
	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to write audit for %s %d: %w", table, id, err)
	}
	return nil
}
