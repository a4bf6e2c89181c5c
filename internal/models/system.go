// system.go
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

// DBFS is a stored file, addressed by path and name
type DBFS struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Path      string    `gorm:"size:255;not null;index:idx_dbfs_path_name"`
	Name      string    `gorm:"size:255;not null;index:idx_dbfs_path_name"`
	Content   []byte    `gorm:"not null"`
	CreatedAt time.Time
}

func (DBFS) TableName() string {
	return "dbfs"
}

// ConfigItem is one named setting
type ConfigItem struct {
	ItemName  string `gorm:"primaryKey;size:255"`
	ItemValue string `gorm:"type:text"`
}

func (ConfigItem) TableName() string {
	return "configuration"
}

// Audit actions
const (
	AuditAdd    = 1
	AuditEdit   = 2
	AuditDelete = 3
)

// AuditTrail records who changed which row and the values written
type AuditTrail struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Action    int       `gorm:"not null" json:"action"`
	AuditDate time.Time `gorm:"not null;index" json:"auditDate"`
	UserName  string    `gorm:"size:255" json:"userName"`
	Table     string    `gorm:"column:table_name;size:100;not null;index:idx_audit_link" json:"tableName"`
	LinkID    uint64    `gorm:"not null;index:idx_audit_link" json:"linkId"`
	Values    JSON      `json:"values"`
}

func (AuditTrail) TableName() string {
	return "audittrail"
}
