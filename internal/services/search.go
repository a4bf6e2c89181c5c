// search.go
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
	"strconv"
	"strings"

	"github.com/localnerve/waitinglist/internal/models"
	"github.com/localnerve/waitinglist/internal/types"
	"gorm.io/gorm"
)

// ListFilter narrows the waiting list. Clauses are ANDed; -1 and empty values disable a clause.
type ListFilter struct {
	PriorityFloor       int    `query:"priorityfloor" json:"priorityFloor" validate:"min=1,max=5"`
	Species             int64  `query:"species" json:"species" validate:"min=-1"`
	Size                int64  `query:"size" json:"size" validate:"min=-1"`
	AddressContains     string `query:"addresscontains" json:"addressContains" validate:"max=255"`
	IncludeRemoved      bool   `query:"includeremoved" json:"includeRemoved"`
	NameContains        string `query:"namecontains" json:"nameContains" validate:"max=255"`
	DescriptionContains string `query:"descriptioncontains" json:"descriptionContains" validate:"max=255"`
	SiteID              uint64 `query:"siteid" json:"siteId"`
}

// DefaultListFilter lists every active entry on every site
func DefaultListFilter() ListFilter {
	return ListFilter{
		PriorityFloor: 5,
		Species:       -1,
		Size:          -1,
	}
}

// List returns entries matching f ordered by urgency then date put on list
func (w *WaitingList) List(ctx context.Context, f ListFilter) ([]WaitingListRow, error) {
	if err := w.validate.Struct(f); err != nil {
		return nil, &types.ValidationError{Field: "filter", Message: err.Error()}
	}

	db := w.db.WithContext(ctx)
	q := waitingListQuery(db, "waitinglist:list").Where("a.urgency <= ?", f.PriorityFloor)
	if !f.IncludeRemoved {
		q = q.Where("a.date_removed_from_list IS NULL")
	}
	if f.Species != -1 {
		q = q.Where("a.species_id = ?", f.Species)
	}
	if f.Size != -1 {
		q = q.Where("a.size_id = ?", f.Size)
	}
	if f.AddressContains != "" {
		q = q.Where("UPPER(o.owner_address) LIKE ?", containsUpper(f.AddressContains))
	}
	if f.NameContains != "" {
		q = q.Where("UPPER(o.owner_name) LIKE ?", containsUpper(f.NameContains))
	}
	if f.DescriptionContains != "" {
		q = q.Where("UPPER(a.animal_description) LIKE ?", containsUpper(f.DescriptionContains))
	}
	q = withSite(q, f.SiteID)

	var rows []WaitingListRow
	if err := q.Order("a.urgency, a.date_put_on_list, a.id").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list waiting list: %w", err)
	}
	if err := w.decorate(db, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SimpleSearch matches query against the id, contact name, searchable additional
// fields and the free text columns. An empty query lists all active entries.
func (w *WaitingList) SimpleSearch(ctx context.Context, query string, limit int, siteID uint64) ([]WaitingListRow, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return w.List(ctx, DefaultListFilter())
	}
	if limit < 0 {
		return nil, &types.ValidationError{Field: "limit", Message: "limit cannot be negative"}
	}

	like := "%" + strings.ToLower(query) + "%"
	var ors []string
	var args []any
	if id, err := strconv.ParseUint(query, 10, 64); err == nil {
		ors = append(ors, "a.id = ?")
		args = append(args, id)
	}
	ors = append(ors, "LOWER(o.owner_name) LIKE ?")
	args = append(args, like)
	ors = append(ors, "EXISTS (SELECT ad.value FROM additional ad "+
		"INNER JOIN additionalfield af ON af.id = ad.additional_field_id AND af.searchable = ? "+
		"WHERE ad.link_id = a.id AND ad.link_type = ? AND LOWER(ad.value) LIKE ?)")
	args = append(args, true, models.AdditionalLinkWaitingList, like)
	for _, col := range []string{"a.animal_description", "a.reason_for_wanting_to_part", "a.reason_for_removal"} {
		ors = append(ors, "LOWER("+col+") LIKE ?")
		args = append(args, like)
	}

	db := w.db.WithContext(ctx)
	q := waitingListQuery(db, "waitinglist:search").
		Where("a.id > 0").
		Where("("+strings.Join(ors, " OR ")+")", args...)
	q = withSite(q, siteID)

	var found []WaitingListRow
	if err := q.Order("a.id").Scan(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to search waiting list: %w", err)
	}

	seen := make(map[uint64]bool, len(found))
	rows := make([]WaitingListRow, 0, len(found))
	for _, r := range found {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		rows = append(rows, r)
		if limit > 0 && len(rows) == limit {
			break
		}
	}

	if err := w.decorate(db, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// withSite keeps contacts on the given site or on no site; 0 disables the filter
func withSite(q *gorm.DB, siteID uint64) *gorm.DB {
	if siteID == 0 {
		return q
	}
	return q.Where("(o.site_id = 0 OR o.site_id = ?)", siteID)
}

func containsUpper(s string) string {
	return "%" + strings.ToUpper(s) + "%"
}
