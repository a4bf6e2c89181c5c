// highlight.go
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
	"strconv"
	"strings"

	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/models"
	"github.com/localnerve/waitinglist/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultHighlightColor = "1"

type highlight struct {
	token string
	id    string
	color string
}

// HighlightSet is the ordered id to colour set stored in the WaitingListHighlights setting
// as space separated "id" or "id|color" tokens. A bare id has colour 1.
// Tokens that are not toggled keep their original text.
type HighlightSet struct {
	items []highlight
}

// ParseHighlights reads the stored encoding
func ParseHighlights(s string) *HighlightSet {
	set := &HighlightSet{}
	for _, token := range strings.Fields(s) {
		id, color, found := strings.Cut(token, "|")
		if !found {
			color = defaultHighlightColor
		}
		set.items = append(set.items, highlight{token: token, id: strings.TrimSpace(id), color: color})
	}
	return set
}

// colorOf returns the highlight colour of id, or "" when id is not highlighted
func (h *HighlightSet) colorOf(id uint64) string {
	key := strconv.FormatUint(id, 10)
	for _, it := range h.items {
		if it.id == key {
			return it.color
		}
	}
	return ""
}

// Colors maps every highlighted id to its colour. The first token for an id wins.
func (h *HighlightSet) Colors() map[uint64]string {
	colors := make(map[uint64]string, len(h.items))
	for _, it := range h.items {
		id, err := strconv.ParseUint(it.id, 10, 64)
		if err != nil {
			continue
		}
		if _, seen := colors[id]; !seen {
			colors[id] = it.color
		}
	}
	return colors
}

// Toggle removes id when present, whatever its colour, otherwise appends it with color.
// It reports whether id is highlighted afterwards.
func (h *HighlightSet) Toggle(id uint64, color int) bool {
	key := strconv.FormatUint(id, 10)

	kept := h.items[:0]
	removed := false
	for _, it := range h.items {
		if it.id == key {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	h.items = kept
	if removed {
		return false
	}

	c := strconv.Itoa(color)
	h.items = append(h.items, highlight{token: key + "|" + c, id: key, color: c})
	return true
}

// String encodes the set for storage
func (h *HighlightSet) String() string {
	tokens := make([]string, len(h.items))
	for i, it := range h.items {
		tokens[i] = it.token
	}
	return strings.Join(tokens, " ")
}

// ToggleHighlight flips the highlight of an entry. The setting row is locked for
// the read-modify-write so concurrent toggles serialise.
func (w *WaitingList) ToggleHighlight(ctx context.Context, id uint64, color int) (bool, error) {
	if color < 1 || color > 5 {
		return false, &types.ValidationError{Field: "color", Message: "highlight color must be between 1 and 5"}
	}

	var on bool
	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.ConfigItem
		err := lockForUpdate(tx).Where("item_name = ?", KeyHighlights).First(&item).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to read highlights: %w", err)
		}

		set := ParseHighlights(item.ItemValue)
		on = set.Toggle(id, color)
		return NewSettings(tx).Set(KeyHighlights, set.String())
	})
	if err != nil {
		return false, err
	}

	w.log.Debug("toggled highlight",
		logger.Uint64("id", id),
		logger.Bool("on", on))
	return on, nil
}

// lockForUpdate adds SELECT ... FOR UPDATE. The sqlite dialects drop the clause,
// sqlserver has no equivalent syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlserver" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
