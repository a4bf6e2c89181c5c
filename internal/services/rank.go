// rank.go
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

	"gorm.io/gorm"
	"gorm.io/hints"
)

type rankRow struct {
	ID        uint64
	SpeciesID uint64
}

// ranks positions every active entry, globally or within its species
func (w *WaitingList) ranks(tx *gorm.DB) (map[uint64]int, error) {
	bySpecies, err := NewSettings(tx).RankBySpecies()
	if err != nil {
		return nil, err
	}

	order := "a.urgency, a.date_put_on_list, a.id"
	if bySpecies {
		order = "a.species_id, " + order
	}

	var rows []rankRow
	err = tx.Clauses(hints.Comment("select", "waitinglist:rank")).
		Table(waitingListTable+" a").
		Select("a.id, a.species_id").
		Joins("INNER JOIN owner o ON a.owner_id = o.id").
		Where("a.date_removed_from_list IS NULL").
		Order(order).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read ranks: %w", err)
	}
	return rankEntries(rows, bySpecies), nil
}

// rankEntries numbers rows from 1 in the order given, restarting at each
// species boundary when bySpecies is set
func rankEntries(rows []rankRow, bySpecies bool) map[uint64]int {
	ranks := make(map[uint64]int, len(rows))
	var lastSpecies uint64
	rank := 1
	for i, r := range rows {
		if bySpecies && (i == 0 || r.SpeciesID != lastSpecies) {
			lastSpecies = r.SpeciesID
			rank = 1
		}
		ranks[r.ID] = rank
		rank++
	}
	return ranks
}
