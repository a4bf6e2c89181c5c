// seed.go
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

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnerve/waitinglist/data"
	"gorm.io/gorm"
)

// SeedLookups loads the default lookups into a database that has none.
// It reports whether the script ran.
func SeedLookups(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Table("lkurgency").Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count urgencies: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ExecuteSQL(tx, data.Lookups)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ExecuteSQL runs a ';' separated script after stripping '--' comments
func ExecuteSQL(db *gorm.DB, script string) error {
	lines := strings.Split(script, "\n")

	var ncls []string
	for _, l := range lines {
		ncls = append(ncls, excludeComment(l))
	}

	queries := strings.Split(strings.Join(ncls, " "), ";")
	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		if err := db.Exec(q).Error; err != nil {
			return fmt.Errorf("%w : when executing > %s", err, q)
		}
	}
	return nil
}

// excludeComment drops a trailing '--' comment that is not inside a quoted string
func excludeComment(line string) string {
	const (
		d = "\""
		s = "'"
		c = "--"
	)

	var nc string
	ck := line
	mx := len(line) + 1

	for {
		if len(ck) == 0 {
			return nc
		}

		di := strings.Index(ck, d)
		si := strings.Index(ck, s)
		ci := strings.Index(ck, c)

		if di < 0 {
			di = mx
		}
		if si < 0 {
			si = mx
		}
		if ci < 0 {
			ci = mx
		}

		var quote string
		switch {
		case di < si && di < ci:
			quote = d
		case si < di && si < ci:
			quote = s
		case ci < di && ci < si:
			return nc + ck[:ci]
		default:
			return nc + ck
		}

		qi := strings.Index(ck, quote)
		nc += ck[:qi+1]
		ck = ck[qi+1:]

		ei := strings.Index(ck, quote)
		if ei < 0 {
			return nc + ck
		}
		nc += ck[:ei+1]
		ck = ck[ei+1:]
	}
}
