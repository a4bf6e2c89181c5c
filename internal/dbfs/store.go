// store.go
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

package dbfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/waitinglist/internal/models"
	"github.com/localnerve/waitinglist/internal/types"
	"gorm.io/gorm"
)

// File describes a stored blob without its content
type File struct {
	ID   uint64
	Path string
	Name string
}

// Store keeps binary content addressed by a directory-like path and a name.
// The db argument is the caller's transaction; backends outside the database ignore it.
type Store interface {
	Put(ctx context.Context, db *gorm.DB, path, name string, content []byte) (uint64, error)
	Get(ctx context.Context, db *gorm.DB, id uint64) ([]byte, error)
	List(ctx context.Context, db *gorm.DB, path string) ([]File, error)
	DeletePath(ctx context.Context, db *gorm.DB, path string) error
}

// DBStore keeps blobs in the dbfs table
type DBStore struct{}

// NewDBStore returns the database-backed blob store
func NewDBStore() *DBStore {
	return &DBStore{}
}

func (s *DBStore) Put(ctx context.Context, db *gorm.DB, path, name string, content []byte) (uint64, error) {
	row := models.DBFS{
		Path:    cleanPath(path),
		Name:    name,
		Content: content,
	}
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to store %s/%s: %w", row.Path, name, err)
	}
	return row.ID, nil
}

func (s *DBStore) Get(ctx context.Context, db *gorm.DB, id uint64) ([]byte, error) {
	var row models.DBFS
	err := db.WithContext(ctx).Select("id", "content").First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &types.NotFoundError{Table: "dbfs", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dbfs %d: %w", id, err)
	}
	return row.Content, nil
}

func (s *DBStore) List(ctx context.Context, db *gorm.DB, path string) ([]File, error) {
	var rows []models.DBFS
	err := underPath(db.WithContext(ctx), cleanPath(path)).
		Select("id", "path", "name").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}

	files := make([]File, 0, len(rows))
	for _, r := range rows {
		files = append(files, File{ID: r.ID, Path: r.Path, Name: r.Name})
	}
	return files, nil
}

func (s *DBStore) DeletePath(ctx context.Context, db *gorm.DB, path string) error {
	err := underPath(db.WithContext(ctx), cleanPath(path)).Delete(&models.DBFS{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// underPath matches path itself and everything below it
func underPath(db *gorm.DB, path string) *gorm.DB {
	return db.Where("path = ? OR path LIKE ?", path, path+"/%")
}

func cleanPath(path string) string {
	path = "/" + strings.Trim(path, "/")
	return path
}
