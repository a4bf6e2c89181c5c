// app.go
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

package app

import (
	"context"
	"fmt"

	"github.com/localnerve/waitinglist/internal/config"
	"github.com/localnerve/waitinglist/internal/database"
	"github.com/localnerve/waitinglist/internal/dbfs"
	"github.com/localnerve/waitinglist/internal/i18n"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/services"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Runtime holds the connections and services shared by the server and the CLI
type Runtime struct {
	DB          *gorm.DB
	Redis       *redis.Client // nil unless BLOB_BACKEND=redis
	Locale      *i18n.Locale
	WaitingList *services.WaitingList

	log logger.Logger
}

// Start connects to the database, migrates and seeds it, and wires the waiting list service
func Start(ctx context.Context, cfg *config.Config, log logger.Logger) (*Runtime, error) {
	locale, err := i18n.New(cfg.Locale, cfg.Timezone, i18n.SystemClock{})
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	rt := &Runtime{DB: db, Locale: locale, log: log}

	if err := database.AutoMigrate(db); err != nil {
		rt.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	seeded, err := database.SeedLookups(ctx, db)
	if err != nil {
		rt.Close()
		return nil, err
	}
	if seeded {
		log.Info("seeded lookup tables")
	}

	var blobs dbfs.Store = dbfs.NewDBStore()
	if cfg.BlobBackend == "redis" {
		client, err := dbfs.ConnectRedis(ctx, dbfs.DefaultConnectOptions(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB), log)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.Redis = client
		blobs = dbfs.NewRedisStore(client)
	}

	rt.WaitingList = services.NewWaitingList(db, locale, blobs, log)
	return rt, nil
}

// Close releases the connections
func (r *Runtime) Close() {
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			r.log.Warn("failed to close redis", logger.Error(err))
		}
	}
	if err := database.Close(r.DB); err != nil {
		r.log.Warn("failed to close database", logger.Error(err))
	}
}
