// main.go
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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/localnerve/waitinglist/internal/config"
	"github.com/localnerve/waitinglist/internal/database"
	"github.com/localnerve/waitinglist/internal/dbfs"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/services"
	"github.com/redis/go-redis/v9"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.New("error", false)

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", logger.Error(err))
		return 1
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Error("failed to connect to database", logger.Error(err))
		return 1
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var rdb *redis.Client
	if cfg.BlobBackend == "redis" {
		opts := dbfs.DefaultConnectOptions(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		opts.ConnectTimeout = 3 * time.Second
		if rdb, err = dbfs.ConnectRedis(ctx, opts, log); err != nil {
			log.Error("failed to connect to redis", logger.Error(err))
			return 1
		}
		defer func() { _ = rdb.Close() }()
	}

	result := services.HealthCheck(ctx, cfg, db, rdb, log)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Error("failed to marshal health check result", logger.Error(err))
		return 1
	}
	fmt.Println(string(output))

	if result.Status != "healthy" {
		return 1
	}
	return 0
}
