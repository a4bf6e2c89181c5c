// redis.go
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
	"strconv"
	"time"

	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/localnerve/waitinglist/internal/types"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	keySeq      = "dbfs:seq"
	keyFile     = "dbfs:file:"
	keyPath     = "dbfs:path:"
	fieldPath   = "path"
	fieldName   = "name"
	fieldBlob   = "content"
	scanPerCall = 100
)

// RedisStore keeps blobs in redis. Each file is a hash under dbfs:file:<id>,
// each path a set of file ids under dbfs:path:<path>.
// Writes are not part of the caller's database transaction.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a connected client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, _ *gorm.DB, path, name string, content []byte) (uint64, error) {
	path = cleanPath(path)
	id, err := s.client.Incr(ctx, keySeq).Uint64()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate dbfs id: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, fileKey(id), fieldPath, path, fieldName, name, fieldBlob, content)
		pipe.SAdd(ctx, keyPath+path, id)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to store %s/%s: %w", path, name, err)
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, _ *gorm.DB, id uint64) ([]byte, error) {
	content, err := s.client.HGet(ctx, fileKey(id), fieldBlob).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, &types.NotFoundError{Table: "dbfs", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dbfs %d: %w", id, err)
	}
	return content, nil
}

func (s *RedisStore) List(ctx context.Context, _ *gorm.DB, path string) ([]File, error) {
	keys, err := s.pathKeys(ctx, cleanPath(path))
	if err != nil {
		return nil, err
	}

	var files []File
	for _, key := range keys {
		members, err := s.client.SMembers(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", key, err)
		}
		for _, m := range members {
			id, err := strconv.ParseUint(m, 10, 64)
			if err != nil {
				continue
			}
			vals, err := s.client.HMGet(ctx, fileKey(id), fieldPath, fieldName).Result()
			if err != nil {
				return nil, fmt.Errorf("failed to read dbfs %d: %w", id, err)
			}
			p, _ := vals[0].(string)
			n, _ := vals[1].(string)
			files = append(files, File{ID: id, Path: p, Name: n})
		}
	}
	return files, nil
}

func (s *RedisStore) DeletePath(ctx context.Context, _ *gorm.DB, path string) error {
	keys, err := s.pathKeys(ctx, cleanPath(path))
	if err != nil {
		return err
	}

	for _, key := range keys {
		members, err := s.client.SMembers(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", key, err)
		}
		_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, m := range members {
				pipe.Del(ctx, keyFile+m)
			}
			pipe.Del(ctx, key)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	return nil
}

// pathKeys finds the set keys for path and every path below it
func (s *RedisStore) pathKeys(ctx context.Context, path string) ([]string, error) {
	keys := []string{keyPath + path}

	var cursor uint64
	for {
		batch, next, err := s.client.Scan(ctx, cursor, keyPath+path+"/*", scanPerCall).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", path, err)
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

func fileKey(id uint64) string {
	return keyFile + strconv.FormatUint(id, 10)
}

// ConnectOptions controls how long ConnectRedis keeps retrying
type ConnectOptions struct {
	Addr           string
	Password       string
	DB             int
	ConnectTimeout time.Duration
	RetryInterval  time.Duration
	MaxWait        time.Duration
	PingTimeout    time.Duration
}

// DefaultConnectOptions retries for 30s, backing off from 1s to 8s
func DefaultConnectOptions(addr, password string, db int) ConnectOptions {
	return ConnectOptions{
		Addr:           addr,
		Password:       password,
		DB:             db,
		ConnectTimeout: 30 * time.Second,
		RetryInterval:  time.Second,
		MaxWait:        8 * time.Second,
		PingTimeout:    2 * time.Second,
	}
}

// ConnectRedis pings until the server answers or ConnectTimeout passes,
// with exponential backoff between attempts
func ConnectRedis(ctx context.Context, opts ConnectOptions, log logger.Logger) (*redis.Client, error) {
	if opts.ConnectTimeout <= 0 || opts.RetryInterval <= 0 || opts.MaxWait <= 0 || opts.PingTimeout <= 0 {
		return nil, fmt.Errorf("redis connect timeouts must be > 0")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	log.Info("connecting to redis",
		logger.String("addr", opts.Addr),
		logger.Duration("timeout", opts.ConnectTimeout))

	wait := opts.RetryInterval
	for attempt := 1; ; attempt++ {
		pingCtx, pingCancel := context.WithTimeout(ctx, opts.PingTimeout)
		err := client.Ping(pingCtx).Err()
		pingCancel()

		if err == nil {
			log.Info("connected to redis",
				logger.String("addr", opts.Addr),
				logger.Int("attempts", attempt))
			return client, nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			_ = client.Close()
			log.Error("redis unavailable",
				logger.String("addr", opts.Addr),
				logger.Int("attempts", attempt),
				logger.Error(err))
			return nil, fmt.Errorf("redis unavailable at %s after %d attempts: %w", opts.Addr, attempt, err)

		case <-timer.C:
			log.Warn("redis connection failed, retrying",
				logger.String("addr", opts.Addr),
				logger.Int("attempt", attempt),
				logger.Duration("next_retry_in", wait),
				logger.Error(err))
			wait = min(wait*2, opts.MaxWait)
		}
	}
}
