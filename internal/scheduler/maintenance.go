// maintenance.go
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

package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/localnerve/waitinglist/internal/logger"
)

// DefaultInterval is how often the waiting list maintenance runs
const DefaultInterval = 24 * time.Hour

// Jobs are the waiting list automation jobs
type Jobs interface {
	AutoRemove(ctx context.Context) (int, error)
	AutoUpdateUrgencies(ctx context.Context) (int, error)
}

// Maintenance runs the waiting list jobs on start and then on an interval
type Maintenance struct {
	jobs     Jobs
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewMaintenance creates the maintenance scheduler
func NewMaintenance(jobs Jobs, log logger.Logger, interval time.Duration) *Maintenance {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Maintenance{
		jobs:     jobs,
		logger:   log.Named("maintenance"),
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start runs the jobs once, then periodically until Stop or ctx is done
func (m *Maintenance) Start(ctx context.Context) {
	m.Run(ctx)

	ticker := time.NewTicker(m.interval)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Run(ctx)
			case <-m.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the periodic runs and waits for a run in progress
func (m *Maintenance) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.wg.Wait()
}

// Run executes auto removal then urgency escalation. A failing job is logged
// and does not prevent the other from running.
func (m *Maintenance) Run(ctx context.Context) {
	start := time.Now()

	removed, err := m.jobs.AutoRemove(ctx)
	if err != nil {
		m.logger.Error("auto remove failed", logger.Error(err))
	}
	escalated, err := m.jobs.AutoUpdateUrgencies(ctx)
	if err != nil {
		m.logger.Error("urgency update failed", logger.Error(err))
	}

	m.logger.Info("waiting list maintenance completed",
		logger.Int("removed", removed),
		logger.Int("escalated", escalated),
		logger.Duration("elapsed", time.Since(start)))
}
