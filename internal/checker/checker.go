package checker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pfrederiksen/ttp-appointments/internal/appointment"
	"github.com/pfrederiksen/ttp-appointments/internal/config"
	"github.com/pfrederiksen/ttp-appointments/internal/logger"
	"github.com/pfrederiksen/ttp-appointments/internal/ttp"
)

// SchedulerAPI is the subset of the ttp client used by the checker
type SchedulerAPI interface {
	FetchLocations(ctx context.Context, serviceName string) ([]ttp.Location, error)
	FetchSlots(ctx context.Context, locationID, limit int) ([]ttp.Slot, error)
}

// Checker runs appointment checks against the scheduler API
type Checker struct {
	api  SchedulerAPI
	cfg  *config.Config
	zone *time.Location
	seen *seenSet
}

// New creates a Checker. The config's display timezone is resolved here so an
// invalid timezone fails fast instead of on the first check.
func New(api SchedulerAPI, cfg *config.Config) (*Checker, error) {
	zone, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading display timezone %q: %w", cfg.Timezone, err)
	}

	return &Checker{
		api:  api,
		cfg:  cfg,
		zone: zone,
		seen: newSeenSet(),
	}, nil
}

// locationResult is the outcome of one slot fetch
type locationResult struct {
	locationID int
	slots      []ttp.Slot
	err        error
}

// Check performs one full check and returns appointments sorted ascending by
// start time. If any per-location slot fetch fails the whole check fails,
// unless AllowPartial is set, in which case failed locations are logged and
// the successful results are returned.
func (c *Checker) Check(ctx context.Context) ([]*appointment.Appointment, error) {
	start := time.Now()
	locations, err := c.api.FetchLocations(ctx, c.cfg.ServiceName)
	if err != nil {
		return nil, err
	}
	logger.RecordTiming("api.locations", time.Since(start))

	ids := appointment.FilterLocations(locations, c.cfg.States)
	logger.Debug("Filtered locations", logger.Fields{
		"total":    len(locations),
		"matching": len(ids),
		"states":   c.cfg.States,
	})

	results := c.fetchSlots(ctx, ids)

	var slots []ttp.Slot
	var failures []error
	for _, res := range results {
		if res.err != nil {
			failures = append(failures, res.err)
			logger.Warn("Slot fetch failed", logger.Fields{
				"location_id": res.locationID,
			})
			continue
		}
		slots = append(slots, res.slots...)
	}

	if len(failures) > 0 && !c.cfg.AllowPartial {
		return nil, errors.Join(failures...)
	}

	appointments := appointment.FromSlots(slots, locations, c.zone)
	appointment.SortByStart(appointments)

	logger.IncrCounter("checks.completed")
	logger.RecordTiming("checks.duration", time.Since(start))

	return appointments, nil
}

// fetchSlots issues one slot request per location ID, at most MaxConcurrent
// in flight at a time, and collects every per-location outcome
func (c *Checker) fetchSlots(ctx context.Context, ids []int) []locationResult {
	results := make(chan locationResult, len(ids))
	sem := make(chan struct{}, c.cfg.MaxConcurrent)

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()
			slots, err := c.api.FetchSlots(ctx, id, c.cfg.Limit)
			logger.RecordTiming("api.slots", time.Since(start))
			results <- locationResult{locationID: id, slots: slots, err: err}
		}(id)
	}
	wg.Wait()
	close(results)

	collected := make([]locationResult, 0, len(ids))
	for res := range results {
		collected = append(collected, res)
	}
	return collected
}

// Unseen filters appointments down to those not reported before and marks
// them as reported. Used by watch mode; a one-shot run reports everything.
func (c *Checker) Unseen(appointments []*appointment.Appointment) []*appointment.Appointment {
	fresh := make([]*appointment.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if c.seen.add(appt.Key()) {
			fresh = append(fresh, appt)
		}
	}
	return fresh
}
