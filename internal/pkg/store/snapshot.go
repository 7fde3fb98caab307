package store

import (
	"context"
	"fmt"

	"github.com/landagri/backend/internal/domain"
	"github.com/landagri/backend/internal/pkg/constants"
	"github.com/landagri/backend/internal/pkg/logger"
)

// Current returns the loaded snapshot, reloading first when no snapshot
// exists yet or a file-backed source changed on disk.
func (s *store) Current(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	stale := s.staleLocked()
	s.mu.RUnlock()

	if snapshot != nil && !stale {
		return snapshot, nil
	}

	return s.Reload(ctx)
}

// Reload rebuilds the snapshot from the sources and swaps it in.
func (s *store) Reload(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loader.Load: %w", err)
	}

	modTimes, err := s.loader.ModTimes()
	if err != nil {
		// Sources readable a moment ago; keep serving, just without
		// staleness tracking until the next reload.
		logger.Warnf(ctx, "loader.ModTimes: %s", err.Error())
		modTimes = nil
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.modTimes = modTimes
	s.mu.Unlock()

	return snapshot, nil
}

// staleLocked compares recorded source mtimes with the filesystem. Callers
// hold at least the read lock.
func (s *store) staleLocked() bool {
	if s.modTimes == nil {
		return false
	}
	current, err := s.loader.ModTimes()
	if err != nil {
		return true
	}
	for src, recorded := range s.modTimes {
		if !current[src].Equal(recorded) {
			return true
		}
	}
	return false
}

type ListInitiativeRowsOpts struct {
	CoverageType     *string
	ProviderCategory *string
	MethodCategory   *string
}

func (s *store) ListInitiativeRows(ctx context.Context, opts ListInitiativeRowsOpts) ([]domain.InitiativeRow, error) {
	snapshot, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.InitiativeRow, 0, len(snapshot.Rows))
	for _, row := range snapshot.Rows {
		if opts.CoverageType != nil && row.CoverageType != *opts.CoverageType {
			continue
		}
		if opts.ProviderCategory != nil && row.ProviderCategory != *opts.ProviderCategory {
			continue
		}
		if opts.MethodCategory != nil && row.MethodCategory != *opts.MethodCategory {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *store) GetInitiative(ctx context.Context, name string) (*domain.InitiativeRecord, error) {
	snapshot, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	record, ok := snapshot.ByName[name]
	if !ok {
		return nil, constants.ErrNotFound
	}

	return record, nil
}

func (s *store) ListSensors(ctx context.Context) ([]domain.SensorRecord, error) {
	snapshot, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Sensors, nil
}

type ListCalendarOpts struct {
	Crop   *string
	Region *string
}

func (s *store) ListCalendar(ctx context.Context, opts ListCalendarOpts) ([]*domain.CalendarRow, error) {
	snapshot, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*domain.CalendarRow, 0, len(snapshot.Calendar))
	for _, row := range snapshot.Calendar {
		if opts.Crop != nil && row.Crop != *opts.Crop {
			continue
		}
		if opts.Region != nil && row.Region != *opts.Region {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
