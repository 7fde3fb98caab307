// Package store holds the current metadata snapshot. There is no database:
// the source files are the system of record and the snapshot is recomputed
// from them whenever a file's mtime moves or a reload is forced.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/landagri/backend/internal/domain"
	"github.com/landagri/backend/internal/service/loader"
)

type Store interface {
	Current(ctx context.Context) (*domain.Snapshot, error)
	Reload(ctx context.Context) (*domain.Snapshot, error)
	ListInitiativeRows(ctx context.Context, opts ListInitiativeRowsOpts) ([]domain.InitiativeRow, error)
	GetInitiative(ctx context.Context, name string) (*domain.InitiativeRecord, error)
	ListSensors(ctx context.Context) ([]domain.SensorRecord, error)
	ListCalendar(ctx context.Context, opts ListCalendarOpts) ([]*domain.CalendarRow, error)
}

type store struct {
	loader *loader.Loader

	mu       sync.RWMutex
	snapshot *domain.Snapshot
	modTimes map[string]time.Time
}

func NewStore(l *loader.Loader) Store {
	return &store{loader: l}
}
