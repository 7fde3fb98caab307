package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is everything one load of the source files produced. Snapshots
// are immutable; a reload builds a fresh one and swaps the pointer.
type Snapshot struct {
	ID       uuid.UUID `json:"id"`
	LoadedAt time.Time `json:"loaded_at"`

	Initiatives []*InitiativeRecord          `json:"initiatives"`
	ByName      map[string]*InitiativeRecord `json:"-"`
	Rows        []InitiativeRow              `json:"rows"`
	Dropped     []string                     `json:"dropped,omitempty"`

	Timeline        []TimelineItem  `json:"timeline"`
	TimelineSummary TimelineSummary `json:"timeline_summary"`

	Sensors []SensorRecord `json:"sensors"`

	Calendar      []*CalendarRow    `json:"calendar"`
	ConabCoverage *RawConabCoverage `json:"conab_coverage,omitempty"`
}

// ErrorResponse is the JSON body the API error handler answers with.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
