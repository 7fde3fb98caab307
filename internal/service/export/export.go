// Package export renders the assembled tables as CSV and XLSX downloads.
package export

import (
	"fmt"

	"github.com/jszwec/csvutil"
	"github.com/landagri/backend/internal/domain"
)

// CalendarCSV encodes the flattened crop calendar, header row first.
func CalendarCSV(rows []*domain.CalendarRow) ([]byte, error) {
	out, err := csvutil.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("csvutil.Marshal: %w", err)
	}
	return out, nil
}

// InitiativesCSV encodes the initiative table, header row first.
func InitiativesCSV(rows []domain.InitiativeRow) ([]byte, error) {
	out, err := csvutil.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("csvutil.Marshal: %w", err)
	}
	return out, nil
}
