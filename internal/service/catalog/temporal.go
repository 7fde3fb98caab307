package catalog

import (
	"sort"

	"github.com/landagri/backend/internal/domain"
)

// Fallback window substituted when an initiative carries no valid year.
// Downstream chart code expects numeric temporal fields, so the calculator
// never returns an empty result; Fallback marks the substitution.
const (
	FallbackStartYear = 2000
	FallbackEndYear   = 2024
)

// TemporalSpan is the derived temporal shape of one initiative.
type TemporalSpan struct {
	Years      []domain.Year
	StartYear  domain.Year
	EndYear    domain.Year
	Span       int
	TotalYears int
	Gaps       []domain.Year
	Fallback   bool
}

// ComputeTemporalSpan derives start/end/span/gaps from a list of year
// values. Non-numeric entries are dropped silently; duplicates collapse.
// Empty or entirely invalid input yields the fixed fallback window.
func ComputeTemporalSpan(values []interface{}) TemporalSpan {
	seen := make(map[int]bool, len(values))
	years := make([]domain.Year, 0, len(values))
	for _, value := range values {
		year, ok := parseYear(value)
		if !ok || seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}

	if len(years) == 0 {
		return TemporalSpan{
			Years:      []domain.Year{FallbackStartYear},
			StartYear:  FallbackStartYear,
			EndYear:    FallbackEndYear,
			Span:       1,
			TotalYears: 1,
			Gaps:       []domain.Year{},
			Fallback:   true,
		}
	}

	sort.Ints(years)
	start := years[0]
	end := years[len(years)-1]
	span := end - start + 1

	gaps := make([]domain.Year, 0)
	if span > len(years) {
		for year := start; year <= end; year++ {
			if !seen[year] {
				gaps = append(gaps, year)
			}
		}
	}

	return TemporalSpan{
		Years:      years,
		StartYear:  start,
		EndYear:    end,
		Span:       span,
		TotalYears: len(years),
		Gaps:       gaps,
	}
}
