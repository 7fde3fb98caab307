package catalog

import (
	"fmt"
	"sort"

	"github.com/landagri/backend/internal/domain"
)

// BuildTimeline projects the records into timeline items ordered by start
// year, then name.
func BuildTimeline(records []*domain.InitiativeRecord) []domain.TimelineItem {
	items := make([]domain.TimelineItem, 0, len(records))
	for _, record := range records {
		items = append(items, domain.TimelineItem{
			Name:              record.Name,
			Acronym:           record.Acronym,
			StartYear:         record.StartYear,
			EndYear:           record.EndYear,
			Years:             record.AvailableYears,
			CoverageType:      record.CoverageType,
			Methodology:       record.Methodology,
			Provider:          record.Provider,
			PeriodDuration:    record.TemporalSpan,
			TotalYears:        record.TotalYears,
			TemporalFrequency: record.TemporalFrequency,
			Gaps:              record.TemporalGaps,
			Sensors:           record.Sensors,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].StartYear != items[j].StartYear {
			return items[i].StartYear < items[j].StartYear
		}
		return items[i].Name < items[j].Name
	})

	return items
}

// SummarizeTimeline aggregates the timeline items for the overview header.
func SummarizeTimeline(items []domain.TimelineItem) domain.TimelineSummary {
	if len(items) == 0 {
		return domain.TimelineSummary{
			TotalPeriod:   "N/A",
			CoverageTypes: []string{},
			Methodologies: []string{},
		}
	}

	earliest, latest := 0, 0
	totalYears := 0
	coverageTypes := make(map[string]bool)
	methodologies := make(map[string]bool)

	for _, item := range items {
		for _, year := range item.Years {
			if earliest == 0 || year < earliest {
				earliest = year
			}
			if year > latest {
				latest = year
			}
		}
		totalYears += item.TotalYears
		if item.CoverageType != "" {
			coverageTypes[item.CoverageType] = true
		}
		if item.Methodology != "" {
			methodologies[item.Methodology] = true
		}
	}

	return domain.TimelineSummary{
		TotalInitiatives:    len(items),
		EarliestYear:        earliest,
		LatestYear:          latest,
		TotalPeriod:         fmt.Sprintf("%d-%d", earliest, latest),
		PeriodSpanYears:     latest - earliest + 1,
		TotalYearsAvailable: totalYears,
		CoverageTypes:       sortedKeys(coverageTypes),
		Methodologies:       sortedKeys(methodologies),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
