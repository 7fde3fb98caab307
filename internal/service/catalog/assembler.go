package catalog

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/landagri/backend/internal/domain"
	"github.com/landagri/backend/internal/pkg/logger"
)

// Result is the assembled catalog: the flat table (one row per initiative),
// the enhanced per-initiative records with list-typed year fields, and the
// names dropped for lacking valid year data.
type Result struct {
	Records []*domain.InitiativeRecord
	ByName  map[string]*domain.InitiativeRecord
	Rows    []domain.InitiativeRow
	Dropped []string
}

// Assemble folds all raw initiative entries into a Result. Entries without
// valid years are logged and skipped; iteration order is by name so repeated
// runs over the same input produce identical output.
func Assemble(ctx context.Context, raw map[string]*domain.RawInitiative) *Result {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	result := &Result{
		Records: make([]*domain.InitiativeRecord, 0, len(names)),
		ByName:  make(map[string]*domain.InitiativeRecord, len(names)),
		Rows:    make([]domain.InitiativeRow, 0, len(names)),
	}

	for _, name := range names {
		record, err := ProcessInitiative(name, raw[name])
		if err != nil {
			logger.Warnf(ctx, "skipping initiative %s: %s", name, err.Error())
			result.Dropped = append(result.Dropped, name)
			continue
		}

		result.Records = append(result.Records, record)
		result.ByName[name] = record
		result.Rows = append(result.Rows, rowFromRecord(record))
	}

	logger.Infof(ctx, "assembled %d initiatives, dropped %d", len(result.Records), len(result.Dropped))

	return result
}

func rowFromRecord(record *domain.InitiativeRecord) domain.InitiativeRow {
	primary := record.PrimaryVariant()
	return domain.InitiativeRow{
		Name:                 record.Name,
		Acronym:              record.Acronym,
		CoverageType:         record.CoverageType,
		Provider:             record.Provider,
		ProviderCategory:     record.ProviderCategory,
		Resolution:           record.Resolution,
		ResolutionCategory:   record.ResolutionCategory,
		Accuracy:             record.Accuracy,
		AccuracyCategory:     record.AccuracyCategory,
		Classes:              primary.ClassCount,
		Legend:               record.Legend,
		Methodology:          record.Methodology,
		ClassificationMethod: record.ClassificationMethod,
		MethodCategory:       record.MethodCategory,
		TemporalFrequency:    record.TemporalFrequency,
		StartYear:            record.StartYear,
		EndYear:              record.EndYear,
		TemporalSpan:         record.TemporalSpan,
		TotalYears:           record.TotalYears,
		AvailableYears:       joinYears(record.AvailableYears),
		TemporalGaps:         joinYears(record.TemporalGaps),
		ResolutionScore:      record.ResolutionScore,
		OverallScore:         record.OverallScore,
	}
}

func joinYears(years []domain.Year) string {
	if len(years) == 0 {
		return ""
	}
	parts := make([]string, len(years))
	for i, year := range years {
		parts[i] = strconv.Itoa(year)
	}
	return strings.Join(parts, ",")
}
