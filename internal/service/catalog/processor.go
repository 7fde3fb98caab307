package catalog

import (
	"errors"
	"fmt"

	"github.com/landagri/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrNoValidYears marks an initiative whose temporal interval holds no
// parseable year. Such records are dropped from the processed set.
var ErrNoValidYears = errors.New("no valid years in temporal interval")

// ProcessInitiative normalizes one raw metadata entry into an
// InitiativeRecord. Numeric fields that cannot be parsed take the documented
// defaults, with the Known flags cleared so consumers can tell a substituted
// value from a real one.
func ProcessInitiative(name string, raw *domain.RawInitiative) (*domain.InitiativeRecord, error) {
	if raw == nil {
		return nil, fmt.Errorf("initiative %q: nil metadata", name)
	}

	span := ComputeTemporalSpan(raw.YearsValue())
	if span.Fallback {
		return nil, fmt.Errorf("initiative %q: %w", name, ErrNoValidYears)
	}

	resolution, resolutionKnown := resolutionValue(raw.ResolutionValue())
	if !resolutionKnown {
		resolution = DefaultResolutionM
	}
	accuracy, accuracyKnown := accuracyValue(raw.AccuracyValue())

	record := &domain.InitiativeRecord{
		Name:                 name,
		Acronym:              raw.AcronymValue(),
		Coverage:             raw.CoverageValue(),
		CoverageType:         domain.TranslateCoverage(raw.CoverageValue()),
		Provider:             raw.ProviderValue(),
		ProviderCategory:     CategorizeProvider(raw.ProviderValue()),
		Source:               raw.SourceValue(),
		ReferenceSystem:      raw.ReferenceSystemValue(),
		Resolution:           resolution,
		ResolutionKnown:      resolutionKnown,
		ResolutionCategory:   CategorizeResolution(resolution),
		Accuracy:             accuracy,
		AccuracyKnown:        accuracyKnown,
		AccuracyCategory:     CategorizeAccuracy(accuracy),
		Methodology:          domain.TranslateMethodology(raw.MethodologyValue()),
		ClassificationMethod: raw.MetodoClassificacao,
		MethodCategory:       CategorizeMethod(raw.MetodoClassificacao),
		TemporalFrequency:    raw.TemporalFrequencyValue(),
		UpdateFrequency:      raw.UpdateFrequencyValue(),
		Sensors:              raw.Sensors,

		AvailableYears: span.Years,
		StartYear:      span.StartYear,
		EndYear:        span.EndYear,
		TemporalSpan:   span.Span,
		TotalYears:     span.TotalYears,
		TemporalGaps:   span.Gaps,
	}

	fillVariants(record, raw)
	fillScores(record)

	return record, nil
}

// fillVariants folds the primary and alternate classification schemes. The
// record keeps every variant; the flat legend keeps the primary one and
// appends the alternate as "<primary> | ALT: <alternate>".
func fillVariants(record *domain.InitiativeRecord, raw *domain.RawInitiative) {
	primary := domain.ClassificationVariant{
		ClassCount: ParseClassCount(raw.QntClasses),
		Legend:     raw.LegendaClasses,
	}
	record.Variants = []domain.ClassificationVariant{primary}
	record.ClassCount = primary.ClassCount
	record.Legend = primary.Legend

	if raw.QntClasses2 == nil && raw.LegendaClasses2 == "" {
		return
	}

	alternate := domain.ClassificationVariant{
		ClassCount: ParseClassCount(raw.QntClasses2),
		Legend:     raw.LegendaClasses2,
	}
	if alternate == primary {
		return
	}
	record.Variants = append(record.Variants, alternate)
	if alternate.Legend != "" && alternate.Legend != primary.Legend {
		record.Legend = fmt.Sprintf("%s | ALT: %s", primary.Legend, alternate.Legend)
	}
}

// fillScores derives the resolution score 100/(1+res/10) and the overall
// score as the unweighted mean of resolution score and accuracy. The
// averaging runs through decimal to keep the published values stable.
func fillScores(record *domain.InitiativeRecord) {
	record.ResolutionScore = 100 / (1 + record.Resolution/10)

	overall := decimal.NewFromFloat(record.Accuracy).
		Add(decimal.NewFromFloat(record.ResolutionScore)).
		Div(decimal.NewFromInt(2))
	record.OverallScore = overall.InexactFloat64()
}
