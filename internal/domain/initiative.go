package domain

// Year is a calendar year of product availability.
type Year = int

// ClassificationVariant is one classification scheme offered by an
// initiative, e.g. an open 9-class product next to a private 15-class one.
type ClassificationVariant struct {
	ClassCount int    `json:"class_count"`
	Legend     string `json:"legend"`
}

// InitiativeRecord is the normalized form of one LULC monitoring initiative.
// It is built once per snapshot load and immutable afterwards.
type InitiativeRecord struct {
	Name                 string                  `json:"name"`
	Acronym              string                  `json:"acronym"`
	CoverageType         string                  `json:"coverage_type"`
	Coverage             string                  `json:"coverage"`
	Provider             string                  `json:"provider"`
	ProviderCategory     string                  `json:"provider_category"`
	Source               string                  `json:"source"`
	ReferenceSystem      string                  `json:"reference_system"`
	Resolution           float64                 `json:"resolution_m"`
	ResolutionKnown      bool                    `json:"resolution_known"`
	ResolutionCategory   string                  `json:"resolution_category"`
	Accuracy             float64                 `json:"accuracy_pct"`
	AccuracyKnown        bool                    `json:"accuracy_known"`
	AccuracyCategory     string                  `json:"accuracy_category"`
	ClassCount           int                     `json:"class_count"`
	Legend               string                  `json:"legend"`
	Variants             []ClassificationVariant `json:"variants"`
	Methodology          string                  `json:"methodology"`
	ClassificationMethod string                  `json:"classification_method"`
	MethodCategory       string                  `json:"method_category"`
	TemporalFrequency    string                  `json:"temporal_frequency"`
	UpdateFrequency      string                  `json:"update_frequency"`
	Sensors              []string                `json:"sensors,omitempty"`

	AvailableYears []Year `json:"available_years"`
	StartYear      Year   `json:"start_year"`
	EndYear        Year   `json:"end_year"`
	TemporalSpan   int    `json:"temporal_span"`
	TotalYears     int    `json:"total_years"`
	TemporalGaps   []Year `json:"temporal_gaps"`

	ResolutionScore float64 `json:"resolution_score"`
	OverallScore    float64 `json:"overall_score"`
}

// PrimaryVariant returns the first classification variant. Records always
// carry at least one.
func (r *InitiativeRecord) PrimaryVariant() ClassificationVariant {
	if len(r.Variants) == 0 {
		return ClassificationVariant{ClassCount: r.ClassCount, Legend: r.Legend}
	}
	return r.Variants[0]
}

// InitiativeRow is the flat tabular projection of an InitiativeRecord: one
// row per initiative, list-typed fields joined to comma-separated strings.
// The row keeps only the primary classification variant; alternates survive
// inside the legend string ("<primary> | ALT: <alternate>").
type InitiativeRow struct {
	Name                 string  `json:"name" csv:"name"`
	Acronym              string  `json:"acronym" csv:"acronym"`
	CoverageType         string  `json:"coverage_type" csv:"coverage_type"`
	Provider             string  `json:"provider" csv:"provider"`
	ProviderCategory     string  `json:"provider_category" csv:"provider_category"`
	Resolution           float64 `json:"resolution_m" csv:"resolution_m"`
	ResolutionCategory   string  `json:"resolution_category" csv:"resolution_category"`
	Accuracy             float64 `json:"accuracy_pct" csv:"accuracy_pct"`
	AccuracyCategory     string  `json:"accuracy_category" csv:"accuracy_category"`
	Classes              int     `json:"classes" csv:"classes"`
	Legend               string  `json:"legend" csv:"legend"`
	Methodology          string  `json:"methodology" csv:"methodology"`
	ClassificationMethod string  `json:"classification_method" csv:"classification_method"`
	MethodCategory       string  `json:"method_category" csv:"method_category"`
	TemporalFrequency    string  `json:"temporal_frequency" csv:"temporal_frequency"`
	StartYear            Year    `json:"start_year" csv:"start_year"`
	EndYear              Year    `json:"end_year" csv:"end_year"`
	TemporalSpan         int     `json:"temporal_span" csv:"temporal_span"`
	TotalYears           int     `json:"total_years" csv:"total_years"`
	AvailableYears       string  `json:"available_years" csv:"available_years"`
	TemporalGaps         string  `json:"temporal_gaps" csv:"temporal_gaps"`
	ResolutionScore      float64 `json:"resolution_score" csv:"resolution_score"`
	OverallScore         float64 `json:"overall_score" csv:"overall_score"`
}

// TimelineItem is one initiative prepared for the temporal timeline view,
// ordered by start year.
type TimelineItem struct {
	Name              string   `json:"name"`
	Acronym           string   `json:"acronym"`
	StartYear         Year     `json:"start_year"`
	EndYear           Year     `json:"end_year"`
	Years             []Year   `json:"years"`
	CoverageType      string   `json:"coverage_type"`
	Methodology       string   `json:"methodology"`
	Provider          string   `json:"provider"`
	PeriodDuration    int      `json:"period_duration"`
	TotalYears        int      `json:"total_years_available"`
	TemporalFrequency string   `json:"temporal_frequency"`
	Gaps              []Year   `json:"gaps"`
	Sensors           []string `json:"sensors,omitempty"`
}

// TimelineSummary aggregates the timeline items for the header widgets.
type TimelineSummary struct {
	TotalInitiatives    int      `json:"total_initiatives"`
	EarliestYear        Year     `json:"earliest_year"`
	LatestYear          Year     `json:"latest_year"`
	TotalPeriod         string   `json:"total_period"`
	PeriodSpanYears     int      `json:"period_span_years"`
	TotalYearsAvailable int      `json:"total_years_available"`
	CoverageTypes       []string `json:"coverage_types"`
	Methodologies       []string `json:"methodologies"`
}
