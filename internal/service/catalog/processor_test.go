package catalog_test

import (
	"errors"
	"math"
	"testing"

	"github.com/landagri/backend/internal/domain"
	"github.com/landagri/backend/internal/service/catalog"
)

func sampleRaw() *domain.RawInitiative {
	return &domain.RawInitiative{
		Acronym:             "MB",
		Coverage:            "National",
		Provider:            "MapBiomas Network",
		SpatialResolution:   "30m",
		OverallAccuracy:     "89%",
		QntClasses:          9.0,
		LegendaClasses:      "Forest, Pasture, Agriculture",
		Methodology:         "Remote sensing",
		MetodoClassificacao: "Random Forest",
		AvailableYears:      []interface{}{2019.0, 2020.0, 2022.0},
	}
}

func TestProcessInitiative(t *testing.T) {
	record, err := catalog.ProcessInitiative("MapBiomas", sampleRaw())
	if err != nil {
		t.Fatalf("ProcessInitiative: %v", err)
	}

	if record.Resolution != 30 || !record.ResolutionKnown {
		t.Errorf("resolution = %v known=%v, want 30 known=true", record.Resolution, record.ResolutionKnown)
	}
	if record.Accuracy != 89 || !record.AccuracyKnown {
		t.Errorf("accuracy = %v known=%v, want 89 known=true", record.Accuracy, record.AccuracyKnown)
	}
	if record.ResolutionCategory != catalog.ResolutionHigh {
		t.Errorf("resolution category = %q", record.ResolutionCategory)
	}
	if record.AccuracyCategory != catalog.AccuracyGood {
		t.Errorf("accuracy category = %q", record.AccuracyCategory)
	}
	if record.MethodCategory != catalog.MethodMachineLearning {
		t.Errorf("method category = %q", record.MethodCategory)
	}
	if record.StartYear != 2019 || record.EndYear != 2022 || record.TemporalSpan != 4 {
		t.Errorf("temporal = %d-%d span %d, want 2019-2022 span 4", record.StartYear, record.EndYear, record.TemporalSpan)
	}
	if len(record.TemporalGaps) != 1 || record.TemporalGaps[0] != 2021 {
		t.Errorf("gaps = %v, want [2021]", record.TemporalGaps)
	}

	wantResScore := 100.0 / (1 + 30.0/10)
	if math.Abs(record.ResolutionScore-wantResScore) > 1e-9 {
		t.Errorf("resolution score = %v, want %v", record.ResolutionScore, wantResScore)
	}
	wantOverall := (89 + wantResScore) / 2
	if math.Abs(record.OverallScore-wantOverall) > 1e-9 {
		t.Errorf("overall score = %v, want %v", record.OverallScore, wantOverall)
	}
}

func TestProcessInitiativeUnknownNumerics(t *testing.T) {
	raw := sampleRaw()
	raw.SpatialResolution = "varies"
	raw.OverallAccuracy = "Not informed"

	record, err := catalog.ProcessInitiative("X", raw)
	if err != nil {
		t.Fatalf("ProcessInitiative: %v", err)
	}

	if record.Resolution != catalog.DefaultResolutionM || record.ResolutionKnown {
		t.Errorf("resolution = %v known=%v, want default known=false", record.Resolution, record.ResolutionKnown)
	}
	if record.Accuracy != 0 || record.AccuracyKnown {
		t.Errorf("accuracy = %v known=%v, want 0 known=false", record.Accuracy, record.AccuracyKnown)
	}
	if record.AccuracyCategory != catalog.AccuracyLow {
		t.Errorf("accuracy category = %q, want %q", record.AccuracyCategory, catalog.AccuracyLow)
	}
}

func TestProcessInitiativeNoValidYears(t *testing.T) {
	raw := sampleRaw()
	raw.AvailableYears = []interface{}{"unknown"}

	_, err := catalog.ProcessInitiative("X", raw)
	if !errors.Is(err, catalog.ErrNoValidYears) {
		t.Errorf("err = %v, want ErrNoValidYears", err)
	}
}

func TestProcessInitiativePortugueseKeys(t *testing.T) {
	raw := &domain.RawInitiative{
		Sigla:             "PRODES",
		Cobertura:         "Amazônia",
		Provedor:          "INPE",
		ResolucaoEspacial: 30.0,
		AcuraciaGeral:     93.0,
		QntClasses:        2.0,
		LegendaClasses:    "Forest, Deforested",
		Metodologia:       "Visual interpretation",
		IntervaloTemporal: []interface{}{2000.0, 2001.0},
	}

	record, err := catalog.ProcessInitiative("PRODES", raw)
	if err != nil {
		t.Fatalf("ProcessInitiative: %v", err)
	}
	if record.Acronym != "PRODES" {
		t.Errorf("acronym = %q", record.Acronym)
	}
	if record.Provider != "INPE" || record.ProviderCategory != catalog.ProviderSpaceAgency {
		t.Errorf("provider = %q category = %q", record.Provider, record.ProviderCategory)
	}
	if record.CoverageType != "Amazônia" {
		t.Errorf("coverage type = %q", record.CoverageType)
	}
	if record.StartYear != 2000 || record.EndYear != 2001 {
		t.Errorf("window = %d-%d, want 2000-2001", record.StartYear, record.EndYear)
	}
}

func TestFillVariantsAlternateLegend(t *testing.T) {
	raw := sampleRaw()
	raw.QntClasses2 = 15.0
	raw.LegendaClasses2 = "Detailed legend"

	record, err := catalog.ProcessInitiative("X", raw)
	if err != nil {
		t.Fatalf("ProcessInitiative: %v", err)
	}

	if len(record.Variants) != 2 {
		t.Fatalf("variants = %d, want 2", len(record.Variants))
	}
	if record.ClassCount != 9 {
		t.Errorf("class count = %d, want primary 9", record.ClassCount)
	}
	if record.Variants[1].ClassCount != 15 {
		t.Errorf("alternate class count = %d, want 15", record.Variants[1].ClassCount)
	}
	want := "Forest, Pasture, Agriculture | ALT: Detailed legend"
	if record.Legend != want {
		t.Errorf("legend = %q, want %q", record.Legend, want)
	}
}

func TestFillVariantsNoAlternate(t *testing.T) {
	record, err := catalog.ProcessInitiative("X", sampleRaw())
	if err != nil {
		t.Fatalf("ProcessInitiative: %v", err)
	}
	if len(record.Variants) != 1 {
		t.Errorf("variants = %d, want 1", len(record.Variants))
	}
	if record.Legend != "Forest, Pasture, Agriculture" {
		t.Errorf("legend = %q", record.Legend)
	}
}
