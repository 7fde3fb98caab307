package catalog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/landagri/backend/internal/domain"
	"github.com/landagri/backend/internal/service/catalog"
)

func sampleCatalog() map[string]*domain.RawInitiative {
	valid := sampleRaw()
	invalid := sampleRaw()
	invalid.AvailableYears = []interface{}{"no data"}
	other := sampleRaw()
	other.Acronym = "GLAD"
	other.Provider = "University of Maryland"
	other.AvailableYears = []interface{}{2015.0, 2016.0}

	return map[string]*domain.RawInitiative{
		"MapBiomas":    valid,
		"Broken Entry": invalid,
		"GLAD":         other,
	}
}

func TestAssemble(t *testing.T) {
	result := catalog.Assemble(context.Background(), sampleCatalog())

	if len(result.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(result.Records))
	}
	if len(result.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(result.Rows))
	}
	if len(result.Dropped) != 1 || result.Dropped[0] != "Broken Entry" {
		t.Errorf("dropped = %v, want [Broken Entry]", result.Dropped)
	}
	if _, ok := result.ByName["MapBiomas"]; !ok {
		t.Error("MapBiomas missing from ByName")
	}
	if _, ok := result.ByName["Broken Entry"]; ok {
		t.Error("dropped entry present in ByName")
	}

	// Sorted by name: GLAD before MapBiomas.
	if result.Rows[0].Name != "GLAD" || result.Rows[1].Name != "MapBiomas" {
		t.Errorf("row order = %q, %q", result.Rows[0].Name, result.Rows[1].Name)
	}
}

func TestAssembleRowProjection(t *testing.T) {
	result := catalog.Assemble(context.Background(), sampleCatalog())

	var row *domain.InitiativeRow
	for i := range result.Rows {
		if result.Rows[i].Name == "MapBiomas" {
			row = &result.Rows[i]
		}
	}
	if row == nil {
		t.Fatal("MapBiomas row missing")
	}

	if row.AvailableYears != "2019,2020,2022" {
		t.Errorf("available years = %q, want %q", row.AvailableYears, "2019,2020,2022")
	}
	if row.TemporalGaps != "2021" {
		t.Errorf("gaps = %q, want %q", row.TemporalGaps, "2021")
	}
	if row.Classes != 9 {
		t.Errorf("classes = %d, want 9", row.Classes)
	}
}

func TestAssembleRowKeepsPrimaryClasses(t *testing.T) {
	raw := sampleRaw()
	raw.QntClasses2 = 15.0
	raw.LegendaClasses2 = "Detailed legend"

	result := catalog.Assemble(context.Background(), map[string]*domain.RawInitiative{"X": raw})
	if len(result.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(result.Rows))
	}

	row := result.Rows[0]
	if row.Classes != 9 {
		t.Errorf("classes = %d, want primary variant's 9", row.Classes)
	}
	if row.Legend != "Forest, Pasture, Agriculture | ALT: Detailed legend" {
		t.Errorf("legend = %q", row.Legend)
	}
}

func TestAssembleIdempotent(t *testing.T) {
	first := catalog.Assemble(context.Background(), sampleCatalog())
	second := catalog.Assemble(context.Background(), sampleCatalog())

	a, err := sonic.Marshal(first.Records)
	if err != nil {
		t.Fatal(err)
	}
	b, err := sonic.Marshal(second.Records)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated assembly over identical input differs")
	}

	rowsA, err := sonic.Marshal(first.Rows)
	if err != nil {
		t.Fatal(err)
	}
	rowsB, err := sonic.Marshal(second.Rows)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rowsA, rowsB) {
		t.Error("repeated row projection over identical input differs")
	}
}
