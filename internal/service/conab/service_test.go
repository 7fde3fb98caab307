package conab_test

import (
	"context"
	"testing"
	"time"

	"github.com/landagri/backend/internal/domain"
	"github.com/landagri/backend/internal/service/conab"
)

func sampleCalendar() *domain.RawCropCalendar {
	return &domain.RawCropCalendar{
		Metadata: map[string]interface{}{"source": "CONAB"},
		States: map[string]domain.RawStateInfo{
			"MT": {Name: "Mato Grosso", Region: "Central-West"},
		},
		CropCalendar: map[string][]domain.RawStateEntry{
			"Soybean": {
				{
					StateCode: "MT",
					StateName: "Mato Grosso",
					Calendar: map[string]string{
						"October":  "P",
						"November": "P",
						"January":  "H",
						"February": "PH",
					},
				},
				{
					StateCode: "PR",
					StateName: "Paraná",
					Calendar: map[string]string{
						"October": "P/H",
						"March":   "H",
					},
				},
			},
			"Corn": {
				{
					StateCode: "MT",
					StateName: "Mato Grosso",
					Calendar:  map[string]string{"February": "P", "June": "H"},
				},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	svc := conab.NewService()

	if !svc.Validate(sampleCalendar()) {
		t.Error("valid payload rejected")
	}
	if svc.Validate(nil) {
		t.Error("nil payload accepted")
	}

	missingCalendar := sampleCalendar()
	missingCalendar.CropCalendar = nil
	if svc.Validate(missingCalendar) {
		t.Error("payload without crop_calendar accepted")
	}

	missingState := sampleCalendar()
	missingState.CropCalendar["Soybean"][0].StateCode = ""
	if svc.Validate(missingState) {
		t.Error("entry without state_code accepted")
	}
}

func TestStandardizeActivity(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"P", domain.ActivityPlanting},
		{"H", domain.ActivityHarvest},
		{"PH", domain.ActivityPlantingAndHarvest},
		{"P/H", domain.ActivityPlantingAndHarvest},
		{"", domain.ActivityNone},
		{"X", "X"},
	}
	for _, tc := range cases {
		if got := conab.StandardizeActivity(tc.code); got != tc.want {
			t.Errorf("StandardizeActivity(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestFlatten(t *testing.T) {
	svc := conab.NewService()
	rows := svc.Flatten(context.Background(), sampleCalendar())

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	// Crops iterate sorted: Corn first.
	if rows[0].Crop != "Corn" || rows[1].Crop != "Soybean" {
		t.Errorf("crop order = %q, %q", rows[0].Crop, rows[1].Crop)
	}

	mt := rows[1]
	if mt.StateCode != "MT" {
		t.Fatalf("state = %q, want MT", mt.StateCode)
	}
	if mt.Region != "Central-West" {
		t.Errorf("region = %q, want Central-West", mt.Region)
	}
	if mt.October != domain.ActivityPlanting {
		t.Errorf("october = %q", mt.October)
	}
	if mt.February != domain.ActivityPlantingAndHarvest {
		t.Errorf("february = %q", mt.February)
	}
	if mt.July != domain.ActivityNone {
		t.Errorf("unset month = %q, want %q", mt.July, domain.ActivityNone)
	}
}

func TestFlattenRegionFallback(t *testing.T) {
	svc := conab.NewService()
	rows := svc.Flatten(context.Background(), sampleCalendar())

	// PR is absent from the payload's states block; the fixed table applies.
	for _, row := range rows {
		if row.StateCode == "PR" && row.Region != domain.RegionSouth {
			t.Errorf("PR region = %q, want %q", row.Region, domain.RegionSouth)
		}
	}
}

func TestSummaryMajorityVote(t *testing.T) {
	svc := conab.NewService()
	rows := svc.Flatten(context.Background(), sampleCalendar())
	summary := conab.Summary(rows)

	var soyCW *domain.CalendarSummaryRow
	for i := range summary {
		if summary[i].Crop == "Soybean" && summary[i].Region == "Central-West" {
			soyCW = &summary[i]
		}
	}
	if soyCW == nil {
		t.Fatal("Soybean/Central-West summary missing")
	}
	if soyCW.StatesCount != 1 {
		t.Errorf("states count = %d, want 1", soyCW.StatesCount)
	}
	// Single state: its months carry the vote. February is PH, so it shows
	// in both lists.
	wantPlanting := []string{"February", "October", "November"}
	if len(soyCW.PlantingMonths) != len(wantPlanting) {
		t.Fatalf("planting months = %v, want %v", soyCW.PlantingMonths, wantPlanting)
	}
	wantHarvest := []string{"January", "February"}
	if len(soyCW.HarvestMonths) != len(wantHarvest) {
		t.Fatalf("harvest months = %v, want %v", soyCW.HarvestMonths, wantHarvest)
	}
}

func TestSummaryNoMajority(t *testing.T) {
	rows := []*domain.CalendarRow{
		{Crop: "Rice", StateCode: "RS", StateName: "Rio Grande do Sul", Region: "South", October: domain.ActivityPlanting},
		{Crop: "Rice", StateCode: "SC", StateName: "Santa Catarina", Region: "South", November: domain.ActivityPlanting},
	}

	summary := conab.Summary(rows)
	if len(summary) != 1 {
		t.Fatalf("summary rows = %d, want 1", len(summary))
	}
	// One of two states each: 50% is not a majority.
	if len(summary[0].PlantingMonths) != 0 {
		t.Errorf("planting months = %v, want none", summary[0].PlantingMonths)
	}
}

func TestSeasonsInfo(t *testing.T) {
	svc := conab.NewService()
	rows := svc.Flatten(context.Background(), sampleCalendar())
	info := conab.SeasonsInfo(rows)

	soy, ok := info["Soybean"]["Central-West"]
	if !ok {
		t.Fatal("Soybean/Central-West seasons missing")
	}
	// Planting months: February (Summer), October, November (Spring).
	if soy.MainPlantingSeason != domain.SeasonSpring {
		t.Errorf("planting season = %q, want %q", soy.MainPlantingSeason, domain.SeasonSpring)
	}
	// Harvest months: January, February (Summer).
	if soy.MainHarvestSeason != domain.SeasonSummer {
		t.Errorf("harvest season = %q, want %q", soy.MainHarvestSeason, domain.SeasonSummer)
	}
}

func TestPeriod(t *testing.T) {
	loadedAt := time.Date(2026, 8, 27, 12, 30, 0, 0, time.UTC)
	period := conab.Period(loadedAt)

	if period.StartYear != "2020" || period.EndYear != "2024" {
		t.Errorf("window = %s-%s, want 2020-2024", period.StartYear, period.EndYear)
	}
	if period.Frequency != "annual" {
		t.Errorf("frequency = %q, want annual", period.Frequency)
	}
	if period.LastUpdate != "2026-08-27T12:30:00Z" {
		t.Errorf("last update = %q", period.LastUpdate)
	}
}

func TestOverview(t *testing.T) {
	svc := conab.NewService()
	rows := svc.Flatten(context.Background(), sampleCalendar())
	overview := conab.Overview(rows)

	if overview.StateCount != 2 {
		t.Errorf("state count = %d, want 2", overview.StateCount)
	}
	if overview.CropCount != 2 {
		t.Errorf("crop count = %d, want 2", overview.CropCount)
	}
	if overview.RegionCount != 2 {
		t.Errorf("region count = %d, want 2", overview.RegionCount)
	}
	if len(overview.States) != 2 || overview.States[0].StateCode != "MT" {
		t.Errorf("states = %v", overview.States)
	}
}
