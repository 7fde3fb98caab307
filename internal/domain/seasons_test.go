package domain_test

import (
	"testing"

	"github.com/landagri/backend/internal/domain"
)

func TestSeasonForMonth(t *testing.T) {
	cases := []struct {
		month string
		want  string
	}{
		{"October", domain.SeasonSpring},
		{"December", domain.SeasonSpring},
		{"january", domain.SeasonSummer},
		{"March", domain.SeasonSummer},
		{"April", domain.SeasonAutumn},
		{"JUNE", domain.SeasonAutumn},
		{"July", domain.SeasonWinter},
		{"September", domain.SeasonWinter},
		{"Smarch", domain.SeasonNone},
	}
	for _, tc := range cases {
		if got := domain.SeasonForMonth(tc.month); got != tc.want {
			t.Errorf("SeasonForMonth(%q) = %q, want %q", tc.month, got, tc.want)
		}
	}
}

func TestDominantSeason(t *testing.T) {
	cases := []struct {
		name   string
		months []string
		want   string
	}{
		{"empty", nil, domain.SeasonNone},
		{"single", []string{"October"}, domain.SeasonSpring},
		{"majority", []string{"October", "November", "February"}, domain.SeasonSpring},
		{"tie resolves by month order", []string{"January", "October"}, domain.SeasonSummer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.DominantSeason(tc.months); got != tc.want {
				t.Errorf("DominantSeason(%v) = %q, want %q", tc.months, got, tc.want)
			}
		})
	}
}

func TestCalendarRowActivityRoundTrip(t *testing.T) {
	row := &domain.CalendarRow{}
	if !row.SetActivity("September", domain.ActivityPlanting) {
		t.Fatal("SetActivity rejected a valid month")
	}
	if got := row.Activity("september"); got != domain.ActivityPlanting {
		t.Errorf("Activity = %q, want %q", got, domain.ActivityPlanting)
	}
	if row.SetActivity("Octember", domain.ActivityHarvest) {
		t.Error("SetActivity accepted an unknown month")
	}
	if got := row.Activity("Octember"); got != domain.ActivityNone {
		t.Errorf("Activity for unknown month = %q, want %q", got, domain.ActivityNone)
	}
}
