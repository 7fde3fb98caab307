package catalog_test

import (
	"testing"

	"github.com/landagri/backend/internal/service/catalog"
)

func TestParseResolution(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  float64
	}{
		{"number", 30.0, 30.0},
		{"int", 10, 10.0},
		{"string with unit", "30m", 30.0},
		{"uppercase unit", "30M", 30.0},
		{"range takes finer value", "56-64m", 56.0},
		{"list takes first", []interface{}{10.0, 30.0}, 10.0},
		{"list of strings", []interface{}{"20m", "60m"}, 20.0},
		{"nil falls back", nil, catalog.DefaultResolutionM},
		{"garbage falls back", "fine", catalog.DefaultResolutionM},
		{"empty string falls back", "", catalog.DefaultResolutionM},
		{"empty list falls back", []interface{}{}, catalog.DefaultResolutionM},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := catalog.ParseResolution(tc.value); got != tc.want {
				t.Errorf("ParseResolution(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestParseAccuracy(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  float64
	}{
		{"number", 87.5, 87.5},
		{"string percent", "85%", 85.0},
		{"string plain", "90", 90.0},
		{"not informed", "Not informed", 0},
		{"incomplete", "Incomplete", 0},
		{"not applicable", "N/A", 0},
		{"empty", "", 0},
		{"nil", nil, 0},
		{"garbage", "unknown", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := catalog.ParseAccuracy(tc.value); got != tc.want {
				t.Errorf("ParseAccuracy(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestParseClassCount(t *testing.T) {
	cases := []struct {
		value interface{}
		want  int
	}{
		{9.0, 9},
		{"15", 15},
		{" 7 ", 7},
		{0, 1},
		{-3, 1},
		{"many", 1},
		{2.5, 1},
		{nil, 1},
	}
	for _, tc := range cases {
		if got := catalog.ParseClassCount(tc.value); got != tc.want {
			t.Errorf("ParseClassCount(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}
