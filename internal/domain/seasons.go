package domain

import "strings"

// Southern-Hemisphere seasons.
const (
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonAutumn = "Autumn"
	SeasonWinter = "Winter"

	SeasonNone = "No defined season"
)

// monthSeasons follows the Southern-Hemisphere convention:
// Oct-Dec Spring, Jan-Mar Summer, Apr-Jun Autumn, Jul-Sep Winter.
var monthSeasons = map[string]string{
	"october":  SeasonSpring,
	"november": SeasonSpring,
	"december": SeasonSpring,

	"january":  SeasonSummer,
	"february": SeasonSummer,
	"march":    SeasonSummer,

	"april": SeasonAutumn,
	"may":   SeasonAutumn,
	"june":  SeasonAutumn,

	"july":      SeasonWinter,
	"august":    SeasonWinter,
	"september": SeasonWinter,
}

// SeasonForMonth resolves a month name (case-insensitive) to its
// Southern-Hemisphere season. Unknown names return SeasonNone.
func SeasonForMonth(month string) string {
	if season, ok := monthSeasons[strings.ToLower(month)]; ok {
		return season
	}
	return SeasonNone
}

// DominantSeason returns the most common season among the given months.
// Ties resolve to the season reached first in canonical month order; an
// empty list returns SeasonNone.
func DominantSeason(months []string) string {
	if len(months) == 0 {
		return SeasonNone
	}

	counts := make(map[string]int, 4)
	for _, month := range months {
		counts[SeasonForMonth(month)]++
	}

	best := SeasonNone
	bestCount := 0
	for _, name := range MonthNames {
		season := SeasonForMonth(name)
		if counts[season] > bestCount {
			best = season
			bestCount = counts[season]
		}
	}

	return best
}
