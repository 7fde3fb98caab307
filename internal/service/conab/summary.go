package conab

import (
	"sort"
	"strings"
	"time"

	"github.com/landagri/backend/internal/domain"
)

// Window of the published CONAB calendar series.
const (
	calendarStartYear = "2020"
	calendarEndYear   = "2024"
	calendarFrequency = "annual"
)

// Period reports the data window of the calendar series and the build time
// of the serving snapshot.
func Period(loadedAt time.Time) domain.DataPeriod {
	return domain.DataPeriod{
		StartYear:  calendarStartYear,
		EndYear:    calendarEndYear,
		Frequency:  calendarFrequency,
		LastUpdate: loadedAt.UTC().Format(time.RFC3339),
	}
}

// Summary builds the per-crop, per-region calendar summary. A month counts
// as a region's planting (or harvest) month when more than half of that
// region's state entries show the activity — "Planting and Harvest" counts
// for both.
func Summary(rows []*domain.CalendarRow) []domain.CalendarSummaryRow {
	groups, order := groupByCropRegion(rows)

	summary := make([]domain.CalendarSummaryRow, 0, len(order))
	for _, key := range order {
		group := groups[key]
		planting, harvest := majorityMonths(group)
		summary = append(summary, domain.CalendarSummaryRow{
			Crop:           key.crop,
			Region:         key.region,
			PlantingMonths: planting,
			HarvestMonths:  harvest,
			StatesCount:    len(group),
		})
	}

	return summary
}

// SeasonsInfo derives the dominant planting/harvest windows per crop and
// region, Southern-Hemisphere season convention.
func SeasonsInfo(rows []*domain.CalendarRow) map[string]map[string]domain.SeasonInfo {
	groups, order := groupByCropRegion(rows)

	info := make(map[string]map[string]domain.SeasonInfo)
	for _, key := range order {
		group := groups[key]
		planting, harvest := majorityMonths(group)

		if info[key.crop] == nil {
			info[key.crop] = make(map[string]domain.SeasonInfo)
		}
		info[key.crop][key.region] = domain.SeasonInfo{
			MainPlantingSeason: domain.DominantSeason(planting),
			MainHarvestSeason:  domain.DominantSeason(harvest),
			PlantingMonths:     planting,
			HarvestMonths:      harvest,
		}
	}

	return info
}

// Overview aggregates the headline counts for the dashboard overview page.
func Overview(rows []*domain.CalendarRow) domain.DashboardSummary {
	states := make(map[string]domain.StateRef)
	crops := make(map[string]bool)
	regions := make(map[string]bool)

	for _, row := range rows {
		states[row.StateCode] = domain.StateRef{
			StateCode: row.StateCode,
			StateName: row.StateName,
			Region:    row.Region,
		}
		crops[row.Crop] = true
		regions[row.Region] = true
	}

	stateRefs := make([]domain.StateRef, 0, len(states))
	for _, ref := range states {
		stateRefs = append(stateRefs, ref)
	}
	sort.Slice(stateRefs, func(i, j int) bool { return stateRefs[i].StateCode < stateRefs[j].StateCode })

	return domain.DashboardSummary{
		StateCount:  len(states),
		CropCount:   len(crops),
		RegionCount: len(regions),
		Crops:       sortedKeys(crops),
		Regions:     sortedKeys(regions),
		States:      stateRefs,
	}
}

type cropRegion struct {
	crop   string
	region string
}

func groupByCropRegion(rows []*domain.CalendarRow) (map[cropRegion][]*domain.CalendarRow, []cropRegion) {
	groups := make(map[cropRegion][]*domain.CalendarRow)
	order := make([]cropRegion, 0)
	for _, row := range rows {
		key := cropRegion{crop: row.Crop, region: row.Region}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].crop != order[j].crop {
			return order[i].crop < order[j].crop
		}
		return order[i].region < order[j].region
	})

	return groups, order
}

func majorityMonths(group []*domain.CalendarRow) (planting, harvest []string) {
	planting = make([]string, 0, 4)
	harvest = make([]string, 0, 4)
	for _, month := range domain.MonthNames {
		plantingCount, harvestCount := 0, 0
		for _, row := range group {
			activity := row.Activity(month)
			if strings.Contains(activity, domain.ActivityPlanting) {
				plantingCount++
			}
			if strings.Contains(activity, domain.ActivityHarvest) {
				harvestCount++
			}
		}
		if plantingCount*2 > len(group) {
			planting = append(planting, month)
		}
		if harvestCount*2 > len(group) {
			harvest = append(harvest, month)
		}
	}
	return planting, harvest
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
