package domain

import "strings"

// Activity labels produced by the CONAB calendar standardization.
const (
	ActivityPlanting           = "Planting"
	ActivityHarvest            = "Harvest"
	ActivityPlantingAndHarvest = "Planting and Harvest"
	ActivityNone               = "No Activity"
)

// MonthNames is the canonical month order used across the crop calendar.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// RawCropCalendar is the on-disk shape of the CONAB crop calendar file.
type RawCropCalendar struct {
	Metadata     map[string]interface{}     `json:"metadata" validate:"required"`
	States       map[string]RawStateInfo    `json:"states"`
	CropCalendar map[string][]RawStateEntry `json:"crop_calendar" validate:"required"`
}

type RawStateInfo struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

type RawStateEntry struct {
	StateCode string            `json:"state_code" validate:"required"`
	StateName string            `json:"state_name" validate:"required"`
	Calendar  map[string]string `json:"calendar"`
}

// RawConabCoverage is the on-disk shape of the CONAB detailed coverage file.
type RawConabCoverage struct {
	Metadata map[string]interface{}  `json:"metadata"`
	Crops    map[string]CropCoverage `json:"crops"`
}

type CropCoverage struct {
	FirstCropYears  []Year   `json:"first_crop_years"`
	SecondCropYears []Year   `json:"second_crop_years,omitempty"`
	Regions         []string `json:"regions,omitempty"`
}

// CalendarRow is one crop-state pair of the flattened crop calendar, with
// the twelve monthly activity codes standardized to descriptive labels.
type CalendarRow struct {
	Crop      string `json:"crop" csv:"crop"`
	StateCode string `json:"state_code" csv:"state_code"`
	StateName string `json:"state_name" csv:"state_name"`
	Region    string `json:"region" csv:"region"`
	January   string `json:"january" csv:"january"`
	February  string `json:"february" csv:"february"`
	March     string `json:"march" csv:"march"`
	April     string `json:"april" csv:"april"`
	May       string `json:"may" csv:"may"`
	June      string `json:"june" csv:"june"`
	July      string `json:"july" csv:"july"`
	August    string `json:"august" csv:"august"`
	September string `json:"september" csv:"september"`
	October   string `json:"october" csv:"october"`
	November  string `json:"november" csv:"november"`
	December  string `json:"december" csv:"december"`
}

// Activity returns the standardized activity for a month name
// (case-insensitive). Unknown month names return ActivityNone.
func (r *CalendarRow) Activity(month string) string {
	switch strings.ToLower(month) {
	case "january":
		return r.January
	case "february":
		return r.February
	case "march":
		return r.March
	case "april":
		return r.April
	case "may":
		return r.May
	case "june":
		return r.June
	case "july":
		return r.July
	case "august":
		return r.August
	case "september":
		return r.September
	case "october":
		return r.October
	case "november":
		return r.November
	case "december":
		return r.December
	}
	return ActivityNone
}

// SetActivity stores the activity for a month name (case-insensitive) and
// reports whether the name was recognized.
func (r *CalendarRow) SetActivity(month, activity string) bool {
	switch strings.ToLower(month) {
	case "january":
		r.January = activity
	case "february":
		r.February = activity
	case "march":
		r.March = activity
	case "april":
		r.April = activity
	case "may":
		r.May = activity
	case "june":
		r.June = activity
	case "july":
		r.July = activity
	case "august":
		r.August = activity
	case "september":
		r.September = activity
	case "october":
		r.October = activity
	case "november":
		r.November = activity
	case "december":
		r.December = activity
	default:
		return false
	}
	return true
}

// StateRef identifies one covered state in summaries.
type StateRef struct {
	StateCode string `json:"state_code"`
	StateName string `json:"state_name"`
	Region    string `json:"region"`
}

// CalendarSummaryRow is the per-crop, per-region calendar summary. Planting
// and harvest months are the majority-vote months: a month qualifies when
// more than half of the region's state entries show that activity.
type CalendarSummaryRow struct {
	Crop           string   `json:"crop"`
	Region         string   `json:"region"`
	PlantingMonths []string `json:"planting_months"`
	HarvestMonths  []string `json:"harvest_months"`
	StatesCount    int      `json:"states_count"`
}

// SeasonInfo describes the dominant planting/harvest windows of a crop in a
// region, Southern-Hemisphere season convention.
type SeasonInfo struct {
	MainPlantingSeason string   `json:"main_planting_season"`
	MainHarvestSeason  string   `json:"main_harvest_season"`
	PlantingMonths     []string `json:"planting_months"`
	HarvestMonths      []string `json:"harvest_months"`
}

// DataPeriod reports the window the published calendar data covers and when
// the serving snapshot was built.
type DataPeriod struct {
	StartYear  string `json:"start_year"`
	EndYear    string `json:"end_year"`
	Frequency  string `json:"frequency"`
	LastUpdate string `json:"last_update"`
}

// DashboardSummary carries the CONAB headline counts for the overview page.
type DashboardSummary struct {
	StateCount  int        `json:"state_count"`
	CropCount   int        `json:"crop_count"`
	RegionCount int        `json:"region_count"`
	Crops       []string   `json:"crops"`
	Regions     []string   `json:"regions"`
	States      []StateRef `json:"states"`
}
