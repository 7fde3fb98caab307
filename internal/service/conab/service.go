// Package conab flattens and summarizes the CONAB crop calendar: nested
// crop→state→month activity codes become one row per crop-state pair, with
// activity codes standardized to descriptive labels and each state attributed
// to its macro-region.
package conab

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/landagri/backend/internal/domain"
	"github.com/landagri/backend/internal/pkg/logger"
)

type Service struct {
	validate *validator.Validate
}

func NewService() *Service {
	return &Service{validate: validator.New()}
}

// Validate reports whether a raw crop-calendar payload is structurally
// sound: metadata and crop_calendar present, every state entry carrying
// state_code and state_name. Invalid payloads are rejected whole; no partial
// table is ever produced from one.
func (s *Service) Validate(raw *domain.RawCropCalendar) bool {
	if raw == nil {
		return false
	}
	if err := s.validate.Struct(raw); err != nil {
		return false
	}
	for _, entries := range raw.CropCalendar {
		for _, entry := range entries {
			if err := s.validate.Struct(entry); err != nil {
				return false
			}
		}
	}
	return true
}

// StandardizeActivity maps the raw activity codes to descriptive labels.
// Unrecognized non-empty codes pass through unchanged.
func StandardizeActivity(code string) string {
	switch code {
	case "P":
		return domain.ActivityPlanting
	case "H":
		return domain.ActivityHarvest
	case "PH", "P/H":
		return domain.ActivityPlantingAndHarvest
	case "":
		return domain.ActivityNone
	}
	return code
}

// Flatten turns a validated payload into one calendar row per crop-state
// pair. The region comes from the payload's states block when present,
// otherwise from the fixed federative-unit table. Months absent from an
// entry's calendar read as No Activity.
func (s *Service) Flatten(ctx context.Context, raw *domain.RawCropCalendar) []*domain.CalendarRow {
	crops := make([]string, 0, len(raw.CropCalendar))
	for crop := range raw.CropCalendar {
		crops = append(crops, crop)
	}
	sort.Strings(crops)

	rows := make([]*domain.CalendarRow, 0, len(crops)*8)
	for _, crop := range crops {
		for _, entry := range raw.CropCalendar[crop] {
			region := raw.States[entry.StateCode].Region
			if region == "" {
				region = domain.RegionForState(entry.StateCode)
			}

			row := &domain.CalendarRow{
				Crop:      crop,
				StateCode: entry.StateCode,
				StateName: entry.StateName,
				Region:    region,
			}
			for month, code := range entry.Calendar {
				if !row.SetActivity(month, StandardizeActivity(code)) {
					logger.Warnf(ctx, "crop %s, state %s: unknown month %q", crop, entry.StateCode, month)
				}
			}
			for _, month := range domain.MonthNames {
				if row.Activity(month) == "" {
					row.SetActivity(month, domain.ActivityNone)
				}
			}

			rows = append(rows, row)
		}
	}

	logger.Infof(ctx, "flattened crop calendar: %d crops, %d rows", len(crops), len(rows))

	return rows
}
