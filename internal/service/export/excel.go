package export

import (
	"fmt"

	"github.com/landagri/backend/internal/domain"
	"github.com/xuri/excelize/v2"
)

var initiativeHeaders = []string{
	"Name", "Acronym", "Coverage Type", "Provider", "Provider Category",
	"Resolution (m)", "Resolution Category", "Accuracy (%)", "Accuracy Category",
	"Classes", "Legend", "Methodology", "Method Category",
	"Start Year", "End Year", "Temporal Span", "Total Years",
	"Available Years", "Temporal Gaps", "Resolution Score", "Overall Score",
}

// InitiativesWorkbook builds an XLSX with the initiative table and a
// summary sheet of the headline timeline numbers.
func InitiativesWorkbook(rows []domain.InitiativeRow, summary domain.TimelineSummary) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Initiatives"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("SetSheetName: %w", err)
	}

	for col, header := range initiativeHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("CoordinatesToCellName: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("SetCellValue: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Name, row.Acronym, row.CoverageType, row.Provider, row.ProviderCategory,
			row.Resolution, row.ResolutionCategory, row.Accuracy, row.AccuracyCategory,
			row.Classes, row.Legend, row.Methodology, row.MethodCategory,
			row.StartYear, row.EndYear, row.TemporalSpan, row.TotalYears,
			row.AvailableYears, row.TemporalGaps, row.ResolutionScore, row.OverallScore,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("CoordinatesToCellName: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("SetCellValue: %w", err)
			}
		}
	}

	if err := writeSummarySheet(f, summary); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSummarySheet(f *excelize.File, summary domain.TimelineSummary) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("NewSheet: %w", err)
	}

	lines := [][2]interface{}{
		{"Total initiatives", summary.TotalInitiatives},
		{"Earliest year", summary.EarliestYear},
		{"Latest year", summary.LatestYear},
		{"Total period", summary.TotalPeriod},
		{"Period span (years)", summary.PeriodSpanYears},
		{"Total years available", summary.TotalYearsAvailable},
	}

	for i, line := range lines {
		keyCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("CoordinatesToCellName: %w", err)
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return fmt.Errorf("CoordinatesToCellName: %w", err)
		}
		if err := f.SetCellValue(sheet, keyCell, line[0]); err != nil {
			return fmt.Errorf("SetCellValue: %w", err)
		}
		if err := f.SetCellValue(sheet, valueCell, line[1]); err != nil {
			return fmt.Errorf("SetCellValue: %w", err)
		}
	}

	return nil
}
