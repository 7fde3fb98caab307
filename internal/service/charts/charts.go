// Package charts renders PNG figures for the dashboard widgets that do not
// build their own client-side plots.
package charts

import (
	"bytes"
	"fmt"

	"github.com/landagri/backend/internal/domain"
	"github.com/landagri/backend/internal/service/catalog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var resolutionCategoryOrder = []string{
	catalog.ResolutionVeryHigh,
	catalog.ResolutionHigh,
	catalog.ResolutionMedium,
	catalog.ResolutionLow,
}

// ResolutionCategories renders a bar chart of initiative counts per
// resolution category.
func ResolutionCategories(rows []domain.InitiativeRow) ([]byte, error) {
	counts := make(map[string]int, len(resolutionCategoryOrder))
	for _, row := range rows {
		counts[row.ResolutionCategory]++
	}

	values := make(plotter.Values, len(resolutionCategoryOrder))
	for i, category := range resolutionCategoryOrder {
		values[i] = float64(counts[category])
	}

	p := plot.New()
	p.Title.Text = "Initiatives by spatial resolution"
	p.Y.Label.Text = "Initiatives"

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, fmt.Errorf("plotter.NewBarChart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(resolutionCategoryOrder...)

	return renderPNG(p, 8*vg.Inch, 5*vg.Inch)
}

// TemporalCoverage renders a line chart of how many initiatives have data
// in each year.
func TemporalCoverage(records []*domain.InitiativeRecord) ([]byte, error) {
	counts := make(map[domain.Year]int)
	minYear, maxYear := 0, 0
	for _, record := range records {
		for _, year := range record.AvailableYears {
			counts[year]++
			if minYear == 0 || year < minYear {
				minYear = year
			}
			if year > maxYear {
				maxYear = year
			}
		}
	}

	p := plot.New()
	p.Title.Text = "Initiatives with data per year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Initiatives"

	if minYear != 0 {
		points := make(plotter.XYs, 0, maxYear-minYear+1)
		for year := minYear; year <= maxYear; year++ {
			points = append(points, plotter.XY{X: float64(year), Y: float64(counts[year])})
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, fmt.Errorf("plotter.NewLine: %w", err)
		}
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
	}

	return renderPNG(p, 10*vg.Inch, 5*vg.Inch)
}

func renderPNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("plot.WriterTo: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("WriteTo: %w", err)
	}
	return buf.Bytes(), nil
}
