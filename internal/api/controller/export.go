package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/landagri/backend/internal/pkg/store"
	"github.com/landagri/backend/internal/service/export"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (c *Controller) ExportInitiativesCSV(ctx echo.Context) error {
	rows, err := c.store.ListInitiativeRows(ctx.Request().Context(), store.ListInitiativeRowsOpts{})
	if err != nil {
		return err
	}

	out, err := export.InitiativesCSV(rows)
	if err != nil {
		return fmt.Errorf("export.InitiativesCSV: %w", err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="initiatives.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", out)
}

func (c *Controller) ExportInitiativesXLSX(ctx echo.Context) error {
	snapshot, err := c.store.Current(ctx.Request().Context())
	if err != nil {
		return err
	}

	f, err := export.InitiativesWorkbook(snapshot.Rows, snapshot.TimelineSummary)
	if err != nil {
		return fmt.Errorf("export.InitiativesWorkbook: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("WriteToBuffer: %w", err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="initiatives.xlsx"`)
	return ctx.Blob(http.StatusOK, mimeXLSX, buf.Bytes())
}

func (c *Controller) ExportCalendarCSV(ctx echo.Context) error {
	rows, err := c.store.ListCalendar(ctx.Request().Context(), calendarOpts(ctx))
	if err != nil {
		return err
	}

	out, err := export.CalendarCSV(rows)
	if err != nil {
		return fmt.Errorf("export.CalendarCSV: %w", err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="crop_calendar.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", out)
}
