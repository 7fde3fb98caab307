package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/landagri/backend/internal/pkg/constants"
	"github.com/landagri/backend/internal/pkg/store"
	"github.com/landagri/backend/internal/service/conab"
)

func calendarOpts(ctx echo.Context) store.ListCalendarOpts {
	crop := ctx.QueryParams().Get("crop")
	region := ctx.QueryParams().Get("region")

	opts := store.ListCalendarOpts{}
	if crop != "" {
		opts.Crop = &crop
	}
	if region != "" {
		opts.Region = &region
	}
	return opts
}

func (c *Controller) GetCropCalendar(ctx echo.Context) error {
	rows, err := c.store.ListCalendar(ctx.Request().Context(), calendarOpts(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetCalendarSummary(ctx echo.Context) error {
	rows, err := c.store.ListCalendar(ctx.Request().Context(), calendarOpts(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, conab.Summary(rows))
}

func (c *Controller) GetSeasons(ctx echo.Context) error {
	rows, err := c.store.ListCalendar(ctx.Request().Context(), calendarOpts(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, conab.SeasonsInfo(rows))
}

func (c *Controller) GetConabOverview(ctx echo.Context) error {
	snapshot, err := c.store.Current(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, conab.Overview(snapshot.Calendar))
}

func (c *Controller) GetConabPeriod(ctx echo.Context) error {
	snapshot, err := c.store.Current(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, conab.Period(snapshot.LoadedAt))
}

func (c *Controller) GetConabCoverage(ctx echo.Context) error {
	snapshot, err := c.store.Current(ctx.Request().Context())
	if err != nil {
		return err
	}

	if snapshot.ConabCoverage == nil {
		return constants.ErrNotFound
	}

	return ctx.JSON(http.StatusOK, snapshot.ConabCoverage)
}
