package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/landagri/backend/internal/service/charts"
)

func (c *Controller) ChartResolution(ctx echo.Context) error {
	snapshot, err := c.store.Current(ctx.Request().Context())
	if err != nil {
		return err
	}

	png, err := charts.ResolutionCategories(snapshot.Rows)
	if err != nil {
		return fmt.Errorf("charts.ResolutionCategories: %w", err)
	}

	return ctx.Blob(http.StatusOK, "image/png", png)
}

func (c *Controller) ChartTimeline(ctx echo.Context) error {
	snapshot, err := c.store.Current(ctx.Request().Context())
	if err != nil {
		return err
	}

	png, err := charts.TemporalCoverage(snapshot.Initiatives)
	if err != nil {
		return fmt.Errorf("charts.TemporalCoverage: %w", err)
	}

	return ctx.Blob(http.StatusOK, "image/png", png)
}
