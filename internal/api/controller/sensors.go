package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) ListSensors(ctx echo.Context) error {
	sensors, err := c.store.ListSensors(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, sensors)
}
