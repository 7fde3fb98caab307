package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (c *Controller) Health(ctx echo.Context) error {
	type response struct {
		Status     string    `json:"status"`
		SnapshotID string    `json:"snapshot_id,omitempty"`
		LoadedAt   time.Time `json:"loaded_at,omitempty"`
	}

	resp := response{Status: "ok"}
	if snapshot, err := c.store.Current(ctx.Request().Context()); err == nil {
		resp.SnapshotID = snapshot.ID.String()
		resp.LoadedAt = snapshot.LoadedAt
	}

	return ctx.JSON(http.StatusOK, resp)
}
