package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (c *Controller) Reload(ctx echo.Context) error {
	snapshot, err := c.store.Reload(ctx.Request().Context())
	if err != nil {
		return err
	}

	type response struct {
		SnapshotID  string    `json:"snapshot_id"`
		LoadedAt    time.Time `json:"loaded_at"`
		Initiatives int       `json:"initiatives"`
		Sensors     int       `json:"sensors"`
		Calendar    int       `json:"calendar"`
		Dropped     []string  `json:"dropped,omitempty"`
	}

	return ctx.JSON(http.StatusOK, response{
		SnapshotID:  snapshot.ID.String(),
		LoadedAt:    snapshot.LoadedAt,
		Initiatives: len(snapshot.Initiatives),
		Sensors:     len(snapshot.Sensors),
		Calendar:    len(snapshot.Calendar),
		Dropped:     snapshot.Dropped,
	})
}
