package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/landagri/backend/internal/domain"
	"github.com/landagri/backend/internal/pkg/store"
)

type listInitiativesRequest struct {
	CoverageType     string `query:"coverage_type"`
	ProviderCategory string `query:"provider_category" validate:"omitempty,oneof='Space Agency' 'University' 'Tech Company' 'Government' 'NGO' 'Other'"`
	MethodCategory   string `query:"method_category" validate:"omitempty,oneof='Deep Learning' 'Machine Learning' 'Visual Interpretation' 'Statistical Methods' 'Combined'"`
}

func (c *Controller) ListInitiatives(ctx echo.Context) error {
	var req listInitiativesRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	opts := store.ListInitiativeRowsOpts{}
	if req.CoverageType != "" {
		opts.CoverageType = &req.CoverageType
	}
	if req.ProviderCategory != "" {
		opts.ProviderCategory = &req.ProviderCategory
	}
	if req.MethodCategory != "" {
		opts.MethodCategory = &req.MethodCategory
	}

	rows, err := c.store.ListInitiativeRows(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetTimeline(ctx echo.Context) error {
	snapshot, err := c.store.Current(ctx.Request().Context())
	if err != nil {
		return err
	}

	type response struct {
		Timeline []domain.TimelineItem  `json:"timeline"`
		Summary  domain.TimelineSummary `json:"summary"`
	}

	return ctx.JSON(http.StatusOK, response{
		Timeline: snapshot.Timeline,
		Summary:  snapshot.TimelineSummary,
	})
}

func (c *Controller) GetInitiative(ctx echo.Context) error {
	name := ctx.Param("name")

	record, err := c.store.GetInitiative(ctx.Request().Context(), name)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, record)
}
