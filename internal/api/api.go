package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/landagri/backend/internal/api/controller"
	"github.com/landagri/backend/internal/pkg/logger"
	"github.com/landagri/backend/internal/pkg/store"
)

type APIService struct {
	router *echo.Echo
	store  store.Store
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New(), store: st}

	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cntrl := controller.NewController(st)

	svc.router.GET("/health", cntrl.Health)

	api := svc.router.Group("/api/v1")

	initiatives := api.Group("/initiatives")
	initiatives.GET("/list", cntrl.ListInitiatives)
	initiatives.GET("/timeline", cntrl.GetTimeline)
	initiatives.GET("/:name", cntrl.GetInitiative)

	sensors := api.Group("/sensors")
	sensors.GET("/list", cntrl.ListSensors)

	conab := api.Group("/conab")
	conab.GET("/calendar", cntrl.GetCropCalendar)
	conab.GET("/summary", cntrl.GetCalendarSummary)
	conab.GET("/seasons", cntrl.GetSeasons)
	conab.GET("/overview", cntrl.GetConabOverview)
	conab.GET("/period", cntrl.GetConabPeriod)
	conab.GET("/coverage", cntrl.GetConabCoverage)

	exports := api.Group("/export")
	exports.GET("/initiatives.csv", cntrl.ExportInitiativesCSV)
	exports.GET("/initiatives.xlsx", cntrl.ExportInitiativesXLSX)
	exports.GET("/calendar.csv", cntrl.ExportCalendarCSV)

	charts := api.Group("/charts")
	charts.GET("/resolution.png", cntrl.ChartResolution)
	charts.GET("/timeline.png", cntrl.ChartTimeline)

	admin := api.Group("/admin")
	admin.POST("/reload", cntrl.Reload, svc.AdminMiddleware)

	return svc, nil
}
