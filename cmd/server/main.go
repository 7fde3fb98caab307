package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/landagri/backend/internal/api"
	"github.com/landagri/backend/internal/pkg/constants"
	"github.com/landagri/backend/internal/pkg/logger"
	"github.com/landagri/backend/internal/pkg/store"
	"github.com/landagri/backend/internal/service/loader"
	"github.com/spf13/viper"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperDebug, false)
	viper.SetDefault(constants.ViperInitiativesPath, "data/initiatives.jsonc")
	viper.SetDefault(constants.ViperSensorsPath, "data/sensors_metadata.jsonc")
	viper.SetDefault(constants.ViperConabCoveragePath, "data/conab_detailed_initiative.jsonc")
	viper.SetDefault(constants.ViperCropCalendarPath, "data/conab_crop_calendar.jsonc")
	viper.AutomaticEnv()

	logger.Init(viper.GetBool(constants.ViperDebug))

	l := loader.New(loader.Sources{
		Initiatives:   viper.GetString(constants.ViperInitiativesPath),
		Sensors:       viper.GetString(constants.ViperSensorsPath),
		ConabCoverage: viper.GetString(constants.ViperConabCoveragePath),
		CropCalendar:  viper.GetString(constants.ViperCropCalendarPath),
	})

	st := store.NewStore(l)
	if _, err := st.Reload(ctx); err != nil {
		logger.Fatal(ctx, err)
	}

	svc, err := api.NewAPIService(st)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperListenAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}
