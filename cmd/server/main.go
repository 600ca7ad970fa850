package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/gearlane/recon-tracker/internal/business/importer"
	"github.com/gearlane/recon-tracker/internal/business/inspection"
	"github.com/gearlane/recon-tracker/internal/platform/config"
	firestoreclient "github.com/gearlane/recon-tracker/internal/platform/firestore"
	apirouter "github.com/gearlane/recon-tracker/internal/platform/http"
	"github.com/gearlane/recon-tracker/internal/platform/vindecoder"
	"github.com/gearlane/recon-tracker/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("config load")
	}

	log := newLogger(cfg)
	gin.SetMode(cfg.GinMode)

	firestoreClient, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("firestore init")
	}
	defer firestoreClient.Close()

	if err := firestoreclient.Ping(ctx, firestoreClient); err != nil {
		log.Fatal().Err(err).Msg("firestore ping")
	}
	log.Info().
		Str("project", cfg.FirebaseProjectID).
		Str("credentials", credsSource).
		Msg("connected to Firestore")

	vehicleRepo := repository.NewVehicleRepository(firestoreClient)
	inspectionRepo := repository.NewInspectionRepository(firestoreClient)
	sectionRepo := repository.NewSectionRepository(firestoreClient)
	locationRepo := repository.NewLocationRepository(firestoreClient)
	contactRepo := repository.NewContactRepository(firestoreClient)
	todoRepo := repository.NewTodoRepository(firestoreClient)
	settingsRepo := repository.NewSettingsRepository(firestoreClient)
	runRepo := repository.NewRunRepository(firestoreClient)
	statsRepo := repository.NewStatsRepository(firestoreClient)

	decoder := vindecoder.New(nil, vindecoder.Config{
		BaseURL: cfg.VPICBaseURL,
		Mock:    cfg.VPICMock,
	})

	refresher := &inspection.Refresher{
		Vehicles:    vehicleRepo,
		Inspections: inspectionRepo,
		Sections:    sectionRepo,
		Locations:   locationRepo,
		Stats:       statsRepo,
		Log:         log,
	}

	importSvc := importer.NewService(vehicleRepo, runRepo, decoder, refresher, log)

	router := apirouter.NewRouter(apirouter.Deps{
		Vehicles:    vehicleRepo,
		Inspections: inspectionRepo,
		Sections:    sectionRepo,
		Locations:   locationRepo,
		Contacts:    contactRepo,
		Todos:       todoRepo,
		Settings:    settingsRepo,
		Runs:        runRepo,
		Stats:       statsRepo,

		Importer:  importSvc,
		Refresher: refresher,

		AllowedOrigins:    cfg.AllowedOrigins,
		DefaultDealership: cfg.DefaultDealershipID,
		Log:               log,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", ":"+cfg.Port).Msg("server listening")

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server exited")
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if cfg.GinMode == gin.ReleaseMode {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
