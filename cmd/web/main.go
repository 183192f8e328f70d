package main

import (
	"embed"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"chirpquiz/internal/analytics"
	"chirpquiz/internal/conf"
	"chirpquiz/internal/handlers"
	"chirpquiz/internal/quiz"
	"chirpquiz/internal/species"
	"chirpquiz/pkg/events"
)

//go:embed static/*
var embeddedStatic embed.FS

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		port        int
		catalogPath string
		analyticsDB string
		logLevel    string
	)
	cmd := &cobra.Command{
		Use:           "chirpquiz-web",
		Short:         "Insect identification quiz web server",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := conf.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				settings.Port = port
			}
			if cmd.Flags().Changed("catalog") {
				settings.CatalogPath = catalogPath
			}
			if cmd.Flags().Changed("analytics-db") {
				settings.AnalyticsDB = analyticsDB
			}
			if cmd.Flags().Changed("log-level") {
				settings.LogLevel = logLevel
			}
			return run(settings)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "HTTP listen port")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to a species catalog YAML overriding the embedded dataset")
	cmd.Flags().StringVar(&analyticsDB, "analytics-db", "chirpquiz.db", "SQLite file for game analytics (empty disables persistence)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}

func run(settings conf.Settings) error {
	logger, err := buildLogger(settings.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")

	catalog, err := species.Load(settings.CatalogPath)
	if err != nil {
		// Bad data is a degraded state, not a startup failure; the UI
		// renders "no data available" until the catalog is fixed.
		log.Warnw("species catalog unavailable", "path", settings.CatalogPath, "error", err)
		catalog = species.Empty()
	}
	log.Infow("species catalog loaded", "entries", catalog.Len(), "regions", catalog.Regions())

	bus := events.NewBus[quiz.GameEvent]()
	store := quiz.NewStore(catalog, bus)

	metrics, err := analytics.NewMetrics()
	if err != nil {
		return err
	}
	var db *gorm.DB
	if settings.AnalyticsDB != "" {
		db, err = analytics.Open(settings.AnalyticsDB)
		if err != nil {
			log.Warnw("analytics persistence disabled", "path", settings.AnalyticsDB, "error", err)
			db = nil
		}
	}
	recorder := analytics.NewRecorder(db, metrics, log)
	go recorder.Run(bus.Subscribe())

	go func() {
		for range time.Tick(time.Hour) {
			if n := store.Sweep(24 * time.Hour); n > 0 {
				log.Infow("swept stale sessions", "count", n)
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		return err
	}
	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handlers.NewHomeHandler(store, log).RegisterRoutes(r)
	handlers.NewGameHandler(store, log).RegisterRoutes(r)
	handlers.NewStatsHandler(recorder).RegisterRoutes(r)

	server := &http.Server{
		Addr:              settings.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Infow("listening", "addr", settings.Addr())
	return server.ListenAndServe()
}

func buildLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(parsed)
	return config.Build()
}
