package main

import (
	"database/sql"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"sneakpeak/internal/alert"
	"sneakpeak/internal/app"
	"sneakpeak/internal/catalog"
	"sneakpeak/internal/design"
	"sneakpeak/pkg/kit"
)

func main() {
	_ = godotenv.Load()

	service := "sneakpeak"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8000")
	dataPath := getenv("SNEAKER_DATA", "data/sneakers.json")
	dsn := os.Getenv("DATABASE_URL")

	cat, err := catalog.Load(dataPath)
	if err != nil {
		log.Fatal("load catalog", zap.Error(err), zap.String("path", dataPath))
	}
	log.Info("catalog loaded", zap.Int("sneakers", cat.Len()))

	var (
		designs design.Store = design.NewMemStore()
		alerts  alert.Store  = alert.NewMemStore()
	)
	if dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			log.Fatal("open document store", zap.Error(err))
		}
		designs = design.NewPostgresStore(db)
		alerts = alert.NewPostgresStore(db)
		log.Info("document store configured")
	} else {
		log.Warn("DATABASE_URL not set, designs and alerts held in memory")
	}

	h := app.NewHandler(app.Deps{
		Log:             log,
		Service:         service,
		Registry:        prometheus.NewRegistry(),
		Catalog:         cat,
		Designs:         designs,
		Alerts:          alerts,
		StoreConfigured: dsn != "",
		MetricsEnabled:  os.Getenv("METRICS_ENABLED") == "true",
		MetricsToken:    os.Getenv("METRICS_TOKEN"),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
