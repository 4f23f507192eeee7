package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sneakpeak/internal/alert"
	"sneakpeak/internal/catalog"
	"sneakpeak/internal/design"
	"sneakpeak/pkg/kit"
)

type Deps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	Catalog *catalog.Store
	Designs design.Store
	Alerts  alert.Store

	// StoreConfigured reports whether a DATABASE_URL was supplied; /test
	// surfaces it without revealing the value.
	StoreConfigured bool

	MetricsEnabled bool
	MetricsToken   string
}

// NewHandler composes the full HTTP surface: middleware, liveness and
// diagnostics, and the /api routes of each component.
func NewHandler(deps Deps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/", root)
	r.Get("/test", storeDiagnostics(deps))

	cs := &catalog.Server{Store: deps.Catalog}
	ds := &design.Server{Store: deps.Designs, Log: deps.Log}
	as := &alert.Server{Store: deps.Alerts, Log: deps.Log}

	r.Route("/api", func(api chi.Router) {
		cs.Register(api)
		ds.Register(api)
		as.Register(api)
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps Deps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
	r.Use(kit.CORS())
}

func setupMetrics(r *chi.Mux, deps Deps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func root(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]string{"message": "SneakPeak backend running"})
}
