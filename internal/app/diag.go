package app

import (
	"context"
	"net/http"
	"time"

	"sneakpeak/pkg/kit"
)

const diagErrMax = 80

type diagnostics struct {
	Backend          string `json:"backend"`
	Store            string `json:"store"`
	DatabaseURL      string `json:"database_url"`
	ConnectionStatus string `json:"connection_status"`
	Error            string `json:"error,omitempty"`
}

// storeDiagnostics reports store connectivity as data. Best-effort: a failing
// ping never fails the request.
func storeDiagnostics(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := diagnostics{
			Backend:          "running",
			Store:            "not available",
			DatabaseURL:      "not set",
			ConnectionStatus: "not connected",
		}
		if deps.StoreConfigured {
			d.DatabaseURL = "set"
		}

		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := deps.Designs.Ping(ctx); err != nil {
			d.Error = kit.Truncate(err.Error(), diagErrMax)
		} else {
			d.Store = "available"
			d.ConnectionStatus = "connected"
		}

		kit.WriteJSON(w, http.StatusOK, d)
	}
}
