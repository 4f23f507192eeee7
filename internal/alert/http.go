package alert

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sneakpeak/pkg/kit"
)

const (
	maxCreateBody = 1 << 20
	storeErrMax   = 120
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Register(r chi.Router) {
	r.Post("/alerts", s.create)
}

type createResponse struct {
	ID string `json:"id"`
	OK bool   `json:"ok"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var a Alert
	if err := kit.DecodeJSON(w, r, &a, maxCreateBody); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if err := a.Validate(); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	id, err := s.Store.Create(r.Context(), a)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("create alert failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, kit.Truncate(err.Error(), storeErrMax), nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, createResponse{ID: id, OK: true})
}
