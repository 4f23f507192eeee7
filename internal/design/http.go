package design

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sneakpeak/pkg/kit"
)

const (
	maxCreateBody = 1 << 20

	// storeErrMax caps how much of a store failure is echoed to clients.
	storeErrMax = 120
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Register(r chi.Router) {
	r.Post("/designs", s.create)
	r.Get("/designs", s.list)
}

type createResponse struct {
	ID string `json:"id"`
	OK bool   `json:"ok"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var d Design
	if err := kit.DecodeJSON(w, r, &d, maxCreateBody); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if err := d.Validate(); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	id, err := s.Store.Create(r.Context(), d)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("create design failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, kit.Truncate(err.Error(), storeErrMax), nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, createResponse{ID: id, OK: true})
}

type listResponse struct {
	Items []Design `json:"items"`
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	docs, err := s.Store.List(r.Context(), userID)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list designs failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, kit.Truncate(err.Error(), storeErrMax), nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, listResponse{Items: docs})
}
