package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sneakpeak/pkg/kit"
)

type Server struct {
	Store *Store
}

// Register attaches the catalog routes to an API router.
func (s *Server) Register(r chi.Router) {
	r.Get("/sneakers", s.list)
	r.Get("/sneakers/{id}", s.get)
	r.Get("/trending", s.trending)
	r.Get("/stockx/{id}/live", s.live)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid query parameter", map[string]any{"param": err.Error()})
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.Store.List(q))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sn, ok := s.Store.ByID(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Sneaker not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, sn)
}

type trendingResponse struct {
	Items []Sneaker `json:"items"`
	Terms []string  `json:"terms"`
}

func (s *Server) trending(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, trendingResponse{
		Items: s.Store.TopTrending(),
		Terms: SearchTerms(),
	})
}

func (s *Server) live(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sn, ok := s.Store.ByID(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Sneaker not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, LiveSnapshot(sn))
}

type badParam string

func (e badParam) Error() string { return string(e) }

func parseListQuery(r *http.Request) (Query, error) {
	v := r.URL.Query()
	q := Query{
		Q:           v.Get("q"),
		Brand:       v.Get("brand"),
		Model:       v.Get("model"),
		ReleaseFrom: v.Get("releaseFrom"),
		ReleaseTo:   v.Get("releaseTo"),
		Sort:        v.Get("sort"),
		Limit:       DefaultLimit,
	}

	if raw := v.Get("minPrice"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Query{}, badParam("minPrice")
		}
		q.MinPrice = &f
	}
	if raw := v.Get("maxPrice"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Query{}, badParam("maxPrice")
		}
		q.MaxPrice = &f
	}
	if raw := v.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Query{}, badParam("limit")
		}
		q.Limit = n
	}

	return q, nil
}
