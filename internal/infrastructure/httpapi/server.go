// Package httpapi exposes the adoption catalog and cards over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ersonp/adopt-card/internal/application/handlers"
	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/ports"
	"github.com/ersonp/adopt-card/internal/domain/services"
	"github.com/ersonp/adopt-card/internal/infrastructure/render"
)

// DefaultPageSize is used when a list request has no limit.
const DefaultPageSize = 50

// maxBodyBytes caps preview request bodies.
const maxBodyBytes = 1 << 16

// Server routes HTTP requests to the application handlers.
type Server struct {
	cards    *handlers.CardHandler
	listings *handlers.ListingHandler
	router   chi.Router
}

// NewServer creates a Server with its routes and middleware installed.
func NewServer(cards *handlers.CardHandler, listings *handlers.ListingHandler) *Server {
	s := &Server{
		cards:    cards,
		listings: listings,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/listings", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{ref}", s.handleGet)
		r.Get("/{ref}/card", s.handleCard)
	})
	r.Post("/preview", s.handlePreview)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter ports.ListingFilter
	if name := q.Get("category"); name != "" {
		category, err := entities.ParseCategory(name)
		if err != nil {
			writeError(w, err)
			return
		}
		filter.Category = category
	}

	limit, err := intParam(q.Get("limit"), DefaultPageSize)
	if err != nil || limit == 0 {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	offset, err := intParam(q.Get("offset"), 0)
	if err != nil {
		http.Error(w, "invalid offset", http.StatusBadRequest)
		return
	}

	result, err := s.listings.HandleList(r.Context(), filter, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	listing, err := s.listings.HandleGet(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	card := render.NewJSONCard(w)
	if _, err := s.cards.HandleRender(r.Context(), chi.URLParam(r, "ref"), card); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = card.Flush()
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var record entities.Record
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&record); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if record.Category().IsZero() {
		http.Error(w, "category is required", http.StatusBadRequest)
		return
	}

	card := render.NewJSONCard(w)
	s.cards.HandlePreview(record, card)

	w.Header().Set("Content-Type", "application/json")
	_ = card.Flush()
}

// intParam parses a non-negative integer query parameter.
func intParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, errors.New("invalid integer")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrListingNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrUnknownCategory):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
