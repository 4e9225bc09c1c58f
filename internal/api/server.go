package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/azubair/partscan/internal/database"
	"github.com/azubair/partscan/internal/model"
)

// Server exposes the spare-parts inventory over HTTP.
type Server struct {
	db     *database.PartsDB
	mux    *http.ServeMux
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger for request handling.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer wires handlers onto an HTTP mux.
func NewServer(db *database.PartsDB, opts ...Option) *Server {
	s := &Server{
		db:  db,
		mux: http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.routes()
	return s
}

// ServeHTTP satisfies the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/spare-parts", s.handleParts)
	s.mux.HandleFunc("/api/spare-parts/", s.handlePartByID)
	s.mux.HandleFunc("/api/car-models", s.handleCarModels)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleParts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listParts(w, r)
	case http.MethodPost:
		s.createPart(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handlePartByID(w http.ResponseWriter, r *http.Request) {
	trimmed := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/spare-parts/"), "/")
	if trimmed == "" || strings.Contains(trimmed, "/") {
		http.NotFound(w, r)
		return
	}

	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid spare part id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getPart(w, r, id)
	case http.MethodPut:
		s.updatePart(w, r, id)
	case http.MethodDelete:
		s.deletePart(w, r, id)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// listParts returns spare parts, optionally filtered by compatible car
// model and a price range. Both price bounds are honored independently.
func (s *Server) listParts(w http.ResponseWriter, r *http.Request) {
	filter := database.PartFilter{
		CarModel: r.URL.Query().Get("model"),
	}

	if raw := r.URL.Query().Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "min_price: invalid price format")
			return
		}
		filter.MinPrice = &v
	}
	if raw := r.URL.Query().Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "max_price: invalid price format")
			return
		}
		filter.MaxPrice = &v
	}

	parts, err := s.db.ListSpareParts(r.Context(), filter)
	if err != nil {
		s.internalError(w, "list spare parts", err)
		return
	}
	writeJSON(w, http.StatusOK, parts)
}

func (s *Server) createPart(w http.ResponseWriter, r *http.Request) {
	var req sparePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid json payload: %v", err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	part := req.toModel()
	if err := s.db.CreateSparePart(r.Context(), part); err != nil {
		switch {
		case errors.Is(err, database.ErrCarModelNotFound):
			writeError(w, http.StatusBadRequest, "the specified car model does not exist")
		case errors.Is(err, database.ErrDuplicatePartNumber):
			writeError(w, http.StatusConflict, err.Error())
		default:
			s.internalError(w, "create spare part", err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, part)
}

func (s *Server) getPart(w http.ResponseWriter, r *http.Request, id int64) {
	part, err := s.db.GetSparePart(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrPartNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.internalError(w, "get spare part", err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

func (s *Server) updatePart(w http.ResponseWriter, r *http.Request, id int64) {
	var req sparePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid json payload: %v", err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := s.db.GetSparePart(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrPartNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.internalError(w, "get spare part", err)
		return
	}

	part := req.toModel()
	part.ID = id
	part.AddedOn = existing.AddedOn
	if err := s.db.UpdateSparePart(r.Context(), part); err != nil {
		switch {
		case errors.Is(err, database.ErrCarModelNotFound):
			writeError(w, http.StatusBadRequest, "the specified car model does not exist")
		case errors.Is(err, database.ErrPartNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			s.internalError(w, "update spare part", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, part)
}

func (s *Server) deletePart(w http.ResponseWriter, r *http.Request, id int64) {
	if err := s.db.DeleteSparePart(r.Context(), id); err != nil {
		if errors.Is(err, database.ErrPartNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.internalError(w, "delete spare part", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCarModels(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		models, err := s.db.ListCarModels(r.Context())
		if err != nil {
			s.internalError(w, "list car models", err)
			return
		}
		writeJSON(w, http.StatusOK, models)
	case http.MethodPost:
		var req carModelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid json payload: %v", err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		stored := &model.CarModel{
			Manufacturer: req.Manufacturer,
			Model:        req.Model,
			Year:         req.Year,
		}
		if err := s.db.CreateCarModel(r.Context(), stored); err != nil {
			if errors.Is(err, database.ErrDuplicateCarModel) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			s.internalError(w, "create car model", err)
			return
		}
		writeJSON(w, http.StatusCreated, stored)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

// internalError logs the cause and hides it from the client.
func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("request failed", "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
