package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paia-notes/backend/internal/service"
)

type Server struct {
	Service *service.Service
	Logger  *logrus.Entry
	Router  *http.ServeMux
	started time.Time
}

func NewServer(svc *service.Service, logger *logrus.Entry) *Server {
	s := &Server{
		Service: svc,
		Logger:  logger,
		Router:  http.NewServeMux(),
		started: time.Now(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.HandleFunc("/api/v1/notes", s.handleNotes)
	s.Router.HandleFunc("/api/v1/notes/clip", s.handleClip)
	s.Router.HandleFunc("/api/v1/search", s.handleSearch)
	s.Router.HandleFunc("/api/v1/categorize", s.handleCategorize)
	s.Router.HandleFunc("/api/v1/status", s.handleStatus)
}

func (s *Server) Start(addr string) error {
	s.Logger.Infof("Starting API Server on %s", addr)
	return http.ListenAndServe(addr, s.Router)
}

// Responses
type ErrorResponse struct {
	Error string `json:"error"`
}

type SearchResponse struct {
	Query   string        `json:"query"`
	Results []service.Hit `json:"results"`
}

type CategorizeResponse struct {
	Tags []string `json:"tags"`
}

type StatusResponse struct {
	Notes  int    `json:"notes"`
	Uptime string `json:"uptime"`
}

// Handlers

func (s *Server) handleNotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createNote(w, r)
	case http.MethodGet:
		s.listNotes(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text  string   `json:"text"`
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	note, err := s.Service.CreateNote(req.Text, req.Title, req.Tags)
	if err != nil {
		s.writeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, note)
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	all, err := s.Service.ListNotes()
	if err != nil {
		s.writeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count": len(all),
		"notes": all,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'q' is required"})
		return
	}

	topK := service.DefaultTopK
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "'top_k' must be an integer"})
			return
		}
		topK = parsed
	}

	hits, err := s.Service.SearchNotes(query, topK)
	if err != nil {
		s.writeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, SearchResponse{
		Query:   query,
		Results: hits,
	})
}

func (s *Server) handleCategorize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Text string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	jsonResponse(w, http.StatusOK, CategorizeResponse{
		Tags: s.Service.Categorize(req.Text),
	})
}

func (s *Server) handleClip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		URL string `json:"url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON"})
		return
	}

	note, err := s.Service.ClipNote(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		jsonResponse(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	jsonResponse(w, http.StatusCreated, note)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	all, err := s.Service.ListNotes()
	if err != nil {
		s.writeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, StatusResponse{
		Notes:  len(all),
		Uptime: time.Since(s.started).Truncate(time.Second).String(),
	})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrValidation) {
		jsonResponse(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	s.Logger.WithError(err).Error("Request failed")
	jsonResponse(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
