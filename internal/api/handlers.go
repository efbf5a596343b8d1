package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bangohan/kondate/internal/config"
	"github.com/bangohan/kondate/internal/errors"
	"github.com/bangohan/kondate/internal/services/suggestion"
)

// SuggestionService is the part of the suggestion pipeline the API needs.
type SuggestionService interface {
	Suggest(ctx context.Context, req suggestion.DinnerRequest) (*suggestion.Suggestion, error)
	Availability(ctx context.Context) (*suggestion.ModelAvailability, error)
}

// History lists previously generated suggestions.
type History interface {
	ListRecent(ctx context.Context, limit int) ([]suggestion.Suggestion, error)
}

type Server struct {
	cfg     *config.Config
	svc     SuggestionService
	history History
}

// NewServer creates the API server. history may be nil when the suggestion
// store is not configured.
func NewServer(cfg *config.Config, svc SuggestionService, history History) *Server {
	return &Server{
		cfg:     cfg,
		svc:     svc,
		history: history,
	}
}

type CreateSuggestionRequest struct {
	Ingredients []string `json:"ingredients"`
	Cuisine     string   `json:"cuisine"`
}

func (s *Server) HandleCreateSuggestion(w http.ResponseWriter, r *http.Request) {
	var req CreateSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidationError(
			"invalid request body",
			"INVALID_BODY",
			"Send a JSON object with ingredients and cuisine.",
		))
		return
	}

	if len(req.Ingredients) > 3 {
		writeError(w, errors.NewValidationError(
			"at most three ingredients are accepted",
			"TOO_MANY_INGREDIENTS",
			"Send up to three ingredients.",
		))
		return
	}

	var ingredients [3]string
	copy(ingredients[:], req.Ingredients)

	result, err := s.svc.Suggest(r.Context(), suggestion.DinnerRequest{
		Ingredients: ingredients,
		Cuisine:     req.Cuisine,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) HandleModels(w http.ResponseWriter, r *http.Request) {
	availability, err := s.svc.Availability(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availability)
}

func (s *Server) HandleListSuggestions(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, errors.NewNotFoundError(
			"suggestion history is not enabled",
			"HISTORY_DISABLED",
			"Configure DATABASE_URL to enable suggestion history.",
		))
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			writeError(w, errors.NewValidationError(
				"limit must be a number between 1 and 100",
				"INVALID_LIMIT",
				"Use a limit between 1 and 100.",
			))
			return
		}
		limit = parsed
	}

	items, err := s.history.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, errors.NewInternalError("failed to list suggestions", err))
		return
	}
	if items == nil {
		items = []suggestion.Suggestion{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"suggestions": items})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError("unexpected error", err)
	}
	writeJSON(w, appErr.StatusCode, appErr)
}
