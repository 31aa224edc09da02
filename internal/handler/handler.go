package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/muzeyka/artsearch.git/internal/config"
	"github.com/muzeyka/artsearch.git/internal/middleware"
	"github.com/muzeyka/artsearch.git/internal/models"
	"github.com/muzeyka/artsearch.git/internal/query"
	"github.com/muzeyka/artsearch.git/internal/service"
	"go.uber.org/zap"
)

const (
	contentTypeJSON       = "application/json"
	searchErrorMessage    = "cannot get all artworks"
	defaultHistoryEntries = 20
)

type Handler struct {
	service service.ArtworkService
	cfg     *config.Config
	logger  *zap.Logger
}

func NewHandler(service service.ArtworkService, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// HandleSearchArtworks обрабатывает GET запрос поиска экспонатов.
// Параметры запроса передаются в API коллекции в порядке следования;
// при любой ошибке возвращается 500 со статичным телом ошибки.
func (h *Handler) HandleSearchArtworks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := query.ParseRawQuery(r.URL.RawQuery)
	params = h.ensureSize(params)

	h.logger.Info("Searching artworks",
		zap.String("query", query.Serialize(params)),
		zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
	)

	resp, err := h.service.SearchArtworks(r.Context(), params)
	if err != nil {
		h.logger.Error("Error getting artworks", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, searchErrorMessage)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Error writing JSON response", zap.Error(err))
	}
}

// HandleSearchHistory обрабатывает GET запрос истории поиска
func (h *Handler) HandleSearchHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultHistoryEntries
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	history, err := h.service.GetHistory(r.Context(), limit)
	if err != nil {
		h.logger.Error("Error getting search history", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "cannot get search history")
		return
	}

	if len(history) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(history); err != nil {
		h.logger.Error("Error writing JSON response", zap.Error(err))
	}
}

// ensureSize гарантирует присутствие параметра size в начале запроса.
// Клиент всегда передает size, но при прямом обращении к эндпоинту
// подставляется размер страницы из конфигурации.
func (h *Handler) ensureSize(params []models.QueryParam) []models.QueryParam {
	for _, p := range params {
		if p.Key == "size" {
			return params
		}
	}
	withSize := make([]models.QueryParam, 0, len(params)+1)
	withSize = append(withSize, models.QueryParam{Key: "size", Value: strconv.Itoa(h.cfg.DefaultPageSize)})
	return append(withSize, params...)
}

// writeError пишет JSON тело ошибки с указанным статусом
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: message}); err != nil {
		h.logger.Error("Error writing JSON error response", zap.Error(err))
	}
}
