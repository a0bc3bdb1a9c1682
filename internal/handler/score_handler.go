package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/service"

	"github.com/go-chi/chi/v5"
)

type ScoreHandler struct {
	svc *service.ScoreService
}

func NewScoreHandler(s *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{svc: s}
}

type scoreRequest struct {
	Score int `json:"score"`
}

// @Summary Puntuar un juego
// @Description Crea o reemplaza el score del usuario autenticado. Solo pares 0..10.
// @Tags scores
// @Security BearerAuth
// @Accept json
// @Param id path int true "gameId"
// @Param body body scoreRequest true "score"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /me/games/{id}/score [put]
func (h *ScoreHandler) PutMyScore(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	gameID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetScore(r.Context(), userID, gameID, req.Score); err != nil {
		if errors.Is(err, service.ErrInvalidScore) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Mis scores
// @Tags scores
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 50)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.ScoreDoc
// @Router /me/scores [get]
func (h *ScoreHandler) GetMyScores(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 50
	}

	scores, err := h.svc.GetByUser(r.Context(), userID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if scores == nil {
		scores = []models.ScoreDoc{}
	}
	writeJSON(w, http.StatusOK, scores)
}

// @Summary Mi score para un juego
// @Tags scores
// @Security BearerAuth
// @Produce json
// @Param id path int true "gameId"
// @Success 200 {object} models.ScoreDoc
// @Failure 404 {object} map[string]string
// @Router /me/games/{id}/score [get]
func (h *ScoreHandler) GetMyScore(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	gameID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	sc, err := h.svc.GetOne(r.Context(), userID, gameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if sc == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}
