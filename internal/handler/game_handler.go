package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/service"

	"github.com/go-chi/chi/v5"
)

type GameHandler struct {
	svc *service.GameService
}

func NewGameHandler(s *service.GameService) *GameHandler {
	return &GameHandler{svc: s}
}

// @Summary Obtener juego por id
// @Tags games
// @Produce json
// @Param id path int true "gameId"
// @Success 200 {object} models.GameDoc
// @Failure 404 {object} map[string]string
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	g, err := h.svc.GetGame(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if g == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// @Summary Buscar juegos
// @Description Búsqueda por nombre (name/nameEn) con filtro opcional de género
// @Tags games
// @Produce json
// @Param q query string false "texto a buscar"
// @Param genre query string false "género exacto"
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.GameDoc
// @Router /games [get]
func (h *GameHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	genre := r.URL.Query().Get("genre")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	games, err := h.svc.Search(r.Context(), q, genre, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if games == nil {
		games = []models.GameDoc{}
	}
	writeJSON(w, http.StatusOK, games)
}

// @Summary Top de juegos
// @Description Ranking por cantidad de votos o por promedio
// @Tags games
// @Produce json
// @Param by query string false "count|average (default: count)"
// @Param limit query int false "límite (default: 10)"
// @Success 200 {array} models.GameDoc
// @Router /games/top [get]
func (h *GameHandler) Top(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("by")
	if metric == "" {
		metric = "count"
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	games, err := h.svc.Top(r.Context(), metric, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if games == nil {
		games = []models.GameDoc{}
	}
	writeJSON(w, http.StatusOK, games)
}

// @Summary Crear juego (ADMIN)
// @Tags games
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.GameCreateRequest true "datos del juego"
// @Success 201 {object} models.GameDoc
// @Failure 400 {object} map[string]string
// @Router /admin/games [post]
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req models.GameCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.CreateGame(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

// @Summary Actualizar juego (ADMIN)
// @Description Patch parcial: solo se pisan los campos presentes en el body
// @Tags games
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "gameId"
// @Param body body models.GameUpdateRequest true "campos a actualizar"
// @Success 200 {object} models.GameDoc
// @Failure 404 {object} map[string]string
// @Router /admin/games/{id} [put]
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req models.GameUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.UpdateGame(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if g == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, g)
}
