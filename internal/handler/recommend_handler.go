package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Juegos similares
// @Description Juegos parecidos al dado según los scores de la comunidad
// @Tags recommend
// @Produce json
// @Param id path int true "gameId"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.SimilarGame
// @Router /games/{id}/similar [get]
func (h *RecommendHandler) GetSimilarGames(w http.ResponseWriter, r *http.Request) {
	gameID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.GetSimilarGames(r.Context(), gameID, refresh)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if items == nil {
		items = []models.SimilarGame{}
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary Resumen de recomendaciones (ADMIN)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.RecommendSummary
// @Router /admin/recommendations/summary [get]
func (h *RecommendHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// @Summary Regenerar recomendaciones (ADMIN)
// @Description Recalcula la tabla completa de similares. Con distributed=true
// @Description reparte el catálogo entre los sim nodes configurados.
// @Tags recommend
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.RebuildRequest false "parámetros del rebuild"
// @Success 200 {object} recommender.RebuildResult
// @Router /admin/recommendations/rebuild [post]
func (h *RecommendHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	var req models.RebuildRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	var (
		res any
		err error
	)
	if req.Distributed {
		res, err = h.svc.RebuildDistributed(r.Context(), req.K)
	} else {
		res, err = h.svc.Rebuild(r.Context(), req.K, req.Workers)
	}
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Rebuild con progreso en tiempo real (WebSocket)
// @Description Abre un WS, corre el rebuild y va avisando el avance
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param k query int false "vecinos por juego (default: configurado)"
// @Param workers query int false "workers (default: configurado)"
// @Success 200 {object} map[string]interface{}
// @Router /admin/recommendations/ws/rebuild [get]
func (h *RecommendHandler) RebuildWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	workers, _ := strconv.Atoi(r.URL.Query().Get("workers"))

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando rebuild…",
	})

	start := time.Now()
	res, err := h.svc.Rebuild(r.Context(), k, workers)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con el resultado
	conn.WriteJSON(map[string]any{
		"type":        "done",
		"written":     res.Written,
		"failedGames": res.FailedGames,
		"elapsed":     time.Since(start).String(),
		"generatedAt": time.Now(),
	})
}
