package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameRequestHandler struct {
	svc *service.GameRequestService
}

func NewGameRequestHandler(s *service.GameRequestService) *GameRequestHandler {
	return &GameRequestHandler{svc: s}
}

// @Summary Proponer un juego
// @Description El usuario pide que se agregue un juego al catálogo
// @Tags game-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.GameCreateRequest true "datos del juego propuesto"
// @Success 201 {object} models.GameRequest
// @Failure 400 {object} map[string]string
// @Router /me/game-requests [post]
func (h *GameRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var req models.GameCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name es obligatorio", http.StatusBadRequest)
		return
	}

	gr, err := h.svc.CreateRequest(r.Context(), userID, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, gr)
}

// @Summary Mis propuestas
// @Tags game-requests
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending|approved|rejected"
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.GameRequest
// @Router /me/game-requests [get]
func (h *GameRequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	status := r.URL.Query().Get("status")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	list, err := h.svc.ListMine(r.Context(), userID, status, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.GameRequest{}
	}
	writeJSON(w, http.StatusOK, list)
}

// @Summary Listar propuestas (ADMIN)
// @Tags game-requests
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending|approved|rejected"
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.GameRequest
// @Router /admin/game-requests [get]
func (h *GameRequestHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	list, err := h.svc.ListAll(r.Context(), status, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.GameRequest{}
	}
	writeJSON(w, http.StatusOK, list)
}

// @Summary Aprobar propuesta (ADMIN)
// @Description Crea el juego en el catálogo. El body opcional pisa campos del payload original.
// @Tags game-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "request id (ObjectID)"
// @Param body body models.GameCreateRequest false "override opcional"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/game-requests/{id}/approve [post]
func (h *GameRequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}

	var override *models.GameCreateRequest
	if r.ContentLength > 0 {
		override = &models.GameCreateRequest{}
		if err := json.NewDecoder(r.Body).Decode(override); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	gr, game, err := h.svc.Approve(r.Context(), id, override)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if gr == nil {
		http.NotFound(w, r)
		return
	}
	if game == nil {
		http.Error(w, "la propuesta no está pending", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"request": gr,
		"game":    game,
	})
}

// @Summary Rechazar propuesta (ADMIN)
// @Tags game-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "request id (ObjectID)"
// @Param body body models.RejectGameRequest true "motivo"
// @Success 200 {object} models.GameRequest
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/game-requests/{id}/reject [post]
func (h *GameRequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}

	var req models.RejectGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	gr, err := h.svc.Reject(r.Context(), id, req.Reason)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if gr == nil {
		http.NotFound(w, r)
		return
	}
	if gr.Status != models.GameRequestStatusRejected {
		http.Error(w, "la propuesta no está pending", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, gr)
}
