package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/service"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type userResponse struct {
	UserID      int    `json:"userId"`
	Email       string `json:"email"`
	Username    string `json:"username,omitempty"`
	Role        string `json:"role"`
	AboutMe     string `json:"aboutMe,omitempty"`
	Location    string `json:"location,omitempty"`
	AvatarBig   string `json:"avatarBig,omitempty"`
	AvatarSmall string `json:"avatarSmall,omitempty"`
	MemberSince string `json:"memberSince"`
	LastSeen    string `json:"lastSeen"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		UserID:      u.UserID,
		Email:       u.Email,
		Username:    u.Username,
		Role:        u.Role,
		AboutMe:     u.AboutMe,
		Location:    u.Location,
		AvatarBig:   u.AvatarBig,
		AvatarSmall: u.AvatarSmall,
		MemberSince: u.MemberSince,
		LastSeen:    u.LastSeen,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	AboutMe  string `json:"aboutMe"`
	Location string `json:"location"`
}

// @Summary Register
// @Description Crea un usuario nuevo
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} userResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), service.RegisterUserData{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		AboutMe:  req.AboutMe,
		Location: req.Location,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
	AboutMe  *string `json:"aboutMe"`
	Location *string `json:"location"`
}

// @Summary Actualizar usuario (ADMIN)
// @Description Actualiza datos de un usuario existente. Todos los campos son opcionales.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "userId"
// @Param body body updateUserRequest true "datos a actualizar"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /users/{id}/update [put]
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.UpdateUser(r.Context(), id, service.UpdateUserData{
		Email:    req.Email,
		Username: req.Username,
		Role:     req.Role,
		Password: req.Password,
		AboutMe:  req.AboutMe,
		Location: req.Location,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

// @Summary Listar usuarios (ADMIN)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param role query string false "user|moderator|admin|all (default: all)"
// @Param q query string false "búsqueda por email/username"
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} userResponse
// @Router /users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role == "" {
		role = "all"
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}
	q := r.URL.Query().Get("q")

	users, err := h.svc.ListUsers(r.Context(), role, q, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		uCopy := u
		resp = append(resp, toUserResponse(&uCopy))
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Obtener usuario por id
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Success 200 {object} userResponse
// @Router /users/{id} [get]
func (h *AuthHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	u, err := h.svc.GetUserByID(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// @Summary Seguir a un usuario
// @Tags users
// @Security BearerAuth
// @Param id path int true "userId a seguir"
// @Success 204
// @Router /users/{id}/follow [post]
func (h *AuthHandler) Follow(w http.ResponseWriter, r *http.Request) {
	followerID := UserIDFromContext(r.Context())
	followedID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.Follow(r.Context(), followerID, followedID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Dejar de seguir a un usuario
// @Tags users
// @Security BearerAuth
// @Param id path int true "userId a dejar de seguir"
// @Success 204
// @Router /users/{id}/follow [delete]
func (h *AuthHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID := UserIDFromContext(r.Context())
	followedID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	if err := h.svc.Unfollow(r.Context(), followerID, followedID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Seguidores de un usuario
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Success 200 {array} int
// @Router /users/{id}/followers [get]
func (h *AuthHandler) Followers(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	ids, err := h.svc.Followers(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []int{}
	}
	writeJSON(w, http.StatusOK, ids)
}
