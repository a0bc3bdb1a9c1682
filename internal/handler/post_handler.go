package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/service"

	"github.com/go-chi/chi/v5"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(s *service.PostService) *PostHandler {
	return &PostHandler{svc: s}
}

type postRequest struct {
	Body string `json:"body"`
}

// @Summary Crear post
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body postRequest true "contenido"
// @Success 201 {object} models.PostDoc
// @Failure 400 {object} map[string]string
// @Router /me/posts [post]
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	authorID := UserIDFromContext(r.Context())

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.CreatePost(r.Context(), authorID, req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// @Summary Listar posts
// @Tags posts
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.PostDoc
// @Router /posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	posts, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []models.PostDoc{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// @Summary Feed del usuario
// @Description Posts de los usuarios que sigue el usuario autenticado
// @Tags posts
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.PostDoc
// @Router /me/feed [get]
func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	posts, err := h.svc.Feed(r.Context(), userID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []models.PostDoc{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// @Summary Obtener post por id
// @Tags posts
// @Produce json
// @Param id path int true "postId"
// @Success 200 {object} models.PostDoc
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	p, err := h.svc.GetPost(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type commentRequest struct {
	Body string `json:"body"`
}

// @Summary Comentar un post
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "postId"
// @Param body body commentRequest true "contenido"
// @Success 201 {object} models.CommentDoc
// @Failure 400 {object} map[string]string
// @Router /me/posts/{id}/comments [post]
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	authorID := UserIDFromContext(r.Context())
	postID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.AddComment(r.Context(), postID, authorID, req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// @Summary Comentarios de un post
// @Description Los comentarios deshabilitados solo aparecen para moderadores/admins
// @Tags posts
// @Produce json
// @Param id path int true "postId"
// @Success 200 {array} models.CommentDoc
// @Router /posts/{id}/comments [get]
func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	role := RoleFromContext(r.Context())
	includeDisabled := role == "moderator" || role == "admin"

	comments, err := h.svc.ListComments(r.Context(), postID, includeDisabled)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if comments == nil {
		comments = []models.CommentDoc{}
	}
	writeJSON(w, http.StatusOK, comments)
}

type moderateCommentRequest struct {
	Disabled bool `json:"disabled"`
}

// @Summary Moderar comentario (MODERATOR)
// @Description Habilita o deshabilita un comentario
// @Tags posts
// @Security BearerAuth
// @Accept json
// @Param id path int true "commentId"
// @Param body body moderateCommentRequest true "estado"
// @Success 204
// @Router /mod/comments/{id} [put]
func (h *PostHandler) ModerateComment(w http.ResponseWriter, r *http.Request) {
	commentID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req moderateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.ModerateComment(r.Context(), commentID, req.Disabled); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
