package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/repository"
)

type PostService struct {
	posts   *repository.PostRepository
	follows *repository.FollowRepository
}

func NewPostService(p *repository.PostRepository, f *repository.FollowRepository) *PostService {
	return &PostService{posts: p, follows: f}
}

func (s *PostService) CreatePost(ctx context.Context, authorID int, body string) (*models.PostDoc, error) {
	if body == "" {
		return nil, fmt.Errorf("el post no puede estar vacío")
	}

	nextID, err := s.posts.GetNextPostID(ctx)
	if err != nil {
		return nil, err
	}

	p := &models.PostDoc{
		PostID:    nextID,
		AuthorID:  authorID,
		Body:      body,
		Timestamp: time.Now().Unix(),
	}
	if err := s.posts.InsertPost(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostService) GetPost(ctx context.Context, postID int) (*models.PostDoc, error) {
	return s.posts.GetPostByID(ctx, postID)
}

func (s *PostService) List(ctx context.Context, limit, offset int) ([]models.PostDoc, error) {
	return s.posts.List(ctx, limit, offset)
}

// Feed: posts de los usuarios que sigue userID.
func (s *PostService) Feed(ctx context.Context, userID, limit, offset int) ([]models.PostDoc, error) {
	followed, err := s.follows.FollowedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.posts.ListByAuthors(ctx, followed, limit, offset)
}

// ---------------- comments ----------------

func (s *PostService) AddComment(ctx context.Context, postID, authorID int, body string) (*models.CommentDoc, error) {
	if body == "" {
		return nil, fmt.Errorf("el comentario no puede estar vacío")
	}

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, fmt.Errorf("post %d no encontrado", postID)
	}

	nextID, err := s.posts.GetNextCommentID(ctx)
	if err != nil {
		return nil, err
	}

	c := &models.CommentDoc{
		CommentID: nextID,
		PostID:    postID,
		AuthorID:  authorID,
		Body:      body,
		Timestamp: time.Now().Unix(),
	}
	if err := s.posts.InsertComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListComments: los comentarios deshabilitados solo los ven los moderadores.
func (s *PostService) ListComments(ctx context.Context, postID int, includeDisabled bool) ([]models.CommentDoc, error) {
	all, err := s.posts.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	if includeDisabled {
		return all, nil
	}

	out := make([]models.CommentDoc, 0, len(all))
	for _, c := range all {
		if !c.Disabled {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *PostService) ModerateComment(ctx context.Context, commentID int, disabled bool) error {
	return s.posts.SetCommentDisabled(ctx, commentID, disabled)
}
