package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/repository"
)

type GameService struct {
	games *repository.GameRepository
}

func NewGameService(g *repository.GameRepository) *GameService {
	return &GameService{games: g}
}

func (s *GameService) GetGame(ctx context.Context, id int) (*models.GameDoc, error) {
	return s.games.GetByID(ctx, id)
}

func (s *GameService) Search(ctx context.Context, q, genre string, limit, offset int) ([]models.GameDoc, error) {
	return s.games.Search(ctx, q, genre, limit, offset)
}

func (s *GameService) Top(ctx context.Context, metric string, limit int) ([]models.GameDoc, error) {
	return s.games.Top(ctx, metric, limit)
}

// CreateGame da de alta un juego (admin directo o aprobación de un request).
func (s *GameService) CreateGame(ctx context.Context, req *models.GameCreateRequest) (*models.GameDoc, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name es obligatorio")
	}

	nextID, err := s.games.GetNextGameID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	g := &models.GameDoc{
		GameID:       nextID,
		Name:         req.Name,
		NameEn:       req.NameEn,
		Genre:        req.Genre,
		Producer:     req.Producer,
		Publisher:    req.Publisher,
		ReleaseDate:  req.ReleaseDate,
		Introduction: req.Introduction,
		Cover:        req.Cover,
		RatingStats:  &models.RatingStats{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.games.Insert(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGame aplica un patch parcial sobre el juego.
func (s *GameService) UpdateGame(ctx context.Context, id int, req *models.GameUpdateRequest) (*models.GameDoc, error) {
	g, err := s.games.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.NameEn != nil {
		g.NameEn = *req.NameEn
	}
	if req.Genre != nil {
		g.Genre = *req.Genre
	}
	if req.Producer != nil {
		g.Producer = *req.Producer
	}
	if req.Publisher != nil {
		g.Publisher = *req.Publisher
	}
	if req.ReleaseDate != nil {
		g.ReleaseDate = *req.ReleaseDate
	}
	if req.Introduction != nil {
		g.Introduction = *req.Introduction
	}
	if req.Cover != nil {
		g.Cover = *req.Cover
	}
	g.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.games.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
