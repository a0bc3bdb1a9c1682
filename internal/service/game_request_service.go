package service

import (
	"context"
	"time"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GameRequestService maneja las propuestas de juegos: los usuarios piden
// altas al catálogo y un admin las aprueba o rechaza.
type GameRequestService struct {
	repo    *repository.GameRequestRepository
	gameSvc *GameService
}

func NewGameRequestService(repo *repository.GameRequestRepository, gameSvc *GameService) *GameRequestService {
	return &GameRequestService{
		repo:    repo,
		gameSvc: gameSvc,
	}
}

// Crear request (user)
func (s *GameRequestService) CreateRequest(ctx context.Context, userID int, req *models.GameCreateRequest) (*models.GameRequest, error) {
	now := time.Now()

	gr := &models.GameRequest{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Status:    models.GameRequestStatusPending,
		Game:      *req,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, gr); err != nil {
		return nil, err
	}
	return gr, nil
}

func (s *GameRequestService) ListMine(ctx context.Context, userID int, status string, limit, offset int) ([]models.GameRequest, error) {
	return s.repo.FindByUser(ctx, userID, status, limit, offset)
}

func (s *GameRequestService) ListAll(ctx context.Context, status string, limit, offset int) ([]models.GameRequest, error) {
	return s.repo.FindAll(ctx, status, limit, offset)
}

// Aprobar request: crea el juego y marca el request como approved.
// El admin puede pisar campos del payload original con el override.
func (s *GameRequestService) Approve(ctx context.Context, id primitive.ObjectID, override *models.GameCreateRequest) (*models.GameRequest, *models.GameDoc, error) {
	gr, err := s.repo.FindByID(ctx, id)
	if err != nil || gr == nil {
		return gr, nil, err
	}
	if gr.Status != models.GameRequestStatusPending {
		return gr, nil, nil // el handler devuelve 400 si no está pending
	}

	payload := gr.Game
	if override != nil {
		if override.Name != "" {
			payload.Name = override.Name
		}
		if override.NameEn != "" {
			payload.NameEn = override.NameEn
		}
		if override.Genre != "" {
			payload.Genre = override.Genre
		}
		if override.Producer != "" {
			payload.Producer = override.Producer
		}
		if override.Publisher != "" {
			payload.Publisher = override.Publisher
		}
		if override.ReleaseDate != "" {
			payload.ReleaseDate = override.ReleaseDate
		}
		if override.Introduction != "" {
			payload.Introduction = override.Introduction
		}
		if override.Cover != "" {
			payload.Cover = override.Cover
		}
	}

	game, err := s.gameSvc.CreateGame(ctx, &payload)
	if err != nil {
		return gr, nil, err
	}

	gr.Status = models.GameRequestStatusApproved
	gr.ApprovedGameID = &game.GameID
	gr.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, gr); err != nil {
		return gr, game, err
	}

	return gr, game, nil
}

// Rechazar request
func (s *GameRequestService) Reject(ctx context.Context, id primitive.ObjectID, reason string) (*models.GameRequest, error) {
	gr, err := s.repo.FindByID(ctx, id)
	if err != nil || gr == nil {
		return gr, err
	}
	if gr.Status != models.GameRequestStatusPending {
		return gr, nil
	}

	gr.Status = models.GameRequestStatusRejected
	gr.Reason = reason
	gr.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, gr); err != nil {
		return gr, err
	}
	return gr, nil
}
