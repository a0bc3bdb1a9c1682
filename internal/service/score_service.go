package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/repository"
)

// La página de juego muestra 5 estrellas: solo se aceptan pares 0..10.
var ErrInvalidScore = errors.New("el score debe ser un entero par entre 0 y 10")

type ScoreService struct {
	scores *repository.ScoreRepository
	games  *repository.GameRepository
}

func NewScoreService(s *repository.ScoreRepository, g *repository.GameRepository) *ScoreService {
	return &ScoreService{
		scores: s,
		games:  g,
	}
}

// SetScore crea o actualiza el score de un usuario y mantiene al día
// los ratingStats del juego.
func (s *ScoreService) SetScore(ctx context.Context, userID, gameID, score int) error {
	if score < 0 || score > 10 || score%2 != 0 {
		return ErrInvalidScore
	}

	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return err
	}
	if game == nil {
		return fmt.Errorf("game %d no encontrado", gameID)
	}

	// 1) Ver si ya existía un score previo
	prev, err := s.scores.GetOne(ctx, userID, gameID)
	if err != nil {
		return err
	}
	existedBefore := prev != nil

	// 2) Upsert del score
	if err := s.scores.UpsertScore(ctx, userID, gameID, score); err != nil {
		return err
	}

	// 3) Actualizar stats del juego
	if game.RatingStats == nil {
		game.RatingStats = &models.RatingStats{}
	}
	rs := game.RatingStats

	if !existedBefore {
		total := rs.Average*float64(rs.Count) + float64(score)
		rs.Count++
		rs.Average = total / float64(rs.Count)
	} else if rs.Count > 0 {
		total := rs.Average*float64(rs.Count) - float64(prev.Score) + float64(score)
		rs.Average = total / float64(rs.Count)
		// rs.Count no cambia
	}

	nowStr := time.Now().UTC().Format(time.RFC3339)
	rs.LastRatedAt = nowStr
	game.UpdatedAt = nowStr

	return s.games.Update(ctx, game)
}

func (s *ScoreService) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.ScoreDoc, error) {
	return s.scores.GetByUser(ctx, userID, limit, offset)
}

// GetOne devuelve el score de un usuario para un juego (nil si no puntuó).
func (s *ScoreService) GetOne(ctx context.Context, userID, gameID int) (*models.ScoreDoc, error) {
	return s.scores.GetOne(ctx, userID, gameID)
}
