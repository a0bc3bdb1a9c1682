package repository

import (
	"context"
	"time"

	"github.com/Dew789/Game-Community/internal/db"
	"github.com/Dew789/Game-Community/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScoreRepository struct {
	col *mongo.Collection
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{col: db.DB().Collection("scores")}
}

// UpsertScore crea o pisa el score de un usuario para un juego.
// El índice único (userId, gameId) garantiza una fila por par.
func (r *ScoreRepository) UpsertScore(ctx context.Context, userID, gameID, score int) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "gameId": gameID},
		bson.M{"$set": bson.M{
			"score":     score,
			"timestamp": time.Now().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *ScoreRepository) GetOne(ctx context.Context, userID, gameID int) (*models.ScoreDoc, error) {
	var s models.ScoreDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "gameId": gameID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScoreRepository) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.ScoreDoc, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetLimit(int64(limit)).SetSkip(int64(offset)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ScoreDoc
	for cur.Next(ctx) {
		var s models.ScoreDoc
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cur.Err()
}

// All hace el full scan de scores que el recomendador usa una vez por corrida.
func (r *ScoreRepository) All(ctx context.Context) ([]models.ScoreDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ScoreDoc
	for cur.Next(ctx) {
		var s models.ScoreDoc
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cur.Err()
}

// CountGamesWithScores: cuántos juegos distintos tienen al menos un score.
func (r *ScoreRepository) CountGamesWithScores(ctx context.Context) (int64, error) {
	ids, err := r.col.Distinct(ctx, "gameId", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}
