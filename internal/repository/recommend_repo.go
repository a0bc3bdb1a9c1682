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

type RecommendRepository struct {
	col *mongo.Collection
}

func NewRecommendRepository() *RecommendRepository {
	return &RecommendRepository{col: db.DB().Collection("recommends")}
}

// Insert agrega una fila (gameId, relatedGameId, correlation). El rebuild
// llama esto una vez por par; un fallo solo afecta a esa fila.
func (r *RecommendRepository) Insert(ctx context.Context, gameID, relatedGameID int, correlation float64) error {
	_, err := r.col.InsertOne(ctx, models.RecommendDoc{
		GameID:        gameID,
		RelatedGameID: relatedGameID,
		Correlation:   correlation,
		UpdatedAt:     time.Now().UTC().Format(time.RFC3339),
	})
	return err
}

// GetByGame devuelve los vecinos de un juego, de más a menos parecido.
func (r *RecommendRepository) GetByGame(ctx context.Context, gameID int) ([]models.RecommendDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "correlation", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"gameId": gameID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RecommendDoc
	for cur.Next(ctx) {
		var rec models.RecommendDoc
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}

// DeleteAll vacía la tabla antes de una regeneración completa.
func (r *RecommendRepository) DeleteAll(ctx context.Context) error {
	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}

func (r *RecommendRepository) CountRows(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// CountGames: cuántos juegos distintos tienen al menos una recomendación.
func (r *RecommendRepository) CountGames(ctx context.Context) (int64, error) {
	ids, err := r.col.Distinct(ctx, "gameId", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}
