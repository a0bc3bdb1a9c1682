package repository

import (
	"context"

	"github.com/Dew789/Game-Community/internal/db"
	"github.com/Dew789/Game-Community/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GameRepository struct {
	col *mongo.Collection
}

func NewGameRepository() *GameRepository {
	return &GameRepository{col: db.DB().Collection("games")}
}

func (r *GameRepository) GetByID(ctx context.Context, gameID int) (*models.GameDoc, error) {
	var g models.GameDoc
	err := r.col.FindOne(ctx, bson.M{"gameId": gameID}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GameRepository) GetNextGameID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "gameId", Value: -1}})
	var g models.GameDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return g.GameID + 1, nil
}

func (r *GameRepository) Insert(ctx context.Context, g *models.GameDoc) error {
	_, err := r.col.InsertOne(ctx, g)
	return err
}

func (r *GameRepository) Update(ctx context.Context, g *models.GameDoc) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"gameId": g.GameID}, g)
	return err
}

// Search lista juegos con filtro por nombre y/o género, paginado.
// Las vistas por categoría del sitio (STG, RPG, RTS...) son esto con genre.
func (r *GameRepository) Search(ctx context.Context, q, genre string, limit, offset int) ([]models.GameDoc, error) {
	filter := bson.M{}

	if q != "" {
		// busca tanto en el nombre chino como en el inglés
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": q, "$options": "i"}},
			{"nameEn": bson.M{"$regex": q, "$options": "i"}},
		}
	}
	if genre != "" {
		filter["genre"] = genre
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "gameId", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.GameDoc
	for cur.Next(ctx) {
		var g models.GameDoc
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, cur.Err()
}

// Top por popularidad (count) o nota promedio.
func (r *GameRepository) Top(ctx context.Context, metric string, limit int) ([]models.GameDoc, error) {
	sortField := "ratingStats.count" // popular
	if metric == "rating" {
		sortField = "ratingStats.average"
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.GameDoc
	for cur.Next(ctx) {
		var g models.GameDoc
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, cur.Err()
}

// All devuelve el catálogo completo (lo itera el rebuild de recomendaciones).
func (r *GameRepository) All(ctx context.Context) ([]models.GameDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "gameId", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.GameDoc
	for cur.Next(ctx) {
		var g models.GameDoc
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, cur.Err()
}

func (r *GameRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
