package repository

import (
	"context"

	"github.com/Dew789/Game-Community/internal/db"
	"github.com/Dew789/Game-Community/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GameRequestRepository struct {
	col *mongo.Collection
}

func NewGameRequestRepository() *GameRequestRepository {
	return &GameRequestRepository{
		col: db.DB().Collection("game_requests"),
	}
}

func (r *GameRequestRepository) Insert(ctx context.Context, gr *models.GameRequest) error {
	_, err := r.col.InsertOne(ctx, gr)
	return err
}

func (r *GameRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.GameRequest, error) {
	var gr models.GameRequest
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&gr)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gr, nil
}

func (r *GameRequestRepository) Update(ctx context.Context, gr *models.GameRequest) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": gr.ID}, gr)
	return err
}

func (r *GameRequestRepository) FindByUser(ctx context.Context, userID int, status string, limit, offset int) ([]models.GameRequest, error) {
	filter := bson.M{"userId": userID}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	return r.find(ctx, filter, limit, offset)
}

func (r *GameRequestRepository) FindAll(ctx context.Context, status string, limit, offset int) ([]models.GameRequest, error) {
	filter := bson.M{}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	return r.find(ctx, filter, limit, offset)
}

func (r *GameRequestRepository) find(ctx context.Context, filter bson.M, limit, offset int) ([]models.GameRequest, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.GameRequest
	for cur.Next(ctx) {
		var gr models.GameRequest
		if err := cur.Decode(&gr); err != nil {
			return nil, err
		}
		out = append(out, gr)
	}
	return out, cur.Err()
}
