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

type FollowRepository struct {
	col *mongo.Collection
}

func NewFollowRepository() *FollowRepository {
	return &FollowRepository{col: db.DB().Collection("follows")}
}

// Follow crea la relación si no existía (upsert para que repetir sea inocuo).
func (r *FollowRepository) Follow(ctx context.Context, followerID, followedID int) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"followerId": followerID, "followedId": followedID},
		bson.M{"$setOnInsert": bson.M{"timestamp": time.Now().Unix()}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followedID int) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"followerId": followerID, "followedId": followedID})
	return err
}

func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followedID int) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"followerId": followerID, "followedId": followedID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FollowedIDs devuelve los ids de los usuarios que sigue followerID
// (se usa para armar el feed de posts).
func (r *FollowRepository) FollowedIDs(ctx context.Context, followerID int) ([]int, error) {
	cur, err := r.col.Find(ctx, bson.M{"followerId": followerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []int
	for cur.Next(ctx) {
		var f models.FollowDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f.FollowedID)
	}
	return out, cur.Err()
}

func (r *FollowRepository) Followers(ctx context.Context, followedID int) ([]int, error) {
	cur, err := r.col.Find(ctx, bson.M{"followedId": followedID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []int
	for cur.Next(ctx) {
		var f models.FollowDoc
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		out = append(out, f.FollowerID)
	}
	return out, cur.Err()
}
