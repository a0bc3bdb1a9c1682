package repository

import (
	"context"

	"github.com/Dew789/Game-Community/internal/db"
	"github.com/Dew789/Game-Community/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepository struct {
	posts    *mongo.Collection
	comments *mongo.Collection
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:    db.DB().Collection("posts"),
		comments: db.DB().Collection("comments"),
	}
}

// ---------------- posts ----------------

func (r *PostRepository) GetNextPostID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "postId", Value: -1}})
	var p models.PostDoc
	err := r.posts.FindOne(ctx, bson.M{}, opts).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return p.PostID + 1, nil
}

func (r *PostRepository) InsertPost(ctx context.Context, p *models.PostDoc) error {
	_, err := r.posts.InsertOne(ctx, p)
	return err
}

func (r *PostRepository) GetPostByID(ctx context.Context, postID int) (*models.PostDoc, error) {
	var p models.PostDoc
	err := r.posts.FindOne(ctx, bson.M{"postId": postID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List: posts más nuevos primero, paginado.
func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]models.PostDoc, error) {
	return r.findPosts(ctx, bson.M{}, limit, offset)
}

// ListByAuthors: feed de los usuarios seguidos.
func (r *PostRepository) ListByAuthors(ctx context.Context, authorIDs []int, limit, offset int) ([]models.PostDoc, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	return r.findPosts(ctx, bson.M{"authorId": bson.M{"$in": authorIDs}}, limit, offset)
}

func (r *PostRepository) findPosts(ctx context.Context, filter bson.M, limit, offset int) ([]models.PostDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PostDoc
	for cur.Next(ctx) {
		var p models.PostDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// ---------------- comments ----------------

func (r *PostRepository) GetNextCommentID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "commentId", Value: -1}})
	var c models.CommentDoc
	err := r.comments.FindOne(ctx, bson.M{}, opts).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return c.CommentID + 1, nil
}

func (r *PostRepository) InsertComment(ctx context.Context, c *models.CommentDoc) error {
	_, err := r.comments.InsertOne(ctx, c)
	return err
}

func (r *PostRepository) ListComments(ctx context.Context, postID int) ([]models.CommentDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.comments.Find(ctx, bson.M{"postId": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CommentDoc
	for cur.Next(ctx) {
		var c models.CommentDoc
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}

// SetCommentDisabled lo usan los moderadores para ocultar/restaurar.
func (r *PostRepository) SetCommentDisabled(ctx context.Context, commentID int, disabled bool) error {
	res, err := r.comments.UpdateOne(ctx,
		bson.M{"commentId": commentID},
		bson.M{"$set": bson.M{"disabled": disabled}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
