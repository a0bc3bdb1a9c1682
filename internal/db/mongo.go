package db

import (
	"context"
	"log"
	"time"

	"github.com/Dew789/Game-Community/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

func InitMongo(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping falló: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)

	ensureIndexes(ctx)
}

// ensureIndexes crea los índices que el dominio da por sentados:
// un score por (userId, gameId) y lookups rápidos de recommends por juego.
func ensureIndexes(ctx context.Context) {
	uniq := options.Index().SetUnique(true)

	_, err := mongoDB.Collection("scores").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "gameId", Value: 1}},
		Options: uniq,
	})
	if err != nil {
		log.Printf("[mongo] índice scores: %v", err)
	}

	_, err = mongoDB.Collection("recommends").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "gameId", Value: 1}, {Key: "correlation", Value: -1}},
	})
	if err != nil {
		log.Printf("[mongo] índice recommends: %v", err)
	}

	_, err = mongoDB.Collection("games").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "gameId", Value: 1}},
		Options: uniq,
	})
	if err != nil {
		log.Printf("[mongo] índice games: %v", err)
	}
}

func DB() *mongo.Database {
	return mongoDB
}
