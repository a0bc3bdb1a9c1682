package main

import (
	"context"
	"log"

	"github.com/Dew789/Game-Community/internal/config"
	"github.com/Dew789/Game-Community/internal/db"
	"github.com/Dew789/Game-Community/internal/repository"
	"github.com/Dew789/Game-Community/internal/service"
)

// Rebuild completo por línea de comandos (cron o corrida manual).
// No toca Redis: el próximo GetSimilarGames con refresh=true pisa el cache.
func main() {
	cfg := config.Load()
	db.InitMongo(cfg)

	gameRepo := repository.NewGameRepository()
	scoreRepo := repository.NewScoreRepository()
	recRepo := repository.NewRecommendRepository()

	recSvc := service.NewRecommendService(gameRepo, scoreRepo, recRepo,
		cfg.RebuildK, cfg.RebuildWorkers, nil)

	res, err := recSvc.Rebuild(context.Background(), cfg.RebuildK, cfg.RebuildWorkers)
	if err != nil {
		log.Fatalf("rebuild falló: %v", err)
	}

	log.Printf("rebuild terminado: %d filas escritas", res.Written)
	if len(res.FailedGames) > 0 {
		log.Printf("juegos con inserts fallidos: %v", res.FailedGames)
	}
}
