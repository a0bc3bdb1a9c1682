package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Dew789/Game-Community/internal/cache"
	"github.com/Dew789/Game-Community/internal/cluster"
	"github.com/Dew789/Game-Community/internal/models"
	"github.com/Dew789/Game-Community/internal/recommender"
	"github.com/Dew789/Game-Community/internal/repository"
)

const (
	similarCachePrefix = "similar:game:"
	similarCacheTTL    = 60 * 60 // 1 hora
)

// ===== adaptadores: los repos hablan models, el core habla tipos planos =====

type scoreRatingStore struct {
	scores *repository.ScoreRepository
}

func (a scoreRatingStore) AllRatings(ctx context.Context) ([]recommender.Rating, error) {
	docs, err := a.scores.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recommender.Rating, 0, len(docs))
	for _, d := range docs {
		out = append(out, recommender.Rating{
			UserID: d.UserID,
			GameID: d.GameID,
			Score:  float64(d.Score),
		})
	}
	return out, nil
}

type gameCatalogue struct {
	games *repository.GameRepository
}

func (a gameCatalogue) AllGames(ctx context.Context) ([]recommender.CatalogueGame, error) {
	docs, err := a.games.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recommender.CatalogueGame, 0, len(docs))
	for _, d := range docs {
		out = append(out, recommender.CatalogueGame{GameID: d.GameID, Name: d.Name})
	}
	return out, nil
}

// RecommendRepository.Insert ya tiene la firma de recommender.RecommendStore,
// así que el repo entra directo como store de salida.

type RecommendService struct {
	games  *repository.GameRepository
	scores *repository.ScoreRepository
	recs   *repository.RecommendRepository

	k       int
	workers int
	// direcciones TCP de los sim nodes (rebuild distribuido)
	simNodes []string
}

func NewRecommendService(
	games *repository.GameRepository,
	scores *repository.ScoreRepository,
	recs *repository.RecommendRepository,
	k, workers int,
	simNodes []string,
) *RecommendService {
	return &RecommendService{
		games:    games,
		scores:   scores,
		recs:     recs,
		k:        k,
		workers:  workers,
		simNodes: simNodes,
	}
}

// GetSimilarGames devuelve los juegos parecidos a gameID ya unidos con el
// catálogo, cacheados en Redis. Lista vacía = juego sin recomendaciones
// todavía (sin ratings o rebuild pendiente), no es un error.
func (s *RecommendService) GetSimilarGames(ctx context.Context, gameID int, refresh bool) ([]models.SimilarGame, error) {
	key := fmt.Sprintf("%s%d", similarCachePrefix, gameID)

	var cached []models.SimilarGame
	if !refresh {
		if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	rows, err := s.recs.GetByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	items := make([]models.SimilarGame, 0, len(rows))
	for _, row := range rows {
		g, err := s.games.GetByID(ctx, row.RelatedGameID)
		if err != nil {
			return nil, err
		}
		if g == nil {
			// el juego recomendado ya no está en el catálogo
			continue
		}
		items = append(items, models.SimilarGame{Game: *g, Correlation: row.Correlation})
	}

	if err := cache.SetJSON(ctx, key, items, similarCacheTTL); err != nil {
		log.Printf("[recommend] error cacheando similares de %d: %v", gameID, err)
	}
	return items, nil
}

// Rebuild regenera la tabla completa en este proceso: borra las filas de la
// corrida anterior, corre el builder y después invalida el cache de similares.
func (s *RecommendService) Rebuild(ctx context.Context, k, workers int) (*recommender.RebuildResult, error) {
	if k <= 0 {
		k = s.k
	}
	if workers <= 0 {
		workers = s.workers
	}

	if err := s.recs.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("vaciando recommends: %w", err)
	}

	b := &recommender.Builder{
		Ratings: scoreRatingStore{s.scores},
		Games:   gameCatalogue{s.games},
		Recs:    s.recs,
		K:       k,
		Workers: workers,
	}

	start := time.Now()
	res, err := b.Rebuild(ctx)
	if err != nil {
		return res, err
	}
	log.Printf("[recommend] rebuild ok: %d filas, %d juegos fallidos, tiempo=%s",
		res.Written, len(res.FailedGames), time.Since(start))

	s.invalidateSimilarCache(ctx)
	return res, nil
}

// RebuildShard corre el builder sobre un solo shard del catálogo.
// Lo usan los sim nodes; NO borra la tabla (eso lo hace el coordinador).
func (s *RecommendService) RebuildShard(ctx context.Context, task *cluster.RebuildTask) (*recommender.RebuildResult, error) {
	b := &recommender.Builder{
		Ratings: scoreRatingStore{s.scores},
		Games:   gameCatalogue{s.games},
		Recs:    s.recs,
		K:       task.K,
		Workers: task.Workers,
		ShardID: task.ShardID,
		Shards:  task.Shards,
	}
	return b.Rebuild(ctx)
}

// RebuildDistributed reparte el catálogo entre los sim nodes configurados.
// Cada nodo escribe sus filas directo en Mongo; acá solo se agregan conteos.
func (s *RecommendService) RebuildDistributed(ctx context.Context, k int) (*recommender.RebuildResult, error) {
	if len(s.simNodes) == 0 {
		return nil, fmt.Errorf("no hay sim nodes configurados (SIM_NODE_ADDRS vacío)")
	}
	if k <= 0 {
		k = s.k
	}

	if err := s.recs.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("vaciando recommends: %w", err)
	}

	shards := len(s.simNodes)

	ctxTimeout, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	resCh := make(chan *cluster.RebuildResponse, shards)
	errCh := make(chan error, shards)

	var wg sync.WaitGroup
	for i, addr := range s.simNodes {
		wg.Add(1)
		go func(addr string, shardID int) {
			defer wg.Done()
			resp, err := cluster.SendRebuild(ctxTimeout, addr, &cluster.RebuildTask{
				ShardID: shardID,
				Shards:  shards,
				K:       k,
				Workers: s.workers,
			})
			if err != nil {
				errCh <- err
				return
			}
			resCh <- resp
		}(addr, i)
	}

	wg.Wait()
	close(resCh)
	close(errCh)

	if len(resCh) == 0 && len(errCh) > 0 {
		// todos los nodos fallaron
		return nil, <-errCh
	}

	total := &recommender.RebuildResult{}
	for resp := range resCh {
		total.Written += resp.Written
		total.FailedGames = append(total.FailedGames, resp.FailedGames...)
	}
	for err := range errCh {
		log.Printf("[recommend] shard falló: %v", err)
	}

	s.invalidateSimilarCache(ctx)
	return total, nil
}

func (s *RecommendService) invalidateSimilarCache(ctx context.Context) {
	if err := cache.DelPrefix(ctx, similarCachePrefix); err != nil {
		log.Printf("[recommend] error invalidando cache de similares: %v", err)
	}
}

// Summary arma el resumen del panel admin.
func (s *RecommendService) Summary(ctx context.Context) (*models.RecommendSummary, error) {
	totalGames, err := s.games.Count(ctx)
	if err != nil {
		return nil, err
	}
	gamesWithRecs, err := s.recs.CountGames(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.recs.CountRows(ctx)
	if err != nil {
		return nil, err
	}
	withScore, err := s.scores.CountGamesWithScores(ctx)
	if err != nil {
		return nil, err
	}

	without := totalGames - gamesWithRecs
	if without < 0 {
		without = 0
	}

	return &models.RecommendSummary{
		TotalGames:        totalGames,
		GamesWithRecs:     gamesWithRecs,
		GamesWithoutRecs:  without,
		RecommendRows:     rows,
		GamesWithAnyScore: withScore,
	}, nil
}
