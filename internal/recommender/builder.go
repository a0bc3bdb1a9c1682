package recommender

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Builder recorre todo el catálogo y regenera la tabla de recomendaciones.
// Es un trabajo batch pensado para correr periódicamente, no en request-time.
type Builder struct {
	Ratings RatingStore
	Games   GameCatalogue
	Recs    RecommendStore

	// K vecinos por juego (default DefaultK).
	K int
	// Workers en paralelo sobre el catálogo (default 1). Los vectores son
	// de solo lectura durante la corrida y cada juego escribe filas propias,
	// así que no hace falta coordinación entre workers.
	Workers int
	// ShardID/Shards: si Shards > 1 solo se procesan los juegos cuyo índice
	// en el catálogo cae en este shard (lo usan los sim nodes).
	ShardID int
	Shards  int

	// Logf permite redirigir el log (los tests lo silencian). nil = log.Printf.
	Logf func(format string, args ...any)
}

// RebuildResult resume una corrida.
type RebuildResult struct {
	Written     int   `json:"written"`
	FailedGames []int `json:"failedGames,omitempty"`
}

// Rebuild carga ratings y catálogo una sola vez, calcula los TopMatches de
// cada juego y persiste las filas (gameId, relatedGameId, correlation).
//
// Un insert fallido corta las filas restantes de ese juego y la corrida sigue
// con el siguiente: lo ya escrito para otros juegos no se toca. Un fallo
// leyendo ratings o catálogo sí es terminal (no se escribió nada todavía).
// Se chequea cancelación antes de encolar cada juego.
func (b *Builder) Rebuild(ctx context.Context) (*RebuildResult, error) {
	k := b.K
	if k <= 0 {
		k = DefaultK
	}
	workers := b.Workers
	if workers <= 0 {
		workers = 1
	}
	shards := b.Shards
	if shards <= 0 {
		shards = 1
	}

	ratings, err := b.Ratings.AllRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargando ratings: %w", err)
	}
	games, err := b.Games.AllGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargando catálogo: %w", err)
	}

	vectors := BuildVectors(ratings)

	res := &RebuildResult{}
	var mu sync.Mutex

	jobs := make(chan CatalogueGame)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for game := range jobs {
				n, ok := b.rebuildGame(ctx, game, vectors, k)
				mu.Lock()
				res.Written += n
				if !ok {
					res.FailedGames = append(res.FailedGames, game.GameID)
				}
				mu.Unlock()
			}
		}()
	}

	var ctxErr error
feed:
	for idx, game := range games {
		if shards > 1 && idx%shards != b.ShardID {
			continue
		}
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break feed
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- game:
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return res, ctxErr
	}
	return res, nil
}

// rebuildGame escribe los vecinos de un juego. ok=false si algún insert falló.
func (b *Builder) rebuildGame(ctx context.Context, game CatalogueGame, vectors map[int]RatingVector, k int) (written int, ok bool) {
	sim := TopMatches(game.GameID, vectors, k)
	if len(sim) == 0 {
		// juego sin ratings (o sin otros juegos puntuados): no es un error,
		// simplemente no hay nada que recomendar todavía
		return 0, true
	}

	for _, p := range sim {
		if err := b.Recs.Insert(ctx, game.GameID, p.GameID, p.Sim); err != nil {
			b.logf("[recommender] insert falló game=%d rel=%d: %v", game.GameID, p.GameID, err)
			return written, false
		}
		written++
	}
	return written, true
}

func (b *Builder) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}
