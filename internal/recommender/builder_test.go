package recommender

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== fakes en memoria de los stores =====

type fakeRatingStore struct {
	ratings []Rating
	err     error
}

func (f *fakeRatingStore) AllRatings(ctx context.Context) ([]Rating, error) {
	return f.ratings, f.err
}

type fakeCatalogue struct {
	games []CatalogueGame
	err   error
}

func (f *fakeCatalogue) AllGames(ctx context.Context) ([]CatalogueGame, error) {
	return f.games, f.err
}

type recRow struct {
	GameID    int
	RelatedID int
	Corr      float64
}

type fakeRecStore struct {
	mu      sync.Mutex
	rows    []recRow
	failFor map[int]bool // gameIds cuyos inserts fallan
}

func (f *fakeRecStore) Insert(ctx context.Context, gameID, relatedGameID int, correlation float64) error {
	if f.failFor[gameID] {
		return errors.New("insert roto")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, recRow{GameID: gameID, RelatedID: relatedGameID, Corr: correlation})
	return nil
}

func (f *fakeRecStore) sorted() []recRow {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]recRow(nil), f.rows...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].GameID != out[j].GameID {
			return out[i].GameID < out[j].GameID
		}
		return out[i].RelatedID < out[j].RelatedID
	})
	return out
}

func discardLogf(string, ...any) {}

func newBuilder(rs *fakeRatingStore, gc *fakeCatalogue, rec *fakeRecStore) *Builder {
	return &Builder{Ratings: rs, Games: gc, Recs: rec, Logf: discardLogf}
}

// ===== tests =====

// Catálogo {g1,g2,g3}, solo g1 y g2 puntuados: g3 no produce filas y
// cada fila apunta a otro juego distinto del origen.
func TestRebuildSkipsUnratedGames(t *testing.T) {
	rs := &fakeRatingStore{ratings: []Rating{
		{UserID: 1, GameID: 1, Score: 10},
		{UserID: 1, GameID: 2, Score: 10},
		{UserID: 2, GameID: 1, Score: 8},
		{UserID: 2, GameID: 2, Score: 8},
	}}
	gc := &fakeCatalogue{games: []CatalogueGame{{GameID: 1}, {GameID: 2}, {GameID: 3}}}
	rec := &fakeRecStore{}

	res, err := newBuilder(rs, gc, rec).Rebuild(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Written)
	assert.Empty(t, res.FailedGames)

	rows := rec.sorted()
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.NotEqual(t, row.GameID, row.RelatedID)
		assert.NotEqual(t, 3, row.GameID)
	}
	// u1 y u2 coinciden en ambos juegos: correlación máxima
	assert.Equal(t, 1.0, rows[0].Corr)
	assert.Equal(t, recRow{GameID: 1, RelatedID: 2, Corr: 1.0}, rows[0])
	assert.Equal(t, recRow{GameID: 2, RelatedID: 1, Corr: 1.0}, rows[1])
}

func TestRebuildWritesAtMostKPerGame(t *testing.T) {
	var ratings []Rating
	var games []CatalogueGame
	for g := 1; g <= 6; g++ {
		games = append(games, CatalogueGame{GameID: g})
		ratings = append(ratings,
			Rating{UserID: 1, GameID: g, Score: float64(2 * g)},
			Rating{UserID: 2, GameID: g, Score: float64(10 - g)},
		)
	}
	rec := &fakeRecStore{}

	res, err := newBuilder(&fakeRatingStore{ratings: ratings}, &fakeCatalogue{games: games}, rec).Rebuild(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6*DefaultK, res.Written)

	perGame := map[int]int{}
	for _, row := range rec.rows {
		perGame[row.GameID]++
	}
	for g, n := range perGame {
		assert.LessOrEqual(t, n, DefaultK, "game %d", g)
	}
}

func TestRebuildRatingStoreFailureIsTerminal(t *testing.T) {
	rs := &fakeRatingStore{err: errors.New("mongo caído")}
	gc := &fakeCatalogue{games: []CatalogueGame{{GameID: 1}}}
	rec := &fakeRecStore{}

	res, err := newBuilder(rs, gc, rec).Rebuild(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Empty(t, rec.rows)
}

func TestRebuildCatalogueFailureIsTerminal(t *testing.T) {
	rs := &fakeRatingStore{}
	gc := &fakeCatalogue{err: errors.New("mongo caído")}

	res, err := newBuilder(rs, gc, &fakeRecStore{}).Rebuild(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
}

// Un insert fallido no tumba la corrida: el juego queda reportado y los
// demás juegos siguen escribiendo.
func TestRebuildInsertFailureIsIsolated(t *testing.T) {
	rs := &fakeRatingStore{ratings: []Rating{
		{UserID: 1, GameID: 1, Score: 10},
		{UserID: 1, GameID: 2, Score: 8},
	}}
	gc := &fakeCatalogue{games: []CatalogueGame{{GameID: 1}, {GameID: 2}}}
	rec := &fakeRecStore{failFor: map[int]bool{1: true}}

	res, err := newBuilder(rs, gc, rec).Rebuild(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Written)
	assert.Equal(t, []int{1}, res.FailedGames)

	rows := rec.sorted()
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].GameID)
}

func TestRebuildCancelledContext(t *testing.T) {
	rs := &fakeRatingStore{ratings: []Rating{{UserID: 1, GameID: 1, Score: 10}}}
	gc := &fakeCatalogue{games: []CatalogueGame{{GameID: 1}, {GameID: 2}}}
	rec := &fakeRecStore{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newBuilder(rs, gc, rec).Rebuild(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, rec.rows)
}

// Con varios workers el resultado es el mismo que secuencial.
func TestRebuildParallelMatchesSequential(t *testing.T) {
	var ratings []Rating
	var games []CatalogueGame
	for g := 1; g <= 20; g++ {
		games = append(games, CatalogueGame{GameID: g})
		for u := 1; u <= 5; u++ {
			ratings = append(ratings, Rating{UserID: u, GameID: g, Score: float64((g*u)%6) * 2})
		}
	}

	seq := &fakeRecStore{}
	res1, err := newBuilder(&fakeRatingStore{ratings: ratings}, &fakeCatalogue{games: games}, seq).Rebuild(context.Background())
	require.NoError(t, err)

	par := &fakeRecStore{}
	b := newBuilder(&fakeRatingStore{ratings: ratings}, &fakeCatalogue{games: games}, par)
	b.Workers = 4
	res2, err := b.Rebuild(context.Background())
	require.NoError(t, err)

	assert.Equal(t, res1.Written, res2.Written)
	assert.Equal(t, seq.sorted(), par.sorted())
}

// Los shards son disjuntos y su unión cubre la corrida completa.
func TestRebuildShardsPartitionCatalogue(t *testing.T) {
	var ratings []Rating
	var games []CatalogueGame
	for g := 1; g <= 9; g++ {
		games = append(games, CatalogueGame{GameID: g})
		ratings = append(ratings,
			Rating{UserID: 1, GameID: g, Score: float64(g)},
			Rating{UserID: 2, GameID: g, Score: float64(10 - g)},
		)
	}

	full := &fakeRecStore{}
	_, err := newBuilder(&fakeRatingStore{ratings: ratings}, &fakeCatalogue{games: games}, full).Rebuild(context.Background())
	require.NoError(t, err)

	merged := &fakeRecStore{}
	total := 0
	for shard := 0; shard < 3; shard++ {
		b := newBuilder(&fakeRatingStore{ratings: ratings}, &fakeCatalogue{games: games}, merged)
		b.ShardID = shard
		b.Shards = 3
		res, err := b.Rebuild(context.Background())
		require.NoError(t, err)
		total += res.Written
	}

	assert.Equal(t, len(full.rows), total)
	assert.Equal(t, full.sorted(), merged.sorted())
}
