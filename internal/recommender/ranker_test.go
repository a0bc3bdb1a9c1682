package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVectors() map[int]RatingVector {
	// g1 y g2 idénticos, g3 cercano, g4 lejano, g5 sin usuarios en común
	return map[int]RatingVector{
		1: {1: 10, 2: 8},
		2: {1: 10, 2: 8},
		3: {1: 8, 2: 8},
		4: {1: 0, 2: 2},
		5: {7: 6},
	}
}

func TestTopMatchesUnratedGameReturnsNil(t *testing.T) {
	assert.Nil(t, TopMatches(99, testVectors(), 3))
}

func TestTopMatchesOrderAndBounds(t *testing.T) {
	got := TopMatches(1, testVectors(), 3)
	require.Len(t, got, 3)

	// nunca se recomienda el propio juego y el orden es descendente
	for i, p := range got {
		assert.NotEqual(t, 1, p.GameID)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Sim, p.Sim)
		}
	}
	assert.Equal(t, 2, got[0].GameID)
	assert.Equal(t, 1.0, got[0].Sim)
	assert.Equal(t, 3, got[1].GameID)
}

func TestTopMatchesFewerCandidatesThanK(t *testing.T) {
	vectors := map[int]RatingVector{
		1: {1: 10},
		2: {1: 9},
	}
	got := TopMatches(1, vectors, 3)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].GameID)
}

func TestTopMatchesNoOtherRatedGames(t *testing.T) {
	vectors := map[int]RatingVector{1: {1: 10}}
	got := TopMatches(1, vectors, 3)
	// lista vacía, no nil: el juego sí tiene ratings
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopMatchesTieBreakByGameID(t *testing.T) {
	// 3 y 7 empatan en similitud contra 1; gana el id menor
	vectors := map[int]RatingVector{
		1: {1: 10, 2: 10},
		7: {1: 8, 2: 10},
		3: {1: 10, 2: 8},
	}
	got := TopMatches(1, vectors, 2)
	require.Len(t, got, 2)
	assert.Equal(t, got[0].Sim, got[1].Sim)
	assert.Equal(t, 3, got[0].GameID)
	assert.Equal(t, 7, got[1].GameID)
}

func TestTopMatchesRespectsK(t *testing.T) {
	got := TopMatches(1, testVectors(), 2)
	assert.Len(t, got, 2)
}

func TestBuildVectors(t *testing.T) {
	vectors := BuildVectors([]Rating{
		{UserID: 1, GameID: 1, Score: 10},
		{UserID: 2, GameID: 1, Score: 8},
		{UserID: 1, GameID: 2, Score: 6},
	})
	require.Len(t, vectors, 2)
	assert.Equal(t, RatingVector{1: 10, 2: 8}, vectors[1])
	assert.Equal(t, RatingVector{1: 6}, vectors[2])
}
