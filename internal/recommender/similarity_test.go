package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimDistanceIdenticalVectors(t *testing.T) {
	a := RatingVector{1: 10, 2: 8, 3: 4}
	assert.Equal(t, 1.0, SimDistance(a, a))
}

func TestSimDistanceNoSharedUsers(t *testing.T) {
	a := RatingVector{1: 10, 2: 8}
	b := RatingVector{3: 6, 4: 2}
	assert.Equal(t, 0.0, SimDistance(a, b))

	// vectores vacíos tampoco comparten nada
	assert.Equal(t, 0.0, SimDistance(RatingVector{}, a))
}

func TestSimDistanceSymmetry(t *testing.T) {
	a := RatingVector{1: 10, 2: 8, 5: 6}
	b := RatingVector{2: 4, 5: 10, 9: 0}
	assert.Equal(t, SimDistance(a, b), SimDistance(b, a))
}

// Escenario del recomendador: u1 y u2 puntuaron igual a g1 y g2.
func TestSimDistancePerfectAgreement(t *testing.T) {
	g1 := RatingVector{1: 10, 2: 8}
	g2 := RatingVector{1: 10, 2: 8}
	assert.Equal(t, 1.0, SimDistance(g1, g2))
}

// u1 dio 10 a g1 y 0 a g3: 1/(1+sqrt(100)) = 1/11.
func TestSimDistanceSingleSharedUser(t *testing.T) {
	g1 := RatingVector{1: 10}
	g3 := RatingVector{1: 0}
	assert.InDelta(t, 1.0/11.0, SimDistance(g1, g3), 1e-12)
}

func TestSimDistanceMonotonicAndBounded(t *testing.T) {
	base := RatingVector{1: 10, 2: 8}

	prev := 2.0
	// a más desacuerdo acumulado, menor similitud, siempre en (0, 1]
	for _, other := range []RatingVector{
		{1: 10, 2: 8},
		{1: 10, 2: 6},
		{1: 8, 2: 6},
		{1: 0, 2: 0},
	} {
		sim := SimDistance(base, other)
		require.Greater(t, sim, 0.0)
		require.LessOrEqual(t, sim, 1.0)
		require.Less(t, sim, prev)
		prev = sim
	}
}

func TestSimDistanceIgnoresSign(t *testing.T) {
	// la fórmula solo mira diferencias, los scores negativos no se tratan aparte
	a := RatingVector{1: -4}
	b := RatingVector{1: -4}
	assert.Equal(t, 1.0, SimDistance(a, b))
}
