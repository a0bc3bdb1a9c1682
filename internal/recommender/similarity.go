package recommender

import "math"

// SimDistance devuelve la similitud basada en distancia euclídea entre los
// vectores de dos juegos: 1/(1+sqrt(sum((a-b)^2))) sobre los usuarios que
// puntuaron ambos. Si no comparten ningún usuario devuelve 0.
//
// Resultado en (0, 1]: vectores idénticos dan 1, más desacuerdo se acerca a 0.
// Es simétrica y no tiene efectos secundarios.
func SimDistance(a, b RatingVector) float64 {
	var sumSq float64
	shared := false
	for user, sa := range a {
		sb, ok := b[user]
		if !ok {
			continue
		}
		shared = true
		d := sa - sb
		sumSq += d * d
	}
	if !shared {
		return 0
	}
	return 1 / (1 + math.Sqrt(sumSq))
}
