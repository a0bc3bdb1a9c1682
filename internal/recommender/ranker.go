package recommender

import "sort"

// TopMatches devuelve los k juegos más parecidos a gameID.
//
// vectors contiene un RatingVector por cada juego con al menos un rating
// (se construye una sola vez por corrida con BuildVectors, no por llamada).
// Si el juego objetivo no aparece en vectors devuelve nil: no hay datos para
// recomendar nada. Con menos de k candidatos devuelve los que haya, incluso
// una lista vacía (distinto de nil).
func TopMatches(gameID int, vectors map[int]RatingVector, k int) []SimilarityPair {
	target, ok := vectors[gameID]
	if !ok {
		return nil
	}

	rank := make([]SimilarityPair, 0, len(vectors)-1)
	for other, vec := range vectors {
		if other == gameID {
			continue
		}
		rank = append(rank, SimilarityPair{GameID: other, Sim: SimDistance(target, vec)})
	}

	// orden descendente por similitud; empates por gameId para que las
	// corridas sean reproducibles
	sort.Slice(rank, func(i, j int) bool {
		if rank[i].Sim != rank[j].Sim {
			return rank[i].Sim > rank[j].Sim
		}
		return rank[i].GameID < rank[j].GameID
	})

	if len(rank) > k {
		rank = rank[:k]
	}
	return rank
}
