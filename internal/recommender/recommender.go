package recommender

import "context"

// K por defecto: los 3 juegos más parecidos, igual que la tabla recommends.
const DefaultK = 3

// Rating es una fila cruda de la colección de scores.
type Rating struct {
	UserID int
	GameID int
	Score  float64
}

// RatingVector: userId -> score para un juego concreto.
type RatingVector map[int]float64

// SimilarityPair es un candidato ya evaluado contra el juego objetivo.
type SimilarityPair struct {
	GameID int
	Sim    float64
}

// CatalogueGame es lo mínimo que el builder necesita del catálogo.
type CatalogueGame struct {
	GameID int
	Name   string
}

// El core no conoce Mongo: solo habla con estas tres interfaces.

type RatingStore interface {
	AllRatings(ctx context.Context) ([]Rating, error)
}

type GameCatalogue interface {
	AllGames(ctx context.Context) ([]CatalogueGame, error)
}

type RecommendStore interface {
	Insert(ctx context.Context, gameID, relatedGameID int, correlation float64) error
}

// BuildVectors arma los vectores por juego en un solo scan de los ratings.
// Como (userId, gameId) es clave única, el último valor visto gana.
func BuildVectors(ratings []Rating) map[int]RatingVector {
	vectors := make(map[int]RatingVector)
	for _, r := range ratings {
		v, ok := vectors[r.GameID]
		if !ok {
			v = make(RatingVector)
			vectors[r.GameID] = v
		}
		v[r.UserID] = r.Score
	}
	return vectors
}
