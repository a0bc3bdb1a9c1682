package models

// RecommendDoc es una fila de la colección recommends: para cada juego se
// guardan como máximo 3 filas (sus vecinos más parecidos).
type RecommendDoc struct {
	GameID        int     `json:"gameId" bson:"gameId"`
	RelatedGameID int     `json:"relatedGameId" bson:"relatedGameId"`
	Correlation   float64 `json:"correlation" bson:"correlation"`
	UpdatedAt     string  `json:"updatedAt" bson:"updatedAt"`
}

// SimilarGame es lo que devuelve la API: la fila ya unida con el juego.
type SimilarGame struct {
	Game        GameDoc `json:"game"`
	Correlation float64 `json:"correlation"`
}

// RecommendSummary es el resumen para el panel admin.
type RecommendSummary struct {
	TotalGames        int64 `json:"totalGames"`
	GamesWithRecs     int64 `json:"gamesWithRecs"`
	GamesWithoutRecs  int64 `json:"gamesWithoutRecs"`
	RecommendRows     int64 `json:"recommendRows"`
	GamesWithAnyScore int64 `json:"gamesWithAnyScore"`
}

// RebuildRequest es el body del endpoint admin de rebuild.
type RebuildRequest struct {
	K           int  `json:"k"`
	Workers     int  `json:"workers"`
	Distributed bool `json:"distributed"`
}
