package models

// ScoreDoc es una fila de la colección scores.
// (userId, gameId) tiene índice único: un score por usuario por juego.
// El valor es un entero par entre 0 y 10 (el front muestra 5 estrellas).
type ScoreDoc struct {
	UserID    int   `json:"userId" bson:"userId"`
	GameID    int   `json:"gameId" bson:"gameId"`
	Score     int   `json:"score" bson:"score"`
	Timestamp int64 `json:"timestamp" bson:"timestamp"`
}
