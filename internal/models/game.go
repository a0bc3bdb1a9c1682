package models

// RatingStats se mantiene al día con cada upsert de score.
type RatingStats struct {
	Average     float64 `json:"average" bson:"average"`
	Count       int     `json:"count" bson:"count"`
	LastRatedAt string  `json:"lastRatedAt,omitempty" bson:"lastRatedAt,omitempty"`
}

// GameDoc es el documento de la colección games.
type GameDoc struct {
	GameID       int          `json:"gameId" bson:"gameId"`
	Name         string       `json:"name" bson:"name"`
	NameEn       string       `json:"nameEn,omitempty" bson:"nameEn,omitempty"`
	Genre        string       `json:"genre,omitempty" bson:"genre,omitempty"`
	Producer     string       `json:"producer,omitempty" bson:"producer,omitempty"`
	Publisher    string       `json:"publisher,omitempty" bson:"publisher,omitempty"`
	ReleaseDate  string       `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	Introduction string       `json:"introduction,omitempty" bson:"introduction,omitempty"`
	Cover        string       `json:"cover,omitempty" bson:"cover,omitempty"`
	RatingStats  *RatingStats `json:"ratingStats,omitempty" bson:"ratingStats,omitempty"`
	CreatedAt    string       `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string       `json:"updatedAt" bson:"updatedAt"`
}

// Payload para crear un juego (admin o aprobación de un game request).
type GameCreateRequest struct {
	Name         string `json:"name"` // obligatorio
	NameEn       string `json:"nameEn,omitempty"`
	Genre        string `json:"genre,omitempty"`
	Producer     string `json:"producer,omitempty"`
	Publisher    string `json:"publisher,omitempty"`
	ReleaseDate  string `json:"releaseDate,omitempty"`
	Introduction string `json:"introduction,omitempty"`
	Cover        string `json:"cover,omitempty"`
}

// Payload para actualización parcial de un juego.
type GameUpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	NameEn       *string `json:"nameEn,omitempty"`
	Genre        *string `json:"genre,omitempty"`
	Producer     *string `json:"producer,omitempty"`
	Publisher    *string `json:"publisher,omitempty"`
	ReleaseDate  *string `json:"releaseDate,omitempty"`
	Introduction *string `json:"introduction,omitempty"`
	Cover        *string `json:"cover,omitempty"`
}
