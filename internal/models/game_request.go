package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados posibles de un game request.
const (
	GameRequestStatusPending  = "pending"
	GameRequestStatusApproved = "approved"
	GameRequestStatusRejected = "rejected"
)

// GameRequest: un usuario propone un juego para el catálogo y un admin
// lo aprueba (creando el juego) o lo rechaza con motivo.
type GameRequest struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         int                `json:"userId" bson:"userId"`
	Status         string             `json:"status" bson:"status"` // pending|approved|rejected
	Game           GameCreateRequest  `json:"game" bson:"game"`
	ApprovedGameID *int               `json:"approvedGameId,omitempty" bson:"approvedGameId,omitempty"`
	Reason         string             `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Body para rechazar un game request.
type RejectGameRequest struct {
	Reason string `json:"reason"`
}
