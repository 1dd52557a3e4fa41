package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered player
type User struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	KizunaStars int       `json:"kizuna_stars"`
	CreatedAt   time.Time `json:"created_at"`
}
