package auth

import "time"

// Claims identifica al dueño autenticado. ExpiresAt es cero en modo dev.
type Claims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}
