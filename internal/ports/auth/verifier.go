package auth

import "context"

// AuthVerifier valida un bearer token y resuelve el dueño.
// Cualquier error se responde 401; el caller no distingue la causa.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
