package auth

import "context"

// Claims es lo que el proveedor de identidad externo nos dice del usuario.
// UserID identifica al criador dueño de los registros.
type Claims struct {
	UserID  string
	Email   string
	Cattery string
}

// AuthVerifier verifica un token y devuelve claims o error.
// La sesión y el login viven fuera de este servicio.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
