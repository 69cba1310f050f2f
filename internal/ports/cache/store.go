package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss indica que la clave no está (o expiró).
var ErrMiss = errors.New("cache miss")

// Store es un key/value de bytes con TTL. Es un colaborador externo: nunca es
// la fuente de verdad.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
