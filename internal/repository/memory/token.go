package memory

import (
	"context"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/repository"
)

type tokenRepository struct {
	s *Store
}

func NewTokenRepository(s *Store) repository.TokenRepository {
	return &tokenRepository{s: s}
}

func (r *tokenRepository) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	r.s.revoked[jti] = r.s.now().Add(ttl)
	return nil
}

func (r *tokenRepository) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	until, ok := r.s.revoked[jti]
	if !ok {
		return false, nil
	}
	return r.s.now().Before(until), nil
}
