package utils

import (
	"MediPoint/cache"
	"context"
	"time"
)

// RevokeToken puts the token's ID on the Redis denylist. The entry expires
// when the token itself would have, so the list never grows past the set of
// still-valid tokens.
func RevokeToken(ctx context.Context, claims *TokenClaims) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	ttl := time.Until(claims.Expiry)
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return cacheInstance.Set(ctx, "revoked_token:"+claims.TokenID, "1", ttl)
}

// IsTokenRevoked reports whether the token's ID is on the denylist.
func IsTokenRevoked(ctx context.Context, claims *TokenClaims) (bool, error) {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return false, err
	}
	return cacheInstance.Exists(ctx, "revoked_token:"+claims.TokenID)
}
