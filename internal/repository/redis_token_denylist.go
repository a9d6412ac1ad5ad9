package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const denylistKeyPrefix = "revoked_token:"

var _ TokenDenylist = (*redisTokenDenylist)(nil)

type redisTokenDenylist struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisTokenDenylist(client *redis.Client, logger *zap.Logger) TokenDenylist {
	return &redisTokenDenylist{client: client, logger: logger.Named("RedisTokenDenylist")}
}

// Revoke marks a token id as unusable until the token would have expired
// anyway. A non-positive ttl means the token is already expired and there is
// nothing to record.
func (d *redisTokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, denylistKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		d.logger.Error("Failed to revoke token", zap.String("tokenID", tokenID), zap.Error(err))
		return fmt.Errorf("redis error revoking token: %w", err)
	}
	return nil
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, err := d.client.Get(ctx, denylistKeyPrefix+tokenID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		d.logger.Error("Failed to check token revocation", zap.String("tokenID", tokenID), zap.Error(err))
		return false, fmt.Errorf("redis error checking token: %w", err)
	}
	return true, nil
}
