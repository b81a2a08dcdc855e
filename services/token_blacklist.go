package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenBlacklist invalidates tokens before their natural expiry
// (logout, refresh rotation). Entries live exactly as long as the token would.
type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance; nil when REDIS_URL is unset, in
// which case blacklisting is a no-op and tokens expire naturally.
var TokenBlacklist *RedisTokenBlacklist

// NewTokenBlacklist connects a redis-backed blacklist.
func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

func (tb *RedisTokenBlacklist) Close() error {
	return tb.Client.Close()
}

// BlacklistTokens invalidates an access/refresh pair. Either argument may be
// empty. Without a configured blacklist this is a no-op.
func BlacklistTokens(accessToken, refreshToken string) error {
	if TokenBlacklist == nil {
		return nil
	}
	if accessToken != "" {
		if err := TokenBlacklist.blacklist(accessToken); err != nil {
			return fmt.Errorf("failed to blacklist access token: %w", err)
		}
	}
	if refreshToken != "" {
		if err := TokenBlacklist.blacklist(refreshToken); err != nil {
			return fmt.Errorf("failed to blacklist refresh token: %w", err)
		}
	}
	return nil
}

// IsTokenBlacklisted reports whether a token was invalidated. Fails open when
// no blacklist is configured.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	exists, err := TokenBlacklist.Client.Exists(ctx, blacklistKey(tokenString)).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

func (tb *RedisTokenBlacklist) blacklist(tokenString string) error {
	expiry, err := TokenExpiry(tokenString)
	if err != nil {
		// Unparseable tokens cannot authenticate anyway
		return nil
	}

	ttl := time.Until(expiry)
	if ttl <= 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return tb.Client.Set(ctx, blacklistKey(tokenString), "revoked", ttl).Err()
}

func blacklistKey(tokenString string) string {
	return "blacklist:" + tokenString
}
