package redis

import (
	"context"
	"fmt"
	"time"

	redisclient "github.com/muhammadheryan/lead-crm/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

// Repository stores login sessions in Redis. Each session lives under
// session:<jti> and is indexed in user_sessions:<userID> so that every
// session of a user can be revoked at once.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	RevokeUserSessions(ctx context.Context, userID uint64) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// ErrNoClient is returned when the Redis client has not been initialized.
var ErrNoClient = fmt.Errorf("redis client not initialized")

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func userSessionsKey(userID uint64) string {
	return fmt.Sprintf("user_sessions:%d", userID)
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}

	_, err := client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(sessionID), userID, ttl)
		pipe.SAdd(ctx, userSessionsKey(userID), sessionID)
		pipe.Expire(ctx, userSessionsKey(userID), ttl)
		return nil
	})
	return err
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, ErrNoClient
	}
	return client.Get(ctx, sessionKey(sessionID)).Uint64()
}

// DeleteSession removes a single session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}

	userID, err := client.Get(ctx, sessionKey(sessionID)).Uint64()
	if err != nil && err != goredis.Nil {
		return err
	}

	_, err = client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(sessionID))
		if userID != 0 {
			pipe.SRem(ctx, userSessionsKey(userID), sessionID)
		}
		return nil
	})
	return err
}

// RevokeUserSessions removes every session issued to userID.
func (r *redis) RevokeUserSessions(ctx context.Context, userID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}

	sessionIDs, err := client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(sessionIDs)+1)
	for _, id := range sessionIDs {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userSessionsKey(userID))

	return client.Del(ctx, keys...).Err()
}
