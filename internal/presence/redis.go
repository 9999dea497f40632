package presence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// NewRedisClient parses redisURL and verifies connectivity
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgRedisParseURL, redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgRedisPing, err)
	}
	return client, nil
}

// RedisStore keeps sessions in Redis so several engine instances behind
// one host share presence. Online ids live in a set, each session as a
// JSON string.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store using keys under prefix
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) onlineKey() string {
	return r.prefix + onlineSetKey
}

func (r *RedisStore) sessionKey(playerID string) string {
	return r.prefix + sessionKeyPrefix + playerID
}

// Connect marks the player online, replacing an existing session
func (r *RedisStore) Connect(ctx context.Context, session domain.PlayerSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeSession, err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, r.onlineKey(), session.PlayerID)
		pipe.Set(ctx, r.sessionKey(session.PlayerID), data, 0)
		return nil
	})
	return err
}

// Disconnect marks the player offline
func (r *RedisStore) Disconnect(ctx context.Context, playerID string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SRem(ctx, r.onlineKey(), playerID)
		pipe.Del(ctx, r.sessionKey(playerID))
		return nil
	})
	return err
}

// Session returns the player's session if online
func (r *RedisStore) Session(ctx context.Context, playerID string) (domain.PlayerSession, bool, error) {
	data, err := r.client.Get(ctx, r.sessionKey(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PlayerSession{}, false, nil
	}
	if err != nil {
		return domain.PlayerSession{}, false, err
	}
	var s domain.PlayerSession
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.PlayerSession{}, false, err
	}
	return s, true, nil
}

// OnlinePlayers returns all sessions ordered by player id. An id whose
// session document is missing is still reported, without permissions.
func (r *RedisStore) OnlinePlayers(ctx context.Context) ([]domain.PlayerSession, error) {
	ids, err := r.client.SMembers(ctx, r.onlineKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.PlayerSession{}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.sessionKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make([]domain.PlayerSession, 0, len(ids))
	for i, id := range ids {
		s := domain.PlayerSession{PlayerID: id}
		if raw, ok := values[i].(string); ok {
			if err := json.Unmarshal([]byte(raw), &s); err != nil {
				logger.FromContext(ctx).Warn(LogMsgSessionDecode, "player_id", id, "error", err)
				s = domain.PlayerSession{PlayerID: id}
			}
		}
		out = append(out, s)
	}
	return out, nil
}

// HasPermission checks the permissions granted at connect. Offline players
// hold no permissions.
func (r *RedisStore) HasPermission(ctx context.Context, playerID, node string) (bool, error) {
	s, ok, err := r.Session(ctx, playerID)
	if err != nil || !ok {
		return false, err
	}
	return s.HasPermission(node), nil
}

// Close closes the Redis client
func (r *RedisStore) Close() error {
	return r.client.Close()
}
