package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/numberguess/internal/model"
	"github.com/mcoot/numberguess/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Durability follows the server's persistence settings (AOF/RDB).
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New connects to Redis and verifies the connection
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultConfig().KeyPrefix
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// NextPlayerID uses INCR so concurrent allocators never observe the same value
func (s *Storage) NextPlayerID(ctx context.Context) (model.PlayerID, error) {
	next, err := s.client.Incr(ctx, s.counterKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("increment id counter: %w", err)
	}
	return model.PlayerID(next - 1), nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := storage.EncodePlayer(player)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.playerKey(player.ID), data, 0).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, s.playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return storage.DecodePlayer(data)
}

// DeletePlayer reads and removes the record in one GETDEL round trip
func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.GetDel(ctx, s.playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return storage.DecodePlayer(data)
}
