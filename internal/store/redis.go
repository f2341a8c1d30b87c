package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nstore-core/server/internal/catalog/model"
	errx "github.com/nstore-core/server/internal/core/error"
	logx "github.com/nstore-core/server/pkg/logger"
)

// RedisConfig describes the Redis connection, sourced from the environment.
// An empty URL means "run without Redis"; the caller falls back to the
// memory store.
type RedisConfig struct {
	URL          string `split_words:"true"`
	ReadTimeout  int    `split_words:"true" default:"3"`
	WriteTimeout int    `split_words:"true" default:"3"`
	DialTimeout  int    `split_words:"true" default:"5"`
}

// New builds and pings a Redis client from the config.
func (c *RedisConfig) New() (*redis.Client, error) {
	opts, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, err
	}

	opts.ReadTimeout = time.Duration(c.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(c.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(c.DialTimeout) * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// Redis persists each collection as a JSON value under its own key.
type Redis struct {
	rdb redis.Cmdable
}

func NewRedis(rdb redis.Cmdable) *Redis {
	return &Redis{rdb: rdb}
}

// loadJSON reads and unmarshals a key into out. A missing key or a corrupt
// value both leave out untouched and report absent=false stored data: the
// caller falls back to its default. Corruption is logged, never fatal.
func (r *Redis) loadJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load from redis")
		return false, errx.WrapRedis(err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("corrupt value in redis, falling back to default")
		return false, nil
	}
	return true, nil
}

func (r *Redis) saveJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to marshal value")
		return err
	}
	if err := r.rdb.Set(ctx, key, b, 0).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *Redis) LoadProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if ok, err := r.loadJSON(ctx, KeyProducts, &products); !ok {
		return nil, err
	}
	return products, nil
}

func (r *Redis) SaveProducts(ctx context.Context, products []model.Product) error {
	return r.saveJSON(ctx, KeyProducts, products)
}

func (r *Redis) LoadApplications(ctx context.Context) ([]model.VendorApplication, error) {
	var apps []model.VendorApplication
	if ok, err := r.loadJSON(ctx, KeyApplications, &apps); !ok {
		return nil, err
	}
	return apps, nil
}

func (r *Redis) SaveApplications(ctx context.Context, apps []model.VendorApplication) error {
	return r.saveJSON(ctx, KeyApplications, apps)
}

func (r *Redis) LoadCart(ctx context.Context) ([]model.CartItem, error) {
	var items []model.CartItem
	if ok, err := r.loadJSON(ctx, KeyCart, &items); !ok {
		return nil, err
	}
	return items, nil
}

func (r *Redis) SaveCart(ctx context.Context, items []model.CartItem) error {
	return r.saveJSON(ctx, KeyCart, items)
}

func (r *Redis) LoadUser(ctx context.Context) (*model.UserProfile, error) {
	var user model.UserProfile
	ok, err := r.loadJSON(ctx, KeyUser, &user)
	if !ok {
		return nil, err
	}
	return &user, nil
}

func (r *Redis) SaveUser(ctx context.Context, user model.UserProfile) error {
	return r.saveJSON(ctx, KeyUser, user)
}

func (r *Redis) ClearUser(ctx context.Context) error {
	if err := r.rdb.Del(ctx, KeyUser).Err(); err != nil {
		logx.Error().Err(err).Str("key", KeyUser).Msg("failed to delete from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ Store = (*Redis)(nil)
