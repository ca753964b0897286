package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL padrão das entradas: os insumos mudam quando o imóvel é editado, e a
// chave muda junto, então a expiração só limita o crescimento do keyspace.
const ttlPadrao = time.Hour

// RedisCache implementa Repository sobre redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttlPadrao,
	}
}

func (c *RedisCache) Obter(ctx context.Context, chave string) (string, bool) {
	valor, err := c.client.Get(ctx, chave).Result()
	if err != nil {
		return "", false
	}
	return valor, true
}

func (c *RedisCache) Definir(ctx context.Context, chave, valor string) error {
	return c.client.Set(ctx, chave, valor, c.ttl).Err()
}
