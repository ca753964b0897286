package cache

import (
	"context"
	"sync"
)

// CacheMemoria é a implementação em memória usada em testes e quando o
// redis não está configurado.
type CacheMemoria struct {
	mu      sync.RWMutex
	valores map[string]string
}

func NewCacheMemoria() *CacheMemoria {
	return &CacheMemoria{valores: make(map[string]string)}
}

func (c *CacheMemoria) Obter(ctx context.Context, chave string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	valor, ok := c.valores[chave]
	return valor, ok
}

func (c *CacheMemoria) Definir(ctx context.Context, chave, valor string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valores[chave] = valor
	return nil
}
