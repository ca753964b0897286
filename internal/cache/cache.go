// Package cache memoíza resultados de cálculo por identidade dos insumos.
// Cada métrica é função pura da entrada, então a chave é um hash do payload
// serializado e o valor nunca precisa ser invalidado por escrita, só expira.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Repository abstrai o backend de cache (redis em produção, memória nos
// testes).
type Repository interface {
	Obter(ctx context.Context, chave string) (string, bool)
	Definir(ctx context.Context, chave, valor string) error
}

// Chave deriva a chave de cache de um payload serializável: prefixo mais
// xxhash do JSON canônico.
func Chave(prefixo string, payload any) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%016x", prefixo, xxhash.Sum64(b)), nil
}
