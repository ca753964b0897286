package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxInvestidorID ctxKey = "investidorID"
	CtxAdmin        ctxKey = "admin"
)

// MiddlewareAutenticacao exige Bearer token válido e injeta o investidor no
// contexto da requisição.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		claims, err := ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxInvestidorID, claims.InvestidorID)
		ctx = context.WithValue(ctx, CtxAdmin, claims.Admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExigirAdmin bloqueia a rota para quem não tem a claim de admin.
func ExigirAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ok, _ := r.Context().Value(CtxAdmin).(bool); !ok {
			http.Error(w, "Acesso restrito a administradores", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
