package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxLojistaID ctxKey = "lojistaID"
	CtxIsAdmin   ctxKey = "isAdmin"
)

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
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxLojistaID, claims.LojistaID)
		ctx = context.WithValue(ctx, CtxIsAdmin, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Context().Value(CtxIsAdmin)
		if ok, _ := v.(bool); !ok {
			http.Error(w, "Forbidden (admin only)", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LojistaIDDoContexto extrai o id do lojista autenticado.
func LojistaIDDoContexto(r *http.Request) string {
	v, _ := r.Context().Value(CtxLojistaID).(string)
	return v
}

// IsAdminDoContexto indica se a requisição é do canal administrativo.
func IsAdminDoContexto(r *http.Request) bool {
	v, _ := r.Context().Value(CtxIsAdmin).(bool)
	return v
}
