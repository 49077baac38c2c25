package middleware

import (
	"context"
	"net/http"
	"strings"

	"roulette_bot/pkg/resp"
	"roulette_bot/pkg/token"
)

type ctxKey struct{}

// WithSessionID кладёт идентификатор сессии в контекст
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionIDFromContext достаёт идентификатор сессии, положенный Auth
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Auth проверяет токен чат-моста и привязывает запрос к сессии из subject.
// Токен берётся из заголовка Authorization: Bearer, а для websocket
// из query параметра access_token.
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing access token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), claims.Subject)))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if t, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(t)
		}
		return ""
	}
	return r.URL.Query().Get("access_token")
}
