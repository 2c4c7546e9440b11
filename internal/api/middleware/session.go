package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
)

type contextKey string

const (
	// SessionHeader заголовок с ключом сессии корзины
	SessionHeader = "X-Session-ID"

	sessionIDKey contextKey = "session_id"

	maxSessionIDLength = 128

	msgMissingSession = "отсутствует заголовок X-Session-ID"
	msgInvalidSession = "некорректный X-Session-ID"
)

// Session кладёт ключ сессии из заголовка X-Session-ID в контекст запроса
// Запросы без заголовка получают 401
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(SessionHeader))
		if sessionID == "" {
			handlers.RespondUnauthorized(w, msgMissingSession)
			return
		}
		if len(sessionID) > maxSessionIDLength {
			handlers.RespondBadRequest(w, msgInvalidSession)
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID достаёт ключ сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}

// WithSessionID кладёт ключ сессии в контекст
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}
