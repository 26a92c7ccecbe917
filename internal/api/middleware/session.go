// Package middleware содержит HTTP middleware сервиса
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// HeaderSessionID заголовок с идентификатором сессии пациента
const HeaderSessionID = "X-Session-ID"

type contextKey string

const sessionIDKey contextKey = "sessionID"

// Session требует заголовок X-Session-ID и кладёт его значение в контекст.
// Сессия связывает показанные слоты с последующим бронированием.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(HeaderSessionID)
		if sessionID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "заголовок " + HeaderSessionID + " обязателен",
			})
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID возвращает идентификатор сессии из контекста
func SessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok
}
