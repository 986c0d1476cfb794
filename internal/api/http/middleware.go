package http

import (
	"context"
	"net/http"
	"strings"

	"handmeup-backend/internal/config"
	"handmeup-backend/internal/logger"
	"handmeup-backend/internal/security"

	"github.com/gorilla/mux"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// AccountID extracts the authenticated account id from the request
// context. Empty on public routes.
func AccountID(ctx context.Context) string {
	id, _ := ctx.Value(accountIDKey).(string)
	return id
}

// ContextWithAccountID returns a context carrying the account id, as the
// auth middleware would set it.
func ContextWithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// AuthMiddleware enforces the per-route security level and stores the
// authenticated account id in the request context.
func AuthMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := routeKey(r)
			level := config.GetSecurityLevel(route)
			if level == config.SecurityPublic {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := bearerToken(r)
			if tokenString == "" {
				writeJSON(w, http.StatusUnauthorized, errorBody{Detail: "missing authorization token"})
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				writeError(w, err)
				return
			}

			switch level {
			case config.SecurityRefresh:
				if claims.Type != security.TokenTypeRefresh {
					writeError(w, security.ErrWrongTokenType)
					return
				}
			case config.SecurityAccess:
				if claims.Type != security.TokenTypeAccess {
					writeError(w, security.ErrWrongTokenType)
					return
				}
			}

			ctx := context.WithValue(r.Context(), accountIDKey, claims.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware logs each request with method and route
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("http request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func routeKey(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return r.Method + " " + tmpl
		}
	}
	return r.Method + " " + r.URL.Path
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
