package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"rent-ledger-backend/internal/config"
	"rent-ledger-backend/internal/logger"
	"rent-ledger-backend/internal/security"
)

// AuthMiddleware validates the bearer token on every route whose security
// level requires one and puts the owner on the request context.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		routeName := ""
		if route := mux.CurrentRoute(r); route != nil {
			routeName = route.GetName()
		}

		if config.GetSecurityLevel(routeName) == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}

		claims, err := m.tokenManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Rejected bearer token", "route", routeName, "error", err)
			writeMessage(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), claims.Owner())))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		header = header[7:]
	}
	header = strings.TrimSpace(header)
	return header, header != ""
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs each request with method, path, status and duration.
func RequestLogger(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)),
			}
			if owner, ok := OwnerFromContext(r.Context()); ok {
				attrs = append(attrs, slog.String("owner_id", owner.ID))
			}

			switch {
			case rec.status >= 500:
				logger.LogAttrs(r.Context(), slog.LevelError, "request", attrs...)
			case rec.status >= 400:
				logger.LogAttrs(r.Context(), slog.LevelWarn, "request", attrs...)
			default:
				logger.LogAttrs(r.Context(), slog.LevelInfo, "request", attrs...)
			}
		})
	}
}
