package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/etherspot/arka-sub001/pkg/app/errors"
	apphttp "github.com/etherspot/arka-sub001/pkg/app/http"
)

// RequireAdmin rejects requests without a valid bearer token and stores the token subject in the
// request context.
func RequireAdmin(v TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(ErrMissingToken, "missing bearer token"))
				return
			}

			claims, err := v.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Info("Admin token rejected", zap.String("path", r.URL.Path), zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
				return
			}

			sub, _ := claims.GetSubject()
			next.ServeHTTP(w, r.WithContext(WithAdminSubject(r.Context(), sub)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(h[len(prefix):])
	return token, token != ""
}
