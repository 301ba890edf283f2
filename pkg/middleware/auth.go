package middleware

import (
	"errors"
	"net/http"
	"strings"

	"marketplace/pkg/apperr"
	"marketplace/pkg/security"
	"marketplace/pkg/utils"

	"go.uber.org/zap"
)

// TokenVerifier is the part of the token service the guard needs.
type TokenVerifier interface {
	Verify(token string) (*security.Claims, error)
}

// Auth rejects requests without a bearer token (401) or with a token that does
// not verify (403). On success the caller's identity is stored in the request
// context for utils.IdentityFromContext.
func Auth(tokens TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				utils.ResponseError(w, apperr.ErrUnauthenticated.Status(), apperr.ErrUnauthenticated.Message)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				var appErr *apperr.Error
				if !errors.As(err, &appErr) {
					appErr = apperr.ErrInvalidToken
				}
				logger.Warn("Rejected token",
					zap.String("path", r.URL.Path),
					zap.String("reason", appErr.Code))
				utils.ResponseError(w, appErr.Status(), appErr.Message)
				return
			}

			ctx := utils.SetIdentity(r.Context(), utils.Identity{
				UserID:   claims.UserID,
				IsSeller: claims.IsSeller,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken returns the second space separated part of an
// "Authorization: Bearer <token>" header, or "" when there is none.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
