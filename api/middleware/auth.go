package middleware

import (
	"context"
	"net/http"

	"github.com/angelmondragon/lojavirtual-backend/api/responses"
	"github.com/angelmondragon/lojavirtual-backend/api/validators"
	authsvc "github.com/angelmondragon/lojavirtual-backend/internal/auth"
	pkgerrors "github.com/angelmondragon/lojavirtual-backend/pkg/errors"
	"github.com/angelmondragon/lojavirtual-backend/pkg/logger"
)

// TokenVerifier resolves a bearer token to the acting user id.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (int64, error)
}

// Auth validates the bearer token and seeds the request context with the user id.
func Auth(verifier TokenVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := validators.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, authsvc.MsgMissingToken))
				return
			}

			userID, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
					err = pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, authsvc.MsgInvalidToken)
				}
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, userID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
