package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cakery/internal/pkg/token"
)

// identityContextKey is where the guard stores the verified identity in the
// echo context.
const identityContextKey = "identity"

// TokenVerifier checks a raw bearer token and returns the identity it
// embeds.
type TokenVerifier interface {
	Verify(raw string) (token.Identity, error)
}

// AuthGuard gates protected routes on a valid bearer token. A missing token
// and a bad token get distinct messages; beyond that no detail about why
// verification failed is leaked.
func AuthGuard(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw := strings.TrimPrefix(ctx.Request().Header.Get("Authorization"), "Bearer ")
			if raw == "" {
				return ctx.JSON(http.StatusUnauthorized, envelope{
					Success: false,
					Message: "No token, access denied",
				})
			}

			identity, err := tokens.Verify(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, envelope{
					Success: false,
					Message: "Token is not valid",
				})
			}

			ctx.Set(identityContextKey, identity)
			return next(ctx)
		}
	}
}

// IdentityFromContext returns the identity the guard attached, if any.
func IdentityFromContext(ctx echo.Context) (token.Identity, bool) {
	identity, ok := ctx.Get(identityContextKey).(token.Identity)
	return identity, ok
}
