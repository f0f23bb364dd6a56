package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key the middleware stores the
// resolved actor under.
const actorContextKey = "gelsin.actor"

// Auth issues and verifies the bearer tokens of the HTTP surface.
// Tokens are HS256 JWTs with the user id as subject and the role as a
// custom claim; the verified pair is all an engine operation needs to
// build its Actor.
type Auth struct {
	secret []byte
	expiry time.Duration
}

// NewAuth creates the token authority from the configured secret and
// token lifetime.
func NewAuth(secret string, expiry time.Duration) Auth {
	return Auth{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// tokenClaims are the JWT claims carried by a bearer token.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// IssueToken creates a signed bearer token for an authenticated user.
func (a Auth) IssueToken(userID int64, role account.Role) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expiry)),
		},
		Role: role.String(),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// resolveActor verifies a bearer token and reconstructs the Actor it was
// issued for. Any verification failure maps to ErrAuthenticationRequired.
func (a Auth) resolveActor(tokenString string) (account.Actor, error) {
	claims := tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return account.Actor{}, errs.ErrAuthenticationRequired
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return account.Actor{}, errs.ErrAuthenticationRequired
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return account.Actor{}, errs.ErrAuthenticationRequired
	}

	actor, err := account.NewActor(userID, role)
	if err != nil {
		return account.Actor{}, errs.ErrAuthenticationRequired
	}

	return actor, nil
}

// Middleware resolves the Authorization header into an Actor and stores
// it on the request context. Requests without a token pass through
// unauthenticated; handlers that need an actor reject them individually,
// so public routes need no skipper list.
func (a Auth) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return unauthorized(ctx)
			}

			actor, err := a.resolveActor(tokenString)
			if err != nil {
				return unauthorized(ctx)
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFrom returns the actor the middleware resolved for this request.
func actorFrom(ctx echo.Context) (account.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(account.Actor)
	return actor, ok
}
