package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/identity"
)

const (
	claimsContextKey = "authClaims"
	actorContextKey  = "authActor"
)

// AuthMiddleware verifies the bearer token on every request and stores the
// claims and the resolved actor on the echo context. The actor is resolved
// exactly once here; handlers downstream never deal with missing names.
func AuthMiddleware(verifier *identity.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			auth := ctx.Request().Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims, err := verifier.VerifyToken(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(claimsContextKey, claims)
			ctx.Set(actorContextKey, kernel.ResolveActor(claims.DisplayName, claims.Username))
			return next(ctx)
		}
	}
}

// RequireManager rejects requests whose token does not carry the Manager
// role. It must run after AuthMiddleware.
func RequireManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims := claimsFrom(ctx)
			if claims == nil || claims.Role != user.RoleManager {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "Manager role required",
				})
			}
			return next(ctx)
		}
	}
}

// RequestLogger logs one line per request with a generated request id,
// method, path, status, and latency.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			requestID := uuid.NewString()
			ctx.Response().Header().Set(echo.HeaderXRequestID, requestID)

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			logger.InfoContext(ctx.Request().Context(), "request",
				"requestId", requestID,
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"status", ctx.Response().Status,
				"duration", time.Since(start),
			)
			return err
		}
	}
}

func claimsFrom(ctx echo.Context) *identity.Claims {
	claims, _ := ctx.Get(claimsContextKey).(*identity.Claims)
	return claims
}

func actorFrom(ctx echo.Context) kernel.Actor {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.ResolveActor("", "")
	}
	return actor
}
