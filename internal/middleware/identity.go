package middleware

import (
	"context"
	"log/slog"
	"net/http"

	portsrepo "github.com/agencypulse/backend/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityMiddleware resolves the caller from the access proxy's
// identity assertion header and auto-provisions the founder record on
// first sight.
//
// The assertion is parsed WITHOUT signature verification: the deployment
// trusts the fronting proxy to have authenticated the caller, and the
// engine never re-validates. This is an explicit trust boundary: the
// service must not be reachable except through the proxy.
// TODO: fetch the proxy's public certs and verify the signature so a
// direct hit on the origin cannot forge an identity.
func IdentityMiddleware(headerName string, founders portsrepo.FounderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		assertion := c.GetHeader(headerName)
		if assertion == "" {
			logger.Warn("Identity assertion header missing", slog.String("header", headerName))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing identity assertion"})
			return
		}

		token, _, err := new(jwt.Parser).ParseUnverified(assertion, jwt.MapClaims{})
		if err != nil {
			logger.Warn("Identity assertion unparseable", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid identity assertion"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid identity assertion claims"})
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		if sub == "" || email == "" {
			logger.Warn("Identity assertion missing subject or email claim")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Incomplete identity assertion"})
			return
		}

		if err := founders.EnsureFounder(c.Request.Context(), sub, email); err != nil {
			logger.Error("Failed to provision founder", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}

		enrichedLogger := logger.With(slog.String("founder_id", sub))
		ctx := context.WithValue(c.Request.Context(), founderIDKey, sub)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
