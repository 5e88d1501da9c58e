package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"lifeline/config"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// validateIDToken is swapped in tests.
var validateIDToken = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
	return idtoken.Validate(ctx, token, audience)
}

// OIDCMiddleware checks the Google-signed ID token that Cloud Scheduler and
// Pub/Sub push subscriptions attach to their requests.
type OIDCMiddleware struct {
	enabled  bool
	audience string
	logger   *slog.Logger
}

// NewOIDCMiddleware creates the trigger authentication middleware
func NewOIDCMiddleware(cfg *config.Config, logger *slog.Logger) *OIDCMiddleware {
	m := &OIDCMiddleware{logger: logger}
	if cfg.Scheduler != nil {
		m.enabled = cfg.Scheduler.VerifyToken
		m.audience = cfg.Scheduler.Audience
	}

	return m
}

// Verify rejects requests without a valid token. It passes everything
// through when verification is disabled.
func (m *OIDCMiddleware) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		if err := VerifyGoogleToken(c.Request(), m.audience); err != nil {
			m.logger.WarnContext(c.Request().Context(), "Invalid trigger token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}

		return next(c)
	}
}

// VerifyGoogleToken verifies the bearer token of req. An empty audience
// means the URL of the endpoint itself.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func VerifyGoogleToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil && req.Header.Get("X-Forwarded-Proto") != "https" {
			scheme = "http" // For local development
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := validateIDToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
