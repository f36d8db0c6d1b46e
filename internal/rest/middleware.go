package rest

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/daniilsolovey/news-cms/internal/newsportal"
)

// TokenCookie carries the editor token for browser previews.
const TokenCookie = "news_token"

// Authenticate puts the staff matching the bearer token or token cookie into the request context.
func (h *NewsHandler) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if staff := h.auth.Authenticate(requestToken(c)); staff != nil {
				ctx := newsportal.NewStaffContext(c.Request().Context(), staff)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

func requestToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

func (h *NewsHandler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelError
			}

			h.log.LogAttrs(c.Request().Context(), level, "HTTP request",
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Int64("duration_ms", v.Latency.Milliseconds()),
				slog.String("remote_addr", v.RemoteIP),
				slog.Any("error", v.Error),
			)
			return nil
		},
	})
}
