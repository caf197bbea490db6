package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestLogger はリクエスト/レスポンスを1行ずつ記録するミドルウェア。
// リクエストIDを採番してレスポンスヘッダにも返す。
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := uuid.NewString()
			c.Response().Header().Set(echo.HeaderXRequestID, reqID)

			req := c.Request()
			logger.Info("request",
				"request_id", reqID,
				"method", req.Method,
				"path", req.URL.Path,
			)

			start := time.Now()

			err := next(c)
			if err != nil {
				// ステータスを確定させてからログに出す
				c.Error(err)
			}

			logger.Info("response",
				"request_id", reqID,
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			return err
		}
	}
}
