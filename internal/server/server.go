package server

import (
	"log/slog"

	"app/internal/handler"
	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New は全ルートとミドルウェアを登録したechoを返す。
func New(
	logger *slog.Logger,
	userH *handler.UserHandler,
	itemH *handler.ItemHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(appmw.RequestLogger(logger))
	e.Use(echomw.Recover())

	userH.RegisterRoutes(e)
	itemH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
