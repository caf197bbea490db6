package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/order のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/order")

	g.POST("/submit/:username", h.submit)
	g.GET("/history/:username", h.history)
}

func (h *OrderHandler) submit(c echo.Context) error {
	out, err := h.uc.SubmitOrder(c.Request().Context(), c.Param("username"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) history(c echo.Context) error {
	outs, err := h.uc.ListOrderHistory(c.Request().Context(), c.Param("username"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, outs)
}
