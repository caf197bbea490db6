package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /api/item の公開API
type ItemHandler struct {
	uc *usecase.ItemUsecase
}

// DI
func NewItemHandler(uc *usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// 商品カタログのルートを登録
func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/item")

	g.GET("", h.list)
	g.GET("/:id", h.getByID)
	g.GET("/name/:name", h.getByName)
}

func (h *ItemHandler) list(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) getByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	item, err := h.uc.GetItemByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) getByName(c echo.Context) error {
	// 商品名は空白を含むのでパスパラメータをデコードする
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid name"})
	}

	items, err := h.uc.FindItemsByName(c.Request().Context(), name)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}
