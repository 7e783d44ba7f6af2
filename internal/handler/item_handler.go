package handler

import (
	"net/http"
	"strconv"

	"swadwala/internal/config"
	"swadwala/internal/domain/model"
	"swadwala/internal/middleware"
	"swadwala/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	uc       *usecase.ItemUsecase
	uploader ImageUploader
}

func NewItemHandler(uc *usecase.ItemUsecase, uploader ImageUploader) *ItemHandler {
	return &ItemHandler{uc: uc, uploader: uploader}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/item")

	g.GET("/shop/:shopId", h.byShop)

	auth := middleware.AuthJWT(cfg)
	g.POST("/create", h.create, auth)
	g.POST("/edit/:itemId", h.edit, auth)
	g.DELETE("/delete/:itemId", h.delete, auth)
}

func (h *ItemHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized"})
	}

	shopID, _ := strconv.ParseInt(c.FormValue("shopId"), 10, 64)

	var price int64
	if v := c.FormValue("price"); v != "" {
		p, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid price"})
		}
		price = p
	}

	image, err := resolveImage(c, h.uploader, "items")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "image upload failed"})
	}

	item, err := h.uc.CreateItem(c.Request().Context(), userID, usecase.CreateItemInput{
		Name:     c.FormValue("name"),
		Price:    price,
		Category: model.ItemCategory(c.FormValue("category")),
		FoodType: model.FoodType(c.FormValue("foodType")),
		ShopID:   shopID,
		Image:    image,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Item created successfully",
		"item":    item,
	})
}

func (h *ItemHandler) edit(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized"})
	}

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid item id"})
	}

	in := usecase.EditItemInput{
		Name:     c.FormValue("name"),
		Category: model.ItemCategory(c.FormValue("category")),
		FoodType: model.FoodType(c.FormValue("foodType")),
	}

	if v := c.FormValue("price"); v != "" {
		p, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid price"})
		}
		in.Price = &p
	}
	if v := c.FormValue("isAvailable"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid isAvailable"})
		}
		in.IsAvailable = &b
	}

	image, err := resolveImage(c, h.uploader, "items")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "image upload failed"})
	}
	in.Image = image

	item, err := h.uc.EditItem(c.Request().Context(), userID, itemID, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Item updated successfully",
		"item":    item,
	})
}

func (h *ItemHandler) delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized"})
	}

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid item id"})
	}

	if err := h.uc.DeleteItem(c.Request().Context(), userID, itemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

func (h *ItemHandler) byShop(c echo.Context) error {
	shopID, err := strconv.ParseInt(c.Param("shopId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid shop id"})
	}

	items, err := h.uc.GetShopItems(c.Request().Context(), shopID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
