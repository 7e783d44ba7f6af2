package handler

import (
	"net/http"
	"strconv"

	"swadwala/internal/config"
	"swadwala/internal/middleware"
	"swadwala/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ShopHandler struct {
	uc       *usecase.ShopUsecase
	uploader ImageUploader
}

func NewShopHandler(uc *usecase.ShopUsecase, uploader ImageUploader) *ShopHandler {
	return &ShopHandler{uc: uc, uploader: uploader}
}

func (h *ShopHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/shop")

	// discovery endpoints are public
	g.GET("/city", h.byCity)
	g.GET("/state", h.byState)
	g.GET("/nearby", h.nearby)

	auth := middleware.AuthJWT(cfg)
	g.POST("", h.create, auth)
	g.PUT("/:shopId", h.edit, auth)
	g.GET("/my", h.myShop, auth)
}

func (h *ShopHandler) byCity(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid limit"})
	}

	out, err := h.uc.FindByCity(c.Request().Context(), c.QueryParam("city"), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShopHandler) byState(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid limit"})
	}

	out, err := h.uc.FindByState(c.Request().Context(), c.QueryParam("state"), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShopHandler) nearby(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid limit"})
	}

	var lat, lng *float64
	if v := c.QueryParam("lat"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid lat"})
		}
		lat = &f
	}
	if v := c.QueryParam("lng"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid lng"})
		}
		lng = &f
	}

	out, err := h.uc.FindNearby(c.Request().Context(), lat, lng, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ShopHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized"})
	}

	image, err := resolveImage(c, h.uploader, "shops")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "image upload failed"})
	}

	in := usecase.CreateShopInput{
		Name:    c.FormValue("name"),
		City:    c.FormValue("city"),
		State:   c.FormValue("state"),
		Address: c.FormValue("address"),
		Image:   image,
	}
	in.Lat, in.Lng = parseCoords(c)

	shop, err := h.uc.CreateShop(c.Request().Context(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"shop": shop})
}

func (h *ShopHandler) edit(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized"})
	}

	shopID, err := strconv.ParseInt(c.Param("shopId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid shop id"})
	}

	image, err := resolveImage(c, h.uploader, "shops")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "image upload failed"})
	}

	in := usecase.EditShopInput{
		Name:    c.FormValue("name"),
		City:    c.FormValue("city"),
		State:   c.FormValue("state"),
		Address: c.FormValue("address"),
		Image:   image,
	}
	in.Lat, in.Lng = parseCoords(c)

	shop, err := h.uc.EditShop(c.Request().Context(), userID, shopID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"shop": shop})
}

func (h *ShopHandler) myShop(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized"})
	}

	out, err := h.uc.GetMyShop(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func parseLimit(c echo.Context) (int, error) {
	v := c.QueryParam("limit")
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

// both coordinates or none; a lone lat or lng is ignored
func parseCoords(c echo.Context) (*float64, *float64) {
	latStr, lngStr := c.FormValue("lat"), c.FormValue("lng")
	if latStr == "" || lngStr == "" {
		return nil, nil
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lng, err2 := strconv.ParseFloat(lngStr, 64)
	if err1 != nil || err2 != nil {
		return nil, nil
	}
	return &lat, &lng
}
