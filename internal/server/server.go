package server

import (
	"net/http"

	"swadwala/internal/config"
	"swadwala/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth  *handler.AuthHandler
	Shop  *handler.ShopHandler
	Item  *handler.ItemHandler
	Order *handler.OrderHandler
}

// New builds the Echo instance with the ambient middleware and all routes
// registered. The caller starts it.
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Backend is running")
	})

	h.Auth.RegisterRoutes(e, cfg)
	h.Shop.RegisterRoutes(e, cfg)
	h.Item.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)

	return e
}
