package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "github.com/Skotchmaster/product_catalog/pkg/middleware/auth"
)

type Deps struct {
	Products   *ProductHTTP
	Categories *CategoryHTTP
	Users      *UserHTTP
	Cart       *CartHTTP
	JWTSecret  []byte
	// Ready reports whether dependencies are reachable; nil means always ready.
	Ready   func(ctx context.Context) error
	Metrics echo.HandlerFunc
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "not ready")
			}
		}
		return c.NoContent(http.StatusOK)
	})
	if d.Metrics != nil {
		e.GET("/metrics", d.Metrics)
	}

	authMW := middleware.NewAuthMiddleware(d.JWTSecret)
	catalog := e.Group("/catalog")

	products := catalog.Group("/products")
	products.GET("", d.Products.GetProducts)
	products.GET("/page", d.Products.GetPage)
	products.GET("/search", d.Products.Search)
	products.GET("/category/:name", d.Products.GetByCategory)
	products.GET("/:id", d.Products.GetProduct)

	adminProducts := products.Group("", authMW.RequireAdmin)
	adminProducts.POST("", d.Products.CreateProduct)
	adminProducts.POST("/batch", d.Products.CreateProducts)
	adminProducts.PUT("/:id", d.Products.UpdateProduct)
	adminProducts.DELETE("/:id", d.Products.DeleteProduct)
	adminProducts.DELETE("", d.Products.DeleteProducts)

	categories := catalog.Group("/categories")
	categories.GET("", d.Categories.GetCategories)
	categories.GET("/:id", d.Categories.GetCategory)
	categories.POST("", d.Categories.CreateCategory, authMW.RequireAdmin)
	categories.DELETE("/:id", d.Categories.DeleteCategory, authMW.RequireAdmin)

	users := catalog.Group("/users")
	users.POST("", d.Users.CreateUser, authMW.RequireAdmin)
	users.GET("/:id", d.Users.GetUser, authMW.RequireAuth)

	cart := catalog.Group("/cart", authMW.RequireAuth)
	cart.GET("", d.Cart.GetCart)
	cart.POST("", d.Cart.AddItem)
	cart.GET("/items/:productId", d.Cart.FindItem)
	cart.DELETE("/items/:productId", d.Cart.RemoveItem)
}
