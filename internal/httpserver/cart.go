package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/product_catalog/internal/service"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
	middleware "github.com/Skotchmaster/product_catalog/pkg/middleware/auth"
)

type CartHTTP struct {
	Svc *service.CartService
}

func currentUserID(c echo.Context) (uint, error) {
	raw, ok := c.Get(middleware.CtxUserID).(string)
	if !ok || raw == "" {
		return 0, errors.New("no user in context")
	}
	return parseID(raw)
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	userID, err := currentUserID(c)
	if err != nil {
		l.Warn("get_cart_error", "status", http.StatusUnauthorized, "reason", "invalid subject", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid subject")
	}

	items, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		return fail(l, "get_cart_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	userID, err := currentUserID(c)
	if err != nil {
		l.Warn("add_item_error", "status", http.StatusUnauthorized, "reason", "invalid subject", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid subject")
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "add_item_error", "invalid body", err)
	}
	if req.ProductID == 0 {
		return badRequest(l, "add_item_error", "product_id is required", nil)
	}

	item, created, err := h.Svc.AddToCart(ctx, userID, req.ProductID)
	if err != nil {
		return fail(l, "add_item_error", err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		l.Info("add_item_success", "cart_id", item.ID)
	}
	return c.JSON(status, item)
}

func (h *CartHTTP) FindItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.find_item")

	userID, err := currentUserID(c)
	if err != nil {
		l.Warn("find_item_error", "status", http.StatusUnauthorized, "reason", "invalid subject", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid subject")
	}
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		return badRequest(l, "find_item_error", "productId is not a number", err)
	}

	id, found, err := h.Svc.FindCartID(ctx, userID, productID)
	if err != nil {
		return fail(l, "find_item_error", err)
	}
	return c.JSON(http.StatusOK, transport.CartLookupResponse{ID: id, Found: found})
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	userID, err := currentUserID(c)
	if err != nil {
		l.Warn("remove_item_error", "status", http.StatusUnauthorized, "reason", "invalid subject", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid subject")
	}
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		return badRequest(l, "remove_item_error", "productId is not a number", err)
	}

	if err := h.Svc.RemoveFromCart(ctx, userID, productID); err != nil {
		return fail(l, "remove_item_error", err)
	}

	l.Info("remove_item_success", "product_id", productID)
	return c.NoContent(http.StatusNoContent)
}
