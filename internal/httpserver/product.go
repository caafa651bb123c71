package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/product_catalog/internal/service"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	"github.com/Skotchmaster/product_catalog/internal/util"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type ProductHTTP struct {
	Svc *service.CatalogService
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	products, err := h.Svc.GetAllProducts(ctx)
	if err != nil {
		return fail(l, "get_products_error", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(l, "get_product_error", "id is not a number", err)
	}

	product, err := h.Svc.GetProductByID(ctx, id)
	if err != nil {
		return fail(l, "get_product_error", err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) GetPage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_page")

	page, size, err := pageParams(c)
	if err != nil {
		return badRequest(l, "get_page_error", "page and size must be integers", err)
	}

	result, err := h.Svc.GetProductsByPage(ctx, page, size)
	if err != nil {
		return fail(l, "get_page_error", err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ProductHTTP) GetByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_by_category")

	products, err := h.Svc.GetProductsByCategory(ctx, c.Param("name"))
	if err != nil {
		return fail(l, "get_by_category_error", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	page, size, err := pageParams(c)
	if err != nil {
		return badRequest(l, "search_products_error", "page and size must be integers", err)
	}

	result, err := h.Svc.SearchProducts(ctx, c.QueryParam("q"), page, size)
	if err != nil {
		return fail(l, "search_products_error", err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_product_error", "invalid body", err)
	}

	product, err := h.Svc.SaveProduct(ctx, req)
	if err != nil {
		return fail(l, "create_product_error", err)
	}

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) CreateProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_products")

	var reqs []transport.ProductRequest
	if err := c.Bind(&reqs); err != nil {
		return badRequest(l, "create_products_error", "invalid body", err)
	}

	products, err := h.Svc.SaveAllProducts(ctx, reqs)
	if err != nil {
		return fail(l, "create_products_error", err)
	}

	l.Info("create_products_success", "count", len(products))
	return c.JSON(http.StatusCreated, products)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(l, "update_product_error", "id is not a number", err)
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_product_error", "invalid body", err)
	}

	product, err := h.Svc.UpdateProduct(ctx, id, req)
	if err != nil {
		return fail(l, "update_product_error", err)
	}

	l.Info("update_product_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return badRequest(l, "delete_product_error", "id is not a number", err)
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return fail(l, "delete_product_error", err)
	}

	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHTTP) DeleteProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_products")

	deleted, err := h.Svc.DeleteAllProducts(ctx)
	if err != nil {
		return fail(l, "delete_products_error", err)
	}

	l.Info("delete_products_success", "deleted", deleted)
	return c.JSON(http.StatusOK, transport.DeleteAllResponse{Deleted: deleted})
}

func pageParams(c echo.Context) (int, int, error) {
	page, err := util.ParseIntDefault(c.QueryParam("page"), 0)
	if err != nil {
		return 0, 0, err
	}
	size, err := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}
