package handlers

import (
	"net/http"
	"strconv"

	"github.com/electricpro/storefront/internal/api/middleware"
	"github.com/electricpro/storefront/internal/catalog"
	appErrors "github.com/electricpro/storefront/internal/errors"
	"github.com/electricpro/storefront/internal/models"
	"github.com/electricpro/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Returns one page of the product catalog, optionally filtered by category.
//	@Tags			Catalog
//	@Produce		json
//	@Param			category	query		string						false	"Category name"
//	@Param			page		query		int							false	"Page number, starting at 1"
//	@Param			pageSize	query		int							false	"Page size, 1 to 50"
//	@Success		200			{object}	models.PaginatedResponse	"Product page"
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
		category := r.URL.Query().Get("category")

		products, total := h.catalog.List(category, page, size)

		if page < 1 {
			page = 1
		}

		if size < 1 || size > 50 {
			size = 12
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: size,
		})
	}
}

// GetProduct godoc
//	@Summary		Get a product
//	@Description	Returns a single catalog product by id.
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.Product			"Product"
//	@Failure		404	{object}	response.ErrorResponse	"Unknown product id"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")

		product, ok := h.catalog.Get(id)
		if !ok {
			logger.Warn("Product not found")
			response.Error(w, appErrors.NotFoundError("Product not found"))

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListCategories godoc
//	@Summary		List product categories
//	@Description	Returns the distinct catalog categories in sorted order.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}	string	"Category names"
//	@Router			/categories [get]
func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.catalog.Categories())
	}
}
