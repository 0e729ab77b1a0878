package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketline/commerce-system/internal/api/metrics"
	"github.com/marketline/commerce-system/internal/core/domain"
	"github.com/marketline/commerce-system/internal/core/ports"
)

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Category    string   `json:"category"    validate:"required"`
	Stock       int      `json:"stock"       validate:"gte=0"`
	SKU         string   `json:"sku"         validate:"required"`
	Images      []string `json:"images"      validate:"required,min=1"`
}

type productResponse struct {
	Product *domain.Product `json:"product"`
}

type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles POST /admin/products — admin-only catalog creation.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		SKU:         req.SKU,
		Images:      req.Images,
		AdminID:     identity.ID,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(product.Category).Inc()
	return c.JSON(http.StatusCreated, productResponse{Product: product})
}
