package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketline/commerce-system/internal/api/metrics"
	"github.com/marketline/commerce-system/internal/core/domain"
	"github.com/marketline/commerce-system/internal/core/ports"
)

type createShopRequest struct {
	Name      string `json:"name"       validate:"required"`
	OwnerName string `json:"owner_name" validate:"required"`
	GSTNumber string `json:"gst_number"`
	PANNumber string `json:"pan_number"`
	Phone     string `json:"phone"      validate:"required"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Address   string `json:"address"    validate:"required"`
	City      string `json:"city"       validate:"required"`
	State     string `json:"state"      validate:"required"`
	Pincode   string `json:"pincode"    validate:"required"`
}

type shopResponse struct {
	Shop *domain.Shop `json:"shop"`
}

type ShopHandler struct {
	shopService ports.ShopService
}

func NewShopHandler(shopService ports.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// Create handles POST /salesperson/shops — shop registration by a
// salesperson or an admin.
//
// @Summary      Register a shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShopRequest  true  "Shop details"
// @Success      201   {object}  shopResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /salesperson/shops [post]
func (h *ShopHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createShopRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shop, err := h.shopService.CreateShop(c.Request().Context(), ports.CreateShopInput{
		Name:      req.Name,
		OwnerName: req.OwnerName,
		GSTNumber: req.GSTNumber,
		PANNumber: req.PANNumber,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		Actor:     identity,
	})
	if err != nil {
		return err
	}

	metrics.ShopsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, shopResponse{Shop: shop})
}
