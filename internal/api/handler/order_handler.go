package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marketline/commerce-system/internal/api/metrics"
	"github.com/marketline/commerce-system/internal/core/ports"
)

type orderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity"   validate:"required,gt=0"`
	Price     float64 `json:"price"      validate:"required,gt=0"`
}

type createOrderRequest struct {
	ShopID        string             `json:"shop_id"        validate:"required"`
	SalespersonID string             `json:"salesperson_id"`
	DistributorID string             `json:"distributor_id" validate:"required"`
	TotalAmount   float64            `json:"total_amount"   validate:"required,gt=0"`
	Notes         string             `json:"notes"`
	Items         []orderItemRequest `json:"items"          validate:"required,min=1,dive"`
}

type createOrderResponse struct {
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /salesperson/orders. A repeated Idempotency-Key
// header replays the original order with a 200 instead of creating twice.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string              false  "Client-chosen dedup key"
// @Param        body             body      createOrderRequest  true   "Order details"
// @Success      200   {object}  createOrderResponse
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /salesperson/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	result, err := h.orderService.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		ShopID:         req.ShopID,
		SalespersonID:  req.SalespersonID,
		DistributorID:  req.DistributorID,
		TotalAmount:    req.TotalAmount,
		Notes:          req.Notes,
		Items:          items,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
		Actor:          identity,
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	outcome := "created"
	if result.AlreadyExisted {
		status = http.StatusOK
		outcome = "replayed"
	}
	metrics.OrdersCreatedTotal.WithLabelValues(outcome).Inc()

	return c.JSON(status, createOrderResponse{
		OrderNumber: result.OrderNumber,
		Status:      result.Status,
		TotalAmount: result.TotalAmount,
		CreatedAt:   result.CreatedAt,
	})
}
