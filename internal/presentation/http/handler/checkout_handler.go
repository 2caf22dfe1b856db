package handler

import (
	"github.com/chaatcart/kiosk-api/internal/application/service"
	"github.com/chaatcart/kiosk-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler handles the customer-facing checkout flow
type CheckoutHandler struct {
	orderService *service.OrderService
	pricing      service.PricingConfig
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(orderService *service.OrderService, pricing service.PricingConfig) *CheckoutHandler {
	return &CheckoutHandler{orderService: orderService, pricing: pricing}
}

// Quote returns the server-side price breakdown for a cart, so the client
// and the amount captured online always agree
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req struct {
		Subtotal *float64 `json:"subtotal" binding:"required"`
		Tip      float64  `json:"tip"`
		Online   bool     `json:"online"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if *req.Subtotal < 0 || req.Tip < 0 {
		response.BadRequest(c, "Amounts must not be negative")
		return
	}

	quote := service.BuildQuote(h.pricing, *req.Subtotal, req.Tip, req.Online)
	response.OK(c, "Quote calculated", quote)
}

// Create handles a checkout submission
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req struct {
		CustomerName   string   `json:"customer_name" binding:"required"`
		CustomerEmail  string   `json:"customer_email"`
		Items          []string `json:"items" binding:"required"`
		Total          *float64 `json:"total" binding:"required"`
		Tip            float64  `json:"tip"`
		Notes          string   `json:"notes"`
		TaxAmount      float64  `json:"tax_amount"`
		ConvenienceFee float64  `json:"convenience_fee"`
		StripeTotal    float64  `json:"stripe_total"`
		PaymentID      *string  `json:"payment_id"`
		Paid           bool     `json:"paid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		Items:          req.Items,
		Total:          *req.Total,
		Tip:            req.Tip,
		Notes:          req.Notes,
		TaxAmount:      req.TaxAmount,
		ConvenienceFee: req.ConvenienceFee,
		StripeTotal:    req.StripeTotal,
		PaymentID:      req.PaymentID,
		Paid:           req.Paid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order placed successfully", order)
}

// Get lets a customer check their order by its identifier
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}
