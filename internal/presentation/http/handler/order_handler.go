package handler

import (
	"strconv"
	"time"

	"github.com/chaatcart/kiosk-api/internal/application/service"
	"github.com/chaatcart/kiosk-api/internal/domain/enum"
	"github.com/chaatcart/kiosk-api/internal/presentation/http/dto/response"
	"github.com/chaatcart/kiosk-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles admin order-management HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// parseStatus accepts either a status name or its numeric value
func parseStatus(s string) *enum.OrderStatus {
	switch s {
	case "Pending":
		st := enum.OrderStatusPending
		return &st
	case "Completed":
		st := enum.OrderStatusCompleted
		return &st
	case "Cancelled":
		st := enum.OrderStatusCancelled
		return &st
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 0 && i <= 2 {
		st := enum.OrderStatus(i)
		return &st
	}
	return nil
}

// List handles listing orders with window and status filtering
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))

	input := &service.ListOrdersInput{
		Window:      c.DefaultQuery("window", "all"),
		Search:      c.Query("search"),
		IgnoreReset: c.Query("ignore_reset") == "true",
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if statusStr := c.Query("status"); statusStr != "" {
		input.Status = parseStatus(statusStr)
		if input.Status == nil {
			response.BadRequest(c, "Unknown status: "+statusStr)
			return
		}
	}

	if startStr := c.Query("start_date"); startStr != "" {
		if start, err := time.Parse("2006-01-02", startStr); err == nil {
			input.StartDate = &start
		}
	}

	if endStr := c.Query("end_date"); endStr != "" {
		if end, err := time.Parse("2006-01-02", endStr); err == nil {
			// Inclusive end of day
			end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
			input.EndDate = &end
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
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

// MarkPaid handles toggling the paid flag
func (h *OrderHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		Paid *bool `json:"paid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.orderService.MarkPaid(c.Request.Context(), id, *req.Paid); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order payment updated successfully", nil)
}

// Complete handles marking an order as completed
func (h *OrderHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.CompleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order completed successfully", nil)
}

// Cancel handles cancelling an order. The record stays in storage.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.CancelOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", nil)
}

// Revert handles moving a completed or cancelled order back to pending
func (h *OrderHandler) Revert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.RevertOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order reverted to pending", nil)
}

// SetItemGiven handles marking one item group as handed out
func (h *OrderHandler) SetItemGiven(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		ItemKey string `json:"item_key" binding:"required"`
		Given   *bool  `json:"given" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.orderService.SetItemGiven(c.Request.Context(), id, req.ItemKey, *req.Given); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", nil)
}

// EditItems handles the admin correction flow replacing items and subtotal
func (h *OrderHandler) EditItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req struct {
		Items []string `json:"items" binding:"required"`
		Total *float64 `json:"total" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.orderService.EditOrderItems(c.Request.Context(), id, req.Items, *req.Total); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order items updated successfully", nil)
}

// NotifyReady handles sending the "order ready" email
func (h *OrderHandler) NotifyReady(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.NotifyReady(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ready notification queued", nil)
}
