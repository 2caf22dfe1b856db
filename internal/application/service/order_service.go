package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/chaatcart/kiosk-api/internal/domain/enum"
	"github.com/chaatcart/kiosk-api/internal/domain/repository"
	"github.com/chaatcart/kiosk-api/pkg/apperror"
	"github.com/chaatcart/kiosk-api/pkg/email"
	"github.com/chaatcart/kiosk-api/pkg/pagination"
	"github.com/google/uuid"
)

// ChangeNotifier receives a coarse "orders changed" signal after every
// successful lifecycle mutation
type ChangeNotifier interface {
	Notify()
}

// OrderMailer sends best-effort customer emails
type OrderMailer interface {
	SendOrderConfirmation(toEmail string, data email.OrderEmailData) error
	SendOrderReady(toEmail string, data email.OrderEmailData) error
}

// OrderService implements the order lifecycle: creation with per-day
// numbering, the Pending/Completed/Cancelled transitions, the paid flag and
// per-item given tracking. Every mutation is a single document update.
type OrderService struct {
	orderRepo    repository.OrderRepository
	counterRepo  repository.CounterRepository
	settingsRepo repository.SettingsRepository
	mailer       OrderMailer
	notifier     ChangeNotifier
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	counterRepo repository.CounterRepository,
	settingsRepo repository.SettingsRepository,
	mailer OrderMailer,
	notifier ChangeNotifier,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		counterRepo:  counterRepo,
		settingsRepo: settingsRepo,
		mailer:       mailer,
		notifier:     notifier,
	}
}

// CreateOrderInput represents the checkout submission. Total is the pre-tax,
// pre-fee, pre-tip subtotal. TaxAmount, ConvenienceFee and StripeTotal are
// set only by the online payment path, with StripeTotal being the amount the
// provider actually captured.
type CreateOrderInput struct {
	CustomerName   string
	CustomerEmail  string
	Items          []string
	Total          float64
	Tip            float64
	Notes          string
	TaxAmount      float64
	ConvenienceFee float64
	StripeTotal    float64
	PaymentID      *string
	Paid           bool
}

// CreateOrder validates the submission, assigns a per-day order number and
// persists the order as Pending. The confirmation email is fire-and-forget:
// its failure is logged and never fails the checkout.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	var fieldErrors []apperror.FieldError
	if input.CustomerName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "Order must contain at least one item"})
	}
	if input.Total < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "total", Message: "Total must not be negative"})
	}
	if input.Tip < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "tip", Message: "Tip must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	online := input.PaymentID != nil && *input.PaymentID != ""
	if settings != nil {
		if online && !settings.OnlinePaymentsEnabled {
			return nil, apperror.NewBadRequestError("Online payments are currently disabled")
		}
		if !online && !settings.PayAtCounterEnabled {
			return nil, apperror.NewBadRequestError("Pay at counter is currently disabled")
		}
	}

	now := time.Now()
	orderNumber, err := s.counterRepo.Next(ctx, now.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderNumber:    orderNumber,
		CustomerName:   input.CustomerName,
		CustomerEmail:  input.CustomerEmail,
		Items:          entity.ItemList(input.Items),
		Total:          input.Total,
		Tip:            input.Tip,
		Notes:          input.Notes,
		TaxAmount:      input.TaxAmount,
		ConvenienceFee: input.ConvenienceFee,
		StripeTotal:    input.StripeTotal,
		PaymentID:      input.PaymentID,
		Paid:           input.Paid,
		Status:         enum.OrderStatusPending,
		GivenItems:     entity.GivenMap{},
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.notifier.Notify()

	if order.CustomerEmail != "" {
		go s.sendConfirmation(order)
	}

	return order, nil
}

// sendConfirmation runs detached from the checkout request. The order exists
// regardless of the notification outcome.
func (s *OrderService) sendConfirmation(order *entity.Order) {
	data := email.OrderEmailData{
		CustomerName: order.CustomerName,
		OrderNumber:  order.OrderNumber,
		Items:        order.Items,
		Total:        fmt.Sprintf("$%.2f", order.CollectedAmount()),
	}
	if err := s.mailer.SendOrderConfirmation(order.CustomerEmail, data); err != nil {
		log.Printf("Warning: failed to send confirmation email for order #%d: %v", order.OrderNumber, err)
	}
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrdersInput represents the admin list query
type ListOrdersInput struct {
	Window      string // today|week|month|all|custom
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *enum.OrderStatus
	Search      string
	IgnoreReset bool
	Pagination  *pagination.PaginationParams
}

// ListOrders lists orders with filtering. Unless IgnoreReset is set, orders
// older than the operational reset watermark are hidden.
func (s *OrderService) ListOrders(ctx context.Context, input *ListOrdersInput) (*pagination.PaginatedResult[entity.Order], error) {
	start, end, err := ResolveTimeWindow(input.Window, input.StartDate, input.EndDate, time.Now())
	if err != nil {
		return nil, err
	}

	params := &repository.OrderFilterParams{
		Pagination: input.Pagination,
		Status:     input.Status,
		Search:     input.Search,
		StartDate:  start,
		EndDate:    end,
	}

	if !input.IgnoreReset {
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		if settings != nil {
			params.HiddenBefore = settings.OrdersHiddenBefore
		}
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// MarkPaid toggles the paid flag in either direction at any status
func (s *OrderService) MarkPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	rows, err := s.orderRepo.UpdatePaid(ctx, id, paid)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NewNotFoundError("Order")
	}

	s.notifier.Notify()
	return nil
}

// CompleteOrder transitions a Pending order to Completed. GivenItems and
// Paid are untouched.
func (s *OrderService) CompleteOrder(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, enum.OrderStatusCompleted)
}

// CancelOrder transitions a Pending order to Cancelled. Cancellation is a
// soft delete: the record stays in storage for audit and is excluded from
// revenue aggregates.
func (s *OrderService) CancelOrder(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, enum.OrderStatusCancelled)
}

// RevertOrder transitions a Completed or Cancelled order back to Pending,
// restoring prior given-item progress since GivenItems was never cleared.
func (s *OrderService) RevertOrder(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, enum.OrderStatusPending)
}

// transition applies a status change after validating it against the current
// state. There is no direct Completed/Cancelled transition in either
// direction.
func (s *OrderService) transition(ctx context.Context, id uuid.UUID, target enum.OrderStatus) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	switch target {
	case enum.OrderStatusCompleted, enum.OrderStatusCancelled:
		if order.Status != enum.OrderStatusPending {
			return apperror.NewBadRequestError(fmt.Sprintf("Cannot mark a %s order as %s", order.Status, target))
		}
	case enum.OrderStatusPending:
		if !order.Status.IsTerminal() {
			return apperror.NewBadRequestError("Order is already pending")
		}
	}

	rows, err := s.orderRepo.UpdateStatus(ctx, id, target)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NewNotFoundError("Order")
	}

	s.notifier.Notify()
	return nil
}

// SetItemGiven marks one given-items entry. The key is the item display
// string, so all units of the same name+options flip together.
func (s *OrderService) SetItemGiven(ctx context.Context, id uuid.UUID, itemKey string, given bool) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status != enum.OrderStatusPending {
		return apperror.NewBadRequestError("Given items can only change while the order is pending")
	}

	found := false
	for _, item := range order.Items {
		if item == itemKey {
			found = true
			break
		}
	}
	if !found {
		return apperror.NewBadRequestError("Item is not part of this order")
	}

	if order.GivenItems == nil {
		order.GivenItems = entity.GivenMap{}
	}
	order.GivenItems[itemKey] = given

	rows, err := s.orderRepo.UpdateGivenItems(ctx, id, order.GivenItems)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NewNotFoundError("Order")
	}

	s.notifier.Notify()
	return nil
}

// EditOrderItems replaces the item list and subtotal of a Pending order.
// The caller is responsible for the new total being a subtotal only, with no
// tax, fee or tip folded in. Paid and Status are untouched.
func (s *OrderService) EditOrderItems(ctx context.Context, id uuid.UUID, items []string, total float64) error {
	if len(items) == 0 {
		return apperror.NewBadRequestError("Order must contain at least one item")
	}
	if total < 0 {
		return apperror.NewBadRequestError("Total must not be negative")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status != enum.OrderStatusPending {
		return apperror.NewBadRequestError("Only pending orders can be edited")
	}

	rows, err := s.orderRepo.UpdateItems(ctx, id, entity.ItemList(items), total)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NewNotFoundError("Order")
	}

	s.notifier.Notify()
	return nil
}

// NotifyReady sends the "order ready" email. Requires a customer email on
// the order; the send itself is detached and only logged on failure.
func (s *OrderService) NotifyReady(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.CustomerEmail == "" {
		return apperror.NewBadRequestError("Order has no customer email")
	}

	go func() {
		data := email.OrderEmailData{
			CustomerName: order.CustomerName,
			OrderNumber:  order.OrderNumber,
			Items:        order.Items,
		}
		if err := s.mailer.SendOrderReady(order.CustomerEmail, data); err != nil {
			log.Printf("Warning: failed to send ready email for order #%d: %v", order.OrderNumber, err)
		}
	}()

	return nil
}
