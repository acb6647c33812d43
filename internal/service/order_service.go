package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/repository"
	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/pkg/logger"
)

// OrderService drives the order lifecycle.
type OrderService interface {
	Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	Transition(ctx context.Context, orderID string, target model.OrderStatus) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
}

// OrderNotifier receives lifecycle events. It must not block.
type OrderNotifier interface {
	Enqueue(event model.OrderEvent)
}

type orderService struct {
	orderRepo repository.OrderRepository
	notifier  OrderNotifier
	now       func() time.Time
	newID     func() string
}

// OrderOption customises an order service.
type OrderOption func(*orderService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) OrderOption {
	return func(s *orderService) { s.now = now }
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(newID func() string) OrderOption {
	return func(s *orderService) { s.newID = newID }
}

// NewOrderService builds the order workflow. notifier may be nil.
func NewOrderService(orderRepo repository.OrderRepository, notifier OrderNotifier, opts ...OrderOption) OrderService {
	s := &orderService{
		orderRepo: orderRepo,
		notifier:  notifier,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *orderService) Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	name := strings.TrimSpace(draft.CustomerName)
	phone := strings.TrimSpace(draft.CustomerPhone)
	if name == "" || phone == "" {
		return nil, ErrInvalidOrder
	}

	order := &model.Order{
		ID:            s.newID(),
		SimID:         draft.SimID,
		PhoneNumber:   draft.PhoneNumber,
		Price:         draft.Price,
		CustomerName:  name,
		CustomerPhone: phone,
		Address:       strings.TrimSpace(draft.Address),
		Status:        model.OrderStatusNew,
		CreatedAt:     s.now().UnixMilli(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		logger.Error("create order failed", zap.String("sim_id", draft.SimID), zap.Error(err))
		return nil, persistence("create order", err)
	}

	logger.Info("order created", zap.String("order_id", order.ID), zap.String("phone_number", order.PhoneNumber))
	s.notify(model.OrderEvent{
		Type:        model.OrderEventCreated,
		OrderID:     order.ID,
		SimID:       order.SimID,
		PhoneNumber: order.PhoneNumber,
		Price:       order.Price,
		Status:      order.Status,
	})
	return order, nil
}

func (s *orderService) Transition(ctx context.Context, orderID string, target model.OrderStatus) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, persistence("load order", err)
	}

	from := order.Status
	if !model.CanTransition(from, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, target)
	}

	err = s.orderRepo.UpdateStatus(ctx, orderID, from, target)
	if errors.Is(err, repository.ErrStatusConflict) {
		return nil, fmt.Errorf("%w: order %s is no longer %s", ErrInvalidTransition, orderID, from)
	}
	if err != nil {
		logger.Error("update order status failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, persistence("update order status", err)
	}

	order.Status = target
	logger.Info("order status changed",
		zap.String("order_id", orderID),
		zap.String("from", string(from)),
		zap.String("to", string(target)))
	s.notify(model.OrderEvent{
		Type:           model.OrderEventStatusChanged,
		OrderID:        order.ID,
		SimID:          order.SimID,
		PhoneNumber:    order.PhoneNumber,
		Price:          order.Price,
		Status:         target,
		PreviousStatus: from,
	})
	return order, nil
}

func (s *orderService) List(ctx context.Context) ([]*model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, persistence("list orders", err)
	}
	return orders, nil
}

func (s *orderService) notify(e model.OrderEvent) {
	if s.notifier == nil {
		return
	}
	e.OccurredAt = s.now()
	s.notifier.Enqueue(e)
}
