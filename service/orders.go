package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"customer-service-agent/model"
)

// OrderService backs the order-lookup and return-request endpoints.
type OrderService struct {
	store DataStore
	log   *zap.SugaredLogger
}

func NewOrderService(store DataStore, logg *zap.SugaredLogger) *OrderService {
	return &OrderService{store: store, log: logg.With("component", "orders")}
}

// GetOrderStatus returns the API projection of an order, or (nil, nil)
// when no such order exists.
func (s *OrderService) GetOrderStatus(ctx context.Context, orderID string) (*model.OrderView, error) {
	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	view := &model.OrderView{
		OrderID:      order.OrderID,
		CustomerID:   order.CustomerID,
		ProductName:  order.ProductName,
		Quantity:     order.Quantity,
		OrderAmount:  order.OrderAmount,
		Status:       order.OrderStatus,
		ReturnStatus: order.ReturnStatus,
		ReturnReason: order.ReturnReason,
		Notes:        order.Notes,
	}
	if order.OrderDate != nil {
		view.OrderDate = order.OrderDate.Format("2006-01-02")
	}
	return view, nil
}

// ProcessReturn decides return eligibility. It is total: a store failure
// degrades to a Rejected outcome rather than an error, and the actual
// order state transition stays with the order-management system.
func (s *OrderService) ProcessReturn(ctx context.Context, orderID, reason string) *model.ReturnOutcome {
	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		s.log.Errorw("return request lookup failed", "order_id", orderID, "error", err)
		return &model.ReturnOutcome{
			Status:  model.ReturnRejected,
			Message: "Error processing return request",
		}
	}
	if order == nil {
		return &model.ReturnOutcome{
			Status:  model.ReturnRejected,
			Message: "Order not found",
		}
	}

	if order.OrderStatus != string(model.OrderDelivered) {
		return &model.ReturnOutcome{
			Status:  model.ReturnRejected,
			Message: "Returns only available for delivered orders",
		}
	}

	refund := order.OrderAmount
	return &model.ReturnOutcome{
		ReturnID:        fmt.Sprintf("RET-%s-%s", orderID, time.Now().Format("20060102")),
		Status:          model.ReturnRequested,
		Message:         "Return request submitted successfully",
		EstimatedRefund: &refund,
	}
}
