package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"customer-service-agent/model"
)

func TestGetOrderStatus(t *testing.T) {
	orderDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{orders: map[string]*model.Order{
		"52768": {
			OrderID:     "52768",
			CustomerID:  "CUST1001",
			ProductName: "GeForce RTX 4090",
			OrderDate:   &orderDate,
			Quantity:    1,
			OrderAmount: 1599.99,
			OrderStatus: "Delivered",
		},
	}}
	svc := NewOrderService(store, zap.NewNop().Sugar())

	view, err := svc.GetOrderStatus(context.Background(), "52768")
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "52768", view.OrderID)
	assert.Equal(t, "2024-01-05", view.OrderDate)
	assert.Equal(t, "Delivered", view.Status)
}

func TestGetOrderStatus_Miss(t *testing.T) {
	svc := NewOrderService(&fakeStore{}, zap.NewNop().Sugar())

	view, err := svc.GetOrderStatus(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestProcessReturn_Delivered(t *testing.T) {
	store := &fakeStore{orders: map[string]*model.Order{
		"52768": {OrderID: "52768", OrderStatus: "Delivered", OrderAmount: 1599.99},
	}}
	svc := NewOrderService(store, zap.NewNop().Sugar())

	outcome := svc.ProcessReturn(context.Background(), "52768", "arrived damaged")

	assert.Equal(t, model.ReturnRequested, outcome.Status)
	assert.Equal(t, fmt.Sprintf("RET-52768-%s", time.Now().Format("20060102")), outcome.ReturnID)
	require.NotNil(t, outcome.EstimatedRefund)
	assert.InDelta(t, 1599.99, *outcome.EstimatedRefund, 1e-9)
	assert.Equal(t, "Return request submitted successfully", outcome.Message)
}

func TestProcessReturn_NotDelivered(t *testing.T) {
	store := &fakeStore{orders: map[string]*model.Order{
		"52769": {OrderID: "52769", OrderStatus: "Processing", OrderAmount: 199.99},
	}}
	svc := NewOrderService(store, zap.NewNop().Sugar())

	outcome := svc.ProcessReturn(context.Background(), "52769", "changed my mind")

	assert.Equal(t, model.ReturnRejected, outcome.Status)
	assert.Empty(t, outcome.ReturnID)
	assert.Nil(t, outcome.EstimatedRefund)
	assert.Equal(t, "Returns only available for delivered orders", outcome.Message)
}

func TestProcessReturn_OrderNotFound(t *testing.T) {
	svc := NewOrderService(&fakeStore{}, zap.NewNop().Sugar())

	outcome := svc.ProcessReturn(context.Background(), "missing", "whatever")

	assert.Equal(t, model.ReturnRejected, outcome.Status)
	assert.Equal(t, "Order not found", outcome.Message)
}

func TestProcessReturn_StoreFailureIsRejected(t *testing.T) {
	svc := NewOrderService(&fakeStore{err: errors.New("db down")}, zap.NewNop().Sugar())

	outcome := svc.ProcessReturn(context.Background(), "52768", "whatever")

	assert.Equal(t, model.ReturnRejected, outcome.Status)
	assert.Equal(t, "Error processing return request", outcome.Message)
}
