package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"customer-service-agent/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir()+"/test.db", zap.NewNop().Sugar())
	require.NoError(t, err)
	return store
}

func seedTestOrders(t *testing.T, store *Store) {
	t.Helper()
	orders := []model.Order{
		{OrderID: "52768", CustomerID: "CUST1", ProductName: "RTX 4090", OrderStatus: "Delivered", OrderAmount: 1599.99},
		{OrderID: "52769", CustomerID: "CUST1", ProductName: "Shield TV", OrderStatus: "Processing", OrderAmount: 199.99},
		{OrderID: "52770", CustomerID: "CUST1", ProductName: "Jetson Nano", OrderStatus: "Shipped", OrderAmount: 99.00},
		{OrderID: "52771", CustomerID: "CUST1", ProductName: "RTX 4080", OrderStatus: "Pending", OrderAmount: 1199.99},
		{OrderID: "52772", CustomerID: "CUST2", ProductName: "RTX A6000", OrderStatus: "Delivered", OrderAmount: 4650.00, ReturnStatus: "Requested"},
	}
	require.NoError(t, store.DB().Create(&orders).Error)
}

func TestGetOrderByID(t *testing.T) {
	store := newTestStore(t)
	seedTestOrders(t, store)

	order, err := store.GetOrderByID(context.Background(), "52768")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "CUST1", order.CustomerID)
	assert.Equal(t, "Delivered", order.OrderStatus)
}

func TestGetOrderByID_MissIsNotAnError(t *testing.T) {
	store := newTestStore(t)

	order, err := store.GetOrderByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestGetOrderByID_EmptyIDRejected(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetOrderByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestGetOrdersByCustomer_InsertionOrder(t *testing.T) {
	store := newTestStore(t)
	seedTestOrders(t, store)

	orders, err := store.GetOrdersByCustomer(context.Background(), "CUST1")
	require.NoError(t, err)
	require.Len(t, orders, 4)

	ids := []string{orders[0].OrderID, orders[1].OrderID, orders[2].OrderID, orders[3].OrderID}
	assert.Equal(t, []string{"52768", "52769", "52770", "52771"}, ids)
}

func TestGetOrdersByCustomer_NoRows(t *testing.T) {
	store := newTestStore(t)

	orders, err := store.GetOrdersByCustomer(context.Background(), "CUST9")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSearchProducts(t *testing.T) {
	store := newTestStore(t)
	products := []model.Product{
		{Name: "GeForce RTX 4090", Category: "Graphics Cards", Description: "Flagship GPU", Price: 1599.99},
		{Name: "GeForce RTX 4080", Category: "Graphics Cards", Description: "High-end GPU", Price: 1199.99},
		{Name: "Shield TV Pro", Category: "Streaming Devices", Description: "Streaming player", Price: 199.99},
	}
	require.NoError(t, store.DB().Create(&products).Error)

	found, err := store.SearchProducts(context.Background(), "RTX", 5)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	// Description matches too.
	found, err = store.SearchProducts(context.Background(), "Streaming", 5)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Shield TV Pro", found[0].Name)

	// Limit caps the result set.
	found, err = store.SearchProducts(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestGetProductsByCategory(t *testing.T) {
	store := newTestStore(t)
	products := []model.Product{
		{Name: "GeForce RTX 4090", Category: "Graphics Cards"},
		{Name: "Shield TV Pro", Category: "Streaming Devices"},
	}
	require.NoError(t, store.DB().Create(&products).Error)

	found, err := store.GetProductsByCategory(context.Background(), "Graphics Cards")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "GeForce RTX 4090", found[0].Name)
}

func TestAppendConversationAndAnalytics(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	turns := []*model.ConversationTurn{
		{SessionID: "s1", Message: "hi", Response: "Hello!", Intent: "greeting", Confidence: 1.0},
		{SessionID: "s1", Message: "order status", Response: "...", Intent: "order_status", Confidence: 0.8},
		{SessionID: "s2", Message: "???", Response: "...", Intent: "unknown", Confidence: 0.0},
	}
	for _, turn := range turns {
		require.NoError(t, store.AppendConversation(ctx, turn))
		assert.False(t, turn.Timestamp.IsZero())
	}

	analytics, err := store.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), analytics.TotalRequests)
	assert.InDelta(t, 0.6, analytics.AverageConfidence, 1e-9)
	assert.Equal(t, int64(1), analytics.IntentDistribution["greeting"])
	assert.Equal(t, int64(1), analytics.IntentDistribution["order_status"])
	assert.Equal(t, int64(1), analytics.IntentDistribution["unknown"])
}

func TestAnalytics_EmptyLog(t *testing.T) {
	store := newTestStore(t)

	analytics, err := store.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), analytics.TotalRequests)
	assert.Equal(t, 0.0, analytics.AverageConfidence)
	assert.Empty(t, analytics.IntentDistribution)
}

func TestAppendConversation_SetsTimestamp(t *testing.T) {
	store := newTestStore(t)

	turn := &model.ConversationTurn{SessionID: "s9", Message: "x", Response: "y", Intent: "faq"}
	before := time.Now().UTC().Add(-time.Second)
	require.NoError(t, store.AppendConversation(context.Background(), turn))
	assert.True(t, turn.Timestamp.After(before))
}
