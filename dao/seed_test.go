package dao

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-service-agent/model"
)

func writeTestCSVs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	productsCSV := filepath.Join(dir, "products.csv")
	require.NoError(t, os.WriteFile(productsCSV, []byte(
		"name,category,subcategory,description,price\n"+
			"GeForce RTX 4090,Graphics Cards,Enthusiast,Flagship GPU,1599.99\n"+
			"Shield TV Pro,Streaming Devices,Media,Streaming player,199.99\n",
	), 0o644))

	ordersCSV := filepath.Join(dir, "orders.csv")
	require.NoError(t, os.WriteFile(ordersCSV, []byte(
		"OrderID,CID,product_name,product_description,OrderDate,Quantity,OrderAmount,OrderStatus,ReturnStatus,ReturnStartDate,ReturnReceivedDate,ReturnCompletedDate,ReturnReason,Notes\n"+
			"52768,CUST1,GeForce RTX 4090,Flagship GPU,2024-01-05,1,1599.99,Delivered,,,,,,\n"+
			"52771,CUST2,Jetson Nano,Small AI computer,2024-01-20,2,198.00,Delivered,Requested,2024-02-01,,,Changed mind,Handle with care\n",
	), 0o644))

	return productsCSV, ordersCSV
}

func TestSeed(t *testing.T) {
	store := newTestStore(t)
	productsCSV, ordersCSV := writeTestCSVs(t)

	require.NoError(t, store.Seed(productsCSV, ordersCSV))
	ctx := context.Background()

	products, err := store.SearchProducts(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	order, err := store.GetOrderByID(ctx, "52768")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "CUST1", order.CustomerID)
	assert.Equal(t, 1599.99, order.OrderAmount)
	require.NotNil(t, order.OrderDate)
	assert.Equal(t, "2024-01-05", order.OrderDate.Format("2006-01-02"))

	withReturn, err := store.GetOrderByID(ctx, "52771")
	require.NoError(t, err)
	require.NotNil(t, withReturn)
	assert.Equal(t, "Requested", withReturn.ReturnStatus)
	assert.Equal(t, "Changed mind", withReturn.ReturnReason)
	assert.Equal(t, 2, withReturn.Quantity)

	var faqCount int64
	require.NoError(t, store.DB().Model(&model.FAQ{}).Count(&faqCount).Error)
	assert.Equal(t, int64(5), faqCount)
}

func TestSeed_Idempotent(t *testing.T) {
	store := newTestStore(t)
	productsCSV, ordersCSV := writeTestCSVs(t)

	require.NoError(t, store.Seed(productsCSV, ordersCSV))
	require.NoError(t, store.Seed(productsCSV, ordersCSV))

	var productCount, orderCount int64
	require.NoError(t, store.DB().Model(&model.Product{}).Count(&productCount).Error)
	require.NoError(t, store.DB().Model(&model.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(2), productCount)
	assert.Equal(t, int64(2), orderCount)
}

func TestSeed_MissingFileFails(t *testing.T) {
	store := newTestStore(t)
	productsCSV, _ := writeTestCSVs(t)

	err := store.Seed(productsCSV, "does-not-exist.csv")
	assert.Error(t, err)
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 1599.99, parseFloat("1599.99"))
	assert.Equal(t, 19.5, parseFloat("$19.50"))
	assert.Equal(t, 0.0, parseFloat(""))
	assert.Equal(t, 3, parseInt("3"))
	assert.Equal(t, 0, parseInt("x"))

	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("not a date"))
	require.NotNil(t, parseDate("2024-01-05"))
	assert.Equal(t, "2024-01-05", parseDate("2024-01-05").Format("2006-01-02"))
}
