package dao

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"customer-service-agent/model"
)

// Seed loads products and orders from their CSV files and inserts the
// built-in FAQ rows. Each table is skipped when it already has data, so
// restarts do not duplicate rows.
func (s *Store) Seed(productsCSV, ordersCSV string) error {
	if err := s.seedProducts(productsCSV); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := s.seedOrders(ordersCSV); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	if err := s.seedFAQs(); err != nil {
		return fmt.Errorf("seed faqs: %w", err)
	}
	return nil
}

func (s *Store) seedProducts(path string) error {
	var count int64
	if err := s.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows, err := readCSV(path)
	if err != nil {
		return err
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, model.Product{
			Name:        row["name"],
			Category:    row["category"],
			Subcategory: row["subcategory"],
			Description: row["description"],
			Price:       parseFloat(row["price"]),
		})
	}
	if len(products) == 0 {
		return nil
	}
	if err := s.db.CreateInBatches(products, 200).Error; err != nil {
		return err
	}
	s.log.Infow("loaded products", "count", len(products), "path", path)
	return nil
}

func (s *Store) seedOrders(path string) error {
	var count int64
	if err := s.db.Model(&model.Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows, err := readCSV(path)
	if err != nil {
		return err
	}

	orders := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, model.Order{
			OrderID:             row["OrderID"],
			CustomerID:          row["CID"],
			ProductName:         row["product_name"],
			ProductDescription:  row["product_description"],
			OrderDate:           parseDate(row["OrderDate"]),
			Quantity:            parseInt(row["Quantity"]),
			OrderAmount:         parseFloat(row["OrderAmount"]),
			OrderStatus:         row["OrderStatus"],
			ReturnStatus:        row["ReturnStatus"],
			ReturnStartDate:     parseDate(row["ReturnStartDate"]),
			ReturnReceivedDate:  parseDate(row["ReturnReceivedDate"]),
			ReturnCompletedDate: parseDate(row["ReturnCompletedDate"]),
			ReturnReason:        row["ReturnReason"],
			Notes:               row["Notes"],
		})
	}
	if len(orders) == 0 {
		return nil
	}
	if err := s.db.CreateInBatches(orders, 200).Error; err != nil {
		return err
	}
	s.log.Infow("loaded orders", "count", len(orders), "path", path)
	return nil
}

func (s *Store) seedFAQs() error {
	var count int64
	if err := s.db.Model(&model.FAQ{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	faqs := []model.FAQ{
		{
			Question: "What are your store hours?",
			Answer:   "Our store is open Monday to Friday from 9 AM to 6 PM, Saturday from 10 AM to 4 PM, and closed on Sundays.",
			Category: "store_info",
			Tags:     "hours,store,time",
		},
		{
			Question: "What is your return policy?",
			Answer:   "We accept returns within 30 days of purchase. Items must be in original condition with tags attached. Electronics have a 14-day return window.",
			Category: "returns",
			Tags:     "return,policy,refund",
		},
		{
			Question: "How can I track my order?",
			Answer:   "You can track your order by entering your order ID on our website or by contacting customer service.",
			Category: "orders",
			Tags:     "tracking,order,shipping",
		},
		{
			Question: "Do you offer international shipping?",
			Answer:   "Yes, we ship internationally to most countries. Shipping costs and delivery times vary by location.",
			Category: "shipping",
			Tags:     "international,shipping,delivery",
		},
		{
			Question: "What payment methods do you accept?",
			Answer:   "We accept all major credit cards, PayPal, and bank transfers.",
			Category: "payment",
			Tags:     "payment,credit,card,paypal",
		},
	}
	if err := s.db.Create(&faqs).Error; err != nil {
		return err
	}
	s.log.Infow("loaded faqs", "count", len(faqs))
	return nil
}

// readCSV returns one map per data row, keyed by the header row.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(rec) {
				row[strings.TrimSpace(key)] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "01/02/2006"}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
