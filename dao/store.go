package dao

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"customer-service-agent/model"
)

var ErrInvalidParam = errors.New("invalid parameter")

// Store is the relational store behind the agent. All agent-facing reads
// are side-effect free and report a lookup miss as (nil, nil), never as an
// error.
type Store struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewStore(path string, logg *zap.SugaredLogger) (*Store, error) {
	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if err := db.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.FAQ{},
		&model.ConversationTurn{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, log: logg.With("component", "store")}, nil
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: orderID is empty", ErrInvalidParam)
	}
	var order model.Order
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrdersByCustomer returns the customer's orders in insertion order.
// No recency sort is applied; callers truncate whatever this returns.
func (s *Store) GetOrdersByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customerID is empty", ErrInvalidParam)
	}
	var orders []model.Order
	err := s.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) SearchProducts(ctx context.Context, query string, limit int) ([]model.Product, error) {
	var products []model.Product
	like := "%" + query + "%"
	err := s.db.WithContext(ctx).
		Where("name LIKE ? OR description LIKE ?", like, like).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Where("category = ?", category).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// AppendConversation records one processed turn. Rows are append-only.
func (s *Store) AppendConversation(ctx context.Context, turn *model.ConversationTurn) error {
	if turn == nil {
		return fmt.Errorf("%w: turn is nil", ErrInvalidParam)
	}
	if turn.Timestamp.IsZero() {
		turn.Timestamp = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(turn).Error
}

func (s *Store) ListFAQs(ctx context.Context) ([]model.FAQ, error) {
	var faqs []model.FAQ
	if err := s.db.WithContext(ctx).Order("id").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

// Analytics aggregates the conversation log.
func (s *Store) Analytics(ctx context.Context) (*model.Analytics, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.ConversationTurn{}).Count(&total).Error; err != nil {
		return nil, err
	}

	out := &model.Analytics{
		TotalRequests:      total,
		IntentDistribution: map[string]int64{},
	}
	if total == 0 {
		return out, nil
	}

	var avg float64
	err := s.db.WithContext(ctx).Model(&model.ConversationTurn{}).
		Select("AVG(confidence)").Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	out.AverageConfidence = avg

	rows := []struct {
		Intent string
		N      int64
	}{}
	err = s.db.WithContext(ctx).Model(&model.ConversationTurn{}).
		Select("intent, COUNT(*) AS n").Group("intent").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out.IntentDistribution[r.Intent] = r.N
	}
	return out, nil
}
