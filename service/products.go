package service

import (
	"context"

	"go.uber.org/zap"

	"customer-service-agent/model"
)

// ProductService backs the product-search endpoint.
type ProductService struct {
	store DataStore
	log   *zap.SugaredLogger
}

func NewProductService(store DataStore, logg *zap.SugaredLogger) *ProductService {
	return &ProductService{store: store, log: logg.With("component", "products")}
}

// Search lists products. Category filtering takes precedence over the free
// text query; with neither, a blank query browses up to limit rows.
func (s *ProductService) Search(ctx context.Context, query, category string, limit int) ([]model.ProductView, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		products []model.Product
		err      error
	)
	if category != "" {
		products, err = s.store.GetProductsByCategory(ctx, category)
	} else {
		products, err = s.store.SearchProducts(ctx, query, limit)
	}
	if err != nil {
		return nil, err
	}

	views := make([]model.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, model.ProductView{
			Name:         p.Name,
			Category:     p.Category,
			Subcategory:  p.Subcategory,
			Description:  p.Description,
			Price:        p.Price,
			Availability: true,
		})
	}
	return views, nil
}
