package catalog

import (
	"context"

	"funeraria-backend/internal/domain"

	"gorm.io/gorm"
)

// Service exposes read-only catalog listings for selection screens. Catalog
// CRUD lives elsewhere; the engine only reads.
type Service struct {
	DB *gorm.DB
}

func (s *Service) ListServices(ctx context.Context) ([]domain.ServiceItem, error) {
	var items []domain.ServiceItem
	err := s.DB.WithContext(ctx).Order("code").Find(&items).Error
	return items, err
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var items []domain.Product
	err := s.DB.WithContext(ctx).Order("code").Find(&items).Error
	return items, err
}
