// Package product provides the catalog listing domain.
package product

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Product models one catalog entry.
type Product struct {
	ID          uint
	Name        string
	Description string
	Price       decimal.Decimal
	Attributes  map[string]any
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Repository defines storage operations for products. FindByID returns
// (nil, nil) when no record matches.
type Repository interface {
	ListActive(ctx context.Context) ([]*Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, product *Product) (*Product, error)
}

// Service exposes catalog reads to the HTTP layer.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all active products.
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.ListActive(ctx)
}

// Get returns one product by ID, or (nil, nil) when absent.
func (s *Service) Get(ctx context.Context, id uint) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}
