package repositories

import (
	"lapak/internal/models"
)

// ProductRepository defines the interface for product data access. Writes
// return the canonical record (category join included) so callers can
// reconcile it into their cached lists.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) (*models.Product, error)
	Update(product *models.Product) (*models.Product, error)
	Delete(id string) error
	CountByCategory(categoryID string) (int64, error)
}
