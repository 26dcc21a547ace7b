package repositories

import (
	"lapak/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) (*models.Category, error)
	Update(category *models.Category) (*models.Category, error)
	Delete(id string) error
}
