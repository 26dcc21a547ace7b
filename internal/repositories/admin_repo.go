package repositories

import (
	"lapak/internal/models"
)

// AdminRepository defines the interface for admin-account data access.
type AdminRepository interface {
	GetAll() ([]models.Admin, error)
	GetByID(id string) (*models.Admin, error)
	Create(admin *models.Admin) (*models.Admin, error)
	Update(admin *models.Admin) (*models.Admin, error)
	Delete(id string) error
}
