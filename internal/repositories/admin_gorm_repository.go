package repositories

import (
	"errors"
	"fmt"

	"lapak/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAdminRepository is a GORM implementation of AdminRepository.
type GORMAdminRepository struct {
	db *gorm.DB
}

// NewGORMAdminRepository creates a new instance of GORMAdminRepository.
func NewGORMAdminRepository(db *gorm.DB) *GORMAdminRepository {
	return &GORMAdminRepository{
		db: db,
	}
}

// GetAll retrieves all admins newest first.
func (r *GORMAdminRepository) GetAll() ([]models.Admin, error) {
	var admins []models.Admin
	if err := r.db.Order("created_at DESC").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to get all admins: %w", err)
	}
	return admins, nil
}

// GetByID retrieves a single admin by its ID.
func (r *GORMAdminRepository) GetByID(id string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get admin by ID %s: %w", id, err)
	}
	return &admin, nil
}

// Create inserts a new admin and returns the canonical record.
func (r *GORMAdminRepository) Create(admin *models.Admin) (*models.Admin, error) {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	if err := r.db.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return r.GetByID(admin.ID)
}

// Update saves an existing admin and returns the canonical record.
func (r *GORMAdminRepository) Update(admin *models.Admin) (*models.Admin, error) {
	res := r.db.Save(admin)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update admin: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("admin with ID %s not found for update", admin.ID)
	}
	return r.GetByID(admin.ID)
}

// Delete deletes an admin by its ID.
func (r *GORMAdminRepository) Delete(id string) error {
	res := r.db.Delete(&models.Admin{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete admin: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("admin with ID %s not found for deletion", id)
	}
	return nil
}
