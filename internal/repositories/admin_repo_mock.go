package repositories

import (
	"fmt"
	"sync"

	"lapak/internal/models"

	"github.com/google/uuid"
)

// MockAdminRepository is an in-memory implementation of AdminRepository.
// Records are kept newest first, matching the GORM ordering.
type MockAdminRepository struct {
	admins []models.Admin
	mu     sync.RWMutex
}

// NewMockAdminRepository creates a new instance of MockAdminRepository.
func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{}
}

func (r *MockAdminRepository) indexOf(id string) int {
	for i := range r.admins {
		if r.admins[i].ID == id {
			return i
		}
	}
	return -1
}

// GetAll returns all admins newest first.
func (r *MockAdminRepository) GetAll() ([]models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adminList := make([]models.Admin, len(r.admins))
	copy(adminList, r.admins)
	return adminList, nil
}

// GetByID returns an admin by its ID.
func (r *MockAdminRepository) GetByID(id string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		admin := r.admins[i]
		return &admin, nil
	}
	return nil, fmt.Errorf("admin with ID %s not found", id)
}

// Create adds a new admin at the head of the list.
func (r *MockAdminRepository) Create(admin *models.Admin) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	for i := range r.admins {
		if r.admins[i].Email == admin.Email {
			return nil, fmt.Errorf("admin with email %s already exists", admin.Email)
		}
	}
	r.admins = append([]models.Admin{*admin}, r.admins...)
	created := *admin
	return &created, nil
}

// Update modifies an existing admin.
func (r *MockAdminRepository) Update(admin *models.Admin) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(admin.ID)
	if i < 0 {
		return nil, fmt.Errorf("admin with ID %s not found for update", admin.ID)
	}
	r.admins[i] = *admin
	updated := r.admins[i]
	return &updated, nil
}

// Delete removes an admin by its ID.
func (r *MockAdminRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("admin with ID %s not found for deletion", id)
	}
	r.admins = append(r.admins[:i], r.admins[i+1:]...)
	return nil
}
