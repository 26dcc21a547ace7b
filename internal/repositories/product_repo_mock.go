package repositories

import (
	"fmt"
	"sync"

	"lapak/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// Records are kept newest first, matching the GORM ordering.
type MockProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

func (r *MockProductRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

// GetAll returns all products newest first.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, len(r.products))
	copy(productList, r.products)
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		product := r.products[i]
		return &product, nil
	}
	return nil, fmt.Errorf("product with ID %s not found", id)
}

// Create adds a new product at the head of the list.
func (r *MockProductRepository) Create(product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products = append([]models.Product{*product}, r.products...)
	created := *product
	return &created, nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		return nil, fmt.Errorf("product with ID %s not found for update", product.ID)
	}
	r.products[i] = *product
	updated := r.products[i]
	return &updated, nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("product with ID %s not found for deletion", id)
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// CountByCategory returns how many products reference the category.
func (r *MockProductRepository) CountByCategory(categoryID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for i := range r.products {
		if r.products[i].CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
