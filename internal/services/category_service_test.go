package services_test

import (
	"errors"
	"testing"
	"time"

	"lapak/internal/models"
	"lapak/internal/notify"
	"lapak/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCategoryService(repo *MockCategoryRepository, products *MockProductRepository) (*services.CategoryService, *notify.Notifier) {
	notifier := notify.NewNotifier(time.Minute)
	return services.NewCategoryService(repo, products, nil, notifier), notifier
}

func TestCategoryService_Create(t *testing.T) {
	repo := new(MockCategoryRepository)
	products := new(MockProductRepository)
	service, notifier := newCategoryService(repo, products)

	repo.On("GetAll").Return([]models.Category{{ID: "c1", Name: "Furniture"}}, nil)
	assert.NoError(t, service.Load())

	canonical := &models.Category{ID: "c2", Name: "Electronics", Description: "Gadgets"}
	repo.On("Create", mock.AnythingOfType("*models.Category")).Return(canonical, nil)

	created, err := service.Create(services.CategoryInput{Name: "Electronics", Description: "Gadgets"})
	assert.NoError(t, err)
	assert.Equal(t, "c2", created.ID)

	listed := service.List("")
	assert.Len(t, listed, 2)
	assert.Equal(t, "c2", listed[0].ID)
	assert.Equal(t, "Category added successfully", notifier.Current().Message)
}

func TestCategoryService_CreateValidationBounds(t *testing.T) {
	repo := new(MockCategoryRepository)
	products := new(MockProductRepository)
	service, _ := newCategoryService(repo, products)

	_, err := service.Create(services.CategoryInput{Name: "x"})

	var fieldErrs services.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "name")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCategoryService_Update(t *testing.T) {
	repo := new(MockCategoryRepository)
	products := new(MockProductRepository)
	service, _ := newCategoryService(repo, products)

	repo.On("GetAll").Return([]models.Category{{ID: "c1", Name: "Electronics"}}, nil)
	assert.NoError(t, service.Load())

	repo.On("GetByID", "c1").Return(&models.Category{ID: "c1", Name: "Electronics"}, nil)
	canonical := &models.Category{ID: "c1", Name: "Consumer Electronics"}
	repo.On("Update", mock.AnythingOfType("*models.Category")).Return(canonical, nil)

	updated, err := service.Update("c1", services.CategoryInput{Name: "Consumer Electronics"})
	assert.NoError(t, err)
	assert.Equal(t, "Consumer Electronics", updated.Name)
	assert.Equal(t, "Consumer Electronics", service.List("")[0].Name)
}

func TestCategoryService_DeleteRejectedWhileInUse(t *testing.T) {
	repo := new(MockCategoryRepository)
	products := new(MockProductRepository)
	service, notifier := newCategoryService(repo, products)

	repo.On("GetAll").Return([]models.Category{{ID: "c1", Name: "Electronics"}}, nil)
	assert.NoError(t, service.Load())

	products.On("CountByCategory", "c1").Return(int64(3), nil)

	err := service.Delete("c1")
	assert.ErrorIs(t, err, services.ErrCategoryInUse)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
	assert.Len(t, service.List(""), 1)
	assert.Equal(t, notify.KindError, notifier.Current().Kind)
}

func TestCategoryService_DeleteUnusedCategory(t *testing.T) {
	repo := new(MockCategoryRepository)
	products := new(MockProductRepository)
	service, notifier := newCategoryService(repo, products)

	repo.On("GetAll").Return([]models.Category{{ID: "c1", Name: "Electronics"}}, nil)
	assert.NoError(t, service.Load())

	products.On("CountByCategory", "c1").Return(int64(0), nil)
	repo.On("Delete", "c1").Return(nil)

	assert.NoError(t, service.Delete("c1"))
	assert.Empty(t, service.List(""))
	assert.Equal(t, "Category deleted successfully", notifier.Current().Message)
}

func TestCategoryService_DeleteUsageCheckFailure(t *testing.T) {
	repo := new(MockCategoryRepository)
	products := new(MockProductRepository)
	service, _ := newCategoryService(repo, products)

	products.On("CountByCategory", "c1").Return(int64(0), errors.New("database is down"))

	assert.Error(t, service.Delete("c1"))
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}
