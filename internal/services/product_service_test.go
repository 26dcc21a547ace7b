package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"lapak/internal/models"
	"lapak/internal/notify"
	"lapak/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductService(repo *MockProductRepository, blobs *MockBlobStorage) (*services.ProductService, *notify.Notifier) {
	notifier := notify.NewNotifier(time.Minute)
	return services.NewProductService(repo, blobs, nil, notifier), notifier
}

func validProductInput() services.ProductInput {
	return services.ProductInput{
		Name:       "Laptop",
		Price:      12000000,
		Stock:      10,
		CategoryID: "c1",
	}
}

func TestProductService_CreatePrependsCanonicalRecord(t *testing.T) {
	repo := new(MockProductRepository)
	blobs := new(MockBlobStorage)
	service, notifier := newProductService(repo, blobs)

	repo.On("GetAll").Return([]models.Product{{ID: "old", Name: "Mouse"}}, nil)
	assert.NoError(t, service.Load())

	canonical := &models.Product{ID: "p1", Name: "Laptop", Price: 12000000, Stock: 10, CategoryID: "c1"}
	repo.On("Create", mock.AnythingOfType("*models.Product")).Return(canonical, nil)

	created, err := service.Create(validProductInput(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "p1", created.ID)

	listed := service.List("")
	assert.Len(t, listed, 2)
	assert.Equal(t, "p1", listed[0].ID)
	assert.Equal(t, "old", listed[1].ID)

	// The new record is immediately searchable by name.
	assert.Len(t, service.List("laptop"), 1)

	assert.Equal(t, notify.KindSuccess, notifier.Current().Kind)
	assert.Equal(t, "Product added successfully", notifier.Current().Message)
	assert.Equal(t, services.FlowSucceeded, service.FlowState())
}

func TestProductService_CreateValidationFailureSkipsRepository(t *testing.T) {
	repo := new(MockProductRepository)
	blobs := new(MockBlobStorage)
	service, _ := newProductService(repo, blobs)

	input := validProductInput()
	input.Name = "ab" // below the 3 character minimum
	input.Price = 0

	_, err := service.Create(input, nil)

	var fieldErrs services.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "price")
	repo.AssertNotCalled(t, "Create", mock.Anything)
	assert.Equal(t, services.FlowFailed, service.FlowState())
}

func TestProductService_CreateRejectsOversizedImage(t *testing.T) {
	repo := new(MockProductRepository)
	blobs := new(MockBlobStorage)
	service, _ := newProductService(repo, blobs)

	image := &services.ImageUpload{
		Filename:    "photo.png",
		ContentType: "image/png",
		Size:        services.MaxImageSize + 1,
		Content:     strings.NewReader("x"),
	}

	_, err := service.Create(validProductInput(), image)

	var fieldErrs services.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "image")
	repo.AssertNotCalled(t, "Create", mock.Anything)
	blobs.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestProductService_CreateRejectsUnsupportedImageType(t *testing.T) {
	repo := new(MockProductRepository)
	blobs := new(MockBlobStorage)
	service, _ := newProductService(repo, blobs)

	image := &services.ImageUpload{
		Filename:    "document.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Content:     strings.NewReader("x"),
	}

	_, err := service.Create(validProductInput(), image)

	var fieldErrs services.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "image")
	blobs.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestProductService_CreateAbortsWhenUploadFails(t *testing.T) {
	repo := new(MockProductRepository)
	blobs := new(MockBlobStorage)
	service, _ := newProductService(repo, blobs)

	image := &services.ImageUpload{
		Filename:    "photo.png",
		ContentType: "image/png",
		Size:        1024,
		Content:     strings.NewReader("x"),
	}
	blobs.On("Upload", mock.Anything, mock.Anything).Return(errors.New("bucket unavailable"))

	_, err := service.Create(validProductInput(), image)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
	assert.Equal(t, services.FlowFailed, service.FlowState())
}

func TestProductService_CreateUploadsImageBeforeInsert(t *testing.T) {
	repo := new(MockProductRepository)
	blobs := new(MockBlobStorage)
	service, _ := newProductService(repo, blobs)

	image := &services.ImageUpload{
		Filename:    "photo.png",
		ContentType: "image/png",
		Size:        1024,
		Content:     strings.NewReader("x"),
	}
	blobs.On("Upload", mock.Anything, mock.Anything).Return(nil)
	blobs.On("GetPublicURL", mock.Anything).Return("/uploads/products/photo.png")

	canonical := &models.Product{ID: "p1", Name: "Laptop", ImageURL: "/uploads/products/photo.png"}
	repo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.ImageURL == "/uploads/products/photo.png"
	})).Return(canonical, nil)

	created, err := service.Create(validProductInput(), image)
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/products/photo.png", created.ImageURL)
	blobs.AssertExpectations(t)
}

func TestProductService_UpdateReplacesCachedEntry(t *testing.T) {
	repo := new(MockProductRepository)
	blobs := new(MockBlobStorage)
	service, notifier := newProductService(repo, blobs)

	repo.On("GetAll").Return([]models.Product{{ID: "p1", Name: "Laptop"}}, nil)
	assert.NoError(t, service.Load())

	existing := &models.Product{ID: "p1", Name: "Laptop", Price: 12000000, Stock: 10}
	repo.On("GetByID", "p1").Return(existing, nil)

	canonical := &models.Product{ID: "p1", Name: "Gaming Laptop", Price: 15000000, Stock: 8, CategoryID: "c1"}
	repo.On("Update", mock.AnythingOfType("*models.Product")).Return(canonical, nil)

	input := validProductInput()
	input.Name = "Gaming Laptop"
	input.Price = 15000000
	input.Stock = 8

	updated, err := service.Update("p1", input, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Gaming Laptop", updated.Name)

	listed := service.List("")
	assert.Len(t, listed, 1)
	assert.Equal(t, "Gaming Laptop", listed[0].Name)
	assert.Equal(t, "Product updated successfully", notifier.Current().Message)
}

func TestProductService_DeleteRemovesFromCache(t *testing.T) {
	repo := new(MockProductRepository)
	blobs := new(MockBlobStorage)
	service, notifier := newProductService(repo, blobs)

	repo.On("GetAll").Return([]models.Product{{ID: "p1", Name: "Laptop"}, {ID: "p2", Name: "Mouse"}}, nil)
	assert.NoError(t, service.Load())

	repo.On("Delete", "p1").Return(nil)

	assert.NoError(t, service.Delete("p1"))
	listed := service.List("")
	assert.Len(t, listed, 1)
	assert.Equal(t, "p2", listed[0].ID)
	assert.Equal(t, "Product deleted successfully", notifier.Current().Message)
}

func TestProductService_DeleteFailureLeavesCacheUntouched(t *testing.T) {
	repo := new(MockProductRepository)
	blobs := new(MockBlobStorage)
	service, notifier := newProductService(repo, blobs)

	repo.On("GetAll").Return([]models.Product{{ID: "p1", Name: "Laptop"}}, nil)
	assert.NoError(t, service.Load())

	repo.On("Delete", "p1").Return(errors.New("database is down"))

	assert.Error(t, service.Delete("p1"))
	assert.Len(t, service.List(""), 1)
	assert.Equal(t, notify.KindError, notifier.Current().Kind)
}

func TestProductService_ListSearchesNameAndCategory(t *testing.T) {
	repo := new(MockProductRepository)
	blobs := new(MockBlobStorage)
	service, _ := newProductService(repo, blobs)

	repo.On("GetAll").Return([]models.Product{
		{ID: "p1", Name: "Laptop", Category: &models.Category{ID: "c1", Name: "Electronics"}},
		{ID: "p2", Name: "Desk", Category: &models.Category{ID: "c2", Name: "Furniture"}},
	}, nil)
	assert.NoError(t, service.Load())

	assert.Len(t, service.List("electronics"), 1)
	assert.Len(t, service.List("desk"), 1)
	assert.Len(t, service.List(""), 2)
	assert.Empty(t, service.List("garden"))
}
