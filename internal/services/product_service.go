package services

import (
	"fmt"
	"io"
	"log"

	"lapak/internal/models"
	"lapak/internal/notify"
	"lapak/internal/repositories"
	"lapak/internal/store"
	"lapak/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// CatalogEventPublisher publishes catalog mutation events, best effort.
// *rabbitmq.Client satisfies it.
type CatalogEventPublisher interface {
	PublishCatalogEvent(event string, payload interface{}) error
}

// MaxImageSize is the upload ceiling for product images.
const MaxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ProductInput is the product form as submitted.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  string  `json:"category_id" validate:"required"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

// ImageUpload is a new image file attached to the form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ProductService runs the product CRUD flows and owns the cached product list
// the screens read from. Writes go to the repository first; on success the
// canonical record is reconciled into the cache and a notification is emitted.
type ProductService struct {
	repo     repositories.ProductRepository
	blobs    storage.BlobStorage
	events   CatalogEventPublisher
	notifier *notify.Notifier
	list     *store.List[models.Product]
	validate *validator.Validate
	flow     *Flow
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, blobs storage.BlobStorage, events CatalogEventPublisher, notifier *notify.Notifier) *ProductService {
	return &ProductService{
		repo:     repo,
		blobs:    blobs,
		events:   events,
		notifier: notifier,
		list: store.NewList(
			func(p models.Product) string { return p.ID },
			func(p models.Product) []string { return []string{p.Name, p.CategoryName()} },
		),
		validate: validator.New(),
		flow:     NewFlow(),
	}
}

// FlowState reports the stage of the product form's submission.
func (s *ProductService) FlowState() FlowState {
	return s.flow.State()
}

// Load fills the cached list from the repository.
func (s *ProductService) Load() error {
	products, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	s.list.Reset(products)
	return nil
}

// List returns the cached products matching term, all of them when term is
// empty. Matching is a local case-insensitive substring check over the name
// and category name.
func (s *ProductService) List(term string) []models.Product {
	return s.list.Search(term)
}

// GetByID fetches a product from the repository.
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// validateImage checks the attached file against the type allow-list and the
// size ceiling.
func validateImage(image *ImageUpload) error {
	if image == nil {
		return nil
	}
	if !allowedImageTypes[image.ContentType] {
		return FieldErrors{"image": "unsupported file format, use JPG, PNG, GIF or WebP"}
	}
	if image.Size > MaxImageSize {
		return FieldErrors{"image": "file is too large, the maximum is 5MB"}
	}
	return nil
}

// uploadImage stores the file under a unique path and returns its public URL.
func (s *ProductService) uploadImage(image *ImageUpload) (string, error) {
	path := storage.UniquePath("products", image.Filename)
	if err := s.blobs.Upload(path, image.Content); err != nil {
		return "", FieldErrors{"image": fmt.Sprintf("failed to upload image: %v", err)}
	}
	return s.blobs.GetPublicURL(path), nil
}

// Create validates the form, uploads the image if one was attached (the
// record write is only submitted once the upload yielded a durable URL),
// inserts the record and prepends the canonical result to the cached list.
func (s *ProductService) Create(input ProductInput, image *ImageUpload) (*models.Product, error) {
	var created *models.Product

	err := s.flow.run(
		func() error {
			if err := s.validate.Struct(input); err != nil {
				return fieldErrorsFrom(err)
			}
			return validateImage(image)
		},
		func() error {
			imageURL := input.ImageURL
			if image != nil {
				url, err := s.uploadImage(image)
				if err != nil {
					return err
				}
				imageURL = url
			}

			product := models.Product{
				Name:        input.Name,
				Description: input.Description,
				Price:       input.Price,
				Stock:       input.Stock,
				CategoryID:  input.CategoryID,
				ImageURL:    imageURL,
			}
			canonical, err := s.repo.Create(&product)
			if err != nil {
				return fmt.Errorf("failed to save product: %w", err)
			}
			created = canonical
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.list.Prepend(*created)
	s.notifier.Success("Product added successfully")
	s.publishEvent("product.created", created)
	return created, nil
}

// Update validates the form, uploads a newly attached image, saves the record
// and replaces the matching entry in the cached list.
func (s *ProductService) Update(id string, input ProductInput, image *ImageUpload) (*models.Product, error) {
	var updated *models.Product

	err := s.flow.run(
		func() error {
			if err := s.validate.Struct(input); err != nil {
				return fieldErrorsFrom(err)
			}
			return validateImage(image)
		},
		func() error {
			existing, err := s.repo.GetByID(id)
			if err != nil {
				return err
			}

			imageURL := input.ImageURL
			if image != nil {
				url, uploadErr := s.uploadImage(image)
				if uploadErr != nil {
					return uploadErr
				}
				imageURL = url
			}

			existing.Name = input.Name
			existing.Description = input.Description
			existing.Price = input.Price
			existing.Stock = input.Stock
			existing.CategoryID = input.CategoryID
			existing.ImageURL = imageURL
			existing.Category = nil // re-joined on the reload after save

			canonical, err := s.repo.Update(existing)
			if err != nil {
				return fmt.Errorf("failed to save product: %w", err)
			}
			updated = canonical
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.list.Replace(*updated)
	s.notifier.Success("Product updated successfully")
	s.publishEvent("product.updated", updated)
	return updated, nil
}

// Delete removes the product and drops it from the cached list. On failure the
// list is left untouched.
func (s *ProductService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to delete product: %v", err))
		return err
	}

	s.list.Remove(id)
	s.notifier.Success("Product deleted successfully")
	s.publishEvent("product.deleted", map[string]string{"id": id})
	return nil
}

func (s *ProductService) publishEvent(event string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
