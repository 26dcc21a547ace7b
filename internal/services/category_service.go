package services

import (
	"errors"
	"fmt"
	"log"

	"lapak/internal/models"
	"lapak/internal/notify"
	"lapak/internal/repositories"
	"lapak/internal/store"

	"github.com/go-playground/validator/v10"
)

// ErrCategoryInUse is returned when a delete is attempted on a category still
// referenced by at least one product. The delete is never sent.
var ErrCategoryInUse = errors.New("category is still in use by products")

// CategoryInput is the category form as submitted.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// CategoryService runs the category CRUD flows and owns the cached category
// list.
type CategoryService struct {
	repo     repositories.CategoryRepository
	products repositories.ProductRepository
	events   CatalogEventPublisher
	notifier *notify.Notifier
	list     *store.List[models.Category]
	validate *validator.Validate
	flow     *Flow
}

// NewCategoryService creates a new CategoryService. The product repository is
// needed for the delete precondition.
func NewCategoryService(repo repositories.CategoryRepository, products repositories.ProductRepository, events CatalogEventPublisher, notifier *notify.Notifier) *CategoryService {
	return &CategoryService{
		repo:     repo,
		products: products,
		events:   events,
		notifier: notifier,
		list: store.NewList(
			func(c models.Category) string { return c.ID },
			func(c models.Category) []string { return []string{c.Name, c.Description} },
		),
		validate: validator.New(),
		flow:     NewFlow(),
	}
}

// FlowState reports the stage of the category form's submission.
func (s *CategoryService) FlowState() FlowState {
	return s.flow.State()
}

// Load fills the cached list from the repository.
func (s *CategoryService) Load() error {
	categories, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	s.list.Reset(categories)
	return nil
}

// List returns the cached categories matching term over name and description.
func (s *CategoryService) List(term string) []models.Category {
	return s.list.Search(term)
}

// GetByID fetches a category from the repository.
func (s *CategoryService) GetByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// Create validates the form, inserts the record and prepends the canonical
// result to the cached list.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	var created *models.Category

	err := s.flow.run(
		func() error {
			return fieldErrorsFrom(s.validate.Struct(input))
		},
		func() error {
			category := models.Category{
				Name:        input.Name,
				Description: input.Description,
			}
			canonical, err := s.repo.Create(&category)
			if err != nil {
				return fmt.Errorf("failed to save category: %w", err)
			}
			created = canonical
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.list.Prepend(*created)
	s.notifier.Success("Category added successfully")
	s.publishEvent("category.created", created)
	return created, nil
}

// Update validates the form, saves the record and replaces the matching entry
// in the cached list.
func (s *CategoryService) Update(id string, input CategoryInput) (*models.Category, error) {
	var updated *models.Category

	err := s.flow.run(
		func() error {
			return fieldErrorsFrom(s.validate.Struct(input))
		},
		func() error {
			existing, err := s.repo.GetByID(id)
			if err != nil {
				return err
			}

			existing.Name = input.Name
			existing.Description = input.Description

			canonical, err := s.repo.Update(existing)
			if err != nil {
				return fmt.Errorf("failed to save category: %w", err)
			}
			updated = canonical
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.list.Replace(*updated)
	s.notifier.Success("Category updated successfully")
	s.publishEvent("category.updated", updated)
	return updated, nil
}

// Delete removes the category unless a product still references it. The
// precondition runs before any delete is attempted; on rejection the list is
// unchanged.
func (s *CategoryService) Delete(id string) error {
	count, err := s.products.CountByCategory(id)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to check category usage: %v", err))
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if count > 0 {
		s.notifier.Error("Category cannot be deleted because it is still in use by products")
		return ErrCategoryInUse
	}

	if err := s.repo.Delete(id); err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to delete category: %v", err))
		return err
	}

	s.list.Remove(id)
	s.notifier.Success("Category deleted successfully")
	s.publishEvent("category.deleted", map[string]string{"id": id})
	return nil
}

func (s *CategoryService) publishEvent(event string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
