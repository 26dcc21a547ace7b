package services

import (
	"fmt"
	"log"

	"lapak/internal/models"
	"lapak/internal/notify"
	"lapak/internal/repositories"
	"lapak/internal/store"
	"lapak/pkg/auth"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// AdminInput is the admin form as submitted. Password is required when
// creating a new admin and optional on update.
type AdminInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// AdminService runs the admin CRUD flows against both the local admins table
// and the external auth identity provider.
//
// Creating an admin provisions the identity first; a failed local insert
// rolls the identity back. Updating is intentionally partial-success: the
// local record change is the primary effect, and a failed identity email or
// password update is logged but does not fail the operation, which can leave
// the identity out of step with the record until the next successful update.
type AdminService struct {
	repo       repositories.AdminRepository
	identities auth.IdentityProvider
	events     CatalogEventPublisher
	notifier   *notify.Notifier
	list       *store.List[models.Admin]
	validate   *validator.Validate
	flow       *Flow
}

// NewAdminService creates a new AdminService.
func NewAdminService(repo repositories.AdminRepository, identities auth.IdentityProvider, events CatalogEventPublisher, notifier *notify.Notifier) *AdminService {
	return &AdminService{
		repo:       repo,
		identities: identities,
		events:     events,
		notifier:   notifier,
		list: store.NewList(
			func(a models.Admin) string { return a.ID },
			func(a models.Admin) []string { return []string{a.Name, a.Email} },
		),
		validate: validator.New(),
		flow:     NewFlow(),
	}
}

// FlowState reports the stage of the admin form's submission.
func (s *AdminService) FlowState() FlowState {
	return s.flow.State()
}

// Load fills the cached list from the repository.
func (s *AdminService) Load() error {
	admins, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load admins: %w", err)
	}
	s.list.Reset(admins)
	return nil
}

// List returns the cached admins matching term over name and email.
func (s *AdminService) List(term string) []models.Admin {
	return s.list.Search(term)
}

// GetByID fetches an admin from the repository.
func (s *AdminService) GetByID(id string) (*models.Admin, error) {
	return s.repo.GetByID(id)
}

// Create validates the form, provisions the auth identity, then inserts the
// local record referencing it. If the insert fails the provisioned identity
// is deleted again; if that compensating delete also fails, both errors are
// reported and the orphaned identity is left for the operator.
func (s *AdminService) Create(input AdminInput) (*models.Admin, error) {
	var created *models.Admin

	err := s.flow.run(
		func() error {
			if err := fieldErrorsFrom(s.validate.Struct(input)); err != nil {
				return err
			}
			if input.Password == "" {
				return FieldErrors{"password": "a password is required for a new admin"}
			}
			return nil
		},
		func() error {
			identityID, err := s.identities.CreateUser(input.Email, input.Password)
			if err != nil {
				return fmt.Errorf("failed to create auth user: %w", err)
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			admin := models.Admin{
				Name:         input.Name,
				Email:        input.Email,
				PasswordHash: string(hash),
				AuthUserID:   identityID,
			}
			canonical, insertErr := s.repo.Create(&admin)
			if insertErr != nil {
				if compErr := s.identities.DeleteUser(identityID); compErr != nil {
					return fmt.Errorf("failed to save admin: %v; compensating identity delete also failed, identity %s is orphaned: %w", insertErr, identityID, compErr)
				}
				return fmt.Errorf("failed to save admin: %w", insertErr)
			}
			created = canonical
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.list.Prepend(*created)
	s.notifier.Success("Admin added successfully")
	s.publishEvent("admin.created", created)
	return created, nil
}

// Update validates the form and saves the local record. Email and password
// changes against the auth identity are attempted afterwards; their failure
// is logged and does not fail the update (partial-success policy).
func (s *AdminService) Update(id string, input AdminInput) (*models.Admin, error) {
	var updated *models.Admin

	err := s.flow.run(
		func() error {
			return fieldErrorsFrom(s.validate.Struct(input))
		},
		func() error {
			existing, err := s.repo.GetByID(id)
			if err != nil {
				return err
			}
			previousEmail := existing.Email

			existing.Name = input.Name
			existing.Email = input.Email
			if input.Password != "" {
				hash, hashErr := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
				if hashErr != nil {
					return fmt.Errorf("failed to hash password: %w", hashErr)
				}
				existing.PasswordHash = string(hash)
			}

			canonical, err := s.repo.Update(existing)
			if err != nil {
				return fmt.Errorf("failed to save admin: %w", err)
			}
			updated = canonical

			if canonical.AuthUserID != "" {
				if input.Email != previousEmail {
					if authErr := s.identities.UpdateUserByID(canonical.AuthUserID, auth.UserChanges{Email: input.Email}); authErr != nil {
						log.Printf("Error updating auth user email for admin %s: %v", canonical.ID, authErr)
					}
				}
				if input.Password != "" {
					if authErr := s.identities.UpdateUserByID(canonical.AuthUserID, auth.UserChanges{Password: input.Password}); authErr != nil {
						log.Printf("Error updating auth user password for admin %s: %v", canonical.ID, authErr)
					}
				}
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.list.Replace(*updated)
	s.notifier.Success("Admin updated successfully")
	s.publishEvent("admin.updated", updated)
	return updated, nil
}

// Delete removes the admin record, then best-effort removes its auth
// identity. When the record carries no identity reference, the identity is
// looked up by email as a fallback.
func (s *AdminService) Delete(id string) error {
	admin, err := s.repo.GetByID(id)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to delete admin: %v", err))
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.notifier.Error(fmt.Sprintf("Failed to delete admin: %v", err))
		return err
	}

	if admin.AuthUserID != "" {
		if authErr := s.identities.DeleteUser(admin.AuthUserID); authErr != nil {
			log.Printf("Error deleting auth user %s for admin %s: %v", admin.AuthUserID, id, authErr)
		}
	} else {
		s.deleteIdentityByEmail(admin.Email)
	}

	s.list.Remove(id)
	s.notifier.Success("Admin deleted successfully")
	s.publishEvent("admin.deleted", map[string]string{"id": id})
	return nil
}

// deleteIdentityByEmail is the best-effort fallback for admin records created
// before identity references were stored.
func (s *AdminService) deleteIdentityByEmail(email string) {
	identities, err := s.identities.ListUsers()
	if err != nil {
		log.Printf("Error listing auth users for fallback delete: %v", err)
		return
	}
	for _, identity := range identities {
		if identity.Email == email {
			if err := s.identities.DeleteUser(identity.ID); err != nil {
				log.Printf("Error deleting auth user %s found by email: %v", identity.ID, err)
			}
			return
		}
	}
}

func (s *AdminService) publishEvent(event string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
