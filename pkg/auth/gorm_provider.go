package auth

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// identityRecord is the persisted shape of an Identity.
type identityRecord struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	Email        string `gorm:"uniqueIndex;type:varchar(255)"`
	PasswordHash string `gorm:"type:varchar(255)"`
	gorm.Model
}

func (identityRecord) TableName() string { return "identities" }

// GormProvider implements IdentityProvider and SessionProvider over an
// identities table, with bcrypt password hashes and JWT session tokens.
// Sign-out revokes the token in memory for the lifetime of the process.
type GormProvider struct {
	db         *gorm.DB
	jwtSecret  []byte
	tokenDurat time.Duration

	mu      sync.Mutex
	revoked map[string]struct{}
}

// NewGormProvider creates a provider issuing tokens signed with jwtSecret,
// valid for 24 hours.
func NewGormProvider(db *gorm.DB, jwtSecret string) *GormProvider {
	return &GormProvider{
		db:         db,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
		revoked:    make(map[string]struct{}),
	}
}

// Migrate creates the identities table.
func (p *GormProvider) Migrate() error {
	return p.db.AutoMigrate(&identityRecord{})
}

// CreateUser provisions a new identity and returns its id.
func (p *GormProvider) CreateUser(email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	record := identityRecord{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := p.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to create identity: %w", err)
	}
	return record.ID, nil
}

// UpdateUserByID applies the non-empty fields of changes to the identity.
func (p *GormProvider) UpdateUserByID(id string, changes UserChanges) error {
	updates := map[string]interface{}{}
	if changes.Email != "" {
		updates["email"] = changes.Email
	}
	if changes.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(changes.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password_hash"] = string(hash)
	}
	if len(updates) == 0 {
		return nil
	}

	res := p.db.Model(&identityRecord{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update identity %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrIdentityNotFound
	}
	return nil
}

// DeleteUser removes the identity.
func (p *GormProvider) DeleteUser(id string) error {
	res := p.db.Delete(&identityRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete identity %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrIdentityNotFound
	}
	return nil
}

// ListUsers returns all identities.
func (p *GormProvider) ListUsers() ([]Identity, error) {
	var records []identityRecord
	if err := p.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	identities := make([]Identity, 0, len(records))
	for _, r := range records {
		identities = append(identities, Identity{ID: r.ID, Email: r.Email})
	}
	return identities, nil
}

// SignIn authenticates an identity and returns a session token.
func (p *GormProvider) SignIn(email, password string) (string, error) {
	var record identityRecord
	if err := p.db.First(&record, "email = ?", email).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   record.ID,
		"email": record.Email,
		"exp":   time.Now().Add(p.tokenDurat).Unix(),
		"iat":   time.Now().Unix(),
	})

	tokenString, err := token.SignedString(p.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// CurrentUser resolves the session token to its identity.
func (p *GormProvider) CurrentUser(tokenString string) (*Identity, error) {
	p.mu.Lock()
	_, isRevoked := p.revoked[tokenString]
	p.mu.Unlock()
	if isRevoked {
		return nil, fmt.Errorf("token has been signed out")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	return &Identity{ID: sub, Email: email}, nil
}

// SignOut revokes the session token.
func (p *GormProvider) SignOut(tokenString string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.revoked[tokenString] = struct{}{}
	return nil
}
