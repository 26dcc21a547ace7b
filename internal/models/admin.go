package models

import "gorm.io/gorm"

// Admin represents a back-office account. The password is write-only: only a
// bcrypt hash is stored and it is never serialized on reads. AuthUserID links
// the record to its identity at the external auth provider; creating an admin
// provisions that identity first, and a failed local insert rolls it back.
type Admin struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string `json:"name" gorm:"type:varchar(50)" validate:"required,min=2,max=50"`
	Email        string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"`
	AuthUserID   string `json:"auth_user_id" gorm:"type:varchar(36)"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
