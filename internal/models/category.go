package models

import "gorm.io/gorm"

// Category groups products. A category cannot be deleted while at least one
// product still references it.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"omitempty,max=255"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
