package models

import "gorm.io/gorm"

// Product represents a product in the store catalog. The canonical copy lives
// in the database; any list held by a screen is a cache reconciled after each
// write.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	CategoryID  string    `json:"category_id" gorm:"type:varchar(36);index" validate:"omitempty,uuid"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// CategoryName returns the joined category name, or an empty string when the
// product has no category loaded.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}
