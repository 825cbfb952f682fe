package models

import "gorm.io/gorm"

// DefaultCourseImage is used when a course is created without an upload.
const DefaultCourseImage = "/static/images/courses/default.png"

// Course represents a marketplace course
type Course struct {
	gorm.Model
	Title          string  `json:"title" gorm:"not null"`
	Format         string  `json:"format"`
	Description    string  `json:"description" gorm:"type:text"`
	Price          float64 `json:"price" gorm:"default:0"`
	DurationHours  int64   `json:"duration_hours" gorm:"default:0"`
	Rating         float64 `json:"rating" gorm:"default:0"`
	PurchasedCount uint    `json:"purchased_count" gorm:"default:0"` // only grows, via checkout or ledger create
	ImageURL       string  `json:"image_url" gorm:"default:'/static/images/courses/default.png'"`

	CategoryID uint     `json:"category_id" gorm:"index"`
	OwnerID    uint     `json:"owner_id" gorm:"index"`
	Category   Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
