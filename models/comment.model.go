package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Content  string `json:"content" gorm:"type:text"`
	Rating   int    `json:"rating"` // free integer, no enforced range
}
