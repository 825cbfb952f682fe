package models

import "gorm.io/gorm"

// BoughtCourse records that a user purchased a course.
// No uniqueness: repurchasing an already-owned course succeeds.
type BoughtCourse struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Course   Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
