package models

import "gorm.io/gorm"

// Cart is a pending course selection tied to a user.
// No uniqueness on (user, course): duplicate rows are permitted.
type Cart struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Course   Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
