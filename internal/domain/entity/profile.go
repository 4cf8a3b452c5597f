package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile represents the domain identity attached 1:1 to a User.
// Contact fields are common; specialization/consultation fee apply to
// doctors and UHID applies to patients. Deleting the user cascades here.
type Profile struct {
	UserID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Phone       string     `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	Gender      string     `gorm:"type:char(1)" json:"gender,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`

	// Doctor fields
	Specialization  string          `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`

	// Patient fields
	UHID string `gorm:"type:varchar(20);uniqueIndex" json:"uhid,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
