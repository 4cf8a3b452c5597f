package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateUserRequest is the admin-portal payload for creating doctor, staff,
// pharmacy and lab accounts.
type CreateUserRequest struct {
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required,min=6"`
	FullName        string          `json:"full_name" validate:"required,min=2"`
	Role            string          `json:"role" validate:"required,oneof=doctor staff pharmacy lab"`
	Phone           string          `json:"phone" validate:"omitempty,min=10,max=20"`
	Specialization  string          `json:"specialization" validate:"omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

type UpdateUserRequest struct {
	FullName        string          `json:"full_name" validate:"omitempty,min=2"`
	Phone           string          `json:"phone" validate:"omitempty,min=10,max=20"`
	Address         string          `json:"address" validate:"omitempty"`
	Specialization  string          `json:"specialization" validate:"omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	IsActive        *bool           `json:"is_active"`
}

// RegisterPatientByStaffRequest is the front-desk patient registration
// payload. No OTP gate; the staff member vouches for the contact details.
type RegisterPatientByStaffRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	Phone       string `json:"phone" validate:"required,min=10,max=20"`
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	DateOfBirth string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Address     string `json:"address" validate:"omitempty"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	FullName        string          `json:"full_name"`
	Specialization  string          `json:"specialization"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    *uuid.UUID             `json:"user_id,omitempty"`
	UserName  string                 `json:"user_name,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
