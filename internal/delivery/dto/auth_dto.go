package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest is the patient self-registration payload. The
// phone must have a verified OTP before registration is accepted.
type RegisterPatientRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	Phone       string `json:"phone" validate:"required,min=10,max=20"`
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	DateOfBirth string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Address     string `json:"address" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type ProfileResponse struct {
	Phone           string          `json:"phone,omitempty"`
	Gender          string          `json:"gender,omitempty"`
	DateOfBirth     string          `json:"date_of_birth,omitempty"`
	Address         string          `json:"address,omitempty"`
	Specialization  string          `json:"specialization,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	UHID            string          `json:"uhid,omitempty"`
}

type UserResponse struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	FullName  string           `json:"full_name"`
	Role      string           `json:"role"`
	IsActive  bool             `json:"is_active"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
