package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLabRequestRequest struct {
	PatientID     uuid.UUID  `json:"patient_id" validate:"required"`
	AppointmentID *uuid.UUID `json:"appointment_id"`
	TestName      string     `json:"test_name" validate:"required"`
}

type CompleteLabRequestRequest struct {
	Result string `json:"result" validate:"required"`
}

// Response DTOs

type LabRequestResponse struct {
	ID            int64      `json:"id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	PatientName   string     `json:"patient_name,omitempty"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	TestName      string     `json:"test_name"`
	Status        string     `json:"status"`
	Result        string     `json:"result,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type LabRequestListResponse struct {
	Requests []LabRequestResponse `json:"requests"`
	Total    int                  `json:"total"`
}
