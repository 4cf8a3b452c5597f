package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AdmitPatientRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	Ward      string    `json:"ward" validate:"required"`
	BedNumber string    `json:"bed_number" validate:"required"`
}

// Response DTOs

type AdmissionResponse struct {
	ID           uuid.UUID  `json:"id"`
	PatientID    uuid.UUID  `json:"patient_id"`
	PatientName  string     `json:"patient_name,omitempty"`
	Ward         string     `json:"ward"`
	BedNumber    string     `json:"bed_number"`
	AdmittedAt   time.Time  `json:"admitted_at"`
	DischargedAt *time.Time `json:"discharged_at,omitempty"`
	Status       string     `json:"status"`
}

type AdmissionListResponse struct {
	Admissions []AdmissionResponse `json:"admissions"`
	Total      int                 `json:"total"`
}
