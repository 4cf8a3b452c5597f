package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment records a scheduled encounter between a patient and a doctor.
// PatientName and PatientPhone are denormalized snapshots taken at booking
// time so the record survives later profile edits.
type Appointment struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID     *uuid.UUID        `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	PatientName  string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientPhone string            `gorm:"type:varchar(20)" json:"patient_phone,omitempty"`
	ScheduledAt  time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Status       AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      Profile       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor       *Profile      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Prescription *Prescription `gorm:"foreignKey:AppointmentID" json:"prescription,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if the appointment is still open
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCompleted checks if the appointment has been consulted
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Complete marks the appointment as completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel marks the appointment as cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
