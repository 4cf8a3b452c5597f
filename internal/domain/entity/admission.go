package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdmissionStatus represents the status of an IPD admission
type AdmissionStatus string

const (
	AdmissionStatusAdmitted   AdmissionStatus = "admitted"
	AdmissionStatusDischarged AdmissionStatus = "discharged"
)

// Admission records an inpatient stay. Discharge happens together with the
// IPD invoice in a single transaction.
type Admission struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	Ward         string          `gorm:"type:varchar(50);not null" json:"ward"`
	BedNumber    string          `gorm:"type:varchar(20);not null" json:"bed_number"`
	AdmittedAt   time.Time       `gorm:"not null" json:"admitted_at"`
	DischargedAt *time.Time      `json:"discharged_at,omitempty"`
	Status       AdmissionStatus `gorm:"type:admission_status;not null;default:'admitted';index" json:"status"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Profile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Admission) TableName() string {
	return "admissions"
}

// IsDischarged checks if the admission has been closed
func (a *Admission) IsDischarged() bool {
	return a.Status == AdmissionStatusDischarged
}
