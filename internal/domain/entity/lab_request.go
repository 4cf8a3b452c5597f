package entity

import (
	"time"

	"github.com/google/uuid"
)

// LabRequestStatus represents the status of a laboratory request
type LabRequestStatus string

const (
	LabRequestStatusRequested LabRequestStatus = "requested"
	LabRequestStatusCompleted LabRequestStatus = "completed"
)

// LabRequest is a test ordered by a doctor and fulfilled by the lab portal
type LabRequest struct {
	ID            int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentID *uuid.UUID       `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	TestName      string           `gorm:"type:varchar(255);not null" json:"test_name"`
	Status        LabRequestStatus `gorm:"type:lab_request_status;not null;default:'requested';index" json:"status"`
	Result        string           `gorm:"type:text" json:"result,omitempty"`
	RequestedAt   time.Time        `gorm:"autoCreateTime" json:"requested_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`

	// Relationships
	Patient Profile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (LabRequest) TableName() string {
	return "lab_requests"
}
