package repository

import (
	"time"

	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByDate(db *gorm.DB, day time.Time) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	// CancelIfScheduled atomically cancels an appointment only while it is
	// still scheduled. Returns affected rows: 1 = cancelled, 0 = no-op.
	CancelIfScheduled(db *gorm.DB, id uuid.UUID) (int64, error)
}
