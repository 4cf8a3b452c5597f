package usecase

import (
	"context"
	"testing"
	"time"

	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB builds a detached gorm handle. It carries context through the
// repository stubs but cannot execute queries, which is exactly what these
// tests want.
func newTestDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type stubAuditService struct {
	err     error
	actions []string
}

func (s *stubAuditService) Log(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	s.actions = append(s.actions, action)
	return s.err
}

func (s *stubAuditService) LogChange(tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return s.err
}

type stubProfileRepo struct {
	byUserID map[uuid.UUID]*entity.Profile
	byUHID   map[string]*entity.Profile
	byPhone  map[string]*entity.Profile
}

func (s *stubProfileRepo) Create(db *gorm.DB, profile *entity.Profile) error { return nil }

func (s *stubProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	return s.byUserID[userID], nil
}

func (s *stubProfileRepo) FindByPhone(db *gorm.DB, phone string) (*entity.Profile, error) {
	return s.byPhone[phone], nil
}

func (s *stubProfileRepo) FindByUHID(db *gorm.DB, uhid string) (*entity.Profile, error) {
	return s.byUHID[uhid], nil
}

func (s *stubProfileRepo) FindDoctors(db *gorm.DB, specialization string) ([]entity.Profile, error) {
	return nil, nil
}

func (s *stubProfileRepo) Update(db *gorm.DB, profile *entity.Profile) error { return nil }

type stubAppointmentRepo struct {
	appointment    *entity.Appointment
	cancelAffected int64
	cancelCalls    int
}

func (s *stubAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

func (s *stubAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return s.appointment, nil
}

func (s *stubAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) FindByDate(db *gorm.DB, day time.Time) ([]entity.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return nil
}

func (s *stubAppointmentRepo) CancelIfScheduled(db *gorm.DB, id uuid.UUID) (int64, error) {
	s.cancelCalls++
	return s.cancelAffected, nil
}

func newCancelFixture(status entity.AppointmentStatus, affected int64) (*stubAppointmentRepo, AppointmentUsecase) {
	repo := &stubAppointmentRepo{
		appointment:    &entity.Appointment{ID: uuid.New(), PatientID: uuid.New(), Status: status},
		cancelAffected: affected,
	}
	uc := NewAppointmentUsecase(newTestDB(), newTestLogger(), repo, &stubProfileRepo{}, &stubAuditService{})
	return repo, uc
}

func TestCancelScheduledAppointment(t *testing.T) {
	_, uc := newCancelFixture(entity.AppointmentStatusScheduled, 1)

	err := uc.Cancel(context.Background(), uuid.New(), false)
	assert.NoError(t, err)
}

func TestCancelCompletedAppointmentRejected(t *testing.T) {
	repo, uc := newCancelFixture(entity.AppointmentStatusCompleted, 1)

	err := uc.Cancel(context.Background(), uuid.New(), false)
	require.ErrorIs(t, err, ErrAppointmentCompleted)
	assert.Zero(t, repo.cancelCalls, "completed appointment must never reach the status flip")
}

func TestCancelAlreadyCancelledAppointment(t *testing.T) {
	_, uc := newCancelFixture(entity.AppointmentStatusCancelled, 0)

	err := uc.Cancel(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, ErrAppointmentAlreadyCancelled)
}

func TestCancelRequiresOwnership(t *testing.T) {
	repo, uc := newCancelFixture(entity.AppointmentStatusScheduled, 1)

	otherPatient := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())
	err := uc.Cancel(otherPatient, repo.appointment.ID, true)
	require.ErrorIs(t, err, ErrAppointmentNotOwned)

	owner := context.WithValue(context.Background(), middleware.UserIDKey, repo.appointment.PatientID)
	assert.NoError(t, uc.Cancel(owner, repo.appointment.ID, true))
}
