package usecase

import (
	"context"
	"errors"
	"time"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentNotOwned         = errors.New("appointment does not belong to you")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrAppointmentCompleted        = errors.New("appointment is already completed")
	ErrPatientNotFound             = errors.New("patient not found")
	ErrDoctorNotFound              = errors.New("doctor not found")
	ErrPastSchedule                = errors.New("cannot book an appointment in the past")
)

type AppointmentUsecase interface {
	// Book creates an appointment. When asSelf is true the patient books
	// for their own profile and req.PatientID is ignored.
	Book(ctx context.Context, req *dto.BookAppointmentRequest, asSelf bool) (*dto.AppointmentResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListByDate(ctx context.Context, day time.Time) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, id uuid.UUID, requirePatientOwnership bool) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	profileRepo     repository.ProfileRepository
	auditSvc        service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	profileRepo repository.ProfileRepository,
	auditSvc service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		profileRepo:     profileRepo,
		auditSvc:        auditSvc,
	}
}

func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest, asSelf bool) (*dto.AppointmentResponse, error) {
	patientID := req.PatientID
	if asSelf {
		userID, ok := middleware.GetUserIDFromContext(ctx)
		if !ok {
			return nil, errors.New("user not found in context")
		}
		patientID = userID
	}

	if req.ScheduledAt.Before(time.Now()) {
		return nil, ErrPastSchedule
	}

	patient, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil || patient.UHID == "" {
		return nil, ErrPatientNotFound
	}

	if req.DoctorID != nil {
		doctor, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", *req.DoctorID, err)
			return nil, err
		}
		if doctor == nil || doctor.User.RoleID != entity.RoleIDDoctor {
			return nil, ErrDoctorNotFound
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Snapshot name and phone so the booking survives later profile edits.
	appointment := &entity.Appointment{
		PatientID:    patientID,
		DoctorID:     req.DoctorID,
		PatientName:  patient.User.FullName,
		PatientPhone: patient.Phone,
		ScheduledAt:  req.ScheduledAt,
		Status:       entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"patient_id":     patientID.String(),
	}); err != nil {
		u.log.Warnf("Failed to audit booking: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patientID, err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListByDate(ctx context.Context, day time.Time) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), day)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", day.Format("2006-01-02"), err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Cancel cancels an appointment. Patients may only cancel their own; only
// scheduled appointments can be cancelled, and the status flip is atomic so
// a double cancel reports the conflict.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID, requirePatientOwnership bool) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if requirePatientOwnership {
		userID, ok := middleware.GetUserIDFromContext(ctx)
		if !ok || appointment.PatientID != userID {
			return ErrAppointmentNotOwned
		}
	}

	if appointment.IsCompleted() {
		return ErrAppointmentCompleted
	}

	affected, err := u.appointmentRepo.CancelIfScheduled(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentAlreadyCancelled
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(u.db.WithContext(ctx), &actorID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_id": id.String(),
	}); err != nil {
		u.log.Warnf("Failed to audit cancellation of %s: %+v", id, err)
	}

	return nil
}
