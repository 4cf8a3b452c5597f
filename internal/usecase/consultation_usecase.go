package usecase

import (
	"context"
	"errors"

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
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrAppointmentCancelled = errors.New("appointment is cancelled")
)

type ConsultationUsecase interface {
	// SaveConsultation records or replaces the prescription for an
	// appointment and marks the appointment completed.
	SaveConsultation(ctx context.Context, appointmentID uuid.UUID, req *dto.SaveConsultationRequest) (*dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, appointmentID uuid.UUID) (*dto.PrescriptionResponse, error)
	ListPatientPrescriptions(ctx context.Context, patientID uuid.UUID) (*dto.PrescriptionListResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	prescriptionRepo repository.PrescriptionRepository
	auditSvc         service.AuditService
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	prescriptionRepo repository.PrescriptionRepository,
	auditSvc service.AuditService,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
		auditSvc:         auditSvc,
	}
}

func (u *consultationUsecase) SaveConsultation(ctx context.Context, appointmentID uuid.UUID, req *dto.SaveConsultationRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}

	// Doctors may only write prescriptions for their own appointments.
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok || appointment.DoctorID == nil || *appointment.DoctorID != doctorID {
		return nil, ErrAppointmentNotOwned
	}

	prescription := &entity.Prescription{
		AppointmentID: appointmentID,
		Medicines:     req.Medicines,
		Notes:         req.Notes,
	}

	// Saving twice for the same appointment replaces the prior prescription.
	if err := u.prescriptionRepo.Upsert(tx, prescription); err != nil {
		u.log.Warnf("Failed to save prescription for %s: %+v", appointmentID, err)
		return nil, err
	}

	if err := u.appointmentRepo.UpdateStatus(tx, appointmentID, entity.AppointmentStatusCompleted); err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if err := u.auditSvc.Log(tx, &doctorID, entity.AuditActionConsultationSave, entity.JSON{
		"appointment_id": appointmentID.String(),
	}); err != nil {
		u.log.Warnf("Failed to audit consultation for %s: %+v", appointmentID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *consultationUsecase) GetPrescription(ctx context.Context, appointmentID uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find prescription for %s: %+v", appointmentID, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *consultationUsecase) ListPatientPrescriptions(ctx context.Context, patientID uuid.UUID) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for %s: %+v", patientID, err)
		return nil, err
	}
	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}
