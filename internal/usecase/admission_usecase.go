package usecase

import (
	"context"
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

type AdmissionUsecase interface {
	Admit(ctx context.Context, req *dto.AdmitPatientRequest) (*dto.AdmissionResponse, error)
	GetAdmission(ctx context.Context, id uuid.UUID) (*dto.AdmissionResponse, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AdmissionListResponse, error)
}

type admissionUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	admissionRepo repository.AdmissionRepository
	profileRepo   repository.ProfileRepository
	auditSvc      service.AuditService
}

func NewAdmissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	admissionRepo repository.AdmissionRepository,
	profileRepo repository.ProfileRepository,
	auditSvc service.AuditService,
) AdmissionUsecase {
	return &admissionUsecase{
		db:            db,
		log:           log,
		admissionRepo: admissionRepo,
		profileRepo:   profileRepo,
		auditSvc:      auditSvc,
	}
}

// Admit opens an inpatient stay. Discharge is not a standalone operation;
// it happens when the IPD invoice is raised.
func (u *admissionUsecase) Admit(ctx context.Context, req *dto.AdmitPatientRequest) (*dto.AdmissionResponse, error) {
	patient, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil || patient.UHID == "" {
		return nil, ErrPatientNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admission := &entity.Admission{
		PatientID:  req.PatientID,
		Ward:       req.Ward,
		BedNumber:  req.BedNumber,
		AdmittedAt: time.Now(),
		Status:     entity.AdmissionStatusAdmitted,
	}

	if err := u.admissionRepo.Create(tx, admission); err != nil {
		u.log.Warnf("Failed to create admission: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionAdmissionCreate, entity.JSON{
		"admission_id": admission.ID.String(),
		"patient_id":   req.PatientID.String(),
		"ward":         req.Ward,
	}); err != nil {
		u.log.Warnf("Failed to audit admission: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	admission.Patient = *patient
	return converter.AdmissionToResponse(admission), nil
}

func (u *admissionUsecase) GetAdmission(ctx context.Context, id uuid.UUID) (*dto.AdmissionResponse, error) {
	admission, err := u.admissionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find admission %s: %+v", id, err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}
	return converter.AdmissionToResponse(admission), nil
}

func (u *admissionUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID) (*dto.AdmissionListResponse, error) {
	admissions, err := u.admissionRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list admissions for %s: %+v", patientID, err)
		return nil, err
	}
	return &dto.AdmissionListResponse{
		Admissions: converter.AdmissionsToResponses(admissions),
		Total:      len(admissions),
	}, nil
}
