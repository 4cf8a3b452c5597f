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

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLabRequestNotFound         = errors.New("lab request not found")
	ErrLabRequestAlreadyCompleted = errors.New("lab request is already completed")
	ErrUnknownLabRequestStatus    = errors.New("unknown lab request status")
)

type LabUsecase interface {
	CreateRequest(ctx context.Context, req *dto.CreateLabRequestRequest) (*dto.LabRequestResponse, error)
	ListRequests(ctx context.Context, status string) (*dto.LabRequestListResponse, error)
	CompleteRequest(ctx context.Context, id int64, req *dto.CompleteLabRequestRequest) (*dto.LabRequestResponse, error)
}

type labUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	labRepo     repository.LabRequestRepository
	profileRepo repository.ProfileRepository
	auditSvc    service.AuditService
}

func NewLabUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	labRepo repository.LabRequestRepository,
	profileRepo repository.ProfileRepository,
	auditSvc service.AuditService,
) LabUsecase {
	return &labUsecase{
		db:          db,
		log:         log,
		labRepo:     labRepo,
		profileRepo: profileRepo,
		auditSvc:    auditSvc,
	}
}

func (u *labUsecase) CreateRequest(ctx context.Context, req *dto.CreateLabRequestRequest) (*dto.LabRequestResponse, error) {
	patient, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request := &entity.LabRequest{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		TestName:      req.TestName,
		Status:        entity.LabRequestStatusRequested,
	}

	if err := u.labRepo.Create(tx, request); err != nil {
		u.log.Warnf("Failed to create lab request: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionLabRequestCreate, entity.JSON{
		"lab_request_id": request.ID,
		"patient_id":     req.PatientID.String(),
		"test_name":      req.TestName,
	}); err != nil {
		u.log.Warnf("Failed to audit lab request: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	request.Patient = *patient
	return converter.LabRequestToResponse(request), nil
}

func (u *labUsecase) ListRequests(ctx context.Context, status string) (*dto.LabRequestListResponse, error) {
	var labStatus entity.LabRequestStatus
	switch status {
	case "", "requested":
		labStatus = entity.LabRequestStatusRequested
	case "completed":
		labStatus = entity.LabRequestStatusCompleted
	default:
		return nil, ErrUnknownLabRequestStatus
	}

	requests, err := u.labRepo.FindByStatus(u.db.WithContext(ctx), labStatus)
	if err != nil {
		u.log.Warnf("Failed to list lab requests: %+v", err)
		return nil, err
	}

	return &dto.LabRequestListResponse{
		Requests: converter.LabRequestsToResponses(requests),
		Total:    len(requests),
	}, nil
}

// CompleteRequest attaches the result and stamps the completion time. A
// completed request cannot be completed again.
func (u *labUsecase) CompleteRequest(ctx context.Context, id int64, req *dto.CompleteLabRequestRequest) (*dto.LabRequestResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.labRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab request %d: %+v", id, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrLabRequestNotFound
	}
	if request.Status == entity.LabRequestStatusCompleted {
		return nil, ErrLabRequestAlreadyCompleted
	}

	now := time.Now()
	request.Status = entity.LabRequestStatusCompleted
	request.Result = req.Result
	request.CompletedAt = &now

	if err := u.labRepo.Update(tx, request); err != nil {
		u.log.Warnf("Failed to complete lab request %d: %+v", id, err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionLabRequestComplete, entity.JSON{
		"lab_request_id": id,
	}); err != nil {
		u.log.Warnf("Failed to audit lab completion %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LabRequestToResponse(request), nil
}
