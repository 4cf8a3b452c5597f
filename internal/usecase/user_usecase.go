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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrCannotDeleteSelf   = errors.New("cannot delete your own account")
	ErrUserHasRecords     = errors.New("user has clinical or billing records and cannot be deleted")
	ErrMissingSearchQuery = errors.New("uhid or phone is required")
)

type UserUsecase interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	RegisterPatientByStaff(ctx context.Context, req *dto.RegisterPatientByStaffRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, role string) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	FindPatient(ctx context.Context, uhid, phone string) (*dto.UserResponse, error)
	ListDoctors(ctx context.Context, specialization string) ([]dto.DoctorResponse, error)
	ListAuditLogs(ctx context.Context, limit, offset int) ([]dto.AuditLogResponse, int64, error)
}

type userUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	auditRepo   repository.AuditLogRepository
	seqService  *service.SequenceService
	auditSvc    service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	auditRepo repository.AuditLogRepository,
	seqService *service.SequenceService,
	auditSvc service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		auditRepo:   auditRepo,
		seqService:  seqService,
		auditSvc:    auditSvc,
	}
}

// CreateUser provisions a non-patient account (doctor, staff, pharmacy,
// lab) from the admin portal.
func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	roleID := entity.RoleIDByName(req.Role)
	if roleID == 0 || roleID == entity.RoleIDPatient || roleID == entity.RoleIDAdmin {
		return nil, ErrRoleNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   roleID,
		IsActive: true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.Profile{
		UserID:          user.ID,
		Phone:           req.Phone,
		Specialization:  req.Specialization,
		ConsultationFee: req.ConsultationFee,
	}

	if err := u.profileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create profile: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionUserCreate, entity.JSON{
		"created_user_id": user.ID.String(),
		"role":            req.Role,
	}); err != nil {
		u.log.Warnf("Failed to audit user creation: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	user.Profile = profile
	return converter.UserToResponse(user), nil
}

// RegisterPatientByStaff registers a walk-in patient from the front desk.
// It takes the same UHID sequence as self-registration, so the two paths
// can never collide.
func (u *userUsecase) RegisterPatientByStaff(ctx context.Context, req *dto.RegisterPatientByStaffRequest) (*dto.UserResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   entity.RoleIDPatient,
		IsActive: true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	uhid, err := u.seqService.NextUHID(tx, time.Now())
	if err != nil {
		u.log.Warnf("Failed to generate UHID: %+v", err)
		return nil, err
	}

	profile := &entity.Profile{
		UserID:      user.ID,
		Phone:       req.Phone,
		Gender:      req.Gender,
		DateOfBirth: &dob,
		Address:     req.Address,
		UHID:        uhid,
	}

	if err := u.profileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create profile: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionUserRegister, entity.JSON{
		"created_user_id": user.ID.String(),
		"uhid":            uhid,
		"by_staff":        true,
	}); err != nil {
		u.log.Warnf("Failed to audit patient registration: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	user.Profile = profile
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) ListUsers(ctx context.Context, role string) (*dto.UserListResponse, error) {
	roleID := entity.RoleIDByName(role)
	if roleID == 0 {
		return nil, ErrRoleNotFound
	}

	users, err := u.userRepo.FindByRole(u.db.WithContext(ctx), roleID)
	if err != nil {
		u.log.Warnf("Failed to list users for role %s: %+v", role, err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	before := map[string]interface{}{
		"full_name": user.FullName,
		"is_active": user.IsActive,
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user %s: %+v", id, err)
		return nil, err
	}

	if user.Profile != nil {
		if req.Phone != "" {
			user.Profile.Phone = req.Phone
		}
		if req.Address != "" {
			user.Profile.Address = req.Address
		}
		if req.Specialization != "" {
			user.Profile.Specialization = req.Specialization
		}
		if !req.ConsultationFee.IsZero() {
			user.Profile.ConsultationFee = req.ConsultationFee
		}
		if err := u.profileRepo.Update(tx, user.Profile); err != nil {
			u.log.Warnf("Failed to update profile %s: %+v", id, err)
			return nil, err
		}
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.LogChange(tx, &actorID, entity.AuditActionUserUpdate, "user", id.String(), before, map[string]interface{}{
		"full_name": user.FullName,
		"is_active": user.IsActive,
	}); err != nil {
		u.log.Warnf("Failed to audit user update: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

// DeleteUser removes a user; the profile row cascades with it, so no
// orphaned profile can survive.
func (u *userUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if actorID == id {
		return ErrCannotDeleteSelf
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := u.userRepo.Delete(tx, id); err != nil {
		// Appointments, invoices and lab requests reference users without
		// cascading, so history keeps the account undeletable.
		if isForeignKeyError(err, "") {
			return ErrUserHasRecords
		}
		u.log.Warnf("Failed to delete user %s: %+v", id, err)
		return err
	}

	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionUserDelete, entity.JSON{
		"deleted_user_id": id.String(),
		"email":           user.Email,
	}); err != nil {
		u.log.Warnf("Failed to audit user deletion: %+v", err)
		return err
	}

	return tx.Commit().Error
}

// FindPatient looks a patient up by UHID or phone for the front desk.
// UHID wins when both are given.
func (u *userUsecase) FindPatient(ctx context.Context, uhid, phone string) (*dto.UserResponse, error) {
	var (
		profile *entity.Profile
		err     error
	)
	switch {
	case uhid != "":
		profile, err = u.profileRepo.FindByUHID(u.db.WithContext(ctx), uhid)
	case phone != "":
		profile, err = u.profileRepo.FindByPhone(u.db.WithContext(ctx), phone)
	default:
		return nil, ErrMissingSearchQuery
	}
	if err != nil {
		u.log.Warnf("Failed to look up patient: %+v", err)
		return nil, err
	}
	if profile == nil || profile.User.RoleID != entity.RoleIDPatient {
		return nil, ErrUserNotFound
	}

	user := profile.User
	user.Profile = profile
	return converter.UserToResponse(&user), nil
}

func (u *userUsecase) ListDoctors(ctx context.Context, specialization string) ([]dto.DoctorResponse, error) {
	doctors, err := u.profileRepo.FindDoctors(u.db.WithContext(ctx), specialization)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *userUsecase) ListAuditLogs(ctx context.Context, limit, offset int) ([]dto.AuditLogResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	logs, total, err := u.auditRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, 0, err
	}
	return converter.AuditLogsToResponses(logs), total, nil
}
