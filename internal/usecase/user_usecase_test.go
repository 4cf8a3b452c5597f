package usecase

import (
	"context"
	"testing"

	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	user      *entity.User
	deleteErr error
}

func (s *stubUserRepo) Create(db *gorm.DB, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return s.user, nil
}

func (s *stubUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return s.user, nil
}

func (s *stubUserRepo) FindByRole(db *gorm.DB, roleID int) ([]entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(db *gorm.DB, user *entity.User) error { return nil }

func (s *stubUserRepo) Delete(db *gorm.DB, id uuid.UUID) error { return s.deleteErr }

func newUserFixture(userRepo *stubUserRepo, profileRepo *stubProfileRepo) UserUsecase {
	if profileRepo == nil {
		profileRepo = &stubProfileRepo{}
	}
	return NewUserUsecase(newTestDB(), newTestLogger(), userRepo, profileRepo, nil, nil, &stubAuditService{})
}

func TestDeleteUserWithHistoryReturnsConflict(t *testing.T) {
	userRepo := &stubUserRepo{
		user: &entity.User{ID: uuid.New(), Email: "patient@hospital.local", RoleID: entity.RoleIDPatient},
		deleteErr: &pgconn.PgError{
			Code:           "23503",
			ConstraintName: "appointments_patient_id_fkey",
		},
	}
	uc := newUserFixture(userRepo, nil)

	err := uc.DeleteUser(context.Background(), userRepo.user.ID)
	assert.ErrorIs(t, err, ErrUserHasRecords)
}

func TestDeleteOwnAccountRejected(t *testing.T) {
	id := uuid.New()
	uc := newUserFixture(&stubUserRepo{user: &entity.User{ID: id}}, nil)

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, id)
	assert.ErrorIs(t, uc.DeleteUser(ctx, id), ErrCannotDeleteSelf)
}

func TestFindPatientByUHID(t *testing.T) {
	patientID := uuid.New()
	profileRepo := &stubProfileRepo{
		byUHID: map[string]*entity.Profile{
			"WH-20260831-0001": {
				UserID: patientID,
				UHID:   "WH-20260831-0001",
				Phone:  "+911234567890",
				User: entity.User{
					ID:       patientID,
					Email:    "patient@hospital.local",
					FullName: "Asha Rao",
					RoleID:   entity.RoleIDPatient,
				},
			},
		},
	}
	uc := newUserFixture(&stubUserRepo{}, profileRepo)

	resp, err := uc.FindPatient(context.Background(), "WH-20260831-0001", "")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", resp.FullName)
	assert.Equal(t, entity.RolePatient, resp.Role)
	assert.Equal(t, "WH-20260831-0001", resp.Profile.UHID)
}

func TestFindPatientRequiresQuery(t *testing.T) {
	uc := newUserFixture(&stubUserRepo{}, nil)

	_, err := uc.FindPatient(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrMissingSearchQuery)
}

func TestFindPatientRejectsNonPatientProfile(t *testing.T) {
	doctorID := uuid.New()
	profileRepo := &stubProfileRepo{
		byPhone: map[string]*entity.Profile{
			"+911234567890": {
				UserID: doctorID,
				Phone:  "+911234567890",
				User:   entity.User{ID: doctorID, RoleID: entity.RoleIDDoctor},
			},
		},
	}
	uc := newUserFixture(&stubUserRepo{}, profileRepo)

	_, err := uc.FindPatient(context.Background(), "", "+911234567890")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
