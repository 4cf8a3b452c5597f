package usecase

import (
	"context"
	"testing"
	"time"

	"hms-backend/config"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubOtpRepo struct {
	otp            *entity.Otp
	deleteAffected int64
}

func (s *stubOtpRepo) Upsert(db *gorm.DB, otp *entity.Otp) error { return nil }

func (s *stubOtpRepo) FindByIdentifier(db *gorm.DB, identifier string) (*entity.Otp, error) {
	return s.otp, nil
}

func (s *stubOtpRepo) DeleteByIdentifier(db *gorm.DB, identifier string) (int64, error) {
	return s.deleteAffected, nil
}

func TestCheckOtp(t *testing.T) {
	now := time.Now()
	otp := &entity.Otp{
		Identifier: "+911234567890",
		Code:       "482913",
		ExpiresAt:  now.Add(5 * time.Minute),
	}

	assert.NoError(t, CheckOtp(otp, "482913", now))
	assert.ErrorIs(t, CheckOtp(otp, "000000", now), ErrOtpMismatch)
}

func TestCheckOtpExpiryWinsOverMismatch(t *testing.T) {
	now := time.Now()
	otp := &entity.Otp{
		Identifier: "+911234567890",
		Code:       "482913",
		ExpiresAt:  now.Add(-time.Second),
	}

	// Even the correct code reports expiry once past the deadline, and an
	// expired wrong code never reports a mismatch.
	assert.ErrorIs(t, CheckOtp(otp, "482913", now), ErrOtpExpired)
	assert.ErrorIs(t, CheckOtp(otp, "000000", now), ErrOtpExpired)
}

func TestCheckOtpExpiresExactlyAtDeadline(t *testing.T) {
	now := time.Now()
	otp := &entity.Otp{
		Code:      "482913",
		ExpiresAt: now,
	}

	assert.ErrorIs(t, CheckOtp(otp, "482913", now), ErrOtpExpired)
}

func TestVerifyRejectsCodeConsumedConcurrently(t *testing.T) {
	repo := &stubOtpRepo{
		otp: &entity.Otp{
			Identifier: "+911234567890",
			Code:       "482913",
			ExpiresAt:  time.Now().Add(5 * time.Minute),
		},
		deleteAffected: 0,
	}
	uc := NewOtpUsecase(newTestDB(), newTestLogger(), config.OTPConfig{}, repo, nil, nil, nil)

	// The code matched when read, but another submission deleted it first;
	// only the submission that removes the row may succeed.
	err := uc.Verify(context.Background(), &dto.VerifyOtpRequest{
		Identifier: "+911234567890",
		Code:       "482913",
	})
	assert.ErrorIs(t, err, ErrOtpNotFound)
}

func TestGenerateOtpCode(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code, err := generateOtpCode(length)
		require.NoError(t, err)
		require.Len(t, code, length)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestGenerateOtpCodeIsNotConstant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := generateOtpCode(6)
		require.NoError(t, err)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)
}
