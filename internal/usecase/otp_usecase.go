package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"hms-backend/config"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service/notify"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrOtpNotFound = errors.New("no verification code issued for this identifier")
	ErrOtpExpired  = errors.New("verification code has expired")
	ErrOtpMismatch = errors.New("verification code does not match")
)

// otpVerifiedTTL is how long a successful verification stays usable by the
// registration flow before it lapses.
const otpVerifiedTTL = 15 * time.Minute

type OtpUsecase interface {
	Issue(ctx context.Context, req *dto.RequestOtpRequest) (*dto.OtpIssuedResponse, error)
	Verify(ctx context.Context, req *dto.VerifyOtpRequest) error
	// ConsumeVerified checks and clears the verified marker for an
	// identifier; registration calls it exactly once.
	ConsumeVerified(ctx context.Context, identifier string) (bool, error)
}

type otpUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	cfg         config.OTPConfig
	otpRepo     repository.OtpRepository
	redisClient *redis.Client
	smsSender   *notify.SMSSender
	emailSender *notify.EmailSender
}

func NewOtpUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.OTPConfig,
	otpRepo repository.OtpRepository,
	redisClient *redis.Client,
	smsSender *notify.SMSSender,
	emailSender *notify.EmailSender,
) OtpUsecase {
	return &otpUsecase{
		db:          db,
		log:         log,
		cfg:         cfg,
		otpRepo:     otpRepo,
		redisClient: redisClient,
		smsSender:   smsSender,
		emailSender: emailSender,
	}
}

// Issue generates a fresh code and upserts it, unconditionally replacing
// any code previously issued for the same identifier. There is deliberately
// no resend cooldown or attempt limit here.
func (u *otpUsecase) Issue(ctx context.Context, req *dto.RequestOtpRequest) (*dto.OtpIssuedResponse, error) {
	code, err := generateOtpCode(u.cfg.CodeLength)
	if err != nil {
		u.log.Warnf("Failed to generate OTP code: %+v", err)
		return nil, err
	}

	otp := &entity.Otp{
		Identifier: req.Identifier,
		Channel:    entity.OtpChannel(req.Channel),
		Code:       code,
		ExpiresAt:  time.Now().Add(u.cfg.TTL),
	}

	if err := u.otpRepo.Upsert(u.db.WithContext(ctx), otp); err != nil {
		u.log.Warnf("Failed to store OTP for %s: %+v", req.Identifier, err)
		return nil, err
	}

	// Delivery is fire-and-forget; a gateway failure must not undo the
	// stored code.
	go u.deliver(otp.Channel, req.Identifier, code)

	return &dto.OtpIssuedResponse{
		Identifier: req.Identifier,
		ExpiresIn:  int64(u.cfg.TTL.Seconds()),
	}, nil
}

// Verify checks the stored code. The expiry check runs before the equality
// check, so an expired-but-correct code still reports expiry. Success is
// gated on the delete removing the row (single-use, even under concurrent
// submissions); the winner then gets a short-lived verified marker for the
// registration flow.
func (u *otpUsecase) Verify(ctx context.Context, req *dto.VerifyOtpRequest) error {
	otp, err := u.otpRepo.FindByIdentifier(u.db.WithContext(ctx), req.Identifier)
	if err != nil {
		u.log.Warnf("Failed to look up OTP for %s: %+v", req.Identifier, err)
		return err
	}
	if otp == nil {
		return ErrOtpNotFound
	}

	if err := CheckOtp(otp, req.Code, time.Now()); err != nil {
		return err
	}

	affected, err := u.otpRepo.DeleteByIdentifier(u.db.WithContext(ctx), req.Identifier)
	if err != nil {
		u.log.Warnf("Failed to delete verified OTP for %s: %+v", req.Identifier, err)
		return err
	}
	if affected == 0 {
		// A concurrent submission consumed the code first.
		return ErrOtpNotFound
	}

	verifiedKey := otpVerifiedKey(req.Identifier)
	if err := u.redisClient.Set(ctx, verifiedKey, "1", otpVerifiedTTL).Err(); err != nil {
		u.log.Warnf("Failed to store verified marker for %s: %+v", req.Identifier, err)
		return err
	}

	return nil
}

func (u *otpUsecase) ConsumeVerified(ctx context.Context, identifier string) (bool, error) {
	deleted, err := u.redisClient.Del(ctx, otpVerifiedKey(identifier)).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func (u *otpUsecase) deliver(channel entity.OtpChannel, identifier, code string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(u.cfg.TTL.Minutes()))
	switch channel {
	case entity.OtpChannelEmail:
		if err := u.emailSender.Send(identifier, "Your verification code", "<p>"+message+"</p>"); err != nil {
			u.log.Warnf("OTP email delivery failed for %s: %+v", identifier, err)
		}
	default:
		if err := u.smsSender.Send(ctx, identifier, message); err != nil {
			u.log.Warnf("OTP SMS delivery failed for %s: %+v", identifier, err)
		}
	}
}

// CheckOtp applies the verification policy to a stored code: expiry first,
// then exact string equality.
func CheckOtp(otp *entity.Otp, code string, now time.Time) error {
	if otp.IsExpired(now) {
		return ErrOtpExpired
	}
	if otp.Code != code {
		return ErrOtpMismatch
	}
	return nil
}

func otpVerifiedKey(identifier string) string {
	return "otp_verified:" + identifier
}

// generateOtpCode returns a zero-padded random numeric code of the given length
func generateOtpCode(length int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", length, n), nil
}
