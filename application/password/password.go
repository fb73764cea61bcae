package password

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/lead-crm/cmd/config"
	"github.com/muhammadheryan/lead-crm/constant"
	"github.com/muhammadheryan/lead-crm/model"
	otprepo "github.com/muhammadheryan/lead-crm/repository/otp"
	redisrepo "github.com/muhammadheryan/lead-crm/repository/redis"
	txrepo "github.com/muhammadheryan/lead-crm/repository/tx"
	userrepo "github.com/muhammadheryan/lead-crm/repository/user"
	"github.com/muhammadheryan/lead-crm/thirdparty/rabbitmq"
	"github.com/muhammadheryan/lead-crm/utils/errors"
	"github.com/muhammadheryan/lead-crm/utils/logger"
	"github.com/muhammadheryan/lead-crm/utils/random"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	errCodeConsumed = stderrors.New("reset code already consumed")
	errNoUser       = stderrors.New("no user for reset email")
)

// PasswordApp drives the one-time-code password reset flow.
type PasswordApp interface {
	SendOTP(ctx context.Context, req *model.ForgotPasswordRequest) error
	VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) error
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
}

type PasswordAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	otpRepo   otprepo.OTPRepository
	txRepo    txrepo.TxRepository
	redisRepo redisrepo.Repository
	publisher rabbitmq.Publisher
	now       func() time.Time
}

func NewPasswordApp(
	config *config.Config,
	userRepo userrepo.UserRepository,
	otpRepo otprepo.OTPRepository,
	txRepo txrepo.TxRepository,
	redisRepo redisrepo.Repository,
	publisher rabbitmq.Publisher,
) PasswordApp {
	return &PasswordAppImpl{
		config:    config,
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		txRepo:    txRepo,
		redisRepo: redisRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

// SetClock overrides the time source. Intended for tests.
func (s *PasswordAppImpl) SetClock(now func() time.Time) {
	s.now = now
}

func (s *PasswordAppImpl) SendOTP(ctx context.Context, req *model.ForgotPasswordRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[SendOTP] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetFieldError(constant.ErrInvalidRequest, "email", "The selected email is invalid.")
	}

	otp, err := random.String(constant.OTPLength)
	if err != nil {
		logger.Error("[SendOTP] err random.String", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	expiry := s.now().Add(s.config.OTP.Expiration)

	if err := s.otpRepo.Upsert(ctx, req.Email, otp, expiry); err != nil {
		logger.Error("[SendOTP] err otpRepo.Upsert", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// the code is stored; a lost notification can be retried by requesting again
	err = s.publisher.PublishOTPRequested(ctx, rabbitmq.OTPRequestedMessage{
		Email:     req.Email,
		OTP:       otp,
		ExpiresAt: expiry,
	})
	if err != nil {
		logger.Warn("[SendOTP] err publisher.PublishOTPRequested", zap.String("error", err.Error()))
	}
	return nil
}

func (s *PasswordAppImpl) VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) error {
	return s.checkOTP(ctx, "VerifyOTP", req.Email, req.OTP)
}

// ResetPassword burns the code and swaps the hash in one transaction. The
// conditional delete makes a code single-use under concurrent resets; the read
// beforehand only rejects bad codes early. Every session of the user is
// revoked afterwards.
func (s *PasswordAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	if err := s.checkOTP(ctx, "ResetPassword", req.Email, req.OTP); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	err = txrepo.WithinTx(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		consumed, err := s.otpRepo.ConsumeTx(ctx, tx, req.Email, req.OTP, s.now())
		if err != nil {
			return err
		}
		if !consumed {
			return errCodeConsumed
		}

		affected, err := s.userRepo.UpdatePasswordByEmailTx(ctx, tx, req.Email, string(hashedPassword))
		if err != nil {
			return err
		}
		if affected == 0 {
			return errNoUser
		}
		return nil
	})
	switch {
	case stderrors.Is(err, errCodeConsumed):
		return errors.SetFieldError(constant.ErrInvalidOTP, "otp", "Invalid or expired OTP.")
	case stderrors.Is(err, errNoUser):
		return errors.SetCustomError(constant.ErrNotFound)
	case err != nil:
		logger.Error("[ResetPassword] err WithinTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil || user == nil {
		logger.Warn("[ResetPassword] could not load user to revoke sessions", zap.String("email", req.Email))
		return nil
	}
	if err := s.redisRepo.RevokeUserSessions(ctx, user.ID); err != nil {
		logger.Warn("[ResetPassword] err RevokeUserSessions", zap.Uint64("user_id", user.ID), zap.String("error", err.Error()))
	}
	return nil
}

func (s *PasswordAppImpl) checkOTP(ctx context.Context, op, email, otp string) error {
	record, err := s.otpRepo.Get(ctx, email)
	if err != nil {
		logger.Error("["+op+"] err otpRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !record.Valid(otp, s.now()) {
		return errors.SetFieldError(constant.ErrInvalidOTP, "otp", "Invalid or expired OTP.")
	}
	return nil
}
