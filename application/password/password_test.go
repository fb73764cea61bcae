package password_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apppassword "github.com/muhammadheryan/lead-crm/application/password"
	"github.com/muhammadheryan/lead-crm/cmd/config"
	"github.com/muhammadheryan/lead-crm/constant"
	otpmocks "github.com/muhammadheryan/lead-crm/mocks/repository/otp"
	redismocks "github.com/muhammadheryan/lead-crm/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/lead-crm/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/lead-crm/mocks/repository/user"
	rabbitmocks "github.com/muhammadheryan/lead-crm/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/lead-crm/model"
	"github.com/muhammadheryan/lead-crm/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/lead-crm/utils/errors"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type fields struct {
	userRepo  *usermocks.UserRepository
	otpRepo   *otpmocks.OTPRepository
	txRepo    *txmocks.TxRepository
	redisRepo *redismocks.RedisRepository
	publisher *rabbitmocks.Publisher
}

func newFields(t *testing.T) fields {
	return fields{
		userRepo:  usermocks.NewUserRepository(t),
		otpRepo:   otpmocks.NewOTPRepository(t),
		txRepo:    txmocks.NewTxRepository(t),
		redisRepo: redismocks.NewRedisRepository(t),
		publisher: rabbitmocks.NewPublisher(t),
	}
}

func newApp(f fields, now time.Time) apppassword.PasswordApp {
	cfg := &config.Config{OTP: config.OTPConfig{Expiration: 10 * time.Minute}}
	app := apppassword.NewPasswordApp(cfg, f.userRepo, f.otpRepo, f.txRepo, f.redisRepo, f.publisher)
	app.(*apppassword.PasswordAppImpl).SetClock(func() time.Time { return now })
	return app
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestPasswordApp_SendOTP(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: code stored with ten minute expiry and event published",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@example.com"}).
					Return(&model.UserEntity{ID: 1, Email: "a@example.com"}, nil).Once()
				f.otpRepo.On("Upsert", mock.Anything, "a@example.com",
					mock.MatchedBy(func(otp string) bool { return len(otp) == constant.OTPLength }),
					fixedNow.Add(10*time.Minute)).
					Return(nil).Once()
				f.publisher.On("PublishOTPRequested", mock.Anything, mock.MatchedBy(func(m rabbitmq.OTPRequestedMessage) bool {
					return m.Email == "a@example.com" && len(m.OTP) == constant.OTPLength
				})).Return(nil).Once()
			},
		},
		{
			name: "success: publish failure does not fail the request",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@example.com"}).
					Return(&model.UserEntity{ID: 1, Email: "a@example.com"}, nil).Once()
				f.otpRepo.On("Upsert", mock.Anything, "a@example.com", mock.AnythingOfType("string"), mock.Anything).
					Return(nil).Once()
				f.publisher.On("PublishOTPRequested", mock.Anything, mock.Anything).
					Return(errors.New("broker down")).Once()
			},
		},
		{
			name: "error: unknown email",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@example.com"}).
					Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: upsert fails",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@example.com"}).
					Return(&model.UserEntity{ID: 1}, nil).Once()
				f.otpRepo.On("Upsert", mock.Anything, "a@example.com", mock.Anything, mock.Anything).
					Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := newApp(f, fixedNow).SendOTP(context.Background(), &model.ForgotPasswordRequest{Email: "a@example.com"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("SendOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestPasswordApp_VerifyOTP(t *testing.T) {
	record := &model.PasswordResetEntity{Email: "a@example.com", OTP: "Ab12Cd", ExpiryTime: fixedNow.Add(10 * time.Minute)}
	tests := []struct {
		name    string
		now     time.Time
		otp     string
		record  *model.PasswordResetEntity
		wantErr bool
	}{
		{name: "valid", now: fixedNow, otp: "Ab12Cd", record: record},
		{name: "valid at expiry instant", now: fixedNow.Add(10 * time.Minute), otp: "Ab12Cd", record: record},
		{name: "wrong code", now: fixedNow, otp: "Zz99Zz", record: record, wantErr: true},
		{name: "expired", now: fixedNow.Add(11 * time.Minute), otp: "Ab12Cd", record: record, wantErr: true},
		{name: "no record", now: fixedNow, otp: "Ab12Cd", record: nil, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.otpRepo.On("Get", mock.Anything, "a@example.com").Return(tt.record, nil).Once()

			err := newApp(f, tt.now).VerifyOTP(context.Background(), &model.VerifyOTPRequest{Email: "a@example.com", OTP: tt.otp})
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, constant.ErrInvalidOTP)
			}
		})
	}
}

func TestPasswordApp_ResetPassword(t *testing.T) {
	req := &model.ResetPasswordRequest{
		Email:                "a@example.com",
		OTP:                  "Ab12Cd",
		Password:             "new-password",
		PasswordConfirmation: "new-password",
	}
	record := &model.PasswordResetEntity{Email: "a@example.com", OTP: "Ab12Cd", ExpiryTime: fixedNow.Add(10 * time.Minute)}

	t.Run("success once, replay rejected", func(t *testing.T) {
		f := newFields(t)
		tx := (*sqlx.Tx)(nil)

		f.otpRepo.On("Get", mock.Anything, "a@example.com").Return(record, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.otpRepo.On("ConsumeTx", mock.Anything, tx, "a@example.com", "Ab12Cd", fixedNow).Return(true, nil).Once()
		f.userRepo.On("UpdatePasswordByEmailTx", mock.Anything, tx, "a@example.com", mock.AnythingOfType("string")).
			Return(int64(1), nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@example.com"}).
			Return(&model.UserEntity{ID: 1}, nil).Once()
		f.redisRepo.On("RevokeUserSessions", mock.Anything, uint64(1)).Return(nil).Once()
		// deleted by the first reset
		f.otpRepo.On("Get", mock.Anything, "a@example.com").Return(nil, nil).Once()

		app := newApp(f, fixedNow)
		if err := app.ResetPassword(context.Background(), req); err != nil {
			t.Fatalf("ResetPassword() error = %v", err)
		}
		assertErrCode(t, app.ResetPassword(context.Background(), req), constant.ErrInvalidOTP)
	})

	t.Run("code consumed by an in-flight reset", func(t *testing.T) {
		f := newFields(t)
		tx := (*sqlx.Tx)(nil)

		// both resets read the same valid code; only the first delete matches a row
		f.otpRepo.On("Get", mock.Anything, "a@example.com").Return(record, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.otpRepo.On("ConsumeTx", mock.Anything, tx, "a@example.com", "Ab12Cd", fixedNow).Return(false, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		err := newApp(f, fixedNow).ResetPassword(context.Background(), req)
		assertErrCode(t, err, constant.ErrInvalidOTP)
		f.userRepo.AssertNotCalled(t, "UpdatePasswordByEmailTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.redisRepo.AssertNotCalled(t, "RevokeUserSessions", mock.Anything, mock.Anything)
	})

	t.Run("expired code rejected before any write", func(t *testing.T) {
		f := newFields(t)
		f.otpRepo.On("Get", mock.Anything, "a@example.com").Return(record, nil).Once()

		err := newApp(f, fixedNow.Add(time.Hour)).ResetPassword(context.Background(), req)
		assertErrCode(t, err, constant.ErrInvalidOTP)
	})

	t.Run("user gone rolls back the consumed code", func(t *testing.T) {
		f := newFields(t)
		tx := (*sqlx.Tx)(nil)

		f.otpRepo.On("Get", mock.Anything, "a@example.com").Return(record, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.otpRepo.On("ConsumeTx", mock.Anything, tx, "a@example.com", "Ab12Cd", fixedNow).Return(true, nil).Once()
		f.userRepo.On("UpdatePasswordByEmailTx", mock.Anything, tx, "a@example.com", mock.AnythingOfType("string")).
			Return(int64(0), nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		err := newApp(f, fixedNow).ResetPassword(context.Background(), req)
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("delete failure rolls back", func(t *testing.T) {
		f := newFields(t)
		tx := (*sqlx.Tx)(nil)

		f.otpRepo.On("Get", mock.Anything, "a@example.com").Return(record, nil).Once()
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.otpRepo.On("ConsumeTx", mock.Anything, tx, "a@example.com", "Ab12Cd", fixedNow).
			Return(false, errors.New("lock wait timeout")).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		err := newApp(f, fixedNow).ResetPassword(context.Background(), req)
		assertErrCode(t, err, constant.ErrInternal)
	})
}
