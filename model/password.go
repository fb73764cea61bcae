package model

import "time"

// PasswordResetEntity represents the password_resets table entity
type PasswordResetEntity struct {
	Email      string    `db:"email"`
	OTP        string    `db:"otp"`
	ExpiryTime time.Time `db:"expiry_time"`
}

// Valid reports whether otp matches and has not expired at now.
func (p *PasswordResetEntity) Valid(otp string, now time.Time) bool {
	return p != nil && p.OTP == otp && !now.After(p.ExpiryTime)
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type ResetPasswordRequest struct {
	Email                string `json:"email" validate:"required,email"`
	OTP                  string `json:"otp" validate:"required,len=6"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}
