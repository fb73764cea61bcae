package model

import (
	"strings"
	"time"

	"github.com/muhammadheryan/lead-crm/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID                uint64                 `db:"id" json:"id"`
	Name              *string                `db:"name" json:"name"`
	Firstname         *string                `db:"firstname" json:"firstname"`
	Lastname          *string                `db:"lastname" json:"lastname"`
	Email             string                 `db:"email" json:"email"`
	MobileNumber      *string                `db:"mobile_number" json:"mobile_number"`
	Address           *string                `db:"address" json:"address"`
	PasswordHash      string                 `db:"password" json:"-"`
	Role              constant.Role          `db:"role" json:"role"`
	ApproveStatus     constant.ApproveStatus `db:"approve_status" json:"approve_status"`
	Status            string                 `db:"status" json:"status"`
	ProfilePicture    *string                `db:"profile_picture" json:"profile_picture"`
	QRCode            *string                `db:"qr_code" json:"qr_code"`
	ExpireDate        *time.Time             `db:"expire_date" json:"expire_date"`
	AssignedReport    bool                   `db:"assigned_report" json:"assigned_report"`
	ApproveFreelancer bool                   `db:"approve_freelancer" json:"approve_freelancer"`
	AssignedAgent     bool                   `db:"assigned_agent" json:"assigned_agent"`
	CreatedBy         *uint64                `db:"created_by" json:"created_by"`
	UpdatedBy         *uint64                `db:"updated_by" json:"updated_by"`
	DeletedBy         *uint64                `db:"deleted_by" json:"deleted_by,omitempty"`
	CreatedAt         time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt         *time.Time             `db:"updated_at" json:"updated_at,omitempty"`
	DeletedAt         *time.Time             `db:"deleted_at" json:"deleted_at,omitempty"`
}

// DisplayName prefers name and falls back to "firstname lastname".
func (u *UserEntity) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	parts := make([]string, 0, 2)
	if u.Firstname != nil && *u.Firstname != "" {
		parts = append(parts, *u.Firstname)
	}
	if u.Lastname != nil && *u.Lastname != "" {
		parts = append(parts, *u.Lastname)
	}
	return strings.Join(parts, " ")
}

func (u *UserEntity) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:            u.ID,
		Name:          u.DisplayName(),
		Email:         u.Email,
		Role:          u.Role,
		ApproveStatus: u.ApproveStatus,
	}
}

func (u *UserEntity) Identity() Identity {
	return Identity{
		ID:            u.ID,
		Role:          u.Role,
		ApproveStatus: u.ApproveStatus,
	}
}

// UserFilter for querying users. Soft-deleted rows are always excluded.
type UserFilter struct {
	ID           uint64
	Email        string
	MobileNumber string
	Role         constant.Role
	ExcludeID    uint64
}

type UserSummary struct {
	ID            uint64                 `json:"id"`
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	Role          constant.Role          `json:"role"`
	ApproveStatus constant.ApproveStatus `json:"approve_status"`
}

// RegisterRequest creates a generic user account
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupRequest creates a freelancer account pending admin approval
type SignupRequest struct {
	Firstname          string  `json:"firstname" validate:"required,max=255"`
	Lastname           string  `json:"lastname" validate:"required,max=255"`
	MobileNumber       string  `json:"mobilenumber" validate:"required,max=15"`
	Email              string  `json:"email" validate:"required,email"`
	QRCode             *string `json:"qr_code"`
	Password           string  `json:"password" validate:"required,min=8"`
	ConfirmPassword    string  `json:"confirm_password" validate:"required,eqfield=Password"`
	ExpiryDate         *string `json:"expirydate" validate:"omitempty,datetime=2006-01-02"`
	TermsAndConditions bool    `json:"terms_and_conditions" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *UserSummary `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword         string `json:"current_password" validate:"required"`
	NewPassword             string `json:"new_password" validate:"required,min=8"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"required,eqfield=NewPassword"`
}

// UpdateProfileRequest is a patch: nil fields keep their stored value.
type UpdateProfileRequest struct {
	Name           *string `json:"name" validate:"omitempty,max=255"`
	Firstname      *string `json:"firstname" validate:"omitempty,max=255"`
	Lastname       *string `json:"lastname" validate:"omitempty,max=255"`
	MobileNumber   *string `json:"mobile_number" validate:"omitempty,max=15"`
	Address        *string `json:"address" validate:"omitempty,max=500"`
	ProfilePicture *string `json:"profile_picture"`
}

// ApplyProfile merges a profile patch into the stored user.
func ApplyProfile(existing UserEntity, req UpdateProfileRequest) UserEntity {
	out := existing
	out.Name = coalesce(req.Name, existing.Name)
	out.Firstname = coalesce(req.Firstname, existing.Firstname)
	out.Lastname = coalesce(req.Lastname, existing.Lastname)
	out.MobileNumber = coalesce(req.MobileNumber, existing.MobileNumber)
	out.Address = coalesce(req.Address, existing.Address)
	out.ProfilePicture = coalesce(req.ProfilePicture, existing.ProfilePicture)
	out.UpdatedBy = &existing.ID
	return out
}
