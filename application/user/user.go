package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/lead-crm/cmd/config"
	"github.com/muhammadheryan/lead-crm/constant"
	"github.com/muhammadheryan/lead-crm/model"
	redisrepo "github.com/muhammadheryan/lead-crm/repository/redis"
	userrepo "github.com/muhammadheryan/lead-crm/repository/user"
	"github.com/muhammadheryan/lead-crm/utils/dberr"
	"github.com/muhammadheryan/lead-crm/utils/errors"
	"github.com/muhammadheryan/lead-crm/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Unique keys of the users table.
const (
	KeyEmail        = "uq_users_email"
	KeyMobileNumber = "uq_users_mobile_number"
)

const tokenType = "Bearer"

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserSummary, error)
	Signup(ctx context.Context, req *model.SignupRequest) (*model.UserSummary, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, identity model.Identity) error
	ValidateToken(ctx context.Context, tokenString string) (model.Identity, error)
	ChangePassword(ctx context.Context, identity model.Identity, req *model.ChangePasswordRequest) error
	GetProfile(ctx context.Context, identity model.Identity) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, identity model.Identity, req *model.UpdateProfileRequest) (*model.UserEntity, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

// Claims is the JWT payload issued at login.
type Claims struct {
	Role  constant.Role `json:"role"`
	Email string        `json:"email"`
	jwt.RegisteredClaims
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserSummary, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, emailTaken()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity, err := s.userRepo.Create(ctx, &model.UserEntity{
		Name:          &req.Name,
		Email:         req.Email,
		PasswordHash:  string(hashedPassword),
		Role:          constant.RoleUser,
		ApproveStatus: constant.ApproveApproved,
		Status:        constant.UserStatusActive,
	})
	if err != nil {
		if cerr := userConflict(err, "mobile_number"); cerr != nil {
			return nil, cerr
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return userEntity.Summary(), nil
}

// Signup creates a freelancer account that cannot log in until approved.
func (s *UserAppImpl) Signup(ctx context.Context, req *model.SignupRequest) (*model.UserSummary, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Signup] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, emailTaken()
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{MobileNumber: req.MobileNumber})
	if err != nil {
		logger.Error("[Signup] err userRepo.Get mobile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, mobileTaken("mobilenumber")
	}

	var expireDate *time.Time
	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		d, err := time.Parse(time.DateOnly, *req.ExpiryDate)
		if err != nil {
			return nil, errors.SetFieldError(constant.ErrInvalidRequest, "expirydate", "The expirydate is not a valid date.")
		}
		expireDate = &d
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Signup] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity, err := s.userRepo.Create(ctx, &model.UserEntity{
		Firstname:     &req.Firstname,
		Lastname:      &req.Lastname,
		Email:         req.Email,
		MobileNumber:  &req.MobileNumber,
		PasswordHash:  string(hashedPassword),
		Role:          constant.RoleFreelancer,
		ApproveStatus: constant.ApprovePending,
		Status:        constant.UserStatusActive,
		QRCode:        req.QRCode,
		ExpireDate:    expireDate,
	})
	if err != nil {
		if cerr := userConflict(err, "mobilenumber"); cerr != nil {
			return nil, cerr
		}
		logger.Error("[Signup] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return userEntity.Summary(), nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if user.Role == constant.RoleFreelancer && user.ApproveStatus == constant.ApprovePending {
		return nil, errors.SetCustomError(constant.ErrNotApproved)
	}

	token, jti, err := s.generateJWT(user)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   tokenType,
		User:        user.Summary(),
	}, nil
}

// Logout revokes every session of the caller, not only the current token.
func (s *UserAppImpl) Logout(ctx context.Context, identity model.Identity) error {
	if err := s.redisRepo.RevokeUserSessions(ctx, identity.ID); err != nil {
		logger.Error("[Logout] err RevokeUserSessions", zap.Uint64("user_id", identity.ID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (model.Identity, error) {
	unauthorized := errors.SetCustomError(constant.ErrUnauthorize)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return model.Identity{}, unauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return model.Identity{}, unauthorized
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return model.Identity{}, unauthorized
	}

	if claims.ID == "" {
		return model.Identity{}, unauthorized
	}

	// the session must still exist and belong to the token's subject
	redisUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil || redisUserID != userID {
		return model.Identity{}, unauthorized
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[ValidateToken] err userRepo.Get", zap.String("error", err.Error()))
		return model.Identity{}, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return model.Identity{}, unauthorized
	}

	return user.Identity(), nil
}

func (s *UserAppImpl) ChangePassword(ctx context.Context, identity model.Identity, req *model.ChangePasswordRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: identity.ID})
	if err != nil {
		logger.Error("[ChangePassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return errors.SetFieldError(constant.ErrCurrentPasswordMismatch, "current_password", "The current password is incorrect.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ChangePassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		logger.Error("[ChangePassword] err userRepo.UpdatePassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, identity model.Identity) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: identity.ID})
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, identity model.Identity, req *model.UpdateProfileRequest) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: identity.ID})
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.MobileNumber != nil && *req.MobileNumber != "" {
		other, err := s.userRepo.Get(ctx, &model.UserFilter{MobileNumber: *req.MobileNumber, ExcludeID: user.ID})
		if err != nil {
			logger.Error("[UpdateProfile] err userRepo.Get mobile", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if other != nil {
			return nil, mobileTaken("mobile_number")
		}
	}

	updated := model.ApplyProfile(*user, *req)
	if err := s.userRepo.Update(ctx, &updated); err != nil {
		if cerr := userConflict(err, "mobile_number"); cerr != nil {
			return nil, cerr
		}
		logger.Error("[UpdateProfile] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &updated, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(user *model.UserEntity) (string, string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", err
	}

	now := time.Now()
	claims := Claims{
		Role:  user.Role,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        newUUID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func emailTaken() error {
	return errors.SetFieldError(constant.ErrCredentialExists, "email", "The email has already been taken.")
}

func mobileTaken(field string) error {
	return errors.SetFieldError(constant.ErrCredentialExists, field, "The mobile number has already been taken.")
}

// userConflict maps a unique key violation raised by a concurrent writer to
// the same error the pre-check would have produced.
func userConflict(err error, mobileField string) error {
	key, ok := dberr.DuplicateKey(err)
	if !ok {
		return nil
	}
	if key == KeyMobileNumber {
		return mobileTaken(mobileField)
	}
	return emailTaken()
}
