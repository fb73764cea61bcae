package admin

import (
	"context"

	"github.com/muhammadheryan/lead-crm/application/user"
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

// AdminApp manages agent accounts and freelancer approval. Every method is
// admin only.
type AdminApp interface {
	CreateAgent(ctx context.Context, identity model.Identity, req *model.AgentRequest) (*model.UserEntity, error)
	ListAgents(ctx context.Context, identity model.Identity) ([]model.UserEntity, error)
	GetAgent(ctx context.Context, identity model.Identity, id uint64) (*model.UserEntity, error)
	EditAgent(ctx context.Context, identity model.Identity, id uint64, req *model.AgentRequest) (*model.UserEntity, error)
	DeleteAgent(ctx context.Context, identity model.Identity, id uint64) error

	ListFreelancers(ctx context.Context, identity model.Identity) ([]model.UserEntity, error)
	ApproveFreelancer(ctx context.Context, identity model.Identity, req *model.ApproveFreelancerRequest) (*model.UserEntity, error)
}

type AdminAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewAdminApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) AdminApp {
	return &AdminAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

// CreateAgent creates an agent account with the configured default password.
func (s *AdminAppImpl) CreateAgent(ctx context.Context, identity model.Identity, req *model.AgentRequest) (*model.UserEntity, error) {
	if !identity.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.checkEmailFree(ctx, "CreateAgent", req.Email, 0); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.config.Agent.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[CreateAgent] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	agent := model.ApplyAgent(model.UserEntity{
		PasswordHash:  string(hashedPassword),
		Role:          constant.RoleAgent,
		ApproveStatus: constant.ApproveApproved,
		Status:        constant.UserStatusActive,
		CreatedBy:     &identity.ID,
	}, *req)

	created, err := s.userRepo.Create(ctx, &agent)
	if err != nil {
		if cerr := agentConflict(err); cerr != nil {
			return nil, cerr
		}
		logger.Error("[CreateAgent] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *AdminAppImpl) ListAgents(ctx context.Context, identity model.Identity) ([]model.UserEntity, error) {
	return s.listByRole(ctx, "ListAgents", identity, constant.RoleAgent)
}

func (s *AdminAppImpl) GetAgent(ctx context.Context, identity model.Identity, id uint64) (*model.UserEntity, error) {
	if !identity.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return s.loadAgent(ctx, "GetAgent", id)
}

// EditAgent replaces the agent's profile. Capability flags left out of the
// request are cleared.
func (s *AdminAppImpl) EditAgent(ctx context.Context, identity model.Identity, id uint64, req *model.AgentRequest) (*model.UserEntity, error) {
	if !identity.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	agent, err := s.loadAgent(ctx, "EditAgent", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkEmailFree(ctx, "EditAgent", req.Email, id); err != nil {
		return nil, err
	}

	updated := model.ApplyAgent(*agent, *req)
	updated.UpdatedBy = &identity.ID
	if err := s.userRepo.Update(ctx, &updated); err != nil {
		if cerr := agentConflict(err); cerr != nil {
			return nil, cerr
		}
		logger.Error("[EditAgent] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &updated, nil
}

// DeleteAgent soft deletes the agent and ends their sessions.
func (s *AdminAppImpl) DeleteAgent(ctx context.Context, identity model.Identity, id uint64) error {
	if !identity.IsAdmin() {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if _, err := s.loadAgent(ctx, "DeleteAgent", id); err != nil {
		return err
	}

	if err := s.userRepo.SoftDelete(ctx, id, identity.ID); err != nil {
		logger.Error("[DeleteAgent] err userRepo.SoftDelete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// token validation rejects deleted users anyway
	if err := s.redisRepo.RevokeUserSessions(ctx, id); err != nil {
		logger.Warn("[DeleteAgent] err redisRepo.RevokeUserSessions", zap.Uint64("user_id", id), zap.String("error", err.Error()))
	}
	return nil
}

func (s *AdminAppImpl) ListFreelancers(ctx context.Context, identity model.Identity) ([]model.UserEntity, error) {
	return s.listByRole(ctx, "ListFreelancers", identity, constant.RoleFreelancer)
}

// ApproveFreelancer lets a pending freelancer log in.
func (s *AdminAppImpl) ApproveFreelancer(ctx context.Context, identity model.Identity, req *model.ApproveFreelancerRequest) (*model.UserEntity, error) {
	if !identity.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	freelancer, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.FreelancerID, Role: constant.RoleFreelancer})
	if err != nil {
		logger.Error("[ApproveFreelancer] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if freelancer == nil {
		return nil, errors.SetCustomError(constant.ErrFreelancerNotFound)
	}

	freelancer.ApproveStatus = constant.ApproveApproved
	freelancer.UpdatedBy = &identity.ID
	if err := s.userRepo.Update(ctx, freelancer); err != nil {
		logger.Error("[ApproveFreelancer] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return freelancer, nil
}

func (s *AdminAppImpl) listByRole(ctx context.Context, op string, identity model.Identity, role constant.Role) ([]model.UserEntity, error) {
	if !identity.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	users, err := s.userRepo.List(ctx, &model.UserFilter{Role: role})
	if err != nil {
		logger.Error("["+op+"] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return users, nil
}

func (s *AdminAppImpl) loadAgent(ctx context.Context, op string, id uint64) (*model.UserEntity, error) {
	agent, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id, Role: constant.RoleAgent})
	if err != nil {
		logger.Error("["+op+"] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if agent == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return agent, nil
}

// checkEmailFree rejects an email held by any live user other than excludeID.
func (s *AdminAppImpl) checkEmailFree(ctx context.Context, op, email string, excludeID uint64) error {
	existing, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email, ExcludeID: excludeID})
	if err != nil {
		logger.Error("["+op+"] err userRepo.Get email", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return errors.SetFieldError(constant.ErrCredentialExists, "email", "The email has already been taken.")
	}
	return nil
}

func agentConflict(err error) error {
	key, ok := dberr.DuplicateKey(err)
	if !ok {
		return nil
	}
	if key == user.KeyMobileNumber {
		return errors.SetFieldError(constant.ErrCredentialExists, "phone_number", "The phone number has already been taken.")
	}
	return errors.SetFieldError(constant.ErrCredentialExists, "email", "The email has already been taken.")
}
