package plan

import (
	"context"

	"github.com/muhammadheryan/lead-crm/constant"
	"github.com/muhammadheryan/lead-crm/model"
	planrepo "github.com/muhammadheryan/lead-crm/repository/plan"
	"github.com/muhammadheryan/lead-crm/utils/errors"
	"github.com/muhammadheryan/lead-crm/utils/logger"
	"go.uber.org/zap"
)

// PlanApp manages the sales plans offered to leads. Reads are open to any
// authenticated caller, writes are admin only.
type PlanApp interface {
	Create(ctx context.Context, identity model.Identity, req *model.PlanRequest) (*model.PlanEntity, error)
	List(ctx context.Context) ([]model.PlanEntity, error)
	Get(ctx context.Context, id uint64) (*model.PlanEntity, error)
	Update(ctx context.Context, identity model.Identity, id uint64, req *model.PlanRequest) (*model.PlanEntity, error)
	Delete(ctx context.Context, identity model.Identity, id uint64) error
}

type PlanAppImpl struct {
	planRepo planrepo.PlanRepository
}

func NewPlanApp(planRepo planrepo.PlanRepository) PlanApp {
	return &PlanAppImpl{planRepo: planRepo}
}

func (s *PlanAppImpl) Create(ctx context.Context, identity model.Identity, req *model.PlanRequest) (*model.PlanEntity, error) {
	if !identity.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	plan, err := s.planRepo.Create(ctx, &model.PlanEntity{
		PlanName:  req.PlanName,
		Price:     req.Price.Round(2),
		Status:    req.Status,
		CreatedBy: &identity.ID,
	})
	if err != nil {
		logger.Error("[Create] err planRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return plan, nil
}

func (s *PlanAppImpl) List(ctx context.Context) ([]model.PlanEntity, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		logger.Error("[List] err planRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return plans, nil
}

func (s *PlanAppImpl) Get(ctx context.Context, id uint64) (*model.PlanEntity, error) {
	return s.load(ctx, "Get", id)
}

func (s *PlanAppImpl) Update(ctx context.Context, identity model.Identity, id uint64, req *model.PlanRequest) (*model.PlanEntity, error) {
	if !identity.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	plan, err := s.load(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	plan.PlanName = req.PlanName
	plan.Price = req.Price.Round(2)
	plan.Status = req.Status
	plan.UpdatedBy = &identity.ID
	if err := s.planRepo.Update(ctx, plan); err != nil {
		logger.Error("[Update] err planRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return plan, nil
}

func (s *PlanAppImpl) Delete(ctx context.Context, identity model.Identity, id uint64) error {
	if !identity.IsAdmin() {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if _, err := s.load(ctx, "Delete", id); err != nil {
		return err
	}

	if err := s.planRepo.SoftDelete(ctx, id, identity.ID); err != nil {
		logger.Error("[Delete] err planRepo.SoftDelete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *PlanAppImpl) load(ctx context.Context, op string, id uint64) (*model.PlanEntity, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("["+op+"] err planRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if plan == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return plan, nil
}
