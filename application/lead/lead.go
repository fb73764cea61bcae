package lead

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadheryan/lead-crm/application/upload"
	"github.com/muhammadheryan/lead-crm/constant"
	"github.com/muhammadheryan/lead-crm/model"
	leadrepo "github.com/muhammadheryan/lead-crm/repository/lead"
	planrepo "github.com/muhammadheryan/lead-crm/repository/plan"
	userrepo "github.com/muhammadheryan/lead-crm/repository/user"
	"github.com/muhammadheryan/lead-crm/thirdparty/rabbitmq"
	"github.com/muhammadheryan/lead-crm/utils/dberr"
	"github.com/muhammadheryan/lead-crm/utils/errors"
	"github.com/muhammadheryan/lead-crm/utils/logger"
	"github.com/muhammadheryan/lead-crm/utils/random"
	"go.uber.org/zap"
)

const (
	// re-rolls of a candidate processing id that already exists
	maxProcessingIDRolls = 10
	// inserts retried after losing a processing id race to a concurrent writer
	maxInsertAttempts = 5
)

// Path segments accepted by ListLeadsByType.
const (
	TypeMobileServices = "mobile-services"
	TypeOutsourcing    = "outsourcing"
)

type LeadApp interface {
	LevelOne(ctx context.Context, identity model.Identity, req *model.LevelOneRequest) (*model.LevelOneResponse, error)
	LevelTwo(ctx context.Context, identity model.Identity, req *model.LevelTwoRequest) (*model.LevelTwoResponse, error)
	LevelThree(ctx context.Context, identity model.Identity, req *model.LevelThreeRequest) (*model.LevelThreeResponse, error)
	CreateLead(ctx context.Context, identity model.Identity, req *model.CreateLeadRequest) (*model.LeadEntity, error)

	ListLeads(ctx context.Context, identity model.Identity) (*model.LeadListResponse, error)
	ListLeadsByLevel(ctx context.Context, identity model.Identity, level string) (*model.LeadListResponse, error)
	ListLeadsByType(ctx context.Context, identity model.Identity, leadType string) (*model.LeadListResponse, error)
	GetLead(ctx context.Context, identity model.Identity, id uint64) (*model.LeadDetail, error)

	UpdateVisit(ctx context.Context, identity model.Identity, id uint64, req *model.UpdateVisitRequest) (*model.LeadEntity, error)
	UpdateFollowUp(ctx context.Context, identity model.Identity, id uint64, req *model.UpdateFollowUpRequest) (*model.LeadEntity, error)
	UpdateChangeStatus(ctx context.Context, identity model.Identity, id uint64, req *model.ChangeStatusRequest) (*model.LeadEntity, error)
	ChangeStatusAgent(ctx context.Context, identity model.Identity, id uint64, req *model.ChangeStatusAgentRequest) (*model.LeadEntity, error)
	UpdateLeadStatus(ctx context.Context, identity model.Identity, id uint64, req *model.UpdateLeadStatusRequest) (*model.LeadEntity, error)
	DeleteLead(ctx context.Context, identity model.Identity, id uint64) error
}

type LeadAppImpl struct {
	leadRepo  leadrepo.LeadRepository
	userRepo  userrepo.UserRepository
	planRepo  planrepo.PlanRepository
	uploadApp upload.UploadApp
	publisher rabbitmq.Publisher
}

func NewLeadApp(
	leadRepo leadrepo.LeadRepository,
	userRepo userrepo.UserRepository,
	planRepo planrepo.PlanRepository,
	uploadApp upload.UploadApp,
	publisher rabbitmq.Publisher,
) LeadApp {
	return &LeadAppImpl{
		leadRepo:  leadRepo,
		userRepo:  userRepo,
		planRepo:  planRepo,
		uploadApp: uploadApp,
		publisher: publisher,
	}
}

func (s *LeadAppImpl) LevelOne(ctx context.Context, identity model.Identity, req *model.LevelOneRequest) (*model.LevelOneResponse, error) {
	if err := s.checkEmailFree(ctx, "LevelOne", req.Email); err != nil {
		return nil, err
	}

	lead, err := s.insert(ctx, "LevelOne", &model.LeadEntity{
		Name:        req.Name,
		Number:      &req.Number,
		CompanyName: &req.CompanyName,
		Email:       req.Email,
		Location:    req.Location,
		Level:       constant.LeadLevelOne,
		CreatedBy:   &identity.ID,
	})
	if err != nil {
		return nil, err
	}

	return &model.LevelOneResponse{
		LeadID:       lead.ID,
		ProcessingID: lead.ProcessingID,
		Step:         2,
	}, nil
}

func (s *LeadAppImpl) LevelTwo(ctx context.Context, identity model.Identity, req *model.LevelTwoRequest) (*model.LevelTwoResponse, error) {
	lead, err := s.loadOwned(ctx, "LevelTwo", identity, req.LeadID)
	if err != nil {
		return nil, err
	}

	// stepping back is allowed; it only gets noticed
	if lead.Level == constant.LeadLevelThree {
		logger.Warn("[LevelTwo] lead level regressed",
			zap.Uint64("lead_id", lead.ID), zap.String("from", lead.Level), zap.String("to", constant.LeadLevelTwo))
	}

	updated := model.ApplyLevelTwo(*lead, *req, identity.ID)
	if err := s.leadRepo.Update(ctx, &updated); err != nil {
		logger.Error("[LevelTwo] err leadRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LevelTwoResponse{LeadID: updated.ID, Step: 3}, nil
}

func (s *LeadAppImpl) LevelThree(ctx context.Context, identity model.Identity, req *model.LevelThreeRequest) (*model.LevelThreeResponse, error) {
	lead, err := s.loadOwned(ctx, "LevelThree", identity, req.LeadID)
	if err != nil {
		return nil, err
	}

	var crFile, ccFile, tlFile *string
	documents := []struct {
		dir, field string
		file       *model.FileUpload
		dst        **string
	}{
		{dir: "leads/cr", field: "cr_file", file: req.CRFile, dst: &crFile},
		{dir: "leads/cc", field: "cc_file", file: req.CCFile, dst: &ccFile},
		{dir: "leads/tl", field: "tl_file", file: req.TLFile, dst: &tlFile},
	}

	// nothing is written until every document passes
	for _, doc := range documents {
		if doc.file == nil {
			continue
		}
		if err := s.uploadApp.CheckDocument(doc.field, doc.file); err != nil {
			return nil, err
		}
	}

	var stored []string
	for _, doc := range documents {
		if doc.file == nil {
			continue
		}
		p, err := s.uploadApp.StoreDocument(ctx, doc.dir, doc.field, doc.file)
		if err != nil {
			s.uploadApp.RemoveDocuments(ctx, stored)
			return nil, err
		}
		stored = append(stored, p)
		*doc.dst = &p
	}

	updated := model.ApplyLevelThree(*lead, crFile, ccFile, tlFile, identity.ID)
	if err := s.leadRepo.Update(ctx, &updated); err != nil {
		logger.Error("[LevelThree] err leadRepo.Update", zap.String("error", err.Error()))
		s.uploadApp.RemoveDocuments(ctx, stored)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LevelThreeResponse{LeadID: updated.ID}, nil
}

func (s *LeadAppImpl) CreateLead(ctx context.Context, identity model.Identity, req *model.CreateLeadRequest) (*model.LeadEntity, error) {
	if err := s.checkEmailFree(ctx, "CreateLead", req.Email); err != nil {
		return nil, err
	}

	return s.insert(ctx, "CreateLead", &model.LeadEntity{
		Name:        req.Name,
		PhoneNumber: &req.PhoneNumber,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Address:     req.Address,
		LeadType:    &req.LeadType,
		ServiceType: req.ServiceType,
		ServiceText: req.ServiceText,
		Level:       constant.LeadLevelOne,
		CreatedBy:   &identity.ID,
	})
}

func (s *LeadAppImpl) ListLeads(ctx context.Context, identity model.Identity) (*model.LeadListResponse, error) {
	return s.list(ctx, "ListLeads", ownerFilter(identity))
}

func (s *LeadAppImpl) ListLeadsByLevel(ctx context.Context, identity model.Identity, level string) (*model.LeadListResponse, error) {
	switch level {
	case constant.LeadLevelOne, constant.LeadLevelTwo, constant.LeadLevelThree:
	default:
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "level", "The selected level is invalid.")
	}

	filter := ownerFilter(identity)
	filter.Level = level
	return s.list(ctx, "ListLeadsByLevel", filter)
}

func (s *LeadAppImpl) ListLeadsByType(ctx context.Context, identity model.Identity, leadType string) (*model.LeadListResponse, error) {
	if !identity.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	filter := &model.LeadFilter{}
	switch strings.ToLower(leadType) {
	case TypeMobileServices:
		filter.LeadType = constant.LeadTypeMobileServices
	case TypeOutsourcing:
		filter.LeadType = constant.LeadTypeOutsourcing
	default:
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "lead_type", "The selected lead type is invalid.")
	}
	return s.list(ctx, "ListLeadsByType", filter)
}

// GetLead returns the lead with its creator, agent and plan resolved.
// Freelancers may only read leads they created.
func (s *LeadAppImpl) GetLead(ctx context.Context, identity model.Identity, id uint64) (*model.LeadDetail, error) {
	lead, err := s.load(ctx, "GetLead", id)
	if err != nil {
		return nil, err
	}
	if identity.IsFreelancer() && !lead.OwnedBy(identity.ID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	detail := &model.LeadDetail{LeadEntity: *lead}

	if lead.CreatedBy != nil {
		creator, err := s.userRepo.Get(ctx, &model.UserFilter{ID: *lead.CreatedBy})
		if err != nil {
			logger.Error("[GetLead] err userRepo.Get creator", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		detail.Creator = creator.Summary()
	}

	if lead.AgentID != nil {
		agent, err := s.userRepo.Get(ctx, &model.UserFilter{ID: *lead.AgentID})
		if err != nil {
			logger.Error("[GetLead] err userRepo.Get agent", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		detail.Agent = agent.Summary()
	}

	if lead.PlanID != nil {
		plan, err := s.planRepo.GetByID(ctx, *lead.PlanID)
		if err != nil {
			logger.Error("[GetLead] err planRepo.GetByID", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		detail.Plan = plan
	}

	return detail, nil
}

func (s *LeadAppImpl) UpdateVisit(ctx context.Context, identity model.Identity, id uint64, req *model.UpdateVisitRequest) (*model.LeadEntity, error) {
	lead, err := s.loadManaged(ctx, "UpdateVisit", identity, id)
	if err != nil {
		return nil, err
	}

	updated := model.ApplyVisit(*lead, *req, identity.ID)
	return s.save(ctx, "UpdateVisit", &updated)
}

func (s *LeadAppImpl) UpdateFollowUp(ctx context.Context, identity model.Identity, id uint64, req *model.UpdateFollowUpRequest) (*model.LeadEntity, error) {
	nextFollowUp, err := time.Parse(time.DateOnly, req.NextFollowUpDate)
	if err != nil {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "next_follow_up_date", "The next follow up date is not a valid date.")
	}

	lead, err := s.loadManaged(ctx, "UpdateFollowUp", identity, id)
	if err != nil {
		return nil, err
	}

	updated := model.ApplyFollowUp(*lead, nextFollowUp, *req, identity.ID)
	saved, err := s.save(ctx, "UpdateFollowUp", &updated)
	if err != nil {
		return nil, err
	}

	err = s.publisher.PublishFollowUpDue(ctx, rabbitmq.FollowUpDueMessage{
		LeadID:       saved.ID,
		ProcessingID: saved.ProcessingID,
		AgentID:      saved.AgentID,
		DueAt:        nextFollowUp,
	})
	if err != nil {
		logger.Warn("[UpdateFollowUp] err publisher.PublishFollowUpDue", zap.Uint64("lead_id", saved.ID), zap.String("error", err.Error()))
	}
	return saved, nil
}

func (s *LeadAppImpl) UpdateChangeStatus(ctx context.Context, identity model.Identity, id uint64, req *model.ChangeStatusRequest) (*model.LeadEntity, error) {
	lead, err := s.loadManaged(ctx, "UpdateChangeStatus", identity, id)
	if err != nil {
		return nil, err
	}

	updated := model.ApplyChangeStatus(*lead, req.ChangeStatus, identity.ID)
	return s.save(ctx, "UpdateChangeStatus", &updated)
}

// ChangeStatusAgent records the status together with the plan the customer chose.
func (s *LeadAppImpl) ChangeStatusAgent(ctx context.Context, identity model.Identity, id uint64, req *model.ChangeStatusAgentRequest) (*model.LeadEntity, error) {
	lead, err := s.loadManaged(ctx, "ChangeStatusAgent", identity, id)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetByID(ctx, req.PlanID)
	if err != nil {
		logger.Error("[ChangeStatusAgent] err planRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if plan == nil {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "plan_id", "The selected plan id is invalid.")
	}

	updated := model.ApplyChangeStatusAgent(*lead, *req, identity.ID)
	return s.save(ctx, "ChangeStatusAgent", &updated)
}

// UpdateLeadStatus assigns the lead to an agent. Admin only.
func (s *LeadAppImpl) UpdateLeadStatus(ctx context.Context, identity model.Identity, id uint64, req *model.UpdateLeadStatusRequest) (*model.LeadEntity, error) {
	if !identity.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	lead, err := s.load(ctx, "UpdateLeadStatus", id)
	if err != nil {
		return nil, err
	}

	agent, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.AgentID, Role: constant.RoleAgent})
	if err != nil {
		logger.Error("[UpdateLeadStatus] err userRepo.Get agent", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if agent == nil {
		return nil, errors.SetFieldError(constant.ErrInvalidRequest, "agent_id", "The selected agent id is invalid.")
	}

	updated := model.ApplyAssignment(*lead, *req, identity.ID)
	saved, err := s.save(ctx, "UpdateLeadStatus", &updated)
	if err != nil {
		return nil, err
	}

	err = s.publisher.PublishLeadAssigned(ctx, rabbitmq.LeadAssignedMessage{
		LeadID:       saved.ID,
		ProcessingID: saved.ProcessingID,
		AgentID:      agent.ID,
		AssignedBy:   identity.ID,
		ChangeStatus: req.ChangeStatus,
	})
	if err != nil {
		logger.Warn("[UpdateLeadStatus] err publisher.PublishLeadAssigned", zap.Uint64("lead_id", saved.ID), zap.String("error", err.Error()))
	}
	return saved, nil
}

func (s *LeadAppImpl) DeleteLead(ctx context.Context, identity model.Identity, id uint64) error {
	if !identity.IsAdmin() {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if _, err := s.load(ctx, "DeleteLead", id); err != nil {
		return err
	}

	if err := s.leadRepo.SoftDelete(ctx, id, identity.ID); err != nil {
		logger.Error("[DeleteLead] err leadRepo.SoftDelete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func ownerFilter(identity model.Identity) *model.LeadFilter {
	if identity.IsFreelancer() {
		return &model.LeadFilter{CreatedBy: identity.ID}
	}
	return &model.LeadFilter{}
}

func (s *LeadAppImpl) list(ctx context.Context, op string, filter *model.LeadFilter) (*model.LeadListResponse, error) {
	leads, total, err := s.leadRepo.List(ctx, filter)
	if err != nil {
		logger.Error("["+op+"] err leadRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.LeadListResponse{Total: total, Leads: leads}, nil
}

func (s *LeadAppImpl) load(ctx context.Context, op string, id uint64) (*model.LeadEntity, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("["+op+"] err leadRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if lead == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return lead, nil
}

// loadOwned loads a lead the caller may advance through the wizard.
func (s *LeadAppImpl) loadOwned(ctx context.Context, op string, identity model.Identity, id uint64) (*model.LeadEntity, error) {
	lead, err := s.load(ctx, op, id)
	if err != nil {
		return nil, err
	}
	if !identity.CanManageLeads() && !lead.OwnedBy(identity.ID) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return lead, nil
}

// loadManaged loads a lead for a lifecycle change, which only agents and
// admins may make.
func (s *LeadAppImpl) loadManaged(ctx context.Context, op string, identity model.Identity, id uint64) (*model.LeadEntity, error) {
	if !identity.CanManageLeads() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return s.load(ctx, op, id)
}

func (s *LeadAppImpl) save(ctx context.Context, op string, lead *model.LeadEntity) (*model.LeadEntity, error) {
	if err := s.leadRepo.Update(ctx, lead); err != nil {
		logger.Error("["+op+"] err leadRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return lead, nil
}

func (s *LeadAppImpl) checkEmailFree(ctx context.Context, op, email string) error {
	exists, err := s.leadRepo.ExistsEmail(ctx, email)
	if err != nil {
		logger.Error("["+op+"] err leadRepo.ExistsEmail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return leadEmailTaken()
	}
	return nil
}

// insert stores a new lead under a fresh processing id. The storage unique
// keys are authoritative: losing a processing id race re-rolls the id, losing
// an email race reports the conflict.
func (s *LeadAppImpl) insert(ctx context.Context, op string, lead *model.LeadEntity) (*model.LeadEntity, error) {
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		processingID, err := s.newProcessingID(ctx)
		if err != nil {
			logger.Error("["+op+"] err newProcessingID", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		lead.ProcessingID = processingID

		created, err := s.leadRepo.Create(ctx, lead)
		if err == nil {
			return created, nil
		}

		key, dup := dberr.DuplicateKey(err)
		switch {
		case dup && key == leadrepo.KeyProcessingID:
			logger.Warn("["+op+"] processing id collision, retrying", zap.String("processing_id", processingID))
			continue
		case dup && key == leadrepo.KeyEmail:
			return nil, leadEmailTaken()
		}

		logger.Error("["+op+"] err leadRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Error("["+op+"] processing id retries exhausted", zap.Int("attempts", maxInsertAttempts))
	return nil, errors.SetCustomError(constant.ErrInternal)
}

// newProcessingID draws random ids until one is not in use.
func (s *LeadAppImpl) newProcessingID(ctx context.Context) (string, error) {
	for i := 0; i < maxProcessingIDRolls; i++ {
		candidate, err := random.String(constant.ProcessingIDLength)
		if err != nil {
			return "", err
		}

		exists, err := s.leadRepo.ExistsProcessingID(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free processing id after %d rolls", maxProcessingIDRolls)
}

func leadEmailTaken() error {
	return errors.SetFieldError(constant.ErrLeadEmailExists, "email", "The email has already been taken.")
}
