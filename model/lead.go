package model

import (
	"strings"
	"time"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/lead-crm/constant"
)

// LeadEntity represents the leads table entity
type LeadEntity struct {
	ID               uint64     `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Number           *string    `db:"number" json:"number"`
	PhoneNumber      *string    `db:"phone_number" json:"phone_number"`
	CompanyName      *string    `db:"company_name" json:"company_name"`
	Email            string     `db:"email" json:"email"`
	Location         *string    `db:"location" json:"location"`
	Address          *string    `db:"address" json:"address"`
	LeadType         *string    `db:"lead_type" json:"lead_type"`
	ServiceType      *string    `db:"service_type" json:"service_type"`
	SomeText         *string    `db:"some_text" json:"some_text"`
	ServiceText      *string    `db:"service_text" json:"service_text"`
	CRFile           *string    `db:"cr_file" json:"cr_file"`
	CCFile           *string    `db:"cc_file" json:"cc_file"`
	TLFile           *string    `db:"tl_file" json:"tl_file"`
	FilePath         *string    `db:"file_path" json:"file_path"`
	ProcessingID     string     `db:"processing_id" json:"processing_id"`
	Level            string     `db:"level" json:"level"`
	ChangeStatus     *string    `db:"change_status" json:"change_status"`
	StageMovement    *string    `db:"stage_movement" json:"stage_movement"`
	Disposition      *string    `db:"disposition" json:"disposition"`
	Remarks          *string    `db:"remarks" json:"remarks"`
	Attachment       *string    `db:"attachment" json:"attachment"`
	NextFollowUpDate *time.Time `db:"next_follow_up_date" json:"next_follow_up_date"`
	Hours            *string    `db:"hours" json:"hours"`
	AgentID          *uint64    `db:"agent_id" json:"agent_id"`
	PlanID           *uint64    `db:"plan_id" json:"plan_id"`
	CreatedBy        *uint64    `db:"created_by" json:"created_by"`
	UpdatedBy        *uint64    `db:"updated_by" json:"updated_by"`
	DeletedBy        *uint64    `db:"deleted_by" json:"deleted_by,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at" json:"updated_at,omitempty"`
	DeletedAt        *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// OwnedBy reports whether userID created the lead.
func (l *LeadEntity) OwnedBy(userID uint64) bool {
	return l.CreatedBy != nil && *l.CreatedBy == userID
}

// LeadFilter for listing leads. Zero values mean "no filter"; soft-deleted
// rows are always excluded.
type LeadFilter struct {
	CreatedBy uint64
	Level     string
	LeadType  string
}

type LeadListResponse struct {
	Total int64        `json:"total"`
	Leads []LeadEntity `json:"leads"`
}

// LeadDetail is a lead with its related records resolved by explicit lookups.
type LeadDetail struct {
	LeadEntity
	Creator *UserSummary `json:"creator,omitempty"`
	Agent   *UserSummary `json:"agent,omitempty"`
	Plan    *PlanEntity  `json:"plan,omitempty"`
}

type LevelOneRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Number      string  `json:"number" validate:"required,max=20"`
	CompanyName string  `json:"company_name" validate:"required,max=255"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Location    *string `json:"location"`
}

type LevelOneResponse struct {
	LeadID       uint64 `json:"lead_id"`
	ProcessingID string `json:"processing_id"`
	Step         int    `json:"step"`
}

type LevelTwoRequest struct {
	LeadID   uint64 `json:"lead_id" validate:"required"`
	SomeText string `json:"some_text" validate:"required,max=255"`
}

type LevelTwoResponse struct {
	LeadID uint64 `json:"lead_id"`
	Step   int    `json:"step"`
}

// LevelThreeRequest carries the optional wizard documents; nil files keep the
// stored path.
type LevelThreeRequest struct {
	LeadID uint64      `form:"lead_id" validate:"required"`
	CRFile *FileUpload `form:"cr_file"`
	CCFile *FileUpload `form:"cc_file"`
	TLFile *FileUpload `form:"tl_file"`
}

type LevelThreeResponse struct {
	LeadID uint64 `json:"lead_id"`
}

type CreateLeadRequest struct {
	LeadType    string  `json:"lead_type" validate:"required,max=255"`
	ServiceType *string `json:"service_type" validate:"omitempty,max=255"`
	Name        string  `json:"name" validate:"required,max=255"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=255"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	PhoneNumber string  `json:"phone_number" validate:"required,max=20"`
	Address     *string `json:"address" validate:"omitempty,max=500"`
	ServiceText *string `json:"service_text"`
}

// CreateLeadStructLevel requires service_type when the lead is for mobile services.
func CreateLeadStructLevel(sl gpvalidator.StructLevel) {
	req := sl.Current().Interface().(CreateLeadRequest)
	if !strings.EqualFold(strings.TrimSpace(req.LeadType), constant.LeadTypeMobileServices) {
		return
	}
	if req.ServiceType == nil || strings.TrimSpace(*req.ServiceType) == "" {
		sl.ReportError(req.ServiceType, "service_type", "ServiceType", "required_if_mobile_services", "")
	}
}

type UpdateVisitRequest struct {
	StageMovement string  `json:"stage_movement" validate:"required,max=255"`
	Disposition   string  `json:"disposition" validate:"required,oneof=Answered Unanswered Callback"`
	Remarks       *string `json:"remarks"`
	Attachment    *string `json:"attachment"`
}

type UpdateFollowUpRequest struct {
	NextFollowUpDate string  `json:"next_follow_up_date" validate:"required,datetime=2006-01-02"`
	Hours            *string `json:"hours" validate:"omitempty,max=50"`
	Remarks          *string `json:"remarks"`
}

type ChangeStatusRequest struct {
	ChangeStatus string `json:"change_status" validate:"required,max=255"`
}

type ChangeStatusAgentRequest struct {
	ChangeStatus string `json:"change_status" validate:"required,max=255"`
	PlanID       uint64 `json:"plan_id" validate:"required"`
}

type UpdateLeadStatusRequest struct {
	AgentID      uint64 `json:"agent_id" validate:"required"`
	ChangeStatus string `json:"change_status" validate:"required,max=255"`
}

// ApplyLevelTwo stamps the wizard's second step.
func ApplyLevelTwo(existing LeadEntity, req LevelTwoRequest, updatedBy uint64) LeadEntity {
	out := existing
	out.SomeText = ptr(req.SomeText)
	out.Level = constant.LeadLevelTwo
	out.UpdatedBy = ptr(updatedBy)
	return out
}

// ApplyLevelThree overwrites each supplied document path and keeps the others.
func ApplyLevelThree(existing LeadEntity, crFile, ccFile, tlFile *string, updatedBy uint64) LeadEntity {
	out := existing
	out.CRFile = coalesce(crFile, existing.CRFile)
	out.CCFile = coalesce(ccFile, existing.CCFile)
	out.TLFile = coalesce(tlFile, existing.TLFile)
	out.FilePath = firstNonNil(out.CRFile, out.CCFile, out.TLFile)
	out.Level = constant.LeadLevelThree
	out.UpdatedBy = ptr(updatedBy)
	return out
}

// ApplyVisit merges a visit update; omitted optional fields keep prior values.
func ApplyVisit(existing LeadEntity, req UpdateVisitRequest, updatedBy uint64) LeadEntity {
	out := existing
	out.StageMovement = ptr(req.StageMovement)
	out.Disposition = ptr(req.Disposition)
	out.Remarks = coalesce(req.Remarks, existing.Remarks)
	out.Attachment = coalesce(req.Attachment, existing.Attachment)
	out.UpdatedBy = ptr(updatedBy)
	return out
}

// ApplyFollowUp merges a follow-up update; omitted optional fields keep prior values.
func ApplyFollowUp(existing LeadEntity, nextFollowUp time.Time, req UpdateFollowUpRequest, updatedBy uint64) LeadEntity {
	out := existing
	out.NextFollowUpDate = ptr(nextFollowUp)
	out.Hours = coalesce(req.Hours, existing.Hours)
	out.Remarks = coalesce(req.Remarks, existing.Remarks)
	out.UpdatedBy = ptr(updatedBy)
	return out
}

func ApplyChangeStatus(existing LeadEntity, status string, updatedBy uint64) LeadEntity {
	out := existing
	out.ChangeStatus = ptr(status)
	out.UpdatedBy = ptr(updatedBy)
	return out
}

func ApplyChangeStatusAgent(existing LeadEntity, req ChangeStatusAgentRequest, updatedBy uint64) LeadEntity {
	out := ApplyChangeStatus(existing, req.ChangeStatus, updatedBy)
	out.PlanID = ptr(req.PlanID)
	return out
}

// ApplyAssignment assigns the lead to an agent and stamps the status.
func ApplyAssignment(existing LeadEntity, req UpdateLeadStatusRequest, updatedBy uint64) LeadEntity {
	out := ApplyChangeStatus(existing, req.ChangeStatus, updatedBy)
	out.AgentID = ptr(req.AgentID)
	return out
}
