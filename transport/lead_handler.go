package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/lead-crm/model"
)

// LevelOne handler
// @Summary Lead wizard step one
// @Description Create a lead with contact details and receive its processing id
// @Tags Lead
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.LevelOneRequest true "Level One Request"
// @Success 200 {object} Response{data=model.LevelOneResponse}
// @Router /leads/level-1 [post]
func (s *RestHandler) LevelOne(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.LevelOneRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.LevelOne(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Level 1 completed", res)
}

// LevelTwo handler
// @Summary Lead wizard step two
// @Tags Lead
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.LevelTwoRequest true "Level Two Request"
// @Success 200 {object} Response{data=model.LevelTwoResponse}
// @Router /leads/level-2 [post]
func (s *RestHandler) LevelTwo(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.LevelTwoRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.LevelTwo(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Level 2 completed", res)
}

// LevelThree handler
// @Summary Lead wizard step three
// @Description Attach the CR, CC and TL documents (jpg, jpeg, png, pdf). Missing files keep the stored ones.
// @Tags Lead
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param lead_id formData int true "Lead ID"
// @Param cr_file formData file false "CR document"
// @Param cc_file formData file false "CC document"
// @Param tl_file formData file false "TL document"
// @Success 200 {object} Response{data=model.LevelThreeResponse}
// @Router /leads/level-3 [post]
func (s *RestHandler) LevelThree(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.parseMultipart(w, r, "request"); err != nil {
		writeError(w, err)
		return
	}

	var req model.LevelThreeRequest
	req.LeadID, _ = strconv.ParseUint(r.FormValue("lead_id"), 10, 64)
	if err := validate(&req); err != nil {
		writeError(w, err)
		return
	}

	documents := []struct {
		field string
		dst   **model.FileUpload
	}{
		{"cr_file", &req.CRFile},
		{"cc_file", &req.CCFile},
		{"tl_file", &req.TLFile},
	}
	for _, doc := range documents {
		if *doc.dst, err = s.formFile(r, doc.field); err != nil {
			writeError(w, err)
			return
		}
	}

	res, err := s.LeadApp.LevelThree(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Level 3 completed", res)
}

// CreateLead handler
// @Summary Create lead
// @Description service_type is required when lead_type is "Mobile services"
// @Tags Lead
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateLeadRequest true "Create Lead Request"
// @Success 200 {object} Response{data=model.LeadEntity}
// @Router /leads/create [post]
func (s *RestHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateLeadRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.CreateLead(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Lead created successfully", res)
}

// ListLeads handler
// @Summary List leads
// @Description Freelancers see only the leads they created
// @Tags Lead
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.LeadListResponse}
// @Router /leads [get]
func (s *RestHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.ListLeads(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListLeadsByLevel handler
// @Summary List leads at a wizard level
// @Tags Lead
// @Produce json
// @Security BearerAuth
// @Param level path string true "Level (1, 2 or 3)"
// @Success 200 {object} Response{data=model.LeadListResponse}
// @Router /leads/level/{level} [get]
func (s *RestHandler) ListLeadsByLevel(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.ListLeadsByLevel(r.Context(), identity, mux.Vars(r)["level"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListLeadsByType handler
// @Summary List leads by type
// @Tags Lead
// @Produce json
// @Security BearerAuth
// @Param type path string true "mobile-services or outsourcing"
// @Success 200 {object} Response{data=model.LeadListResponse}
// @Router /leads/type/{type} [get]
func (s *RestHandler) ListLeadsByType(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.ListLeadsByType(r.Context(), identity, mux.Vars(r)["type"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetLead handler
// @Summary Lead detail
// @Tags Lead
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} Response{data=model.LeadDetail}
// @Router /leads/{id} [get]
func (s *RestHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.GetLead(r.Context(), identity, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateVisit handler
// @Summary Record a visit
// @Tags Lead
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body model.UpdateVisitRequest true "Visit"
// @Success 200 {object} Response{data=model.LeadEntity}
// @Router /leads/{id}/visit-update [put]
func (s *RestHandler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateVisitRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.UpdateVisit(r.Context(), identity, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Visit updated successfully", res)
}

// UpdateFollowUp handler
// @Summary Schedule the next follow-up
// @Tags Lead
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body model.UpdateFollowUpRequest true "Follow-up"
// @Success 200 {object} Response{data=model.LeadEntity}
// @Router /leads/{id}/follow-up-update [put]
func (s *RestHandler) UpdateFollowUp(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateFollowUpRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.UpdateFollowUp(r.Context(), identity, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Follow up updated successfully", res)
}

// UpdateChangeStatus handler
// @Summary Change lead status
// @Tags Lead
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body model.ChangeStatusRequest true "Status"
// @Success 200 {object} Response{data=model.LeadEntity}
// @Router /leads/{id}/change-status [put]
func (s *RestHandler) UpdateChangeStatus(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ChangeStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.UpdateChangeStatus(r.Context(), identity, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Status updated successfully", res)
}

// ChangeStatusAgent handler
// @Summary Change lead status with the chosen plan
// @Tags Lead
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body model.ChangeStatusAgentRequest true "Status and plan"
// @Success 200 {object} Response{data=model.LeadEntity}
// @Router /leads/{id}/change-status-agent [put]
func (s *RestHandler) ChangeStatusAgent(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ChangeStatusAgentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.ChangeStatusAgent(r.Context(), identity, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Status updated successfully", res)
}

// UpdateLeadStatus handler
// @Summary Assign lead to an agent
// @Description Admin only
// @Tags Lead
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body model.UpdateLeadStatusRequest true "Assignment"
// @Success 200 {object} Response{data=model.LeadEntity}
// @Router /leads/{id}/lead-status [put]
func (s *RestHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateLeadStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.LeadApp.UpdateLeadStatus(r.Context(), identity, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Lead assigned successfully", res)
}

// DeleteLead handler
// @Summary Delete lead
// @Description Admin only
// @Tags Lead
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} Response
// @Router /leads/{id} [delete]
func (s *RestHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.LeadApp.DeleteLead(r.Context(), identity, id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Lead deleted successfully", nil)
}
