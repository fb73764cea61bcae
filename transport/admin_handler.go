package transport

import (
	"net/http"

	"github.com/muhammadheryan/lead-crm/model"
)

// CreateAgent handler
// @Summary Create agent
// @Description Admin only. The agent receives the configured default password.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AgentRequest true "Agent"
// @Success 200 {object} Response{data=model.UserEntity}
// @Router /admin/agents/create-agent [post]
func (s *RestHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AgentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.CreateAgent(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Agent created successfully", res)
}

// ListAgents handler
// @Summary List agents
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]model.UserEntity}
// @Router /admin/agents [get]
func (s *RestHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.ListAgents(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAgent handler
// @Summary Agent detail
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Agent ID"
// @Success 200 {object} Response{data=model.UserEntity}
// @Router /admin/agents/{id} [get]
func (s *RestHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.GetAgent(r.Context(), identity, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// EditAgent handler
// @Summary Edit agent
// @Description Capability flags left out of the request are cleared
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Agent ID"
// @Param request body model.AgentRequest true "Agent"
// @Success 200 {object} Response{data=model.UserEntity}
// @Router /admin/agents/{id} [put]
func (s *RestHandler) EditAgent(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AgentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.EditAgent(r.Context(), identity, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Agent updated successfully", res)
}

// DeleteAgent handler
// @Summary Delete agent
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Agent ID"
// @Success 200 {object} Response
// @Router /admin/agents/{id} [delete]
func (s *RestHandler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AdminApp.DeleteAgent(r.Context(), identity, id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Agent deleted successfully", nil)
}

// ListFreelancers handler
// @Summary List freelancers
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]model.UserEntity}
// @Router /admin/freelancers [get]
func (s *RestHandler) ListFreelancers(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.ListFreelancers(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ApproveFreelancer handler
// @Summary Approve freelancer
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ApproveFreelancerRequest true "Freelancer"
// @Success 200 {object} Response{data=model.UserEntity}
// @Router /admin/freelancers/approve [post]
func (s *RestHandler) ApproveFreelancer(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ApproveFreelancerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.ApproveFreelancer(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Freelancer approved successfully", res)
}

// CreatePlan handler
// @Summary Create plan
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PlanRequest true "Plan"
// @Success 200 {object} Response{data=model.PlanEntity}
// @Router /admin/plans [post]
func (s *RestHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	identity, err := callerIdentity(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.PlanRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PlanApp.Create(r.Context(), identity, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Plan created successfully", res)
}

// ListPlans handler
// @Summary List plans
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]model.PlanEntity}
// @Router /admin/plans [get]
func (s *RestHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	res, err := s.PlanApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetPlan handler
// @Summary Plan detail
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} Response{data=model.PlanEntity}
// @Router /admin/plans/{id} [get]
func (s *RestHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PlanApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdatePlan handler
// @Summary Update plan
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Param request body model.PlanRequest true "Plan"
// @Success 200 {object} Response{data=model.PlanEntity}
// @Router /admin/plans/{id} [put]
func (s *RestHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.PlanRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PlanApp.Update(r.Context(), identity, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Plan updated successfully", res)
}

// DeletePlan handler
// @Summary Delete plan
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} Response
// @Router /admin/plans/{id} [delete]
func (s *RestHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	identity, id, err := targetOf(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.PlanApp.Delete(r.Context(), identity, id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Plan deleted successfully", nil)
}

// UploadImages handler
// @Summary Upload images
// @Description jpg, jpeg, png or gif up to the configured size
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Images"
// @Success 200 {object} Response{data=model.UploadImagesResponse}
// @Router /upload-multiple-images [post]
func (s *RestHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	if err := s.parseMultipart(w, r, "images"); err != nil {
		writeError(w, err)
		return
	}

	files, err := s.formFiles(r, "images")
	if err != nil {
		writeError(w, err)
		return
	}
	if len(files) == 0 {
		writeError(w, validationFailed("images", "The images field is required."))
		return
	}

	res, err := s.UploadApp.UploadImages(r.Context(), files)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Images uploaded successfully", res)
}
