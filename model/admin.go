package model

// AgentRequest is used for both agent creation and edit.
type AgentRequest struct {
	FullName          string  `json:"full_name" validate:"required,max=255"`
	Email             string  `json:"email" validate:"required,email"`
	PhoneNumber       string  `json:"phone_number" validate:"required,max=20"`
	Address           *string `json:"address" validate:"omitempty,max=500"`
	ProfilePicture    *string `json:"profile_picture"`
	AssignedReport    *bool   `json:"assigned_report"`
	ApproveFreelancer *bool   `json:"approve_freelancer"`
	AssignedAgent     *bool   `json:"assigned_agent"`
}

type ApproveFreelancerRequest struct {
	FreelancerID uint64 `json:"freelancer_id" validate:"required"`
}

// boolOrFalse treats an omitted capability flag as false.
func boolOrFalse(b *bool) bool {
	return b != nil && *b
}

// ApplyAgent copies the agent form onto the user record. Omitted flags reset to
// false and a missing profile picture keeps the stored one.
func ApplyAgent(existing UserEntity, req AgentRequest) UserEntity {
	out := existing
	out.Name = ptr(req.FullName)
	out.Email = req.Email
	out.MobileNumber = ptr(req.PhoneNumber)
	out.Address = req.Address
	out.ProfilePicture = coalesce(req.ProfilePicture, existing.ProfilePicture)
	out.AssignedReport = boolOrFalse(req.AssignedReport)
	out.ApproveFreelancer = boolOrFalse(req.ApproveFreelancer)
	out.AssignedAgent = boolOrFalse(req.AssignedAgent)
	return out
}
