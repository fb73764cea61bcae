package model

import "github.com/muhammadheryan/lead-crm/constant"

// Identity is the authenticated caller, resolved once by the auth middleware
// and passed explicitly into every application call.
type Identity struct {
	ID            uint64
	Role          constant.Role
	ApproveStatus constant.ApproveStatus
}

func (i Identity) IsAdmin() bool {
	return i.Role == constant.RoleAdmin
}

func (i Identity) IsFreelancer() bool {
	return i.Role == constant.RoleFreelancer
}

// CanManageLeads reports whether the caller may change a lead's lifecycle fields.
func (i Identity) CanManageLeads() bool {
	return i.Role == constant.RoleAdmin || i.Role == constant.RoleAgent
}
