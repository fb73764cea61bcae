package constant

type contextKey string

const IdentityKey contextKey = "identity"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAgent      Role = "agent"
	RoleFreelancer Role = "freelancer"
	RoleUser       Role = "user"
)

type ApproveStatus int

const (
	ApprovePending  ApproveStatus = 0
	ApproveApproved ApproveStatus = 1
)

const (
	UserStatusActive = "active"
)
