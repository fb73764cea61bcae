package rabbitmq

import "time"

const (
	eventsExchange     = "crm_events_exchange"
	notificationsQueue = "crm_notifications_queue"

	RoutingOTPRequested = "password.otp_requested"
	RoutingLeadAssigned = "lead.assigned"
	RoutingFollowUpDue  = "lead.follow_up_due"
)

type OTPRequestedMessage struct {
	Email     string    `json:"email"`
	OTP       string    `json:"otp"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LeadAssignedMessage struct {
	LeadID       uint64 `json:"lead_id"`
	ProcessingID string `json:"processing_id"`
	AgentID      uint64 `json:"agent_id"`
	AssignedBy   uint64 `json:"assigned_by"`
	ChangeStatus string `json:"change_status"`
}

type FollowUpDueMessage struct {
	LeadID       uint64    `json:"lead_id"`
	ProcessingID string    `json:"processing_id"`
	AgentID      *uint64   `json:"agent_id,omitempty"`
	DueAt        time.Time `json:"due_at"`
}
