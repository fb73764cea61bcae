package rabbitmq

import (
	"context"

	"github.com/muhammadheryan/lead-crm/utils/logger"
	"go.uber.org/zap"
)

// LogNotifier records notifications in the log. Mail and push delivery are
// handled outside this service.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) HandleOTPRequested(ctx context.Context, msg OTPRequestedMessage) error {
	logger.Info("password reset code requested",
		zap.String("email", msg.Email),
		zap.Time("expires_at", msg.ExpiresAt))
	return nil
}

func (n *LogNotifier) HandleLeadAssigned(ctx context.Context, msg LeadAssignedMessage) error {
	logger.Info("lead assigned",
		zap.Uint64("lead_id", msg.LeadID),
		zap.String("processing_id", msg.ProcessingID),
		zap.Uint64("agent_id", msg.AgentID),
		zap.Uint64("assigned_by", msg.AssignedBy),
		zap.String("change_status", msg.ChangeStatus))
	return nil
}

func (n *LogNotifier) HandleFollowUpDue(ctx context.Context, msg FollowUpDueMessage) error {
	fields := []zap.Field{
		zap.Uint64("lead_id", msg.LeadID),
		zap.String("processing_id", msg.ProcessingID),
		zap.Time("due_at", msg.DueAt),
	}
	if msg.AgentID != nil {
		fields = append(fields, zap.Uint64("agent_id", *msg.AgentID))
	}
	logger.Info("lead follow-up due", fields...)
	return nil
}
