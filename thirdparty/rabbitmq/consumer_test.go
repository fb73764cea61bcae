package rabbitmq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/lead-crm/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingHandler struct {
	otp      []OTPRequestedMessage
	assigned []LeadAssignedMessage
	due      []FollowUpDueMessage
	err      error
}

func (h *recordingHandler) HandleOTPRequested(_ context.Context, m OTPRequestedMessage) error {
	h.otp = append(h.otp, m)
	return h.err
}

func (h *recordingHandler) HandleLeadAssigned(_ context.Context, m LeadAssignedMessage) error {
	h.assigned = append(h.assigned, m)
	return h.err
}

func (h *recordingHandler) HandleFollowUpDue(_ context.Context, m FollowUpDueMessage) error {
	h.due = append(h.due, m)
	return h.err
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name          string
		routingKey    string
		body          string
		handlerErr    error
		wantErr       bool
		wantPermanent bool
		check         func(t *testing.T, h *recordingHandler)
	}{
		{
			name:       "otp requested",
			routingKey: RoutingOTPRequested,
			body:       `{"email":"a@example.com","otp":"Ab12Cd","expires_at":"2026-01-01T10:00:00Z"}`,
			check: func(t *testing.T, h *recordingHandler) {
				require.Len(t, h.otp, 1)
				assert.Equal(t, "a@example.com", h.otp[0].Email)
			},
		},
		{
			name:       "lead assigned",
			routingKey: RoutingLeadAssigned,
			body:       `{"lead_id":5,"processing_id":"AbCd1234","agent_id":2,"assigned_by":1,"change_status":"Assigned"}`,
			check: func(t *testing.T, h *recordingHandler) {
				require.Len(t, h.assigned, 1)
				assert.Equal(t, uint64(2), h.assigned[0].AgentID)
			},
		},
		{
			name:       "follow up due",
			routingKey: RoutingFollowUpDue,
			body:       `{"lead_id":5,"processing_id":"AbCd1234","due_at":"2026-01-01T00:00:00Z"}`,
			check: func(t *testing.T, h *recordingHandler) {
				require.Len(t, h.due, 1)
				assert.Nil(t, h.due[0].AgentID)
			},
		},
		{
			name:          "malformed body is permanent",
			routingKey:    RoutingLeadAssigned,
			body:          `{"lead_id":"five"`,
			wantErr:       true,
			wantPermanent: true,
		},
		{
			name:          "unknown routing key is permanent",
			routingKey:    "lead.archived",
			body:          `{}`,
			wantErr:       true,
			wantPermanent: true,
		},
		{
			name:       "handler failure is retried",
			routingKey: RoutingOTPRequested,
			body:       `{"email":"a@example.com"}`,
			handlerErr: errors.New("smtp down"),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &recordingHandler{err: tt.handlerErr}
			err := Dispatch(context.Background(), h, tt.routingKey, []byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantPermanent, isPermanent(err))
				return
			}
			require.NoError(t, err)
			tt.check(t, h)
		})
	}
}

func TestDelayUntil(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(90_000), DelayUntil(now.Add(90*time.Second), now))
	assert.Equal(t, int64(0), DelayUntil(now.Add(-time.Hour), now))
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	defer logger.Replace(zap.New(core))()

	agentID := uint64(2)
	n := NewLogNotifier()
	require.NoError(t, n.HandleOTPRequested(context.Background(), OTPRequestedMessage{Email: "a@example.com"}))
	require.NoError(t, n.HandleLeadAssigned(context.Background(), LeadAssignedMessage{LeadID: 5, AgentID: 2}))
	require.NoError(t, n.HandleFollowUpDue(context.Background(), FollowUpDueMessage{LeadID: 5, AgentID: &agentID}))

	require.Equal(t, 3, logs.Len())
	entries := logs.All()
	assert.Equal(t, "password reset code requested", entries[0].Message)
	assert.NotContains(t, entries[0].ContextMap(), "otp")
	assert.Equal(t, "lead assigned", entries[1].Message)
	assert.Equal(t, uint64(2), entries[2].ContextMap()["agent_id"])
}
