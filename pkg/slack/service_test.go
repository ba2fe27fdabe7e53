package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("ApprovalRequested is no-op", func(t *testing.T) {
		posted := s.ApprovalRequested(context.Background(), testApproval())
		assert.False(t, posted)
	})

	t.Run("ApprovalResolved is no-op", func(_ *testing.T) {
		// Should not panic
		s.ApprovalResolved(context.Background(), testApproval(), "approved")
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(Config{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(Config{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(Config{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://dash.example.com",
		})
		assert.NotNil(t, svc)
	})
}
