package cleanup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookflow/agentplane/pkg/config"
)

func TestStopWithoutStartIsNoop(t *testing.T) {
	s := NewService(config.DefaultRetentionConfig(), nil)
	s.Stop() // should not panic or block
}

func TestDefaultRetentionWindows(t *testing.T) {
	cfg := config.DefaultRetentionConfig()
	assert.Equal(t, 7*24*time.Hour, cfg.EventTTL)
	assert.Equal(t, 90*24*time.Hour, cfg.AuditRetention)
	assert.Equal(t, time.Hour, cfg.SweepInterval)
}
