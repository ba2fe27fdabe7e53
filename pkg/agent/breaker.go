package agent

import (
	"time"

	"github.com/bookflow/agentplane/ent/agentstate"
	"github.com/bookflow/agentplane/pkg/config"
)

// BreakerSnapshot is the circuit-breaker portion of an AgentState record.
// Transitions are pure functions over snapshots; the runtime persists the
// result with a version-guarded conditional update.
type BreakerSnapshot struct {
	State             agentstate.BreakerState
	ConsecutiveErrors int
	FirstFailureAt    *time.Time
	CooldownUntil     *time.Time
	CooldownMinutes   int
	ProbeInFlight     bool
}

// Admission is the outcome of asking the breaker whether an action may run.
type Admission struct {
	Allowed bool
	Probe   bool   // this action is the single half-open probe
	Reason  string // set when not allowed
}

// Admit decides whether an action may run now and returns the snapshot the
// decision implies (open → half_open at cooldown expiry; the admitted probe
// sets ProbeInFlight).
func Admit(s BreakerSnapshot, now time.Time) (Admission, BreakerSnapshot) {
	switch s.State {
	case agentstate.BreakerStateOpen:
		if s.CooldownUntil != nil && !now.Before(*s.CooldownUntil) {
			s.State = agentstate.BreakerStateHalfOpen
			s.ProbeInFlight = true
			return Admission{Allowed: true, Probe: true}, s
		}
		return Admission{Reason: "circuit_open"}, s

	case agentstate.BreakerStateHalfOpen:
		if s.ProbeInFlight {
			return Admission{Reason: "probe_in_flight"}, s
		}
		s.ProbeInFlight = true
		return Admission{Allowed: true, Probe: true}, s

	default:
		return Admission{Allowed: true}, s
	}
}

// OnFailure records one breaker error. Consecutive errors outside the rolling
// window restart the count. Returns the new snapshot and whether this failure
// tripped the breaker open.
func OnFailure(s BreakerSnapshot, now time.Time, cfg *config.BreakerConfig) (BreakerSnapshot, bool) {
	if s.State == agentstate.BreakerStateHalfOpen {
		// Probe failure: straight back to open with the cooldown doubled.
		s.State = agentstate.BreakerStateOpen
		s.ProbeInFlight = false
		s.CooldownMinutes = capCooldown(s.CooldownMinutes*2, cfg.MaxCooldownMinutes)
		until := now.Add(time.Duration(s.CooldownMinutes) * time.Minute)
		s.CooldownUntil = &until
		return s, true
	}

	if s.FirstFailureAt == nil || now.Sub(*s.FirstFailureAt) > cfg.Window {
		s.ConsecutiveErrors = 1
		first := now
		s.FirstFailureAt = &first
	} else {
		s.ConsecutiveErrors++
	}

	if s.ConsecutiveErrors < cfg.Threshold {
		return s, false
	}

	s.State = agentstate.BreakerStateOpen
	s.CooldownMinutes = capCooldown(1<<uint(s.ConsecutiveErrors), cfg.MaxCooldownMinutes)
	until := now.Add(time.Duration(s.CooldownMinutes) * time.Minute)
	s.CooldownUntil = &until
	return s, true
}

// OnSuccess records one successful action. A successful half-open probe
// closes the breaker; in any state success clears the failure window.
func OnSuccess(s BreakerSnapshot) BreakerSnapshot {
	s.State = agentstate.BreakerStateClosed
	s.ConsecutiveErrors = 0
	s.FirstFailureAt = nil
	s.CooldownUntil = nil
	s.CooldownMinutes = 0
	s.ProbeInFlight = false
	return s
}

func capCooldown(minutes, maxMinutes int) int {
	if minutes < 1 {
		return 1
	}
	if minutes > maxMinutes {
		return maxMinutes
	}
	return minutes
}
