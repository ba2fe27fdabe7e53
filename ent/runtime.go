// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bookflow/agentplane/ent/agentstate"
	"github.com/bookflow/agentplane/ent/approval"
	"github.com/bookflow/agentplane/ent/auditlog"
	"github.com/bookflow/agentplane/ent/customerscore"
	"github.com/bookflow/agentplane/ent/decision"
	"github.com/bookflow/agentplane/ent/event"
	"github.com/bookflow/agentplane/ent/gap"
	"github.com/bookflow/agentplane/ent/outreach"
	"github.com/bookflow/agentplane/ent/schema"
	"github.com/bookflow/agentplane/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentstateFields := schema.AgentState{}.Fields()
	_ = agentstateFields
	// agentstateDescTenantID is the schema descriptor for tenant_id field.
	agentstateDescTenantID := agentstateFields[1].Descriptor()
	// agentstate.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	agentstate.TenantIDValidator = agentstateDescTenantID.Validators[0].(func(string) error)
	// agentstateDescAgentName is the schema descriptor for agent_name field.
	agentstateDescAgentName := agentstateFields[2].Descriptor()
	// agentstate.AgentNameValidator is a validator for the "agent_name" field. It is called by the builders before save.
	agentstate.AgentNameValidator = agentstateDescAgentName.Validators[0].(func(string) error)
	// agentstateDescBreakerConsecutiveErrors is the schema descriptor for breaker_consecutive_errors field.
	agentstateDescBreakerConsecutiveErrors := agentstateFields[7].Descriptor()
	// agentstate.DefaultBreakerConsecutiveErrors holds the default value on creation for the breaker_consecutive_errors field.
	agentstate.DefaultBreakerConsecutiveErrors = agentstateDescBreakerConsecutiveErrors.Default.(int)
	// agentstateDescBreakerCooldownMinutes is the schema descriptor for breaker_cooldown_minutes field.
	agentstateDescBreakerCooldownMinutes := agentstateFields[11].Descriptor()
	// agentstate.DefaultBreakerCooldownMinutes holds the default value on creation for the breaker_cooldown_minutes field.
	agentstate.DefaultBreakerCooldownMinutes = agentstateDescBreakerCooldownMinutes.Default.(int)
	// agentstateDescProbeInFlight is the schema descriptor for probe_in_flight field.
	agentstateDescProbeInFlight := agentstateFields[12].Descriptor()
	// agentstate.DefaultProbeInFlight holds the default value on creation for the probe_in_flight field.
	agentstate.DefaultProbeInFlight = agentstateDescProbeInFlight.Default.(bool)
	// agentstateDescMaxHourlyActions is the schema descriptor for max_hourly_actions field.
	agentstateDescMaxHourlyActions := agentstateFields[13].Descriptor()
	// agentstate.DefaultMaxHourlyActions holds the default value on creation for the max_hourly_actions field.
	agentstate.DefaultMaxHourlyActions = agentstateDescMaxHourlyActions.Default.(int)
	// agentstateDescMaxDailyActions is the schema descriptor for max_daily_actions field.
	agentstateDescMaxDailyActions := agentstateFields[14].Descriptor()
	// agentstate.DefaultMaxDailyActions holds the default value on creation for the max_daily_actions field.
	agentstate.DefaultMaxDailyActions = agentstateDescMaxDailyActions.Default.(int)
	// agentstateDescCooldownMinutes is the schema descriptor for cooldown_minutes field.
	agentstateDescCooldownMinutes := agentstateFields[15].Descriptor()
	// agentstate.DefaultCooldownMinutes holds the default value on creation for the cooldown_minutes field.
	agentstate.DefaultCooldownMinutes = agentstateDescCooldownMinutes.Default.(int)
	// agentstateDescCounterDate is the schema descriptor for counter_date field.
	agentstateDescCounterDate := agentstateFields[17].Descriptor()
	// agentstate.DefaultCounterDate holds the default value on creation for the counter_date field.
	agentstate.DefaultCounterDate = agentstateDescCounterDate.Default.(string)
	// agentstateDescActionsTaken is the schema descriptor for actions_taken field.
	agentstateDescActionsTaken := agentstateFields[18].Descriptor()
	// agentstate.DefaultActionsTaken holds the default value on creation for the actions_taken field.
	agentstate.DefaultActionsTaken = agentstateDescActionsTaken.Default.(int)
	// agentstateDescActionsSuccessful is the schema descriptor for actions_successful field.
	agentstateDescActionsSuccessful := agentstateFields[19].Descriptor()
	// agentstate.DefaultActionsSuccessful holds the default value on creation for the actions_successful field.
	agentstate.DefaultActionsSuccessful = agentstateDescActionsSuccessful.Default.(int)
	// agentstateDescActionsFailed is the schema descriptor for actions_failed field.
	agentstateDescActionsFailed := agentstateFields[20].Descriptor()
	// agentstate.DefaultActionsFailed holds the default value on creation for the actions_failed field.
	agentstate.DefaultActionsFailed = agentstateDescActionsFailed.Default.(int)
	// agentstateDescRevenueGenerated is the schema descriptor for revenue_generated field.
	agentstateDescRevenueGenerated := agentstateFields[21].Descriptor()
	// agentstate.DefaultRevenueGenerated holds the default value on creation for the revenue_generated field.
	agentstate.DefaultRevenueGenerated = agentstateDescRevenueGenerated.Default.(int64)
	// agentstateDescHourWindowCount is the schema descriptor for hour_window_count field.
	agentstateDescHourWindowCount := agentstateFields[24].Descriptor()
	// agentstate.DefaultHourWindowCount holds the default value on creation for the hour_window_count field.
	agentstate.DefaultHourWindowCount = agentstateDescHourWindowCount.Default.(int)
	// agentstateDescDayWindowCount is the schema descriptor for day_window_count field.
	agentstateDescDayWindowCount := agentstateFields[26].Descriptor()
	// agentstate.DefaultDayWindowCount holds the default value on creation for the day_window_count field.
	agentstate.DefaultDayWindowCount = agentstateDescDayWindowCount.Default.(int)
	// agentstateDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	agentstateDescConsecutiveFailures := agentstateFields[28].Descriptor()
	// agentstate.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	agentstate.DefaultConsecutiveFailures = agentstateDescConsecutiveFailures.Default.(int)
	// agentstateDescSuccessRate is the schema descriptor for success_rate field.
	agentstateDescSuccessRate := agentstateFields[29].Descriptor()
	// agentstate.DefaultSuccessRate holds the default value on creation for the success_rate field.
	agentstate.DefaultSuccessRate = agentstateDescSuccessRate.Default.(float64)
	// agentstateDescAvgLatencyMs is the schema descriptor for avg_latency_ms field.
	agentstateDescAvgLatencyMs := agentstateFields[30].Descriptor()
	// agentstate.DefaultAvgLatencyMs holds the default value on creation for the avg_latency_ms field.
	agentstate.DefaultAvgLatencyMs = agentstateDescAvgLatencyMs.Default.(float64)
	// agentstateDescVersion is the schema descriptor for version field.
	agentstateDescVersion := agentstateFields[31].Descriptor()
	// agentstate.DefaultVersion holds the default value on creation for the version field.
	agentstate.DefaultVersion = agentstateDescVersion.Default.(int64)
	// agentstateDescCreatedAt is the schema descriptor for created_at field.
	agentstateDescCreatedAt := agentstateFields[32].Descriptor()
	// agentstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentstate.DefaultCreatedAt = agentstateDescCreatedAt.Default.(func() time.Time)
	// agentstateDescUpdatedAt is the schema descriptor for updated_at field.
	agentstateDescUpdatedAt := agentstateFields[33].Descriptor()
	// agentstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentstate.DefaultUpdatedAt = agentstateDescUpdatedAt.Default.(func() time.Time)
	// agentstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentstate.UpdateDefaultUpdatedAt = agentstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	approvalFields := schema.Approval{}.Fields()
	_ = approvalFields
	// approvalDescTenantID is the schema descriptor for tenant_id field.
	approvalDescTenantID := approvalFields[1].Descriptor()
	// approval.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	approval.TenantIDValidator = approvalDescTenantID.Validators[0].(func(string) error)
	// approvalDescDecisionID is the schema descriptor for decision_id field.
	approvalDescDecisionID := approvalFields[2].Descriptor()
	// approval.DecisionIDValidator is a validator for the "decision_id" field. It is called by the builders before save.
	approval.DecisionIDValidator = approvalDescDecisionID.Validators[0].(func(string) error)
	// approvalDescAgentName is the schema descriptor for agent_name field.
	approvalDescAgentName := approvalFields[3].Descriptor()
	// approval.AgentNameValidator is a validator for the "agent_name" field. It is called by the builders before save.
	approval.AgentNameValidator = approvalDescAgentName.Validators[0].(func(string) error)
	// approvalDescActionType is the schema descriptor for action_type field.
	approvalDescActionType := approvalFields[4].Descriptor()
	// approval.ActionTypeValidator is a validator for the "action_type" field. It is called by the builders before save.
	approval.ActionTypeValidator = approvalDescActionType.Validators[0].(func(string) error)
	// approvalDescActionSummary is the schema descriptor for action_summary field.
	approvalDescActionSummary := approvalFields[5].Descriptor()
	// approval.ActionSummaryValidator is a validator for the "action_summary" field. It is called by the builders before save.
	approval.ActionSummaryValidator = func() func(string) error {
		validators := approvalDescActionSummary.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(action_summary string) error {
			for _, fn := range fns {
				if err := fn(action_summary); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// approvalDescCreatedAt is the schema descriptor for created_at field.
	approvalDescCreatedAt := approvalFields[14].Descriptor()
	// approval.DefaultCreatedAt holds the default value on creation for the created_at field.
	approval.DefaultCreatedAt = approvalDescCreatedAt.Default.(func() time.Time)
	// approvalDescUpdatedAt is the schema descriptor for updated_at field.
	approvalDescUpdatedAt := approvalFields[15].Descriptor()
	// approval.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	approval.DefaultUpdatedAt = approvalDescUpdatedAt.Default.(func() time.Time)
	// approval.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	approval.UpdateDefaultUpdatedAt = approvalDescUpdatedAt.UpdateDefault.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescTenantID is the schema descriptor for tenant_id field.
	auditlogDescTenantID := auditlogFields[1].Descriptor()
	// auditlog.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	auditlog.TenantIDValidator = auditlogDescTenantID.Validators[0].(func(string) error)
	// auditlogDescEventType is the schema descriptor for event_type field.
	auditlogDescEventType := auditlogFields[2].Descriptor()
	// auditlog.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	auditlog.EventTypeValidator = auditlogDescEventType.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[9].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	customerscoreFields := schema.CustomerScore{}.Fields()
	_ = customerscoreFields
	// customerscoreDescTenantID is the schema descriptor for tenant_id field.
	customerscoreDescTenantID := customerscoreFields[1].Descriptor()
	// customerscore.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	customerscore.TenantIDValidator = customerscoreDescTenantID.Validators[0].(func(string) error)
	// customerscoreDescCustomerID is the schema descriptor for customer_id field.
	customerscoreDescCustomerID := customerscoreFields[2].Descriptor()
	// customerscore.CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	customerscore.CustomerIDValidator = customerscoreDescCustomerID.Validators[0].(func(string) error)
	// customerscoreDescLtvTotal is the schema descriptor for ltv_total field.
	customerscoreDescLtvTotal := customerscoreFields[3].Descriptor()
	// customerscore.DefaultLtvTotal holds the default value on creation for the ltv_total field.
	customerscore.DefaultLtvTotal = customerscoreDescLtvTotal.Default.(int64)
	// customerscoreDescLtvProjected is the schema descriptor for ltv_projected field.
	customerscoreDescLtvProjected := customerscoreFields[4].Descriptor()
	// customerscore.DefaultLtvProjected holds the default value on creation for the ltv_projected field.
	customerscore.DefaultLtvProjected = customerscoreDescLtvProjected.Default.(int64)
	// customerscoreDescAvgVisitValue is the schema descriptor for avg_visit_value field.
	customerscoreDescAvgVisitValue := customerscoreFields[5].Descriptor()
	// customerscore.DefaultAvgVisitValue holds the default value on creation for the avg_visit_value field.
	customerscore.DefaultAvgVisitValue = customerscoreDescAvgVisitValue.Default.(int64)
	// customerscoreDescVisitFrequencyMonthly is the schema descriptor for visit_frequency_monthly field.
	customerscoreDescVisitFrequencyMonthly := customerscoreFields[6].Descriptor()
	// customerscore.DefaultVisitFrequencyMonthly holds the default value on creation for the visit_frequency_monthly field.
	customerscore.DefaultVisitFrequencyMonthly = customerscoreDescVisitFrequencyMonthly.Default.(float64)
	// customerscoreDescEstLifespanMonths is the schema descriptor for est_lifespan_months field.
	customerscoreDescEstLifespanMonths := customerscoreFields[7].Descriptor()
	// customerscore.DefaultEstLifespanMonths holds the default value on creation for the est_lifespan_months field.
	customerscore.DefaultEstLifespanMonths = customerscoreDescEstLifespanMonths.Default.(float64)
	// customerscoreDescMembershipBonus is the schema descriptor for membership_bonus field.
	customerscoreDescMembershipBonus := customerscoreFields[8].Descriptor()
	// customerscore.DefaultMembershipBonus holds the default value on creation for the membership_bonus field.
	customerscore.DefaultMembershipBonus = customerscoreDescMembershipBonus.Default.(bool)
	// customerscoreDescChurnScore is the schema descriptor for churn_score field.
	customerscoreDescChurnScore := customerscoreFields[10].Descriptor()
	// customerscore.DefaultChurnScore holds the default value on creation for the churn_score field.
	customerscore.DefaultChurnScore = customerscoreDescChurnScore.Default.(int)
	// customerscore.ChurnScoreValidator is a validator for the "churn_score" field. It is called by the builders before save.
	customerscore.ChurnScoreValidator = customerscoreDescChurnScore.Validators[0].(func(int) error)
	// customerscoreDescComputedAt is the schema descriptor for computed_at field.
	customerscoreDescComputedAt := customerscoreFields[15].Descriptor()
	// customerscore.DefaultComputedAt holds the default value on creation for the computed_at field.
	customerscore.DefaultComputedAt = customerscoreDescComputedAt.Default.(func() time.Time)
	// customerscoreDescCreatedAt is the schema descriptor for created_at field.
	customerscoreDescCreatedAt := customerscoreFields[16].Descriptor()
	// customerscore.DefaultCreatedAt holds the default value on creation for the created_at field.
	customerscore.DefaultCreatedAt = customerscoreDescCreatedAt.Default.(func() time.Time)
	// customerscoreDescUpdatedAt is the schema descriptor for updated_at field.
	customerscoreDescUpdatedAt := customerscoreFields[17].Descriptor()
	// customerscore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customerscore.DefaultUpdatedAt = customerscoreDescUpdatedAt.Default.(func() time.Time)
	// customerscore.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customerscore.UpdateDefaultUpdatedAt = customerscoreDescUpdatedAt.UpdateDefault.(func() time.Time)
	decisionFields := schema.Decision{}.Fields()
	_ = decisionFields
	// decisionDescTenantID is the schema descriptor for tenant_id field.
	decisionDescTenantID := decisionFields[1].Descriptor()
	// decision.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	decision.TenantIDValidator = decisionDescTenantID.Validators[0].(func(string) error)
	// decisionDescAgentName is the schema descriptor for agent_name field.
	decisionDescAgentName := decisionFields[2].Descriptor()
	// decision.AgentNameValidator is a validator for the "agent_name" field. It is called by the builders before save.
	decision.AgentNameValidator = decisionDescAgentName.Validators[0].(func(string) error)
	// decisionDescActionSummary is the schema descriptor for action_summary field.
	decisionDescActionSummary := decisionFields[11].Descriptor()
	// decision.ActionSummaryValidator is a validator for the "action_summary" field. It is called by the builders before save.
	decision.ActionSummaryValidator = decisionDescActionSummary.Validators[0].(func(string) error)
	// decisionDescRevenuePotential is the schema descriptor for revenue_potential field.
	decisionDescRevenuePotential := decisionFields[13].Descriptor()
	// decision.DefaultRevenuePotential holds the default value on creation for the revenue_potential field.
	decision.DefaultRevenuePotential = decisionDescRevenuePotential.Default.(int64)
	// decisionDescApprovalRequired is the schema descriptor for approval_required field.
	decisionDescApprovalRequired := decisionFields[15].Descriptor()
	// decision.DefaultApprovalRequired holds the default value on creation for the approval_required field.
	decision.DefaultApprovalRequired = decisionDescApprovalRequired.Default.(bool)
	// decisionDescCreatedAt is the schema descriptor for created_at field.
	decisionDescCreatedAt := decisionFields[23].Descriptor()
	// decision.DefaultCreatedAt holds the default value on creation for the created_at field.
	decision.DefaultCreatedAt = decisionDescCreatedAt.Default.(func() time.Time)
	// decisionDescUpdatedAt is the schema descriptor for updated_at field.
	decisionDescUpdatedAt := decisionFields[24].Descriptor()
	// decision.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	decision.DefaultUpdatedAt = decisionDescUpdatedAt.Default.(func() time.Time)
	// decision.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	decision.UpdateDefaultUpdatedAt = decisionDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescTenantID is the schema descriptor for tenant_id field.
	eventDescTenantID := eventFields[1].Descriptor()
	// event.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	event.TenantIDValidator = eventDescTenantID.Validators[0].(func(string) error)
	// eventDescEventType is the schema descriptor for event_type field.
	eventDescEventType := eventFields[2].Descriptor()
	// event.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	event.EventTypeValidator = eventDescEventType.Validators[0].(func(string) error)
	// eventDescChannel is the schema descriptor for channel field.
	eventDescChannel := eventFields[3].Descriptor()
	// event.ChannelValidator is a validator for the "channel" field. It is called by the builders before save.
	event.ChannelValidator = eventDescChannel.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[5].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	gapFields := schema.Gap{}.Fields()
	_ = gapFields
	// gapDescTenantID is the schema descriptor for tenant_id field.
	gapDescTenantID := gapFields[1].Descriptor()
	// gap.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	gap.TenantIDValidator = gapDescTenantID.Validators[0].(func(string) error)
	// gapDescStaffID is the schema descriptor for staff_id field.
	gapDescStaffID := gapFields[2].Descriptor()
	// gap.StaffIDValidator is a validator for the "staff_id" field. It is called by the builders before save.
	gap.StaffIDValidator = gapDescStaffID.Validators[0].(func(string) error)
	// gapDescDate is the schema descriptor for date field.
	gapDescDate := gapFields[4].Descriptor()
	// gap.DateValidator is a validator for the "date" field. It is called by the builders before save.
	gap.DateValidator = gapDescDate.Validators[0].(func(string) error)
	// gapDescDurationMinutes is the schema descriptor for duration_minutes field.
	gapDescDurationMinutes := gapFields[7].Descriptor()
	// gap.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	gap.DurationMinutesValidator = gapDescDurationMinutes.Validators[0].(func(int) error)
	// gapDescPotentialRevenue is the schema descriptor for potential_revenue field.
	gapDescPotentialRevenue := gapFields[10].Descriptor()
	// gap.DefaultPotentialRevenue holds the default value on creation for the potential_revenue field.
	gap.DefaultPotentialRevenue = gapDescPotentialRevenue.Default.(int64)
	// gapDescFillAttempts is the schema descriptor for fill_attempts field.
	gapDescFillAttempts := gapFields[12].Descriptor()
	// gap.DefaultFillAttempts holds the default value on creation for the fill_attempts field.
	gap.DefaultFillAttempts = gapDescFillAttempts.Default.(int)
	// gapDescCreatedAt is the schema descriptor for created_at field.
	gapDescCreatedAt := gapFields[17].Descriptor()
	// gap.DefaultCreatedAt holds the default value on creation for the created_at field.
	gap.DefaultCreatedAt = gapDescCreatedAt.Default.(func() time.Time)
	// gapDescUpdatedAt is the schema descriptor for updated_at field.
	gapDescUpdatedAt := gapFields[18].Descriptor()
	// gap.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	gap.DefaultUpdatedAt = gapDescUpdatedAt.Default.(func() time.Time)
	// gap.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	gap.UpdateDefaultUpdatedAt = gapDescUpdatedAt.UpdateDefault.(func() time.Time)
	outreachFields := schema.Outreach{}.Fields()
	_ = outreachFields
	// outreachDescTenantID is the schema descriptor for tenant_id field.
	outreachDescTenantID := outreachFields[1].Descriptor()
	// outreach.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	outreach.TenantIDValidator = outreachDescTenantID.Validators[0].(func(string) error)
	// outreachDescCustomerID is the schema descriptor for customer_id field.
	outreachDescCustomerID := outreachFields[2].Descriptor()
	// outreach.CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	outreach.CustomerIDValidator = outreachDescCustomerID.Validators[0].(func(string) error)
	// outreachDescCustomerPhone is the schema descriptor for customer_phone field.
	outreachDescCustomerPhone := outreachFields[4].Descriptor()
	// outreach.CustomerPhoneValidator is a validator for the "customer_phone" field. It is called by the builders before save.
	outreach.CustomerPhoneValidator = outreachDescCustomerPhone.Validators[0].(func(string) error)
	// outreachDescType is the schema descriptor for type field.
	outreachDescType := outreachFields[5].Descriptor()
	// outreach.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	outreach.TypeValidator = outreachDescType.Validators[0].(func(string) error)
	// outreachDescMessage is the schema descriptor for message field.
	outreachDescMessage := outreachFields[8].Descriptor()
	// outreach.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	outreach.MessageValidator = outreachDescMessage.Validators[0].(func(string) error)
	// outreachDescTriggerID is the schema descriptor for trigger_id field.
	outreachDescTriggerID := outreachFields[9].Descriptor()
	// outreach.TriggerIDValidator is a validator for the "trigger_id" field. It is called by the builders before save.
	outreach.TriggerIDValidator = outreachDescTriggerID.Validators[0].(func(string) error)
	// outreachDescTriggerKind is the schema descriptor for trigger_kind field.
	outreachDescTriggerKind := outreachFields[10].Descriptor()
	// outreach.TriggerKindValidator is a validator for the "trigger_kind" field. It is called by the builders before save.
	outreach.TriggerKindValidator = outreachDescTriggerKind.Validators[0].(func(string) error)
	// outreachDescAttempts is the schema descriptor for attempts field.
	outreachDescAttempts := outreachFields[12].Descriptor()
	// outreach.DefaultAttempts holds the default value on creation for the attempts field.
	outreach.DefaultAttempts = outreachDescAttempts.Default.(int)
	// outreachDescResponseReceived is the schema descriptor for response_received field.
	outreachDescResponseReceived := outreachFields[19].Descriptor()
	// outreach.DefaultResponseReceived holds the default value on creation for the response_received field.
	outreach.DefaultResponseReceived = outreachDescResponseReceived.Default.(bool)
	// outreachDescCreatedAt is the schema descriptor for created_at field.
	outreachDescCreatedAt := outreachFields[23].Descriptor()
	// outreach.DefaultCreatedAt holds the default value on creation for the created_at field.
	outreach.DefaultCreatedAt = outreachDescCreatedAt.Default.(func() time.Time)
	// outreachDescUpdatedAt is the schema descriptor for updated_at field.
	outreachDescUpdatedAt := outreachFields[24].Descriptor()
	// outreach.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	outreach.DefaultUpdatedAt = outreachDescUpdatedAt.Default.(func() time.Time)
	// outreach.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	outreach.UpdateDefaultUpdatedAt = outreachDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescName is the schema descriptor for name field.
	taskDescName := taskFields[1].Descriptor()
	// task.NameValidator is a validator for the "name" field. It is called by the builders before save.
	task.NameValidator = taskDescName.Validators[0].(func(string) error)
	// taskDescQueue is the schema descriptor for queue field.
	taskDescQueue := taskFields[2].Descriptor()
	// task.DefaultQueue holds the default value on creation for the queue field.
	task.DefaultQueue = taskDescQueue.Default.(string)
	// taskDescHandler is the schema descriptor for handler field.
	taskDescHandler := taskFields[3].Descriptor()
	// task.HandlerValidator is a validator for the "handler" field. It is called by the builders before save.
	task.HandlerValidator = taskDescHandler.Validators[0].(func(string) error)
	// taskDescScheduledAt is the schema descriptor for scheduled_at field.
	taskDescScheduledAt := taskFields[7].Descriptor()
	// task.DefaultScheduledAt holds the default value on creation for the scheduled_at field.
	task.DefaultScheduledAt = taskDescScheduledAt.Default.(func() time.Time)
	// taskDescAttempts is the schema descriptor for attempts field.
	taskDescAttempts := taskFields[8].Descriptor()
	// task.DefaultAttempts holds the default value on creation for the attempts field.
	task.DefaultAttempts = taskDescAttempts.Default.(int)
	// taskDescMaxAttempts is the schema descriptor for max_attempts field.
	taskDescMaxAttempts := taskFields[9].Descriptor()
	// task.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	task.DefaultMaxAttempts = taskDescMaxAttempts.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[15].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}
