// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentStatesColumns holds the columns for the "agent_states" table.
	AgentStatesColumns = []*schema.Column{
		{Name: "agent_state_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "error", "circuit_breaker"}, Default: "active"},
		{Name: "last_execution", Type: field.TypeTime, Nullable: true},
		{Name: "next_scheduled", Type: field.TypeTime, Nullable: true},
		{Name: "breaker_state", Type: field.TypeEnum, Enums: []string{"closed", "open", "half_open"}, Default: "closed"},
		{Name: "breaker_consecutive_errors", Type: field.TypeInt, Default: 0},
		{Name: "breaker_last_error", Type: field.TypeString, Nullable: true},
		{Name: "breaker_first_failure_at", Type: field.TypeTime, Nullable: true},
		{Name: "breaker_cooldown_until", Type: field.TypeTime, Nullable: true},
		{Name: "breaker_cooldown_minutes", Type: field.TypeInt, Default: 0},
		{Name: "probe_in_flight", Type: field.TypeBool, Default: false},
		{Name: "max_hourly_actions", Type: field.TypeInt, Default: 30},
		{Name: "max_daily_actions", Type: field.TypeInt, Default: 100},
		{Name: "cooldown_minutes", Type: field.TypeInt, Default: 60},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "counter_date", Type: field.TypeString, Default: ""},
		{Name: "actions_taken", Type: field.TypeInt, Default: 0},
		{Name: "actions_successful", Type: field.TypeInt, Default: 0},
		{Name: "actions_failed", Type: field.TypeInt, Default: 0},
		{Name: "revenue_generated", Type: field.TypeInt64, Default: 0},
		{Name: "actions_by_type", Type: field.TypeJSON, Nullable: true},
		{Name: "hour_window_start", Type: field.TypeTime, Nullable: true},
		{Name: "hour_window_count", Type: field.TypeInt, Default: 0},
		{Name: "day_window_start", Type: field.TypeTime, Nullable: true},
		{Name: "day_window_count", Type: field.TypeInt, Default: 0},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "success_rate", Type: field.TypeFloat64, Default: 1},
		{Name: "avg_latency_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentStatesTable holds the schema information for the "agent_states" table.
	AgentStatesTable = &schema.Table{
		Name:       "agent_states",
		Columns:    AgentStatesColumns,
		PrimaryKey: []*schema.Column{AgentStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentstate_tenant_id_agent_name",
				Unique:  true,
				Columns: []*schema.Column{AgentStatesColumns[1], AgentStatesColumns[2]},
			},
			{
				Name:    "agentstate_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentStatesColumns[1], AgentStatesColumns[3]},
			},
			{
				Name:    "agentstate_breaker_state_breaker_cooldown_until",
				Unique:  false,
				Columns: []*schema.Column{AgentStatesColumns[6], AgentStatesColumns[10]},
			},
		},
	}
	// ApprovalsColumns holds the columns for the "approvals" table.
	ApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "decision_id", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "action_type", Type: field.TypeString},
		{Name: "action_summary", Type: field.TypeString, Size: 500},
		{Name: "action_detail", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "urgent"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "expired", "cancelled"}, Default: "pending"},
		{Name: "notifications_sent", Type: field.TypeJSON, Nullable: true},
		{Name: "response_action", Type: field.TypeString, Nullable: true},
		{Name: "responder", Type: field.TypeString, Nullable: true},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "response_notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// ApprovalsTable holds the schema information for the "approvals" table.
	ApprovalsTable = &schema.Table{
		Name:       "approvals",
		Columns:    ApprovalsColumns,
		PrimaryKey: []*schema.Column{ApprovalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approval_tenant_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[1], ApprovalsColumns[8], ApprovalsColumns[14]},
			},
			{
				Name:    "approval_tenant_id_decision_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[1], ApprovalsColumns[2]},
			},
			{
				Name:    "approval_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[8], ApprovalsColumns[16]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}, Default: "info"},
		{Name: "actor", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[9]},
			},
			{
				Name:    "auditlog_tenant_id_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[2], AuditLogsColumns[9]},
			},
		},
	}
	// CustomerScoresColumns holds the columns for the "customer_scores" table.
	CustomerScoresColumns = []*schema.Column{
		{Name: "score_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "ltv_total", Type: field.TypeInt64, Default: 0},
		{Name: "ltv_projected", Type: field.TypeInt64, Default: 0},
		{Name: "avg_visit_value", Type: field.TypeInt64, Default: 0},
		{Name: "visit_frequency_monthly", Type: field.TypeFloat64, Default: 0},
		{Name: "est_lifespan_months", Type: field.TypeFloat64, Default: 0},
		{Name: "membership_bonus", Type: field.TypeBool, Default: false},
		{Name: "engagement", Type: field.TypeJSON, Nullable: true},
		{Name: "churn_score", Type: field.TypeInt, Default: 0},
		{Name: "churn_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "low"},
		{Name: "churn_factors", Type: field.TypeJSON, Nullable: true},
		{Name: "segment", Type: field.TypeEnum, Enums: []string{"vip", "high_value", "regular", "at_risk", "new", "dormant"}, Default: "new"},
		{Name: "last_visit_at", Type: field.TypeTime, Nullable: true},
		{Name: "computed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomerScoresTable holds the schema information for the "customer_scores" table.
	CustomerScoresTable = &schema.Table{
		Name:       "customer_scores",
		Columns:    CustomerScoresColumns,
		PrimaryKey: []*schema.Column{CustomerScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customerscore_tenant_id_customer_id",
				Unique:  true,
				Columns: []*schema.Column{CustomerScoresColumns[1], CustomerScoresColumns[2]},
			},
			{
				Name:    "customerscore_tenant_id_segment",
				Unique:  false,
				Columns: []*schema.Column{CustomerScoresColumns[1], CustomerScoresColumns[13]},
			},
			{
				Name:    "customerscore_tenant_id_churn_level",
				Unique:  false,
				Columns: []*schema.Column{CustomerScoresColumns[1], CustomerScoresColumns[11]},
			},
		},
	}
	// DecisionsColumns holds the columns for the "decisions" table.
	DecisionsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"gap_fill", "no_show_prevention", "waitlist_promotion", "discount_offer", "dynamic_pricing"}},
		{Name: "autonomy", Type: field.TypeEnum, Enums: []string{"full_auto", "supervised", "manual_only"}},
		{Name: "trigger_id", Type: field.TypeString},
		{Name: "trigger_kind", Type: field.TypeString},
		{Name: "customer_id", Type: field.TypeString, Nullable: true},
		{Name: "staff_id", Type: field.TypeString, Nullable: true},
		{Name: "service_id", Type: field.TypeString, Nullable: true},
		{Name: "slot_ref", Type: field.TypeString, Nullable: true},
		{Name: "action_summary", Type: field.TypeString},
		{Name: "action_detail", Type: field.TypeJSON, Nullable: true},
		{Name: "revenue_potential", Type: field.TypeInt64, Default: 0},
		{Name: "revenue_actual", Type: field.TypeInt64, Nullable: true},
		{Name: "approval_required", Type: field.TypeBool, Default: false},
		{Name: "approval_status", Type: field.TypeEnum, Enums: []string{"none", "pending", "approved", "rejected", "expired", "cancelled"}, Default: "none"},
		{Name: "approval_approver", Type: field.TypeString, Nullable: true},
		{Name: "approval_decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "outcome_status", Type: field.TypeEnum, Enums: []string{"pending", "success", "failed", "expired", "rejected"}, Default: "pending"},
		{Name: "outcome_result", Type: field.TypeString, Nullable: true},
		{Name: "outcome_booking_id", Type: field.TypeString, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// DecisionsTable holds the schema information for the "decisions" table.
	DecisionsTable = &schema.Table{
		Name:       "decisions",
		Columns:    DecisionsColumns,
		PrimaryKey: []*schema.Column{DecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decision_tenant_id_agent_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[1], DecisionsColumns[2], DecisionsColumns[23]},
			},
			{
				Name:    "decision_tenant_id_trigger_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[1], DecisionsColumns[5]},
			},
			{
				Name:    "decision_tenant_id_outcome_status",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[1], DecisionsColumns[19]},
			},
			{
				Name:    "decision_outcome_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[19], DecisionsColumns[25]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[5]},
			},
			{
				Name:    "event_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[5]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5]},
			},
		},
	}
	// GapsColumns holds the columns for the "gaps" table.
	GapsColumns = []*schema.Column{
		{Name: "gap_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "staff_id", Type: field.TypeString},
		{Name: "staff_name", Type: field.TypeString, Nullable: true},
		{Name: "date", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "filled", "expired", "ignored"}, Default: "open"},
		{Name: "potential_revenue", Type: field.TypeInt64, Default: 0},
		{Name: "fittable_service_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "fill_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "filled_by_booking_id", Type: field.TypeString, Nullable: true},
		{Name: "filled_by_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "filled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GapsTable holds the schema information for the "gaps" table.
	GapsTable = &schema.Table{
		Name:       "gaps",
		Columns:    GapsColumns,
		PrimaryKey: []*schema.Column{GapsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gap_tenant_id_status_date",
				Unique:  false,
				Columns: []*schema.Column{GapsColumns[1], GapsColumns[9], GapsColumns[4]},
			},
			{
				Name:    "gap_tenant_id_staff_id_date",
				Unique:  false,
				Columns: []*schema.Column{GapsColumns[1], GapsColumns[2], GapsColumns[4]},
			},
		},
	}
	// OutreachesColumns holds the columns for the "outreaches" table.
	OutreachesColumns = []*schema.Column{
		{Name: "outreach_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "customer_id", Type: field.TypeString},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "customer_phone", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"whatsapp", "sms", "push", "email"}, Default: "whatsapp"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "delivered", "read", "responded", "failed", "expired"}, Default: "pending"},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "trigger_id", Type: field.TypeString},
		{Name: "trigger_kind", Type: field.TypeString},
		{Name: "offer", Type: field.TypeJSON, Nullable: true},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "provider_message_id", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "response_received", Type: field.TypeBool, Default: false},
		{Name: "response_action", Type: field.TypeString, Nullable: true},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "response_booking_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// OutreachesTable holds the schema information for the "outreaches" table.
	OutreachesTable = &schema.Table{
		Name:       "outreaches",
		Columns:    OutreachesColumns,
		PrimaryKey: []*schema.Column{OutreachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outreach_provider_message_id",
				Unique:  false,
				Columns: []*schema.Column{OutreachesColumns[14]},
				Annotation: &entsql.IndexAnnotation{
					Where: "provider_message_id IS NOT NULL",
				},
			},
			{
				Name:    "outreach_tenant_id_customer_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutreachesColumns[1], OutreachesColumns[2], OutreachesColumns[23]},
			},
			{
				Name:    "outreach_tenant_id_trigger_id_status",
				Unique:  false,
				Columns: []*schema.Column{OutreachesColumns[1], OutreachesColumns[9], OutreachesColumns[7]},
			},
			{
				Name:    "outreach_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutreachesColumns[1], OutreachesColumns[23]},
			},
			{
				Name:    "outreach_customer_phone_created_at",
				Unique:  false,
				Columns: []*schema.Column{OutreachesColumns[4], OutreachesColumns[23]},
			},
			{
				Name:    "outreach_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{OutreachesColumns[7], OutreachesColumns[25]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "queue", Type: field.TypeString, Default: "default"},
		{Name: "handler", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6], TasksColumns[7]},
			},
			{
				Name:    "task_queue_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[6]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6], TasksColumns[14]},
			},
			{
				Name:    "task_name",
				Unique:  true,
				Columns: []*schema.Column{TasksColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'in_progress')",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentStatesTable,
		ApprovalsTable,
		AuditLogsTable,
		CustomerScoresTable,
		DecisionsTable,
		EventsTable,
		GapsTable,
		OutreachesTable,
		TasksTable,
	}
)

func init() {
}
