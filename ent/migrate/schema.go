// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "content_hash", Type: field.TypeString, Unique: true},
		{Name: "artifact_type", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString, Nullable: true},
		{Name: "size", Type: field.TypeInt64},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "created_by_run", Type: field.TypeString, Nullable: true},
		{Name: "created_by_step", Type: field.TypeString, Nullable: true},
		{Name: "created_by_tool", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "parent_artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_created_by_run",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[7]},
			},
			{
				Name:    "artifact_artifact_type",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[2]},
			},
		},
	}
	// BillingEntriesColumns holds the columns for the "billing_entries" table.
	BillingEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "reservation_id", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "entry_type", Type: field.TypeEnum, Enums: []string{"debit", "refund"}},
		{Name: "amount", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BillingEntriesTable holds the schema information for the "billing_entries" table.
	BillingEntriesTable = &schema.Table{
		Name:       "billing_entries",
		Columns:    BillingEntriesColumns,
		PrimaryKey: []*schema.Column{BillingEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "billingentry_run_id",
				Unique:  false,
				Columns: []*schema.Column{BillingEntriesColumns[1]},
			},
			{
				Name:    "billingentry_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BillingEntriesColumns[3], BillingEntriesColumns[7]},
			},
		},
	}
	// CreditReservationsColumns holds the columns for the "credit_reservations" table.
	CreditReservationsColumns = []*schema.Column{
		{Name: "reservation_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt},
		{Name: "consumed", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "consumed", "released"}, Default: "active"},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finalized_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// CreditReservationsTable holds the schema information for the "credit_reservations" table.
	CreditReservationsTable = &schema.Table{
		Name:       "credit_reservations",
		Columns:    CreditReservationsColumns,
		PrimaryKey: []*schema.Column{CreditReservationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credit_reservations_runs_reservations",
				Columns:    []*schema.Column{CreditReservationsColumns[8]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "creditreservation_run_id",
				Unique:  true,
				Columns: []*schema.Column{CreditReservationsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'active'",
				},
			},
			{
				Name:    "creditreservation_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CreditReservationsColumns[1], CreditReservationsColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_runs_events",
				Columns:    []*schema.Column{EventsColumns[5]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_run_id_seq",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[5], EventsColumns[1]},
			},
		},
	}
	// ModelHealthColumns holds the columns for the "model_health" table.
	ModelHealthColumns = []*schema.Column{
		{Name: "model_name", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"healthy", "degraded", "unhealthy"}, Default: "healthy"},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
		{Name: "consecutive_failures", Type: field.TypeInt, Default: 0},
		{Name: "last_success_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_failure_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ModelHealthTable holds the schema information for the "model_health" table.
	ModelHealthTable = &schema.Table{
		Name:       "model_health",
		Columns:    ModelHealthColumns,
		PrimaryKey: []*schema.Column{ModelHealthColumns[0]},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "planning", "executing", "paused", "waiting_user", "completed", "failed", "cancelled", "timeout"}, Default: "pending"},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "prompt_hash", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "current_phase_id", Type: field.TypeInt, Nullable: true},
		{Name: "current_step_id", Type: field.TypeString, Nullable: true},
		{Name: "step_count", Type: field.TypeInt, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "credits_reserved", Type: field.TypeInt, Default: 0},
		{Name: "credits_consumed", Type: field.TypeInt, Default: 0},
		{Name: "error", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "timeout_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4]},
			},
			{
				Name:    "run_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2]},
			},
			{
				Name:    "run_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4], RunsColumns[14], RunsColumns[23]},
			},
			{
				Name:    "run_status_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4], RunsColumns[20]},
			},
			{
				Name:    "run_status_timeout_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4], RunsColumns[22]},
			},
			{
				Name:    "run_tenant_id_external_id",
				Unique:  true,
				Columns: []*schema.Column{RunsColumns[2], RunsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "external_id IS NOT NULL",
				},
			},
		},
	}
	// StepsColumns holds the columns for the "steps" table.
	StepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "phase_id", Type: field.TypeInt},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "tool_input", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_output", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped", "cancelled"}, Default: "pending"},
		{Name: "idempotency_key", Type: field.TypeString},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "credits_consumed", Type: field.TypeInt, Default: 0},
		{Name: "tokens_input", Type: field.TypeInt, Default: 0},
		{Name: "tokens_output", Type: field.TypeInt, Default: 0},
		{Name: "error", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// StepsTable holds the schema information for the "steps" table.
	StepsTable = &schema.Table{
		Name:       "steps",
		Columns:    StepsColumns,
		PrimaryKey: []*schema.Column{StepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "steps_runs_steps",
				Columns:    []*schema.Column{StepsColumns[17]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "step_run_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{StepsColumns[17], StepsColumns[2]},
			},
			{
				Name:    "step_run_id_idempotency_key",
				Unique:  true,
				Columns: []*schema.Column{StepsColumns[17], StepsColumns[7]},
			},
			{
				Name:    "step_status",
				Unique:  false,
				Columns: []*schema.Column{StepsColumns[6]},
			},
		},
	}
	// TokenUsagesColumns holds the columns for the "token_usages" table.
	TokenUsagesColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// TokenUsagesTable holds the schema information for the "token_usages" table.
	TokenUsagesTable = &schema.Table{
		Name:       "token_usages",
		Columns:    TokenUsagesColumns,
		PrimaryKey: []*schema.Column{TokenUsagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "token_usages_runs_token_usages",
				Columns:    []*schema.Column{TokenUsagesColumns[9]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tokenusage_run_id",
				Unique:  false,
				Columns: []*schema.Column{TokenUsagesColumns[9]},
			},
			{
				Name:    "tokenusage_model_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenUsagesColumns[2], TokenUsagesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactsTable,
		BillingEntriesTable,
		CreditReservationsTable,
		EventsTable,
		ModelHealthTable,
		RunsTable,
		StepsTable,
		TokenUsagesTable,
	}
)

func init() {
	CreditReservationsTable.ForeignKeys[0].RefTable = RunsTable
	EventsTable.ForeignKeys[0].RefTable = RunsTable
	ModelHealthTable.Annotation = &entsql.Annotation{
		Table: "model_health",
	}
	StepsTable.ForeignKeys[0].RefTable = RunsTable
	TokenUsagesTable.ForeignKeys[0].RefTable = RunsTable
}
