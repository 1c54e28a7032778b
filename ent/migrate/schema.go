// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExecutionEventsColumns holds the columns for the "execution_events" table.
	ExecutionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "cell_index", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString, Size: 2147483647},
		{Name: "output", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// ExecutionEventsTable holds the schema information for the "execution_events" table.
	ExecutionEventsTable = &schema.Table{
		Name:       "execution_events",
		Columns:    ExecutionEventsColumns,
		PrimaryKey: []*schema.Column{ExecutionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExecutionEventsColumns[1]},
			},
			{
				Name:    "executionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExecutionEventsColumns[2]},
			},
			{
				Name:    "executionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionEventsColumns[3]},
			},
			{
				Name:    "executionevent_stage_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionEventsColumns[4]},
			},
			{
				Name:    "executionevent_stage_id_cell_index",
				Unique:  false,
				Columns: []*schema.Column{ExecutionEventsColumns[4], ExecutionEventsColumns[5]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "cell_index", Type: field.TypeInt},
		{Name: "player_code", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "hint_text", Type: field.TypeString, Size: 2147483647},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2]},
			},
			{
				Name:    "hintevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3]},
			},
			{
				Name:    "hintevent_stage_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString, Default: ""},
		{Name: "executions", Type: field.TypeInt, Default: 0},
		{Name: "stages_completed", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt64, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// ValidationEventsColumns holds the columns for the "validation_events" table.
	ValidationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "cell_index", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "strategy", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "detail", Type: field.TypeString, Default: ""},
		{Name: "config_problem", Type: field.TypeBool, Default: false},
	}
	// ValidationEventsTable holds the schema information for the "validation_events" table.
	ValidationEventsTable = &schema.Table{
		Name:       "validation_events",
		Columns:    ValidationEventsColumns,
		PrimaryKey: []*schema.Column{ValidationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "validationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[1]},
			},
			{
				Name:    "validationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[2]},
			},
			{
				Name:    "validationevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[3]},
			},
			{
				Name:    "validationevent_stage_id",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[4]},
			},
			{
				Name:    "validationevent_passed",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExecutionEventsTable,
		HintEventsTable,
		LlmRequestEventsTable,
		SessionEventsTable,
		SnapshotsTable,
		ValidationEventsTable,
	}
)

func init() {
}
