package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionEvent records every cell execution: the code the player ran,
// what it printed, and whether it succeeded.
type ExecutionEvent struct {
	ent.Schema
}

func (ExecutionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExecutionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Session the execution belongs to"),
		field.String("stage_id").
			Comment("Stage whose cell was executed"),
		field.Int("cell_index").
			Comment("Zero-based cell index within the stage"),
		field.Text("source").
			Comment("Cell source as submitted, without accumulated prefix"),
		field.Text("output").
			Default("").
			Comment("Captured stdout / print output"),
		field.Bool("success").
			Comment("Whether the run completed without a runtime error"),
		field.String("error_message").
			Default("").
			Comment("Interpreter error text if the run failed"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock execution time"),
	}
}

func (ExecutionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("stage_id"),
		index.Fields("stage_id", "cell_index"),
	}
}
