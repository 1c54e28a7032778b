package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle transitions: start, end,
// and stage completion.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID identifying the play session"),
		field.String("action").
			Comment("Lifecycle action: started, stage_completed, ended"),
		field.String("stage_id").
			Default("").
			Comment("Stage involved, when the action concerns one"),
		field.Int("executions").
			Default(0).
			Comment("Cell executions so far in the session"),
		field.Int("stages_completed").
			Default(0).
			Comment("Stages completed so far in the session"),
		field.Int64("duration_secs").
			Default(0).
			Comment("Session duration, set on the ended action"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
