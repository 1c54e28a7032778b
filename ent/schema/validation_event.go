package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationEvent records the outcome of checking a cell's output
// against the stage's success criteria.
type ValidationEvent struct {
	ent.Schema
}

func (ValidationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ValidationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Session the validation belongs to"),
		field.String("stage_id").
			Comment("Stage whose criteria were checked"),
		field.Int("cell_index").
			Comment("Cell whose run triggered the check"),
		field.Bool("passed").
			Comment("Whether all criteria were satisfied"),
		field.String("strategy").
			Default("").
			Comment("Name of the strategy that decided the pass"),
		field.String("category").
			Default("").
			Comment("Failing criterion category: codePatterns, requiredTexts, requiredNumbers, outputPatterns"),
		field.String("detail").
			Default("").
			Comment("Human-readable description of the first failure"),
		field.Bool("config_problem").
			Default(false).
			Comment("True when the failure was caused by malformed criteria, not player code"),
	}
}

func (ValidationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("stage_id"),
		index.Fields("passed"),
	}
}
