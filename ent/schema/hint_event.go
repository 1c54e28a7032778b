package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HintEvent records every hint shown to the player.
type HintEvent struct {
	ent.Schema
}

func (HintEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HintEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Session the hint belongs to"),
		field.String("stage_id").
			Comment("Stage the player asked about"),
		field.Int("cell_index").
			Comment("Cell the player was working on"),
		field.Text("player_code").
			Default("").
			Comment("Code the player had written when asking"),
		field.Text("hint_text").
			Comment("Hint text shown to the player"),
	}
}

func (HintEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("stage_id"),
	}
}
