package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Verification struct{ ent.Schema }

func (Verification) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verifications"},
	}
}

func (Verification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("job_id", uuid.UUID{}),
		field.String("responsible_engineer"),
		field.String("report_date"),
		field.Float("progress_percent"),
		field.Bool("valid"),
		field.JSON("field_origins", json.RawMessage{}).Optional(),
		field.String("release_tx_hash").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Verification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ExtractJob.Type).
			Ref("verifications").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (Verification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("valid", "created_at"),
	}
}
