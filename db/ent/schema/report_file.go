package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ReportFile struct {
	ent.Schema
}

func (ReportFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "report_files"},
	}
}

func (ReportFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// escrow coordinates for the milestone this report substantiates
		field.Int64("building_id").NonNegative(),
		field.Int64("milestone_id").NonNegative(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (ReportFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (ReportFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("building_id", "milestone_id"),
		index.Fields("content_hash"),
		index.Fields("uploaded_at"),
	}
}
