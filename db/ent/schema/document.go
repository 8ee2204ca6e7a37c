package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/aolabi/docpipe/constants"
	"github.com/aolabi/docpipe/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// Owner lives in an external user service; no FK edge here.
		field.UUID("owner_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("original_path").NotEmpty().Immutable(),
		field.String("processed_path").Optional().Nillable(),
		field.String("processed_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").
			Default(string(constants.StatusUploaded)).
			Validate(utils.EnumValidator(constants.Statuses()...)),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		// Serves the reconciliation sweep's stuck-document scan.
		index.Fields("status", "updated_at"),
	}
}
