// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/byb-ai/progress-verifier/gen/ent/extractjob"
	"github.com/byb-ai/progress-verifier/gen/ent/verification"
	"github.com/google/uuid"
)

// Verification is the model entity for the Verification schema.
type Verification struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// ResponsibleEngineer holds the value of the "responsible_engineer" field.
	ResponsibleEngineer string `json:"responsible_engineer,omitempty"`
	// ReportDate holds the value of the "report_date" field.
	ReportDate string `json:"report_date,omitempty"`
	// ProgressPercent holds the value of the "progress_percent" field.
	ProgressPercent float64 `json:"progress_percent,omitempty"`
	// Valid holds the value of the "valid" field.
	Valid bool `json:"valid,omitempty"`
	// FieldOrigins holds the value of the "field_origins" field.
	FieldOrigins json.RawMessage `json:"field_origins,omitempty"`
	// ReleaseTxHash holds the value of the "release_tx_hash" field.
	ReleaseTxHash *string `json:"release_tx_hash,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationQuery when eager-loading is set.
	Edges        VerificationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationEdges holds the relations/edges for other nodes in the graph.
type VerificationEdges struct {
	// Job holds the value of the job edge.
	Job *ExtractJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationEdges) JobOrErr() (*ExtractJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Verification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verification.FieldFieldOrigins:
			values[i] = new([]byte)
		case verification.FieldValid:
			values[i] = new(sql.NullBool)
		case verification.FieldProgressPercent:
			values[i] = new(sql.NullFloat64)
		case verification.FieldResponsibleEngineer, verification.FieldReportDate, verification.FieldReleaseTxHash:
			values[i] = new(sql.NullString)
		case verification.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case verification.FieldID, verification.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Verification fields.
func (_m *Verification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verification.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verification.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case verification.FieldResponsibleEngineer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field responsible_engineer", values[i])
			} else if value.Valid {
				_m.ResponsibleEngineer = value.String
			}
		case verification.FieldReportDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_date", values[i])
			} else if value.Valid {
				_m.ReportDate = value.String
			}
		case verification.FieldProgressPercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percent", values[i])
			} else if value.Valid {
				_m.ProgressPercent = value.Float64
			}
		case verification.FieldValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field valid", values[i])
			} else if value.Valid {
				_m.Valid = value.Bool
			}
		case verification.FieldFieldOrigins:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field field_origins", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FieldOrigins); err != nil {
					return fmt.Errorf("unmarshal field field_origins: %w", err)
				}
			}
		case verification.FieldReleaseTxHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field release_tx_hash", values[i])
			} else if value.Valid {
				_m.ReleaseTxHash = new(string)
				*_m.ReleaseTxHash = value.String
			}
		case verification.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Verification.
// This includes values selected through modifiers, order, etc.
func (_m *Verification) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the Verification entity.
func (_m *Verification) QueryJob() *ExtractJobQuery {
	return NewVerificationClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this Verification.
// Note that you need to call Verification.Unwrap() before calling this method if this Verification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Verification) Update() *VerificationUpdateOne {
	return NewVerificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Verification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Verification) Unwrap() *Verification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Verification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Verification) String() string {
	var builder strings.Builder
	builder.WriteString("Verification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("responsible_engineer=")
	builder.WriteString(_m.ResponsibleEngineer)
	builder.WriteString(", ")
	builder.WriteString("report_date=")
	builder.WriteString(_m.ReportDate)
	builder.WriteString(", ")
	builder.WriteString("progress_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercent))
	builder.WriteString(", ")
	builder.WriteString("valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Valid))
	builder.WriteString(", ")
	builder.WriteString("field_origins=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldOrigins))
	builder.WriteString(", ")
	if v := _m.ReleaseTxHash; v != nil {
		builder.WriteString("release_tx_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Verifications is a parsable slice of Verification.
type Verifications []*Verification
