// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/taskfleet/maestro/ent/creditreservation"
	"github.com/taskfleet/maestro/ent/run"
)

// CreditReservation is the model entity for the CreditReservation schema.
type CreditReservation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Credits reserved up front
	Amount int `json:"amount,omitempty"`
	// Running total; never exceeds amount
	Consumed int `json:"consumed,omitempty"`
	// Status holds the value of the "status" field.
	Status creditreservation.Status `json:"status,omitempty"`
	// Finalize/release reason code
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FinalizedAt holds the value of the "finalized_at" field.
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreditReservationQuery when eager-loading is set.
	Edges        CreditReservationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreditReservationEdges holds the relations/edges for other nodes in the graph.
type CreditReservationEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditReservationEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditReservation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creditreservation.FieldAmount, creditreservation.FieldConsumed:
			values[i] = new(sql.NullInt64)
		case creditreservation.FieldID, creditreservation.FieldRunID, creditreservation.FieldTenantID, creditreservation.FieldStatus, creditreservation.FieldReason:
			values[i] = new(sql.NullString)
		case creditreservation.FieldCreatedAt, creditreservation.FieldFinalizedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditReservation fields.
func (_m *CreditReservation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creditreservation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case creditreservation.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case creditreservation.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case creditreservation.FieldAmount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = int(value.Int64)
			}
		case creditreservation.FieldConsumed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consumed", values[i])
			} else if value.Valid {
				_m.Consumed = int(value.Int64)
			}
		case creditreservation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = creditreservation.Status(value.String)
			}
		case creditreservation.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case creditreservation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case creditreservation.FieldFinalizedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finalized_at", values[i])
			} else if value.Valid {
				_m.FinalizedAt = new(time.Time)
				*_m.FinalizedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditReservation.
// This includes values selected through modifiers, order, etc.
func (_m *CreditReservation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the CreditReservation entity.
func (_m *CreditReservation) QueryRun() *RunQuery {
	return NewCreditReservationClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this CreditReservation.
// Note that you need to call CreditReservation.Unwrap() before calling this method if this CreditReservation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CreditReservation) Update() *CreditReservationUpdateOne {
	return NewCreditReservationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CreditReservation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CreditReservation) Unwrap() *CreditReservation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditReservation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CreditReservation) String() string {
	var builder strings.Builder
	builder.WriteString("CreditReservation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("consumed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Consumed))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinalizedAt; v != nil {
		builder.WriteString("finalized_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CreditReservations is a parsable slice of CreditReservation.
type CreditReservations []*CreditReservation
