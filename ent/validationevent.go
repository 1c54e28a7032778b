// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lucidbard/codequest/ent/validationevent"
)

// ValidationEvent is the model entity for the ValidationEvent schema.
type ValidationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared by all event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Session the validation belongs to
	SessionID string `json:"session_id,omitempty"`
	// Stage whose criteria were checked
	StageID string `json:"stage_id,omitempty"`
	// Cell whose run triggered the check
	CellIndex int `json:"cell_index,omitempty"`
	// Whether all criteria were satisfied
	Passed bool `json:"passed,omitempty"`
	// Name of the strategy that decided the pass
	Strategy string `json:"strategy,omitempty"`
	// Failing criterion category: codePatterns, requiredTexts, requiredNumbers, outputPatterns
	Category string `json:"category,omitempty"`
	// Human-readable description of the first failure
	Detail string `json:"detail,omitempty"`
	// True when the failure was caused by malformed criteria, not player code
	ConfigProblem bool `json:"config_problem,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationevent.FieldPassed, validationevent.FieldConfigProblem:
			values[i] = new(sql.NullBool)
		case validationevent.FieldID, validationevent.FieldSequence, validationevent.FieldCellIndex:
			values[i] = new(sql.NullInt64)
		case validationevent.FieldSessionID, validationevent.FieldStageID, validationevent.FieldStrategy, validationevent.FieldCategory, validationevent.FieldDetail:
			values[i] = new(sql.NullString)
		case validationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationEvent fields.
func (_m *ValidationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case validationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case validationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case validationevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case validationevent.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = value.String
			}
		case validationevent.FieldCellIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cell_index", values[i])
			} else if value.Valid {
				_m.CellIndex = int(value.Int64)
			}
		case validationevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case validationevent.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = value.String
			}
		case validationevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case validationevent.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case validationevent.FieldConfigProblem:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field config_problem", values[i])
			} else if value.Valid {
				_m.ConfigProblem = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ValidationEvent.
// Note that you need to call ValidationEvent.Unwrap() before calling this method if this ValidationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationEvent) Update() *ValidationEventUpdateOne {
	return NewValidationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationEvent) Unwrap() *ValidationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(_m.StageID)
	builder.WriteString(", ")
	builder.WriteString("cell_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CellIndex))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(_m.Strategy)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("config_problem=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfigProblem))
	builder.WriteByte(')')
	return builder.String()
}

// ValidationEvents is a parsable slice of ValidationEvent.
type ValidationEvents []*ValidationEvent
