// Code generated by ent, DO NOT EDIT.

package validationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the validationevent type in the database.
	Label = "validation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldCellIndex holds the string denoting the cell_index field in the database.
	FieldCellIndex = "cell_index"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldConfigProblem holds the string denoting the config_problem field in the database.
	FieldConfigProblem = "config_problem"
	// Table holds the table name of the validationevent in the database.
	Table = "validation_events"
)

// Columns holds all SQL columns for validationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldStageID,
	FieldCellIndex,
	FieldPassed,
	FieldStrategy,
	FieldCategory,
	FieldDetail,
	FieldConfigProblem,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultStrategy holds the default value on creation for the "strategy" field.
	DefaultStrategy string
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultDetail holds the default value on creation for the "detail" field.
	DefaultDetail string
	// DefaultConfigProblem holds the default value on creation for the "config_problem" field.
	DefaultConfigProblem bool
)

// OrderOption defines the ordering options for the ValidationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// ByCellIndex orders the results by the cell_index field.
func ByCellIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCellIndex, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByConfigProblem orders the results by the config_problem field.
func ByConfigProblem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfigProblem, opts...).ToFunc()
}
