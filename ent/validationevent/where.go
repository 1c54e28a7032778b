// Code generated by ent, DO NOT EDIT.

package validationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lucidbard/codequest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSessionID, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldStageID, v))
}

// CellIndex applies equality check predicate on the "cell_index" field. It's identical to CellIndexEQ.
func CellIndex(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldCellIndex, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldPassed, v))
}

// Strategy applies equality check predicate on the "strategy" field. It's identical to StrategyEQ.
func Strategy(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldStrategy, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldCategory, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldDetail, v))
}

// ConfigProblem applies equality check predicate on the "config_problem" field. It's identical to ConfigProblemEQ.
func ConfigProblem(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldConfigProblem, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldStageID, v))
}

// CellIndexEQ applies the EQ predicate on the "cell_index" field.
func CellIndexEQ(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldCellIndex, v))
}

// CellIndexNEQ applies the NEQ predicate on the "cell_index" field.
func CellIndexNEQ(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldCellIndex, v))
}

// CellIndexIn applies the In predicate on the "cell_index" field.
func CellIndexIn(vs ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldCellIndex, vs...))
}

// CellIndexNotIn applies the NotIn predicate on the "cell_index" field.
func CellIndexNotIn(vs ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldCellIndex, vs...))
}

// CellIndexGT applies the GT predicate on the "cell_index" field.
func CellIndexGT(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldCellIndex, v))
}

// CellIndexGTE applies the GTE predicate on the "cell_index" field.
func CellIndexGTE(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldCellIndex, v))
}

// CellIndexLT applies the LT predicate on the "cell_index" field.
func CellIndexLT(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldCellIndex, v))
}

// CellIndexLTE applies the LTE predicate on the "cell_index" field.
func CellIndexLTE(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldCellIndex, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldPassed, v))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldStrategy, vs...))
}

// StrategyGT applies the GT predicate on the "strategy" field.
func StrategyGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldStrategy, v))
}

// StrategyGTE applies the GTE predicate on the "strategy" field.
func StrategyGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldStrategy, v))
}

// StrategyLT applies the LT predicate on the "strategy" field.
func StrategyLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldStrategy, v))
}

// StrategyLTE applies the LTE predicate on the "strategy" field.
func StrategyLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldStrategy, v))
}

// StrategyContains applies the Contains predicate on the "strategy" field.
func StrategyContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldStrategy, v))
}

// StrategyHasPrefix applies the HasPrefix predicate on the "strategy" field.
func StrategyHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldStrategy, v))
}

// StrategyHasSuffix applies the HasSuffix predicate on the "strategy" field.
func StrategyHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldStrategy, v))
}

// StrategyEqualFold applies the EqualFold predicate on the "strategy" field.
func StrategyEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldStrategy, v))
}

// StrategyContainsFold applies the ContainsFold predicate on the "strategy" field.
func StrategyContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldStrategy, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldCategory, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldDetail, v))
}

// ConfigProblemEQ applies the EQ predicate on the "config_problem" field.
func ConfigProblemEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldConfigProblem, v))
}

// ConfigProblemNEQ applies the NEQ predicate on the "config_problem" field.
func ConfigProblemNEQ(v bool) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldConfigProblem, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.NotPredicates(p))
}
