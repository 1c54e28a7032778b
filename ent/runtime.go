// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lucidbard/codequest/ent/executionevent"
	"github.com/lucidbard/codequest/ent/hintevent"
	"github.com/lucidbard/codequest/ent/llmrequestevent"
	"github.com/lucidbard/codequest/ent/schema"
	"github.com/lucidbard/codequest/ent/sessionevent"
	"github.com/lucidbard/codequest/ent/snapshot"
	"github.com/lucidbard/codequest/ent/validationevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	executioneventMixin := schema.ExecutionEvent{}.Mixin()
	executioneventMixinFields0 := executioneventMixin[0].Fields()
	_ = executioneventMixinFields0
	executioneventFields := schema.ExecutionEvent{}.Fields()
	_ = executioneventFields
	// executioneventDescTimestamp is the schema descriptor for timestamp field.
	executioneventDescTimestamp := executioneventMixinFields0[1].Descriptor()
	// executionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	executionevent.DefaultTimestamp = executioneventDescTimestamp.Default.(func() time.Time)
	// executioneventDescOutput is the schema descriptor for output field.
	executioneventDescOutput := executioneventFields[4].Descriptor()
	// executionevent.DefaultOutput holds the default value on creation for the output field.
	executionevent.DefaultOutput = executioneventDescOutput.Default.(string)
	// executioneventDescErrorMessage is the schema descriptor for error_message field.
	executioneventDescErrorMessage := executioneventFields[6].Descriptor()
	// executionevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	executionevent.DefaultErrorMessage = executioneventDescErrorMessage.Default.(string)
	// executioneventDescDurationMs is the schema descriptor for duration_ms field.
	executioneventDescDurationMs := executioneventFields[7].Descriptor()
	// executionevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	executionevent.DefaultDurationMs = executioneventDescDurationMs.Default.(int64)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescPlayerCode is the schema descriptor for player_code field.
	hinteventDescPlayerCode := hinteventFields[3].Descriptor()
	// hintevent.DefaultPlayerCode holds the default value on creation for the player_code field.
	hintevent.DefaultPlayerCode = hinteventDescPlayerCode.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescStageID is the schema descriptor for stage_id field.
	sessioneventDescStageID := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultStageID holds the default value on creation for the stage_id field.
	sessionevent.DefaultStageID = sessioneventDescStageID.Default.(string)
	// sessioneventDescExecutions is the schema descriptor for executions field.
	sessioneventDescExecutions := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultExecutions holds the default value on creation for the executions field.
	sessionevent.DefaultExecutions = sessioneventDescExecutions.Default.(int)
	// sessioneventDescStagesCompleted is the schema descriptor for stages_completed field.
	sessioneventDescStagesCompleted := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultStagesCompleted holds the default value on creation for the stages_completed field.
	sessionevent.DefaultStagesCompleted = sessioneventDescStagesCompleted.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int64)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	validationeventMixin := schema.ValidationEvent{}.Mixin()
	validationeventMixinFields0 := validationeventMixin[0].Fields()
	_ = validationeventMixinFields0
	validationeventFields := schema.ValidationEvent{}.Fields()
	_ = validationeventFields
	// validationeventDescTimestamp is the schema descriptor for timestamp field.
	validationeventDescTimestamp := validationeventMixinFields0[1].Descriptor()
	// validationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	validationevent.DefaultTimestamp = validationeventDescTimestamp.Default.(func() time.Time)
	// validationeventDescStrategy is the schema descriptor for strategy field.
	validationeventDescStrategy := validationeventFields[4].Descriptor()
	// validationevent.DefaultStrategy holds the default value on creation for the strategy field.
	validationevent.DefaultStrategy = validationeventDescStrategy.Default.(string)
	// validationeventDescCategory is the schema descriptor for category field.
	validationeventDescCategory := validationeventFields[5].Descriptor()
	// validationevent.DefaultCategory holds the default value on creation for the category field.
	validationevent.DefaultCategory = validationeventDescCategory.Default.(string)
	// validationeventDescDetail is the schema descriptor for detail field.
	validationeventDescDetail := validationeventFields[6].Descriptor()
	// validationevent.DefaultDetail holds the default value on creation for the detail field.
	validationevent.DefaultDetail = validationeventDescDetail.Default.(string)
	// validationeventDescConfigProblem is the schema descriptor for config_problem field.
	validationeventDescConfigProblem := validationeventFields[7].Descriptor()
	// validationevent.DefaultConfigProblem holds the default value on creation for the config_problem field.
	validationevent.DefaultConfigProblem = validationeventDescConfigProblem.Default.(bool)
}
