// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/taskfleet/maestro/ent/artifact"
	"github.com/taskfleet/maestro/ent/billingentry"
	"github.com/taskfleet/maestro/ent/creditreservation"
	"github.com/taskfleet/maestro/ent/event"
	"github.com/taskfleet/maestro/ent/modelhealth"
	"github.com/taskfleet/maestro/ent/run"
	"github.com/taskfleet/maestro/ent/schema"
	"github.com/taskfleet/maestro/ent/step"
	"github.com/taskfleet/maestro/ent/tokenusage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[12].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	billingentryFields := schema.BillingEntry{}.Fields()
	_ = billingentryFields
	// billingentryDescCreatedAt is the schema descriptor for created_at field.
	billingentryDescCreatedAt := billingentryFields[7].Descriptor()
	// billingentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	billingentry.DefaultCreatedAt = billingentryDescCreatedAt.Default.(func() time.Time)
	creditreservationFields := schema.CreditReservation{}.Fields()
	_ = creditreservationFields
	// creditreservationDescConsumed is the schema descriptor for consumed field.
	creditreservationDescConsumed := creditreservationFields[4].Descriptor()
	// creditreservation.DefaultConsumed holds the default value on creation for the consumed field.
	creditreservation.DefaultConsumed = creditreservationDescConsumed.Default.(int)
	// creditreservationDescCreatedAt is the schema descriptor for created_at field.
	creditreservationDescCreatedAt := creditreservationFields[7].Descriptor()
	// creditreservation.DefaultCreatedAt holds the default value on creation for the created_at field.
	creditreservation.DefaultCreatedAt = creditreservationDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[5].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescID is the schema descriptor for id field.
	eventDescID := eventFields[0].Descriptor()
	// event.IDValidator is a validator for the "id" field. It is called by the builders before save.
	event.IDValidator = eventDescID.Validators[0].(func(int64) error)
	modelhealthFields := schema.ModelHealth{}.Fields()
	_ = modelhealthFields
	// modelhealthDescLatencyMs is the schema descriptor for latency_ms field.
	modelhealthDescLatencyMs := modelhealthFields[3].Descriptor()
	// modelhealth.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	modelhealth.DefaultLatencyMs = modelhealthDescLatencyMs.Default.(int)
	// modelhealthDescFailureCount is the schema descriptor for failure_count field.
	modelhealthDescFailureCount := modelhealthFields[4].Descriptor()
	// modelhealth.DefaultFailureCount holds the default value on creation for the failure_count field.
	modelhealth.DefaultFailureCount = modelhealthDescFailureCount.Default.(int)
	// modelhealthDescConsecutiveFailures is the schema descriptor for consecutive_failures field.
	modelhealthDescConsecutiveFailures := modelhealthFields[5].Descriptor()
	// modelhealth.DefaultConsecutiveFailures holds the default value on creation for the consecutive_failures field.
	modelhealth.DefaultConsecutiveFailures = modelhealthDescConsecutiveFailures.Default.(int)
	// modelhealthDescUpdatedAt is the schema descriptor for updated_at field.
	modelhealthDescUpdatedAt := modelhealthFields[8].Descriptor()
	// modelhealth.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modelhealth.DefaultUpdatedAt = modelhealthDescUpdatedAt.Default.(func() time.Time)
	// modelhealth.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modelhealth.UpdateDefaultUpdatedAt = modelhealthDescUpdatedAt.UpdateDefault.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescStepCount is the schema descriptor for step_count field.
	runDescStepCount := runFields[11].Descriptor()
	// run.DefaultStepCount holds the default value on creation for the step_count field.
	run.DefaultStepCount = runDescStepCount.Default.(int)
	// runDescRetryCount is the schema descriptor for retry_count field.
	runDescRetryCount := runFields[12].Descriptor()
	// run.DefaultRetryCount holds the default value on creation for the retry_count field.
	run.DefaultRetryCount = runDescRetryCount.Default.(int)
	// runDescMaxRetries is the schema descriptor for max_retries field.
	runDescMaxRetries := runFields[13].Descriptor()
	// run.DefaultMaxRetries holds the default value on creation for the max_retries field.
	run.DefaultMaxRetries = runDescMaxRetries.Default.(int)
	// runDescPriority is the schema descriptor for priority field.
	runDescPriority := runFields[14].Descriptor()
	// run.DefaultPriority holds the default value on creation for the priority field.
	run.DefaultPriority = runDescPriority.Default.(int)
	// runDescCreditsReserved is the schema descriptor for credits_reserved field.
	runDescCreditsReserved := runFields[15].Descriptor()
	// run.DefaultCreditsReserved holds the default value on creation for the credits_reserved field.
	run.DefaultCreditsReserved = runDescCreditsReserved.Default.(int)
	// runDescCreditsConsumed is the schema descriptor for credits_consumed field.
	runDescCreditsConsumed := runFields[16].Descriptor()
	// run.DefaultCreditsConsumed holds the default value on creation for the credits_consumed field.
	run.DefaultCreditsConsumed = runDescCreditsConsumed.Default.(int)
	// runDescVersion is the schema descriptor for version field.
	runDescVersion := runFields[18].Descriptor()
	// run.DefaultVersion holds the default value on creation for the version field.
	run.DefaultVersion = runDescVersion.Default.(int64)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[23].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	stepFields := schema.Step{}.Fields()
	_ = stepFields
	// stepDescCreditsConsumed is the schema descriptor for credits_consumed field.
	stepDescCreditsConsumed := stepFields[10].Descriptor()
	// step.DefaultCreditsConsumed holds the default value on creation for the credits_consumed field.
	step.DefaultCreditsConsumed = stepDescCreditsConsumed.Default.(int)
	// stepDescTokensInput is the schema descriptor for tokens_input field.
	stepDescTokensInput := stepFields[11].Descriptor()
	// step.DefaultTokensInput holds the default value on creation for the tokens_input field.
	step.DefaultTokensInput = stepDescTokensInput.Default.(int)
	// stepDescTokensOutput is the schema descriptor for tokens_output field.
	stepDescTokensOutput := stepFields[12].Descriptor()
	// step.DefaultTokensOutput holds the default value on creation for the tokens_output field.
	step.DefaultTokensOutput = stepDescTokensOutput.Default.(int)
	// stepDescRetryCount is the schema descriptor for retry_count field.
	stepDescRetryCount := stepFields[14].Descriptor()
	// step.DefaultRetryCount holds the default value on creation for the retry_count field.
	step.DefaultRetryCount = stepDescRetryCount.Default.(int)
	// stepDescCreatedAt is the schema descriptor for created_at field.
	stepDescCreatedAt := stepFields[15].Descriptor()
	// step.DefaultCreatedAt holds the default value on creation for the created_at field.
	step.DefaultCreatedAt = stepDescCreatedAt.Default.(func() time.Time)
	tokenusageFields := schema.TokenUsage{}.Fields()
	_ = tokenusageFields
	// tokenusageDescPromptTokens is the schema descriptor for prompt_tokens field.
	tokenusageDescPromptTokens := tokenusageFields[5].Descriptor()
	// tokenusage.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	tokenusage.DefaultPromptTokens = tokenusageDescPromptTokens.Default.(int)
	// tokenusageDescCompletionTokens is the schema descriptor for completion_tokens field.
	tokenusageDescCompletionTokens := tokenusageFields[6].Descriptor()
	// tokenusage.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	tokenusage.DefaultCompletionTokens = tokenusageDescCompletionTokens.Default.(int)
	// tokenusageDescTotalTokens is the schema descriptor for total_tokens field.
	tokenusageDescTotalTokens := tokenusageFields[7].Descriptor()
	// tokenusage.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	tokenusage.DefaultTotalTokens = tokenusageDescTotalTokens.Default.(int)
	// tokenusageDescLatencyMs is the schema descriptor for latency_ms field.
	tokenusageDescLatencyMs := tokenusageFields[8].Descriptor()
	// tokenusage.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	tokenusage.DefaultLatencyMs = tokenusageDescLatencyMs.Default.(int)
	// tokenusageDescCreatedAt is the schema descriptor for created_at field.
	tokenusageDescCreatedAt := tokenusageFields[9].Descriptor()
	// tokenusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenusage.DefaultCreatedAt = tokenusageDescCreatedAt.Default.(func() time.Time)
}
