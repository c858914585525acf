// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/opsdojo/ent/attempt"
	"github.com/abhisek/opsdojo/ent/llmevent"
	"github.com/abhisek/opsdojo/ent/message"
	"github.com/abhisek/opsdojo/ent/question"
	"github.com/abhisek/opsdojo/ent/run"
	"github.com/abhisek/opsdojo/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescRunID is the schema descriptor for run_id field.
	attemptDescRunID := attemptFields[0].Descriptor()
	// attempt.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	attempt.RunIDValidator = attemptDescRunID.Validators[0].(func(string) error)
	// attemptDescQuestionID is the schema descriptor for question_id field.
	attemptDescQuestionID := attemptFields[1].Descriptor()
	// attempt.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attempt.QuestionIDValidator = attemptDescQuestionID.Validators[0].(func(string) error)
	// attemptDescAttemptNumber is the schema descriptor for attempt_number field.
	attemptDescAttemptNumber := attemptFields[2].Descriptor()
	// attempt.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	attempt.AttemptNumberValidator = attemptDescAttemptNumber.Validators[0].(func(int) error)
	// attemptDescTimestamp is the schema descriptor for timestamp field.
	attemptDescTimestamp := attemptFields[7].Descriptor()
	// attempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	attempt.DefaultTimestamp = attemptDescTimestamp.Default.(func() time.Time)
	llmeventFields := schema.LLMEvent{}.Fields()
	_ = llmeventFields
	// llmeventDescInputTokens is the schema descriptor for input_tokens field.
	llmeventDescInputTokens := llmeventFields[3].Descriptor()
	// llmevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmevent.DefaultInputTokens = llmeventDescInputTokens.Default.(int)
	// llmeventDescOutputTokens is the schema descriptor for output_tokens field.
	llmeventDescOutputTokens := llmeventFields[4].Descriptor()
	// llmevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmevent.DefaultOutputTokens = llmeventDescOutputTokens.Default.(int)
	// llmeventDescLatencyMs is the schema descriptor for latency_ms field.
	llmeventDescLatencyMs := llmeventFields[5].Descriptor()
	// llmevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmevent.DefaultLatencyMs = llmeventDescLatencyMs.Default.(int64)
	// llmeventDescErrorMessage is the schema descriptor for error_message field.
	llmeventDescErrorMessage := llmeventFields[7].Descriptor()
	// llmevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmevent.DefaultErrorMessage = llmeventDescErrorMessage.Default.(string)
	// llmeventDescTimestamp is the schema descriptor for timestamp field.
	llmeventDescTimestamp := llmeventFields[8].Descriptor()
	// llmevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmevent.DefaultTimestamp = llmeventDescTimestamp.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescRunID is the schema descriptor for run_id field.
	messageDescRunID := messageFields[0].Descriptor()
	// message.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	message.RunIDValidator = messageDescRunID.Validators[0].(func(string) error)
	// messageDescStatus is the schema descriptor for status field.
	messageDescStatus := messageFields[4].Descriptor()
	// message.DefaultStatus holds the default value on creation for the status field.
	message.DefaultStatus = messageDescStatus.Default.(string)
	// messageDescTimestamp is the schema descriptor for timestamp field.
	messageDescTimestamp := messageFields[5].Descriptor()
	// message.DefaultTimestamp holds the default value on creation for the timestamp field.
	message.DefaultTimestamp = messageDescTimestamp.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescDomain is the schema descriptor for domain field.
	questionDescDomain := questionFields[1].Descriptor()
	// question.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	question.DomainValidator = questionDescDomain.Validators[0].(func(string) error)
	// questionDescLevel is the schema descriptor for level field.
	questionDescLevel := questionFields[2].Descriptor()
	// question.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	question.LevelValidator = questionDescLevel.Validators[0].(func(int) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[4].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescCursor is the schema descriptor for cursor field.
	runDescCursor := runFields[3].Descriptor()
	// run.DefaultCursor holds the default value on creation for the cursor field.
	run.DefaultCursor = runDescCursor.Default.(int)
	// runDescQuestionsCompleted is the schema descriptor for questions_completed field.
	runDescQuestionsCompleted := runFields[4].Descriptor()
	// run.DefaultQuestionsCompleted holds the default value on creation for the questions_completed field.
	run.DefaultQuestionsCompleted = runDescQuestionsCompleted.Default.(int)
	// runDescQuestionsFailed is the schema descriptor for questions_failed field.
	runDescQuestionsFailed := runFields[5].Descriptor()
	// run.DefaultQuestionsFailed holds the default value on creation for the questions_failed field.
	run.DefaultQuestionsFailed = runDescQuestionsFailed.Default.(int)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[7].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	// runDescUpdatedAt is the schema descriptor for updated_at field.
	runDescUpdatedAt := runFields[8].Descriptor()
	// run.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	run.DefaultUpdatedAt = runDescUpdatedAt.Default.(func() time.Time)
	// run.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	run.UpdateDefaultUpdatedAt = runDescUpdatedAt.UpdateDefault.(func() time.Time)
	// runDescID is the schema descriptor for id field.
	runDescID := runFields[0].Descriptor()
	// run.IDValidator is a validator for the "id" field. It is called by the builders before save.
	run.IDValidator = runDescID.Validators[0].(func(string) error)
}
