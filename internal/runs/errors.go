package runs

import "errors"

// State and config errors surfaced to callers. Validation outcomes are
// never errors; they come back as data on SubmitResult.
var (
	ErrRunNotFound      = errors.New("run not found")
	ErrRunNotActive     = errors.New("run is not active")
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoQuestions      = errors.New("no questions seeded for level")
)
