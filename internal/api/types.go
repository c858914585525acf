package api

import (
	"github.com/abhisek/opsdojo/ent"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// StartRunRequest is the request body for POST /v1/runs.
type StartRunRequest struct {
	Domain string `json:"domain" binding:"required"`
	Level  int    `json:"level" binding:"required"`
}

// StartAutoRunRequest is the request body for POST /v1/runs/auto.
type StartAutoRunRequest struct {
	StartLevel int `json:"startLevel" binding:"required"`
	EndLevel   int `json:"endLevel" binding:"required"`
}

// StartRetrySetRequest is the request body for POST /v1/runs/retry-set.
// Either an explicit question id list or a source run whose failed
// questions become the set.
type StartRetrySetRequest struct {
	QuestionIDs []string `json:"questionIds"`
	FromRun     string   `json:"fromRun"`
}

// SubmitAnswerRequest is the request body for POST /v1/runs/:id/answers.
type SubmitAnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Answer     string `json:"answer"`
}

// RunResponse is the public view of a run.
type RunResponse struct {
	ID                 string `json:"id"`
	Mode               string `json:"mode"`
	State              string `json:"state"`
	Cursor             int    `json:"cursor"`
	QuestionsCompleted int    `json:"questionsCompleted"`
	QuestionsFailed    int    `json:"questionsFailed"`
	Domain             string `json:"domain,omitempty"`
	Level              int    `json:"level,omitempty"`
	CurrentLevel       int    `json:"currentLevel,omitempty"`
	StartLevel         int    `json:"startLevel,omitempty"`
	EndLevel           int    `json:"endLevel,omitempty"`
}

func runResponse(run *ent.Run) RunResponse {
	meta := run.Metadata
	return RunResponse{
		ID:                 run.ID,
		Mode:               string(run.Mode),
		State:              string(run.State),
		Cursor:             run.Cursor,
		QuestionsCompleted: run.QuestionsCompleted,
		QuestionsFailed:    run.QuestionsFailed,
		Domain:             meta.Domain,
		Level:              meta.LevelNumber,
		CurrentLevel:       meta.CurrentLevel,
		StartLevel:         meta.StartLevel,
		EndLevel:           meta.EndLevel,
	}
}

// QuestionResponse is the public view of a question. Grading fields
// (expected category and value) are deliberately absent: the answer key
// never crosses the wire.
type QuestionResponse struct {
	ID     string `json:"id"`
	Domain string `json:"domain"`
	Level  int    `json:"level"`
	Index  int    `json:"index"`
	Prompt string `json:"prompt"`
}

func questionResponse(q *ent.Question, idx int) QuestionResponse {
	return QuestionResponse{
		ID:     q.ID,
		Domain: q.Domain,
		Level:  q.Level,
		Index:  idx,
		Prompt: q.Prompt,
	}
}

// MessageResponse is one transcript entry.
type MessageResponse struct {
	Sequence  int64  `json:"sequence"`
	Role      string `json:"role"`
	Body      string `json:"body"`
	Status    string `json:"status,omitempty"`
	Timestamp string `json:"timestamp"`
}
