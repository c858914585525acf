// Package agent is the LLM student: it turns curriculum prompts into
// candidate answers through the configured provider. It sits strictly on
// the answering side; grading never touches a provider.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/opsdojo/ent"
	"github.com/abhisek/opsdojo/internal/llm"
)

const systemPrompt = `You are an operations agent in training. You will be asked to report
system metrics. Answer with exactly one short sentence in the form
"<metric> is <value>". Report only the metric asked about. Do not hedge,
do not add commentary, do not report other metrics.`

// answerSchema constrains the provider to a single answer string.
var answerSchema = &llm.Schema{
	Name:        "candidate-answer",
	Description: "A single-sentence metric report answering the question.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "The one-sentence answer to submit.",
			},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

// Agent produces candidate answers for curriculum questions.
type Agent struct {
	provider llm.Provider
}

// New creates an Agent over a provider.
func New(provider llm.Provider) *Agent {
	return &Agent{provider: provider}
}

// Answer generates a candidate answer for the question. On a retry,
// priorFeedback carries the grader's last feedback so the agent can
// correct itself.
func (a *Agent) Answer(ctx context.Context, q *ent.Question, priorFeedback string) (string, error) {
	var sb strings.Builder
	sb.WriteString(q.Prompt)
	if priorFeedback != "" {
		sb.WriteString("\n\nYour previous answer was rejected with this feedback:\n")
		sb.WriteString(priorFeedback)
		sb.WriteString("\nSubmit a corrected answer.")
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAnswer)
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      sb.String(),
		Schema:      answerSchema,
		MaxTokens:   256,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	var out struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if strings.TrimSpace(out.Answer) == "" {
		return "", &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     errors.New("answer field is empty"),
		}
	}
	return out.Answer, nil
}
