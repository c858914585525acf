package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	entquestion "github.com/abhisek/opsdojo/ent/question"
	"github.com/abhisek/opsdojo/internal/feedback"
	"github.com/abhisek/opsdojo/internal/runs"
	"github.com/abhisek/opsdojo/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	mgr := runs.NewManager(s, feedback.New(), runs.Options{})
	router := gin.New()
	v1 := router.Group("/v1")
	RegisterRoutes(v1, NewHandlers(mgr))
	return router, s
}

func seedQuestion(t *testing.T, s *store.Store, id string, seq int, category, value string) {
	t.Helper()
	_, err := s.Client().Question.Create().
		SetID(id).
		SetDomain("monitoring").
		SetLevel(1).
		SetSeq(seq).
		SetPrompt("Report the metric.").
		SetExpectedCategory(category).
		SetExpectedFormat(entquestion.ExpectedFormatLiteral).
		SetExpectedValue(value).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed question %s: %v", id, err)
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func startRun(t *testing.T, router *gin.Engine) RunResponse {
	t.Helper()
	w := doJSON(t, router, "POST", "/v1/runs", StartRunRequest{Domain: "monitoring", Level: 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("start run status = %d: %s", w.Code, w.Body.String())
	}
	var run RunResponse
	if err := json.Unmarshal(w.Body.Bytes(), &run); err != nil {
		t.Fatalf("unmarshal run: %v", err)
	}
	return run
}

func TestHandleStartRun(t *testing.T) {
	router, s := setupTestRouter(t)
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")

	run := startRun(t, router)
	if run.State != "running" || run.Mode != "single-level" {
		t.Errorf("run = %+v, want running single-level", run)
	}

	// Unseeded level.
	w := doJSON(t, router, "POST", "/v1/runs", StartRunRequest{Domain: "monitoring", Level: 9})
	if w.Code != http.StatusNotFound {
		t.Errorf("unseeded level status = %d, want 404", w.Code)
	}

	// Missing fields.
	w = doJSON(t, router, "POST", "/v1/runs", map[string]any{"domain": "monitoring"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing level status = %d, want 400", w.Code)
	}
}

func TestHandleGetRun(t *testing.T) {
	router, s := setupTestRouter(t)
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")
	run := startRun(t, router)

	w := doJSON(t, router, "GET", "/v1/runs/"+run.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get run status = %d", w.Code)
	}

	w = doJSON(t, router, "GET", "/v1/runs/no-such-run", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown run status = %d, want 404", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if resp.Code != "RUN_NOT_FOUND" {
		t.Errorf("code = %q, want RUN_NOT_FOUND", resp.Code)
	}
}

func TestHandleNextQuestionHidesAnswerKey(t *testing.T) {
	router, s := setupTestRouter(t)
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")
	run := startRun(t, router)

	w := doJSON(t, router, "GET", "/v1/runs/"+run.ID+"/next", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("next status = %d", w.Code)
	}

	var q QuestionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &q); err != nil {
		t.Fatalf("unmarshal question: %v", err)
	}
	if q.ID != "q-1" || q.Prompt == "" {
		t.Errorf("question = %+v", q)
	}

	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	for _, key := range []string{"expectedValue", "expected_value", "expectedCategory", "expected_category"} {
		if _, ok := raw[key]; ok {
			t.Errorf("answer key field %q leaked over the wire", key)
		}
	}
}

func TestHandleNextTwoQuestions(t *testing.T) {
	router, s := setupTestRouter(t)
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")
	seedQuestion(t, s, "q-2", 1, "MEMORY_USAGE", "Memory usage is 71%")
	run := startRun(t, router)

	w := doJSON(t, router, "GET", "/v1/runs/"+run.ID+"/next2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("next2 status = %d", w.Code)
	}
	var resp struct {
		Questions []QuestionResponse `json:"questions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Questions) != 2 || resp.Questions[0].ID != "q-1" || resp.Questions[1].ID != "q-2" {
		t.Errorf("questions = %+v", resp.Questions)
	}
}

func TestHandleSubmitAnswer(t *testing.T) {
	router, s := setupTestRouter(t)
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")
	run := startRun(t, router)

	w := doJSON(t, router, "POST", "/v1/runs/"+run.ID+"/answers",
		SubmitAnswerRequest{QuestionID: "q-1", Answer: "CPU load is 42%"})
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d: %s", w.Code, w.Body.String())
	}

	var res runs.SubmitResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !res.Correct || !res.ShouldAdvance {
		t.Errorf("result = %+v", res)
	}

	// A wrong answer is still a 200: validation outcomes are data.
	w = doJSON(t, router, "POST", "/v1/runs/"+run.ID+"/answers",
		SubmitAnswerRequest{QuestionID: "q-1", Answer: "Memory usage is 12%"})
	if w.Code != http.StatusOK {
		t.Fatalf("wrong answer status = %d, want 200", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if res.Correct {
		t.Error("wrong answer graded correct")
	}
	if res.ErrorType == "" {
		t.Error("missing errorType on failed validation")
	}

	w = doJSON(t, router, "POST", "/v1/runs/"+run.ID+"/answers",
		SubmitAnswerRequest{QuestionID: "no-such-question", Answer: "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown question status = %d, want 404", w.Code)
	}
}

func TestHandleStopRunConflict(t *testing.T) {
	router, s := setupTestRouter(t)
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")
	run := startRun(t, router)

	w := doJSON(t, router, "POST", "/v1/runs/"+run.ID+"/stop", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stop status = %d", w.Code)
	}

	w = doJSON(t, router, "POST", "/v1/runs/"+run.ID+"/stop", nil)
	if w.Code != http.StatusConflict {
		t.Errorf("second stop status = %d, want 409", w.Code)
	}

	w = doJSON(t, router, "POST", "/v1/runs/"+run.ID+"/answers",
		SubmitAnswerRequest{QuestionID: "q-1", Answer: "CPU load is 42%"})
	if w.Code != http.StatusConflict {
		t.Errorf("submit after stop status = %d, want 409", w.Code)
	}
}

func TestHandleRetrySetFromRun(t *testing.T) {
	router, s := setupTestRouter(t)
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")
	run := startRun(t, router)

	// Burn all attempts on q-1 so it lands in the failed set.
	for i := 0; i < runs.DefaultMaxAttempts; i++ {
		w := doJSON(t, router, "POST", "/v1/runs/"+run.ID+"/answers",
			SubmitAnswerRequest{QuestionID: "q-1", Answer: "Disk usage is 5%"})
		if w.Code != http.StatusOK {
			t.Fatalf("submit %d status = %d", i+1, w.Code)
		}
	}

	w := doJSON(t, router, "POST", "/v1/runs/retry-set", StartRetrySetRequest{FromRun: run.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("retry set status = %d: %s", w.Code, w.Body.String())
	}
	var retry RunResponse
	if err := json.Unmarshal(w.Body.Bytes(), &retry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if retry.Mode != "retry-set" {
		t.Errorf("mode = %q, want retry-set", retry.Mode)
	}

	// No failed questions means an empty set.
	w = doJSON(t, router, "POST", "/v1/runs/retry-set", StartRetrySetRequest{QuestionIDs: nil})
	if w.Code != http.StatusNotFound {
		t.Errorf("empty retry set status = %d, want 404", w.Code)
	}
}

func TestHandleTranscript(t *testing.T) {
	router, s := setupTestRouter(t)
	seedQuestion(t, s, "q-1", 0, "CPU_LOAD", "CPU load is 42%")
	run := startRun(t, router)

	doJSON(t, router, "POST", "/v1/runs/"+run.ID+"/answers",
		SubmitAnswerRequest{QuestionID: "q-1", Answer: "CPU load is 42%"})

	w := doJSON(t, router, "GET", "/v1/runs/"+run.ID+"/transcript", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("transcript status = %d", w.Code)
	}
	var resp struct {
		Messages []MessageResponse `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(resp.Messages))
	}
	for i, m := range resp.Messages {
		if m.Sequence != int64(i+1) {
			t.Errorf("messages[%d].Sequence = %d, want %d", i, m.Sequence, i+1)
		}
	}
}
