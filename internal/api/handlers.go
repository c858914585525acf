// Package api exposes the run operations over HTTP. Routes map 1:1 to
// manager operations; validation outcomes come back as 200 bodies, only
// state and infrastructure problems become error statuses.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abhisek/opsdojo/internal/llm"
	"github.com/abhisek/opsdojo/internal/runs"
)

// Handlers contains the HTTP handlers for the run surface.
type Handlers struct {
	mgr *runs.Manager
}

// NewHandlers creates handlers over the run manager.
func NewHandlers(mgr *runs.Manager) *Handlers {
	return &Handlers{mgr: mgr}
}

// HandleStartRun handles POST /v1/runs.
func (h *Handlers) HandleStartRun(c *gin.Context) {
	logger := requestLogger(c, "HandleStartRun")

	var req StartRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}

	run, err := h.mgr.StartRun(c.Request.Context(), req.Domain, req.Level)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("run started", "run", run.ID, "domain", req.Domain, "level", req.Level)
	c.JSON(http.StatusCreated, runResponse(run))
}

// HandleStartAutoRun handles POST /v1/runs/auto.
func (h *Handlers) HandleStartAutoRun(c *gin.Context) {
	logger := requestLogger(c, "HandleStartAutoRun")

	var req StartAutoRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}

	run, err := h.mgr.StartAutoRun(c.Request.Context(), req.StartLevel, req.EndLevel)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("auto run started", "run", run.ID, "startLevel", req.StartLevel, "endLevel", req.EndLevel)
	c.JSON(http.StatusCreated, runResponse(run))
}

// HandleStartRetrySet handles POST /v1/runs/retry-set.
func (h *Handlers) HandleStartRetrySet(c *gin.Context) {
	logger := requestLogger(c, "HandleStartRetrySet")

	var req StartRetrySetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}

	ids := req.QuestionIDs
	if len(ids) == 0 && req.FromRun != "" {
		var err error
		ids, err = h.mgr.FailedQuestionIDs(c.Request.Context(), req.FromRun)
		if err != nil {
			respondError(c, logger, err)
			return
		}
	}

	run, err := h.mgr.StartRetrySet(c.Request.Context(), ids)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("retry set started", "run", run.ID, "questions", len(ids))
	c.JSON(http.StatusCreated, runResponse(run))
}

// HandleGetRun handles GET /v1/runs/:id.
func (h *Handlers) HandleGetRun(c *gin.Context) {
	logger := requestLogger(c, "HandleGetRun")

	run, err := h.mgr.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, runResponse(run))
}

// HandleNextQuestion handles GET /v1/runs/:id/next.
func (h *Handlers) HandleNextQuestion(c *gin.Context) {
	logger := requestLogger(c, "HandleNextQuestion")

	q, idx, err := h.mgr.NextQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, questionResponse(q, idx))
}

// HandleNextTwoQuestions handles GET /v1/runs/:id/next2.
func (h *Handlers) HandleNextTwoQuestions(c *gin.Context) {
	logger := requestLogger(c, "HandleNextTwoQuestions")

	pair, idxs, err := h.mgr.NextTwoQuestions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"questions": []QuestionResponse{
			questionResponse(pair[0], idxs[0]),
			questionResponse(pair[1], idxs[1]),
		},
	})
}

// HandleSubmitAnswer handles POST /v1/runs/:id/answers.
func (h *Handlers) HandleSubmitAnswer(c *gin.Context) {
	logger := requestLogger(c, "HandleSubmitAnswer")

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
		return
	}

	res, err := h.mgr.SubmitAnswer(c.Request.Context(), c.Param("id"), req.QuestionID, req.Answer)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("answer submitted",
		"run", c.Param("id"),
		"question", req.QuestionID,
		"correct", res.Correct,
		"attempt", res.AttemptNumber)
	c.JSON(http.StatusOK, res)
}

// HandleStopRun handles POST /v1/runs/:id/stop.
func (h *Handlers) HandleStopRun(c *gin.Context) {
	logger := requestLogger(c, "HandleStopRun")

	run, err := h.mgr.StopRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("run stopped", "run", run.ID)
	c.JSON(http.StatusOK, runResponse(run))
}

// HandleTranscript handles GET /v1/runs/:id/transcript.
func (h *Handlers) HandleTranscript(c *gin.Context) {
	logger := requestLogger(c, "HandleTranscript")

	msgs, err := h.mgr.Transcript(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	out := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, MessageResponse{
			Sequence:  m.Sequence,
			Role:      string(m.Role),
			Body:      m.Body,
			Status:    m.Status,
			Timestamp: m.Timestamp.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"messages": out})
}

// respondError maps domain errors onto HTTP statuses: missing resources
// to 404, state conflicts to 409, provider outages to 503.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"

	var unavailable *llm.ErrProviderUnavailable
	switch {
	case errors.Is(err, runs.ErrRunNotFound):
		status, code = http.StatusNotFound, "RUN_NOT_FOUND"
	case errors.Is(err, runs.ErrQuestionNotFound):
		status, code = http.StatusNotFound, "QUESTION_NOT_FOUND"
	case errors.Is(err, runs.ErrNoQuestions):
		status, code = http.StatusNotFound, "NO_QUESTIONS"
	case errors.Is(err, runs.ErrRunNotActive):
		status, code = http.StatusConflict, "RUN_NOT_ACTIVE"
	case errors.As(err, &unavailable):
		status, code = http.StatusServiceUnavailable, "PROVIDER_UNAVAILABLE"
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

func requestLogger(c *gin.Context, handler string) *slog.Logger {
	return slog.With("request_id", getOrCreateRequestID(c), "handler", handler)
}

func getOrCreateRequestID(c *gin.Context) string {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return uuid.New().String()
}
