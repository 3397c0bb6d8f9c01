package results

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hairquiz-backend/internal/engine"
	"hairquiz-backend/internal/shared/server/respond"
)

// AcceptedFallbackNote is returned when a submission is accepted but
// could not be persisted.
const AcceptedFallbackNote = "Accepted without persistence (DB unavailable)"

// Handler wires HTTP handlers to the results service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the public quiz-result routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quiz-results", h.submitResult)
	rg.POST("/quiz-results/evaluate", h.evaluate)
}

// RegisterAdminRoutes attaches the read routes to an admin-gated group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/quiz-results", h.listResults)
	rg.GET("/quiz-results/:id", h.getResult)
}

func (h *Handler) submitResult(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, persisted, err := h.Svc.Submit(c.Request.Context(), sub)
	if err != nil {
		switch {
		case errors.Is(err, errEmptyAnswers):
			respond.Error(c, http.StatusBadRequest, "validation_error", "answers are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit quiz result", nil)
		}
		return
	}

	c.Set("resultId", result.ID)
	c.Set("persisted", persisted)

	if !persisted {
		respond.JSON(c, http.StatusAccepted, gin.H{
			"id":                  nil,
			"note":                AcceptedFallbackNote,
			"_isAcceptedFallback": true,
		})
		return
	}

	respond.JSON(c, http.StatusCreated, result)
}

func (h *Handler) evaluate(c *gin.Context) {
	var body struct {
		Answers engine.Answers `json:"answers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	eval, err := h.Svc.Evaluate(c.Request.Context(), body.Answers)
	if err != nil {
		switch {
		case errors.Is(err, errEmptyAnswers):
			respond.Error(c, http.StatusBadRequest, "validation_error", "answers are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to evaluate answers", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, eval)
}

func (h *Handler) getResult(c *gin.Context) {
	resultID := c.Param("id")
	if resultID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "result id is required", nil)
		return
	}

	result, err := h.Svc.Get(c.Request.Context(), resultID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "quiz result not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch quiz result", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) listResults(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list quiz results", nil)
		return
	}
	if items == nil {
		items = []QuizResult{}
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}
