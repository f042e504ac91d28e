package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karyahq/compass/internal/assessment"
	"github.com/karyahq/compass/internal/services"
	"github.com/karyahq/compass/internal/utils"
)

type AssessmentHandler struct {
	svc services.AssessmentService
}

func NewAssessmentHandler(svc services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

func (h *AssessmentHandler) Start(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	res, err := h.svc.Start(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type saveAnswerRequest struct {
	QuestionID string            `json:"question_id" binding:"required"`
	Answer     assessment.Answer `json:"answer"`
}

func (h *AssessmentHandler) SaveAnswer(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req saveAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AssessmentHandler.SaveAnswer", "invalid request body", err))
		return
	}

	res, err := h.svc.SaveAnswer(c.Request.Context(), userID, req.QuestionID, req.Answer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type completeRequest struct {
	Answers assessment.Profile `json:"answers" binding:"required"`
}

func (h *AssessmentHandler) Complete(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AssessmentHandler.Complete", "invalid request body", err))
		return
	}

	res, err := h.svc.Complete(c.Request.Context(), userID, req.Answers)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AssessmentHandler) Status(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	res, err := h.svc.Status(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
