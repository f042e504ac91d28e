package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karyahq/compass/internal/services"
	"github.com/karyahq/compass/internal/utils"
)

type LearningHandler struct {
	svc services.LearningService
}

func NewLearningHandler(svc services.LearningService) *LearningHandler {
	return &LearningHandler{svc: svc}
}

func (h *LearningHandler) Resources(c *gin.Context) {
	res := h.svc.ListResources(
		c.Query("skill"),
		c.Query("type"),
		c.Query("difficulty"),
	)
	c.JSON(http.StatusOK, res)
}

func (h *LearningHandler) GetPath(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	plan, err := h.svc.GetPlan(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

type generateRequest struct {
	SkillGaps []string `json:"skill_gaps"`
}

func (h *LearningHandler) GeneratePath(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	// An empty body is fine, skill gaps then derive from the assessment.
	var req generateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "LearningHandler.GeneratePath", "invalid request body", err))
			return
		}
	}

	plan, err := h.svc.GeneratePlan(c.Request.Context(), userID, req.SkillGaps)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

type progressRequest struct {
	ResourceID int     `json:"resource_id" binding:"required"`
	Percentage float64 `json:"completion_percentage"`
}

func (h *LearningHandler) UpdateProgress(c *gin.Context) {
	planID := c.Param("plan_id")
	if planID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "LearningHandler.UpdateProgress", "plan_id is required", nil))
		return
	}

	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "LearningHandler.UpdateProgress", "invalid request body", err))
		return
	}

	res, err := h.svc.UpdateProgress(c.Request.Context(), planID, req.ResourceID, req.Percentage)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *LearningHandler) Insights(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	res, err := h.svc.Insights(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
