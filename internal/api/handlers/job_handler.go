package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/karyahq/compass/internal/services"
	"github.com/karyahq/compass/internal/utils"
)

type JobHandler struct {
	svc services.MatchService
}

func NewJobHandler(svc services.MatchService) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) Matches(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	res, err := h.svc.Matches(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *JobHandler) Details(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("job_id"), 10, 32)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Details", "job_id must be a number", err))
		return
	}

	res, err := h.svc.JobDetails(c.Request.Context(), uint(jobID))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *JobHandler) MarketInsights(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	res, err := h.svc.MarketInsights(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
