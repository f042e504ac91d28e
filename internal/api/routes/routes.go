package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/karyahq/compass/internal/api/handlers"
)

type Deps struct {
	Assessment *handlers.AssessmentHandler
	Job        *handlers.JobHandler
	Learning   *handlers.LearningHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/assessments/:user_id/start", d.Assessment.Start)
	r.POST("/assessments/:user_id/answers", d.Assessment.SaveAnswer)
	r.POST("/assessments/:user_id/complete", d.Assessment.Complete)
	r.GET("/assessments/:user_id/status", d.Assessment.Status)

	r.GET("/jobs/matches/:user_id", d.Job.Matches)
	r.GET("/jobs/insights/:user_id", d.Job.MarketInsights)
	r.GET("/jobs/:job_id", d.Job.Details)

	r.GET("/learning/resources", d.Learning.Resources)
	r.GET("/learning/paths/:user_id", d.Learning.GetPath)
	r.POST("/learning/paths/:user_id/generate", d.Learning.GeneratePath)
	// Progress updates address the plan, not the user, so they live on
	// their own prefix to keep wildcard names unambiguous.
	r.POST("/learning/progress/:plan_id", d.Learning.UpdateProgress)
	r.GET("/learning/insights/:user_id", d.Learning.Insights)
}
