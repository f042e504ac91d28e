package services

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karyahq/compass/internal/assessment"
	"github.com/karyahq/compass/internal/cache"
	"github.com/karyahq/compass/internal/catalog"
	"github.com/karyahq/compass/internal/utils"
)

type testEnv struct {
	svc         AssessmentService
	learning    LearningService
	matches     MatchService
	assessments *fakeAssessmentRepo
	skills      *fakeSkillRepo
	jobs        *fakeJobRepo
	plans       *fakePlanRepo
	cat         *catalog.Catalog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	env := &testEnv{
		assessments: newFakeAssessmentRepo(),
		skills:      newFakeSkillRepo(),
		jobs:        &fakeJobRepo{jobs: cat.Jobs()},
		plans:       newFakePlanRepo(),
		cat:         cat,
	}
	env.learning = NewLearningService(env.assessments, env.skills, env.plans, cat)
	env.matches = NewMatchService(env.assessments, env.skills, env.jobs, cat)
	env.svc = NewAssessmentService(
		env.assessments, env.skills,
		assessment.NewSessionStore(cache.NewMemoryCache()),
		env.learning, cat, log,
	)
	return env
}

func TestStartAndResume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	started, err := env.svc.Start(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Assessment started", started.Message)
	assert.Equal(t, 0, started.CurrentQuestion)
	assert.Equal(t, env.cat.TotalQuestions(), started.TotalQuestions)

	_, err = env.svc.SaveAnswer(ctx, "u1", "energy_source", assessment.Text("Solo deep work sessions"))
	require.NoError(t, err)

	resumed, err := env.svc.Start(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Assessment resumed", resumed.Message)
	assert.Equal(t, started.AssessmentID, resumed.AssessmentID)
	assert.Equal(t, 1, resumed.CurrentQuestion)
}

func TestSaveAnswerRejectsInvalidShape(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Start(ctx, "u1")
	require.NoError(t, err)

	// Slider answer above the question maximum.
	_, err = env.svc.SaveAnswer(ctx, "u1", "time_availability", assessment.Number(15))
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	// Choice outside the option list.
	_, err = env.svc.SaveAnswer(ctx, "u1", "energy_source", assessment.Text("Chaos"))
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestSaveAnswerWithoutAssessment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.SaveAnswer(context.Background(), "ghost", "energy_source", assessment.Text("Solo deep work sessions"))
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestSaveAnswerAdvancesToNextQuestion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Start(ctx, "u1")
	require.NoError(t, err)

	res, err := env.svc.SaveAnswer(ctx, "u1", "energy_source", assessment.Text("Solo deep work sessions"))
	require.NoError(t, err)

	assert.True(t, res.AnswerSaved)
	assert.False(t, res.AssessmentComplete)
	require.NotNil(t, res.NextQuestion)
	assert.Equal(t, "decision_making", res.NextQuestion.ID)
	assert.Equal(t, 2, res.QuestionNumber)
	assert.Equal(t, env.cat.TotalQuestions(), res.TotalQuestions)
	assert.NotEmpty(t, res.ContextualMessage)
	assert.NotEmpty(t, res.Encouragement)
	assert.NotEmpty(t, res.Acknowledgment)

	require.NotNil(t, res.Personality)
	assert.NotEmpty(t, res.Personality.Insights)
	assert.Equal(t, 9, res.Personality.WorkStyleScores["independent"])
	assert.Equal(t, 9, res.Personality.Traits["autonomous"])
}

func TestSaveAnswerFollowupSuppressesNextQuestion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Start(ctx, "u1")
	require.NoError(t, err)

	res, err := env.svc.SaveAnswer(ctx, "u1", "career_interests",
		assessment.List([]string{"Frontend Developer - building beautiful UIs"}))
	require.NoError(t, err)

	require.NotNil(t, res.Followup)
	assert.Equal(t, "frontend_deep_dive", res.Followup.ID)
	assert.Nil(t, res.NextQuestion)
}

func TestSaveAnswerSkillInsightsAndTrajectory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Start(ctx, "u1")
	require.NoError(t, err)

	_, err = env.svc.SaveAnswer(ctx, "u1", "energy_source", assessment.Text("Solo deep work sessions"))
	require.NoError(t, err)
	_, err = env.svc.SaveAnswer(ctx, "u1", "experience_level", assessment.Text("Senior Level (5+ years) - I know things"))
	require.NoError(t, err)

	res, err := env.svc.SaveAnswer(ctx, "u1", "technical_skills",
		assessment.SkillMap(map[string]string{"React": "Expert", "JavaScript": "Advanced"}))
	require.NoError(t, err)

	assert.NotEmpty(t, res.SkillInsights)
	require.NotNil(t, res.Trajectory)
	assert.NotEmpty(t, res.Trajectory.GrowthPotential)
}

func TestCompleteFansOutSkillsAndGeneratesPlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Start(ctx, "u1")
	require.NoError(t, err)
	_, err = env.svc.SaveAnswer(ctx, "u1", "energy_source", assessment.Text("Solo deep work sessions"))
	require.NoError(t, err)

	answers := assessment.Profile{
		"career_interests":     assessment.List([]string{"Frontend Developer - building beautiful UIs"}),
		"experience_level":     assessment.Text("Senior Level (5+ years) - I know things"),
		"technical_skills":     assessment.SkillMap(map[string]string{"React": "Expert", "Python": "None", "Go": ""}),
		"career_goals":         assessment.Text("Become a senior engineer at a startup"),
		"learning_preferences": assessment.List([]string{"Online Courses - structured learning"}),
		"location_preferences": assessment.List([]string{"Remote - anywhere in the world"}),
		"time_availability":    assessment.Number(5),
	}

	res, err := env.svc.Complete(ctx, "u1", answers)
	require.NoError(t, err)

	assert.Equal(t, "Assessment completed successfully", res.Message)
	assert.True(t, res.LearningPlanGenerated)
	require.NotNil(t, res.FinalProfile)
	assert.NotEmpty(t, res.FinalProfile.Personality.Type)

	// "None" and empty proficiencies never become rows.
	skills, err := env.skills.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "React", skills[0].SkillName)
	assert.Equal(t, "Expert", skills[0].ProficiencyLevel)

	plan, err := env.learning.GetPlan(ctx, "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, plan.Skills)

	status, err := env.svc.Status(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, status.IsCompleted)
	assert.NotNil(t, status.CompletedAt)
}

func TestCompleteWithoutAssessment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Complete(context.Background(), "ghost", assessment.Profile{
		"energy_source": assessment.Text("Solo deep work sessions"),
	})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestStatusProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Start(ctx, "u1")
	require.NoError(t, err)
	_, err = env.svc.SaveAnswer(ctx, "u1", "energy_source", assessment.Text("Solo deep work sessions"))
	require.NoError(t, err)

	status, err := env.svc.Status(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, status.CurrentQuestion)
	assert.Equal(t, env.cat.TotalQuestions(), status.TotalQuestions)
	assert.InDelta(t, 100.0/float64(env.cat.TotalQuestions()), status.ProgressPercentage, 0.001)
	assert.False(t, status.IsCompleted)
}
