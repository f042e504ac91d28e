package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/karyahq/compass/internal/assessment"
	"github.com/karyahq/compass/internal/catalog"
	"github.com/karyahq/compass/internal/models"
	pgrepo "github.com/karyahq/compass/internal/repositories/postgres"
	"github.com/karyahq/compass/internal/utils"
)

type AssessmentService interface {
	Start(ctx context.Context, userID string) (*StartResult, error)
	SaveAnswer(ctx context.Context, userID, questionID string, ans assessment.Answer) (*AnswerResult, error)
	Complete(ctx context.Context, userID string, answers assessment.Profile) (*CompletionResult, error)
	Status(ctx context.Context, userID string) (*AssessmentStatus, error)
}

// StartResult reports a started or resumed assessment.
type StartResult struct {
	Message         string `json:"message"`
	AssessmentID    uint   `json:"assessment_id"`
	CurrentQuestion int    `json:"current_question"`
	TotalQuestions  int    `json:"total_questions"`
}

// PersonalityAnalysis is the live trait read returned after each answer.
type PersonalityAnalysis struct {
	Insights        []string                       `json:"insights"`
	Personality     assessment.PersonalityProfile  `json:"personality_profile"`
	WorkStyle       assessment.WorkStyleProfile    `json:"work_style_profile"`
	CultureFit      assessment.CultureProfile      `json:"culture_fit_profile"`
	Traits          map[string]int                 `json:"traits"`
	WorkStyleScores map[string]int                 `json:"work_style"`
	CultureScores   map[string]int                 `json:"culture_fit"`
}

// AnswerResult is the full response to a single saved answer.
type AnswerResult struct {
	AnswerSaved        bool                            `json:"answer_saved"`
	Followup           *catalog.Question               `json:"followup_question,omitempty"`
	SkillInsights      []string                        `json:"skill_insights,omitempty"`
	Trajectory         *assessment.TrajectoryAnalysis  `json:"trajectory_analysis,omitempty"`
	Personality        *PersonalityAnalysis            `json:"personality_analysis,omitempty"`
	NextQuestion       *catalog.Question               `json:"next_question,omitempty"`
	QuestionNumber     int                             `json:"question_number,omitempty"`
	TotalQuestions     int                             `json:"total_questions,omitempty"`
	ContextualMessage  string                          `json:"contextual_message,omitempty"`
	Encouragement      string                          `json:"encouragement_message,omitempty"`
	Acknowledgment     string                          `json:"answer_acknowledgment,omitempty"`
	AssessmentComplete bool                            `json:"assessment_complete"`
	FinalProfile       *assessment.FullProfile         `json:"final_personality_profile,omitempty"`
}

// CompletionResult confirms a finished assessment.
type CompletionResult struct {
	Message               string                  `json:"message"`
	AssessmentID          uint                    `json:"assessment_id"`
	NextSteps             []string                `json:"next_steps"`
	LearningPlanGenerated bool                    `json:"learning_plan_generated"`
	FinalProfile          *assessment.FullProfile `json:"final_personality_profile,omitempty"`
}

// AssessmentStatus reports progress through the question catalog.
type AssessmentStatus struct {
	AssessmentID       uint       `json:"assessment_id"`
	UserID             string     `json:"user_id"`
	CurrentQuestion    int        `json:"current_question"`
	TotalQuestions     int        `json:"total_questions"`
	ProgressPercentage float64    `json:"progress_percentage"`
	IsCompleted        bool       `json:"is_completed"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

type assessmentService struct {
	assessments pgrepo.AssessmentRepository
	skills      pgrepo.SkillRepository
	sessions    assessment.SessionStore
	learning    LearningService
	cat         *catalog.Catalog
	log         *logrus.Logger
}

func NewAssessmentService(
	assessments pgrepo.AssessmentRepository,
	skills pgrepo.SkillRepository,
	sessions assessment.SessionStore,
	learning LearningService,
	cat *catalog.Catalog,
	log *logrus.Logger,
) AssessmentService {
	return &assessmentService{
		assessments: assessments,
		skills:      skills,
		sessions:    sessions,
		learning:    learning,
		cat:         cat,
		log:         log,
	}
}

// decodeProfile parses the stored answers document into a typed profile.
func decodeProfile(raw []byte) (assessment.Profile, error) {
	profile := assessment.Profile{}
	if len(raw) == 0 {
		return profile, nil
	}
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *assessmentService) Start(ctx context.Context, userID string) (*StartResult, error) {
	const op = "AssessmentService.Start"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	existing, err := s.assessments.GetByUserID(ctx, userID)
	if err == nil {
		profile, perr := decodeProfile(existing.Answers)
		if perr != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to decode answers", perr)
		}
		return &StartResult{
			Message:         "Assessment resumed",
			AssessmentID:    existing.ID,
			CurrentQuestion: len(profile),
			TotalQuestions:  s.cat.TotalQuestions(),
		}, nil
	}
	if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to load assessment", err)
	}

	a := &models.Assessment{
		UserID:    userID,
		Answers:   []byte("{}"),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.assessments.Create(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create assessment", err)
	}

	return &StartResult{
		Message:         "Assessment started",
		AssessmentID:    a.ID,
		CurrentQuestion: 0,
		TotalQuestions:  s.cat.TotalQuestions(),
	}, nil
}

func (s *assessmentService) SaveAnswer(ctx context.Context, userID, questionID string, ans assessment.Answer) (*AnswerResult, error) {
	const op = "AssessmentService.SaveAnswer"

	if userID == "" || questionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and question_id are required", nil)
	}

	// Follow-up questions are generated dynamically and are not in the
	// catalog; only standard questions get shape validation.
	if q, ok := s.cat.QuestionByID(questionID); ok {
		if err := ans.ValidateFor(q); err != nil {
			return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), err)
		}
	}

	a, err := s.assessments.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "assessment not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load assessment", err)
	}

	profile, err := decodeProfile(a.Answers)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode answers", err)
	}
	profile[questionID] = ans

	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode answers", err)
	}
	a.Answers = raw
	a.UpdatedAt = time.Now().UTC()
	if err := s.assessments.Save(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save answer", err)
	}

	// Trait scoring runs against the session state, created on first answer
	// and kept alive on a sliding TTL.
	state, found, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load session", err)
	}
	if !found {
		state = assessment.NewTraitState()
	}
	insights := state.Apply(questionID, ans)
	if err := s.sessions.Put(ctx, userID, state); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save session", err)
	}

	result := &AnswerResult{
		AnswerSaved: true,
		Followup:    assessment.FollowupFor(questionID, ans),
		Personality: &PersonalityAnalysis{
			Insights:        insights,
			Personality:     state.Personality(),
			WorkStyle:       state.WorkStyleSummary(),
			CultureFit:      state.CultureSummary(),
			Traits:          state.Traits,
			WorkStyleScores: state.WorkStyle,
			CultureScores:   state.CultureFit,
		},
	}

	if questionID == "technical_skills" {
		result.SkillInsights = assessment.ValidateSkillCombination(ans.AsSkillMap())
	}
	if len(profile) >= 3 {
		result.Trajectory = assessment.AnalyzeTrajectory(profile)
	}

	if result.Followup == nil {
		s.attachNextQuestion(result, profile, questionID)
	}
	return result, nil
}

// attachNextQuestion fills in the next standard question with its
// surrounding messages, or marks the assessment complete when the catalog
// is exhausted.
func (s *assessmentService) attachNextQuestion(result *AnswerResult, profile assessment.Profile, answeredID string) {
	total := s.cat.TotalQuestions()
	next := -1
	for i, q := range s.cat.Questions() {
		if _, answered := profile[q.ID]; !answered {
			next = i
			break
		}
	}
	if next < 0 {
		result.AssessmentComplete = true
		return
	}

	q := s.cat.Questions()[next]
	result.NextQuestion = &q
	result.QuestionNumber = next + 1
	result.TotalQuestions = total
	result.ContextualMessage = assessment.ContextualMessage(q.ID, next+1, total)
	result.Encouragement = assessment.EncouragementMessage(next+1, total)
	result.Acknowledgment = assessment.Acknowledgment(answeredID, profile[answeredID])
}

func (s *assessmentService) Complete(ctx context.Context, userID string, answers assessment.Profile) (*CompletionResult, error) {
	const op = "AssessmentService.Complete"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if len(answers) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "answers are required", nil)
	}

	a, err := s.assessments.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "assessment not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load assessment", err)
	}

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode answers", err)
	}
	a.Answers = raw

	if skills := answers.Skills("technical_skills"); len(skills) > 0 {
		rows := make([]models.UserSkill, 0, len(skills))
		for name, level := range skills {
			rows = append(rows, models.UserSkill{
				UserID:           userID,
				SkillName:        name,
				ProficiencyLevel: level,
				SkillCategory:    "technical",
				CreatedAt:        time.Now().UTC(),
			})
		}
		if err := s.skills.ReplaceForUser(ctx, userID, rows); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to save skills", err)
		}
	}

	now := time.Now().UTC()
	a.CompletedAt = &now
	a.ExperienceLevel = answers.String("experience_level")
	a.CareerGoals = answers.String("career_goals")
	a.LocationPreferences = answers.Strings("location_preferences")
	if prefs, err := json.Marshal(map[string][]string{"preferences": answers.Strings("learning_preferences")}); err == nil {
		a.LearningPreferences = prefs
	}
	a.UpdatedAt = now
	if err := s.assessments.Save(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to complete assessment", err)
	}

	// Plan generation is best effort: completion never rolls back because
	// the planner failed.
	planGenerated := true
	if _, err := s.learning.GeneratePlan(ctx, userID, nil); err != nil {
		planGenerated = false
		s.log.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).
			Warn("learning plan auto-generation failed")
	}

	var finalProfile *assessment.FullProfile
	if state, found, err := s.sessions.Get(ctx, userID); err == nil && found {
		snapshot := state.FullProfileSnapshot()
		finalProfile = &snapshot
		if err := s.sessions.Delete(ctx, userID); err != nil {
			s.log.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).
				Warn("failed to delete assessment session")
		}
	}

	return &CompletionResult{
		Message:               "Assessment completed successfully",
		AssessmentID:          a.ID,
		NextSteps:             []string{"job_matching", "learning_path"},
		LearningPlanGenerated: planGenerated,
		FinalProfile:          finalProfile,
	}, nil
}

func (s *assessmentService) Status(ctx context.Context, userID string) (*AssessmentStatus, error) {
	const op = "AssessmentService.Status"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	a, err := s.assessments.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "assessment not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load assessment", err)
	}

	profile, err := decodeProfile(a.Answers)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode answers", err)
	}

	total := s.cat.TotalQuestions()
	current := len(profile)
	progress := 0.0
	if total > 0 {
		progress = float64(current) / float64(total) * 100
	}

	return &AssessmentStatus{
		AssessmentID:       a.ID,
		UserID:             a.UserID,
		CurrentQuestion:    current,
		TotalQuestions:     total,
		ProgressPercentage: progress,
		IsCompleted:        a.IsCompleted(),
		CompletedAt:        a.CompletedAt,
	}, nil
}
