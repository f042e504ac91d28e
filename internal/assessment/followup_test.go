package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowupForCareerInterests(t *testing.T) {
	q := FollowupFor("career_interests", List([]string{"Frontend Developer - building beautiful UIs"}))
	require.NotNil(t, q)
	assert.Equal(t, "frontend_deep_dive", q.ID)
	assert.Equal(t, "career_interests", q.FollowupTo)

	// First match wins when several interests are selected.
	q = FollowupFor("career_interests", List([]string{
		"Frontend Developer - building beautiful UIs",
		"Data Scientist - finding patterns",
	}))
	require.NotNil(t, q)
	assert.Equal(t, "frontend_deep_dive", q.ID)

	assert.Nil(t, FollowupFor("career_interests", List([]string{"Mobile Developer"})))
}

func TestFollowupForTechnicalSkills(t *testing.T) {
	q := FollowupFor("technical_skills", SkillMap(map[string]string{"React": "Expert"}))
	require.NotNil(t, q)
	assert.Equal(t, "react_state_management", q.ID)

	// Redux already covered, Python branch fires instead.
	q = FollowupFor("technical_skills", SkillMap(map[string]string{
		"React":  "Expert",
		"Redux":  "Intermediate",
		"Python": "Advanced",
	}))
	require.NotNil(t, q)
	assert.Equal(t, "python_web_frameworks", q.ID)

	// Beginners don't get the state-management probe.
	assert.Nil(t, FollowupFor("technical_skills", SkillMap(map[string]string{"React": "Beginner"})))
}

func TestFollowupForExperienceLevel(t *testing.T) {
	q := FollowupFor("experience_level", Text("Senior Level (5+ years)"))
	require.NotNil(t, q)
	assert.Equal(t, "leadership_experience", q.ID)

	assert.Nil(t, FollowupFor("experience_level", Text("Entry Level (0-2 years)")))
	assert.Nil(t, FollowupFor("coffee_vs_tea", Text("Coffee")))
}

func TestMessages(t *testing.T) {
	assert.Empty(t, ContextualMessage("energy_source", 1, 25))
	assert.NotEmpty(t, ContextualMessage("energy_source", 2, 25))
	assert.NotEmpty(t, ContextualMessage("unknown_question", 5, 25))
	assert.NotEmpty(t, EncouragementMessage(13, 25))

	assert.NotEmpty(t, Acknowledgment("career_interests", List([]string{"Full Stack Developer"})))
	assert.Empty(t, Acknowledgment("coffee_vs_tea", Text("Coffee")))
}
