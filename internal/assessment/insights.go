package assessment

import (
	"math"
	"strings"
)

var (
	frontendSkills = []string{"React", "Vue.js", "Angular", "JavaScript", "TypeScript", "HTML", "CSS"}
	backendSkills  = []string{"Node.js", "Python", "Java", "C#", "Go", "Django", "Flask"}
	cloudSkills    = []string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes"}
	dbSkills       = []string{"SQL", "MongoDB", "PostgreSQL", "Redis"}
)

func countPresent(skills map[string]string, names []string) int {
	n := 0
	for _, name := range names {
		if _, ok := skills[name]; ok {
			n++
		}
	}
	return n
}

// ValidateSkillCombination inspects a populated skill map for notable
// combinations and gaps, returning conversational observations.
func ValidateSkillCombination(skills map[string]string) []string {
	skills = populatedSkills(skills)
	var insights []string

	frontendCount := countPresent(skills, frontendSkills)
	hasFrontend := frontendCount > 0
	if hasFrontend {
		if frontendCount >= 4 {
			insights = append(insights, "Solid frontend foundation! You're basically a UI wizard.")
		} else if _, js := skills["JavaScript"]; js {
			if _, ts := skills["TypeScript"]; !ts {
				insights = append(insights, "JavaScript skills are solid! Have you considered TypeScript? Most companies expect it now.")
			}
		}
	}

	hasBackend := countPresent(skills, backendSkills) > 0
	if hasBackend && hasFrontend {
		insights = append(insights, "Full stack potential! Companies love developers who can do both.")
	}

	cloudCount := countPresent(skills, cloudSkills)
	if cloudCount >= 2 {
		insights = append(insights, "Cloud skills are in high demand! You're positioning yourself well.")
	} else if cloudCount == 0 {
		insights = append(insights, "Consider learning some cloud basics. Even basic AWS knowledge opens doors.")
	}

	if countPresent(skills, dbSkills) == 0 {
		insights = append(insights, "Database skills are essential. Even basic SQL knowledge helps a lot.")
	}

	return insights
}

// TrajectoryAnalysis scores how well interests, skills, experience, and
// stated goals line up.
type TrajectoryAnalysis struct {
	TrajectoryScore int      `json:"trajectory_score"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	MissingSkills   []string `json:"missing_skills"`
	GrowthPotential string   `json:"growth_potential"`
}

// AnalyzeTrajectory runs the career trajectory heuristic over the profile
// accumulated so far. Callers gate it on having at least a few answers.
func AnalyzeTrajectory(p Profile) *TrajectoryAnalysis {
	a := &TrajectoryAnalysis{GrowthPotential: "medium"}

	interests := p["career_interests"]
	experienceLevel := p.String("experience_level")
	skills := p.Skills("technical_skills")
	goals := strings.ToLower(p.String("career_goals"))

	var score float64

	// Interest to skill alignment, first matching interest only.
	switch {
	case interests.Contains("Frontend Developer"):
		score += math.Min(30, float64(countPresent(skills, frontendSkills))*6)
	case interests.Contains("Backend Developer"):
		score += math.Min(30, float64(countPresent(skills, backendSkills))*6)
	case interests.Contains("Data Scientist"):
		dataSkills := []string{"Python", "SQL", "Machine Learning", "Deep Learning"}
		score += math.Min(30, float64(countPresent(skills, dataSkills))*7.5)
	}

	var experienceYears float64
	switch {
	case strings.Contains(experienceLevel, "Entry Level"):
		experienceYears = 1
	case strings.Contains(experienceLevel, "Mid Level"):
		experienceYears = 3.5
	case strings.Contains(experienceLevel, "Senior Level"):
		experienceYears = 7
	case strings.Contains(experienceLevel, "Lead"):
		experienceYears = 10
	}

	advanced := 0
	for _, prof := range skills {
		if prof == "Advanced" || prof == "Expert" {
			advanced++
		}
	}
	score += math.Min(20, float64(advanced)*5)

	categories := 0
	for _, group := range [][]string{
		{"React", "Vue.js", "Angular"},
		backendSkills,
		cloudSkills,
		dbSkills,
	} {
		if countPresent(skills, group) > 0 {
			categories++
		}
	}
	score += math.Min(20, float64(categories)*5)

	if goals != "" {
		if strings.Contains(goals, "senior") || strings.Contains(goals, "lead") || strings.Contains(goals, "principal") {
			if experienceYears >= 3 {
				score += 10
			} else {
				a.Recommendations = append(a.Recommendations,
					"Your goals show ambition! Focus on building more experience to reach senior roles faster.")
			}
		}
		if strings.Contains(goals, "remote") || strings.Contains(goals, "flexible") {
			a.Recommendations = append(a.Recommendations,
				"Remote work opportunities are abundant, especially with your skill set!")
		}
		if strings.Contains(goals, "startup") {
			a.Recommendations = append(a.Recommendations,
				"Startup experience can accelerate your career. Consider early-stage companies for rapid growth.")
		}
	}

	a.TrajectoryScore = int(math.Min(100, score))

	switch {
	case a.TrajectoryScore >= 80:
		a.GrowthPotential = "high"
		a.Insights = append(a.Insights, "Excellent trajectory! You're positioning yourself for senior roles and high growth.")
	case a.TrajectoryScore >= 60:
		a.GrowthPotential = "medium-high"
		a.Insights = append(a.Insights, "Good foundation! With focused skill development, you could reach senior levels quickly.")
	case a.TrajectoryScore >= 40:
		a.GrowthPotential = "medium"
		a.Insights = append(a.Insights, "Solid start! Focus on building depth in your core skills and expanding your toolkit.")
	default:
		a.GrowthPotential = "developing"
		a.Insights = append(a.Insights, "Every expert was once a beginner! Focus on fundamentals and consistent learning.")
	}

	missingByInterest := []struct {
		interest string
		skills   []string
	}{
		{"Frontend Developer", []string{"TypeScript", "React", "Next.js", "TailwindCSS"}},
		{"Backend Developer", []string{"Docker", "AWS", "PostgreSQL", "Redis"}},
		{"Data Scientist", []string{"Machine Learning", "Deep Learning", "SQL", "AWS"}},
	}
	for _, mi := range missingByInterest {
		if !interests.Contains(mi.interest) {
			continue
		}
		for _, skill := range mi.skills {
			if _, ok := skills[skill]; !ok {
				a.MissingSkills = append(a.MissingSkills, skill)
			}
		}
	}

	return a
}
