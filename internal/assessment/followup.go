package assessment

import (
	"github.com/karyahq/compass/internal/catalog"
)

// FollowupFor returns the dynamic follow-up question an answer triggers,
// or nil. At most one follow-up fires per answer; interest branches are
// checked in order and the first match wins.
func FollowupFor(questionID string, ans Answer) *catalog.Question {
	switch questionID {
	case "career_interests":
		switch {
		case ans.Contains("Frontend Developer"):
			return &catalog.Question{
				ID:         "frontend_deep_dive",
				Type:       "multi_select",
				Question:   "Nice! Frontend is hot right now. Which frameworks are you into?",
				Options:    []string{"React", "Vue.js", "Angular", "Svelte", "Next.js", "Gatsby"},
				Required:   true,
				FollowupTo: "career_interests",
			}
		case ans.Contains("Backend Developer"):
			return &catalog.Question{
				ID:         "backend_deep_dive",
				Type:       "multi_select",
				Question:   "Backend wizard! What's your stack?",
				Options:    []string{"Node.js", "Python/Django", "Java/Spring", "C#/.NET", "Go", "Ruby/Rails"},
				Required:   true,
				FollowupTo: "career_interests",
			}
		case ans.Contains("Data Scientist"):
			return &catalog.Question{
				ID:         "data_science_deep_dive",
				Type:       "multi_select",
				Question:   "Data science! ML or more traditional analytics?",
				Options:    []string{"Machine Learning", "Deep Learning", "Statistical Analysis", "Data Visualization", "Big Data"},
				Required:   true,
				FollowupTo: "career_interests",
			}
		}

	case "technical_skills":
		skills := populatedSkills(ans.AsSkillMap())
		if prof, ok := skills["React"]; ok && (prof == "Advanced" || prof == "Expert") {
			if _, ok := skills["Redux"]; !ok {
				return &catalog.Question{
					ID:       "react_state_management",
					Type:     "single_choice",
					Question: "You're solid with React! What about state management?",
					Options: []string{
						"Redux (classic choice)",
						"Context API",
						"Zustand/Jotai (modern stuff)",
						"State management is overrated",
					},
					Required:   true,
					FollowupTo: "technical_skills",
				}
			}
		}
		if _, ok := skills["Python"]; ok {
			_, django := skills["Django"]
			_, flask := skills["Flask"]
			if !django && !flask {
				return &catalog.Question{
					ID:       "python_web_frameworks",
					Type:     "single_choice",
					Question: "Python skills noted! Any web framework experience?",
					Options: []string{
						"Django (batteries included)",
						"Flask (minimalist)",
						"FastAPI (modern async)",
						"Just pure Python scripts",
					},
					Required:   true,
					FollowupTo: "technical_skills",
				}
			}
		}

	case "experience_level":
		if ans.Contains("Senior") || ans.Contains("Lead") || ans.Contains("Principal") {
			return &catalog.Question{
				ID:       "leadership_experience",
				Type:     "multi_select",
				Question: "Experience like that deserves some leadership questions. What's your vibe?",
				Options: []string{
					"I've led teams directly",
					"I mentor junior devs",
					"I architect systems",
					"I make the big decisions",
					"I just want to code in peace",
				},
				Required:   true,
				FollowupTo: "experience_level",
			}
		}
	}

	return nil
}
