package assessment

import "strings"

// ContextualMessage returns the counselor-style lead-in shown before a
// question, empty for the very first question. questionNumber is 1-based.
func ContextualMessage(questionID string, questionNumber, totalQuestions int) string {
	if questionNumber <= 1 || totalQuestions <= 0 {
		return ""
	}
	progress := float64(questionNumber) / float64(totalQuestions) * 100

	switch {
	case progress <= 25:
		switch questionID {
		case "energy_source":
			return "Great start! Now I want to understand something deeper about you, where you get your energy from. This tells me a lot about your work style."
		case "decision_making":
			return "Interesting! Let's dive deeper. When you face a big decision, what's your process? This helps me understand how you think."
		case "conflict_style":
			return "I'm getting a good picture of you. Now, let's talk about how you handle disagreements. This is crucial for finding the right team culture."
		case "stress_response":
			return "Everyone handles pressure differently. When everything's on fire, what's your go-to move? This helps me understand your resilience."
		case "work_philosophy":
			return "We're getting somewhere. What's your core philosophy when it comes to work? This is about what drives you beyond the paycheck."
		}
	case progress <= 50:
		switch questionID {
		case "problem_approach":
			return "You're doing great. Now, when you encounter a complex problem, what's your first instinct? I want to understand your problem-solving style."
		case "ideal_team_size":
			return "Let's talk about your ideal team. How many people are in your perfect squad? This helps me match you with the right company culture."
		case "work_pace":
			return "What kind of work pace makes you thrive? Some people love the chaos, others need structure. Where do you fall?"
		case "primary_motivation":
			return "Beyond a paycheck, what truly motivates you in a role? This is about finding work that actually matters to you."
		case "imposter_syndrome":
			return "Be honest with me, how often do you feel like an imposter? This is super common, and I want to understand how it affects you."
		}
	case progress <= 75:
		switch questionID {
		case "code_review_scenario":
			return "We're in the home stretch. Let's talk about a real scenario: your code gets heavily criticized in a review. How do you react?"
		case "deadline_scenario":
			return "Almost there! Here's another scenario: a critical deadline is approaching and you're behind. What's your move?"
		case "biggest_fear":
			return "Let's get real for a moment. What's your biggest career fear? Understanding this helps me find opportunities that address it."
		case "deal_breakers":
			return "What are your absolute deal-breakers in a job or company? These are non-negotiables, and I need to know them."
		case "coffee_vs_tea":
			return "Alright, let's lighten things up. Quick one: Coffee or Tea? (This actually tells me about your work style preferences!)"
		}
	default:
		if questionID == "tabs_vs_spaces" {
			return "We're almost done! The age-old debate: Tabs or Spaces? (I'm not judging... much.)"
		}
	}

	// Fall back to category phrasing inferred from the question id.
	switch {
	case strings.Contains(questionID, "energy") || strings.Contains(questionID, "source"):
		return "Let's talk about what energizes you. This is important for finding the right work environment."
	case strings.Contains(questionID, "decision") || strings.Contains(questionID, "making"):
		return "I want to understand how you make decisions. This helps me see your thinking process."
	case strings.Contains(questionID, "conflict") || strings.Contains(questionID, "disagreement"):
		return "How you handle conflict says a lot about your communication style. Let's explore this."
	case strings.Contains(questionID, "stress") || strings.Contains(questionID, "pressure"):
		return "Everyone handles stress differently. I want to understand your approach."
	case strings.Contains(questionID, "philosophy") || strings.Contains(questionID, "values"):
		return "What drives you beyond the technical work? Let's talk about your values."
	case strings.Contains(questionID, "team") || strings.Contains(questionID, "collaboration"):
		return "Team dynamics matter. Let's understand your ideal working environment."
	case strings.Contains(questionID, "motivation") || strings.Contains(questionID, "drive"):
		return "What gets you excited about work? This is about finding roles that align with your passions."
	case strings.Contains(questionID, "fear") || strings.Contains(questionID, "worry"):
		return "Let's be honest about what worries you. Understanding fears helps me find opportunities that address them."
	case strings.Contains(questionID, "deal") || strings.Contains(questionID, "breaker"):
		return "What are your non-negotiables? These are crucial for finding the right fit."
	case strings.Contains(questionID, "scenario") || strings.Contains(questionID, "situation"):
		return "Let's talk about a real scenario. How would you handle this situation?"
	}

	if questionNumber < totalQuestions/2 {
		return "Great progress! Let's continue."
	}
	return "We're getting close to the end. Just a few more questions."
}

// EncouragementMessage returns the progress-banded cheer for a question
// position. questionNumber is 1-based.
func EncouragementMessage(questionNumber, totalQuestions int) string {
	if totalQuestions <= 0 {
		return ""
	}
	progress := float64(questionNumber) / float64(totalQuestions) * 100
	switch {
	case progress <= 20:
		return "You're doing great! These early questions help me understand the foundation of who you are."
	case progress <= 40:
		return "Keep going! I'm getting a really clear picture of your work style and preferences."
	case progress <= 60:
		return "Halfway there! Your answers are helping me build a comprehensive profile."
	case progress <= 80:
		return "Almost done! These final questions will help me fine-tune your perfect matches."
	default:
		return "Final stretch! You're almost there. These last questions are crucial for accuracy."
	}
}

// Acknowledgment returns a brief reaction to an answer, empty when the
// answer doesn't warrant one. Only a few questions get acknowledgments to
// keep the conversation from feeling canned.
func Acknowledgment(questionID string, ans Answer) string {
	switch questionID {
	case "career_interests":
		switch {
		case ans.Contains("Frontend"):
			return "Frontend development, nice! You're into the user experience side of things."
		case ans.Contains("Backend"):
			return "Backend development, you're the one building the systems that power everything."
		case ans.Contains("Full Stack"):
			return "Full stack, you like seeing the whole picture. That's valuable."
		}
	case "energy_source":
		switch {
		case ans.ContainsFold("people") || ans.ContainsFold("collaborat"):
			return "You get energy from people, that's great for team environments."
		case ans.ContainsFold("solo") || ans.ContainsFold("quiet"):
			return "You recharge with solo time, that's important for finding the right work setup."
		case ans.ContainsFold("mix"):
			return "You need both, that's actually really balanced and adaptable."
		}
	case "decision_making":
		switch {
		case ans.ContainsFold("data") || ans.ContainsFold("analyze"):
			return "You're analytical, you like to think things through carefully."
		case ans.ContainsFold("gut") || ans.ContainsFold("intuition"):
			return "You trust your intuition, that's a valuable skill in fast-moving environments."
		case ans.ContainsFold("talk") || ans.ContainsFold("advisor"):
			return "You seek input from others, that shows strong collaboration skills."
		}
	}
	return ""
}
