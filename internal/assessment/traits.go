package assessment

import (
	"sort"
)

// Trait axis names. The scorer only ever raises a score, so replaying the
// same answers in any order converges to the same state.
var (
	personalityTraits = []string{
		"problem_solver", "collaborative", "innovative", "detail_oriented",
		"leadership", "autonomous", "communication", "adaptability",
		"creativity", "analytical",
	}
	workStyleAxes = []string{
		"prefers_structure", "thrives_in_chaos", "early_adopter", "prefers_stable",
		"team_player", "independent", "fast_paced", "methodical",
	}
	cultureIndicators = []string{
		"startup", "enterprise", "remote_first", "office_collaboration",
		"innovation_driven", "process_driven",
	}
)

// TraitState is the per-user scoring state, serialized into the session
// store between answers.
type TraitState struct {
	Traits     map[string]int `json:"traits"`
	WorkStyle  map[string]int `json:"work_style"`
	CultureFit map[string]int `json:"culture_fit"`
}

// NewTraitState seeds every axis at zero.
func NewTraitState() *TraitState {
	s := &TraitState{
		Traits:     make(map[string]int, len(personalityTraits)),
		WorkStyle:  make(map[string]int, len(workStyleAxes)),
		CultureFit: make(map[string]int, len(cultureIndicators)),
	}
	for _, t := range personalityTraits {
		s.Traits[t] = 0
	}
	for _, w := range workStyleAxes {
		s.WorkStyle[w] = 0
	}
	for _, c := range cultureIndicators {
		s.CultureFit[c] = 0
	}
	return s
}

// Normalize re-seeds any axis lost in serialization so lookups never miss.
func (s *TraitState) Normalize() {
	if s.Traits == nil {
		s.Traits = make(map[string]int, len(personalityTraits))
	}
	if s.WorkStyle == nil {
		s.WorkStyle = make(map[string]int, len(workStyleAxes))
	}
	if s.CultureFit == nil {
		s.CultureFit = make(map[string]int, len(cultureIndicators))
	}
	for _, t := range personalityTraits {
		if _, ok := s.Traits[t]; !ok {
			s.Traits[t] = 0
		}
	}
	for _, w := range workStyleAxes {
		if _, ok := s.WorkStyle[w]; !ok {
			s.WorkStyle[w] = 0
		}
	}
	for _, c := range cultureIndicators {
		if _, ok := s.CultureFit[c]; !ok {
			s.CultureFit[c] = 0
		}
	}
}

func raise(m map[string]int, key string, v int) {
	if _, ok := m[key]; !ok {
		return
	}
	if v > m[key] {
		m[key] = v
	}
}

// Apply scores one answer against the per-question rule tables and returns
// the insights it produced. Scores only move upward.
func (s *TraitState) Apply(questionID string, ans Answer) []string {
	var insights []string
	trait := func(k string, v int) { raise(s.Traits, k, v) }
	style := func(k string, v int) { raise(s.WorkStyle, k, v) }
	culture := func(k string, v int) { raise(s.CultureFit, k, v) }
	note := func(msg string) { insights = append(insights, msg) }

	switch questionID {
	case "career_interests":
		if ans.Contains("Frontend Developer") {
			trait("creativity", 8)
			trait("detail_oriented", 7)
			style("early_adopter", 9)
			note("Creative problem-solver, you enjoy building visual experiences")
		}
		if ans.Contains("Backend Developer") {
			trait("analytical", 9)
			trait("problem_solver", 8)
			style("methodical", 7)
			note("Systems thinker, you love solving complex problems")
		}
		if ans.Contains("Full Stack Developer") {
			trait("adaptability", 9)
			trait("problem_solver", 9)
			style("thrives_in_chaos", 8)
			note("Versatile builder, you can handle anything thrown at you")
		}
		if ans.Contains("DevOps Engineer") {
			trait("analytical", 9)
			trait("autonomous", 8)
			style("methodical", 8)
			culture("innovation_driven", 9)
			note("Automation wizard, you optimize everything")
		}
		if ans.Contains("Data Scientist") {
			trait("analytical", 10)
			trait("detail_oriented", 9)
			style("methodical", 9)
			note("Data-driven decision maker, you find patterns others miss")
		}

	case "experience_level":
		if ans.Contains("Senior") || ans.Contains("Lead") {
			trait("leadership", 9)
			trait("communication", 8)
			style("independent", 7)
			note("Leadership potential, you're ready to guide others")
		} else if ans.Contains("Entry") {
			trait("adaptability", 8)
			style("early_adopter", 8)
			note("Growth mindset, you're eager to learn and adapt")
		}

	case "technical_skills":
		skills := populatedSkills(ans.AsSkillMap())
		advanced := 0
		for _, prof := range skills {
			if prof == "Advanced" || prof == "Expert" {
				advanced++
			}
		}
		if advanced >= 5 {
			trait("detail_oriented", 9)
			trait("problem_solver", 9)
			note("Deep expertise, you've mastered multiple technologies")
		}
		if hasAny(skills, "React", "Vue.js") {
			trait("creativity", 7)
			style("early_adopter", 8)
		}
		if hasAny(skills, "Python", "Node.js") {
			trait("analytical", 8)
			trait("problem_solver", 8)
		}
		if hasAny(skills, "AWS", "Docker") {
			trait("innovative", 8)
			culture("innovation_driven", 9)
			note("Cloud-native thinker, you're ahead of the curve")
		}

	case "soft_skills":
		if ans.Contains("Leadership") {
			trait("leadership", 9)
			trait("communication", 8)
			note("Natural leader, you inspire and guide teams")
		}
		if ans.Contains("Communication") {
			trait("communication", 9)
			style("team_player", 8)
			note("Strong communicator, you bridge gaps between teams")
		}
		if ans.Contains("Problem Solving") {
			trait("problem_solver", 9)
			trait("analytical", 8)
			note("Problem-solving genius, you see solutions others don't")
		}
		if ans.Contains("Creativity") {
			trait("creativity", 9)
			trait("innovative", 8)
			note("Creative innovator, you think outside the box")
		}

	case "time_availability":
		hours, ok := ans.AsNumber()
		if !ok {
			hours = 5
		}
		switch {
		case hours >= 7:
			trait("autonomous", 9)
			style("fast_paced", 8)
			note("High commitment, you're serious about growth")
		case hours >= 5:
			trait("adaptability", 8)
			note("Balanced learner, you manage time effectively")
		default:
			style("prefers_stable", 7)
			note("Focused approach, quality over quantity")
		}

	case "learning_preferences":
		if ans.Contains("Online Courses") {
			trait("autonomous", 8)
			style("independent", 7)
			note("Self-directed learner, you take initiative")
		}
		if ans.Contains("Mentorship") {
			trait("collaborative", 9)
			style("team_player", 8)
			note("Collaborative learner, you value connections")
		}
		if ans.Contains("Bootcamps") {
			style("fast_paced", 9)
			trait("adaptability", 8)
			note("Intensive learner, you thrive under pressure")
		}

	case "location_preferences":
		if ans.Contains("Remote") {
			trait("autonomous", 9)
			culture("remote_first", 10)
			style("independent", 8)
			note("Remote-first, you value flexibility and autonomy")
		}
		if ans.Contains("On-site") {
			trait("collaborative", 8)
			culture("office_collaboration", 9)
			style("team_player", 8)
			note("Office collaborator, you thrive in person-to-person interaction")
		}
		if ans.Contains("Hybrid") {
			trait("adaptability", 9)
			note("Flexible worker, you adapt to different work styles")
		}

	case "energy_source":
		if ans.Contains("Being around people") {
			trait("collaborative", 9)
			trait("communication", 8)
			note("Extraverted, you get energy from people")
		} else if ans.Contains("Solo deep work") {
			trait("autonomous", 9)
			style("independent", 9)
			note("Introverted, you recharge with solo time")
		} else if ans.ContainsFold("mix") {
			trait("adaptability", 9)
			note("Ambivert, you need both social and solo time")
		}

	case "decision_making":
		if ans.Contains("Analyze all the data") {
			trait("analytical", 9)
			style("methodical", 8)
			note("Data-driven decision maker")
		} else if ans.ContainsFold("gut") {
			trait("creativity", 8)
			style("fast_paced", 7)
			note("Intuitive decision maker, you trust your instincts")
		} else if ans.Contains("Talk it through") {
			trait("collaborative", 9)
			trait("communication", 8)
			note("Collaborative decision maker")
		}

	case "conflict_style":
		if ans.Contains("Call it out immediately") {
			trait("communication", 9)
			note("Direct communicator, you address issues head-on")
		} else if ans.Contains("Pull them aside privately") {
			trait("collaborative", 9)
			note("Diplomatic, you handle conflict with care")
		} else if ans.Contains("Fix it yourself") {
			trait("problem_solver", 9)
			trait("autonomous", 8)
			note("Problem solver, you take action")
		}

	case "stress_response":
		if ans.ContainsFold("hyper-focused") {
			trait("problem_solver", 9)
			style("fast_paced", 8)
			note("High performer under pressure")
		} else if ans.ContainsFold("delegate") {
			trait("leadership", 9)
			trait("communication", 8)
			note("Natural leader, you coordinate under pressure")
		} else if ans.ContainsFold("walk") || ans.ContainsFold("breathe") {
			trait("adaptability", 8)
			note("Calm under pressure, you manage stress well")
		}

	case "work_philosophy":
		if ans.ContainsFold("all in") {
			style("fast_paced", 9)
			note("High commitment, you're all in")
		} else if ans.ContainsFold("smart, not hard") {
			trait("analytical", 8)
			style("methodical", 8)
			note("Efficiency-focused, you work smart")
		} else if ans.ContainsFold("balance") {
			note("Work-life balance advocate")
		}

	case "problem_approach":
		if ans.Contains("Break it down") {
			trait("analytical", 9)
			style("methodical", 9)
			note("Systematic problem solver")
		} else if ans.Contains("Jump in and start coding") {
			trait("creativity", 8)
			style("fast_paced", 8)
			note("Action-oriented, you learn by doing")
		} else if ans.Contains("Research") {
			trait("analytical", 8)
			note("Research-first approach")
		}

	case "ideal_team_size":
		if ans.Contains("Solo") {
			trait("autonomous", 10)
			style("independent", 10)
			note("Solo worker, you do your best work alone")
		} else if ans.Contains("2-3") {
			trait("collaborative", 8)
			note("Small team preference, intimate collaboration")
		} else if ans.Contains("10+") {
			trait("collaborative", 9)
			note("Large team lover, you thrive in groups")
		}

	case "work_pace":
		if ans.Contains("Fast-paced") {
			style("fast_paced", 10)
			style("thrives_in_chaos", 8)
			note("Fast-paced environment, you move quickly")
		} else if ans.Contains("Steady") {
			style("methodical", 9)
			style("prefers_structure", 8)
			note("Steady pace, quality over speed")
		} else if ans.Contains("Chaotic") {
			style("thrives_in_chaos", 10)
			trait("adaptability", 9)
			note("Organized chaos, you thrive in it")
		}

	case "primary_motivation":
		if ans.Contains("Money") {
			note("Financial security is your driver")
		} else if ans.Contains("Impact") {
			trait("problem_solver", 8)
			note("Impact-driven, you want to make a difference")
		} else if ans.Contains("Learning") {
			trait("adaptability", 9)
			note("Growth-oriented, you value learning")
		} else if ans.Contains("Freedom") {
			trait("autonomous", 9)
			note("Autonomy seeker, freedom is key")
		}

	case "imposter_syndrome":
		if ans.Contains("Never") {
			note("High confidence, you know your worth")
		} else if ans.Contains("Sometimes") {
			note("Self-aware, you recognize it but push through")
		} else if ans.Contains("Often") || ans.Contains("Constantly") {
			note("Self-reflective, you're aware of your growth areas")
		}

	case "code_review_scenario":
		if ans.Contains("Argue your case") {
			trait("communication", 8)
			note("You stand up for your work")
		} else if ans.Contains("Accept the feedback") {
			trait("collaborative", 8)
			note("You're open to feedback")
		} else if ans.Contains("Request a discussion") {
			trait("communication", 9)
			note("You seek understanding")
		}

	case "deadline_scenario":
		if ans.Contains("Work nights and weekends") {
			style("fast_paced", 9)
			note("High commitment, you'll do what it takes")
		} else if ans.Contains("Push back") {
			trait("communication", 9)
			note("You set boundaries and communicate")
		} else if ans.Contains("Ship a minimal version") {
			trait("problem_solver", 9)
			note("Pragmatic, you ship what works")
		}

	case "biggest_fear":
		if ans.ContainsFold("stuck") {
			trait("adaptability", 8)
			note("Growth-focused, you fear stagnation")
		} else if ans.ContainsFold("good enough") {
			note("Self-aware, you're aware of imposter feelings")
		} else if ans.ContainsFold("burning out") {
			note("Balance-conscious, you protect your energy")
		}

	case "deal_breakers":
		if ans.Contains("Toxic culture") {
			note("You won't tolerate toxic environments")
		}
		if ans.Contains("No work-life balance") {
			note("Work-life balance is non-negotiable")
		}
		if ans.Contains("No growth opportunities") {
			trait("adaptability", 8)
			note("Growth opportunities are essential")
		}

	case "coffee_vs_tea":
		if ans.Contains("Coffee") {
			style("fast_paced", 7)
			note("Coffee person, you're wired for productivity")
		} else if ans.Contains("Tea") {
			style("methodical", 7)
			note("Tea person, you prefer a calmer approach")
		}

	case "tabs_vs_spaces":
		if ans.Contains("Tabs") {
			trait("problem_solver", 7)
			note("You have strong opinions (tabs are correct)")
		} else if ans.Contains("Spaces") {
			trait("detail_oriented", 7)
			note("You have strong opinions (spaces are correct)")
		} else if ans.ContainsFold("project uses") {
			trait("adaptability", 8)
			note("Pragmatic, you adapt to team standards")
		}
	}

	return insights
}

func populatedSkills(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for skill, prof := range m {
		if prof == "" || prof == "None" {
			continue
		}
		out[skill] = prof
	}
	return out
}

func hasAny(m map[string]string, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// AxisScore is one (axis, score) pair in a ranked projection.
type AxisScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// PersonalityProfile is the projection over personality traits.
type PersonalityProfile struct {
	Type         string      `json:"type"`
	TopTraits    []AxisScore `json:"top_traits"`
	AverageScore float64     `json:"average_score"`
	Strengths    []string    `json:"strengths"`
}

// WorkStyleProfile is the projection over work style axes.
type WorkStyleProfile struct {
	Type        string      `json:"type"`
	TopStyles   []AxisScore `json:"top_styles"`
	Preferences []string    `json:"preferences"`
}

// CultureProfile is the projection over culture fit indicators.
type CultureProfile struct {
	Type       string      `json:"type"`
	TopMatches []AxisScore `json:"top_cultures"`
	BestFits   []string    `json:"best_fits"`
}

// FullProfile bundles every projection with the raw state, returned once
// the assessment completes.
type FullProfile struct {
	Personality   PersonalityProfile `json:"personality"`
	WorkStyle     WorkStyleProfile   `json:"work_style"`
	CultureFit    CultureProfile     `json:"culture_fit"`
	RawTraits     map[string]int     `json:"raw_traits"`
	RawWorkStyle  map[string]int     `json:"raw_work_style"`
	RawCultureFit map[string]int     `json:"raw_culture_fit"`
}

// topN ranks a map descending by score with name as the tiebreak, so the
// projection is stable across runs.
func topN(m map[string]int, n int) []AxisScore {
	ranked := make([]AxisScore, 0, len(m))
	for k, v := range m {
		ranked = append(ranked, AxisScore{Name: k, Score: v})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func strongAxes(top []AxisScore, threshold int) []string {
	var out []string
	for _, a := range top {
		if a.Score >= threshold {
			out = append(out, a.Name)
		}
	}
	return out
}

// Personality projects the current trait scores into a typed summary.
func (s *TraitState) Personality() PersonalityProfile {
	top := topN(s.Traits, 3)
	sum := 0
	for _, v := range s.Traits {
		sum += v
	}
	avg := 0.0
	if len(s.Traits) > 0 {
		avg = float64(sum) / float64(len(s.Traits))
	}
	return PersonalityProfile{
		Type:         s.personalityType(),
		TopTraits:    top,
		AverageScore: avg,
		Strengths:    strongAxes(top, 7),
	}
}

func (s *TraitState) personalityType() string {
	t := s.Traits
	switch {
	case t["problem_solver"] >= 8 && t["analytical"] >= 8:
		return "Analytical Problem Solver"
	case t["creativity"] >= 8 && t["innovative"] >= 8:
		return "Creative Innovator"
	case t["leadership"] >= 8 && t["communication"] >= 8:
		return "Natural Leader"
	case t["autonomous"] >= 8 && t["adaptability"] >= 8:
		return "Independent Adaptor"
	case t["collaborative"] >= 8 && t["communication"] >= 8:
		return "Collaborative Communicator"
	default:
		return "Balanced Professional"
	}
}

// WorkStyleSummary projects the work style axes into a typed summary.
func (s *TraitState) WorkStyleSummary() WorkStyleProfile {
	top := topN(s.WorkStyle, 3)
	return WorkStyleProfile{
		Type:        s.workStyleType(),
		TopStyles:   top,
		Preferences: strongAxes(top, 7),
	}
}

func (s *TraitState) workStyleType() string {
	w := s.WorkStyle
	switch {
	case w["fast_paced"] >= 8 && w["thrives_in_chaos"] >= 7:
		return "Fast-Paced Chaos Navigator"
	case w["methodical"] >= 8 && w["prefers_structure"] >= 7:
		return "Methodical Planner"
	case w["team_player"] >= 8:
		return "Collaborative Team Player"
	case w["independent"] >= 8:
		return "Independent Operator"
	default:
		return "Adaptable Professional"
	}
}

// CultureSummary projects the culture indicators into a typed summary.
func (s *TraitState) CultureSummary() CultureProfile {
	top := topN(s.CultureFit, 3)
	return CultureProfile{
		Type:       s.cultureType(),
		TopMatches: top,
		BestFits:   strongAxes(top, 7),
	}
}

func (s *TraitState) cultureType() string {
	c := s.CultureFit
	switch {
	case c["startup"] >= 8:
		return "Startup Culture"
	case c["enterprise"] >= 8:
		return "Enterprise Culture"
	case c["remote_first"] >= 9:
		return "Remote-First Culture"
	case c["innovation_driven"] >= 8:
		return "Innovation-Driven Culture"
	default:
		return "Balanced Culture"
	}
}

// FullProfileSnapshot bundles every projection with copies of the raw maps.
func (s *TraitState) FullProfileSnapshot() FullProfile {
	return FullProfile{
		Personality:   s.Personality(),
		WorkStyle:     s.WorkStyleSummary(),
		CultureFit:    s.CultureSummary(),
		RawTraits:     copyScores(s.Traits),
		RawWorkStyle:  copyScores(s.WorkStyle),
		RawCultureFit: copyScores(s.CultureFit),
	}
}

func copyScores(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
