// Package matching implements the job match scorer: skill and experience
// matching, culture keyword analysis, growth signal evaluation, market
// intelligence, and the negotiation playbook derived from them.
package matching

import (
	"fmt"
	"strings"
)

// cultureOrder fixes iteration order over culture types so derived lists
// are stable.
var cultureOrder = []string{"fast_paced", "innovative", "collaborative", "structured", "growth_focused"}

// defaultCulturePreferences stands in when the user skipped the culture
// question.
var defaultCulturePreferences = []string{"fast_paced", "innovative", "collaborative"}

// AnalyzeCulture scans a job description for culture keywords and reports
// how strongly each culture type signals: "high" with two or more keyword
// hits, "medium" with one, absent with none.
func AnalyzeCulture(description string, keywords map[string][]string) map[string]string {
	lower := strings.ToLower(description)
	out := make(map[string]string)
	for cultureType, words := range keywords {
		hits := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				hits++
			}
		}
		switch {
		case hits >= 2:
			out[cultureType] = "high"
		case hits == 1:
			out[cultureType] = "medium"
		}
	}
	return out
}

// CultureFit is the compatibility verdict between user culture preferences
// and a job's detected culture.
type CultureFit struct {
	Score      float64  `json:"score"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	Watchouts  []string `json:"watchouts"`
}

// DeriveCultureFit scores preference overlap against the culture analysis.
// The score starts at 60, moves 10 up per overlap and 5 down per gap, and
// clamps to [30, 95].
func DeriveCultureFit(preferences []string, analysis map[string]string) CultureFit {
	if len(preferences) == 0 {
		preferences = defaultCulturePreferences
	}

	prefSet := make(map[string]bool, len(preferences))
	for _, p := range preferences {
		prefSet[p] = true
	}

	var overlaps, gaps []string
	for _, ct := range cultureOrder {
		if _, detected := analysis[ct]; detected && prefSet[ct] {
			overlaps = append(overlaps, ct)
		}
	}
	for _, p := range preferences {
		if _, detected := analysis[p]; !detected {
			gaps = append(gaps, p)
		}
	}

	score := clamp(60+float64(len(overlaps))*10-float64(len(gaps))*5, 30, 95)

	summary := "Probe during interviews"
	if score >= 75 {
		summary = "Aligned"
	} else if score >= 55 {
		summary = "Worth a conversation"
	}

	var highlights, watchouts []string
	for _, ct := range overlaps {
		highlights = append(highlights, fmt.Sprintf("Company leans %s", strings.ReplaceAll(ct, "_", " ")))
	}
	for _, g := range gaps {
		watchouts = append(watchouts, fmt.Sprintf("Culture may be lighter on %s", strings.ReplaceAll(g, "_", " ")))
	}

	return CultureFit{
		Score:      round1(score),
		Summary:    summary,
		Highlights: capList(highlights, 3),
		Watchouts:  capList(watchouts, 3),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func capList(ss []string, n int) []string {
	if len(ss) > n {
		return ss[:n]
	}
	return ss
}
