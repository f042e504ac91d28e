// Package assessment implements the answer accumulator and the real-time
// trait scorer: tagged answer values, per-question trait rules, dynamic
// follow-up questions, and the conversational messages sent between
// questions.
package assessment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/karyahq/compass/internal/catalog"
)

// Kind discriminates the shapes an answer value can take on the wire.
type Kind int

const (
	KindText Kind = iota
	KindList
	KindSkillMap
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindSkillMap:
		return "skill_map"
	case KindNumber:
		return "number"
	}
	return "unknown"
}

// Answer is a tagged union over the four answer shapes. The zero value is
// an empty text answer.
type Answer struct {
	kind     Kind
	text     string
	list     []string
	skillMap map[string]string
	number   float64
}

func Text(s string) Answer                { return Answer{kind: KindText, text: s} }
func List(ss []string) Answer             { return Answer{kind: KindList, list: ss} }
func SkillMap(m map[string]string) Answer { return Answer{kind: KindSkillMap, skillMap: m} }
func Number(n float64) Answer             { return Answer{kind: KindNumber, number: n} }

func (a Answer) Kind() Kind { return a.kind }

// AsText returns the text value. Numbers format as their decimal string so
// slider answers can flow through text-based rules.
func (a Answer) AsText() string {
	switch a.kind {
	case KindText:
		return a.text
	case KindNumber:
		return strconv.FormatFloat(a.number, 'f', -1, 64)
	}
	return ""
}

// AsList returns the selections of a multi-select answer. A text answer
// degrades to a one-element list so single and multi select rules compose.
func (a Answer) AsList() []string {
	switch a.kind {
	case KindList:
		return a.list
	case KindText:
		if a.text == "" {
			return nil
		}
		return []string{a.text}
	}
	return nil
}

// AsSkillMap returns the skill to proficiency mapping of a skill_selector
// answer, or nil for other kinds.
func (a Answer) AsSkillMap() map[string]string {
	if a.kind != KindSkillMap {
		return nil
	}
	return a.skillMap
}

// AsNumber returns the numeric value, coercing numeric text. The boolean
// reports whether a number could be produced.
func (a Answer) AsNumber() (float64, bool) {
	switch a.kind {
	case KindNumber:
		return a.number, true
	case KindText:
		n, err := strconv.ParseFloat(strings.TrimSpace(a.text), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Contains reports whether the answer mentions needle. Options carry
// descriptive suffixes, so matching is by substring: a list answer matches
// when any element contains needle, a text answer when the text does.
func (a Answer) Contains(needle string) bool {
	switch a.kind {
	case KindText:
		return strings.Contains(a.text, needle)
	case KindList:
		for _, v := range a.list {
			if strings.Contains(v, needle) {
				return true
			}
		}
	}
	return false
}

// ContainsFold is Contains with case-insensitive matching.
func (a Answer) ContainsFold(needle string) bool {
	needle = strings.ToLower(needle)
	switch a.kind {
	case KindText:
		return strings.Contains(strings.ToLower(a.text), needle)
	case KindList:
		for _, v := range a.list {
			if strings.Contains(strings.ToLower(v), needle) {
				return true
			}
		}
	}
	return false
}

// UnmarshalJSON infers the kind from the wire shape: string, number,
// string array, or string-to-string object.
func (a *Answer) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		*a = Text(v)
		return nil
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return err
		}
		*a = Number(n)
		return nil
	case []any:
		list := make([]string, 0, len(v))
		for _, el := range v {
			s, ok := el.(string)
			if !ok {
				return fmt.Errorf("answer: list elements must be strings, got %T", el)
			}
			list = append(list, s)
		}
		*a = List(list)
		return nil
	case map[string]any:
		m := make(map[string]string, len(v))
		for k, el := range v {
			s, ok := el.(string)
			if !ok {
				return fmt.Errorf("answer: map values must be strings, got %T for %q", el, k)
			}
			m[k] = s
		}
		*a = SkillMap(m)
		return nil
	case nil:
		*a = Answer{}
		return nil
	}
	return fmt.Errorf("answer: unsupported shape %T", raw)
}

// MarshalJSON writes the answer back in its original wire shape.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case KindText:
		return json.Marshal(a.text)
	case KindList:
		if a.list == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.list)
	case KindSkillMap:
		if a.skillMap == nil {
			return json.Marshal(map[string]string{})
		}
		return json.Marshal(a.skillMap)
	case KindNumber:
		return json.Marshal(a.number)
	}
	return json.Marshal(nil)
}

// ValidateFor checks the answer against the question's declared type and
// boundaries. Follow-up questions validate like their base type.
func (a Answer) ValidateFor(q catalog.Question) error {
	switch q.Type {
	case "single_choice":
		if a.kind != KindText {
			return fmt.Errorf("question %s expects a single choice, got %s", q.ID, a.kind)
		}
		if len(q.Options) > 0 && !oneOf(a.text, q.Options) {
			return fmt.Errorf("question %s: %q is not one of the options", q.ID, a.text)
		}
	case "multi_select":
		if a.kind != KindList {
			return fmt.Errorf("question %s expects a selection list, got %s", q.ID, a.kind)
		}
		if q.Required && len(a.list) == 0 {
			return fmt.Errorf("question %s requires at least one selection", q.ID)
		}
		if len(q.Options) > 0 {
			for _, v := range a.list {
				if !oneOf(v, q.Options) {
					return fmt.Errorf("question %s: %q is not one of the options", q.ID, v)
				}
			}
		}
	case "skill_selector":
		if a.kind != KindSkillMap {
			return fmt.Errorf("question %s expects a skill map, got %s", q.ID, a.kind)
		}
		for skill, prof := range a.skillMap {
			if len(q.Skills) > 0 && !oneOf(skill, q.Skills) {
				return fmt.Errorf("question %s: unknown skill %q", q.ID, skill)
			}
			if prof == "" || prof == "None" {
				continue
			}
			if len(q.ProficiencyLevels) > 0 && !oneOf(prof, q.ProficiencyLevels) {
				return fmt.Errorf("question %s: unknown proficiency %q for %q", q.ID, prof, skill)
			}
		}
	case "slider":
		n, ok := a.AsNumber()
		if !ok {
			return fmt.Errorf("question %s expects a number, got %s", q.ID, a.kind)
		}
		if q.Min != nil && n < float64(*q.Min) {
			return fmt.Errorf("question %s: %v below minimum %d", q.ID, n, *q.Min)
		}
		if q.Max != nil && n > float64(*q.Max) {
			return fmt.Errorf("question %s: %v above maximum %d", q.ID, n, *q.Max)
		}
	case "text":
		if a.kind != KindText {
			return fmt.Errorf("question %s expects text, got %s", q.ID, a.kind)
		}
		if q.Required && strings.TrimSpace(a.text) == "" {
			return fmt.Errorf("question %s requires a non-empty answer", q.ID)
		}
	}
	return nil
}

func oneOf(v string, opts []string) bool {
	for _, o := range opts {
		if v == o {
			return true
		}
	}
	return false
}

// Profile is the accumulated answer set keyed by question id.
type Profile map[string]Answer

// Strings returns the list form of an answer, nil when absent.
func (p Profile) Strings(questionID string) []string {
	return p[questionID].AsList()
}

// String returns the text form of an answer, "" when absent.
func (p Profile) String(questionID string) string {
	return p[questionID].AsText()
}

// Skills returns the populated proficiencies of a skill map answer,
// dropping empty and "None" entries.
func (p Profile) Skills(questionID string) map[string]string {
	raw := p[questionID].AsSkillMap()
	if raw == nil {
		return nil
	}
	out := make(map[string]string, len(raw))
	for skill, prof := range raw {
		if prof == "" || prof == "None" {
			continue
		}
		out[skill] = prof
	}
	return out
}

// Number returns the numeric form of an answer with a fallback.
func (p Profile) Number(questionID string, fallback float64) float64 {
	if n, ok := p[questionID].AsNumber(); ok {
		return n
	}
	return fallback
}
