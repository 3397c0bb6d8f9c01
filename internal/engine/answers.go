package engine

import (
	"encoding/json"
	"fmt"
)

// Question ids the rule sets reference. The questionnaire UI owns the full set;
// unknown ids are carried through untouched.
const (
	QAgeRange         = "age-range"
	QPrimaryConcern   = "primary-concern"
	QNoticedWhen      = "noticed-when"
	QAffectedAreas    = "affected-areas"
	QHairBehavior     = "shedding-vs-breakage"
	QLengthComparison = "length-distribution"
	QProtectiveStyles = "protective-styles-often"
	QCoveredHair      = "covered-hair-effects"
	QSleepBonnet      = "sleep-bonnet"
	QScalpIssues      = "scalp-issues-detailed"
	QWashFrequency    = "wash-frequency"
	QLifeEvents       = "life-events-2years"
	QFamilyHistory    = "family-history-detailed"
	QConditions       = "diagnosed-conditions"
	QPrimaryGoal      = "primary-goal"
)

type valueKind int

const (
	kindUnanswered valueKind = iota
	kindSingle
	kindMulti
)

// Value is one questionnaire answer: a single choice, a multi choice, or
// unanswered. The zero value is unanswered.
type Value struct {
	kind   valueKind
	single string
	multi  []string
}

// Single wraps a single-choice answer.
func Single(s string) Value {
	return Value{kind: kindSingle, single: s}
}

// Multi wraps a multi-choice answer.
func Multi(items ...string) Value {
	return Value{kind: kindMulti, multi: items}
}

// Str returns the single-choice text, or "" when the answer is absent or a list.
func (v Value) Str() string {
	if v.kind != kindSingle {
		return ""
	}
	return v.single
}

// List returns the multi-choice entries, or nil when the answer is absent or a
// single value.
func (v Value) List() []string {
	if v.kind != kindMulti {
		return nil
	}
	return v.multi
}

// Answered reports whether any value was given.
func (v Value) Answered() bool {
	return v.kind != kindUnanswered
}

// UnmarshalJSON accepts the questionnaire wire shape: string, array of strings,
// or null. Anything else is a contract violation.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Value{}
		return nil
	case string:
		*v = Single(t)
		return nil
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("answer array entry must be a string, got %T", item)
			}
			items = append(items, s)
		}
		*v = Multi(items...)
		return nil
	default:
		return fmt.Errorf("answer must be string, string array or null, got %T", raw)
	}
}

// MarshalJSON emits the wire shape the questionnaire uses.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindSingle:
		return json.Marshal(v.single)
	case kindMulti:
		if v.multi == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.multi)
	default:
		return []byte("null"), nil
	}
}

// Answers maps question ids to values. Missing ids mean unanswered. The engine
// never mutates an Answers map.
type Answers map[string]Value

// Str returns the single-choice answer for id, tolerant of absence.
func (a Answers) Str(id string) string {
	return a[id].Str()
}

// List returns the multi-choice answer for id, tolerant of absence.
func (a Answers) List(id string) []string {
	return a[id].List()
}
