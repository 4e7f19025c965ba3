// Package datafix corrects extracted antigen, serum and titer fields with
// ordered pattern rules.
//
// A RuleSet is built explicitly (usually from a YAML file) and handed to
// whatever consumes extracted fields; there is no process-wide rule list.
// Each Fix method tries its rules in order and stops at the first one that
// changes a value.
package datafix

import (
	"fmt"
	"regexp"
	"slices"
)

// Field names accepted in rules.
const (
	FieldName    = "name"
	FieldPassage = "passage"
	FieldDate    = "date"
	FieldSerumID = "serum_id"
	FieldTiter   = "titer"
)

// Rule rewrites one field. Pattern must match the field value; the value is
// replaced by the Replace template expanded with the match's groups ($1,
// ${name}). Matches anywhere in the value are replaced.
type Rule struct {
	Name    string
	Field   string
	Pattern *regexp.Regexp
	Replace string
}

// apply returns the rewritten value and whether it changed.
func (r Rule) apply(value string) (string, bool) {
	if !r.Pattern.MatchString(value) {
		return value, false
	}
	fixed := r.Pattern.ReplaceAllString(value, r.Replace)
	return fixed, fixed != value
}

// RuleSet holds the antigen, serum and titer rules, each in evaluation order.
type RuleSet struct {
	antigen []Rule
	serum   []Rule
	titer   []Rule
}

// Antigen is the set of antigen fields a rule may touch.
type Antigen struct {
	Name    string
	Passage string
	Date    string
}

// Serum is the set of serum fields a rule may touch.
type Serum struct {
	Name    string
	Passage string
	SerumID string
}

// NewRuleSet validates and groups rules. Rules keep their relative order.
func NewRuleSet(antigen, serum, titer []Rule) (*RuleSet, error) {
	check := func(kind string, rules []Rule, fields ...string) error {
		for i, r := range rules {
			if r.Pattern == nil {
				return fmt.Errorf("%s rule %d (%s): missing pattern", kind, i, r.Name)
			}
			if !slices.Contains(fields, r.Field) {
				return fmt.Errorf("%s rule %d (%s): field %q not one of %v", kind, i, r.Name, r.Field, fields)
			}
		}
		return nil
	}
	if err := check("antigen", antigen, FieldName, FieldPassage, FieldDate); err != nil {
		return nil, err
	}
	if err := check("serum", serum, FieldName, FieldPassage, FieldSerumID); err != nil {
		return nil, err
	}
	if err := check("titer", titer, FieldTiter); err != nil {
		return nil, err
	}
	return &RuleSet{antigen: antigen, serum: serum, titer: titer}, nil
}

// Len returns the total number of rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.antigen) + len(rs.serum) + len(rs.titer)
}

// FixAntigen applies antigen rules. A nil RuleSet changes nothing.
func (rs *RuleSet) FixAntigen(a Antigen) (Antigen, bool) {
	if rs == nil {
		return a, false
	}
	for _, r := range rs.antigen {
		var target *string
		switch r.Field {
		case FieldName:
			target = &a.Name
		case FieldPassage:
			target = &a.Passage
		case FieldDate:
			target = &a.Date
		}
		if fixed, changed := r.apply(*target); changed {
			*target = fixed
			return a, true
		}
	}
	return a, false
}

// FixSerum applies serum rules. A nil RuleSet changes nothing.
func (rs *RuleSet) FixSerum(s Serum) (Serum, bool) {
	if rs == nil {
		return s, false
	}
	for _, r := range rs.serum {
		var target *string
		switch r.Field {
		case FieldName:
			target = &s.Name
		case FieldPassage:
			target = &s.Passage
		case FieldSerumID:
			target = &s.SerumID
		}
		if fixed, changed := r.apply(*target); changed {
			*target = fixed
			return s, true
		}
	}
	return s, false
}

// FixTiter applies titer rules. A nil RuleSet changes nothing.
func (rs *RuleSet) FixTiter(titer string) (string, bool) {
	if rs == nil {
		return titer, false
	}
	for _, r := range rs.titer {
		if fixed, changed := r.apply(titer); changed {
			return fixed, true
		}
	}
	return titer, false
}
