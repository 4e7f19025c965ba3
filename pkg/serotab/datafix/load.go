package datafix

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ruleFile is the YAML layout of a rule file:
//
//	antigen:
//	  - name: strip-trailing-space
//	    field: name
//	    pattern: '\s+$'
//	    replace: ''
//	serum: [...]
//	titer: [...]
type ruleFile struct {
	Antigen []ruleSpec `yaml:"antigen"`
	Serum   []ruleSpec `yaml:"serum"`
	Titer   []ruleSpec `yaml:"titer"`
}

type ruleSpec struct {
	Name    string `yaml:"name"`
	Field   string `yaml:"field"`
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}

// Load reads a YAML rule file.
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rules %q: %w", path, err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse rules %q: %w", path, err)
	}
	return rs, nil
}

// Parse builds a RuleSet from YAML. Titer rules may omit the field.
func Parse(data []byte) (*RuleSet, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	antigen, err := compile("antigen", file.Antigen, "")
	if err != nil {
		return nil, err
	}
	serum, err := compile("serum", file.Serum, "")
	if err != nil {
		return nil, err
	}
	titer, err := compile("titer", file.Titer, FieldTiter)
	if err != nil {
		return nil, err
	}
	return NewRuleSet(antigen, serum, titer)
}

func compile(kind string, specs []ruleSpec, defaultField string) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for i, spec := range specs {
		if spec.Pattern == "" {
			return nil, fmt.Errorf("%s rule %d (%s): empty pattern", kind, i, spec.Name)
		}
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%s rule %d (%s): %w", kind, i, spec.Name, err)
		}
		field := spec.Field
		if field == "" {
			field = defaultField
		}
		rules = append(rules, Rule{Name: spec.Name, Field: field, Pattern: re, Replace: spec.Replace})
	}
	return rules, nil
}
