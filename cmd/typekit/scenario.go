package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/typekit/internal/config"
	"github.com/funvibe/typekit/pkg/typekit"
)

// Scenario declares enums, classes and type checks to evaluate against
// a fresh registry.
type Scenario struct {
	// Extends names another scenario file, relative to this one, whose
	// declarations fill in whatever this file leaves empty. Maps merge
	// key by key with the extending file winning; lists replace
	// wholesale.
	Extends string                    `yaml:"extends,omitempty"`
	Enums   map[string]map[string]any `yaml:"enums,omitempty"`
	Classes []ClassDecl               `yaml:"classes,omitempty"`
	Checks  []Check                   `yaml:"checks,omitempty"`
}

type ClassDecl struct {
	Name    string         `yaml:"name"`
	Parents []string       `yaml:"parents,omitempty"`
	Fields  map[string]any `yaml:"fields,omitempty"`
}

// Check is one type query. Value holds a literal to test; Instance
// names a declared class to test a fresh instance of instead.
type Check struct {
	Value    any    `yaml:"value,omitempty"`
	Instance string `yaml:"instance,omitempty"`
	Type     string `yaml:"type"`
	Argument int    `yaml:"argument,omitempty"` // run through AssertArgument with this index
	Label    string `yaml:"label,omitempty"`    // run through AssertType with this label
	Want     *bool  `yaml:"want,omitempty"`     // expected outcome, default true
}

// CheckResult is the outcome of a single check.
type CheckResult struct {
	Desc   string
	Passed bool
	Detail string
}

// LoadScenario reads a scenario file, following its extends chain.
func LoadScenario(path string) (*Scenario, error) {
	return loadScenario(path, map[string]bool{})
}

func loadScenario(path string, visited map[string]bool) (*Scenario, error) {
	key := filepath.Clean(path)
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}
	if visited[key] {
		return nil, fmt.Errorf("scenario %s: cyclic extends chain", path)
	}
	visited[key] = true

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if sc.Extends != "" {
		base, err := loadScenario(filepath.Join(filepath.Dir(path), sc.Extends), visited)
		if err != nil {
			return nil, fmt.Errorf("loading base scenario: %w", err)
		}
		if err := mergo.Merge(&sc, *base); err != nil {
			return nil, fmt.Errorf("merging base scenario: %w", err)
		}
	}
	return &sc, nil
}

// Run evaluates the scenario's declarations and checks on a fresh
// registry. A declaration error aborts the run; check failures do not.
func Run(sc *Scenario) ([]CheckResult, error) {
	reg := typekit.NewRegistry()

	// Enums first, in name order for determinism.
	names := make([]string, 0, len(sc.Enums))
	for name := range sc.Enums {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := reg.DefineEnum(name, sc.Enums[name]); err != nil {
			return nil, fmt.Errorf("enum %s: %w", name, err)
		}
	}

	// Classes in declaration order; parents must be declared earlier.
	classes := map[string]*typekit.Class{config.BaseClassName: reg.BaseClass()}
	for _, decl := range sc.Classes {
		parents := make([]*typekit.Class, 0, len(decl.Parents))
		for _, pname := range decl.Parents {
			p, ok := classes[pname]
			if !ok {
				return nil, fmt.Errorf("class %s: unknown parent %q", decl.Name, pname)
			}
			parents = append(parents, p)
		}
		c, err := reg.DefineClass(decl.Name, parents...)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", decl.Name, err)
		}
		for k, v := range decl.Fields {
			c.Fields[k] = v
		}
		classes[decl.Name] = c
	}

	results := make([]CheckResult, 0, len(sc.Checks))
	for i, ch := range sc.Checks {
		value := ch.Value
		desc := fmt.Sprintf("%v is %s", ch.Value, ch.Type)
		if ch.Instance != "" {
			c, ok := classes[ch.Instance]
			if !ok {
				return nil, fmt.Errorf("check %d: unknown class %q", i+1, ch.Instance)
			}
			inst, err := typekit.NewInstance(c, nil)
			if err != nil {
				return nil, fmt.Errorf("check %d: %w", i+1, err)
			}
			value = inst
			desc = fmt.Sprintf("%s instance is %s", ch.Instance, ch.Type)
		}

		want := true
		if ch.Want != nil {
			want = *ch.Want
		}

		var got bool
		var detail string
		switch {
		case ch.Argument > 0:
			_, err := reg.AssertArgument(ch.Argument, value, ch.Type)
			got = err == nil
			if err != nil {
				detail = err.Error()
			}
		case ch.Label != "":
			_, err := reg.AssertType(value, ch.Type, typekit.WithLabel(ch.Label))
			got = err == nil
			if err != nil {
				detail = err.Error()
			}
		default:
			got = reg.TypeOf(value, ch.Type)
		}
		results = append(results, CheckResult{Desc: desc, Passed: got == want, Detail: detail})
	}
	return results, nil
}
