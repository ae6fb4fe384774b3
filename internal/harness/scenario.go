package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/gentype/internal/trinary"
	"github.com/roach88/gentype/internal/types"
)

// Scenario is one conformance scenario.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description" json:"description"`

	// RunToken fixes the oracle run identifier. Defaults to
	// testutil.DefaultRunToken.
	RunToken string `yaml:"run_token,omitempty" json:"run_token,omitempty"`

	// Classes declares the class hierarchy object records resolve against.
	Classes []ClassDecl `yaml:"classes,omitempty" json:"classes,omitempty"`

	// Types maps a scenario-local name to a type's attribute record.
	Types map[string]map[string]any `yaml:"types" json:"types"`

	// Checks are evaluated in order.
	Checks []Check `yaml:"checks" json:"checks"`
}

// ClassDecl declares a class and its direct parents.
type ClassDecl struct {
	Name    string   `yaml:"name" json:"name"`
	Parents []string `yaml:"parents,omitempty" json:"parents,omitempty"`
}

// Check is a single expectation. Which fields apply depends on Relation.
type Check struct {
	Relation   string            `yaml:"relation" json:"relation"`
	Left       string            `yaml:"left" json:"left"`
	Right      string            `yaml:"right,omitempty" json:"right,omitempty"`
	Strict     bool              `yaml:"strict,omitempty" json:"strict,omitempty"`
	Level      string            `yaml:"level,omitempty" json:"level,omitempty"`
	Variance   string            `yaml:"variance,omitempty" json:"variance,omitempty"`
	Expect     string            `yaml:"expect,omitempty" json:"expect,omitempty"`
	ExpectMap  map[string]string `yaml:"expect_map,omitempty" json:"expect_map,omitempty"`
	ExpectType string            `yaml:"expect_type,omitempty" json:"expect_type,omitempty"`
}

// Check relations.
const (
	CheckSuper    = "super"
	CheckSub      = "sub"
	CheckAccepts  = "accepts"
	CheckEquals   = "equals"
	CheckVariance = "variance"
	CheckSubtract = "subtract"
	CheckInfer    = "infer"
	CheckDescribe = "describe"
	CheckArgument = "argument"
)

// LoadScenario reads a scenario file. The format follows the extension:
// .cue files are evaluated with CUE, anything else is decoded as YAML.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario *Scenario
	if filepath.Ext(path) == ".cue" {
		scenario, err = parseCUE(path, data)
	} else {
		scenario, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return scenario, nil
}

// LoadScenarios loads every .yaml, .yml and .cue file directly inside dir,
// in file name order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := FindScenarioFiles(dir)
	if err != nil {
		return nil, err
	}
	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// FindScenarioFiles lists scenario files directly inside dir, sorted.
func FindScenarioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml", ".cue":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(paths)
	return paths, nil
}

func parseYAML(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &scenario, nil
}

// decodeStrictJSON decodes the JSON export of a CUE scenario with the same
// strictness the YAML path gets from KnownFields. Numbers stay json.Number
// so that integer attributes survive into records.
func decodeStrictJSON(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	decoder.UseNumber()
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to decode CUE scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Types) == 0 {
		return fmt.Errorf("types map is required and must be non-empty")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	for i, c := range s.Classes {
		if c.Name == "" {
			return fmt.Errorf("classes[%d]: name is required", i)
		}
	}
	for name, rec := range s.Types {
		if _, ok := rec["kind"]; !ok {
			return fmt.Errorf("types.%s: kind is required", name)
		}
	}
	for i := range s.Checks {
		if err := validateCheck(s, i); err != nil {
			return err
		}
	}
	return nil
}

func validateCheck(s *Scenario, index int) error {
	c := &s.Checks[index]
	prefix := fmt.Sprintf("checks[%d]", index)

	ref := func(field, name string) error {
		if name == "" {
			return fmt.Errorf("%s: %s is required for %s", prefix, field, c.Relation)
		}
		if _, ok := s.Types[name]; !ok {
			return fmt.Errorf("%s: %s refers to undeclared type %q", prefix, field, name)
		}
		return nil
	}
	if err := ref("left", c.Left); err != nil {
		return err
	}

	switch c.Relation {
	case CheckSuper, CheckSub, CheckAccepts:
		if _, err := trinary.Parse(c.Expect); err != nil {
			return fmt.Errorf("%s: expect: %w", prefix, err)
		}
		return ref("right", c.Right)
	case CheckEquals, CheckVariance:
		if expect := strings.ToLower(c.Expect); expect != "yes" && expect != "no" {
			return fmt.Errorf("%s: expect must be yes or no for %s", prefix, c.Relation)
		}
		if c.Relation == CheckVariance {
			if _, err := types.ParseVariance(c.Variance); err != nil {
				return fmt.Errorf("%s: %w", prefix, err)
			}
		}
		return ref("right", c.Right)
	case CheckSubtract:
		if err := ref("right", c.Right); err != nil {
			return err
		}
		return ref("expect_type", c.ExpectType)
	case CheckInfer:
		if c.ExpectMap == nil {
			return fmt.Errorf("%s: expect_map is required for infer (use {} for no bindings)", prefix)
		}
		for _, name := range slices.Sorted(maps.Keys(c.ExpectMap)) {
			if err := ref("expect_map."+name, c.ExpectMap[name]); err != nil {
				return err
			}
		}
		return ref("right", c.Right)
	case CheckDescribe:
		if _, err := types.ParseVerbosity(c.Level); err != nil {
			return fmt.Errorf("%s: %w", prefix, err)
		}
		if c.Expect == "" {
			return fmt.Errorf("%s: expect is required for describe", prefix)
		}
		return nil
	case CheckArgument:
		if c.Expect == "" {
			return fmt.Errorf("%s: expect is required for argument", prefix)
		}
		return nil
	case "":
		return fmt.Errorf("%s: relation is required", prefix)
	}
	return fmt.Errorf("%s: unknown relation %q", prefix, c.Relation)
}
