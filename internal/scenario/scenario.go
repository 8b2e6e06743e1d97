// Package scenario replays scripted operations against the collections
// and checks their results. Scenarios are YAML documents:
//
//	name: fifo
//	structure: queue
//	capacity: 4
//	steps:
//	  - op: enqueue
//	    value: 1
//	  - op: dequeue
//	    expect: 1
//	  - op: dequeue
//	    error: empty
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Structure names the collection a scenario drives.
type Structure string

const (
	Queue      Structure = "queue"
	LinkedList Structure = "linkedlist"
	ArrayList  Structure = "arraylist"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a named sequence of steps run against a fresh collection.
type Scenario struct {
	Name      string    `yaml:"name"`
	Structure Structure `yaml:"structure"`
	Capacity  *int      `yaml:"capacity,omitempty"`
	Steps     []Step    `yaml:"steps"`
}

// Step is one operation. Which of Value, Index and Values are required
// depends on Op. Expect holds the expected result (an int, a bool or a
// list of ints) and Error the expected error kind.
type Step struct {
	Op     string    `yaml:"op"`
	Value  *int      `yaml:"value,omitempty"`
	Index  *int      `yaml:"index,omitempty"`
	Values []int     `yaml:"values,omitempty"`
	Expect yaml.Node `yaml:"expect,omitempty"`
	Error  string    `yaml:"error,omitempty"`
}

// expects reports whether the step carries an expected result.
func (st Step) expects() bool {
	return st.Expect.Kind != 0
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario document. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidScenario, err)
	}
	return &s, nil
}

// Validate reports every malformed part of the scenario at once.
func (s *Scenario) Validate() error {
	var result *multierror.Error

	if s.Name == "" {
		result = multierror.Append(result, fmt.Errorf("%w: missing name", ErrInvalidScenario))
	}
	switch s.Structure {
	case Queue, LinkedList, ArrayList:
	default:
		result = multierror.Append(result, fmt.Errorf("%w: unknown structure %q", ErrInvalidScenario, s.Structure))
	}
	if s.Capacity != nil && s.Structure == LinkedList {
		result = multierror.Append(result, fmt.Errorf("%w: linkedlist has no capacity", ErrInvalidScenario))
	}
	if len(s.Steps) == 0 {
		result = multierror.Append(result, fmt.Errorf("%w: no steps", ErrInvalidScenario))
	}

	for i, step := range s.Steps {
		if err := step.validate(s.Structure); err != nil {
			result = multierror.Append(result, &StepError{Index: i, Op: step.Op, Err: err})
		}
	}
	return result.ErrorOrNil()
}

func (st Step) validate(structure Structure) error {
	op, ok := ops[st.Op]
	if !ok {
		return fmt.Errorf("%w: unknown op", ErrInvalidScenario)
	}
	if !op.supports(structure) {
		return fmt.Errorf("%w: not supported by %s", ErrInvalidScenario, structure)
	}
	if op.args&argValue != 0 && st.Value == nil {
		return fmt.Errorf("%w: missing value", ErrInvalidScenario)
	}
	if op.args&argIndex != 0 && st.Index == nil {
		return fmt.Errorf("%w: missing index", ErrInvalidScenario)
	}
	if op.args&argValues != 0 && st.Values == nil {
		return fmt.Errorf("%w: missing values", ErrInvalidScenario)
	}
	if st.Error != "" {
		if _, ok := errorKinds[st.Error]; !ok {
			return fmt.Errorf("%w: unknown error kind %q", ErrInvalidScenario, st.Error)
		}
		if st.expects() {
			return fmt.Errorf("%w: expect and error are exclusive", ErrInvalidScenario)
		}
	}
	if st.expects() && !op.result {
		return fmt.Errorf("%w: op has no result to expect", ErrInvalidScenario)
	}
	if st.Op == "copy-to" && *st.Value < 0 {
		return fmt.Errorf("%w: negative destination length %d", ErrInvalidScenario, *st.Value)
	}
	return nil
}

// StepError ties a failure to the step that caused it.
type StepError struct {
	Index int
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
