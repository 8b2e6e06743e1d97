package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Report summarizes a run.
type Report struct {
	Name     string
	Steps    int // steps applied
	Failures int
}

// Passed reports whether every applied step matched its expectation.
func (r *Report) Passed() bool {
	return r.Failures == 0
}

// Run validates the scenario, then applies its steps in order against a
// fresh collection. Every mismatching step is recorded; the returned error
// aggregates them. Run stops early when ctx is done.
func (s *Scenario) Run(ctx context.Context, logger hclog.Logger) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger = logger.Named(s.Name)
	report := &Report{Name: s.Name}

	t, err := newTarget(s)
	if err != nil {
		return report, fmt.Errorf("create %s: %w", s.Structure, err)
	}

	var result *multierror.Error
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			break
		}

		got, opErr := t.apply(st)
		report.Steps++
		logger.Trace("applied step", "index", i, "op", st.Op, "result", got, "error", opErr)

		if err := check(st, got, opErr); err != nil {
			report.Failures++
			stepErr := &StepError{Index: i, Op: st.Op, Err: err}
			logger.Warn("step failed", "index", i, "op", st.Op, "error", err)
			result = multierror.Append(result, stepErr)
		}
	}

	logger.Debug("scenario finished", "steps", report.Steps, "failures", report.Failures)
	return report, result.ErrorOrNil()
}

var (
	ErrUnexpectedError = errors.New("unexpected error")
	ErrMissingError    = errors.New("expected error not returned")
	ErrWrongError      = errors.New("wrong error")
	ErrMismatch        = errors.New("result mismatch")
)

// check compares one step's outcome with its expectations.
func check(st Step, got any, opErr error) error {
	if st.Error != "" {
		want := errorKinds[st.Error]
		switch {
		case opErr == nil:
			return fmt.Errorf("%w: want %s", ErrMissingError, st.Error)
		case !errors.Is(opErr, want):
			return fmt.Errorf("%w: want %s, got %v", ErrWrongError, st.Error, opErr)
		}
		return nil
	}
	if opErr != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedError, opErr)
	}
	if !st.expects() {
		return nil
	}
	return compare(&st.Expect, got)
}

func compare(expect *yaml.Node, got any) error {
	switch g := got.(type) {
	case int:
		var want int
		if err := expect.Decode(&want); err != nil {
			return fmt.Errorf("%w: expect: %w", ErrInvalidScenario, err)
		}
		if want != g {
			return fmt.Errorf("%w: want %d, got %d", ErrMismatch, want, g)
		}
	case bool:
		var want bool
		if err := expect.Decode(&want); err != nil {
			return fmt.Errorf("%w: expect: %w", ErrInvalidScenario, err)
		}
		if want != g {
			return fmt.Errorf("%w: want %t, got %t", ErrMismatch, want, g)
		}
	case []int:
		var want []int
		if err := expect.Decode(&want); err != nil {
			return fmt.Errorf("%w: expect: %w", ErrInvalidScenario, err)
		}
		if !slices.Equal(want, g) {
			return fmt.Errorf("%w: want %v, got %v", ErrMismatch, want, g)
		}
	default:
		return fmt.Errorf("%w: op result %T cannot be compared", ErrInvalidScenario, got)
	}
	return nil
}
