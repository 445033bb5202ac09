package bootstrap

import (
	"context"
	"fmt"
	"time"
)

// Step is one named stage of the bootstrap pipeline.
type Step struct {
	// Name identifies the step in output and error messages.
	Name string

	// Run performs the step. A non-nil error halts the pipeline.
	Run func(ctx context.Context) error
}

// StepResult records the outcome of a single step.
type StepResult struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Pipeline executes steps strictly in order and halts at the first failure.
// There is no rollback: state created by completed steps is left in place.
type Pipeline struct {
	steps []Step

	// OnResult, when set, is invoked after every executed step, including
	// the failing one. Used by the CLI to render per-step status lines.
	OnResult func(StepResult)
}

// NewPipeline creates a pipeline over the given steps.
func NewPipeline(steps []Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes the pipeline. The first failing step's error is returned
// wrapped with the step name; later steps never run. Context cancellation
// between steps also halts the pipeline.
func (p *Pipeline) Run(ctx context.Context) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("bootstrap interrupted before %q: %w", step.Name, err)
		}

		start := time.Now()
		err := step.Run(ctx)
		result := StepResult{
			Name:     step.Name,
			Err:      err,
			Duration: time.Since(start),
		}

		if p.OnResult != nil {
			p.OnResult(result)
		}

		if err != nil {
			return fmt.Errorf("%s: %w", step.Name, err)
		}
	}
	return nil
}
