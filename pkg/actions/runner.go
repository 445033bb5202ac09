package actions

import (
	"context"
	"fmt"

	"github.com/entrhq/pageshot/pkg/logging"
)

// Target is the browser surface the runner drives. *browser.Session
// implements it.
type Target interface {
	Click(selector string) error
	ScrollWindow(x, y int) error
	ScrollElement(selector string, x, y int) error
	Type(selector, text string, clear bool) error
	Pause(ms float64) error
	Screenshot(path string, fullPage bool) error
}

// Runner executes an action list against a target, strictly in order.
type Runner struct {
	target Target
	log    *logging.Logger
}

// NewRunner creates a runner over the given target.
func NewRunner(target Target) *Runner {
	log, _ := logging.NewLogger("actions") // fallback logger on error
	return &Runner{
		target: target,
		log:    log,
	}
}

// Run executes the actions. The first failing action aborts the run with an
// error naming the action's index and kind. Unknown action kinds are logged
// and skipped. Context cancellation between actions also aborts.
func (r *Runner) Run(ctx context.Context, list []Action) error {
	for i, action := range list {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("actions: interrupted before action %d: %w", i, err)
		}

		r.log.Infof("[%d] do: %s", i, action.Kind)
		if err := r.runOne(i, action); err != nil {
			return fmt.Errorf("actions: action %d (%s): %w", i, action.Kind, err)
		}
	}
	return nil
}

func (r *Runner) runOne(index int, action Action) error {
	switch action.Kind {
	case KindClick:
		if action.Selector == "" {
			return fmt.Errorf("selector is required")
		}
		return r.target.Click(action.Selector)

	case KindScroll:
		if action.scrollsWindow() {
			return r.target.ScrollWindow(action.X, action.Y)
		}
		return r.target.ScrollElement(action.Target, action.X, action.Y)

	case KindWait:
		return r.target.Pause(action.waitMS())

	case KindType:
		if action.Selector == "" {
			return fmt.Errorf("selector is required")
		}
		return r.target.Type(action.Selector, action.Text, action.clearFirst())

	case KindScreenshot:
		return r.target.Screenshot(action.screenshotPath(index), action.fullPage())

	default:
		r.log.Warnf("unknown action %q skipped", action.Kind)
		return nil
	}
}
