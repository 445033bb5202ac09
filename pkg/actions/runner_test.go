package actions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTarget records every call made against it and can be told to
// fail a specific operation.
type recordingTarget struct {
	calls   []string
	failOn  string
	failErr error
}

func (r *recordingTarget) record(call string) error {
	r.calls = append(r.calls, call)
	if r.failOn != "" && callKind(call) == r.failOn {
		return r.failErr
	}
	return nil
}

func callKind(call string) string {
	for i, c := range call {
		if c == '(' {
			return call[:i]
		}
	}
	return call
}

func (r *recordingTarget) Click(selector string) error {
	return r.record(fmt.Sprintf("click(%s)", selector))
}

func (r *recordingTarget) ScrollWindow(x, y int) error {
	return r.record(fmt.Sprintf("scrollWindow(%d,%d)", x, y))
}

func (r *recordingTarget) ScrollElement(selector string, x, y int) error {
	return r.record(fmt.Sprintf("scrollElement(%s,%d,%d)", selector, x, y))
}

func (r *recordingTarget) Type(selector, text string, clear bool) error {
	return r.record(fmt.Sprintf("type(%s,%s,%t)", selector, text, clear))
}

func (r *recordingTarget) Pause(ms float64) error {
	return r.record(fmt.Sprintf("pause(%g)", ms))
}

func (r *recordingTarget) Screenshot(path string, fullPage bool) error {
	return r.record(fmt.Sprintf("screenshot(%s,%t)", path, fullPage))
}

func TestRunnerExecutesInOrder(t *testing.T) {
	target := &recordingTarget{}
	runner := NewRunner(target)

	list, err := Parse([]byte(`[
		{"action":"wait","ms":1000},
		{"action":"click","selector":".hamburger"},
		{"action":"scroll","target":".main-content","x":0,"y":800},
		{"action":"scroll","x":0,"y":200},
		{"action":"type","selector":"input[name=q]","text":"hello"},
		{"action":"screenshot"}
	]`))
	require.NoError(t, err)

	err = runner.Run(context.Background(), list)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"pause(1000)",
		"click(.hamburger)",
		"scrollElement(.main-content,0,800)",
		"scrollWindow(0,200)",
		"type(input[name=q],hello,true)",
		"screenshot(shot_005.png,true)",
	}, target.calls)
}

func TestRunnerStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("element not found")
	target := &recordingTarget{failOn: "click", failErr: boom}
	runner := NewRunner(target)

	list := []Action{
		{Kind: KindWait},
		{Kind: KindClick, Selector: ".missing"},
		{Kind: KindScreenshot},
	}

	err := runner.Run(context.Background(), list)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "action 1 (click)")

	assert.Equal(t, []string{"pause(500)", "click(.missing)"}, target.calls)
}

func TestRunnerSkipsUnknownActions(t *testing.T) {
	target := &recordingTarget{}
	runner := NewRunner(target)

	list := []Action{
		{Kind: "hover", Selector: ".btn"},
		{Kind: KindWait},
	}

	err := runner.Run(context.Background(), list)
	require.NoError(t, err)
	assert.Equal(t, []string{"pause(500)"}, target.calls)
}

func TestRunnerValidatesSelectors(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{"click without selector", Action{Kind: KindClick}},
		{"type without selector", Action{Kind: KindType, Text: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &recordingTarget{}
			err := NewRunner(target).Run(context.Background(), []Action{tt.action})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "selector is required")
			assert.Empty(t, target.calls)
		})
	}
}

func TestRunnerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	target := &recordingTarget{}
	err := NewRunner(target).Run(ctx, []Action{{Kind: KindWait}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, target.calls)
}

func TestRunnerEmptyList(t *testing.T) {
	target := &recordingTarget{}
	err := NewRunner(target).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, target.calls)
}
