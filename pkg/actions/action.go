// Package actions decodes and executes the scripted action lists the run
// command accepts: a JSON array of click / scroll / wait / type / screenshot
// steps applied to a loaded page in order.
package actions

import (
	"encoding/json"
	"fmt"
)

// Action kinds accepted in the JSON action list.
const (
	KindClick      = "click"
	KindScroll     = "scroll"
	KindWait       = "wait"
	KindType       = "type"
	KindScreenshot = "screenshot"
)

// Defaults applied when an action omits an optional field.
const (
	DefaultWaitMS = 500.0

	// scrollWindowTarget selects the window instead of an element
	scrollWindowTarget = "window"
)

// Action is one step of a scripted run. Which fields are meaningful depends
// on Kind; unknown kinds are skipped at execution time, not rejected here.
type Action struct {
	Kind string `json:"action"`

	// click, type
	Selector string `json:"selector,omitempty"`

	// scroll: CSS selector of the element to scroll, or "window"/empty
	// for the window itself
	Target string `json:"target,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`

	// wait
	MS *float64 `json:"ms,omitempty"`

	// type
	Text  string `json:"text,omitempty"`
	Clear *bool  `json:"clear,omitempty"`

	// screenshot
	Path     string `json:"path,omitempty"`
	FullPage *bool  `json:"full_page,omitempty"`
}

// Parse decodes a JSON action array. Empty input yields no actions.
func Parse(data []byte) ([]Action, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var list []Action
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("actions: invalid action JSON: %w", err)
	}
	return list, nil
}

// Default returns the action list used when none is given: a single long
// wait, giving a headed browser time to be looked at.
func Default() []Action {
	ms := 10000.0
	return []Action{{Kind: KindWait, MS: &ms}}
}

// waitMS returns the wait duration with the default applied.
func (a Action) waitMS() float64 {
	if a.MS != nil {
		return *a.MS
	}
	return DefaultWaitMS
}

// clearFirst reports whether a type action clears the field first.
// Defaults to true, matching the common fill-then-type flow.
func (a Action) clearFirst() bool {
	if a.Clear != nil {
		return *a.Clear
	}
	return true
}

// fullPage reports whether a screenshot captures the full page.
// Defaults to true.
func (a Action) fullPage() bool {
	if a.FullPage != nil {
		return *a.FullPage
	}
	return true
}

// screenshotPath returns the output path, deriving an indexed default from
// the action's position when unset.
func (a Action) screenshotPath(index int) string {
	if a.Path != "" {
		return a.Path
	}
	return fmt.Sprintf("shot_%03d.png", index)
}

// scrollsWindow reports whether a scroll action targets the window.
func (a Action) scrollsWindow() bool {
	return a.Target == "" || a.Target == scrollWindowTarget
}
