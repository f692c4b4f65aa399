package sprig

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep is one scripted action.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
	Screen string  `json:"screen,omitempty"`
}

// validate rejects actions the runner does not know and steps missing the
// field their action needs.
func (st testStep) validate() error {
	switch st.Action {
	case "screenshot", "click", "drag", "wait":
		return nil
	case "type":
		if st.Text == "" {
			return errors.New(`"type" needs text`)
		}
	case "key":
		if st.Key == "" {
			return errors.New(`"key" needs a key`)
		}
	case "switch":
		if st.Screen == "" {
			return errors.New(`"switch" needs a screen`)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// TestRunner plays a scripted sequence of input and screenshots against an
// App, one step per tick. Steps that inject input wait for the injected
// events to drain before the next step runs.
//
// A script is JSON of the form
//
//	{"steps": [
//	  {"action": "click", "x": 60, "y": 110},
//	  {"action": "type", "text": "Bob"},
//	  {"action": "key", "key": "Backspace"},
//	  {"action": "drag", "fromX": 20, "fromY": 150, "toX": 300, "toY": 150, "frames": 10},
//	  {"action": "switch", "screen": "detail"},
//	  {"action": "wait", "frames": 5},
//	  {"action": "screenshot", "label": "detail"}
//	]}
type TestRunner struct {
	steps []testStep
	next  int
	waits int
	done  bool
}

// LoadTestScript parses and validates a JSON test script. Attach the result
// with App.SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []testStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches r to the app. Every Tick advances it before
// injected input is processed. Pass nil to detach.
func (a *App) SetTestRunner(r *TestRunner) {
	a.testRunner = r
}

// Done reports whether every step has run and its input has drained.
func (r *TestRunner) Done() bool {
	return r.done
}

// step runs at most one script step.
func (r *TestRunner) step(a *App) {
	switch {
	case r.done, len(a.injectQueue) > 0:
		return
	case r.waits > 0:
		r.waits--
		return
	case r.next == len(r.steps):
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	r.perform(a, st)

	r.done = r.next == len(r.steps) && r.waits == 0 && len(a.injectQueue) == 0
}

func (r *TestRunner) perform(a *App, st testStep) {
	switch st.Action {
	case "screenshot":
		a.Screenshot(st.Label)
	case "click":
		a.InjectClick(st.X, st.Y)
	case "drag":
		a.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "type":
		a.InjectText(st.Text)
	case "key":
		a.InjectKey(st.Key)
	case "switch":
		if a.screens == nil || !a.screens.SwitchTo(st.Screen) {
			logf("test script: cannot switch to screen %q", st.Screen)
		}
	case "wait":
		// The tick that reads the step is the first one waited.
		r.waits = max(st.Frames-1, 0)
	}
}
