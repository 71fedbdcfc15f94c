package pythagoras

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in a session script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Ms     int    `json:"ms,omitempty"`
}

// scriptFile is the top-level JSON structure for a session script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// scriptFrame is the simulated frame duration used when replaying "wait"
// steps. Waits advance the model in frame-sized increments so growth ticks
// fire with the same chained-timer cadence as the interactive loop.
const scriptFrame = time.Second / 60

// Script is a replayable session: a sequence of pointer moves and waits
// driven against a Model without a window. Used for headless runs and
// deterministic testing of the full pipeline.
type Script struct {
	steps []scriptStep
}

// LoadScript parses a JSON session script.
//
// Supported steps:
//
//	{"action": "move", "x": 600, "y": 150}
//	{"action": "wait", "ms": 1500}
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "move", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run replays the script against the model. Replay is deterministic: the
// same script against a fresh model always produces the same tree.
func (s *Script) Run(m *Model) error {
	for i, st := range s.steps {
		switch st.Action {
		case "move":
			if !m.PointerMove(st.X, st.Y) {
				return fmt.Errorf("script: step %d: pointer move rejected", i)
			}
		case "wait":
			remaining := time.Duration(st.Ms) * time.Millisecond
			for remaining > 0 {
				step := scriptFrame
				if remaining < step {
					step = remaining
				}
				m.Advance(step)
				remaining -= step
			}
		}
	}
	return nil
}
