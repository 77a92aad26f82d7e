// Package haltest provides scripted HAL fakes for testing interactive
// loops without a real terminal or window.
package haltest

import (
	"image"
	"io"
	"strings"
)

// ScriptTerminal answers prompts from a fixed list of lines and records
// the full transcript. Once the script runs out, reads report io.EOF.
type ScriptTerminal struct {
	Lines []string

	// Transcript holds every prompt and every written line in order.
	Transcript []string
}

// NewScriptTerminal returns a terminal that will answer prompts with lines
// in order.
func NewScriptTerminal(lines ...string) *ScriptTerminal {
	return &ScriptTerminal{Lines: lines}
}

func (t *ScriptTerminal) ReadLine(prompt string) (string, error) {
	t.Transcript = append(t.Transcript, prompt)
	if len(t.Lines) == 0 {
		return "", io.EOF
	}
	line := t.Lines[0]
	t.Lines = t.Lines[1:]
	t.Transcript = append(t.Transcript, line)
	return line, nil
}

func (t *ScriptTerminal) WriteLine(s string) {
	t.Transcript = append(t.Transcript, s)
}

// Saw reports whether any transcript entry contains substr.
func (t *ScriptTerminal) Saw(substr string) bool {
	for _, line := range t.Transcript {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FrameRecorder counts presented frames and keeps the last one.
type FrameRecorder struct {
	Frames int
	Last   *image.RGBA
	Err    error
}

func (r *FrameRecorder) Present(frame *image.RGBA) error {
	if r.Err != nil {
		return r.Err
	}
	r.Frames++
	r.Last = frame
	return nil
}
