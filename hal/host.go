package hal

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
)

type hostHAL struct {
	term *lineTerminal
	disp Display
}

// NewHost returns a HAL over the controlling terminal. With headless set,
// panel frames are discarded instead of opening a window.
func NewHost(headless bool) HAL {
	h := &hostHAL{
		term: &lineTerminal{r: bufio.NewReader(os.Stdin), w: os.Stdout},
	}
	if headless {
		h.disp = discardDisplay{}
	} else {
		h.disp = &windowDisplay{}
	}
	return h
}

func (h *hostHAL) Terminal() Terminal { return h.term }
func (h *hostHAL) Display() Display   { return h.disp }

// lineTerminal prompts on the writer and blocks for one newline-delimited
// answer from the reader.
type lineTerminal struct {
	r *bufio.Reader
	w io.Writer
}

func (t *lineTerminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.w, prompt)
	line, err := t.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *lineTerminal) WriteLine(s string) {
	fmt.Fprintln(t.w, s)
}

// discardDisplay drops frames for headless runs.
type discardDisplay struct{}

func (discardDisplay) Present(*image.RGBA) error { return nil }
