package hal

import (
	"bufio"
	"bytes"
	"image"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(input string) (*lineTerminal, *bytes.Buffer) {
	var out bytes.Buffer
	return &lineTerminal{r: bufio.NewReader(strings.NewReader(input)), w: &out}, &out
}

func TestLineTerminalReadLine(t *testing.T) {
	term, out := newTestTerminal("user\r\nadmin\n")

	line, err := term.ReadLine("Choose mode: ")
	require.NoError(t, err)
	assert.Equal(t, "user", line)

	line, err = term.ReadLine("Choose mode: ")
	require.NoError(t, err)
	assert.Equal(t, "admin", line)

	assert.Equal(t, "Choose mode: Choose mode: ", out.String())
}

func TestLineTerminalReadLineEOF(t *testing.T) {
	term, _ := newTestTerminal("")
	_, err := term.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineTerminalReadLinePartialLineAtEOF(t *testing.T) {
	// A final line without a trailing newline is still an answer.
	term, _ := newTestTerminal("yes")

	line, err := term.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "yes", line)

	_, err = term.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineTerminalWriteLine(t *testing.T) {
	term, out := newTestTerminal("")
	term.WriteLine("Invalid mode. Try again.")
	assert.Equal(t, "Invalid mode. Try again.\n", out.String())
}

func TestDiscardDisplayAcceptsFrames(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 1, 1))
	assert.NoError(t, discardDisplay{}.Present(frame))
}
