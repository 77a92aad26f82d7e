package hal

import (
	"errors"
	"image"
)

// Terminal is line-oriented operator I/O: print a prompt, block for one
// line of input.
type Terminal interface {
	ReadLine(prompt string) (string, error)
	WriteLine(s string)
}

// Display presents one rendered frame to the operator.
type Display interface {
	Present(frame *image.RGBA) error
}

// HAL is the only contact point between the simulator and the outside
// world.
type HAL interface {
	Terminal() Terminal
	Display() Display
}

// ErrWindowClosed reports a frame presented after the operator closed the
// panel window. The desktop backend runs a single window session per
// process.
var ErrWindowClosed = errors.New("hal: panel window closed")
