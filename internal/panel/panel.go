// Package panel renders the machine's graphical side panel into a software
// frame. It only consumes read-only snapshots; presenting the frame is the
// HAL's job.
package panel

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SlotState is the render view of one slot.
type SlotState struct {
	Code    string
	SoldOut bool
}

// Snapshot is everything one frame needs: slot states in grid order plus
// the name of the item being dispensed, if any.
type Snapshot struct {
	Slots      []SlotState
	Dispensing string
}

// Frame geometry. The cabinet holds a 3-row, 2-column slot grid.
const (
	FrameWidth  = 360
	FrameHeight = 460

	GridColumns = 2
	GridRows    = 3

	cabinetX = 30
	cabinetY = 30
	cabinetW = 300
	cabinetH = 400

	slotW     = 100
	slotH     = 80
	slotX0    = 60
	slotY0    = 80
	slotStepX = 120
	slotStepY = 120

	bannerY = 445
)

var (
	colBackground = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	colCabinet    = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	colSlot       = color.RGBA{0x80, 0x80, 0x80, 0xFF}
	colLabel      = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	colSoldOut    = color.RGBA{0xC8, 0x00, 0x00, 0xFF}
	colBanner     = color.RGBA{0x00, 0x00, 0xC8, 0xFF}
)

// SlotRect returns the frame rectangle of grid position i, filling rows
// left to right.
func SlotRect(i int) image.Rectangle {
	col := i % GridColumns
	row := i / GridColumns
	x := slotX0 + col*slotStepX
	y := slotY0 + row*slotStepY
	return image.Rect(x, y, x+slotW, y+slotH)
}

// Render draws one complete frame: white background, black cabinet, gray
// labeled slots, "Sold Out" over depleted slots, and the dispense banner.
// Slots beyond the grid capacity are ignored.
func Render(s Snapshot) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
	fill(frame, frame.Bounds(), colBackground)
	fill(frame, image.Rect(cabinetX, cabinetY, cabinetX+cabinetW, cabinetY+cabinetH), colCabinet)

	for i, slot := range s.Slots {
		if i >= GridColumns*GridRows {
			break
		}
		r := SlotRect(i)
		fill(frame, r, colSlot)
		cx := r.Min.X + slotW/2
		drawTextCentered(frame, slot.Code, cx, r.Min.Y+slotH/2-6, colLabel)
		if slot.SoldOut {
			drawTextCentered(frame, "Sold Out", cx, r.Min.Y+slotH/2+12, colSoldOut)
		}
	}

	if s.Dispensing != "" {
		drawTextCentered(frame, fmt.Sprintf("Dispensing %s...", s.Dispensing), FrameWidth/2, bannerY, colBanner)
	}
	return frame
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawTextCentered(dst *image.RGBA, text string, cx, baseline int, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(text)
	d.Dot = fixed.P(cx, baseline).Sub(fixed.Point26_6{X: width / 2})
	d.DrawString(text)
}
