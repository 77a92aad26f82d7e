package panel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vend/internal/catalog"
)

func sixSlots() []SlotState {
	return []SlotState{
		{Code: "A1"}, {Code: "A2"},
		{Code: "B1"}, {Code: "B2"},
		{Code: "C1"}, {Code: "C2"},
	}
}

func hasColor(img *image.RGBA, r image.Rectangle, c color.RGBA) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				return true
			}
		}
	}
	return false
}

func TestRenderFrameGeometry(t *testing.T) {
	frame := Render(Snapshot{Slots: sixSlots()})

	b := frame.Bounds()
	require.Equal(t, FrameWidth, b.Dx())
	require.Equal(t, FrameHeight, b.Dy())

	// Corners stay background white; the cabinet interior is black where
	// no slot covers it.
	assert.Equal(t, colBackground, frame.RGBAAt(0, 0))
	assert.Equal(t, colBackground, frame.RGBAAt(FrameWidth-1, FrameHeight-1))
	assert.Equal(t, colCabinet, frame.RGBAAt(35, 35))

	for i := range sixSlots() {
		r := SlotRect(i)
		assert.Equal(t, colSlot, frame.RGBAAt(r.Min.X+2, r.Min.Y+2), "slot %d fill", i)
		// Label pixels appear near the slot center.
		assert.True(t, hasColor(frame, r, colLabel), "slot %d label", i)
	}
}

func TestRenderSoldOutOverlay(t *testing.T) {
	slots := sixSlots()
	slots[3].SoldOut = true

	frame := Render(Snapshot{Slots: slots})

	assert.True(t, hasColor(frame, SlotRect(3), colSoldOut))
	assert.False(t, hasColor(frame, SlotRect(2), colSoldOut))
}

func TestRenderDispenseBanner(t *testing.T) {
	below := image.Rect(0, cabinetY+cabinetH, FrameWidth, FrameHeight)

	plain := Render(Snapshot{Slots: sixSlots()})
	assert.False(t, hasColor(plain, below, colBanner))

	banner := Render(Snapshot{Slots: sixSlots(), Dispensing: "Water"})
	assert.True(t, hasColor(banner, below, colBanner))
}

func TestRenderIgnoresOverflowSlots(t *testing.T) {
	slots := append(sixSlots(), SlotState{Code: "D1"})
	assert.NotPanics(t, func() { Render(Snapshot{Slots: slots}) })
}

func TestSnapshotOf(t *testing.T) {
	entries := []catalog.Entry{
		{Code: "A1", Item: catalog.Item{Name: "Coffee", Stock: 3}},
		{Code: "A2", Item: catalog.Item{Name: "Tea", Stock: 0}},
	}

	s := SnapshotOf(entries, "Coffee")
	require.Len(t, s.Slots, 2)
	assert.Equal(t, "Coffee", s.Dispensing)
	assert.False(t, s.Slots[0].SoldOut)
	assert.True(t, s.Slots[1].SoldOut)
}
