package hal

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// windowDisplay opens a desktop window on the first Present and blocks
// until the operator closes it. ebiten allows one RunGame per process, so
// frames after the window session are rejected with ErrWindowClosed.
type windowDisplay struct {
	opened bool
}

func (d *windowDisplay) Present(frame *image.RGBA) error {
	if d.opened {
		return ErrWindowClosed
	}
	d.opened = true

	b := frame.Bounds()
	g := &frameGame{frame: frame, w: b.Dx(), h: b.Dy()}
	ebiten.SetWindowTitle("Vending Machine")
	ebiten.SetWindowSize(g.w*2, g.h*2)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// frameGame shows one static frame until the window closes.
type frameGame struct {
	frame *image.RGBA
	tex   *ebiten.Image
	w, h  int
}

func (g *frameGame) Update() error { return nil }

func (g *frameGame) Draw(screen *ebiten.Image) {
	if g.tex == nil {
		g.tex = ebiten.NewImage(g.w, g.h)
		g.tex.WritePixels(g.frame.Pix)
	}
	screen.DrawImage(g.tex, nil)
}

func (g *frameGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
