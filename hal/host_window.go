//go:build cgo

package hal

import (
	"errors"
	"image"

	"stardrift/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Host  HostConfig
	Title string
	// Zoom multiplies the framebuffer size to get the initial window size.
	Zoom int
	TPS  int
}

// RunWindow starts a desktop window that displays the framebuffer.
// It blocks until the window closes, Escape/q is pressed, or a step fails.
func RunWindow(cfg WindowConfig, newApp NewApp) error {
	h := New(cfg.Host).(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = 2
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "stardrift"
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Zoom, h.fb.height*cfg.Zoom)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	h.logger.Info("window open", "width", h.fb.width, "height", h.fb.height, "tps", cfg.TPS)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  Step
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.h.kbd.quitRequested() {
		return ebiten.Termination
	}
	dt := g.h.t.step()
	if g.step != nil {
		if err := g.step(dt); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.Snapshot(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
