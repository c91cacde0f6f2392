//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.emit(KeyEvent{Press: true, Rune: r})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.emit(KeyEvent{Code: KeyEscape, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		k.emit(KeyEvent{Code: KeyEscape, Press: false})
	}
}

// quitRequested drains pending events and reports whether Escape or q was
// pressed.
func (k *hostKeyboard) quitRequested() bool {
	quit := false
	for {
		select {
		case ev := <-k.ch:
			if ev.Press && (ev.Code == KeyEscape || ev.Rune == 'q' || ev.Rune == 'Q') {
				quit = true
			}
		default:
			return quit
		}
	}
}
