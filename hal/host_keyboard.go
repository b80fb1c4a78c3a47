//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = [keyCount]ebiten.Key{
	KeyP1Up:   ebiten.KeyW,
	KeyP1Down: ebiten.KeyS,
	KeyP2Up:   ebiten.KeyArrowUp,
	KeyP2Down: ebiten.KeyArrowDown,
}

// poll samples the held state of every bound key.
func (k *keyState) poll() {
	for key, code := range keyBindings {
		k.set(Key(key), ebiten.IsKeyPressed(code))
	}
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
