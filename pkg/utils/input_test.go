package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestScriptedKeys(t *testing.T) {
	keys := NewScriptedKeys()

	if keys.IsKeyJustPressed(ebiten.KeyN) {
		t.Error("Expected no key pressed initially")
	}

	keys.Press(ebiten.KeyN, ebiten.KeyArrowLeft)
	keys.Release(ebiten.KeyArrowRight)

	if !keys.IsKeyJustPressed(ebiten.KeyN) || !keys.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		t.Error("Expected N and Left to be just pressed")
	}
	if keys.IsKeyJustReleased(ebiten.KeyArrowLeft) {
		t.Error("Left was pressed, not released")
	}
	if !keys.IsKeyJustReleased(ebiten.KeyArrowRight) {
		t.Error("Expected Right to be just released")
	}

	// 事件只持续一个 tick
	keys.Advance()
	if keys.IsKeyJustPressed(ebiten.KeyN) || keys.IsKeyJustReleased(ebiten.KeyArrowRight) {
		t.Error("Expected events to be cleared after Advance")
	}
}

// 编译期检查
var (
	_ KeySource = EbitenKeys{}
	_ KeySource = (*ScriptedKeys)(nil)
)
