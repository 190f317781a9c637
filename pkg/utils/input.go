// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeySource 按键边沿事件来源
// 游戏中使用 ebiten 的按键状态，测试中可以替换为脚本化的实现
type KeySource interface {
	// IsKeyJustPressed 本 tick 刚按下
	IsKeyJustPressed(key ebiten.Key) bool
	// IsKeyJustReleased 本 tick 刚松开
	IsKeyJustReleased(key ebiten.Key) bool
}

// EbitenKeys 基于 inpututil 的按键来源
type EbitenKeys struct{}

// IsKeyJustPressed 实现 KeySource
func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// IsKeyJustReleased 实现 KeySource
func (EbitenKeys) IsKeyJustReleased(key ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(key)
}

// ScriptedKeys 按 tick 回放按键事件，供测试和演示使用
//
// Press/Release 记录的事件只在下一次 Advance 之前可见，
// 与 inpututil 一样每个事件只持续一个 tick。
type ScriptedKeys struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
}

// NewScriptedKeys 创建空的脚本按键来源
func NewScriptedKeys() *ScriptedKeys {
	return &ScriptedKeys{
		pressed:  make(map[ebiten.Key]bool),
		released: make(map[ebiten.Key]bool),
	}
}

// Press 记录一次按下
func (s *ScriptedKeys) Press(keys ...ebiten.Key) {
	for _, k := range keys {
		s.pressed[k] = true
	}
}

// Release 记录一次松开
func (s *ScriptedKeys) Release(keys ...ebiten.Key) {
	for _, k := range keys {
		s.released[k] = true
	}
}

// Advance 清空本 tick 的事件
func (s *ScriptedKeys) Advance() {
	clear(s.pressed)
	clear(s.released)
}

// IsKeyJustPressed 实现 KeySource
func (s *ScriptedKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return s.pressed[key]
}

// IsKeyJustReleased 实现 KeySource
func (s *ScriptedKeys) IsKeyJustReleased(key ebiten.Key) bool {
	return s.released[key]
}
