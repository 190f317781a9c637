package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景需要感知视口尺寸时实现
//
// 窗口尺寸变化只影响投影参数，不影响场景内部状态。
type Resizable interface {
	// Resize 在 Layout 尺寸变化时调用
	Resize(width, height int)
}
