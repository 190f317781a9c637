package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/stadium/pkg/components"
	"github.com/decker502/stadium/pkg/game"
	"github.com/decker502/stadium/pkg/utils"
)

// axisBinding 方向键到相机轴的映射
type axisBinding struct {
	key  ebiten.Key
	axis components.CameraAxis
	dir  components.Direction
}

// cameraBindings 相机方向键
var cameraBindings = []axisBinding{
	{ebiten.KeyArrowLeft, components.AxisYaw, components.DirNegative},
	{ebiten.KeyArrowRight, components.AxisYaw, components.DirPositive},
	{ebiten.KeyArrowUp, components.AxisPitch, components.DirNegative},
	{ebiten.KeyArrowDown, components.AxisPitch, components.DirPositive},
	{ebiten.KeyPageUp, components.AxisDistance, components.DirNegative},
	{ebiten.KeyPageDown, components.AxisDistance, components.DirPositive},
}

// 触发键
const (
	KeyToggleNight      = ebiten.KeyN
	KeyRestartKick      = ebiten.KeyR
	KeyResetCamera      = ebiten.KeyHome
	KeyToggleHUD        = ebiten.KeyF1
	KeyToggleFullscreen = ebiten.KeyF11
	KeyQuit             = ebiten.KeyEscape
)

// InputActions 需要由场景外层（应用/窗口）处理的动作
type InputActions struct {
	ToggleHUD        bool
	ToggleFullscreen bool
	Quit             bool
}

// InputSystem 把按键边沿事件转换为相机速度变化和触发动作
//
// 同一 tick 内先处理松开再处理按下，
// 这样换向时新按下的键总能生效。
type InputSystem struct {
	keys   utils.KeySource
	camera *CameraSystem
	kick   *KickAnimationSystem
	logger *zap.Logger
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - keys: 按键来源，nil 时使用 ebiten 的按键状态
//   - camera: 相机控制系统
//   - kick: 任意球动画系统
//   - logger: 日志器
func NewInputSystem(keys utils.KeySource, camera *CameraSystem, kick *KickAnimationSystem, logger *zap.Logger) *InputSystem {
	if keys == nil {
		keys = utils.EbitenKeys{}
	}
	return &InputSystem{
		keys:   keys,
		camera: camera,
		kick:   kick,
		logger: logger.Named("InputSystem"),
	}
}

// Update 处理本 tick 的按键事件
func (s *InputSystem) Update(state *game.FrameState) InputActions {
	for _, b := range cameraBindings {
		if s.keys.IsKeyJustReleased(b.key) {
			s.camera.Release(state, b.axis, b.dir)
		}
	}
	for _, b := range cameraBindings {
		if s.keys.IsKeyJustPressed(b.key) {
			s.camera.Press(state, b.axis, b.dir)
		}
	}

	if s.keys.IsKeyJustPressed(KeyToggleNight) {
		state.ToggleNightMode()
		s.logger.Debug("Night mode toggled", zap.Bool("night", state.NightMode))
	}
	if s.keys.IsKeyJustPressed(KeyRestartKick) {
		s.kick.Start(state)
	}
	if s.keys.IsKeyJustPressed(KeyResetCamera) {
		s.camera.Reset(state)
	}

	return InputActions{
		ToggleHUD:        s.keys.IsKeyJustPressed(KeyToggleHUD),
		ToggleFullscreen: s.keys.IsKeyJustPressed(KeyToggleFullscreen),
		Quit:             s.keys.IsKeyJustPressed(KeyQuit),
	}
}
