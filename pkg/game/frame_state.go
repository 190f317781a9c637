package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/stadium/pkg/components"
)

// FrameState 一帧渲染所需的全部可变状态
//
// 由场景持有，更新阶段以指针传给各系统原地修改；
// 绘制阶段只读取 Snapshot()，同一 tick 内不存在并发访问。
type FrameState struct {
	Camera         components.OrbitCameraComponent
	CameraVelocity components.CameraVelocityComponent
	Kick           components.KickAnimationComponent

	// NightMode 夜间模式：深色天空，点亮灯塔
	NightMode bool

	// Tick 已执行的更新次数
	Tick uint64

	// 视口尺寸，仅影响投影
	ViewportWidth  int
	ViewportHeight int

	dirty bool
}

// NewFrameState 创建帧状态，初始标记为需要重绘
func NewFrameState(width, height int) *FrameState {
	return &FrameState{
		ViewportWidth:  width,
		ViewportHeight: height,
		dirty:          true,
	}
}

// ToggleNightMode 切换日/夜模式
func (fs *FrameState) ToggleNightMode() {
	fs.NightMode = !fs.NightMode
	fs.dirty = true
}

// SetViewport 更新视口尺寸，尺寸变化时标记重绘
func (fs *FrameState) SetViewport(width, height int) {
	if fs.ViewportWidth == width && fs.ViewportHeight == height {
		return
	}
	fs.ViewportWidth = width
	fs.ViewportHeight = height
	fs.dirty = true
}

// MarkDirty 标记本帧需要重绘
func (fs *FrameState) MarkDirty() {
	fs.dirty = true
}

// IsDirty 是否需要重绘
func (fs *FrameState) IsDirty() bool {
	return fs.dirty
}

// ConsumeDirty 返回并清除重绘标记
func (fs *FrameState) ConsumeDirty() bool {
	d := fs.dirty
	fs.dirty = false
	return d
}

// Snapshot 渲染器读取的只读快照
type Snapshot struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3

	Yaw      float64
	Pitch    float64
	Distance float64

	Stage            components.KickStage
	Striker          mgl64.Vec2
	Ball             mgl64.Vec2
	BallSpin         float64
	GoalkeeperOffset float64

	NightMode bool
	Tick      uint64

	ViewportWidth  int
	ViewportHeight int
}

// Snapshot 复制当前状态
func (fs *FrameState) Snapshot() Snapshot {
	return Snapshot{
		Eye:              fs.Camera.Eye,
		Target:           fs.Camera.Target,
		Yaw:              fs.Camera.Yaw,
		Pitch:            fs.Camera.Pitch,
		Distance:         fs.Camera.Distance,
		Stage:            fs.Kick.Stage,
		Striker:          fs.Kick.Striker,
		Ball:             fs.Kick.Ball,
		BallSpin:         fs.Kick.BallSpin,
		GoalkeeperOffset: fs.Kick.GoalkeeperOffset,
		NightMode:        fs.NightMode,
		Tick:             fs.Tick,
		ViewportWidth:    fs.ViewportWidth,
		ViewportHeight:   fs.ViewportHeight,
	}
}
