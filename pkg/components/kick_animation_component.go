package components

import "github.com/go-gl/mathgl/mgl64"

// KickStage 任意球动画阶段
// 只会按 Idle → RunUp → Flight → Idle 的顺序前进；重新开始会强制回到 RunUp
type KickStage int

const (
	// KickIdle 初始/结束状态，动画不推进
	KickIdle KickStage = iota
	// KickRunUp 主罚球员助跑
	KickRunUp
	// KickFlight 球飞行，门将扑救
	KickFlight
)

// String 返回阶段名称
func (s KickStage) String() string {
	switch s {
	case KickIdle:
		return "Idle"
	case KickRunUp:
		return "RunUp"
	case KickFlight:
		return "Flight"
	}
	return "Unknown"
}

// KickAnimationComponent 任意球动画状态
//
// 所有二维坐标使用地面平面 (X=前进方向, Y=横向)，
// 渲染时映射为世界坐标 (X, 0, Z)。
type KickAnimationComponent struct {
	Stage KickStage

	// Striker 主罚球员位置
	Striker mgl64.Vec2

	// Ball 球的位置
	Ball mgl64.Vec2

	// BallVelocity 球速（单位/tick）
	BallVelocity mgl64.Vec2

	// BallSpin 累计旋转角（度），仅用于视觉
	BallSpin float64

	// GoalkeeperOffset 门将横向偏移
	GoalkeeperOffset float64
}

// Active 动画是否正在推进
func (k *KickAnimationComponent) Active() bool {
	return k.Stage != KickIdle
}
