package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Team 球队
type Team int

const (
	TeamRed Team = iota
	TeamBlue
)

// ShirtColor 球衣颜色
func (t Team) ShirtColor() color.RGBA {
	if t == TeamRed {
		return color.RGBA{R: 230, G: 26, B: 26, A: 255}
	}
	return color.RGBA{R: 26, G: 26, B: 230, A: 255}
}

// FigureRole 场上角色
type FigureRole int

const (
	RoleGoalkeeper FigureRole = iota
	RoleDefender
	RoleMidfielder
	RoleStriker
)

// TransformComponent 世界坐标与朝向
type TransformComponent struct {
	Position mgl64.Vec3
	// Heading 绕 Y 轴的朝向（度）
	Heading float64
}

// FigureComponent 简化球员模型
type FigureComponent struct {
	Team Team
	Role FigureRole
	// Height 头顶高度，腿 0.9 + 躯干 0.7 + 头 0.5
	Height float64
}

// KickActor 标记实体由任意球动画驱动
type KickActor int

const (
	ActorStriker KickActor = iota
	ActorGoalkeeper
	ActorBall
)

// KickActorComponent 绑定到任意球动画的实体
type KickActorComponent struct {
	Actor KickActor
}

// BallComponent 足球
type BallComponent struct {
	Radius float64
	// Spin 当前旋转角（度）
	Spin float64
}
