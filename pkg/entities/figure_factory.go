package entities

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/stadium/pkg/components"
	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/ecs"
)

// 球队朝向（度）：红队面向 +X，蓝队面向 -X
const (
	RedHeading  = 90.0
	BlueHeading = -90.0
)

// FigureSpec 一名球员的站位
type FigureSpec struct {
	Team components.Team
	Role components.FigureRole
	X, Z float64
}

// Lineup 已生成的场上实体
type Lineup struct {
	Figures    []ecs.EntityID
	Striker    ecs.EntityID // 红队主罚球员
	Goalkeeper ecs.EntityID // 蓝队门将
	Ball       ecs.EntityID
}

// DefaultLineup 返回双方共 12 名球员的站位
// 红队主罚球员和蓝队门将的位置每 tick 由任意球动画覆盖
func DefaultLineup() []FigureSpec {
	return []FigureSpec{
		// 红队
		{components.TeamRed, components.RoleGoalkeeper, -38, 0},
		{components.TeamRed, components.RoleDefender, -25, -10},
		{components.TeamRed, components.RoleDefender, -25, 10},
		{components.TeamRed, components.RoleMidfielder, -10, -5},
		{components.TeamRed, components.RoleMidfielder, -5, 15},
		{components.TeamRed, components.RoleStriker, -6, 0},

		// 蓝队
		{components.TeamBlue, components.RoleGoalkeeper, config.GoalkeeperX, 0},
		{components.TeamBlue, components.RoleDefender, 25, -8},
		{components.TeamBlue, components.RoleDefender, 25, 8},
		{components.TeamBlue, components.RoleMidfielder, 15, 0},
		{components.TeamBlue, components.RoleMidfielder, 8, -15},
		{components.TeamBlue, components.RoleStriker, 5, 5},
	}
}

// NewFigureEntity 创建球员实体
//
// 参数:
//   - em: 实体管理器
//   - spec: 站位与角色
//
// 返回:
//   - ecs.EntityID: 创建的球员实体ID，失败返回 0
//   - error: 失败原因
func NewFigureEntity(em *ecs.EntityManager, spec FigureSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Team != components.TeamRed && spec.Team != components.TeamBlue {
		return 0, fmt.Errorf("invalid team %d", spec.Team)
	}

	heading := RedHeading
	if spec.Team == components.TeamBlue {
		heading = BlueHeading
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{
		Position: mgl64.Vec3{spec.X, 0, spec.Z},
		Heading:  heading,
	})
	ecs.AddComponent(em, id, &components.FigureComponent{
		Team:   spec.Team,
		Role:   spec.Role,
		Height: config.FigureHeight,
	})
	return id, nil
}

// NewBallEntity 创建足球实体，初始位于中圈
func NewBallEntity(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{
		Position: mgl64.Vec3{0, config.BallRadius, 0},
	})
	ecs.AddComponent(em, id, &components.BallComponent{Radius: config.BallRadius})
	ecs.AddComponent(em, id, &components.KickActorComponent{Actor: components.ActorBall})
	return id, nil
}

// SpawnLineup 生成全部球员和足球
//
// 红队第一名前锋绑定为主罚球员，蓝队门将绑定为扑救门将，
// 两者都挂上 KickActorComponent，由同步系统驱动。
func SpawnLineup(em *ecs.EntityManager, specs []FigureSpec) (*Lineup, error) {
	lineup := &Lineup{}
	for _, spec := range specs {
		id, err := NewFigureEntity(em, spec)
		if err != nil {
			return nil, fmt.Errorf("failed to spawn figure at (%.1f, %.1f): %w", spec.X, spec.Z, err)
		}
		lineup.Figures = append(lineup.Figures, id)

		switch {
		case lineup.Striker == 0 && spec.Team == components.TeamRed && spec.Role == components.RoleStriker:
			lineup.Striker = id
			ecs.AddComponent(em, id, &components.KickActorComponent{Actor: components.ActorStriker})
		case lineup.Goalkeeper == 0 && spec.Team == components.TeamBlue && spec.Role == components.RoleGoalkeeper:
			lineup.Goalkeeper = id
			ecs.AddComponent(em, id, &components.KickActorComponent{Actor: components.ActorGoalkeeper})
		}
	}

	if lineup.Striker == 0 {
		return nil, fmt.Errorf("lineup has no red striker")
	}
	if lineup.Goalkeeper == 0 {
		return nil, fmt.Errorf("lineup has no blue goalkeeper")
	}

	ball, err := NewBallEntity(em)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn ball: %w", err)
	}
	lineup.Ball = ball
	return lineup, nil
}
