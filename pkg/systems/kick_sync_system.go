package systems

import (
	"github.com/decker502/stadium/pkg/components"
	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/ecs"
	"github.com/decker502/stadium/pkg/game"
)

// KickSyncSystem 把任意球动画状态写回场上实体
//
// 地面坐标 (前进, 横向) 映射为世界坐标 (X, Z)：
//   - 主罚球员: (Striker.X, 0, Striker.Y)
//   - 足球: (Ball.X, 半径, Ball.Y)，并带上旋转角
//   - 门将: (GoalkeeperX, 0, GoalkeeperOffset)
type KickSyncSystem struct {
	entityManager *ecs.EntityManager
}

// NewKickSyncSystem 创建同步系统
func NewKickSyncSystem(em *ecs.EntityManager) *KickSyncSystem {
	return &KickSyncSystem{entityManager: em}
}

// Update 同步一次
func (s *KickSyncSystem) Update(state *game.FrameState) {
	k := &state.Kick
	ids := ecs.GetEntitiesWith2[*components.KickActorComponent, *components.TransformComponent](s.entityManager)

	for _, id := range ids {
		actor, _ := ecs.GetComponent[*components.KickActorComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		switch actor.Actor {
		case components.ActorStriker:
			tr.Position[0] = k.Striker.X()
			tr.Position[2] = k.Striker.Y()
		case components.ActorGoalkeeper:
			tr.Position[0] = config.GoalkeeperX
			tr.Position[2] = k.GoalkeeperOffset
		case components.ActorBall:
			radius := config.BallRadius
			if ball, ok := ecs.GetComponent[*components.BallComponent](s.entityManager, id); ok {
				radius = ball.Radius
				ball.Spin = k.BallSpin
			}
			tr.Position[0] = k.Ball.X()
			tr.Position[1] = radius
			tr.Position[2] = k.Ball.Y()
		}
	}
}
