package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/stadium/pkg/components"
	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/ecs"
	"github.com/decker502/stadium/pkg/entities"
	"github.com/decker502/stadium/pkg/game"
)

// TestKickSyncSystem_Update 测试动画状态写回实体
func TestKickSyncSystem_Update(t *testing.T) {
	em := ecs.NewEntityManager()
	lineup, err := entities.SpawnLineup(em, entities.DefaultLineup())
	if err != nil {
		t.Fatalf("SpawnLineup() error: %v", err)
	}

	state := game.NewFrameState(800, 600)
	state.Kick = components.KickAnimationComponent{
		Stage:            components.KickFlight,
		Striker:          mgl64.Vec2{-0.75, 0},
		Ball:             mgl64.Vec2{30, 7.5},
		BallSpin:         740,
		GoalkeeperOffset: 1.2,
	}

	NewKickSyncSystem(em).Update(state)

	tests := []struct {
		name string
		id   ecs.EntityID
		want mgl64.Vec3
	}{
		{"striker", lineup.Striker, mgl64.Vec3{-0.75, 0, 0}},
		{"goalkeeper", lineup.Goalkeeper, mgl64.Vec3{config.GoalkeeperX, 0, 1.2}},
		{"ball", lineup.Ball, mgl64.Vec3{30, config.BallRadius, 7.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := ecs.GetComponent[*components.TransformComponent](em, tt.id)
			if !ok {
				t.Fatal("TransformComponent missing")
			}
			if tr.Position != tt.want {
				t.Errorf("Expected position %v, got %v", tt.want, tr.Position)
			}
		})
	}

	ball, _ := ecs.GetComponent[*components.BallComponent](em, lineup.Ball)
	if ball.Spin != 740 {
		t.Errorf("Expected ball spin 740, got %.1f", ball.Spin)
	}

	// 未绑定动画的球员保持原位
	for _, id := range lineup.Figures {
		if id == lineup.Striker || id == lineup.Goalkeeper {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if tr.Position.X() == -0.75 || tr.Position.Z() == 1.2 {
			t.Errorf("Figure %d should not be driven by the kick, got %v", id, tr.Position)
		}
	}
}
