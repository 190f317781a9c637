package scenes

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/stadium/pkg/components"
	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/ecs"
	"github.com/decker502/stadium/pkg/game"
	"github.com/decker502/stadium/pkg/systems"
	"github.com/decker502/stadium/pkg/utils"
)

func newTestScene(t *testing.T, night bool) (*StadiumScene, *utils.ScriptedKeys, *game.SettingsManager) {
	t.Helper()
	keys := utils.NewScriptedKeys()
	settings := game.NewSettingsManager(nil, zap.NewNop())
	s, err := NewStadiumScene(config.DefaultSceneConfig(), settings, keys, zap.NewNop(), night)
	if err != nil {
		t.Fatalf("NewStadiumScene() error: %v", err)
	}
	return s, keys, settings
}

// tick 执行一次更新并清空按键事件
func tick(s *StadiumScene, keys *utils.ScriptedKeys) {
	s.Update(1.0 / 60.0)
	keys.Advance()
}

func position(t *testing.T, s *StadiumScene, id ecs.EntityID) mgl64.Vec3 {
	t.Helper()
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.EntityManager(), id)
	if !ok {
		t.Fatalf("entity %d has no transform", id)
	}
	return tr.Position
}

func TestNewStadiumScene_InitialState(t *testing.T) {
	s, _, _ := newTestScene(t, false)
	state := s.State()

	if state.Kick.Stage != components.KickIdle {
		t.Errorf("Expected Idle at start, got %v", state.Kick.Stage)
	}
	if state.Camera.Yaw != 0 || state.Camera.Pitch != 20 || state.Camera.Distance != 140 {
		t.Errorf("Expected initial pose (0, 20, 140), got (%.1f, %.1f, %.1f)",
			state.Camera.Yaw, state.Camera.Pitch, state.Camera.Distance)
	}
	if state.NightMode {
		t.Error("Expected day mode")
	}
	if !state.IsDirty() {
		t.Error("first frame should be drawn")
	}
	if state.ViewportWidth != 1200 || state.ViewportHeight != 800 {
		t.Errorf("Expected viewport 1200x800, got %dx%d", state.ViewportWidth, state.ViewportHeight)
	}

	// 初始同步后主罚球员站在起跑点
	if got := position(t, s, s.Lineup().Striker); !got.ApproxEqual(mgl64.Vec3{-6, 0, 0}) {
		t.Errorf("Expected striker at (-6, 0, 0), got %v", got)
	}
}

func TestNewStadiumScene_Night(t *testing.T) {
	s, _, _ := newTestScene(t, true)
	if !s.State().NightMode {
		t.Error("Expected night mode from the start flag")
	}
}

func TestNewStadiumScene_NilConfig(t *testing.T) {
	if _, err := NewStadiumScene(nil, nil, nil, zap.NewNop(), false); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestNewStadiumScene_NilSettings(t *testing.T) {
	s, err := NewStadiumScene(config.DefaultSceneConfig(), nil, utils.NewScriptedKeys(), zap.NewNop(), false)
	if err != nil {
		t.Fatalf("NewStadiumScene() error: %v", err)
	}
	s.Update(1.0 / 60.0)
	if s.State().Tick != 1 {
		t.Errorf("Expected tick 1, got %d", s.State().Tick)
	}
}

func TestStadiumScene_NightToggle(t *testing.T) {
	s, keys, _ := newTestScene(t, false)

	keys.Press(systems.KeyToggleNight)
	tick(s, keys)
	if !s.State().NightMode {
		t.Fatal("Expected night after first toggle")
	}

	keys.Press(systems.KeyToggleNight)
	tick(s, keys)
	if s.State().NightMode {
		t.Error("toggling twice should restore day mode")
	}
}

func TestStadiumScene_CameraIdleKeepsFrame(t *testing.T) {
	s, keys, _ := newTestScene(t, false)
	s.State().ConsumeDirty()

	tick(s, keys)
	if s.State().IsDirty() {
		t.Error("idle camera without HUD should not request a redraw")
	}

	keys.Press(ebiten.KeyArrowRight)
	tick(s, keys)
	if !s.State().IsDirty() {
		t.Error("moving camera should request a redraw")
	}
	if s.State().Camera.Yaw != 1 {
		t.Errorf("Expected yaw 1 after one tick, got %.1f", s.State().Camera.Yaw)
	}
}

func TestStadiumScene_KickPlaysThrough(t *testing.T) {
	s, keys, _ := newTestScene(t, false)
	cfg := config.DefaultSceneConfig().Kick

	keys.Press(systems.KeyRestartKick)
	tick(s, keys)
	if s.State().Kick.Stage != components.KickRunUp {
		t.Fatalf("Expected RunUp after R, got %v", s.State().Kick.Stage)
	}

	bound := systems.TicksToRest(cfg)
	ticks := 1
	for s.State().Kick.Stage != components.KickIdle && ticks <= bound {
		tick(s, keys)
		ticks++
	}
	if s.State().Kick.Stage != components.KickIdle {
		t.Fatalf("kick did not come to rest within %d ticks", bound)
	}

	// 实体位置与动画状态一致
	kick := s.State().Kick
	ball := position(t, s, s.Lineup().Ball)
	if math.Abs(ball.X()-kick.Ball.X()) > 1e-9 || math.Abs(ball.Z()-kick.Ball.Y()) > 1e-9 {
		t.Errorf("ball entity %v does not match kick state %v", ball, kick.Ball)
	}
	if ball.X() <= cfg.GoalLineX {
		t.Errorf("Expected ball past the goal line, got x=%.2f", ball.X())
	}
	keeper := position(t, s, s.Lineup().Goalkeeper)
	if math.Abs(keeper.Z()-kick.GoalkeeperOffset) > 1e-9 || kick.GoalkeeperOffset == 0 {
		t.Errorf("goalkeeper should have moved to %.2f, got %v", kick.GoalkeeperOffset, keeper)
	}
	if s.State().Tick != uint64(ticks) {
		t.Errorf("Expected tick %d, got %d", ticks, s.State().Tick)
	}
}

func TestStadiumScene_HUDToggle(t *testing.T) {
	s, keys, settings := newTestScene(t, false)

	keys.Press(systems.KeyToggleHUD)
	tick(s, keys)
	if !settings.GetSettings().ShowHUD {
		t.Fatal("F1 should show the HUD")
	}

	// HUD 可见时每 tick 都要重绘
	s.State().ConsumeDirty()
	tick(s, keys)
	if !s.State().IsDirty() {
		t.Error("visible HUD should request a redraw every tick")
	}

	keys.Press(systems.KeyToggleHUD)
	tick(s, keys)
	if settings.GetSettings().ShowHUD {
		t.Error("second F1 should hide the HUD")
	}
}

func TestStadiumScene_TakeActions(t *testing.T) {
	s, keys, _ := newTestScene(t, false)

	keys.Press(systems.KeyToggleFullscreen)
	tick(s, keys)
	keys.Press(systems.KeyQuit)
	tick(s, keys)

	a := s.TakeActions()
	if !a.ToggleFullscreen || !a.Quit {
		t.Errorf("Expected fullscreen and quit actions to accumulate, got %+v", a)
	}
	if a := s.TakeActions(); a.ToggleFullscreen || a.Quit {
		t.Errorf("Expected actions to be cleared, got %+v", a)
	}
}

func TestStadiumScene_Resize(t *testing.T) {
	s, _, _ := newTestScene(t, false)
	s.State().ConsumeDirty()

	s.Resize(1200, 800)
	if s.State().IsDirty() {
		t.Error("same size should not request a redraw")
	}

	s.Resize(640, 480)
	if !s.State().IsDirty() {
		t.Error("resize should request a redraw")
	}
	if s.State().ViewportWidth != 640 || s.State().ViewportHeight != 480 {
		t.Errorf("Expected viewport 640x480, got %dx%d", s.State().ViewportWidth, s.State().ViewportHeight)
	}
}

func TestHUDText(t *testing.T) {
	snap := game.Snapshot{
		Yaw:       45,
		Pitch:     30,
		Distance:  100,
		Stage:     components.KickFlight,
		NightMode: true,
		Tick:      42,
	}
	text := HUDText(snap, 60)
	for _, want := range []string{"TPS: 60.0", "tick: 42", "yaw 45.0", "Flight", "mode: night"} {
		if !strings.Contains(text, want) {
			t.Errorf("HUD text missing %q:\n%s", want, text)
		}
	}
}
