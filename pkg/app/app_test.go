package app

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/stadium/pkg/systems"
	"github.com/decker502/stadium/pkg/utils"
)

func newTestApp(t *testing.T) (*App, *utils.ScriptedKeys) {
	t.Helper()
	keys := utils.NewScriptedKeys()
	a, err := NewApp(Config{Keys: keys}, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	return a, keys
}

func TestNewApp(t *testing.T) {
	a, _ := newTestApp(t)
	if a.GetSceneManager().GetCurrentScene() == nil {
		t.Fatal("Expected the stadium scene to be active")
	}
	if a.IsVerbose() {
		t.Error("Expected verbose to be off")
	}
	if a.Scene().State().NightMode {
		t.Error("Expected day mode by default")
	}
}

func TestNewApp_Night(t *testing.T) {
	a, err := NewApp(Config{Night: true, Keys: utils.NewScriptedKeys()}, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	if !a.Scene().State().NightMode {
		t.Error("Expected night mode")
	}
}

func TestApp_Layout(t *testing.T) {
	a, _ := newTestApp(t)

	w, h := a.Layout(1600, 900)
	if w != 1600 || h != 900 {
		t.Errorf("Expected pass-through layout 1600x900, got %dx%d", w, h)
	}
	state := a.Scene().State()
	if state.ViewportWidth != 1600 || state.ViewportHeight != 900 {
		t.Errorf("Expected viewport 1600x900, got %dx%d", state.ViewportWidth, state.ViewportHeight)
	}
}

func TestApp_Update(t *testing.T) {
	a, keys := newTestApp(t)

	if err := a.Update(); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if a.Scene().State().Tick != 1 {
		t.Errorf("Expected tick 1, got %d", a.Scene().State().Tick)
	}

	keys.Press(systems.KeyQuit)
	if err := a.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination on quit, got %v", err)
	}
}
