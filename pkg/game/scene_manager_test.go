package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// mockResizableScene 记录 Resize 调用
type mockResizableScene struct {
	MockScene
	resizes [][2]int
}

func (m *mockResizableScene) Resize(width, height int) {
	m.resizes = append(m.resizes, [2]int{width, height})
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdateAndDraw verifies forwarding to the active scene.
func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Fatal("SwitchTo did not set the current scene correctly")
	}

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)
	sm.Draw(nil)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerNoScene verifies nil scene is handled gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	sm.Resize(800, 600)
}

// TestSceneManagerResize 验证尺寸变化才转发，且切换场景时补发当前尺寸
func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()
	first := &mockResizableScene{}
	sm.SwitchTo(first)

	if len(first.resizes) != 0 {
		t.Fatalf("no size known yet, expected no Resize call, got %v", first.resizes)
	}

	sm.Resize(1200, 800)
	sm.Resize(1200, 800)
	sm.Resize(640, 480)

	expected := [][2]int{{1200, 800}, {640, 480}}
	if len(first.resizes) != len(expected) {
		t.Fatalf("Expected %d Resize calls, got %v", len(expected), first.resizes)
	}
	for i := range expected {
		if first.resizes[i] != expected[i] {
			t.Errorf("Resize #%d: expected %v, got %v", i, expected[i], first.resizes[i])
		}
	}

	second := &mockResizableScene{}
	sm.SwitchTo(second)
	if len(second.resizes) != 1 || second.resizes[0] != [2]int{640, 480} {
		t.Errorf("new scene should receive current size, got %v", second.resizes)
	}
}
