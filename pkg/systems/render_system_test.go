package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/decker502/stadium/pkg/components"
	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/ecs"
	"github.com/decker502/stadium/pkg/entities"
	"github.com/decker502/stadium/pkg/game"
)

// newTestProjector 初始位姿下的投影器
func newTestProjector(t *testing.T) (Projector, game.Snapshot) {
	t.Helper()
	cfg := config.DefaultSceneConfig().Camera
	cs := NewCameraSystem(cfg, zap.NewNop())
	state := game.NewFrameState(1200, 800)
	cs.Reset(state)
	snap := state.Snapshot()
	return NewProjector(snap, cfg), snap
}

func TestProjector_TargetAtCenter(t *testing.T) {
	p, _ := newTestProjector(t)

	pos, ok := p.Project(mgl64.Vec3{})
	if !ok {
		t.Fatal("target should be visible")
	}
	if math.Abs(pos.X()-600) > 1e-6 || math.Abs(pos.Y()-400) > 1e-6 {
		t.Errorf("Expected target at screen center (600, 400), got %v", pos)
	}
}

func TestProjector_Orientation(t *testing.T) {
	p, _ := newTestProjector(t)
	center, _ := p.Project(mgl64.Vec3{})

	up, ok := p.Project(mgl64.Vec3{0, 10, 0})
	if !ok || up.Y() >= center.Y() {
		t.Errorf("point above target should be higher on screen: center=%v up=%v", center, up)
	}

	// yaw=0 时相机在 +Z 看向 -Z，+X 在屏幕右侧
	right, ok := p.Project(mgl64.Vec3{10, 0, 0})
	if !ok || right.X() <= center.X() {
		t.Errorf("+X should be on the right: center=%v right=%v", center, right)
	}
}

func TestProjector_BehindCamera(t *testing.T) {
	p, snap := newTestProjector(t)
	behind := snap.Eye.Mul(2)

	if p.Depth(behind) >= 0 {
		t.Errorf("Expected negative depth behind the camera, got %.3f", p.Depth(behind))
	}
	if _, ok := p.Project(behind); ok {
		t.Error("point behind the camera should not project")
	}
	if size := p.ScreenSize(behind, 1); size != 0 {
		t.Errorf("Expected screen size 0 behind the camera, got %.3f", size)
	}
	if _, _, ok := p.ProjectSegment(behind, snap.Eye.Mul(3)); ok {
		t.Error("segment fully behind the camera should be dropped")
	}
}

func TestProjector_SegmentClipping(t *testing.T) {
	p, snap := newTestProjector(t)

	a, b, ok := p.ProjectSegment(mgl64.Vec3{}, snap.Eye.Mul(2))
	if !ok {
		t.Fatal("segment crossing the near plane should be kept")
	}
	if math.Abs(a.X()-600) > 1e-6 || math.Abs(a.Y()-400) > 1e-6 {
		t.Errorf("visible end should stay at the target, got %v", a)
	}
	for _, v := range []float64{b.X(), b.Y()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("clipped end must be finite, got %v", b)
		}
	}

	// 完全可见的线段与单点投影一致
	from, to := mgl64.Vec3{-40, 0, -24}, mgl64.Vec3{40, 0, 24}
	sa, sb, ok := p.ProjectSegment(from, to)
	pa, _ := p.Project(from)
	pb, _ := p.Project(to)
	if !ok || !sa.ApproxEqualThreshold(pa, 1e-6) || !sb.ApproxEqualThreshold(pb, 1e-6) {
		t.Errorf("segment projection %v-%v differs from point projection %v-%v", sa, sb, pa, pb)
	}
}

func TestProjector_ScreenSize(t *testing.T) {
	p, _ := newTestProjector(t)

	// 距离 140、视场 60°、高 800 像素时 1 单位约 4.95 像素
	want := 1 / math.Tan(math.Pi/6) * 400 / 140
	if got := p.ScreenSize(mgl64.Vec3{}, 1); math.Abs(got-want) > 1e-6 {
		t.Errorf("Expected %.4f px, got %.4f", want, got)
	}
}

func TestProjector_ZeroViewport(t *testing.T) {
	cfg := config.DefaultSceneConfig().Camera
	snap := game.Snapshot{Eye: EyePosition(0, 20, 140)}

	p := NewProjector(snap, cfg)
	pos, ok := p.Project(mgl64.Vec3{})
	if !ok || math.IsNaN(pos.X()) || math.IsNaN(pos.Y()) {
		t.Errorf("zero viewport should still project finitely, got %v ok=%v", pos, ok)
	}
}

func TestSkyColor(t *testing.T) {
	tests := []struct {
		night bool
		want  color.RGBA
	}{
		{false, color.RGBA{R: 153, G: 204, B: 255, A: 255}},
		{true, color.RGBA{R: 26, G: 26, B: 51, A: 255}},
	}
	for _, tt := range tests {
		if got := SkyColor(tt.night); got != tt.want {
			t.Errorf("SkyColor(%v) = %v, want %v", tt.night, got, tt.want)
		}
	}
}

func TestFigureMesh(t *testing.T) {
	tr := &components.TransformComponent{Position: mgl64.Vec3{-25, 0, 10}, Heading: 90}
	fig := &components.FigureComponent{Team: components.TeamRed, Role: components.RoleDefender, Height: config.FigureHeight}

	m := FigureMesh(tr, fig)
	if len(m.Segments) != 6 || len(m.Markers) != 1 {
		t.Fatalf("Expected 6 segments and a head, got %d and %d", len(m.Segments), len(m.Markers))
	}

	head := m.Markers[0].Center
	if !head.ApproxEqual(mgl64.Vec3{-25, legHeight + bodyHeight + headRadius, 10}) {
		t.Errorf("head should sit above the feet, got %v", head)
	}
	if m.Segments[2].Color != fig.Team.ShirtColor() {
		t.Errorf("torso should use the team colour, got %v", m.Segments[2].Color)
	}

	// 朝向 +X 时两腿沿 Z 方向分开
	left, right := m.Segments[0].A, m.Segments[1].A
	if math.Abs(left.X()-right.X()) > 1e-9 || math.Abs(math.Abs(left.Z()-right.Z())-2*hipOffset) > 1e-9 {
		t.Errorf("legs should be split along Z when facing +X: %v %v", left, right)
	}
	for _, s := range m.Segments {
		if s.A.Y() < 0 || s.B.Y() > fig.Height {
			t.Errorf("segment %v-%v outside figure height", s.A, s.B)
		}
	}
}

func TestBallMesh(t *testing.T) {
	tests := []struct {
		spin    float64
		wantDir mgl64.Vec3
	}{
		{0, mgl64.Vec3{1, 0, 0}},
		{90, mgl64.Vec3{0, -1, 0}},
		{180, mgl64.Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		tr := &components.TransformComponent{Position: mgl64.Vec3{30, config.BallRadius, 7}}
		ball := &components.BallComponent{Radius: config.BallRadius, Spin: tt.spin}

		m := BallMesh(tr, ball)
		if len(m.Markers) != 2 || len(m.Segments) != 1 {
			t.Fatalf("spin %.0f: expected shadow, ball and seam", tt.spin)
		}
		if m.Markers[0].Center.Y() >= m.Markers[1].Center.Y() {
			t.Errorf("spin %.0f: shadow should be below the ball", tt.spin)
		}

		seam := m.Segments[0]
		dir := seam.B.Sub(tr.Position).Mul(1 / config.BallRadius)
		if !dir.ApproxEqualThreshold(tt.wantDir, 1e-9) {
			t.Errorf("spin %.0f: expected seam direction %v, got %v", tt.spin, tt.wantDir, dir)
		}
	}
}

func TestRenderSystem_DynamicMeshOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	if _, err := entities.SpawnLineup(em, entities.DefaultLineup()); err != nil {
		t.Fatalf("SpawnLineup() error: %v", err)
	}

	cfg := config.DefaultSceneConfig().Camera
	rs := NewRenderSystem(em, cfg)
	p, _ := newTestProjector(t)

	m := rs.DynamicMesh(p)
	// 12 名球员各 1 个头，外加足球和阴影
	if len(m.Markers) != 12+2 {
		t.Fatalf("Expected 14 markers, got %d", len(m.Markers))
	}
	if len(m.Segments) != 12*6+1 {
		t.Fatalf("Expected 73 segments, got %d", len(m.Segments))
	}

	// 由远到近：相机在 +Z，第一个头的 Z 最小
	first := p.Depth(m.Markers[0].Center)
	last := p.Depth(m.Markers[len(m.Markers)-1].Center)
	if first < last {
		t.Errorf("markers should be ordered far to near, got depth %.2f before %.2f", first, last)
	}

	if rs.StaticMesh(true) == rs.StaticMesh(false) {
		t.Error("day and night meshes should be separate")
	}
	if len(rs.StaticMesh(false).Segments) == 0 {
		t.Error("static mesh should not be empty")
	}
}
