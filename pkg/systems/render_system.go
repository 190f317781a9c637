package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/stadium/internal/geometry"
	"github.com/decker502/stadium/pkg/components"
	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/ecs"
	"github.com/decker502/stadium/pkg/game"
	"github.com/decker502/stadium/pkg/utils"
)

// 球员配色
var (
	colorShorts = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorSkin   = color.RGBA{R: 222, G: 184, B: 135, A: 255}
	colorBall   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorShadow = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	colorSeam   = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// 球员模型尺寸（腿 + 躯干 + 头）
const (
	legHeight    = 0.9
	bodyHeight   = 0.7
	bodyWidth    = 0.6
	headRadius   = 0.25
	hipOffset    = 0.15
	armDrop      = 0.2
	armLength    = 0.5
	minMarkerPix = 1.0
)

// RenderSystem 场景渲染
//
// 静态场景（看台、球场、灯塔等）在创建时生成一次，日/夜各一份；
// 球员和足球每帧从实体组件生成。
// 没有深度缓冲，按先静态后动态、动态内由远到近的顺序绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.CameraConfig

	dayMesh   geometry.Mesh
	nightMesh geometry.Mesh
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - em: 实体管理器（球员、足球）
//   - cfg: 相机投影参数（视场角、近/远裁剪面）
func NewRenderSystem(em *ecs.EntityManager, cfg config.CameraConfig) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		cfg:           cfg,
		dayMesh:       geometry.Stadium(false),
		nightMesh:     geometry.Stadium(true),
	}
}

// SkyColor 背景颜色
func SkyColor(night bool) color.RGBA {
	c := config.DaySkyColor
	if night {
		c = config.NightSkyColor
	}
	return color.RGBA{
		R: uint8(math.Round(c[0] * 255)),
		G: uint8(math.Round(c[1] * 255)),
		B: uint8(math.Round(c[2] * 255)),
		A: 255,
	}
}

// StaticMesh 返回当前日/夜模式下的静态场景
func (s *RenderSystem) StaticMesh(night bool) *geometry.Mesh {
	if night {
		return &s.nightMesh
	}
	return &s.dayMesh
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(SkyColor(snap.NightMode))

	p := NewProjector(snap, s.cfg)
	s.drawMesh(screen, p, s.StaticMesh(snap.NightMode))

	dynamic := s.DynamicMesh(p)
	s.drawMesh(screen, p, &dynamic)
}

// DynamicMesh 生成球员和足球的网格，按与相机的距离由远到近排列
func (s *RenderSystem) DynamicMesh(p Projector) geometry.Mesh {
	type item struct {
		depth float64
		mesh  geometry.Mesh
	}
	var items []item

	for _, id := range ecs.GetEntitiesWith2[*components.TransformComponent, *components.FigureComponent](s.entityManager) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		fig, _ := ecs.GetComponent[*components.FigureComponent](s.entityManager, id)
		items = append(items, item{p.Depth(tr.Position), FigureMesh(tr, fig)})
	}
	for _, id := range ecs.GetEntitiesWith2[*components.TransformComponent, *components.BallComponent](s.entityManager) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		ball, _ := ecs.GetComponent[*components.BallComponent](s.entityManager, id)
		items = append(items, item{p.Depth(tr.Position), BallMesh(tr, ball)})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].depth > items[j].depth
	})

	var out geometry.Mesh
	for _, it := range items {
		out.Append(it.mesh)
	}
	return out
}

// FigureMesh 简化球员模型：两条腿、躯干、两条手臂和头
func FigureMesh(tr *components.TransformComponent, fig *components.FigureComponent) geometry.Mesh {
	rot := mgl64.Rotate3DY(utils.DegToRad(tr.Heading))
	at := func(x, y float64) mgl64.Vec3 {
		return tr.Position.Add(rot.Mul3x1(mgl64.Vec3{x, y, 0}))
	}

	shirt := fig.Team.ShirtColor()
	shoulderY := legHeight + bodyHeight - armDrop
	armX := bodyWidth/2 + 0.1

	var m geometry.Mesh
	m.Segments = []geometry.Segment{
		{A: at(-hipOffset, 0), B: at(-hipOffset, legHeight), Color: colorShorts, Width: 2},
		{A: at(hipOffset, 0), B: at(hipOffset, legHeight), Color: colorShorts, Width: 2},
		{A: at(0, legHeight), B: at(0, legHeight+bodyHeight), Color: shirt, Width: 5},
		{A: at(-bodyWidth/2, legHeight+bodyHeight), B: at(bodyWidth/2, legHeight+bodyHeight), Color: shirt, Width: 3},
		{A: at(-armX, shoulderY+armLength/2), B: at(-armX, shoulderY-armLength/2), Color: colorSkin, Width: 2},
		{A: at(armX, shoulderY+armLength/2), B: at(armX, shoulderY-armLength/2), Color: colorSkin, Width: 2},
	}
	m.Markers = []geometry.Marker{
		{Center: at(0, legHeight+bodyHeight+headRadius), Size: headRadius * 2, Color: colorSkin},
	}
	return m
}

// BallMesh 足球、地面阴影和一条随旋转角转动的缝线
func BallMesh(tr *components.TransformComponent, ball *components.BallComponent) geometry.Mesh {
	c := tr.Position
	spin := utils.DegToRad(ball.Spin)
	// 绕 -Z 轴旋转
	seam := mgl64.Vec3{math.Cos(spin), -math.Sin(spin), 0}.Mul(ball.Radius)

	return geometry.Mesh{
		Segments: []geometry.Segment{
			{A: c.Sub(seam), B: c.Add(seam), Color: colorSeam, Width: 1},
		},
		Markers: []geometry.Marker{
			{Center: mgl64.Vec3{c.X(), 0.02, c.Z()}, Size: ball.Radius * 2, Color: colorShadow},
			{Center: c, Size: ball.Radius * 2, Color: colorBall},
		},
	}
}

func (s *RenderSystem) drawMesh(screen *ebiten.Image, p Projector, m *geometry.Mesh) {
	for _, seg := range m.Segments {
		a, b, ok := p.ProjectSegment(seg.A, seg.B)
		if !ok {
			continue
		}
		vector.StrokeLine(screen,
			float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()),
			seg.Width, seg.Color, true)
	}

	for _, mk := range m.Markers {
		pos, ok := p.Project(mk.Center)
		if !ok {
			continue
		}
		size := math.Max(p.ScreenSize(mk.Center, mk.Size), minMarkerPix)
		vector.DrawFilledRect(screen,
			float32(pos.X()-size/2), float32(pos.Y()-size/2),
			float32(size), float32(size),
			mk.Color, true)
	}
}
