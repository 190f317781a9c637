package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/game"
	"github.com/decker502/stadium/pkg/utils"
)

// worldUp 世界坐标上方向
var worldUp = mgl64.Vec3{0, 1, 0}

// Projector 把世界坐标投影到屏幕像素坐标
//
// 每帧根据快照重建一次。屏幕原点在左上角，Y 向下。
type Projector struct {
	view   mgl64.Mat4
	proj   mgl64.Mat4
	mvp    mgl64.Mat4
	near   float64
	focal  float64 // 1/tan(fov/2)
	width  int
	height int
}

// NewProjector 由相机快照和投影参数创建投影器
// 视口尺寸为 0 时按 1 处理，避免宽高比出现除零
func NewProjector(snap game.Snapshot, cfg config.CameraConfig) Projector {
	w := max(snap.ViewportWidth, 1)
	h := max(snap.ViewportHeight, 1)

	fov := utils.DegToRad(cfg.FieldOfView)
	view := mgl64.LookAtV(snap.Eye, snap.Target, worldUp)
	proj := mgl64.Perspective(fov, float64(w)/float64(h), cfg.Near, cfg.Far)

	return Projector{
		view:   view,
		proj:   proj,
		mvp:    proj.Mul4(view),
		near:   cfg.Near,
		focal:  1 / math.Tan(fov/2),
		width:  w,
		height: h,
	}
}

// Depth 点在视线方向上的距离，位于相机后方时为负
func (p Projector) Depth(world mgl64.Vec3) float64 {
	return p.mvp.Mul4x1(world.Vec4(1)).W()
}

// Project 投影单个点
// 点位于近裁剪面之前（或相机后方）时返回 false
func (p Projector) Project(world mgl64.Vec3) (mgl64.Vec2, bool) {
	if p.Depth(world) < p.near {
		return mgl64.Vec2{}, false
	}
	win := mgl64.Project(world, p.view, p.proj, 0, 0, p.width, p.height)
	return mgl64.Vec2{win.X(), float64(p.height) - win.Y()}, true
}

// ProjectSegment 投影线段，跨越近裁剪面时截断到裁剪面上
// 两端都在裁剪面之前时返回 false
func (p Projector) ProjectSegment(a, b mgl64.Vec3) (mgl64.Vec2, mgl64.Vec2, bool) {
	ca := p.mvp.Mul4x1(a.Vec4(1))
	cb := p.mvp.Mul4x1(b.Vec4(1))

	inA := ca.W() >= p.near
	inB := cb.W() >= p.near
	switch {
	case !inA && !inB:
		return mgl64.Vec2{}, mgl64.Vec2{}, false
	case !inA:
		ca = clipToNear(ca, cb, p.near)
	case !inB:
		cb = clipToNear(cb, ca, p.near)
	}
	return p.toScreen(ca), p.toScreen(cb), true
}

// ScreenSize 世界尺寸 size 在 world 处对应的像素尺寸
func (p Projector) ScreenSize(world mgl64.Vec3, size float64) float64 {
	d := p.Depth(world)
	if d < p.near {
		return 0
	}
	return size * p.focal * float64(p.height) / 2 / d
}

// clipToNear 沿 out→in 方向移动 out，使其 W 恰好等于 near
func clipToNear(out, in mgl64.Vec4, near float64) mgl64.Vec4 {
	t := (near - out.W()) / (in.W() - out.W())
	return out.Add(in.Sub(out).Mul(t))
}

// toScreen 裁剪坐标转屏幕坐标
func (p Projector) toScreen(clip mgl64.Vec4) mgl64.Vec2 {
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return mgl64.Vec2{
		(ndcX + 1) / 2 * float64(p.width),
		(1 - ndcY) / 2 * float64(p.height),
	}
}
