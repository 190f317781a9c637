// Package geometry 生成体育场静态场景的线框与标记点
//
// 所有函数都是无状态的：输入布局常量，输出世界坐标下的线段和点，
// 由渲染系统负责投影与绘制。
package geometry

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/stadium/pkg/utils"
)

// Segment 世界坐标中的一条线段
type Segment struct {
	A, B  mgl64.Vec3
	Color color.RGBA
	Width float32
}

// Marker 世界坐标中的一个点，按 Size（世界单位）投影为方块
type Marker struct {
	Center mgl64.Vec3
	Size   float64
	Color  color.RGBA
}

// Mesh 一组线段和标记点
type Mesh struct {
	Segments []Segment
	Markers  []Marker
}

// Append 合并另一组网格
func (m *Mesh) Append(others ...Mesh) {
	for _, o := range others {
		m.Segments = append(m.Segments, o.Segments...)
		m.Markers = append(m.Markers, o.Markers...)
	}
}

// line 单条线段
func line(a, b mgl64.Vec3, c color.RGBA, w float32) Segment {
	return Segment{A: a, B: b, Color: c, Width: w}
}

// polyline 依次连接 points；closed 时首尾相连
func polyline(points []mgl64.Vec3, closed bool, c color.RGBA, w float32) []Segment {
	if len(points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(points))
	for i := 0; i+1 < len(points); i++ {
		segs = append(segs, line(points[i], points[i+1], c, w))
	}
	if closed {
		segs = append(segs, line(points[len(points)-1], points[0], c, w))
	}
	return segs
}

// EllipsePoint 椭圆上 angleDeg 处的点，0° 指向 +X，90° 指向 +Z
func EllipsePoint(rx, rz, y, angleDeg float64) mgl64.Vec3 {
	rad := utils.DegToRad(angleDeg)
	return mgl64.Vec3{rx * math.Cos(rad), y, rz * math.Sin(rad)}
}

// EllipseRing 把椭圆离散为 segments 段闭合折线
// segments < 3 时返回 nil
func EllipseRing(rx, rz, y float64, segments int, c color.RGBA, w float32) []Segment {
	if segments < 3 {
		return nil
	}
	points := make([]mgl64.Vec3, segments)
	for i := range points {
		points[i] = EllipsePoint(rx, rz, y, 360*float64(i)/float64(segments))
	}
	return polyline(points, true, c, w)
}

// InGateGap 角度是否落在东西两个入口（0° 和 180°）的缺口内
// 缺口是开区间：恰好等于 gap 的角度不算缺口
func InGateGap(angleDeg, gap float64) bool {
	a := utils.WrapDegrees(angleDeg)
	if a < gap || a > 360-gap {
		return true
	}
	return a > 180-gap && a < 180+gap
}

// EllipseCircumference Ramanujan 第二近似公式计算椭圆周长
func EllipseCircumference(rx, rz float64) float64 {
	h := (rx - rz) * (rx - rz) / ((rx + rz) * (rx + rz))
	return math.Pi * (rx + rz) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}

// box 轴对齐长方体的 12 条棱
func box(center, size mgl64.Vec3, c color.RGBA, w float32) []Segment {
	hx, hy, hz := size.X()/2, size.Y()/2, size.Z()/2
	var corners [8]mgl64.Vec3
	for i := range corners {
		sx, sy, sz := -hx, -hy, -hz
		if i&1 != 0 {
			sx = hx
		}
		if i&2 != 0 {
			sy = hy
		}
		if i&4 != 0 {
			sz = hz
		}
		corners[i] = center.Add(mgl64.Vec3{sx, sy, sz})
	}
	edges := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7}, // X 方向
		{0, 2}, {1, 3}, {4, 6}, {5, 7}, // Y 方向
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // Z 方向
	}
	segs := make([]Segment, 0, len(edges))
	for _, e := range edges {
		segs = append(segs, line(corners[e[0]], corners[e[1]], c, w))
	}
	return segs
}

// rotateY 绕 Y 轴旋转 deg 度后平移到 origin
func rotateY(p mgl64.Vec3, deg float64, origin mgl64.Vec3) mgl64.Vec3 {
	return origin.Add(mgl64.Rotate3DY(utils.DegToRad(deg)).Mul3x1(p))
}

// transform 对一组线段应用 rotateY
func transform(segs []Segment, deg float64, origin mgl64.Vec3) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		s.A = rotateY(s.A, deg, origin)
		s.B = rotateY(s.B, deg, origin)
		out[i] = s
	}
	return out
}
