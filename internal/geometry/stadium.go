package geometry

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/stadium/pkg/config"
)

// 场景配色
var (
	ColorGrass     = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	ColorTrack     = color.RGBA{R: 204, G: 51, B: 26, A: 255}
	ColorLine      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorSeat      = color.RGBA{R: 26, G: 26, B: 230, A: 255}
	ColorConcrete  = color.RGBA{R: 128, G: 128, B: 140, A: 255}
	ColorRoof      = color.RGBA{R: 204, G: 204, B: 230, A: 255}
	ColorSteel     = color.RGBA{R: 153, G: 166, B: 179, A: 255}
	ColorPanel     = color.RGBA{R: 51, G: 51, B: 64, A: 255}
	ColorBulbDay   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	ColorBulbNight = color.RGBA{R: 255, G: 255, B: 51, A: 255}
	ColorTrunk     = color.RGBA{R: 102, G: 66, B: 33, A: 255}
	ColorLeaves    = color.RGBA{R: 13, G: 102, B: 13, A: 255}
	ColorDugout    = color.RGBA{R: 77, G: 77, B: 89, A: 255}
	ColorNet       = color.RGBA{R: 230, G: 230, B: 230, A: 90}
)

// 离散精度
const (
	ringSegments   = 120
	circleSegments = 50
	grassSegments  = 100
	netSpacing     = 0.5
	goalPostRadius = 0.15
)

// InnerGrass 跑道内沿的草地边界
func InnerGrass() Mesh {
	return Mesh{Segments: EllipseRing(config.TrackInnerXRadius, config.TrackInnerZRadius, 0.01, grassSegments, ColorGrass, 2)}
}

// Track 跑道内外沿以及 3 条分道线
func Track() Mesh {
	var m Mesh
	m.Segments = append(m.Segments, EllipseRing(config.TrackInnerXRadius, config.TrackInnerZRadius, 0.02, ringSegments, ColorTrack, 2)...)
	m.Segments = append(m.Segments, EllipseRing(config.TrackOuterXRadius, config.TrackOuterZRadius, 0.02, ringSegments, ColorTrack, 2)...)

	laneWidth := config.TrackWidth / config.TrackLanes
	for lane := 1; lane < config.TrackLanes; lane++ {
		rx := config.TrackInnerXRadius + float64(lane)*laneWidth
		rz := config.TrackInnerZRadius + float64(lane)*laneWidth
		m.Segments = append(m.Segments, EllipseRing(rx, rz, 0.05, ringSegments, ColorLine, 1)...)
	}
	return m
}

// Pitch 球场标线：边线、中线、中圈和两个禁区
func Pitch() Mesh {
	const y = 0.04
	fx, fz := config.FieldXRadius, config.FieldZRadius

	var m Mesh
	m.Segments = append(m.Segments, polyline([]mgl64.Vec3{
		{-fx, y, -fz}, {fx, y, -fz}, {fx, y, fz}, {-fx, y, fz},
	}, true, ColorLine, 2)...)
	m.Segments = append(m.Segments, line(mgl64.Vec3{0, y, fz}, mgl64.Vec3{0, y, -fz}, ColorLine, 2))
	m.Segments = append(m.Segments, EllipseRing(config.CenterCircleRadius, config.CenterCircleRadius, y, circleSegments, ColorLine, 2)...)

	halfW := config.PenaltyBoxWidth / 2
	for _, side := range []float64{1, -1} {
		goalX := side * fx
		innerX := side * (fx - config.PenaltyBoxDepth)
		m.Segments = append(m.Segments, polyline([]mgl64.Vec3{
			{goalX, y, -halfW}, {innerX, y, -halfW}, {innerX, y, halfW}, {goalX, y, halfW},
		}, true, ColorLine, 2)...)
	}
	return m
}

// goalLocal 单个球门（门柱、横梁和网），局部坐标中球门线沿 X，网向 -Z 延伸
func goalLocal() []Segment {
	w, h, d := config.GoalWidth, config.GoalHeight, config.GoalNetDepth
	hw := w / 2

	segs := []Segment{
		line(mgl64.Vec3{-hw, 0, 0}, mgl64.Vec3{-hw, h, 0}, ColorLine, 3),
		line(mgl64.Vec3{hw, 0, 0}, mgl64.Vec3{hw, h, 0}, ColorLine, 3),
		line(mgl64.Vec3{-hw, h, 0}, mgl64.Vec3{hw, h, 0}, ColorLine, 3),
	}

	back := -d - goalPostRadius
	for x := -hw; x <= hw+1e-9; x += netSpacing {
		segs = append(segs,
			line(mgl64.Vec3{x, 0, back}, mgl64.Vec3{x, h, back}, ColorNet, 1),
			line(mgl64.Vec3{x, h, -goalPostRadius}, mgl64.Vec3{x, h, back}, ColorNet, 1),
		)
	}
	for y := 0.0; y <= h+1e-9; y += netSpacing {
		segs = append(segs,
			line(mgl64.Vec3{-hw, y, back}, mgl64.Vec3{hw, y, back}, ColorNet, 1),
			line(mgl64.Vec3{-hw, y, -goalPostRadius}, mgl64.Vec3{-hw, y, back}, ColorNet, 1),
			line(mgl64.Vec3{hw, y, -goalPostRadius}, mgl64.Vec3{hw, y, back}, ColorNet, 1),
		)
	}
	return segs
}

// Goals 两端球门，球网朝球场外
func Goals() Mesh {
	local := goalLocal()
	var m Mesh
	m.Segments = append(m.Segments, transform(local, -90, mgl64.Vec3{config.FieldXRadius, 0, 0})...)
	m.Segments = append(m.Segments, transform(local, 90, mgl64.Vec3{-config.FieldXRadius, 0, 0})...)
	return m
}

// SeatRowCount 按周长计算一排的座位数
func SeatRowCount(rx, rz float64) int {
	return int(EllipseCircumference(rx, rz) * 1.1)
}

// SeatRow 第 tier 排座位，跳过两个入口缺口
// 奇数排错开半度
func SeatRow(tier int) []Marker {
	rx := config.SeatingBaseXRadius + float64(tier)*config.TierDepthIncreaseX
	rz := config.SeatingBaseZRadius + float64(tier)*config.TierDepthIncreaseZ
	y := float64(tier) * config.TierHeight

	stagger := 0.0
	if tier%2 != 0 {
		stagger = 0.5
	}

	n := SeatRowCount(rx, rz)
	step := 360 / float64(n)
	seats := make([]Marker, 0, n)
	for i := 0; i < n; i++ {
		angle := stagger + float64(i)*step
		if InGateGap(angle, config.SeatGapDegrees) {
			continue
		}
		seats = append(seats, Marker{
			Center: EllipsePoint(rx, rz, y, angle),
			Size:   0.7,
			Color:  ColorSeat,
		})
	}
	return seats
}

// SeatingBowl 全部看台座位，以及外立面的两段弧线和安全栏杆
func SeatingBowl() Mesh {
	var m Mesh
	for tier := 0; tier < config.NumTiers; tier++ {
		m.Markers = append(m.Markers, SeatRow(tier)...)
	}

	// 外立面顶沿，在两个入口处断开
	gap := config.SeatGapDegrees
	for _, arc := range [][2]float64{{gap, 180 - gap}, {180 + gap, 360 - gap}} {
		const n = 60
		points := make([]mgl64.Vec3, 0, n+1)
		for i := 0; i <= n; i++ {
			t := float64(i) / n
			angle := arc[0]*(1-t) + arc[1]*t
			points = append(points, EllipsePoint(config.MaxSeatingXRadius, config.MaxSeatingZRadius, config.StadiumTotalHeight, angle))
		}
		m.Segments = append(m.Segments, polyline(points, false, ColorConcrete, 2)...)
	}

	m.Segments = append(m.Segments, EllipseRing(config.MaxSeatingXRadius+0.5, config.MaxSeatingZRadius+0.5,
		config.StadiumTotalHeight+2, grassSegments, ColorLine, 1)...)
	return m
}

// GrandstandRoof 主看台（-Z 侧）顶棚和立柱
func GrandstandRoof() Mesh {
	roofY := config.StadiumTotalHeight + config.GrandstandRoofRise
	roofZ := -config.MaxSeatingZRadius - 15

	var m Mesh
	m.Segments = append(m.Segments, box(mgl64.Vec3{0, roofY, roofZ}, mgl64.Vec3{config.MainGrandstandWidth, 2, 65}, ColorRoof, 2)...)

	const columns = 8
	span := config.MainGrandstandWidth - 10
	for i := 0; i < columns; i++ {
		x := -span/2 + float64(i)*span/(columns-1)
		m.Segments = append(m.Segments, line(mgl64.Vec3{x, 0, roofZ}, mgl64.Vec3{x, roofY, roofZ}, ColorSteel, 2))
	}
	return m
}

// floodlightCorners 四座灯塔的位置和朝向（面向球场中心）
var floodlightCorners = []struct {
	x, z, heading float64
}{
	{config.FloodlightDistX, config.FloodlightDistZ, 225},
	{-config.FloodlightDistX, config.FloodlightDistZ, 135},
	{-config.FloodlightDistX, -config.FloodlightDistZ, 45},
	{config.FloodlightDistX, -config.FloodlightDistZ, 315},
}

// Floodlights 四座灯塔：灯杆、灯板和 4x3 灯泡阵列
// night 为真时灯泡发光
func Floodlights(night bool) Mesh {
	bulb := ColorBulbDay
	bulbSize := 1.5
	if night {
		bulb = ColorBulbNight
		bulbSize = 2.5
	}

	hw, hh := config.FloodlightHeadWidth/2, config.FloodlightHeadHeight/2
	top := config.FloodlightPoleHeight

	var m Mesh
	for _, c := range floodlightCorners {
		origin := mgl64.Vec3{c.x, 0, c.z}
		m.Segments = append(m.Segments, line(origin, mgl64.Vec3{c.x, top, c.z}, ColorSteel, 3))

		head := polyline([]mgl64.Vec3{
			{-hw, top - hh, 0}, {hw, top - hh, 0}, {hw, top + hh, 0}, {-hw, top + hh, 0},
		}, true, ColorPanel, 2)
		m.Segments = append(m.Segments, transform(head, c.heading, origin)...)

		for i := 0; i < config.FloodlightBulbRows; i++ {
			for j := 0; j < config.FloodlightBulbCols; j++ {
				local := mgl64.Vec3{-hw + 1.5 + float64(i)*3.5, top - hh + 1.5 + float64(j)*2.5, 1.1}
				m.Markers = append(m.Markers, Marker{
					Center: rotateY(local, c.heading, origin),
					Size:   bulbSize,
					Color:  bulb,
				})
			}
		}
	}
	return m
}

// TreePositions 外围树木的位置，入口前方不种树
func TreePositions() []mgl64.Vec3 {
	var out []mgl64.Vec3
	for i := 0; i < config.NumTrees; i++ {
		angle := 360 * float64(i) / config.NumTrees
		if InGateGap(angle, config.TreeGapDegree) {
			continue
		}
		offset := config.TreeJitter
		if i%2 != 0 {
			offset = -offset
		}
		p := EllipsePoint(config.TreeRadiusX, config.TreeRadiusZ, 0, angle)
		out = append(out, mgl64.Vec3{p.X() + offset, 0, p.Z() + offset})
	}
	return out
}

// Trees 树干加三层树冠
func Trees() Mesh {
	var m Mesh
	for _, p := range TreePositions() {
		m.Segments = append(m.Segments, line(p, p.Add(mgl64.Vec3{0, 4, 0}), ColorTrunk, 3))
		for _, tier := range []struct{ y, r float64 }{{4, 5}, {6.5, 4}, {9, 2.5}} {
			m.Segments = append(m.Segments, EllipseRing(tier.r, tier.r, tier.y, 10, ColorLeaves, 2)...)
		}
		m.Markers = append(m.Markers, Marker{Center: p.Add(mgl64.Vec3{0, config.TreeHeight + 4, 0}), Size: 1, Color: ColorLeaves})
	}
	return m
}

// Benches 中线两侧的替补席
func Benches() Mesh {
	seatColors := []color.RGBA{
		{R: 230, G: 51, B: 51, A: 255},
		{R: 51, G: 51, B: 230, A: 255},
	}

	var m Mesh
	z := -config.BenchOffsetZ
	for i, x := range []float64{-config.BenchX, config.BenchX} {
		center := mgl64.Vec3{x, config.BenchHeight / 2, z}
		m.Segments = append(m.Segments, box(center, mgl64.Vec3{config.BenchWidth, config.BenchHeight, config.BenchDepth}, ColorDugout, 1)...)

		const seats = 6
		spacing := (config.BenchWidth - 0.5) / seats
		start := x - config.BenchWidth/2 + spacing/2 + 0.25
		for s := 0; s < seats; s++ {
			m.Markers = append(m.Markers, Marker{
				Center: mgl64.Vec3{start + float64(s)*spacing, 0.4, z},
				Size:   0.8,
				Color:  seatColors[i],
			})
		}
	}
	return m
}

// Gates 东西两个入口门楼
func Gates() Mesh {
	w, h := config.GateWidth, config.GateHeight
	local := []Segment{
		line(mgl64.Vec3{-w/2 + 1.5, 0, 0}, mgl64.Vec3{-w/2 + 1.5, h, 0}, ColorConcrete, 4),
		line(mgl64.Vec3{w/2 - 1.5, 0, 0}, mgl64.Vec3{w/2 - 1.5, h, 0}, ColorConcrete, 4),
		line(mgl64.Vec3{-w / 2, h - 1.5, 0}, mgl64.Vec3{w / 2, h - 1.5, 0}, ColorConcrete, 4),
	}

	var m Mesh
	for _, angle := range []float64{0, 180} {
		p := EllipsePoint(config.MaxSeatingXRadius-2, config.MaxSeatingZRadius-2, 0, angle)
		m.Segments = append(m.Segments, transform(local, angle+90, p)...)
	}
	return m
}

// Stadium 全部静态场景
func Stadium(night bool) Mesh {
	var m Mesh
	m.Append(
		InnerGrass(),
		Track(),
		Pitch(),
		Goals(),
		Benches(),
		Gates(),
		Floodlights(night),
		Trees(),
		SeatingBowl(),
		GrandstandRoof(),
	)
	return m
}
