package config

// 体育场布局常量
// 所有坐标使用世界坐标系：X 沿球场长轴，Z 沿短轴，Y 向上，原点在中圈

// Track & field (跑道与球场)
const (
	// TrackInnerXRadius 跑道内沿椭圆长半轴
	TrackInnerXRadius = 55.0
	// TrackInnerZRadius 跑道内沿椭圆短半轴（加宽以免弯道与球场重叠）
	TrackInnerZRadius = 38.0
	// TrackWidth 跑道宽度，分 4 条道
	TrackWidth = 10.0
	TrackLanes = 4

	TrackOuterXRadius = TrackInnerXRadius + TrackWidth
	TrackOuterZRadius = TrackInnerZRadius + TrackWidth

	// FieldXRadius 球场半长（球门线在 ±FieldXRadius）
	FieldXRadius = 40.0
	// FieldZRadius 球场半宽
	FieldZRadius = 24.0

	CenterCircleRadius = 9.0
	PenaltyBoxDepth    = 16.0
	PenaltyBoxWidth    = 30.0

	// 球门尺寸（标准 7.32m x 2.44m）
	GoalWidth    = 7.32
	GoalHeight   = 2.44
	GoalNetDepth = 2.0
)

// Seating bowl (看台)
const (
	SeatingBaseXRadius = TrackOuterXRadius
	SeatingBaseZRadius = TrackOuterZRadius

	NumTiers           = 8
	TierHeight         = 1.2
	TierDepthIncreaseX = 1.2
	TierDepthIncreaseZ = 1.2

	MaxSeatingXRadius = SeatingBaseXRadius + (NumTiers-1)*TierDepthIncreaseX
	MaxSeatingZRadius = SeatingBaseZRadius + (NumTiers-1)*TierDepthIncreaseZ

	StadiumTotalHeight = (NumTiers - 1) * TierHeight

	// SeatGapDegrees 东西两个入口处看台留出的缺口半角（度）
	SeatGapDegrees = 14.0

	// MainGrandstandWidth 主看台（-Z 侧）顶棚宽度
	MainGrandstandWidth = 120.0
	// GrandstandRoofRise 顶棚高出最高一排的高度
	GrandstandRoofRise = 10.0
)

// Props (道具)
const (
	FloodlightPoleHeight = 65.0
	FloodlightDistX      = 85.0
	FloodlightDistZ      = 65.0
	FloodlightHeadWidth  = 14.0
	FloodlightHeadHeight = 8.0
	// FloodlightBulbRows x FloodlightBulbCols 灯泡阵列
	FloodlightBulbRows = 4
	FloodlightBulbCols = 3

	TreeRadiusX   = 115.0
	TreeRadiusZ   = 95.0
	NumTrees      = 10
	TreeGapDegree = 15.0
	TreeJitter    = 3.0
	TreeHeight    = 9.0

	// 替补席
	BenchOffsetZ = FieldZRadius + 8.0
	BenchX       = 15.0
	BenchWidth   = 8.0
	BenchHeight  = 2.2
	BenchDepth   = 1.5

	// 入口门楼
	GateWidth  = 16.0
	GateHeight = 12.0
)

// Figures (球员)
const (
	BallRadius = 0.25
	// GoalkeeperX 蓝队门将站位（被任意球动画驱动横向移动）
	GoalkeeperX = 38.0
	// FigureHeight 简化球员模型的总高度
	FigureHeight = 2.1
)

// 天空颜色
var (
	DaySkyColor   = [3]float64{0.6, 0.8, 1.0}
	NightSkyColor = [3]float64{0.1, 0.1, 0.2}
)
