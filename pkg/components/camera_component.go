package components

import "github.com/go-gl/mathgl/mgl64"

// CameraAxis 轨道相机的可控轴
type CameraAxis int

const (
	// AxisYaw 水平环绕角（绕 Y 轴）
	AxisYaw CameraAxis = iota
	// AxisPitch 俯仰角
	AxisPitch
	// AxisDistance 相机到注视点的距离（缩放）
	AxisDistance
)

// String 返回轴名称，用于日志
func (a CameraAxis) String() string {
	switch a {
	case AxisYaw:
		return "yaw"
	case AxisPitch:
		return "pitch"
	case AxisDistance:
		return "distance"
	}
	return "unknown"
}

// Direction 按键方向，-1 或 +1
type Direction int

const (
	DirNegative Direction = -1
	DirPositive Direction = 1
)

// OrbitCameraComponent 轨道相机位姿
//
// Eye 由 (Yaw, Pitch, Distance) 推导，每次更新都会重新计算，
// 调用方不应直接写入 Eye。
type OrbitCameraComponent struct {
	// Yaw 水平角（度），保持在 [0, 360)
	Yaw float64

	// Pitch 俯仰角（度），限制在 [PitchMin, PitchMax]
	Pitch float64

	// Distance 到注视点的距离，限制在 [DistanceMin, DistanceMax]
	Distance float64

	// Eye 相机世界坐标
	Eye mgl64.Vec3

	// Target 注视点，固定为原点
	Target mgl64.Vec3
}

// CameraVelocityComponent 每 tick 的角速度/缩放速度
// 每个轴要么是固定幅值（带符号），要么为 0
type CameraVelocityComponent struct {
	YawRate      float64
	PitchRate    float64
	DistanceRate float64
}

// Rate 返回指定轴的当前速率
func (v *CameraVelocityComponent) Rate(axis CameraAxis) float64 {
	switch axis {
	case AxisYaw:
		return v.YawRate
	case AxisPitch:
		return v.PitchRate
	case AxisDistance:
		return v.DistanceRate
	}
	return 0
}

// SetRate 设置指定轴的速率（同轴后写覆盖先写，不叠加）
func (v *CameraVelocityComponent) SetRate(axis CameraAxis, rate float64) {
	switch axis {
	case AxisYaw:
		v.YawRate = rate
	case AxisPitch:
		v.PitchRate = rate
	case AxisDistance:
		v.DistanceRate = rate
	}
}

// IsMoving 任一轴非零即为运动中
func (v *CameraVelocityComponent) IsMoving() bool {
	return v.YawRate != 0 || v.PitchRate != 0 || v.DistanceRate != 0
}
