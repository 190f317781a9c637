package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/decker502/stadium/pkg/components"
	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/game"
	"github.com/decker502/stadium/pkg/utils"
)

// CameraSystem 轨道相机控制器
//
// 每 tick 把按键产生的角速度/缩放速度积分到相机位姿上，
// 俯仰角和距离超出范围时静默饱和，位姿始终可渲染。
type CameraSystem struct {
	cfg    config.CameraConfig
	logger *zap.Logger

	// held 记录每个轴上负/正方向键是否按住，仅 TrackHeldKeys 策略使用
	held map[components.CameraAxis]*[2]bool
}

// NewCameraSystem 创建相机控制系统
func NewCameraSystem(cfg config.CameraConfig, logger *zap.Logger) *CameraSystem {
	return &CameraSystem{
		cfg:    cfg,
		logger: logger.Named("CameraSystem"),
		held: map[components.CameraAxis]*[2]bool{
			components.AxisYaw:      {},
			components.AxisPitch:    {},
			components.AxisDistance: {},
		},
	}
}

// EyePosition 由 (yaw, pitch, distance) 计算相机坐标，注视点为原点
//
//	eye = (d·cos(p)·sin(y), d·sin(p), d·cos(p)·cos(y))
func EyePosition(yaw, pitch, distance float64) mgl64.Vec3 {
	radY := utils.DegToRad(yaw)
	radX := utils.DegToRad(pitch)
	distXZ := distance * math.Cos(radX)
	return mgl64.Vec3{
		distXZ * math.Sin(radY),
		distance * math.Sin(radX),
		distXZ * math.Cos(radY),
	}
}

// Reset 恢复初始位姿并清空所有速度
func (cs *CameraSystem) Reset(state *game.FrameState) {
	state.CameraVelocity = components.CameraVelocityComponent{}
	for _, h := range cs.held {
		*h = [2]bool{}
	}
	cs.SetPose(state, cs.cfg.InitialYaw, cs.cfg.InitialPitch, cs.cfg.InitialDistance)
	cs.logger.Debug("Camera reset",
		zap.Float64("yaw", state.Camera.Yaw),
		zap.Float64("pitch", state.Camera.Pitch),
		zap.Float64("distance", state.Camera.Distance))
}

// SetPose 直接设置位姿（经过归一化和限幅），并重新计算 Eye
func (cs *CameraSystem) SetPose(state *game.FrameState, yaw, pitch, distance float64) {
	cam := &state.Camera
	cam.Yaw = utils.WrapDegrees(yaw)
	cam.Pitch = utils.Clamp(pitch, cs.cfg.PitchMin, cs.cfg.PitchMax)
	cam.Distance = utils.Clamp(distance, cs.cfg.DistanceMin, cs.cfg.DistanceMax)
	cam.Target = mgl64.Vec3{}
	cam.Eye = EyePosition(cam.Yaw, cam.Pitch, cam.Distance)
	state.MarkDirty()
}

// Update 积分一 tick 的速度
//
// 只有存在非零速度时才标记重绘，静止时不触发多余的绘制
func (cs *CameraSystem) Update(state *game.FrameState) {
	v := &state.CameraVelocity
	cam := &state.Camera

	cam.Yaw = utils.WrapDegrees(cam.Yaw + v.YawRate)
	cam.Pitch = utils.Clamp(cam.Pitch+v.PitchRate, cs.cfg.PitchMin, cs.cfg.PitchMax)
	cam.Distance = utils.Clamp(cam.Distance+v.DistanceRate, cs.cfg.DistanceMin, cs.cfg.DistanceMax)
	cam.Eye = EyePosition(cam.Yaw, cam.Pitch, cam.Distance)

	if v.IsMoving() {
		state.MarkDirty()
	}
}

// Press 方向键按下：该轴速率设为固定幅值，符号由方向决定
// 同轴后按下的键覆盖先按下的键
func (cs *CameraSystem) Press(state *game.FrameState, axis components.CameraAxis, dir components.Direction) {
	cs.held[axis][dirIndex(dir)] = true
	state.CameraVelocity.SetRate(axis, cs.magnitude(axis)*float64(dir))
}

// Release 方向键松开
//
// 默认策略：同轴任一键松开都把速率清零，即使对向键仍按住。
// TrackHeldKeys 策略：对向键仍按住时改为对向速率。
func (cs *CameraSystem) Release(state *game.FrameState, axis components.CameraAxis, dir components.Direction) {
	h := cs.held[axis]
	h[dirIndex(dir)] = false

	if cs.cfg.TrackHeldKeys {
		other := -dir
		if h[dirIndex(other)] {
			state.CameraVelocity.SetRate(axis, cs.magnitude(axis)*float64(other))
			return
		}
	}
	state.CameraVelocity.SetRate(axis, 0)
}

func (cs *CameraSystem) magnitude(axis components.CameraAxis) float64 {
	if axis == components.AxisDistance {
		return cs.cfg.ZoomRate
	}
	return cs.cfg.AngleRate
}

func dirIndex(dir components.Direction) int {
	if dir == components.DirNegative {
		return 0
	}
	return 1
}
