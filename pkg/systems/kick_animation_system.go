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

// KickAnimationSystem 任意球脚本动画
//
// 三个阶段：
//   - RunUp: 主罚球员匀速助跑到起脚点
//   - Flight: 球匀速飞行并旋转，越过反应线后门将横向追球，
//     越过球门线后按摩擦系数逐 tick 衰减，速度足够小时停止
//   - Idle: 不推进，所有对象停在原地
//
// 动画没有失败路径，Start 可以在任意阶段调用并强制重来。
type KickAnimationSystem struct {
	cfg    config.KickConfig
	logger *zap.Logger
}

// NewKickAnimationSystem 创建任意球动画系统
//
// 参数:
//   - cfg: 动画参数（速度、阈值、摩擦系数等）
//   - logger: 日志器
//
// 返回:
//   - *KickAnimationSystem: 动画系统实例
func NewKickAnimationSystem(cfg config.KickConfig, logger *zap.Logger) *KickAnimationSystem {
	return &KickAnimationSystem{
		cfg:    cfg,
		logger: logger.Named("KickAnimationSystem"),
	}
}

// Reset 摆好开球前的站位，阶段为 Idle
// 场景创建时调用一次，此时还没有开始任意球
func (ks *KickAnimationSystem) Reset(state *game.FrameState) {
	state.Kick = components.KickAnimationComponent{
		Stage:   components.KickIdle,
		Striker: mgl64.Vec2{ks.cfg.StrikerStartX, 0},
	}
	state.MarkDirty()
}

// Start 开始（或重新开始）任意球
// 无论当前处于哪个阶段，都会清空进行中的动画并回到助跑起点
func (ks *KickAnimationSystem) Start(state *game.FrameState) {
	prev := state.Kick.Stage
	state.Kick = components.KickAnimationComponent{
		Stage:   components.KickRunUp,
		Striker: mgl64.Vec2{ks.cfg.StrikerStartX, 0},
	}
	state.MarkDirty()
	ks.logStage(prev, components.KickRunUp, &state.Kick)
}

// Stage 当前阶段
func (ks *KickAnimationSystem) Stage(state *game.FrameState) components.KickStage {
	return state.Kick.Stage
}

// Active 动画是否正在推进
func (ks *KickAnimationSystem) Active(state *game.FrameState) bool {
	return state.Kick.Active()
}

// Update 推进一 tick
func (ks *KickAnimationSystem) Update(state *game.FrameState) {
	k := &state.Kick
	if !k.Active() {
		return
	}
	state.MarkDirty()

	if k.Stage == components.KickRunUp {
		if k.Striker.X() < ks.cfg.KickThreshold {
			k.Striker[0] += ks.cfg.RunSpeed
			return
		}
		// 起脚的同一 tick 球也开始飞行
		k.Stage = components.KickFlight
		k.BallVelocity = mgl64.Vec2{ks.cfg.KickVelocityX, ks.cfg.KickVelocityY}
		ks.logStage(components.KickRunUp, components.KickFlight, k)
	}

	ks.stepFlight(k)
}

func (ks *KickAnimationSystem) stepFlight(k *components.KickAnimationComponent) {
	k.Ball = k.Ball.Add(k.BallVelocity)
	k.BallSpin += ks.cfg.SpinRate

	if k.Ball.X() > ks.cfg.KeeperReactX {
		k.GoalkeeperOffset = utils.StepToward(k.GoalkeeperOffset, k.Ball.Y(), ks.cfg.KeeperSpeed)
	}

	if k.Ball.X() > ks.cfg.GoalLineX {
		k.BallVelocity = k.BallVelocity.Mul(ks.cfg.Friction)
		if k.BallVelocity.X() < ks.cfg.StopEpsilon {
			k.Stage = components.KickIdle
			ks.logStage(components.KickFlight, components.KickIdle, k)
		}
	}
}

func (ks *KickAnimationSystem) logStage(from, to components.KickStage, k *components.KickAnimationComponent) {
	ks.logger.Debug("Kick stage changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Float64("strikerX", k.Striker.X()),
		zap.Float64("ballX", k.Ball.X()),
		zap.Float64("ballY", k.Ball.Y()),
		zap.Float64("keeper", k.GoalkeeperOffset))
}

// TicksToRest 计算从 Start 到回到 Idle 所需 tick 数的上界
//
// 分三段估算：助跑 tick 数、球以恒定速度到达球门线的 tick 数、
// 按摩擦系数衰减到 StopEpsilon 以下的 tick 数，再各留一个 tick 余量。
// 配置需先通过 Validate，否则返回值无意义。
func TicksToRest(cfg config.KickConfig) int {
	runUp := int(math.Ceil((cfg.KickThreshold-cfg.StrikerStartX)/cfg.RunSpeed)) + 1
	cruise := int(math.Floor(cfg.GoalLineX/cfg.KickVelocityX)) + 1
	decay := int(math.Ceil(math.Log(cfg.StopEpsilon/cfg.KickVelocityX)/math.Log(cfg.Friction))) + 1
	return runUp + cruise + decay
}
