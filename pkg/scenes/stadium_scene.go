package scenes

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/ecs"
	"github.com/decker502/stadium/pkg/entities"
	"github.com/decker502/stadium/pkg/game"
	"github.com/decker502/stadium/pkg/logger"
	"github.com/decker502/stadium/pkg/systems"
	"github.com/decker502/stadium/pkg/utils"
)

// statsInterval 帧统计日志的最小间隔
const statsInterval = time.Second

// StadiumScene 体育场任意球场景
//
// 每个 tick 依次执行：输入 → 相机 → 任意球动画 → 实体同步。
// 绘制时只在帧状态被标记为脏时重绘，其余帧保留上一帧画面
// （需要配合 ebiten.SetScreenClearedEveryFrame(false)）。
type StadiumScene struct {
	state         *game.FrameState
	entityManager *ecs.EntityManager
	lineup        *entities.Lineup
	settings      *game.SettingsManager

	inputSystem  *systems.InputSystem
	cameraSystem *systems.CameraSystem
	kickSystem   *systems.KickAnimationSystem
	syncSystem   *systems.KickSyncSystem
	renderSystem *systems.RenderSystem

	// pending 尚未被应用层取走的窗口级动作
	pending systems.InputActions

	logger *zap.Logger
	stats  *logger.Throttled
}

// NewStadiumScene 创建体育场场景
//
// 参数:
//   - cfg: 已验证的场景配置
//   - settings: 显示偏好（HUD 开关在此读写）
//   - keys: 按键来源，nil 时读取 ebiten 的按键状态
//   - log: 日志器
//   - night: 是否以夜间模式启动
//
// 返回:
//   - *StadiumScene: 场景实例，相机位于初始位姿，动画处于 Idle
//   - error: 生成球员实体失败时返回错误
func NewStadiumScene(cfg *config.SceneConfig, settings *game.SettingsManager, keys utils.KeySource, log *zap.Logger, night bool) (*StadiumScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("scene config is nil")
	}
	if settings == nil {
		settings = game.NewSettingsManager(nil, log)
	}

	em := ecs.NewEntityManager()
	lineup, err := entities.SpawnLineup(em, entities.DefaultLineup())
	if err != nil {
		return nil, fmt.Errorf("failed to spawn lineup: %w", err)
	}

	camera := systems.NewCameraSystem(cfg.Camera, log)
	kick := systems.NewKickAnimationSystem(cfg.Kick, log)

	s := &StadiumScene{
		state:         game.NewFrameState(cfg.Window.Width, cfg.Window.Height),
		entityManager: em,
		lineup:        lineup,
		settings:      settings,
		inputSystem:   systems.NewInputSystem(keys, camera, kick, log),
		cameraSystem:  camera,
		kickSystem:    kick,
		syncSystem:    systems.NewKickSyncSystem(em),
		renderSystem:  systems.NewRenderSystem(em, cfg.Camera),
		logger:        log.Named("StadiumScene"),
	}
	s.stats = logger.NewThrottled(s.logger, statsInterval)

	s.cameraSystem.Reset(s.state)
	s.kickSystem.Reset(s.state)
	s.state.NightMode = night
	s.syncSystem.Update(s.state)

	s.logger.Info("Stadium scene created",
		zap.Int("entities", em.Count()),
		zap.Bool("night", night),
		zap.Bool("hud", settings.GetSettings().ShowHUD))
	return s, nil
}

// Update 推进一个 tick
// deltaTime 不参与计算，所有速率都以 tick 为单位
func (s *StadiumScene) Update(deltaTime float64) {
	actions := s.inputSystem.Update(s.state)
	if actions.ToggleHUD {
		s.settings.SetShowHUD(!s.settings.GetSettings().ShowHUD)
		s.state.MarkDirty()
	}
	s.pending.ToggleFullscreen = s.pending.ToggleFullscreen || actions.ToggleFullscreen
	s.pending.Quit = s.pending.Quit || actions.Quit

	s.cameraSystem.Update(s.state)
	s.kickSystem.Update(s.state)
	s.syncSystem.Update(s.state)

	// HUD 中的 TPS 需要持续刷新
	if s.settings.GetSettings().ShowHUD {
		s.state.MarkDirty()
	}
	s.state.Tick++

	s.stats.Debug("Frame stats",
		zap.Uint64("tick", s.state.Tick),
		zap.Stringer("stage", s.state.Kick.Stage),
		zap.Float64("yaw", s.state.Camera.Yaw),
		zap.Float64("pitch", s.state.Camera.Pitch),
		zap.Float64("distance", s.state.Camera.Distance),
		zap.Bool("night", s.state.NightMode))
}

// Draw 在帧状态为脏时重绘整个画面
func (s *StadiumScene) Draw(screen *ebiten.Image) {
	if !s.state.ConsumeDirty() {
		return
	}
	snap := s.state.Snapshot()
	s.renderSystem.Draw(screen, snap)

	if s.settings.GetSettings().ShowHUD {
		ebitenutil.DebugPrint(screen, HUDText(snap, ebiten.ActualTPS()))
	}
}

// Resize 视口尺寸变化时更新投影宽高比
func (s *StadiumScene) Resize(width, height int) {
	s.state.SetViewport(width, height)
}

// TakeActions 取走累积的窗口级动作（全屏、退出）并清空
func (s *StadiumScene) TakeActions() systems.InputActions {
	a := s.pending
	s.pending = systems.InputActions{}
	return a
}

// State 返回场景的帧状态
func (s *StadiumScene) State() *game.FrameState {
	return s.state
}

// Lineup 返回场上实体
func (s *StadiumScene) Lineup() *entities.Lineup {
	return s.lineup
}

// EntityManager 返回场景的实体管理器
func (s *StadiumScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// HUDText 调试信息文本
func HUDText(snap game.Snapshot, tps float64) string {
	mode := "day"
	if snap.NightMode {
		mode = "night"
	}
	return fmt.Sprintf(
		"TPS: %.1f  tick: %d\n"+
			"camera: yaw %.1f  pitch %.1f  dist %.1f\n"+
			"kick: %s  striker %.2f  ball (%.2f, %.2f)  keeper %.2f\n"+
			"mode: %s\n"+
			"[arrows/PgUp/PgDn] camera  [Home] reset  [R] kick  [N] night  [F1] HUD  [F11] fullscreen",
		tps, snap.Tick,
		snap.Yaw, snap.Pitch, snap.Distance,
		snap.Stage, snap.Striker.X(), snap.Ball.X(), snap.Ball.Y(), snap.GoalkeeperOffset,
		mode,
	)
}
