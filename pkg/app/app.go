// Package app 提供应用的核心包装器
//
// 该包把场景装配和窗口处理从 main 包中提取出来，
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/game"
	"github.com/decker502/stadium/pkg/scenes"
	"github.com/decker502/stadium/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Night 以夜间模式启动
	Night bool
	// Scene 已验证的场景配置，nil 时使用默认配置
	Scene *config.SceneConfig
	// Keys 按键来源，nil 时读取 ebiten 的按键状态
	Keys utils.KeySource
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.StadiumScene
	settings     *game.SettingsManager
	window       config.WindowConfig
	verbose      bool
	logger       *zap.Logger

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 参数:
//   - cfg: 启动配置
//   - settings: 显示偏好，nil 时只在内存中保存
//   - logger: 日志器
func NewApp(cfg Config, settings *game.SettingsManager, logger *zap.Logger) (*App, error) {
	sceneCfg := cfg.Scene
	if sceneCfg == nil {
		sceneCfg = config.DefaultSceneConfig()
	}
	if settings == nil {
		settings = game.NewSettingsManager(nil, logger)
	}

	scene, err := scenes.NewStadiumScene(sceneCfg, settings, cfg.Keys, logger, cfg.Night)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		scene:        scene,
		settings:     settings,
		window:       sceneCfg.Window,
		verbose:      cfg.Verbose,
		logger:       logger.Named("App"),
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次），返回 ebiten.Termination 时正常退出
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.window.Width, a.window.Height)
			a.logger.Debug("Delayed SetWindowSize",
				zap.Int("width", a.window.Width), zap.Int("height", a.window.Height))
			a.pendingWindowSizeReset = false
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)

	actions := a.scene.TakeActions()
	if actions.Quit {
		a.logger.Info("Quit requested")
		return ebiten.Termination
	}
	if actions.ToggleFullscreen {
		a.toggleFullscreen()
	}
	return nil
}

// toggleFullscreen F11 切换全屏，并保存到显示偏好
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		a.logger.Debug("Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	a.scene.State().MarkDirty()
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑屏幕尺寸跟随窗口尺寸，只影响投影的宽高比
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Scene 返回体育场场景
func (a *App) Scene() *scenes.StadiumScene {
	return a.scene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
