package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/stadium/pkg/app"
	"github.com/decker502/stadium/pkg/config"
	"github.com/decker502/stadium/pkg/embedded"
	"github.com/decker502/stadium/pkg/game"
	"github.com/decker502/stadium/pkg/logger"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "场景配置文件路径（.yaml/.yml/.toml），为空时使用内置配置")
	night      = flag.Bool("night", false, "以夜间模式启动")
	fullscreen = flag.Bool("fullscreen", false, "以全屏模式启动")
)

func main() {
	flag.Parse()

	log, err := logger.New(*verbose)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	embedded.Init(dataFS)

	sceneCfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("Failed to load scene config", zap.String("path", *configPath), zap.Error(err))
	}

	// gdata 打不开时降级为仅内存设置
	gdataManager, err := game.OpenGdataManager(game.AppName)
	if err != nil {
		log.Warn("Settings will not be persisted", zap.Error(err))
	}
	settings := game.NewSettingsManager(gdataManager, log)

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Night:   *night,
		Scene:   sceneCfg,
	}, settings, log)
	if err != nil {
		log.Fatal("Failed to create app", zap.Error(err))
	}

	ebiten.SetWindowSize(sceneCfg.Window.Width, sceneCfg.Window.Height)
	ebiten.SetWindowTitle(sceneCfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen || settings.GetSettings().Fullscreen)
	// 相机静止时场景不重绘，屏幕需要保留上一帧
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal("Game loop failed", zap.Error(err))
	}
}

// loadConfig 读取 --config 指定的文件，未指定时读取内置配置
func loadConfig(path string) (*config.SceneConfig, error) {
	if path == "" {
		return config.LoadEmbeddedSceneConfig(config.DefaultSceneConfigPath)
	}
	return config.LoadSceneConfig(path)
}
